// seehuhn.de/go/geomdraw - tessellate styled 2D geometry for GPU upload
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes the reference scenes to JSON files.
// Run from the geomdraw module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geomdraw/scene"
	"seehuhn.de/go/geomdraw/testcases"
)

func main() {
	dir := filepath.Join("testdata", "scenes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			fname := filepath.Join(dir, category+"_"+sc.Name+".json")
			if err := scene.Save(fname, &sc); err != nil {
				panic(err)
			}
			n++
		}
	}
	fmt.Printf("wrote %d scenes to %s\n", n, dir)
}
