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

// Package testcases contains named reference scenes.
//
// The scenes are used by the tests of the geomdraw packages and can be
// written to JSON using the export command, or drawn using the geomdraw
// command line tool.
package testcases

import "seehuhn.de/go/geomdraw/scene"

// All contains all test scenes, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]scene.Scene{
	"calibration": calibrationCases,
	"lines":       linesCases,
	"polygons":    polygonCases,
	"points":      pointCases,
	"mixed":       mixedCases,
	"invalid":     invalidCases,
}

// Find returns the scene with the given category and name.
func Find(category, name string) (*scene.Scene, bool) {
	for i := range All[category] {
		if All[category][i].Name == name {
			return &All[category][i], true
		}
	}
	return nil, false
}
