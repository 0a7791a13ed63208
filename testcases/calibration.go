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

package testcases

import (
	"seehuhn.de/go/geomdraw"
	"seehuhn.de/go/geomdraw/scene"
)

// calibrationCases contain lines which are as wide as they are long.
// Each line must render as a square, whatever the screen shape.
var calibrationCases = []scene.Scene{
	{
		Name:     "squares_wide",
		Viewport: box(-1, -1, 1, 1),
		Screen:   wide,
		Geoms:    calibrationLines,
	},
	{
		Name:     "squares_square",
		Viewport: box(-1, -1, 1, 1),
		Screen:   square,
		Geoms:    calibrationLines,
	},
	{
		Name:     "squares_tall",
		Viewport: box(-1, -1, 1, 1),
		Screen:   geomdraw.Screen{Width: 200, Height: 320},
		Geoms:    calibrationLines,
	},
}

var calibrationLines = []geomdraw.StyledGeom{
	{
		Geom:  geomdraw.Lines{Points: []geomdraw.AppPoint{pt(-1, -0.5), pt(0, -0.5)}, Width: 1},
		Color: magenta,
	},
	{
		Geom:  geomdraw.Lines{Points: []geomdraw.AppPoint{pt(0.5, 0), pt(0.5, 1)}, Width: 1},
		Color: magenta,
	},
}
