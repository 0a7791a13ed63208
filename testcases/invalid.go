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

// invalidCases contain primitives which cannot be drawn, each next to
// a valid primitive. The valid primitives must still be drawn.
var invalidCases = []scene.Scene{
	{
		Name:     "single_point_line",
		Viewport: box(0, 0, 10, 10),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(5, 5)}, Width: 1}, Color: red},
			{Geom: geomdraw.Polygon{Points: rectangle(2, 2, 8, 8)}, Color: blue},
		},
	},
	{
		Name:     "two_point_polygon",
		Viewport: box(0, 0, 10, 10),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: []geomdraw.AppPoint{pt(1, 1), pt(9, 9)}}, Color: red},
			{Geom: geomdraw.Point{At: pt(5, 5)}, Color: blue},
		},
	},
	{
		Name:     "flat_polygon",
		Viewport: box(0, 0, 10, 10),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: []geomdraw.AppPoint{pt(1, 1), pt(5, 5), pt(9, 9)}}, Color: red},
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(1, 9), pt(9, 1)}, Width: 1}, Color: blue},
		},
	},
	{
		Name:     "zero_length_line",
		Viewport: box(0, 0, 10, 10),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(5, 5), pt(5, 5)}, Width: 1}, Color: red},
			{Geom: geomdraw.Point{At: pt(2, 2)}, Color: blue},
		},
	},
	{
		Name:     "bad_color",
		Viewport: box(0, 0, 10, 10),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Point{At: pt(8, 8)}, Color: geomdraw.Color{2, 0, 0}},
			{Geom: geomdraw.Point{At: pt(2, 2)}, Color: blue},
		},
	},
}
