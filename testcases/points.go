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

var pointCases = []scene.Scene{
	{
		Name:     "single",
		Viewport: box(-1, -1, 1, 1),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Point{At: pt(0, 0)}, Color: red},
		},
	},
	{
		Name:     "corners_wide",
		Viewport: box(0, 0, 1, 1),
		Screen:   wide,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Point{At: pt(0.1, 0.1)}, Color: red},
			{Geom: geomdraw.Point{At: pt(0.9, 0.1)}, Color: green},
			{Geom: geomdraw.Point{At: pt(0.9, 0.9)}, Color: blue},
			{Geom: geomdraw.Point{At: pt(0.1, 0.9)}, Color: black},
		},
	},
	{
		Name:     "outside_viewport",
		Viewport: box(0, 0, 1, 1),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Point{At: pt(0.5, 0.5)}, Color: blue},
			{Geom: geomdraw.Point{At: pt(1.5, 0.5)}, Color: red},
		},
	},
}

// mixedCases combine all primitive types. Later primitives are drawn on
// top of earlier ones.
var mixedCases = []scene.Scene{
	{
		Name:     "map",
		Viewport: box(-100, -100, 100, 100),
		Screen:   small,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: rectangle(-90, -90, 90, 90)}, Color: gray},
			{
				Geom: geomdraw.Polygon{
					Points: regular(-30, 20, 50, 16),
					Holes:  [][]geomdraw.AppPoint{regular(-30, 20, 20, 8)},
				},
				Color: green,
			},
			{Geom: geomdraw.Lines{Points: zigzag(-90, 90, -50, 10, 9), Width: 3}, Color: blue},
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(40, -80), pt(40, 80)}, Width: 6}, Color: black},
			{Geom: geomdraw.Point{At: pt(40, 40)}, Color: red},
			{Geom: geomdraw.Point{At: pt(-30, 20)}, Color: red},
		},
	},
	{
		Name:     "overlap",
		Viewport: box(0, 0, 10, 10),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: rectangle(1, 1, 7, 7)}, Color: red},
			{Geom: geomdraw.Polygon{Points: rectangle(3, 3, 9, 9)}, Color: blue},
		},
	},
}
