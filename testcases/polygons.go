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

var polygonCases = []scene.Scene{
	{
		Name:     "triangle",
		Viewport: box(0, 0, 64, 64),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: []geomdraw.AppPoint{pt(10, 14), pt(54, 14), pt(32, 54)}}, Color: red},
		},
	},
	{
		Name:     "rectangle",
		Viewport: box(0, 0, 64, 64),
		Screen:   small,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: rectangle(10, 10, 54, 54)}, Color: green},
		},
	},
	{
		Name:     "star",
		Viewport: box(-1, -1, 1, 1),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: star(0, 0, 0.9)}, Color: blue},
		},
	},
	{
		Name:     "clockwise",
		Viewport: box(-1, -1, 1, 1),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: reversed(regular(0, 0, 0.8, 7))}, Color: gray},
		},
	},
	{
		Name:     "square_with_hole",
		Viewport: box(0, 0, 4, 4),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{
				Geom: geomdraw.Polygon{
					Points: rectangle(0, 0, 4, 4),
					Holes:  [][]geomdraw.AppPoint{rectangle(1, 1, 3, 3)},
				},
				Color: blue,
			},
		},
	},
	{
		Name:     "two_holes",
		Viewport: box(-1, -1, 1, 1),
		Screen:   small,
		Geoms: []geomdraw.StyledGeom{
			{
				Geom: geomdraw.Polygon{
					Points: regular(0, 0, 0.95, 24),
					Holes: [][]geomdraw.AppPoint{
						regular(-0.4, 0, 0.3, 12),
						rectangle(0.15, -0.3, 0.65, 0.3),
					},
				},
				Color: red,
			},
		},
	},
	{
		Name:     "collinear_points",
		Viewport: box(0, 0, 10, 10),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Polygon{Points: []geomdraw.AppPoint{pt(1, 1), pt(5, 1), pt(9, 1), pt(9, 9), pt(1, 9)}}, Color: green},
		},
	},
}
