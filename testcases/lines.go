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

var linesCases = []scene.Scene{
	{
		Name:     "horizontal",
		Viewport: box(0, 0, 100, 100),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(10, 50), pt(90, 50)}, Width: 4}, Color: black},
		},
	},
	{
		Name:     "right_angle",
		Viewport: box(0, 0, 100, 100),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(20, 20), pt(80, 20), pt(80, 80)}, Width: 8}, Color: blue},
		},
	},
	{
		Name:     "acute_angle",
		Viewport: box(0, 0, 100, 100),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(10, 20), pt(90, 50), pt(10, 80)}, Width: 6}, Color: red},
		},
	},
	{
		Name:     "doubling_back",
		Viewport: box(0, 0, 100, 100),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(20, 50), pt(80, 50), pt(40, 50)}, Width: 6}, Color: green},
		},
	},
	{
		Name:     "zigzag",
		Viewport: box(0, 0, 100, 60),
		Screen:   small,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: zigzag(5, 95, 30, 15, 12), Width: 2}, Color: blue},
		},
	},
	{
		Name:     "spiral",
		Viewport: box(-1, -1, 1, 1),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: spiral(0, 0, 0.9, 3, 300), Width: 0.02}, Color: black},
		},
	},
	{
		Name:     "default_width",
		Viewport: box(0, 0, 10, 10),
		Screen:   small,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(1, 1), pt(9, 9)}}, Color: black},
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(1, 9), pt(9, 1)}}, Color: black},
		},
	},
	{
		Name:     "repeated_points",
		Viewport: box(0, 0, 100, 100),
		Screen:   square,
		Geoms: []geomdraw.StyledGeom{
			{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{pt(10, 10), pt(10, 10), pt(90, 10), pt(90, 10), pt(90, 90)}, Width: 4}, Color: red},
		},
	},
}
