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
	"math"

	"seehuhn.de/go/geomdraw"
)

// Screen sizes used by the test scenes.
var (
	wide   = geomdraw.Screen{Width: 2880, Height: 1800}
	square = geomdraw.Screen{Width: 256, Height: 256}
	small  = geomdraw.Screen{Width: 320, Height: 200}
)

// Colors used by the test scenes.
var (
	magenta = geomdraw.Color{1, 0, 1}
	red     = geomdraw.Color{0.9, 0.1, 0.1}
	green   = geomdraw.Color{0.1, 0.7, 0.2}
	blue    = geomdraw.Color{0.1, 0.3, 0.9}
	gray    = geomdraw.Color{0.5, 0.5, 0.5}
	black   = geomdraw.Color{0, 0, 0}
)

// box returns the viewport [x0,x1]×[y0,y1].
func box(x0, y0, x1, y1 float64) geomdraw.Viewport {
	return geomdraw.Viewport{
		Min: geomdraw.AppPoint{X: x0, Y: y0},
		Max: geomdraw.AppPoint{X: x1, Y: y1},
	}
}

// pt is a helper to create an AppPoint from x, y coordinates.
func pt(x, y float64) geomdraw.AppPoint {
	return geomdraw.AppPoint{X: x, Y: y}
}

// rectangle returns the corners of an axis-aligned rectangle,
// counter-clockwise.
func rectangle(x1, y1, x2, y2 float64) []geomdraw.AppPoint {
	return []geomdraw.AppPoint{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// regular returns the corners of a regular n-gon, counter-clockwise.
func regular(cx, cy, r float64, n int) []geomdraw.AppPoint {
	pts := make([]geomdraw.AppPoint, n)
	for i := range pts {
		angle := 2*math.Pi*float64(i)/float64(n) + math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}

// star returns a five-pointed star with outer radius r.
func star(cx, cy, r float64) []geomdraw.AppPoint {
	pts := make([]geomdraw.AppPoint, 10)
	for i := range pts {
		radius := r
		if i%2 == 1 {
			radius = r * 0.4
		}
		angle := math.Pi*float64(i)/5 + math.Pi/2
		pts[i] = pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
	return pts
}

// zigzag returns a polyline with n segments between x1 and x2.
func zigzag(x1, x2, y, amplitude float64, n int) []geomdraw.AppPoint {
	pts := make([]geomdraw.AppPoint, n+1)
	for i := range pts {
		dy := amplitude
		if i%2 == 1 {
			dy = -amplitude
		}
		pts[i] = pt(x1+(x2-x1)*float64(i)/float64(n), y+dy)
	}
	return pts
}

// spiral returns a polyline winding outwards from the center.
func spiral(cx, cy, rMax, turns float64, n int) []geomdraw.AppPoint {
	pts := make([]geomdraw.AppPoint, n+1)
	for i := range pts {
		s := float64(i) / float64(n)
		angle := 2 * math.Pi * turns * s
		r := rMax * (0.1 + 0.9*s)
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}

// reversed returns the points of pts in reverse order.
func reversed(pts []geomdraw.AppPoint) []geomdraw.AppPoint {
	res := make([]geomdraw.AppPoint, len(pts))
	for i, p := range pts {
		res[len(pts)-1-i] = p
	}
	return res
}
