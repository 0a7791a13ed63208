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

package geomdraw

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathStyle selects how a path is turned into triangles.
type PathStyle int

const (
	// Filled paths have their interior triangulated.
	Filled PathStyle = iota

	// Stroked paths are expanded into a ribbon of given width.
	Stroked
)

func (s PathStyle) String() string {
	switch s {
	case Filled:
		return "filled"
	case Stroked:
		return "stroked"
	default:
		return fmt.Sprintf("PathStyle(%d)", int(s))
	}
}

// Path is a vector path in drawing space, together with its style.
type Path struct {
	Data  *path.Data
	Style PathStyle

	// Width is the stroke width in drawing-space units, measured along
	// the y-axis. Zero selects the tessellator default.
	// Only used for stroked paths.
	Width float64
}

// BuildPath converts g from application space into a drawing-space path.
//
// Points become closed circles of radiusPx pixels, polylines become open
// stroked paths, and polygons become closed filled paths with one subpath
// per ring. If g violates its invariants, the returned error wraps
// [ErrInvalidGeometry].
//
// The viewport and screen must be valid, see [Viewport.Check] and
// [Screen.Check].
func BuildPath(g Geom, vp Viewport, screen Screen, radiusPx float64) (Path, error) {
	if err := validateGeom(g); err != nil {
		return Path{}, err
	}

	aspect := screen.AspectRatio()
	to := func(p AppPoint) vec.Vec2 {
		return TransformPoint(p, vp, aspect).vec()
	}

	switch g := g.(type) {
	case Point:
		rx := 2 * radiusPx / float64(screen.Width)
		ry := 2 * radiusPx / float64(screen.Height)
		return Path{Data: ellipse(to(g.At), rx, ry), Style: Filled}, nil

	case Lines:
		p := (&path.Data{}).MoveTo(to(g.Points[0]))
		for _, pt := range g.Points[1:] {
			p = p.LineTo(to(pt))
		}
		return Path{
			Data:  p,
			Style: Stroked,
			Width: TransformLength(g.Width, vp),
		}, nil

	case Polygon:
		p := addRing(&path.Data{}, g.Points, to)
		for _, hole := range g.Holes {
			p = addRing(p, hole, to)
		}
		return Path{Data: p, Style: Filled}, nil

	default:
		panic(fmt.Sprintf("geomdraw: unexpected geometry type %T", g))
	}
}

// addRing appends a closed subpath through pts.
func addRing(p *path.Data, pts []AppPoint, to func(AppPoint) vec.Vec2) *path.Data {
	p = p.MoveTo(to(pts[0]))
	for _, pt := range pts[1:] {
		p = p.LineTo(to(pt))
	}
	return p.Close()
}

// ellipse builds an axis-aligned ellipse from four cubic Bézier arcs,
// counter-clockwise, starting at the rightmost point.
func ellipse(c vec.Vec2, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: c.X + x, Y: c.Y + y} }

	return (&path.Data{}).
		MoveTo(pt(rx, 0)).
		CubeTo(pt(rx, ky), pt(kx, ry), pt(0, ry)).
		CubeTo(pt(-kx, ry), pt(-rx, ky), pt(-rx, 0)).
		CubeTo(pt(-rx, -ky), pt(-kx, -ry), pt(0, -ry)).
		CubeTo(pt(kx, -ry), pt(rx, -ky), pt(rx, 0)).
		Close()
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936
