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
	"math"
)

// Geom is a geometric primitive in application space.
// The implementations are [Point], [Lines] and [Polygon]; no other
// types can implement Geom.
type Geom interface {
	geomKind() string
}

// Point is a single location, drawn as a filled disc of fixed pixel radius.
type Point struct {
	At AppPoint
}

// Lines is an open polyline of at least two points, drawn as a stroke.
// Width is given in application-space units. A width of zero selects the
// default line width of the tessellator.
type Lines struct {
	Points []AppPoint
	Width  float64
}

// Polygon is a closed, filled shape. Points lists the outer boundary
// (at least three points) without repeating the first point at the end.
// Each entry of Holes is an inner boundary of at least three points.
type Polygon struct {
	Points []AppPoint
	Holes  [][]AppPoint
}

func (Point) geomKind() string   { return "point" }
func (Lines) geomKind() string   { return "lines" }
func (Polygon) geomKind() string { return "polygon" }

// Color is an RGB color with components in [0, 1].
type Color [3]float32

// StyledGeom is a primitive together with the color used to draw it.
type StyledGeom struct {
	Geom  Geom
	Color Color
}

// Kind returns "point", "lines" or "polygon".
func Kind(g Geom) string {
	if g == nil {
		return "nil"
	}
	return g.geomKind()
}

// styleOf returns the path style used for g.
func styleOf(g Geom) PathStyle {
	if _, ok := g.(Lines); ok {
		return Stroked
	}
	return Filled
}

// validate checks the invariants of a styled primitive.
// Errors wrap ErrInvalidGeometry.
func validate(sg StyledGeom) error {
	for _, c := range sg.Color {
		if !(c >= 0 && c <= 1) {
			return fmt.Errorf("%w: color component %g outside [0, 1]", ErrInvalidGeometry, c)
		}
	}
	return validateGeom(sg.Geom)
}

// validateGeom checks the point counts, widths and coordinates of g.
func validateGeom(g Geom) error {
	switch g := g.(type) {
	case Point:
		return checkFinite(g.At)
	case Lines:
		if len(g.Points) < 2 {
			return fmt.Errorf("%w: polyline needs at least 2 points, got %d",
				ErrInvalidGeometry, len(g.Points))
		}
		if g.Width < 0 || math.IsNaN(g.Width) || math.IsInf(g.Width, 0) {
			return fmt.Errorf("%w: invalid line width %g", ErrInvalidGeometry, g.Width)
		}
		return checkFinite(g.Points...)
	case Polygon:
		if len(g.Points) < 3 {
			return fmt.Errorf("%w: polygon needs at least 3 points, got %d",
				ErrInvalidGeometry, len(g.Points))
		}
		for i, hole := range g.Holes {
			if len(hole) < 3 {
				return fmt.Errorf("%w: hole %d needs at least 3 points, got %d",
					ErrInvalidGeometry, i, len(hole))
			}
			if err := checkFinite(hole...); err != nil {
				return err
			}
		}
		return checkFinite(g.Points...)
	case nil:
		return fmt.Errorf("%w: missing geometry", ErrInvalidGeometry)
	default:
		panic(fmt.Sprintf("geomdraw: unexpected geometry type %T", g))
	}
}

func checkFinite(pts ...AppPoint) error {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: non-finite coordinate (%g, %g)", ErrInvalidGeometry, p.X, p.Y)
		}
	}
	return nil
}
