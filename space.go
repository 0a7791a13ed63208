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

	"seehuhn.de/go/geom/vec"
)

// AppPoint is a location in application space, the coordinate system of
// the input data (for example metres relative to a map centroid).
type AppPoint struct {
	X, Y float64
}

// DrawPoint is a location in normalized drawing space. The viewport maps
// to [-1/aspect, 1/aspect] × [-1, 1], where aspect is the screen aspect
// ratio.
type DrawPoint struct {
	X, Y float64
}

func (p DrawPoint) vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Viewport is an axis-aligned rectangle in application space.
// A valid viewport has Min.X < Max.X and Min.Y < Max.Y.
type Viewport struct {
	Min, Max AppPoint
}

// Width returns the horizontal extent of the viewport.
func (vp Viewport) Width() float64 {
	return vp.Max.X - vp.Min.X
}

// Height returns the vertical extent of the viewport.
func (vp Viewport) Height() float64 {
	return vp.Max.Y - vp.Min.Y
}

// Contains reports whether p lies inside the closed viewport rectangle.
func (vp Viewport) Contains(p AppPoint) bool {
	return p.X >= vp.Min.X && p.X <= vp.Max.X && p.Y >= vp.Min.Y && p.Y <= vp.Max.Y
}

// Check returns an error wrapping [ErrTransform] if the viewport has
// non-positive width or height, or non-finite corners.
func (vp Viewport) Check() error {
	for _, c := range []float64{vp.Min.X, vp.Min.Y, vp.Max.X, vp.Max.Y} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: viewport corner %g is not finite", ErrTransform, c)
		}
	}
	if !(vp.Width() > 0) || !(vp.Height() > 0) {
		return fmt.Errorf("%w: viewport %gx%g has non-positive extent",
			ErrTransform, vp.Width(), vp.Height())
	}
	return nil
}

// Screen is the size of the target surface in pixels.
type Screen struct {
	Width, Height int
}

// AspectRatio returns Width/Height.
func (s Screen) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Check returns an error wrapping [ErrTransform] unless both dimensions
// are positive.
func (s Screen) Check() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: screen %dx%d has non-positive extent",
			ErrTransform, s.Width, s.Height)
	}
	return nil
}
