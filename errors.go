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
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry indicates a primitive which violates its
	// invariants, for example a polyline with fewer than two points.
	ErrInvalidGeometry = errors.New("geomdraw: invalid geometry")

	// ErrTessellation indicates that a path could not be turned into
	// triangles.
	ErrTessellation = errors.New("geomdraw: tessellation failed")

	// ErrTransform indicates an unusable viewport or screen size.
	// This affects the whole call, not a single primitive.
	ErrTransform = errors.New("geomdraw: invalid transform")

	// ErrEmpty is returned when empty buffers are handed to an [Uploader].
	ErrEmpty = errors.New("geomdraw: empty vertex buffer")
)

// PrimitiveError describes a failure which affects a single primitive of
// the input list.
type PrimitiveError struct {
	Index int       // position of the primitive in the input list
	Kind  string    // "point", "lines" or "polygon"
	Style PathStyle // how the primitive is (or would have been) rendered
	Err   error     // wraps ErrInvalidGeometry or ErrTessellation
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("primitive %d (%s, %s): %v", e.Index, e.Kind, e.Style, e.Err)
}

func (e *PrimitiveError) Unwrap() error {
	return e.Err
}
