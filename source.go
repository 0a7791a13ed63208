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

import "context"

// Source supplies styled primitives, for example decoded from map data.
// Implementations may do their work in parallel, but must return the
// primitives in a deterministic order.
type Source interface {
	// StyledGeoms returns the primitives which touch bbox.
	StyledGeoms(ctx context.Context, bbox Viewport) ([]StyledGeom, error)
}

// SliceSource is a Source backed by an in-memory list.
type SliceSource []StyledGeom

// StyledGeoms returns the primitives with at least one point inside bbox,
// in their original order.
func (s SliceSource) StyledGeoms(ctx context.Context, bbox Viewport) ([]StyledGeom, error) {
	if err := bbox.Check(); err != nil {
		return nil, err
	}

	var res []StyledGeom
	for i, sg := range s {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if touches(sg.Geom, bbox) {
			res = append(res, sg)
		}
	}
	return res, nil
}

// touches reports whether any point of g lies inside bbox.
// Invalid primitives are kept, so that they are reported later.
func touches(g Geom, bbox Viewport) bool {
	var pts []AppPoint
	switch g := g.(type) {
	case Point:
		pts = []AppPoint{g.At}
	case Lines:
		pts = g.Points
	case Polygon:
		pts = g.Points
	default:
		return true
	}
	if len(pts) == 0 {
		return true
	}
	for _, p := range pts {
		if bbox.Contains(p) {
			return true
		}
	}
	return false
}
