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
	"log/slog"
)

// Assembler turns a list of styled primitives into a single pair of
// vertex and index buffers.
type Assembler struct {
	// Screen is the size of the target surface in pixels.
	Screen Screen

	// PointRadius is the radius of point markers, in pixels.
	PointRadius float64

	// Options controls the tessellation.
	Options Options

	// Strict makes Assemble fail on the first invalid primitive, instead
	// of skipping it and reporting it in Result.Failures.
	Strict bool

	// Logger receives progress and diagnostic messages.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// NewAssembler returns an Assembler for the given screen size, using
// default settings.
func NewAssembler(screen Screen) *Assembler {
	return &Assembler{
		Screen:      screen,
		PointRadius: defaultPointRadius,
		Options:     DefaultOptions(),
		Logger:      NopLogger(),
	}
}

// Result is the output of [Assembler.Assemble].
type Result struct {
	Buffers VertexBuffers

	// Failures lists the primitives which were skipped, in input order.
	Failures []*PrimitiveError
}

// Assemble tessellates the primitives in order and concatenates the
// results. All vertices of a primitive carry the primitive's color.
//
// An invalid viewport or screen size is reported as an error wrapping
// [ErrTransform], before any work is done. Primitives which cannot be
// drawn are skipped and listed in Result.Failures. In strict mode, the
// first such failure is returned as a [*PrimitiveError] instead.
//
// The output only depends on the arguments and the Assembler settings;
// repeated calls give identical buffers.
func (a *Assembler) Assemble(geoms []StyledGeom, vp Viewport) (*Result, error) {
	if err := vp.Check(); err != nil {
		return nil, err
	}
	if err := a.Screen.Check(); err != nil {
		return nil, err
	}
	logger := a.Logger
	if logger == nil {
		logger = NopLogger()
	}

	tess := NewTessellator(a.Options, a.Screen.AspectRatio())
	res := &Result{}
	out := &res.Buffers

	for i, sg := range geoms {
		mesh, err := a.tessellate(tess, sg, vp)
		if err != nil {
			pErr := &PrimitiveError{
				Index: i,
				Kind:  Kind(sg.Geom),
				Style: styleOf(sg.Geom),
				Err:   err,
			}
			if a.Strict {
				return nil, pErr
			}
			logger.Warn("skipping primitive", "index", i, "kind", pErr.Kind, "err", err)
			res.Failures = append(res.Failures, pErr)
			continue
		}

		base := uint32(len(out.Vertices))
		for _, pos := range mesh.Positions {
			out.Vertices = append(out.Vertices, Vertex{
				Pos:   [2]float32{float32(pos.X), float32(pos.Y)},
				Color: sg.Color,
			})
		}
		for _, idx := range mesh.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
		logger.Debug("tessellated primitive",
			"index", i,
			"kind", Kind(sg.Geom),
			"vertices", len(mesh.Positions),
			"triangles", mesh.NumTriangles())
	}

	logger.Info("assembled buffers",
		"primitives", len(geoms),
		"skipped", len(res.Failures),
		"vertices", len(out.Vertices),
		"triangles", out.NumTriangles())
	return res, nil
}

// tessellate converts a single primitive into a mesh.
func (a *Assembler) tessellate(tess *Tessellator, sg StyledGeom, vp Viewport) (*Mesh, error) {
	if err := validate(sg); err != nil {
		return nil, err
	}
	p, err := BuildPath(sg.Geom, vp, a.Screen, a.PointRadius)
	if err != nil {
		return nil, err
	}
	return tess.Tessellate(p)
}

// Assemble tessellates geoms for the given viewport and screen, using the
// default settings of [NewAssembler].
func Assemble(geoms []StyledGeom, vp Viewport, screen Screen) (*Result, error) {
	return NewAssembler(screen).Assemble(geoms, vp)
}

// Err returns the failures of res joined into a single error, or nil if
// all primitives were drawn.
func (res *Result) Err() error {
	errs := make([]error, len(res.Failures))
	for i, f := range res.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// defaultPointRadius is the radius of point markers, in pixels.
const defaultPointRadius = 10
