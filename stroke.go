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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment represents a line segment in isotropic space
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroke expands p into a ribbon of the given width, using the Cap, Join
// and MiterLimit options. The width is in drawing-space units along the
// y-axis; zero selects Options.LineWidth.
//
// Every segment contributes one quad (four vertices, two triangles).
// Corners add join geometry on their outer side, and the ends of open
// subpaths add caps. Closed subpaths get a join at the closing corner
// instead of caps.
//
// The returned mesh is owned by the Tessellator and is only valid until
// the next call. Errors wrap [ErrTessellation].
func (t *Tessellator) Stroke(p *path.Data, width float64) (*Mesh, error) {
	if err := t.check(p); err != nil {
		return nil, err
	}
	if width == 0 {
		width = t.LineWidth
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: invalid stroke width %g", ErrTessellation, width)
	}
	t.reset()

	t.flattenPath(p)
	d := width / 2 // half-width

	// Degenerate subpaths have no orientation: only round caps produce
	// output, a full circle.
	if t.Cap == graphics.LineCapRound {
		for _, pt := range t.degeneratePoints {
			t.addFan(pt, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi)
		}
	}

	for i := range t.segsOffsets {
		t.strokeSubpath(t.getSubpathSegments(i), t.subpathClosed[i], d)
	}

	return t.result()
}

// getSubpathSegments returns the segments for subpath i as a slice into segs.
func (t *Tessellator) getSubpathSegments(i int) []strokeSegment {
	start := t.segsOffsets[i]
	var end int
	if i+1 < len(t.segsOffsets) {
		end = t.segsOffsets[i+1]
	} else {
		end = len(t.segs)
	}
	return t.segs[start:end]
}

// flattenPath walks the path, flattens curves, and populates the flattening
// buffers with precomputed segment geometry in isotropic space. Results are
// stored in:
//   - t.segs: all segments from all subpaths, contiguous
//   - t.segsOffsets: start index of each subpath in segs
//   - t.subpathClosed: whether each subpath is closed
//   - t.degeneratePoints: degenerate subpaths (no orientation)
func (t *Tessellator) flattenPath(p *path.Data) {
	// clear buffers (preserving capacity)
	t.segs = t.segs[:0]
	t.segsOffsets = t.segsOffsets[:0]
	t.subpathClosed = t.subpathClosed[:0]
	t.degeneratePoints = t.degeneratePoints[:0]

	var currentPt vec.Vec2
	var subpathStartPt vec.Vec2
	subpathStartIdx := 0 // index into segs where current subpath starts
	inSubpath := false
	sawDrawingCmd := false // tracks if we saw LineTo/QuadTo/CubeTo (for degenerate detection)

	endSubpath := func(closed bool) {
		if len(t.segs) == subpathStartIdx {
			t.degeneratePoints = append(t.degeneratePoints, subpathStartPt)
		} else {
			t.segsOffsets = append(t.segsOffsets, subpathStartIdx)
			t.subpathClosed = append(t.subpathClosed, closed)
		}
	}

	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && (len(t.segs) > subpathStartIdx || sawDrawingCmd) {
				endSubpath(false)
			}
			currentPt = t.iso(pts[0])
			subpathStartPt = currentPt
			subpathStartIdx = len(t.segs)
			inSubpath = true
			sawDrawingCmd = false

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			next := t.iso(pts[0])
			t.addStrokeSegment(currentPt, next)
			currentPt = next

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			p2 := t.iso(pts[1])
			t.flattenQuadratic(currentPt, t.iso(pts[0]), p2, t.addStrokeSegment)
			currentPt = p2

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			sawDrawingCmd = true
			p3 := t.iso(pts[2])
			t.flattenCubic(currentPt, t.iso(pts[0]), t.iso(pts[1]), p3, t.addStrokeSegment)
			currentPt = p3

		case path.CmdClose:
			if inSubpath {
				if currentPt != subpathStartPt {
					t.addStrokeSegment(currentPt, subpathStartPt)
				}
				endSubpath(true)
				currentPt = subpathStartPt
				subpathStartIdx = len(t.segs)
				inSubpath = false
				sawDrawingCmd = false
			}
		}
	}

	// handle unclosed subpath at end
	if inSubpath && (len(t.segs) > subpathStartIdx || sawDrawingCmd) {
		endSubpath(false)
	}
}

// addStrokeSegment adds a line segment to the flattening buffer.
func (t *Tessellator) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return // skip degenerate segment
	}
	tangent := d.Mul(1 / length)
	n := vec.Vec2{X: -tangent.Y, Y: tangent.X} // unit normal (90° CCW)
	t.segs = append(t.segs, strokeSegment{A: a, B: b, T: tangent, N: n})
}

// strokeSubpath emits the triangles for a single subpath.
func (t *Tessellator) strokeSubpath(segs []strokeSegment, closed bool, d float64) {
	if len(segs) == 0 {
		return
	}
	first := &segs[0]
	last := &segs[len(segs)-1]

	if !closed {
		t.addCap(first.A, first.T.Mul(-1), d)
	}
	for i := range segs {
		seg := &segs[i]
		t.addSegment(seg, d)
		if i < len(segs)-1 {
			t.addJoin(seg.B, seg, &segs[i+1], d)
		}
	}
	if closed {
		if len(segs) > 1 {
			t.addJoin(last.B, last, first, d)
		}
	} else {
		t.addCap(last.B, last.T, d)
	}
}

// addSegment adds the quad covering one segment of the ribbon.
func (t *Tessellator) addSegment(seg *strokeSegment, d float64) {
	off := seg.N.Mul(d)
	a := t.addVertex(seg.A.Sub(off))
	b := t.addVertex(seg.B.Sub(off))
	c := t.addVertex(seg.B.Add(off))
	e := t.addVertex(seg.A.Add(off))
	t.addTriangle(a, b, c)
	t.addTriangle(a, c, e)
}

// addJoin fills the gap on the outer side of the corner P, where the
// segment s1 ends and s2 starts. d is half the stroke width.
func (t *Tessellator) addJoin(P vec.Vec2, s1, s2 *strokeSegment, d float64) {
	cosTheta := s1.T.Dot(s2.T)
	sinTheta := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X // cross product Z component

	// Check for cusp (path doubling back on itself)
	if cosTheta < cuspCosineThreshold {
		t.addCap(P, s1.T, d)
		t.addCap(P, s2.T.Mul(-1), d)
		return
	}

	// Skip if nearly collinear
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	// A left turn (sinTheta > 0) has its outer side on -N.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	n1 := s1.N.Mul(side)
	n2 := s2.N.Mul(side)

	switch t.Join {
	case graphics.LineJoinRound:
		t.addFan(P, d, n1, math.Atan2(sinTheta, cosTheta))
		return

	case graphics.LineJoinMiter:
		// miterLength = 1 / sin(φ/2) where φ is the interior angle at the
		// corner; sin(φ/2) = cos(θ/2) = sqrt((1 + cosθ) / 2)
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if sinHalf > 0 && 1/sinHalf <= t.MiterLimit+miterEpsilon {
			bisector := n1.Add(n2)
			if bisectorLen := bisector.Length(); bisectorLen > zeroLengthThreshold {
				bisector = bisector.Mul(1 / bisectorLen)
				c := t.addVertex(P)
				o1 := t.addVertex(P.Add(n1.Mul(d)))
				m := t.addVertex(P.Add(bisector.Mul(d / sinHalf)))
				o2 := t.addVertex(P.Add(n2.Mul(d)))
				t.addTriangle(c, o1, m)
				t.addTriangle(c, m, o2)
				return
			}
		}
		// Fall through to bevel if miter limit exceeded
	}

	c := t.addVertex(P)
	o1 := t.addVertex(P.Add(n1.Mul(d)))
	o2 := t.addVertex(P.Add(n2.Mul(d)))
	t.addTriangle(c, o1, o2)
}

// addCap adds a line cap at point P.
// T is the outward tangent direction (away from the line).
// d is half the stroke width.
func (t *Tessellator) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X} // normal (90° CCW from T)

	switch t.Cap {
	case graphics.LineCapSquare:
		// extend by d along the tangent
		ext := P.Add(T.Mul(d))
		a := t.addVertex(P.Add(N.Mul(d)))
		b := t.addVertex(P.Sub(N.Mul(d)))
		c := t.addVertex(ext.Sub(N.Mul(d)))
		e := t.addVertex(ext.Add(N.Mul(d)))
		t.addTriangle(a, b, c)
		t.addTriangle(a, c, e)

	case graphics.LineCapRound:
		// Semicircle from N, clockwise through T, to -N.
		t.addFan(P, d, N, -math.Pi)
	}
	// butt caps add nothing
}

// addFan adds a triangle fan approximating a circular sector.
// center is the arc center, radius is the arc radius.
// startDir is the unit vector from center to arc start.
// sweep is the sweep angle in radians (positive = CCW).
func (t *Tessellator) addFan(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	absSweep := math.Abs(sweep)

	// For a chord subtending angle θ on a circle of radius r, the maximum
	// deviation (sagitta) is r*(1 - cos(θ/2)). For this to equal tolerance ε:
	//   θ = 2*acos(1 - ε/r)
	n := 1
	if radius > t.Tolerance {
		angleStep := 2 * math.Acos(1-t.Tolerance/radius)
		if angleStep > 0 && !math.IsNaN(angleStep) {
			n = int(math.Ceil(absSweep / angleStep))
		}
	}
	// at least one step per quarter turn, so that full circles keep an area
	n = max(n, int(math.Ceil(absSweep/(math.Pi/2))), 1)

	c := t.addVertex(center)
	prev := t.addVertex(center.Add(startDir.Mul(radius)))
	dt := sweep / float64(n)
	for i := 1; i <= n; i++ {
		angle := float64(i) * dt
		// Rotate startDir by angle
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		cur := t.addVertex(center.Add(dir.Mul(radius)))
		t.addTriangle(c, prev, cur)
		prev = cur
	}
}
