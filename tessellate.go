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

	"github.com/ByteArena/poly2tri-go"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Options holds the parameters which control tessellation.
type Options struct {
	// Tolerance bounds the distance between the tessellated outline and
	// the ideal path, in drawing-space units along the y-axis.
	// Must be positive.
	Tolerance float64

	// LineWidth is the stroke width used for paths which do not specify
	// a width of their own, in drawing-space units.
	LineWidth float64

	// Cap sets the style for stroke endpoints (butt, round, or square).
	Cap graphics.LineCapStyle

	// Join sets the style for stroke corners (miter, round, or bevel).
	Join graphics.LineJoinStyle

	// MiterLimit caps miter join length. Must be at least 1.0.
	MiterLimit float64
}

// DefaultOptions returns the options used by [NewAssembler].
func DefaultOptions() Options {
	return Options{
		Tolerance:  defaultTolerance,
		LineWidth:  defaultLineWidth,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Mesh is the output of a single tessellation: positions in drawing space
// and counter-clockwise triangles given as index triplets into Positions.
type Mesh struct {
	Positions []DrawPoint
	Indices   []uint32
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Tessellator converts drawing-space paths into triangle meshes.
// Create one instance and reuse it for multiple paths. Internal buffers
// grow as needed but never shrink.
//
// Geometry is processed in an isotropic copy of drawing space, where x is
// multiplied by AspectRatio. In this space one unit covers the same number
// of pixels along both axes, so that stroke widths and point radii do not
// depend on direction.
//
// A Tessellator is not safe for concurrent use.
type Tessellator struct {
	Options

	// AspectRatio is the width/height ratio of the target screen.
	// Must be positive.
	AspectRatio float64

	mesh Mesh

	// fill buffers
	rings       []vec.Vec2 // flattened ring vertices (all rings contiguous)
	ringOffsets []int      // start index of each ring in rings

	// stroke buffers
	segs             []strokeSegment // all segments from all subpaths, contiguous
	segsOffsets      []int           // start index of each subpath in segs
	subpathClosed    []bool          // whether each subpath is closed
	degeneratePoints []vec.Vec2      // degenerate subpaths (no orientation)
}

// NewTessellator returns a Tessellator for a screen with the given aspect
// ratio.
func NewTessellator(opts Options, aspectRatio float64) *Tessellator {
	return &Tessellator{
		Options:     opts,
		AspectRatio: aspectRatio,
	}
}

// Tessellate fills or strokes p, depending on p.Style.
//
// The returned mesh is owned by the Tessellator and is only valid until
// the next call. Errors wrap [ErrTessellation].
func (t *Tessellator) Tessellate(p Path) (*Mesh, error) {
	switch p.Style {
	case Filled:
		return t.Fill(p.Data)
	case Stroked:
		return t.Stroke(p.Data, p.Width)
	default:
		return nil, fmt.Errorf("%w: unknown path style %s", ErrTessellation, p.Style)
	}
}

// Fill triangulates the interior of p. The first subpath is the outer
// boundary, all further subpaths are holes. Open subpaths are closed
// implicitly.
//
// The returned mesh is owned by the Tessellator and is only valid until
// the next call. Errors wrap [ErrTessellation].
func (t *Tessellator) Fill(p *path.Data) (*Mesh, error) {
	if err := t.check(p); err != nil {
		return nil, err
	}
	t.reset()

	t.collectRings(p)
	if len(t.ringOffsets) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrTessellation)
	}

	rings := make([][]vec.Vec2, 0, len(t.ringOffsets))
	for i := range t.ringOffsets {
		ring := cleanRing(t.getRing(i))
		if len(ring) < 3 {
			if i == 0 {
				return nil, fmt.Errorf("%w: outer boundary has zero area", ErrTessellation)
			}
			// a collapsed hole removes nothing
			continue
		}
		rings = append(rings, ring)
	}

	base := make([]uint32, len(rings))
	for i, ring := range rings {
		base[i] = uint32(len(t.mesh.Positions))
		for _, v := range ring {
			t.addVertex(v)
		}
	}

	if len(rings) == 1 && isConvex(rings[0]) {
		for j := 1; j+1 < len(rings[0]); j++ {
			t.addTriangle(base[0], base[0]+uint32(j), base[0]+uint32(j+1))
		}
		return t.result()
	}

	if err := t.sweep(rings, base); err != nil {
		t.mesh.Indices = t.mesh.Indices[:0]
		if err := t.earClip(rings, base); err != nil {
			return nil, err
		}
	}
	return t.result()
}

// isConvex reports whether ring is a convex polygon, in either orientation.
// Consecutive vertices must be distinct and no three consecutive vertices
// may be collinear.
func isConvex(ring []vec.Vec2) bool {
	n := len(ring)
	var turning, sign float64
	for i := range n {
		a, b, c := ring[i], ring[(i+1)%n], ring[(i+2)%n]
		u := b.Sub(a)
		w := c.Sub(b)
		cross := u.X*w.Y - u.Y*w.X
		if cross*sign < 0 {
			return false
		}
		if sign == 0 {
			sign = cross
		}
		turning += math.Atan2(cross, u.Dot(w))
	}
	// star polygons turn in one direction, but more than once
	return math.Abs(math.Abs(turning)-2*math.Pi) < 1e-6
}

// sweep triangulates the rings with the poly2tri sweep-line algorithm.
// Vertex j of ring i has mesh index base[i]+j. An error is returned if
// the triangulation fails or does not cover the area enclosed by the
// rings.
func (t *Tessellator) sweep(rings [][]vec.Vec2, base []uint32) error {
	index := make(map[*poly2tri.Point]uint32)
	contours := make([][]*poly2tri.Point, len(rings))
	for i, ring := range rings {
		contour := make([]*poly2tri.Point, len(ring))
		for j, v := range ring {
			pt := poly2tri.NewPoint(v.X, v.Y)
			contour[j] = pt
			index[pt] = base[i] + uint32(j)
		}
		contours[i] = contour
	}

	triangles, err := triangulate(contours)
	if err != nil {
		return err
	}
	for _, tri := range triangles {
		a, okA := index[tri.Points[0]]
		b, okB := index[tri.Points[1]]
		c, okC := index[tri.Points[2]]
		if !okA || !okB || !okC {
			return fmt.Errorf("%w: triangulation introduced new vertices", ErrTessellation)
		}
		t.addTriangle(a, b, c)
	}

	want := math.Abs(signedArea(rings[0]))
	for _, hole := range rings[1:] {
		want -= math.Abs(signedArea(hole))
	}
	var got float64
	for i := 0; i < len(t.mesh.Indices); i += 3 {
		got += t.isoArea(t.mesh.Indices[i], t.mesh.Indices[i+1], t.mesh.Indices[i+2])
	}
	if math.Abs(got-want) > coverageTolerance*math.Abs(want) {
		return fmt.Errorf("%w: triangles cover area %g instead of %g", ErrTessellation, got, want)
	}
	return nil
}

// collectRings walks the path and stores the flattened vertices of every
// subpath in t.rings.
func (t *Tessellator) collectRings(p *path.Data) {
	t.rings = t.rings[:0]
	t.ringOffsets = t.ringOffsets[:0]

	addPoint := func(_, to vec.Vec2) {
		t.rings = append(t.rings, to)
	}

	var current vec.Vec2
	inSubpath := false
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			current = t.iso(pts[0])
			t.ringOffsets = append(t.ringOffsets, len(t.rings))
			t.rings = append(t.rings, current)
			inSubpath = true
		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			next := t.iso(pts[0])
			addPoint(current, next)
			current = next
		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			p2 := t.iso(pts[1])
			t.flattenQuadratic(current, t.iso(pts[0]), p2, addPoint)
			current = p2
		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			p3 := t.iso(pts[2])
			t.flattenCubic(current, t.iso(pts[0]), t.iso(pts[1]), p3, addPoint)
			current = p3
		case path.CmdClose:
			inSubpath = false
		}
	}
}

// getRing returns the vertices of ring i as a slice into t.rings.
func (t *Tessellator) getRing(i int) []vec.Vec2 {
	start := t.ringOffsets[i]
	end := len(t.rings)
	if i+1 < len(t.ringOffsets) {
		end = t.ringOffsets[i+1]
	}
	return t.rings[start:end]
}

// cleanRing removes repeated vertices, a repeated start point at the end,
// and vertices where the boundary does not change direction. The sweep-line
// triangulation cannot handle any of these. The result is a new slice.
func cleanRing(ring []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, 0, len(ring))
	for _, v := range ring {
		if len(out) > 0 && v.Sub(out[len(out)-1]).Length() < zeroLengthThreshold {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[0].Sub(out[len(out)-1]).Length() < zeroLengthThreshold {
		out = out[:len(out)-1]
	}

	for changed := true; changed && len(out) >= 3; {
		changed = false
		n := len(out)
		for i := 0; i < n; i++ {
			a := out[(i+n-1)%n]
			b := out[i]
			c := out[(i+1)%n]
			u := b.Sub(a)
			w := c.Sub(b)
			cross := u.X*w.Y - u.Y*w.X
			if math.Abs(cross) <= collinearityThreshold*u.Length()*w.Length() {
				out = append(out[:i], out[i+1:]...)
				changed = true
				break
			}
		}
	}
	return out
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
func (t *Tessellator) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// Compute error vector: e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if errLen := e.Length(); errLen > t.Tolerance {
		n = int(math.Ceil(math.Sqrt(errLen / t.Tolerance)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		// B(s) = (1-s)²P0 + 2(1-s)sP1 + s²P2
		oms := 1 - s
		pt := p0.Mul(oms * oms).Add(p1.Mul(2 * oms * s)).Add(p2.Mul(s * s))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier using Wang's formula and calls emit
// for each line segment.
func (t *Tessellator) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * t.Tolerance))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		// B(s) = (1-s)³P0 + 3(1-s)²sP1 + 3(1-s)s²P2 + s³P3
		oms := 1 - s
		oms2 := oms * oms
		s2 := s * s
		pt := p0.Mul(oms2 * oms).Add(p1.Mul(3 * oms2 * s)).Add(p2.Mul(3 * oms * s2)).Add(p3.Mul(s2 * s))
		emit(prev, pt)
		prev = pt
	}
}

// check verifies the tessellator configuration.
func (t *Tessellator) check(p *path.Data) error {
	if p == nil {
		return fmt.Errorf("%w: missing path", ErrTessellation)
	}
	if !(t.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance %g is not positive", ErrTessellation, t.Tolerance)
	}
	if !(t.AspectRatio > 0) || math.IsInf(t.AspectRatio, 0) {
		return fmt.Errorf("%w: invalid aspect ratio %g", ErrTessellation, t.AspectRatio)
	}
	return nil
}

// iso maps a drawing-space point into isotropic space.
func (t *Tessellator) iso(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: v.X * t.AspectRatio, Y: v.Y}
}

func (t *Tessellator) reset() {
	t.mesh.Positions = t.mesh.Positions[:0]
	t.mesh.Indices = t.mesh.Indices[:0]
}

// addVertex stores an isotropic-space point in the mesh and returns its
// index.
func (t *Tessellator) addVertex(v vec.Vec2) uint32 {
	idx := uint32(len(t.mesh.Positions))
	t.mesh.Positions = append(t.mesh.Positions, DrawPoint{X: v.X / t.AspectRatio, Y: v.Y})
	return idx
}

// addTriangle adds the triangle abc with counter-clockwise orientation.
// Triangles with (almost) zero area are dropped.
func (t *Tessellator) addTriangle(a, b, c uint32) {
	area := t.isoArea(a, b, c)
	switch {
	case area > areaEpsilon:
		t.mesh.Indices = append(t.mesh.Indices, a, b, c)
	case area < -areaEpsilon:
		t.mesh.Indices = append(t.mesh.Indices, a, c, b)
	}
}

// isoArea returns the signed area of the triangle abc in isotropic space.
func (t *Tessellator) isoArea(a, b, c uint32) float64 {
	pa := t.mesh.Positions[a]
	pb := t.mesh.Positions[b]
	pc := t.mesh.Positions[c]
	return t.AspectRatio * ((pb.X-pa.X)*(pc.Y-pa.Y) - (pc.X-pa.X)*(pb.Y-pa.Y)) / 2
}

// result returns the accumulated mesh, or an error if no triangles were
// produced.
func (t *Tessellator) result() (*Mesh, error) {
	if len(t.mesh.Indices) == 0 {
		return nil, fmt.Errorf("%w: no triangles produced", ErrTessellation)
	}
	return &t.mesh, nil
}

const (
	// defaultTolerance is the default flattening tolerance, in
	// drawing-space units.
	defaultTolerance = 1e-4

	// defaultLineWidth is the stroke width used for lines without
	// a width of their own, in drawing-space units.
	defaultLineWidth = 0.002

	// defaultMiterLimit limits miter joins to four times the half width.
	defaultMiterLimit = 4.0

	// areaEpsilon is the smallest triangle area (in squared isotropic
	// units) which is kept in the output.
	areaEpsilon = 1e-14

	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// coverageTolerance is the relative error allowed between the area
	// of a fill triangulation and the area enclosed by its rings.
	coverageTolerance = 1e-6

	// collinearityThreshold is used to detect nearly collinear segments
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cosine threshold for detecting cusps
	cuspCosineThreshold = -0.9999
)
