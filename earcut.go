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
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// earVertex is a polygon corner for ear clipping, together with its index
// in the output mesh.
type earVertex struct {
	pos vec.Vec2
	idx uint32
}

// earClip triangulates the polygon with outer boundary rings[0] and holes
// rings[1:] by ear clipping. Vertex j of ring i has mesh index base[i]+j.
//
// The holes are first joined to the outer boundary by pairs of bridge
// edges, which turns the polygon into a single ring.
func (t *Tessellator) earClip(rings [][]vec.Vec2, base []uint32) error {
	poly := orientRing(rings[0], base[0], true)
	holes := make([][]earVertex, 0, len(rings)-1)
	for i := 1; i < len(rings); i++ {
		holes = append(holes, orientRing(rings[i], base[i], false))
	}
	slices.SortStableFunc(holes, func(a, b []earVertex) int {
		return cmp.Compare(maxX(b), maxX(a))
	})

	for k, hole := range holes {
		var ok bool
		poly, ok = bridgeHole(poly, hole, holes[k+1:])
		if !ok {
			return fmt.Errorf("%w: cannot connect hole to boundary", ErrTessellation)
		}
	}
	return t.clipEars(poly)
}

// orientRing converts ring into ear clipping vertices, reversing the order
// if needed so that the ring runs counter-clockwise (ccw) or clockwise.
func orientRing(ring []vec.Vec2, base uint32, ccw bool) []earVertex {
	out := make([]earVertex, len(ring))
	for j, v := range ring {
		out[j] = earVertex{pos: v, idx: base + uint32(j)}
	}
	if (signedArea(ring) > 0) != ccw {
		slices.Reverse(out)
	}
	return out
}

func maxX(ring []earVertex) float64 {
	x := math.Inf(-1)
	for _, v := range ring {
		x = max(x, v.pos.X)
	}
	return x
}

// bridgeHole splices hole into poly along an edge from a hole vertex to a
// visible vertex of poly. Hole vertices are tried from right to left and
// polygon vertices from near to far. The holes in rest are not yet part of
// poly but still block the view.
func bridgeHole(poly, hole []earVertex, rest [][]earVertex) ([]earVertex, bool) {
	order := make([]int, len(hole))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp.Compare(hole[j].pos.X, hole[i].pos.X)
	})

	cand := make([]int, len(poly))
	for _, m := range order {
		from := hole[m].pos
		for j := range cand {
			cand[j] = j
		}
		slices.SortStableFunc(cand, func(i, j int) int {
			di := poly[i].pos.Sub(from)
			dj := poly[j].pos.Sub(from)
			return cmp.Compare(di.Dot(di), dj.Dot(dj))
		})

		for _, j := range cand {
			to := poly[j].pos
			if to == from || !inCone(poly, j, from) || !inCone(hole, m, to) {
				continue
			}
			if !clearOf(from, to, poly) || !clearOf(from, to, hole) {
				continue
			}
			blocked := false
			for _, other := range rest {
				if !clearOf(from, to, other) {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}

			out := make([]earVertex, 0, len(poly)+len(hole)+2)
			out = append(out, poly[:j+1]...)
			out = append(out, hole[m:]...)
			out = append(out, hole[:m+1]...)
			out = append(out, poly[j:]...)
			return out, true
		}
	}
	return nil, false
}

// inCone reports whether the direction from ring[i] towards q points into
// the region on the left of the ring.
func inCone(ring []earVertex, i int, q vec.Vec2) bool {
	n := len(ring)
	prev := ring[(i+n-1)%n].pos
	v := ring[i].pos
	next := ring[(i+1)%n].pos
	if orient(prev, v, next) > 0 {
		return orient(prev, v, q) > 0 && orient(v, next, q) > 0
	}
	return orient(prev, v, q) > 0 || orient(v, next, q) > 0
}

// clearOf reports whether the segment ab neither crosses an edge of ring
// nor runs through one of its vertices.
func clearOf(a, b vec.Vec2, ring []earVertex) bool {
	n := len(ring)
	for i, v := range ring {
		w := ring[(i+1)%n].pos
		if straddles(a, b, v.pos, w) && straddles(v.pos, w, a, b) {
			return false
		}
		if onSegment(v.pos, a, b) {
			return false
		}
	}
	return true
}

// straddles reports whether c and d lie strictly on opposite sides of the
// line through a and b.
func straddles(a, b, c, d vec.Vec2) bool {
	s := orient(a, b, c)
	t := orient(a, b, d)
	return s > 0 && t < 0 || s < 0 && t > 0
}

// onSegment reports whether p lies on the segment ab, excluding the end
// points.
func onSegment(p, a, b vec.Vec2) bool {
	if p == a || p == b {
		return false
	}
	d := b.Sub(a)
	l2 := d.Dot(d)
	if math.Abs(orient(a, b, p)) > flatThreshold*l2 {
		return false
	}
	s := p.Sub(a).Dot(d) / l2
	return s > 0 && s < 1
}

// clipEars triangulates a counter-clockwise ring by repeatedly cutting off
// a corner whose triangle contains no other vertex.
func (t *Tessellator) clipEars(poly []earVertex) error {
	i, stall := 0, 0
	for len(poly) > 3 {
		n := len(poly)
		i %= n
		switch {
		case isFlat(poly, i):
			// a corner without area can go without a triangle
			poly = slices.Delete(poly, i, i+1)
		case isEar(poly, i):
			t.addTriangle(poly[(i+n-1)%n].idx, poly[i].idx, poly[(i+1)%n].idx)
			poly = slices.Delete(poly, i, i+1)
		default:
			i++
			stall++
			if stall > n {
				return fmt.Errorf("%w: no ear found in %d-gon", ErrTessellation, n)
			}
			continue
		}
		stall = 0
		if i > 0 {
			i--
		}
	}
	t.addTriangle(poly[0].idx, poly[1].idx, poly[2].idx)
	return nil
}

func isFlat(poly []earVertex, i int) bool {
	n := len(poly)
	a := poly[(i+n-1)%n].pos
	b := poly[i].pos
	c := poly[(i+1)%n].pos
	u := b.Sub(a)
	w := c.Sub(b)
	return math.Abs(orient(a, b, c)) <= flatThreshold*(u.Dot(u)+w.Dot(w))
}

// isEar reports whether the corner at poly[i] is convex and its triangle
// contains no other vertex of the ring. Vertices which coincide with a
// corner of the triangle are ignored, since bridge edges duplicate them.
func isEar(poly []earVertex, i int) bool {
	n := len(poly)
	ia := (i + n - 1) % n
	ic := (i + 1) % n
	a, b, c := poly[ia].pos, poly[i].pos, poly[ic].pos
	if orient(a, b, c) <= 0 {
		return false
	}
	for j, v := range poly {
		if j == ia || j == i || j == ic {
			continue
		}
		p := v.pos
		if p == a || p == b || p == c {
			continue
		}
		if orient(a, b, p) >= 0 && orient(b, c, p) >= 0 && orient(c, a, p) >= 0 {
			return false
		}
	}
	return true
}

// orient returns twice the signed area of the triangle abc. The result is
// positive if abc is counter-clockwise.
func orient(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// signedArea returns the area enclosed by ring, positive for
// counter-clockwise rings.
func signedArea(ring []vec.Vec2) float64 {
	var sum float64
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		sum += a.X*b.Y - a.Y*b.X
	}
	return sum / 2
}

// flatThreshold is the relative size below which a corner is treated as
// having no area.
const flatThreshold = 1e-12
