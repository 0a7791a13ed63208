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
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestStrokeCounts(t *testing.T) {
	rightAngle := polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0}, vec.Vec2{X: 0.5, Y: 0.5})
	sharp := polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 0.2})

	cases := []struct {
		name     string
		p        *path.Data
		opts     func(*Options)
		vertices int
		indices  int
	}{
		{
			name:     "segment",
			p:        polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0}),
			vertices: 4, indices: 6,
		},
		{
			name:     "straight",
			p:        polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.25, Y: 0}, vec.Vec2{X: 0.5, Y: 0}),
			vertices: 8, indices: 12,
		},
		{
			name:     "miter",
			p:        rightAngle,
			vertices: 12, indices: 18,
		},
		{
			name:     "bevel",
			p:        rightAngle,
			opts:     func(o *Options) { o.Join = graphics.LineJoinBevel },
			vertices: 11, indices: 15,
		},
		{
			name:     "miter_limit_exceeded",
			p:        sharp,
			vertices: 11, indices: 15,
		},
		{
			name:     "miter_limit_raised",
			p:        sharp,
			opts:     func(o *Options) { o.MiterLimit = 20 },
			vertices: 12, indices: 18,
		},
		{
			name:     "square_caps",
			p:        polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0}),
			opts:     func(o *Options) { o.Cap = graphics.LineCapSquare },
			vertices: 12, indices: 18,
		},
		{
			name:     "doubling_back",
			p:        polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0}, vec.Vec2{X: 0.25, Y: 0}),
			vertices: 8, indices: 12,
		},
		{
			name:     "closed_square",
			p:        ring(square(0, 0, 0.5, 0.5)...),
			vertices: 32, indices: 48,
		},
		{
			name:     "repeated_points",
			p:        polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0}, vec.Vec2{X: 0.5, Y: 0}),
			vertices: 4, indices: 6,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultOptions()
			if c.opts != nil {
				c.opts(&opts)
			}
			tess := NewTessellator(opts, 1)
			mesh, err := tess.Stroke(c.p, 0.1)
			if err != nil {
				t.Fatal(err)
			}
			checkMesh(t, mesh, 1)
			if len(mesh.Positions) != c.vertices || len(mesh.Indices) != c.indices {
				t.Errorf("got %d vertices, %d indices, want %d, %d",
					len(mesh.Positions), len(mesh.Indices), c.vertices, c.indices)
			}
		})
	}
}

func TestStrokeJoinShape(t *testing.T) {
	p := polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0}, vec.Vec2{X: 0.5, Y: 0.5})
	nearCorner := DrawPoint{X: 0.5346, Y: -0.0346} // inside the round join
	nearTip := DrawPoint{X: 0.549, Y: -0.049}      // inside the miter only

	cases := []struct {
		join       graphics.LineJoinStyle
		nearCorner bool
		nearTip    bool
	}{
		{graphics.LineJoinMiter, true, true},
		{graphics.LineJoinRound, true, false},
		{graphics.LineJoinBevel, false, false},
	}
	for _, c := range cases {
		opts := DefaultOptions()
		opts.Join = c.join
		tess := NewTessellator(opts, 1)
		mesh, err := tess.Stroke(p, 0.1)
		if err != nil {
			t.Fatal(err)
		}
		checkMesh(t, mesh, 1)
		if got := covers(mesh, nearCorner); got != c.nearCorner {
			t.Errorf("%v: covers %v = %t, want %t", c.join, nearCorner, got, c.nearCorner)
		}
		if got := covers(mesh, nearTip); got != c.nearTip {
			t.Errorf("%v: covers %v = %t, want %t", c.join, nearTip, got, c.nearTip)
		}
	}
}

func TestStrokeCaps(t *testing.T) {
	p := polyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 0.5, Y: 0})
	const d = 0.05

	cases := []struct {
		cap    graphics.LineCapStyle
		lo, hi DrawPoint
	}{
		{graphics.LineCapButt, DrawPoint{X: 0, Y: -d}, DrawPoint{X: 0.5, Y: d}},
		{graphics.LineCapSquare, DrawPoint{X: -d, Y: -d}, DrawPoint{X: 0.5 + d, Y: d}},
		{graphics.LineCapRound, DrawPoint{X: -d, Y: -d}, DrawPoint{X: 0.5 + d, Y: d}},
	}
	for _, c := range cases {
		opts := DefaultOptions()
		opts.Cap = c.cap
		tess := NewTessellator(opts, 1)
		mesh, err := tess.Stroke(p, 2*d)
		if err != nil {
			t.Fatal(err)
		}
		checkMesh(t, mesh, 1)

		// round caps are approximated by chords within the tolerance
		slack := 1e-12
		if c.cap == graphics.LineCapRound {
			slack = 2 * opts.Tolerance
		}
		lo, hi := bbox(mesh)
		if math.Abs(lo.X-c.lo.X) > slack || math.Abs(lo.Y-c.lo.Y) > 1e-12 ||
			math.Abs(hi.X-c.hi.X) > slack || math.Abs(hi.Y-c.hi.Y) > 1e-12 {
			t.Errorf("%v: bbox %v-%v, want %v-%v", c.cap, lo, hi, c.lo, c.hi)
		}
	}
}

func TestStrokeDegenerate(t *testing.T) {
	p := polyline(vec.Vec2{X: 0.2, Y: 0.2}, vec.Vec2{X: 0.2, Y: 0.2})

	tess := NewTessellator(DefaultOptions(), 1)
	if _, err := tess.Stroke(p, 0.1); !errors.Is(err, ErrTessellation) {
		t.Errorf("butt caps: got %v, want ErrTessellation", err)
	}

	tess.Cap = graphics.LineCapRound
	mesh, err := tess.Stroke(p, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	checkMesh(t, mesh, 1)
	if area := totalArea(mesh, 1); math.Abs(area-math.Pi*0.05*0.05) > 1e-4 {
		t.Errorf("disc area = %g, want %g", area, math.Pi*0.05*0.05)
	}
}

func TestStrokeWidth(t *testing.T) {
	p := polyline(vec.Vec2{X: -0.5, Y: 0}, vec.Vec2{X: 0.5, Y: 0})
	tess := NewTessellator(DefaultOptions(), 1)

	mesh, err := tess.Stroke(p, 0)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := bbox(mesh)
	if h := hi.Y - lo.Y; math.Abs(h-tess.LineWidth) > 1e-12 {
		t.Errorf("default width: got %g, want %g", h, tess.LineWidth)
	}

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := tess.Stroke(p, w); !errors.Is(err, ErrTessellation) {
			t.Errorf("width %g: got %v, want ErrTessellation", w, err)
		}
	}
}

// TestStrokeAspect checks that strokes keep their width in pixels for
// all directions when the screen is not square.
func TestStrokeAspect(t *testing.T) {
	const aspect = 1.6
	const w = 0.2
	tess := NewTessellator(DefaultOptions(), aspect)

	horizontal, err := tess.Stroke(polyline(vec.Vec2{X: -0.5, Y: 0}, vec.Vec2{X: 0.5, Y: 0}), w)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := bbox(horizontal)
	if h := hi.Y - lo.Y; math.Abs(h-w) > 1e-12 {
		t.Errorf("horizontal stroke: height %g, want %g", h, w)
	}

	vertical, err := tess.Stroke(polyline(vec.Vec2{X: 0, Y: -0.5}, vec.Vec2{X: 0, Y: 0.5}), w)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi = bbox(vertical)
	if got := (hi.X - lo.X) * aspect; math.Abs(got-w) > 1e-12 {
		t.Errorf("vertical stroke: width %g, want %g", got, w)
	}
}

// TestStrokeBounds checks that no vertex is further from the input
// points than the miter limit allows.
func TestStrokeBounds(t *testing.T) {
	pts := []vec.Vec2{{X: -0.8, Y: 0}, {X: -0.6, Y: 0.3}, {X: -0.4, Y: -0.3}, {X: -0.2, Y: 0.3}, {X: 0, Y: 0.29}, {X: 0.8, Y: -0.5}}
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinMiter, graphics.LineJoinRound, graphics.LineJoinBevel} {
		for _, cp := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare} {
			opts := DefaultOptions()
			opts.Join = join
			opts.Cap = cp
			tess := NewTessellator(opts, 1)
			mesh, err := tess.Stroke(polyline(pts...), 0.04)
			if err != nil {
				t.Fatal(err)
			}
			checkMesh(t, mesh, 1)

			limit := 0.02 * max(opts.MiterLimit, math.Sqrt2)
			for _, v := range mesh.Positions {
				dist := math.Inf(1)
				for _, p := range pts {
					dist = min(dist, math.Hypot(v.X-p.X, v.Y-p.Y))
				}
				// vertices along a segment are close to the segment, not
				// to its endpoints
				dist = min(dist, segmentDistance(v, pts))
				if dist > limit+1e-12 {
					t.Errorf("%v/%v: vertex %v at distance %g", join, cp, v, dist)
					break
				}
			}
		}
	}
}

func segmentDistance(v DrawPoint, pts []vec.Vec2) float64 {
	p := vec.Vec2{X: v.X, Y: v.Y}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		ab := b.Sub(a)
		s := max(0, min(1, p.Sub(a).Dot(ab)/ab.Dot(ab)))
		best = min(best, p.Sub(a.Add(ab.Mul(s))).Length())
	}
	return best
}
