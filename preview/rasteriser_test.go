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

package preview

import (
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/geomdraw"
)

func TestToPixel(t *testing.T) {
	screen := geomdraw.Screen{Width: 200, Height: 100}
	tests := []struct {
		in   geomdraw.DrawPoint
		want PixelPoint
	}{
		{geomdraw.DrawPoint{X: -1, Y: 1}, PixelPoint{X: 0, Y: 0}},
		{geomdraw.DrawPoint{X: 1, Y: -1}, PixelPoint{X: 200, Y: 100}},
		{geomdraw.DrawPoint{X: 0, Y: 0}, PixelPoint{X: 100, Y: 50}},
		{geomdraw.DrawPoint{X: -0.5, Y: 0.5}, PixelPoint{X: 50, Y: 25}},
	}
	for _, test := range tests {
		got := ToPixel(test.in, screen)
		if got != test.want {
			t.Errorf("ToPixel(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}

func quad(x0, y0, x1, y1 float32, col geomdraw.Color, base uint32) ([]geomdraw.Vertex, []uint32) {
	vertices := []geomdraw.Vertex{
		{Pos: [2]float32{x0, y0}, Color: col},
		{Pos: [2]float32{x1, y0}, Color: col},
		{Pos: [2]float32{x1, y1}, Color: col},
		{Pos: [2]float32{x0, y1}, Color: col},
	}
	indices := []uint32{base, base + 1, base + 2, base, base + 2, base + 3}
	return vertices, indices
}

func TestFullScreen(t *testing.T) {
	screen := geomdraw.Screen{Width: 16, Height: 8}
	vertices, indices := quad(-1, -1, 1, 1, geomdraw.Color{1, 0, 0}, 0)
	vb := &geomdraw.VertexBuffers{Vertices: vertices, Indices: indices}

	img := Render(vb, screen)
	if img.Bounds() != image.Rect(0, 0, 16, 8) {
		t.Fatalf("wrong bounds %v", img.Bounds())
	}
	want := color.RGBA{R: 255, A: 255}
	for y := range 8 {
		for x := range 16 {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEmptyBuffers(t *testing.T) {
	screen := geomdraw.Screen{Width: 4, Height: 4}
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.Background = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	img := r.Render(&geomdraw.VertexBuffers{}, screen)
	for y := range 4 {
		for x := range 4 {
			if got := img.RGBAAt(x, y); got != r.Background {
				t.Fatalf("pixel (%d, %d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestDrawOrder(t *testing.T) {
	screen := geomdraw.Screen{Width: 20, Height: 20}
	v1, i1 := quad(-1, -1, 0.5, 0.5, geomdraw.Color{1, 0, 0}, 0)
	v2, i2 := quad(-0.5, -0.5, 1, 1, geomdraw.Color{0, 0, 1}, 4)
	vb := &geomdraw.VertexBuffers{
		Vertices: append(v1, v2...),
		Indices:  append(i1, i2...),
	}
	img := Render(vb, screen)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 17, color.RGBA{R: 255, A: 255}},  // red only
		{17, 2, color.RGBA{B: 255, A: 255}},  // blue only
		{10, 10, color.RGBA{B: 255, A: 255}}, // overlap: blue on top
		{17, 17, white},                      // neither
		{2, 2, white},                        // neither
	}
	for _, test := range tests {
		if got := img.RGBAAt(test.x, test.y); got != test.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", test.x, test.y, got, test.want)
		}
	}
}

var testTriangles = [][3]PixelPoint{
	{{3.3, 2.7}, {27.9, 9.1}, {11.2, 28.6}},
	{{0.5, 0.5}, {31.5, 0.5}, {16, 31.5}},
	{{10, 10}, {10.4, 25.8}, {24.1, 13.3}},
}

// fillTriangle returns the coverage of a single triangle on a size x size
// grid of pixels.
func fillTriangle(tri [3]PixelPoint, size int) []float32 {
	r := NewRasteriser(rect.Rect{URx: float64(size), URy: float64(size)})
	res := make([]float32, size*size)
	r.FillTriangles(tri[:], []uint32{0, 1, 2}, func(y, xMin int, coverage []float32) {
		copy(res[y*size+xMin:], coverage)
	})
	return res
}

// pixelArea returns the area of the intersection of tri with the unit
// square at (x, y), by clipping the triangle to the square.
func pixelArea(tri [3]PixelPoint, x, y int) float64 {
	poly := tri[:]
	x0, x1 := float64(x), float64(x+1)
	y0, y1 := float64(y), float64(y+1)
	edges := []struct {
		inside func(p PixelPoint) bool
		cut    func(a, b PixelPoint) PixelPoint
	}{
		{func(p PixelPoint) bool { return p.X >= x0 }, func(a, b PixelPoint) PixelPoint {
			return PixelPoint{X: x0, Y: a.Y + (b.Y-a.Y)*(x0-a.X)/(b.X-a.X)}
		}},
		{func(p PixelPoint) bool { return p.X <= x1 }, func(a, b PixelPoint) PixelPoint {
			return PixelPoint{X: x1, Y: a.Y + (b.Y-a.Y)*(x1-a.X)/(b.X-a.X)}
		}},
		{func(p PixelPoint) bool { return p.Y >= y0 }, func(a, b PixelPoint) PixelPoint {
			return PixelPoint{X: a.X + (b.X-a.X)*(y0-a.Y)/(b.Y-a.Y), Y: y0}
		}},
		{func(p PixelPoint) bool { return p.Y <= y1 }, func(a, b PixelPoint) PixelPoint {
			return PixelPoint{X: a.X + (b.X-a.X)*(y1-a.Y)/(b.Y-a.Y), Y: y1}
		}},
	}
	for _, e := range edges {
		var out []PixelPoint
		for i, b := range poly {
			a := poly[(i+len(poly)-1)%len(poly)]
			if e.inside(b) {
				if !e.inside(a) {
					out = append(out, e.cut(a, b))
				}
				out = append(out, b)
			} else if e.inside(a) {
				out = append(out, e.cut(a, b))
			}
		}
		if len(out) == 0 {
			return 0
		}
		poly = out
	}

	var area float64
	for i, b := range poly {
		a := poly[(i+len(poly)-1)%len(poly)]
		area += a.X*b.Y - a.Y*b.X
	}
	return math.Abs(area) / 2
}

func TestExactCoverage(t *testing.T) {
	const size = 32
	for i, tri := range testTriangles {
		got := fillTriangle(tri, size)
		for y := range size {
			for x := range size {
				want := pixelArea(tri, x, y)
				if math.Abs(float64(got[y*size+x])-want) > 1e-4 {
					t.Errorf("triangle %d, pixel (%d, %d): got %.5f, want %.5f",
						i, x, y, got[y*size+x], want)
				}
			}
		}
	}
}

func TestAgainstVector(t *testing.T) {
	const size = 32
	// Below 512 pixels, vector switches to fixed point arithmetic which
	// is off by several levels near steep edges. A wider rasteriser uses
	// the exact floating point path.
	const width = 600

	for i, tri := range testTriangles {
		got := fillTriangle(tri, size)

		v := vector.NewRasterizer(width, size)
		v.MoveTo(float32(tri[0].X), float32(tri[0].Y))
		v.LineTo(float32(tri[1].X), float32(tri[1].Y))
		v.LineTo(float32(tri[2].X), float32(tri[2].Y))
		v.ClosePath()
		ref := image.NewAlpha(image.Rect(0, 0, width, size))
		v.Draw(ref, ref.Bounds(), image.Opaque, image.Point{})

		for y := range size {
			for x := range size {
				a := float64(got[y*size+x]) * 255
				b := float64(ref.AlphaAt(x, y).A)
				// vector truncates 256*coverage to 8 bits
				if math.Abs(a-b) > 1 {
					t.Errorf("triangle %d, pixel (%d, %d): got %.1f, want %.0f", i, x, y, a, b)
				}
			}
		}
	}
}

func TestInvalidIndices(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	pts := []PixelPoint{{1, 1}, {7, 1}, {4, 7}}
	called := false
	r.FillTriangles(pts, []uint32{0, 1, 5}, func(int, int, []float32) {
		called = true
	})
	if called {
		t.Error("triangle with out-of-range index was drawn")
	}
}
