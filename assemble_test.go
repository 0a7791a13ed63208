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

package geomdraw_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geomdraw"
	"seehuhn.de/go/geomdraw/testcases"
)

// checkBuffers verifies that all indices are in range and that no
// triangle is clockwise on screen.
func checkBuffers(t *testing.T, vb *geomdraw.VertexBuffers, screen geomdraw.Screen) {
	t.Helper()
	if len(vb.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(vb.Indices))
	}
	for _, idx := range vb.Indices {
		if int(idx) >= len(vb.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(vb.Vertices))
		}
	}
	aspect := screen.AspectRatio()
	for i := 0; i < len(vb.Indices); i += 3 {
		a := vb.Vertices[vb.Indices[i]].Pos
		b := vb.Vertices[vb.Indices[i+1]].Pos
		c := vb.Vertices[vb.Indices[i+2]].Pos
		area := aspect * (float64(b[0]-a[0])*float64(c[1]-a[1]) - float64(c[0]-a[0])*float64(b[1]-a[1]))
		if area < -1e-9 {
			t.Errorf("triangle %d is clockwise (area %g)", i/3, area)
		}
	}
}

func TestTestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				res, err := geomdraw.Assemble(sc.Geoms, sc.Viewport, sc.Screen)
				if err != nil {
					t.Fatal(err)
				}
				checkBuffers(t, &res.Buffers, sc.Screen)

				wantFailures := 0
				if category == "invalid" {
					wantFailures = 1
				}
				if len(res.Failures) != wantFailures {
					t.Errorf("got %d failures, want %d: %v", len(res.Failures), wantFailures, res.Err())
				}
				if res.Buffers.NumTriangles() == 0 {
					t.Error("no triangles")
				}
			})
		}
	}
}

// TestPointMarkers draws point markers of several sizes at the centre
// and near the corners of screens with different shapes.
func TestPointMarkers(t *testing.T) {
	vp := geomdraw.Viewport{Min: geomdraw.AppPoint{X: -1, Y: -1}, Max: geomdraw.AppPoint{X: 1, Y: 1}}
	var geoms []geomdraw.StyledGeom
	for _, at := range []geomdraw.AppPoint{{X: 0, Y: 0}, {X: -0.9, Y: -0.9}, {X: 0.9, Y: 0.9}, {X: 0.3, Y: -0.7}} {
		geoms = append(geoms, geomdraw.StyledGeom{Geom: geomdraw.Point{At: at}, Color: geomdraw.Color{1, 0, 0}})
	}

	screens := []geomdraw.Screen{{Width: 2880, Height: 1800}, {Width: 1920, Height: 1080}, {Width: 100, Height: 100}, {Width: 300, Height: 900}}
	for _, screen := range screens {
		for _, radius := range []float64{1, 2.5, 10, 40} {
			t.Run(fmt.Sprintf("%dx%d/%g", screen.Width, screen.Height, radius), func(t *testing.T) {
				a := geomdraw.NewAssembler(screen)
				a.PointRadius = radius
				res, err := a.Assemble(geoms, vp)
				if err != nil {
					t.Fatal(err)
				}
				if err := res.Err(); err != nil {
					t.Fatal(err)
				}
				checkBuffers(t, &res.Buffers, screen)
				if n := res.Buffers.NumTriangles(); n < 2*len(geoms) {
					t.Errorf("only %d triangles", n)
				}
			})
		}
	}
}

// TestCalibration checks that lines as wide as they are long are drawn
// as squares on screen.
func TestCalibration(t *testing.T) {
	for _, sc := range testcases.All["calibration"] {
		for i, sg := range sc.Geoms {
			res, err := geomdraw.Assemble([]geomdraw.StyledGeom{sg}, sc.Viewport, sc.Screen)
			if err != nil {
				t.Fatal(err)
			}
			xMin, yMin := math.Inf(1), math.Inf(1)
			xMax, yMax := math.Inf(-1), math.Inf(-1)
			for _, v := range res.Buffers.Vertices {
				x := (float64(v.Pos[0]) + 1) / 2 * float64(sc.Screen.Width)
				y := (1 - float64(v.Pos[1])) / 2 * float64(sc.Screen.Height)
				xMin, xMax = min(xMin, x), max(xMax, x)
				yMin, yMax = min(yMin, y), max(yMax, y)
			}
			w, h := xMax-xMin, yMax-yMin
			if math.Abs(w/h-1) > 0.01 {
				t.Errorf("%s, line %d: %.1fx%.1f pixels, not a square", sc.Name, i, w, h)
			}
			// the viewport height maps to the screen height
			want := float64(sc.Screen.Height) / 2
			if math.Abs(h-want) > 0.01*want {
				t.Errorf("%s, line %d: height %.1f, want %.1f", sc.Name, i, h, want)
			}
		}
	}
}

func TestSkipInvalid(t *testing.T) {
	sc, _ := testcases.Find("invalid", "single_point_line")

	res, err := geomdraw.Assemble(sc.Geoms, sc.Viewport, sc.Screen)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(res.Failures))
	}
	f := res.Failures[0]
	if f.Index != 0 || f.Kind != "lines" || f.Style != geomdraw.Stroked {
		t.Errorf("wrong failure details: %v", f)
	}
	if !errors.Is(f, geomdraw.ErrInvalidGeometry) || !errors.Is(res.Err(), geomdraw.ErrInvalidGeometry) {
		t.Errorf("failure %v does not wrap ErrInvalidGeometry", f)
	}

	// the valid polygon is drawn on its own
	alone, err := geomdraw.Assemble(sc.Geoms[1:], sc.Viewport, sc.Screen)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(res.Buffers.VertexBytes(), alone.Buffers.VertexBytes()) ||
		!bytes.Equal(res.Buffers.IndexBytes(), alone.Buffers.IndexBytes()) {
		t.Error("skipped primitive changed the output")
	}
	if alone.Err() != nil {
		t.Errorf("unexpected failures: %v", alone.Err())
	}
}

func TestStrict(t *testing.T) {
	sc, _ := testcases.Find("invalid", "single_point_line")

	a := geomdraw.NewAssembler(sc.Screen)
	a.Strict = true
	res, err := a.Assemble(sc.Geoms, sc.Viewport)
	if res != nil {
		t.Error("got a result in strict mode")
	}
	var pErr *geomdraw.PrimitiveError
	if !errors.As(err, &pErr) || pErr.Index != 0 {
		t.Fatalf("got %v, want a PrimitiveError for primitive 0", err)
	}
	if !errors.Is(err, geomdraw.ErrInvalidGeometry) {
		t.Errorf("got %v, want ErrInvalidGeometry", err)
	}

	sc, _ = testcases.Find("invalid", "flat_polygon")
	_, err = a.Assemble(sc.Geoms, sc.Viewport)
	if !errors.Is(err, geomdraw.ErrTessellation) {
		t.Errorf("got %v, want ErrTessellation", err)
	}
}

func TestTransformErrors(t *testing.T) {
	geoms := []geomdraw.StyledGeom{{Geom: geomdraw.Point{}, Color: geomdraw.Color{1, 0, 0}}}
	good := geomdraw.Viewport{Max: geomdraw.AppPoint{X: 1, Y: 1}}

	cases := []struct {
		name   string
		vp     geomdraw.Viewport
		screen geomdraw.Screen
	}{
		{"flat_viewport", geomdraw.Viewport{Max: geomdraw.AppPoint{X: 1, Y: 0}}, geomdraw.Screen{Width: 10, Height: 10}},
		{"empty_screen", good, geomdraw.Screen{Width: 10, Height: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := geomdraw.Assemble(geoms, c.vp, c.screen)
			if !errors.Is(err, geomdraw.ErrTransform) {
				t.Errorf("got %v, want ErrTransform", err)
			}
			if res != nil {
				t.Error("got a result")
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	sc, _ := testcases.Find("mixed", "map")

	a := geomdraw.NewAssembler(sc.Screen)
	first, err := a.Assemble(sc.Geoms, sc.Viewport)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(sc.Geoms, sc.Viewport)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Buffers.VertexBytes(), second.Buffers.VertexBytes()) ||
		!bytes.Equal(first.Buffers.IndexBytes(), second.Buffers.IndexBytes()) {
		t.Error("repeated calls gave different buffers")
	}
}

// TestOrder checks that primitives are drawn in input order, each with
// its own color.
func TestOrder(t *testing.T) {
	sc, _ := testcases.Find("mixed", "map")
	res, err := geomdraw.Assemble(sc.Geoms, sc.Viewport, sc.Screen)
	if err != nil {
		t.Fatal(err)
	}

	vb := &res.Buffers
	var colors []geomdraw.Color
	for i := 0; i < len(vb.Indices); i += 3 {
		col := vb.Vertices[vb.Indices[i]].Color
		for _, idx := range vb.Indices[i+1 : i+3] {
			if vb.Vertices[idx].Color != col {
				t.Fatalf("triangle %d has mixed colors", i/3)
			}
		}
		if len(colors) == 0 || colors[len(colors)-1] != col {
			colors = append(colors, col)
		}
	}

	var want []geomdraw.Color
	for _, sg := range sc.Geoms {
		if len(want) == 0 || want[len(want)-1] != sg.Color {
			want = append(want, sg.Color)
		}
	}
	if !slices.Equal(colors, want) {
		t.Errorf("color sequence %v, want %v", colors, want)
	}
}

func TestLogging(t *testing.T) {
	sc, _ := testcases.Find("invalid", "single_point_line")

	buf := &bytes.Buffer{}
	a := geomdraw.NewAssembler(sc.Screen)
	a.Logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := a.Assemble(sc.Geoms, sc.Viewport); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{"skipping primitive", "tessellated primitive", "assembled buffers"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output does not contain %q:\n%s", msg, out)
		}
	}

	// a nil logger is allowed
	a.Logger = nil
	if _, err := a.Assemble(sc.Geoms, sc.Viewport); err != nil {
		t.Fatal(err)
	}
}

func TestSliceSource(t *testing.T) {
	at := func(x, y float64) geomdraw.AppPoint { return geomdraw.AppPoint{X: x, Y: y} }
	src := geomdraw.SliceSource{
		{Geom: geomdraw.Point{At: at(0.5, 0.5)}},
		{Geom: geomdraw.Point{At: at(5, 5)}},
		{Geom: geomdraw.Lines{Points: []geomdraw.AppPoint{at(0.5, 0.8), at(3, 3)}}},
		{Geom: geomdraw.Polygon{Points: []geomdraw.AppPoint{at(2, 2), at(3, 2), at(2, 3)}}},
		{Geom: geomdraw.Lines{}},
	}
	bbox := geomdraw.Viewport{Max: at(1, 1)}

	got, err := src.StyledGeoms(context.Background(), bbox)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []string
	for _, sg := range got {
		kinds = append(kinds, geomdraw.Kind(sg.Geom))
	}
	// the empty polyline is kept, so that it is reported when drawn
	if want := []string{"point", "lines", "lines"}; !slices.Equal(kinds, want) {
		t.Errorf("got %v, want %v", kinds, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.StyledGeoms(ctx, bbox); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}

	if _, err := src.StyledGeoms(context.Background(), geomdraw.Viewport{}); !errors.Is(err, geomdraw.ErrTransform) {
		t.Errorf("got %v, want ErrTransform", err)
	}
}

func BenchmarkAssemble(b *testing.B) {
	for _, name := range []string{"mixed/map", "lines/spiral", "polygons/two_holes"} {
		category, sceneName, _ := strings.Cut(name, "/")
		sc, ok := testcases.Find(category, sceneName)
		if !ok {
			b.Fatalf("scene %s not found", name)
		}
		b.Run(sceneName, func(b *testing.B) {
			a := geomdraw.NewAssembler(sc.Screen)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := a.Assemble(sc.Geoms, sc.Viewport); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
