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

// Package preview draws tessellated geometry on the CPU.
//
// The output approximates what a GPU would show for the same buffers,
// with exact area coverage anti-aliasing. It is used for previews and
// tests, without any graphics device.
package preview

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/geomdraw"
)

// PixelPoint is a location in pixel space, with the origin in the top-left
// corner of the image and y pointing down.
type PixelPoint struct {
	X, Y float64
}

// ToPixel maps a drawing-space point to pixel space for the given screen.
// Drawing-space x and y in [-1, 1] cover the full width and height.
func ToPixel(p geomdraw.DrawPoint, screen geomdraw.Screen) PixelPoint {
	return PixelPoint{
		X: (p.X + 1) / 2 * float64(screen.Width),
		Y: (1 - p.Y) / 2 * float64(screen.Height),
	}
}

// edge represents a line segment in pixel coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

// Rasteriser converts triangles to pixel coverage values.
// The caller creates one instance and reuses it for multiple images.
// Internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip defines the output region in pixel coordinates.
	// Must be a non-empty rectangle with integer-aligned coordinates.
	Clip rect.Rect

	// Background is used by Render to initialize the image.
	Background color.Color

	// Internal buffers (reused across calls)
	cover     []float32 // coverage accumulation: cover change per pixel; reused as output
	area      []float32 // coverage accumulation: area within pixel
	edges     []edge    // edge list for current triangle run
	activeIdx []int     // indices of active edges
	crossings []float64 // y values where edge crosses pixel boundaries
	pixels    []PixelPoint

	// Edge collection state (used by addEdge)
	edgeBBoxFirst bool // true if no edges added yet
	edgeXMin      float64
	edgeXMax      float64
	edgeYMin      float64
	edgeYMax      float64
}

// NewRasteriser creates a new Rasteriser with the given clip rectangle
// and a white background.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:       clip,
		Background: color.White,
	}
}

// Render draws vb into a new image of the size of screen.
func Render(vb *geomdraw.VertexBuffers, screen geomdraw.Screen) *image.RGBA {
	clip := rect.Rect{URx: float64(screen.Width), URy: float64(screen.Height)}
	return NewRasteriser(clip).Render(vb, screen)
}

// Render draws vb into a new image of the size of screen, filled with the
// background color first.
func (r *Rasteriser) Render(vb *geomdraw.VertexBuffers, screen geomdraw.Screen) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(screen.Width, 0), max(screen.Height, 0)))
	bg := color.RGBAModel.Convert(r.Background).(color.RGBA)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = bg.A
	}
	r.Draw(img, vb, screen)
	return img
}

// Draw composites the triangles of vb onto img, in buffer order.
// Each triangle is painted with the color of its first vertex.
// Runs of consecutive triangles with the same color are filled together,
// so that shared edges do not leave visible seams.
func (r *Rasteriser) Draw(img *image.RGBA, vb *geomdraw.VertexBuffers, screen geomdraw.Screen) {
	r.pixels = r.pixels[:0]
	for _, v := range vb.Vertices {
		p := geomdraw.DrawPoint{X: float64(v.Pos[0]), Y: float64(v.Pos[1])}
		r.pixels = append(r.pixels, ToPixel(p, screen))
	}

	numTri := len(vb.Indices) / 3
	for start := 0; start < numTri; {
		col := triangleColor(vb, start)
		end := start + 1
		for end < numTri && triangleColor(vb, end) == col {
			end++
		}
		r.FillTriangles(r.pixels, vb.Indices[3*start:3*end], func(y, xMin int, coverage []float32) {
			compositeRow(img, y, xMin, coverage, col)
		})
		start = end
	}
}

// triangleColor returns the color of the first vertex of triangle i.
func triangleColor(vb *geomdraw.VertexBuffers, i int) geomdraw.Color {
	idx := vb.Indices[3*i]
	if int(idx) >= len(vb.Vertices) {
		return geomdraw.Color{}
	}
	return vb.Vertices[idx].Color
}

// compositeRow paints col over one row of img, using coverage as alpha.
func compositeRow(img *image.RGBA, y, xMin int, coverage []float32, col geomdraw.Color) {
	if y < img.Rect.Min.Y || y >= img.Rect.Max.Y {
		return
	}
	var src [3]float32
	for i, c := range col {
		src[i] = min(max(c, 0), 1) * 255
	}
	for i, a := range coverage {
		x := xMin + i
		if a == 0 || x < img.Rect.Min.X || x >= img.Rect.Max.X {
			continue
		}
		off := img.PixOffset(x, y)
		pix := img.Pix[off : off+4 : off+4]
		for k := range 3 {
			pix[k] = uint8(math.Round(float64(src[k]*a + float32(pix[k])*(1-a))))
		}
		pix[3] = uint8(math.Round(float64(255*a + float32(pix[3])*(1-a))))
	}
}

// FillTriangles rasterises the union of the given triangles using the
// nonzero winding rule. Indices come in groups of three and refer to pts;
// triangles with out-of-range indices are ignored.
// Coverage is delivered row-by-row via the emit callback.
// The coverage slice passed to emit is only valid for the duration
// of the callback.
func (r *Rasteriser) FillTriangles(pts []PixelPoint, indices []uint32, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
		if a >= len(pts) || b >= len(pts) || c >= len(pts) {
			continue
		}
		r.addEdge(pts[a], pts[b])
		r.addEdge(pts[b], pts[c])
		r.addEdge(pts[c], pts[a])
	}
	if len(r.edges) == 0 {
		return
	}

	// Clamp to clip bounds and convert to integers
	xMin := max(int(math.Floor(r.edgeXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.edgeXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.edgeYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.edgeYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	r.fillEdges(xMin, xMax, yMin, yMax, emit)
}

// addEdge adds an edge in pixel coordinates.
func (r *Rasteriser) addEdge(p0, p1 PixelPoint) {
	// Skip horizontal edges
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	// Update bounding box
	if r.edgeBBoxFirst {
		r.edgeXMin = min(p0.X, p1.X)
		r.edgeXMax = max(p0.X, p1.X)
		r.edgeYMin = min(p0.Y, p1.Y)
		r.edgeYMax = max(p0.Y, p1.Y)
		r.edgeBBoxFirst = false
	} else {
		r.edgeXMin = min(r.edgeXMin, p0.X, p1.X)
		r.edgeXMax = max(r.edgeXMax, p0.X, p1.X)
		r.edgeYMin = min(r.edgeYMin, p0.Y, p1.Y)
		r.edgeYMax = max(r.edgeYMax, p0.Y, p1.Y)
	}
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = sign * dy   (where sign is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (where xFrac is the horizontal position within the pixel)
//
// Final coverage is computed by integrateScanlineNonZero:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]   (carry forward for next pixel)

// fillEdges rasterises the collected edges using 1D buffers and an active
// edge list. xMin, xMax, yMin, yMax define the bounding box (already
// clamped to clip).
func (r *Rasteriser) fillEdges(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	// Sort edges by y_min
	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		// Add edges that start at this scanline
		for nextEdge < len(r.edges) {
			if min(r.edges[nextEdge].y0, r.edges[nextEdge].y1) >= yfNext {
				break
			}
			r.activeIdx = append(r.activeIdx, nextEdge)
			nextEdge++
		}

		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		contributed := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]

			// Remove edges which end before this scanline (swap with last)
			if max(e.y0, e.y1) <= yf {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}

			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			contributed = true
			i++
		}
		if !contributed {
			continue
		}

		integrateScanlineNonZero(r.cover, r.area)

		// Emit only the non-zero portion
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulateEdge adds a single edge's contribution to the cover and area buffers.
// The buffers are indexed by (x - bboxXMin), where bboxXMin/bboxXMax define the buffer range.
// For edges spanning multiple pixels horizontally, this function splits the edge at pixel
// boundaries and computes separate contributions for each pixel crossed.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	// Portion of the edge within this scanline [y, y+1)
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	// Sign based on edge direction: +1 for downward (y1 > y0), -1 for upward
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)
	xLeft, xRight := min(xAtYTop, xAtYBot), max(xAtYTop, xAtYBot)

	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	// Edge entirely to the left of bbox
	if pixRight < bboxXMin {
		coverVal := sign * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}
	// Edge entirely to the right of bbox
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		accumulateSegment(e, yTop, yBot, sign, cover, area, bboxXMin, bboxXMax)
		return
	}

	// Edge spans multiple pixels: split at each pixel boundary
	dydx := 1 / e.dxdy
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yAtX := e.y0 + dydx*(float64(x)-e.x0)
		if yAtX > yTop && yAtX < yBot {
			r.crossings = append(r.crossings, yAtX)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		accumulateSegment(e, r.crossings[i], r.crossings[i+1], sign, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateSegment handles the part of an edge between y0 and y1, which
// must fall within a single pixel column.
func accumulateSegment(e *edge, y0, y1 float64, sign float32, cover, area []float32, bboxXMin, bboxXMax int) {
	if y1 <= y0 {
		return
	}
	coverVal := sign * float32(y1-y0)

	// Find which pixel this segment is in (use midpoint x)
	yMid := (y0 + y1) / 2
	xMid := e.x0 + e.dxdy*(yMid-e.y0)
	pix := int(math.Floor(xMid))

	switch {
	case pix < bboxXMin:
		cover[0] += coverVal
		area[0] += coverVal
	case pix < bboxXMax:
		xFrac := xMid - float64(pix)
		idx := pix - bboxXMin
		cover[idx] += coverVal
		area[idx] += coverVal * float32(1-xFrac)
	}
	// pix >= bboxXMax: no contribution
}

// integrateScanlineNonZero converts accumulated cover/area to final coverage
// values using the nonzero winding rule. The cover slice is modified in place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		// clamp(abs(raw), 0, 1)
		cover[i] = min(abs32(raw), 1)
	}
}

// abs32 returns the absolute value of a float32.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// horizontalEdgeThreshold is the minimum vertical extent for an edge
// to contribute to coverage.
const horizontalEdgeThreshold = 1e-10
