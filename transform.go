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

// TransformPoint maps p from application space to drawing space.
// The viewport corners map to (-1/aspectRatio, -1) and (1/aspectRatio, 1).
// Points outside the viewport map outside this range; no clamping is done.
//
// The viewport must be valid, see [Viewport.Check].
func TransformPoint(p AppPoint, vp Viewport, aspectRatio float64) DrawPoint {
	return DrawPoint{
		X: (2*(p.X-vp.Min.X)/vp.Width() - 1) / aspectRatio,
		Y: 2*(p.Y-vp.Min.Y)/vp.Height() - 1,
	}
}

// TransformLength converts a length in application space, for example a
// stroke width, to drawing space.
//
// Only the vertical scale of the viewport is used. For viewports whose
// aspect ratio differs from the screen's, stroke widths are therefore
// distorted relative to lengths along the x-axis. This is a known
// limitation.
func TransformLength(length float64, vp Viewport) float64 {
	return 2 * length / vp.Height()
}
