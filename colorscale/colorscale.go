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

// Package colorscale maps scalar values to colors for map overlays.
//
// The scales blend between two colors in the CIE LCh color space, so that
// perceived lightness stays constant along the scale.
package colorscale

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/geomdraw"
)

// lightness and chroma of the scale endpoints, in colorful's units
// (CIE L/100 and C/100).
const (
	lightness = 0.70
	chroma    = 0.90
)

// lch is a color in CIE LCh coordinates: hue in degrees, chroma and
// lightness scaled as in colorful.Hcl.
type lch struct {
	h, c, l float64
}

var (
	cold  = lch{60, chroma, lightness}
	warm  = lch{280, chroma, lightness}
	muted = lch{60, 0, lightness}
)

// Temperature maps v in [0, 1] to a color between orange (0) and blue (1),
// drawing attention towards one end of the range. v is quantized into
// chunks steps first; chunks < 2 disables quantization.
func Temperature(v float64, chunks int) geomdraw.Color {
	return blend(cold, warm, quantize(v, chunks))
}

// Chroma maps v in [0, 1] to a color between gray (0) and saturated
// orange (1). v is quantized as for [Temperature].
func Chroma(v float64, chunks int) geomdraw.Color {
	return blend(muted, cold, quantize(v, chunks))
}

// Hex parses a color in "#rrggbb" or "#rgb" notation.
func Hex(s string) (geomdraw.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return geomdraw.Color{}, fmt.Errorf("colorscale: invalid color %q: %w", s, err)
	}
	return toColor(c), nil
}

// quantize rounds v down to a multiple of 1/(chunks-1) and clamps the
// result to [0, 1].
func quantize(v float64, chunks int) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if chunks >= 2 {
		n := float64(chunks)
		v = math.Floor(v*n) / (n - 1)
	}
	return min(max(v, 0), 1)
}

// blend interpolates linearly between a and b, taking the shorter way
// around the hue circle.
func blend(a, b lch, t float64) geomdraw.Color {
	dh := math.Mod(b.h-a.h+540, 360) - 180
	h := math.Mod(a.h+t*dh+360, 360)
	return toColor(colorful.Hcl(h, a.c+t*(b.c-a.c), a.l+t*(b.l-a.l)))
}

func toColor(c colorful.Color) geomdraw.Color {
	c = c.Clamped()
	return geomdraw.Color{float32(c.R), float32(c.G), float32(c.B)}
}
