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

package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geomdraw"
	"seehuhn.de/go/geomdraw/colorscale"
)

// Style gives the color and line width of GeoJSON features which do not
// specify their own. Features can override these using the properties
// "color" (a "#rrggbb" string) and "width" (a number).
type Style struct {
	Color geomdraw.Color
	Width float64
}

type geoJSONObject struct {
	Type        string          `json:"type"`
	Features    []geoJSONObject `json:"features"`
	Geometry    *geoJSONObject  `json:"geometry"`
	Geometries  []geoJSONObject `json:"geometries"`
	Coordinates json.RawMessage `json:"coordinates"`
	Properties  map[string]any  `json:"properties"`
}

// ReadGeoJSON decodes a GeoJSON document (a FeatureCollection, a Feature
// or a bare geometry) into styled primitives, in document order.
// Multi-part geometries are split into one primitive per part.
// Polygon rings which repeat their first point at the end are shortened.
func ReadGeoJSON(r io.Reader, style Style) ([]geomdraw.StyledGeom, error) {
	var obj geoJSONObject
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, err
	}
	var res []geomdraw.StyledGeom
	if err := appendGeoJSON(&res, &obj, style); err != nil {
		return nil, err
	}
	return res, nil
}

func appendGeoJSON(res *[]geomdraw.StyledGeom, obj *geoJSONObject, style Style) error {
	add := func(g geomdraw.Geom) {
		*res = append(*res, geomdraw.StyledGeom{Geom: g, Color: style.Color})
	}

	switch obj.Type {
	case "FeatureCollection":
		for i := range obj.Features {
			if err := appendGeoJSON(res, &obj.Features[i], style); err != nil {
				return err
			}
		}

	case "Feature":
		if obj.Geometry == nil {
			return nil
		}
		featureStyle, err := applyProperties(style, obj.Properties)
		if err != nil {
			return err
		}
		return appendGeoJSON(res, obj.Geometry, featureStyle)

	case "GeometryCollection":
		for i := range obj.Geometries {
			if err := appendGeoJSON(res, &obj.Geometries[i], style); err != nil {
				return err
			}
		}

	case "Point":
		var pos []float64
		if err := json.Unmarshal(obj.Coordinates, &pos); err != nil {
			return fmt.Errorf("scene: Point: %w", err)
		}
		p, err := position(pos)
		if err != nil {
			return err
		}
		add(geomdraw.Point{At: p})

	case "MultiPoint":
		var coords [][]float64
		if err := json.Unmarshal(obj.Coordinates, &coords); err != nil {
			return fmt.Errorf("scene: MultiPoint: %w", err)
		}
		pts, err := positions(coords)
		if err != nil {
			return err
		}
		for _, p := range pts {
			add(geomdraw.Point{At: p})
		}

	case "LineString":
		var coords [][]float64
		if err := json.Unmarshal(obj.Coordinates, &coords); err != nil {
			return fmt.Errorf("scene: LineString: %w", err)
		}
		pts, err := positions(coords)
		if err != nil {
			return err
		}
		add(geomdraw.Lines{Points: pts, Width: style.Width})

	case "MultiLineString":
		var coords [][][]float64
		if err := json.Unmarshal(obj.Coordinates, &coords); err != nil {
			return fmt.Errorf("scene: MultiLineString: %w", err)
		}
		for _, line := range coords {
			pts, err := positions(line)
			if err != nil {
				return err
			}
			add(geomdraw.Lines{Points: pts, Width: style.Width})
		}

	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(obj.Coordinates, &coords); err != nil {
			return fmt.Errorf("scene: Polygon: %w", err)
		}
		poly, err := polygon(coords)
		if err != nil {
			return err
		}
		add(poly)

	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(obj.Coordinates, &coords); err != nil {
			return fmt.Errorf("scene: MultiPolygon: %w", err)
		}
		for _, rings := range coords {
			poly, err := polygon(rings)
			if err != nil {
				return err
			}
			add(poly)
		}

	default:
		return fmt.Errorf("scene: unsupported GeoJSON type %q", obj.Type)
	}
	return nil
}

// applyProperties returns style, modified by the "color" and "width"
// feature properties.
func applyProperties(style Style, props map[string]any) (Style, error) {
	if s, ok := props["color"].(string); ok {
		c, err := colorscale.Hex(s)
		if err != nil {
			return style, err
		}
		style.Color = c
	}
	if w, ok := props["width"].(float64); ok {
		style.Width = w
	}
	return style, nil
}

func position(pos []float64) (geomdraw.AppPoint, error) {
	if len(pos) < 2 {
		return geomdraw.AppPoint{}, fmt.Errorf("scene: position %v has fewer than 2 coordinates", pos)
	}
	return geomdraw.AppPoint{X: pos[0], Y: pos[1]}, nil
}

func positions(coords [][]float64) ([]geomdraw.AppPoint, error) {
	res := make([]geomdraw.AppPoint, len(coords))
	for i, pos := range coords {
		p, err := position(pos)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

func polygon(rings [][][]float64) (geomdraw.Polygon, error) {
	var poly geomdraw.Polygon
	for i, ring := range rings {
		pts, err := positions(ring)
		if err != nil {
			return geomdraw.Polygon{}, err
		}
		if n := len(pts); n > 1 && pts[0] == pts[n-1] {
			pts = pts[:n-1]
		}
		if i == 0 {
			poly.Points = pts
		} else {
			poly.Holes = append(poly.Holes, pts)
		}
	}
	return poly, nil
}

// FitViewport returns a square viewport which contains all points of geoms,
// with a margin of the given fraction of the extent on every side.
// The viewport is square since it is shown in a square region of the
// screen. ok is false if geoms contains no points.
func FitViewport(geoms []geomdraw.StyledGeom, margin float64) (vp geomdraw.Viewport, ok bool) {
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	addPoint := func(p geomdraw.AppPoint) {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return
		}
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
		ok = true
	}
	for _, sg := range geoms {
		switch g := sg.Geom.(type) {
		case geomdraw.Point:
			addPoint(g.At)
		case geomdraw.Lines:
			for _, p := range g.Points {
				addPoint(p)
			}
		case geomdraw.Polygon:
			for _, p := range g.Points {
				addPoint(p)
			}
		}
	}
	if !ok {
		return geomdraw.Viewport{}, false
	}

	half := max(xMax-xMin, yMax-yMin) / 2 * (1 + 2*margin)
	if half == 0 {
		half = 1
	}
	cx := (xMin + xMax) / 2
	cy := (yMin + yMax) / 2
	return geomdraw.Viewport{
		Min: geomdraw.AppPoint{X: cx - half, Y: cy - half},
		Max: geomdraw.AppPoint{X: cx + half, Y: cy + half},
	}, true
}
