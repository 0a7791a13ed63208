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

// Package scene reads and writes scene descriptions: a list of styled
// primitives together with the viewport and screen size used to draw them.
//
// Scenes are stored as JSON. Each primitive is an object with a "type"
// field ("point", "lines" or "polygon"), its coordinates and an RGB color:
//
//	{
//	  "name": "calibration",
//	  "viewport": {"min": [-1, -1], "max": [1, 1]},
//	  "screen": {"width": 2880, "height": 1800},
//	  "geoms": [
//	    {"type": "lines", "points": [[-1, -0.5], [0, -0.5]], "width": 1, "color": [1, 0, 1]}
//	  ]
//	}
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/geomdraw"
)

// Scene is a complete drawing job.
type Scene struct {
	Name     string
	Viewport geomdraw.Viewport
	Screen   geomdraw.Screen
	Geoms    []geomdraw.StyledGeom
}

type point [2]float64

type jsonViewport struct {
	Min point `json:"min"`
	Max point `json:"max"`
}

type jsonScreen struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type jsonScene struct {
	Name     string       `json:"name,omitempty"`
	Viewport jsonViewport `json:"viewport"`
	Screen   jsonScreen   `json:"screen"`
	Geoms    []jsonGeom   `json:"geoms"`
}

type jsonGeom struct {
	Type   string     `json:"type"`
	At     *point     `json:"at,omitempty"`
	Points []point    `json:"points,omitempty"`
	Holes  [][]point  `json:"holes,omitempty"`
	Width  float64    `json:"width,omitempty"`
	Color  [3]float32 `json:"color"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (s *Scene) MarshalJSON() ([]byte, error) {
	js := jsonScene{
		Name: s.Name,
		Viewport: jsonViewport{
			Min: fromApp(s.Viewport.Min),
			Max: fromApp(s.Viewport.Max),
		},
		Screen: jsonScreen{Width: s.Screen.Width, Height: s.Screen.Height},
		Geoms:  make([]jsonGeom, len(s.Geoms)),
	}
	for i, sg := range s.Geoms {
		jg := jsonGeom{Color: sg.Color}
		switch g := sg.Geom.(type) {
		case geomdraw.Point:
			at := fromApp(g.At)
			jg.Type = "point"
			jg.At = &at
		case geomdraw.Lines:
			jg.Type = "lines"
			jg.Points = fromAppSlice(g.Points)
			jg.Width = g.Width
		case geomdraw.Polygon:
			jg.Type = "polygon"
			jg.Points = fromAppSlice(g.Points)
			for _, hole := range g.Holes {
				jg.Holes = append(jg.Holes, fromAppSlice(hole))
			}
		case nil:
			return nil, fmt.Errorf("scene: geometry %d is missing", i)
		default:
			return nil, fmt.Errorf("scene: geometry %d has unsupported type %T", i, g)
		}
		js.Geoms[i] = jg
	}
	return json.Marshal(js)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Only the JSON structure is checked here; the invariants of the
// primitives are checked when the scene is drawn.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var js jsonScene
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}

	res := Scene{
		Name: js.Name,
		Viewport: geomdraw.Viewport{
			Min: toApp(js.Viewport.Min),
			Max: toApp(js.Viewport.Max),
		},
		Screen: geomdraw.Screen{Width: js.Screen.Width, Height: js.Screen.Height},
		Geoms:  make([]geomdraw.StyledGeom, len(js.Geoms)),
	}
	for i, jg := range js.Geoms {
		var g geomdraw.Geom
		switch jg.Type {
		case "point":
			if jg.At == nil {
				return fmt.Errorf("scene: point %d has no location", i)
			}
			g = geomdraw.Point{At: toApp(*jg.At)}
		case "lines":
			g = geomdraw.Lines{Points: toAppSlice(jg.Points), Width: jg.Width}
		case "polygon":
			poly := geomdraw.Polygon{Points: toAppSlice(jg.Points)}
			for _, hole := range jg.Holes {
				poly.Holes = append(poly.Holes, toAppSlice(hole))
			}
			g = poly
		default:
			return fmt.Errorf("scene: geometry %d has unknown type %q", i, jg.Type)
		}
		res.Geoms[i] = geomdraw.StyledGeom{Geom: g, Color: jg.Color}
	}

	*s = res
	return nil
}

// Read decodes a scene from r.
func Read(r io.Reader) (*Scene, error) {
	s := &Scene{}
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Write encodes s as indented JSON.
func Write(w io.Writer, s *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Load reads a scene from the named file.
func Load(fname string) (*Scene, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Save writes s to the named file.
func Save(fname string, s *Scene) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Write(f, s)
}

func toApp(p point) geomdraw.AppPoint {
	return geomdraw.AppPoint{X: p[0], Y: p[1]}
}

func fromApp(p geomdraw.AppPoint) point {
	return point{p.X, p.Y}
}

func toAppSlice(pts []point) []geomdraw.AppPoint {
	if pts == nil {
		return nil
	}
	res := make([]geomdraw.AppPoint, len(pts))
	for i, p := range pts {
		res[i] = toApp(p)
	}
	return res
}

func fromAppSlice(pts []geomdraw.AppPoint) []point {
	res := make([]point, len(pts))
	for i, p := range pts {
		res[i] = fromApp(p)
	}
	return res
}
