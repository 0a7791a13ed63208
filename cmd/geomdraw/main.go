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

// Command geomdraw tessellates a scene and prints a summary of the
// resulting GPU buffers. Optionally, the buffers are drawn into a PNG
// image.
//
// Usage:
//
//	geomdraw [flags] (-scene file.json | -geojson file.geojson | -case category/name)
//
// Use -list to see the names of the built-in test scenes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/geomdraw"
	"seehuhn.de/go/geomdraw/colorscale"
	"seehuhn.de/go/geomdraw/preview"
	"seehuhn.de/go/geomdraw/scene"
	"seehuhn.de/go/geomdraw/testcases"
)

var (
	sceneFile   = flag.String("scene", "", "read the scene from this JSON file")
	geoJSONFile = flag.String("geojson", "", "read primitives from this GeoJSON file")
	caseName    = flag.String("case", "", "use a built-in test scene, given as category/name")
	list        = flag.Bool("list", false, "list the built-in test scenes and exit")
	outFile     = flag.String("o", "", "write a PNG preview to this file")
	strict      = flag.Bool("strict", false, "fail on the first invalid primitive")
	tolerance   = flag.Float64("tolerance", 0, "flattening tolerance in drawing-space units (0 for the default)")
	radius      = flag.Float64("radius", 0, "point radius in pixels (0 for the default)")
	scale       = flag.Int("scale", 1, "downscale factor for the preview image")
	screenSize  = flag.String("screen", "1024x768", "screen size for GeoJSON input, as WxH")
	color       = flag.String("color", "#3C6E9E", "default color for GeoJSON input")
	width       = flag.Float64("width", 0, "default line width for GeoJSON input, in data units")
	verbose     = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	if *list {
		listCases()
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	sc, err := loadScene()
	if err != nil {
		return err
	}

	a := geomdraw.NewAssembler(sc.Screen)
	a.Strict = *strict
	a.Logger = logger
	if *tolerance > 0 {
		a.Options.Tolerance = *tolerance
	}
	if *radius > 0 {
		a.PointRadius = *radius
	}

	res, err := a.Assemble(sc.Geoms, sc.Viewport)
	if err != nil {
		return err
	}
	fmt.Println(summary(sc, res))

	if *outFile != "" {
		if err := writePreview(*outFile, res, sc.Screen); err != nil {
			return err
		}
		logger.Info("wrote preview", "file", *outFile)
	}
	return nil
}

// loadScene returns the scene selected by the command line flags.
func loadScene() (*scene.Scene, error) {
	n := 0
	for _, s := range []string{*sceneFile, *geoJSONFile, *caseName} {
		if s != "" {
			n++
		}
	}
	if n != 1 {
		return nil, errors.New("exactly one of -scene, -geojson and -case is required")
	}

	switch {
	case *sceneFile != "":
		return scene.Load(*sceneFile)

	case *geoJSONFile != "":
		return loadGeoJSON(*geoJSONFile)

	default:
		category, name, _ := strings.Cut(*caseName, "/")
		sc, ok := testcases.Find(category, name)
		if !ok {
			return nil, fmt.Errorf("unknown test scene %q, use -list to see all scenes", *caseName)
		}
		return sc, nil
	}
}

func loadGeoJSON(fname string) (*scene.Scene, error) {
	screen, err := parseScreen(*screenSize)
	if err != nil {
		return nil, err
	}
	col, err := colorscale.Hex(*color)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	geoms, err := scene.ReadGeoJSON(f, scene.Style{Color: col, Width: *width})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	vp, ok := scene.FitViewport(geoms, 0.05)
	if !ok {
		return nil, fmt.Errorf("%s: no coordinates found", fname)
	}
	return &scene.Scene{
		Name:     fname,
		Viewport: vp,
		Screen:   screen,
		Geoms:    geoms,
	}, nil
}

// parseScreen parses a screen size of the form "1024x768".
func parseScreen(s string) (geomdraw.Screen, error) {
	wStr, hStr, ok := strings.Cut(s, "x")
	if !ok {
		return geomdraw.Screen{}, fmt.Errorf("invalid screen size %q", s)
	}
	w, err := strconv.Atoi(wStr)
	if err != nil {
		return geomdraw.Screen{}, fmt.Errorf("invalid screen width: %w", err)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return geomdraw.Screen{}, fmt.Errorf("invalid screen height: %w", err)
	}
	screen := geomdraw.Screen{Width: w, Height: h}
	return screen, screen.Check()
}

func writePreview(fname string, res *geomdraw.Result, screen geomdraw.Screen) (err error) {
	if *scale > 1 {
		screen.Width = max(screen.Width / *scale, 1)
		screen.Height = max(screen.Height / *scale, 1)
	}
	img := preview.Render(&res.Buffers, screen)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return png.Encode(f, img)
}

func summary(sc *scene.Scene, res *geomdraw.Result) string {
	vb := &res.Buffers
	row := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
	}

	name := sc.Name
	if name == "" {
		name = "scene"
	}
	lines := []string{
		titleStyle.Render(name),
		row("screen", fmt.Sprintf("%dx%d", sc.Screen.Width, sc.Screen.Height)),
		row("primitives", len(sc.Geoms)),
		row("vertices", len(vb.Vertices)),
		row("triangles", vb.NumTriangles()),
		row("buffer bytes", len(vb.VertexBytes())+len(vb.IndexBytes())),
	}
	if len(res.Failures) > 0 {
		lines = append(lines, row("skipped", len(res.Failures)))
		for _, f := range res.Failures {
			lines = append(lines, warnStyle.Render(f.Error()))
		}
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func listCases() {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		fmt.Println(titleStyle.Render(category))
		for _, sc := range testcases.All[category] {
			fmt.Printf("  %s/%s\n", category, sc.Name)
		}
	}
}
