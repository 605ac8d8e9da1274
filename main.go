package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/renderer"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene document (JSON)")
	outputPath := flag.String("output", "render.png", "Output image path")
	width := flag.Int("width", 640, "Output width in pixels")
	height := flag.Int("height", 360, "Output height in pixels")
	samples := flag.Int("samples", 200, "Samples per pixel")
	maxDepth := flag.Int("max-depth", 50, "Maximum path depth")
	seed := flag.Int64("seed", 42, "Random seed")
	gamma := flag.Float64("gamma", 1.0, "Extra gamma applied after sRGB conversion")
	workers := flag.Int("workers", 0, "Parallel workers (0 = all CPUs)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: spectral-pathtracer -scene scene.json [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	loadedScene, err := scene.LoadFile(*scenePath)
	if err != nil {
		logger.Fatalf("failed to load scene: %v", err)
	}
	logger.Printf("loaded scene with %d surfaces", len(loadedScene.Surfaces))

	r, err := renderer.New(loadedScene, renderer.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
		Seed:            *seed,
		Workers:         *workers,
	}, logger)
	if err != nil {
		logger.Fatalf("failed to create renderer: %v", err)
	}

	startTime := time.Now()
	img := r.Render()
	logger.Printf("traced in %v", time.Since(startTime))

	out, err := os.Create(*outputPath)
	if err != nil {
		logger.Fatalf("failed to create output file: %v", err)
	}
	defer out.Close()

	if err := png.Encode(out, img.ToRGBA(*gamma)); err != nil {
		logger.Fatalf("failed to encode image: %v", err)
	}
	logger.Printf("saved %s", *outputPath)
}
