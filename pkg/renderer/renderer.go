// Package renderer drives the per-pixel, per-sample, per-wavelength
// estimation and reduces traced spectral radiance into an image.
package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/integrator"
	"github.com/df07/go-spectral-pathtracer/pkg/scene"
	"github.com/df07/go-spectral-pathtracer/pkg/spectrum"
)

// ErrInvalidConfig reports an invalid render configuration, distinct from
// scene validation errors
var ErrInvalidConfig = errors.New("invalid render configuration")

// Config contains the rendering parameters. All knobs are explicit; nothing
// is read from global state.
type Config struct {
	Width           int   // output width in pixels
	Height          int   // output height in pixels
	SamplesPerPixel int   // camera rays traced per pixel
	MaxDepth        int   // maximum path depth
	Seed            int64 // global seed; renders are reproducible given a seed
	Workers         int   // parallel workers, 0 = NumCPU
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 200,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: resolution must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Renderer owns the scene for the render's lifetime and drives the pixel
// loop. The scene is read-only and shared by all workers.
type Renderer struct {
	scene      *scene.Scene
	viewport   *scene.Viewport
	integrator *integrator.PathTracer
	config     Config
	logger     core.Logger
}

// New creates a renderer, validating the configuration
func New(s *scene.Scene, config Config, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: scene is required", ErrInvalidConfig)
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = config.MaxDepth

	return &Renderer{
		scene:      s,
		viewport:   scene.NewViewport(s.Camera, config.Width, config.Height),
		integrator: integrator.NewPathTracer(integratorConfig),
		config:     config,
		logger:     logger,
	}, nil
}

// Render traces the whole image. Rows are distributed over a worker pool;
// each pixel owns a private random stream seeded from its coordinates, so
// the result is deterministic for a given configuration.
func (r *Renderer) Render() *Image {
	img := NewImage(r.config.Width, r.config.Height)

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if r.logger != nil {
		r.logger.Printf("rendering %dx%d, %d samples/pixel, %d workers",
			r.config.Width, r.config.Height, r.config.SamplesPerPixel, workers)
	}

	rows := make(chan int, r.config.Height)
	for y := 0; y < r.config.Height; y++ {
		rows <- y
	}
	close(rows)

	var rowsDone atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(img, y)
				if done := rowsDone.Add(1); r.logger != nil && done%64 == 0 {
					r.logger.Printf("traced %d/%d rows", done, r.config.Height)
				}
			}
		}()
	}
	wg.Wait()

	if r.logger != nil {
		r.logger.Printf("render complete")
	}
	return img
}

// renderRow traces every pixel of one row. Rows never overlap, so workers
// write to disjoint slots without synchronization.
func (r *Renderer) renderRow(img *Image, y int) {
	for x := 0; x < r.config.Width; x++ {
		img.Set(x, y, r.renderPixel(x, y))
	}
}

// renderPixel accumulates the spectral estimate for one pixel: each sample
// jitters the subpixel position with a Halton sequence and draws one hero
// wavelength from a stratified van der Corput sequence, then weights the
// traced radiance by the CIE color matching functions.
func (r *Renderer) renderPixel(x, y int) core.Vec3 {
	random := rand.New(rand.NewSource(r.pixelSeed(x, y)))
	sampler := core.NewRandomSampler(random)

	subpixels := core.NewHalton2(5, 3).
		WithOffset(core.NewVec2(random.Float64(), random.Float64()))
	wavelengths := core.NewVanDerCorput(2)

	spectrumWidth := spectrum.MaxWavelength - spectrum.MinWavelength

	var xyz core.Vec3
	for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
		ray := r.viewport.GetRay(x, y, subpixels.Next())
		wavelength := spectrum.MinWavelength + spectrumWidth*wavelengths.Next()

		radiance := r.integrator.Radiance(r.scene, ray, wavelength, sampler)
		xyz = xyz.Add(spectrum.WavelengthToXYZ(wavelength).Multiply(radiance))
	}

	xyz = xyz.Multiply(1.0 / float64(r.config.SamplesPerPixel))
	if !xyz.IsFinite() {
		return core.Vec3{}
	}
	return xyz
}

// pixelSeed derives a distinct deterministic seed per pixel from the global
// seed and the pixel coordinates
func (r *Renderer) pixelSeed(x, y int) int64 {
	seed := r.config.Seed
	seed = seed*1_000_003 + int64(y)
	seed = seed*1_000_003 + int64(x)
	return seed
}
