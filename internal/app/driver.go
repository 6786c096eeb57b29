package app

import (
	"glide/internal/core"
	"glide/internal/noise"
	"glide/internal/stack"
)

// Viewport supplies the page scaffolding the driver reads each tick: the
// current raw scroll offset and the total scrollable height.
type Viewport interface {
	ScrollOffset() float64
	PageHeight() float64
}

// Driver owns the scene state and runs the per-frame update cycle. It is
// the single mutator of layer buffers, opacities and the camera; the
// rendering adapter only reads. One Step per frame, on one goroutine.
type Driver struct {
	cfg    stack.Config
	stack  *stack.Stack
	camera *stack.Camera
	sample noise.SampleFunc
	clock  core.Clock
	view   Viewport
}

// NewDriver wires a built stack to its scroll source and clock.
func NewDriver(cfg stack.Config, s *stack.Stack, sample noise.SampleFunc, view Viewport, clock core.Clock) *Driver {
	return &Driver{
		cfg:    cfg,
		stack:  s,
		camera: stack.NewCamera(cfg.BaseCameraY),
		sample: sample,
		clock:  clock,
		view:   view,
	}
}

// Step runs one update cycle: scroll progress, camera, then per-layer
// opacity. In the animated variant every visible layer additionally gets a
// fresh whole-buffer displacement pass at its own time phase; invisible
// layers skip vertex work entirely. Recompute finishes before anything is
// marked dirty, and rendering happens strictly after Step.
func (d *Driver) Step() {
	d.camera.Update(d.view.ScrollOffset(), d.view.PageHeight(), d.stack.Height)

	elapsed := d.clock.Elapsed().Seconds() * d.cfg.TimeScale
	for _, l := range d.stack.Layers {
		l.Opacity, l.Visible = stack.Opacity(l.PosY, d.camera.Y, d.stack.Height, d.cfg)
		if !d.cfg.Animate || !l.Visible {
			continue
		}
		tt := elapsed*l.Speed + l.Phase
		l.Displace(d.cfg, d.sample, tt)
	}
}

// Reseed rebuilds the layer stack against a freshly bound sampler, keeping
// the configuration and scroll position.
func (d *Driver) Reseed(sample noise.SampleFunc) error {
	s, err := stack.Build(d.cfg, sample)
	if err != nil {
		return err
	}
	d.stack = s
	d.sample = sample
	return nil
}

// ToggleAnimate flips between the animated and static variants.
func (d *Driver) ToggleAnimate() {
	d.cfg.Animate = !d.cfg.Animate
}

// Stack returns the driven layer stack for rendering.
func (d *Driver) Stack() *stack.Stack { return d.stack }

// Camera returns the scroll-driven camera.
func (d *Driver) Camera() *stack.Camera { return d.camera }

// ScrollProgress reports the current normalized scroll position.
func (d *Driver) ScrollProgress() float64 { return d.camera.Progress }

// LayerCount reports the total number of layers.
func (d *Driver) LayerCount() int { return len(d.stack.Layers) }

// VisibleLayers reports how many layers passed the culling threshold on
// the most recent Step.
func (d *Driver) VisibleLayers() int {
	n := 0
	for _, l := range d.stack.Layers {
		if l.Visible {
			n++
		}
	}
	return n
}

// Animating reports whether the continuous displacement pass is active.
func (d *Driver) Animating() bool { return d.cfg.Animate }
