package stack

import (
	"errors"

	"glide/internal/noise"
)

// Floor for per-layer animation speed before amplitude damping.
const minSpeed = 1e-4

// Per-layer time phase stride, decorrelating layer motion.
const phaseStride = 1.7

// Stack owns the ordered collection of displaced layers and their shared
// stacking transform. Layer 0 sits at y=0; each following layer is one
// spacing lower and nudged back in depth so no two planes coincide.
type Stack struct {
	Config Config
	Layers []*Layer

	// Height is the total camera travel distance, (N-1) * spacing.
	Height float64
}

// Build constructs the full layer stack from cfg against a bound sampler.
func Build(cfg Config, sample noise.SampleFunc) (*Stack, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sample == nil {
		return nil, errors.New("stack: nil noise sampler")
	}

	s := &Stack{Config: cfg, Layers: make([]*Layer, 0, cfg.LayerCount)}
	for i := 0; i < cfg.LayerCount; i++ {
		l, err := BuildLayer(cfg, i, sample)
		if err != nil {
			return nil, err
		}
		l.PosY = -float64(i) * cfg.VerticalSpacing
		l.PosZ = -float64(i) * cfg.DepthNudge

		// Deeper layers glide more slowly, and high-amplitude layers are
		// damped so the busiest surfaces are not also the fastest.
		t := depthT(i, cfg.LayerCount)
		speed := cfg.BaseSpeed * (1 - t*cfg.DepthSlowdown)
		if speed < minSpeed {
			speed = minSpeed
		}
		l.Speed = speed / (1 + l.Amplitude*cfg.AmpCoupling)
		l.Phase = float64(i) * phaseStride

		s.Layers = append(s.Layers, l)
	}
	s.Height = float64(cfg.LayerCount-1) * cfg.VerticalSpacing
	return s, nil
}
