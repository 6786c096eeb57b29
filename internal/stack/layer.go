package stack

import (
	"fmt"
	"math"

	"glide/internal/noise"
	"glide/pkg/mathx"
)

// Steepness of the tanh soft limit applied to raw noise.
const softLimitK = 0.92

// Noise-domain offset strides per layer index. Irrational multiples keep
// adjacent layers from reading as translated copies of one another.
const (
	offsetStrideX = 10 * math.Phi
	offsetStrideY = 10 * math.Sqrt2
)

// Layer is one displaced point-grid plane in the stack. BaseX/BaseY are
// fixed at construction; Z is rewritten in full on every displacement pass.
type Layer struct {
	Index     int
	Amplitude float64
	OffsetX   float64
	OffsetY   float64

	BaseX []float64
	BaseY []float64
	Z     []float64

	// Stacking transform, assigned by Build.
	PosY float64
	PosZ float64

	// Animated-variant motion parameters, assigned by Build.
	Speed float64
	Phase float64

	// Per-frame compositing state.
	Opacity float64
	Visible bool
	Dirty   bool
}

// depthT returns the normalized depth of layer i in a stack of n layers:
// 0 for the top layer, 1 for the deepest, 0 when the stack has one layer.
func depthT(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// BuildLayer constructs layer i of the stack described by cfg, sampling its
// initial displacement from the bound noise field at time zero.
func BuildLayer(cfg Config, i int, sample noise.SampleFunc) (*Layer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if i < 0 || i >= cfg.LayerCount {
		return nil, fmt.Errorf("stack: layer index %d out of range [0,%d)", i, cfg.LayerCount)
	}

	t := depthT(i, cfg.LayerCount)
	l := &Layer{
		Index:     i,
		Amplitude: mathx.Lerp(cfg.AmpTop, cfg.AmpBottom, t),
		OffsetX:   float64(i) * offsetStrideX,
		OffsetY:   float64(i) * offsetStrideY,
	}

	cols := cfg.SegmentsW + 1
	rows := cfg.SegmentsH + 1
	n := cols * rows
	l.BaseX = make([]float64, n)
	l.BaseY = make([]float64, n)
	l.Z = make([]float64, n)

	stepX := cfg.PlaneWidth / float64(cfg.SegmentsW)
	stepY := cfg.PlaneHeight / float64(cfg.SegmentsH)
	for r := 0; r < rows; r++ {
		y := -cfg.PlaneHeight/2 + float64(r)*stepY
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			l.BaseX[idx] = -cfg.PlaneWidth/2 + float64(c)*stepX
			l.BaseY[idx] = y
		}
	}

	l.Displace(cfg, sample, 0)
	return l, nil
}

// Displace rewrites every vertex Z from the noise field at time phase t.
// The buffer is always overwritten whole, never patched, and raw noise is
// soft-limited through tanh so extreme spikes round off into smooth crests
// rather than clipping flat.
func (l *Layer) Displace(cfg Config, sample noise.SampleFunc, t float64) {
	for i := range l.Z {
		n := sample(l.BaseX[i]*cfg.Frequency+l.OffsetX, l.BaseY[i]*cfg.Frequency+l.OffsetY, t)
		l.Z[i] = mathx.SoftClamp(n, l.Amplitude, softLimitK)
	}
	l.Dirty = true
}
