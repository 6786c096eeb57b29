package noise

import "errors"

// SampleFunc samples a coherent noise field at (x, y, z) and returns a value
// in approximately [-1, 1]. The same inputs always yield the same output.
type SampleFunc func(x, y, z float64) float64

// ErrNoSampler reports that a noise source exposes none of the known
// sampling signatures. Setup must abort before any layer is built.
var ErrNoSampler = errors.New("noise: source exposes no known sampling method")

// Capability surfaces of the supported noise libraries. go-perlin style
// sources expose Noise2D/Noise3D, opensimplex style sources Eval2/Eval3.
type (
	noise3D interface {
		Noise3D(x, y, z float64) float64
	}
	eval3 interface {
		Eval3(x, y, z float64) float64
	}
	noise2D interface {
		Noise2D(x, y float64) float64
	}
	eval2 interface {
		Eval2(x, y float64) float64
	}
)

// Drift factors folding the z argument into the sample domain when only a
// 2D signature is available. At z=0 this reduces to the plain 2D sample.
const (
	foldX = 0.37
	foldY = 0.61
)

// Bind probes src for a compatible sampling signature and returns a fixed
// adapter. 3D signatures win over 2D ones; the capability check happens
// exactly once, never per sample. Returns ErrNoSampler when nothing matches.
func Bind(src any) (SampleFunc, error) {
	switch s := src.(type) {
	case noise3D:
		return s.Noise3D, nil
	case eval3:
		return s.Eval3, nil
	case noise2D:
		return func(x, y, z float64) float64 {
			return s.Noise2D(x+z*foldX, y+z*foldY)
		}, nil
	case eval2:
		return func(x, y, z float64) float64 {
			return s.Eval2(x+z*foldX, y+z*foldY)
		}, nil
	}
	return nil, ErrNoSampler
}
