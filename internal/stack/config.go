package stack

import "fmt"

// Config holds the immutable stack parameters, fixed at startup. Nothing in
// here changes after Build; all per-frame state lives on the layers.
type Config struct {
	LayerCount      int
	VerticalSpacing float64
	DepthNudge      float64

	PlaneWidth  float64
	PlaneHeight float64
	SegmentsW   int
	SegmentsH   int

	AmpTop    float64
	AmpBottom float64
	Frequency float64

	TiltX float64
	TiltZ float64

	PointSize float64

	VisibilityRange   float64
	DepthFadeStrength float64
	OpacityCeiling    float64
	BaseCameraY       float64

	Animate       bool
	BaseSpeed     float64
	DepthSlowdown float64
	AmpCoupling   float64
	TimeScale     float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		LayerCount:      8,
		VerticalSpacing: 1.0,
		DepthNudge:      0.02,

		PlaneWidth:  10,
		PlaneHeight: 10,
		SegmentsW:   48,
		SegmentsH:   48,

		AmpTop:    0.45,
		AmpBottom: 0.9,
		Frequency: 0.35,

		TiltX: -0.25,
		TiltZ: 0.08,

		PointSize: 2,

		VisibilityRange:   1.6,
		DepthFadeStrength: 0.35,
		OpacityCeiling:    0.95,
		BaseCameraY:       0,

		Animate:       true,
		BaseSpeed:     0.6,
		DepthSlowdown: 0.7,
		AmpCoupling:   0.8,
		TimeScale:     0.4,
	}
}

// Validate reports the first degenerate parameter, if any. A config that
// passes here cannot fail later: every downstream computation is total.
func (c Config) Validate() error {
	if c.LayerCount <= 0 {
		return fmt.Errorf("stack: layer count %d, need at least 1", c.LayerCount)
	}
	if c.PlaneWidth <= 0 || c.PlaneHeight <= 0 {
		return fmt.Errorf("stack: plane size %gx%g, both dimensions must be positive", c.PlaneWidth, c.PlaneHeight)
	}
	if c.SegmentsW <= 0 || c.SegmentsH <= 0 {
		return fmt.Errorf("stack: segment counts %dx%d, both must be positive", c.SegmentsW, c.SegmentsH)
	}
	if c.VerticalSpacing <= 0 {
		return fmt.Errorf("stack: vertical spacing %g, must be positive", c.VerticalSpacing)
	}
	if c.VisibilityRange <= 0 {
		return fmt.Errorf("stack: visibility range %g, must be positive", c.VisibilityRange)
	}
	return nil
}
