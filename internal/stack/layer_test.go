package stack

import (
	"math"
	"testing"
)

// flatSampler returns 0 everywhere: a displaced layer stays perfectly flat.
func flatSampler(x, y, z float64) float64 { return 0 }

// waveSampler is a cheap deterministic stand-in for a noise library.
func waveSampler(x, y, z float64) float64 {
	return math.Sin(x*1.3+y*0.7+z) * 0.8
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.LayerCount = 5
	cfg.SegmentsW = 8
	cfg.SegmentsH = 6
	return cfg
}

func TestBuildLayerGridShape(t *testing.T) {
	cfg := testConfig()
	l, err := BuildLayer(cfg, 0, waveSampler)
	if err != nil {
		t.Fatalf("BuildLayer failed: %v", err)
	}
	want := (cfg.SegmentsW + 1) * (cfg.SegmentsH + 1)
	if len(l.BaseX) != want || len(l.BaseY) != want || len(l.Z) != want {
		t.Fatalf("grid lengths %d/%d/%d, want %d", len(l.BaseX), len(l.BaseY), len(l.Z), want)
	}

	// Corners span the plane symmetrically around the origin.
	if l.BaseX[0] != -cfg.PlaneWidth/2 || l.BaseY[0] != -cfg.PlaneHeight/2 {
		t.Fatalf("first sample at (%v, %v), want (%v, %v)", l.BaseX[0], l.BaseY[0], -cfg.PlaneWidth/2, -cfg.PlaneHeight/2)
	}
	last := want - 1
	if math.Abs(l.BaseX[last]-cfg.PlaneWidth/2) > 1e-9 || math.Abs(l.BaseY[last]-cfg.PlaneHeight/2) > 1e-9 {
		t.Fatalf("last sample at (%v, %v), want (%v, %v)", l.BaseX[last], l.BaseY[last], cfg.PlaneWidth/2, cfg.PlaneHeight/2)
	}
}

func TestAmplitudeEndpoints(t *testing.T) {
	cfg := testConfig()
	top, err := BuildLayer(cfg, 0, flatSampler)
	if err != nil {
		t.Fatalf("top layer failed: %v", err)
	}
	bottom, err := BuildLayer(cfg, cfg.LayerCount-1, flatSampler)
	if err != nil {
		t.Fatalf("bottom layer failed: %v", err)
	}
	if top.Amplitude != cfg.AmpTop {
		t.Fatalf("layer 0 amplitude = %v, want exactly %v", top.Amplitude, cfg.AmpTop)
	}
	if bottom.Amplitude != cfg.AmpBottom {
		t.Fatalf("deepest layer amplitude = %v, want exactly %v", bottom.Amplitude, cfg.AmpBottom)
	}
}

func TestDepthT(t *testing.T) {
	if got := depthT(0, 5); got != 0 {
		t.Fatalf("depthT(0, 5) = %v, want 0", got)
	}
	if got := depthT(4, 5); got != 1 {
		t.Fatalf("depthT(4, 5) = %v, want 1", got)
	}
	if got := depthT(0, 1); got != 0 {
		t.Fatalf("depthT(0, 1) = %v, want 0", got)
	}
}

func TestFlatNoiseStaysFlat(t *testing.T) {
	cfg := testConfig()
	cfg.AmpBottom = 0.9
	l, err := BuildLayer(cfg, cfg.LayerCount-1, flatSampler)
	if err != nil {
		t.Fatalf("BuildLayer failed: %v", err)
	}
	for i, z := range l.Z {
		if z != 0 {
			t.Fatalf("vertex %d displaced to %v under zero noise", i, z)
		}
	}
}

func TestDisplacementBoundedByAmplitude(t *testing.T) {
	cfg := testConfig()
	spike := func(x, y, z float64) float64 { return 2.5 }
	l, err := BuildLayer(cfg, 2, spike)
	if err != nil {
		t.Fatalf("BuildLayer failed: %v", err)
	}
	for i, z := range l.Z {
		if math.Abs(z) >= l.Amplitude {
			t.Fatalf("vertex %d at %v exceeds soft-limit bound %v", i, z, l.Amplitude)
		}
	}
}

func TestLayerOffsetsDiffer(t *testing.T) {
	cfg := testConfig()
	a, _ := BuildLayer(cfg, 1, flatSampler)
	b, _ := BuildLayer(cfg, 2, flatSampler)
	if a.OffsetX == b.OffsetX || a.OffsetY == b.OffsetY {
		t.Fatalf("adjacent layers share noise offsets: (%v,%v) vs (%v,%v)", a.OffsetX, a.OffsetY, b.OffsetX, b.OffsetY)
	}
}

func TestBuildLayerDeterminism(t *testing.T) {
	cfg := testConfig()
	a, err := BuildLayer(cfg, 3, waveSampler)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	b, err := BuildLayer(cfg, 3, waveSampler)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}
	for i := range a.Z {
		if a.Z[i] != b.Z[i] {
			t.Fatalf("independent builds disagree at vertex %d: %v vs %v", i, a.Z[i], b.Z[i])
		}
	}
}

func TestBuildLayerRejectsDegenerateGeometry(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.LayerCount = 0 },
		func(c *Config) { c.PlaneWidth = 0 },
		func(c *Config) { c.PlaneHeight = -1 },
		func(c *Config) { c.SegmentsW = 0 },
		func(c *Config) { c.SegmentsH = -2 },
		func(c *Config) { c.VisibilityRange = 0 },
	}
	for i, mutate := range cases {
		cfg := testConfig()
		mutate(&cfg)
		if _, err := BuildLayer(cfg, 0, flatSampler); err == nil {
			t.Fatalf("case %d: degenerate config accepted", i)
		}
	}

	cfg := testConfig()
	if _, err := BuildLayer(cfg, cfg.LayerCount, flatSampler); err == nil {
		t.Fatalf("out-of-range layer index accepted")
	}
}
