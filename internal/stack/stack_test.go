package stack

import (
	"math"
	"testing"
)

func TestBuildOrdering(t *testing.T) {
	cfg := testConfig()
	s, err := Build(cfg, waveSampler)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(s.Layers) != cfg.LayerCount {
		t.Fatalf("built %d layers, want %d", len(s.Layers), cfg.LayerCount)
	}

	if s.Layers[0].PosY != 0 {
		t.Fatalf("layer 0 at y=%v, want 0", s.Layers[0].PosY)
	}
	for i := 1; i < len(s.Layers); i++ {
		if s.Layers[i].PosY >= s.Layers[i-1].PosY {
			t.Fatalf("layer %d y=%v not strictly below layer %d y=%v", i, s.Layers[i].PosY, i-1, s.Layers[i-1].PosY)
		}
		if s.Layers[i].PosZ >= s.Layers[i-1].PosZ {
			t.Fatalf("layer %d depth nudge %v not strictly behind layer %d at %v", i, s.Layers[i].PosZ, i-1, s.Layers[i-1].PosZ)
		}
	}

	deepest := s.Layers[len(s.Layers)-1]
	wantY := -float64(cfg.LayerCount-1) * cfg.VerticalSpacing
	if deepest.PosY != wantY {
		t.Fatalf("deepest layer y=%v, want %v", deepest.PosY, wantY)
	}
}

func TestStackHeight(t *testing.T) {
	cfg := testConfig()
	cfg.LayerCount = 5
	cfg.VerticalSpacing = 1.0
	s, err := Build(cfg, flatSampler)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Height != 4.0 {
		t.Fatalf("stack height %v, want 4.0", s.Height)
	}

	cfg.LayerCount = 1
	s, err = Build(cfg, flatSampler)
	if err != nil {
		t.Fatalf("single-layer build failed: %v", err)
	}
	if s.Height != 0 {
		t.Fatalf("single-layer stack height %v, want 0", s.Height)
	}
}

func TestLayerSpeeds(t *testing.T) {
	cfg := testConfig()
	s, err := Build(cfg, flatSampler)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for i, l := range s.Layers {
		dt := depthT(i, cfg.LayerCount)
		base := cfg.BaseSpeed * (1 - dt*cfg.DepthSlowdown)
		if base < minSpeed {
			base = minSpeed
		}
		want := base / (1 + l.Amplitude*cfg.AmpCoupling)
		if math.Abs(l.Speed-want) > 1e-12 {
			t.Fatalf("layer %d speed %v, want %v", i, l.Speed, want)
		}
		if l.Speed <= 0 {
			t.Fatalf("layer %d speed %v, must stay positive", i, l.Speed)
		}
	}

	// Deeper layers move more slowly.
	for i := 1; i < len(s.Layers); i++ {
		if s.Layers[i].Speed >= s.Layers[i-1].Speed {
			t.Fatalf("layer %d speed %v not below layer %d speed %v", i, s.Layers[i].Speed, i-1, s.Layers[i-1].Speed)
		}
	}
}

func TestLayerSpeedFloor(t *testing.T) {
	cfg := testConfig()
	cfg.DepthSlowdown = 2 // would drive deep layers negative without the floor
	s, err := Build(cfg, flatSampler)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	deepest := s.Layers[len(s.Layers)-1]
	want := minSpeed / (1 + deepest.Amplitude*cfg.AmpCoupling)
	if math.Abs(deepest.Speed-want) > 1e-15 {
		t.Fatalf("floored speed %v, want %v", deepest.Speed, want)
	}
}

func TestLayerPhases(t *testing.T) {
	cfg := testConfig()
	s, err := Build(cfg, flatSampler)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for i, l := range s.Layers {
		if l.Phase != float64(i)*phaseStride {
			t.Fatalf("layer %d phase %v, want %v", i, l.Phase, float64(i)*phaseStride)
		}
	}
}

func TestBuildRejectsNilSampler(t *testing.T) {
	if _, err := Build(testConfig(), nil); err == nil {
		t.Fatalf("nil sampler accepted")
	}
}
