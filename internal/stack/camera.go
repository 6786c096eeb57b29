package stack

import (
	"math"

	"glide/pkg/mathx"
)

// Fixed downward offset from the camera to its look target, so the view
// stays oriented into the stack while descending.
const lookDrop = 0.5

// Camera maps normalized scroll progress to a vertical glide through the
// stack. It holds no reference to layers; Update is the only mutator.
type Camera struct {
	BaseY    float64
	Y        float64
	LookY    float64
	Progress float64
}

// NewCamera returns a camera parked at its base position.
func NewCamera(baseY float64) *Camera {
	c := &Camera{BaseY: baseY}
	c.Update(0, 0, 0)
	return c
}

// ScrollProgress normalizes a raw scroll offset against the scrollable page
// height. The max(1, h) guard keeps the division total on pages shorter
// than the viewport.
func ScrollProgress(raw, pageHeight float64) float64 {
	return mathx.Clamp01(raw / math.Max(1, pageHeight))
}

// Update recomputes progress and camera position. Full scroll travels
// exactly stackHeight, placing the camera level with the deepest layer.
func (c *Camera) Update(raw, pageHeight, stackHeight float64) {
	c.Progress = ScrollProgress(raw, pageHeight)
	c.Y = c.BaseY - c.Progress*stackHeight
	c.LookY = c.Y - lookDrop
}

// LookAt returns the camera target point.
func (c *Camera) LookAt() (x, y, z float64) {
	return 0, c.LookY, 0
}
