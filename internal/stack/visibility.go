package stack

import (
	"math"

	"glide/pkg/mathx"
)

// Layers below this opacity are culled; the animated variant skips their
// vertex pass entirely.
const visibleThreshold = 0.01

// Opacity computes the compositing opacity for a layer at vertical position
// layerY given the current camera height. Proximity falloff is smoothstep
// softened so layers fade in and out without popping, and a fixed depth
// fade dims deeper layers regardless of camera distance. Pure: the result
// depends only on the arguments.
func Opacity(layerY, cameraY, stackHeight float64, cfg Config) (opacity float64, visible bool) {
	d := math.Abs(layerY - cameraY)
	vis := mathx.Clamp01(1 - d/cfg.VisibilityRange)
	vis = mathx.Smoothstep(vis)

	h := math.Max(stackHeight, 1e-9)
	depthFade := 1 - (math.Abs(layerY)/h)*cfg.DepthFadeStrength

	opacity = mathx.Clamp01(vis * cfg.OpacityCeiling * depthFade)
	return opacity, opacity > visibleThreshold
}
