package render

import (
	"math"

	"glide/internal/stack"
)

// Distance from the camera to the stack axis, along z.
const camDist = 6.0

// Near-plane cutoff for the projection.
const nearClip = 0.1

// Projector turns stack-space vertices into screen-space points: shared
// layer tilt first, then the stacking transform, then a camera-relative
// pinhole projection. It holds no per-frame state.
type Projector struct {
	w, h  int
	focal float64

	sinTX, cosTX float64
	sinTZ, cosTZ float64
}

// NewProjector builds a projector for the given screen size and stack tilt.
func NewProjector(w, h int, cfg stack.Config) *Projector {
	p := &Projector{
		sinTX: math.Sin(cfg.TiltX),
		cosTX: math.Cos(cfg.TiltX),
		sinTZ: math.Sin(cfg.TiltZ),
		cosTZ: math.Cos(cfg.TiltZ),
	}
	p.Resize(w, h)
	return p
}

// Resize adapts the projection to a new screen size.
func (p *Projector) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	p.w = w
	p.h = h
	p.focal = float64(h) * 0.9
}

// frame is the per-frame camera basis: position plus the downward pitch
// toward the look target.
type frame struct {
	camY       float64
	sinP, cosP float64
}

// frameFor derives the projection basis from the scroll camera.
func (p *Projector) frameFor(cam *stack.Camera) frame {
	drop := cam.Y - cam.LookY
	pitch := math.Atan2(drop, camDist)
	return frame{camY: cam.Y, sinP: math.Sin(pitch), cosP: math.Cos(pitch)}
}

// layerVertex returns the world-space position of vertex i of layer l. The
// plane's sample grid spans x and z; the noise displacement lifts y.
func (p *Projector) layerVertex(l *stack.Layer, i int) (wx, wy, wz float64) {
	x := l.BaseX[i]
	y := l.Z[i]
	z := l.BaseY[i]

	// Shared tilt: about x, then about z.
	y, z = y*p.cosTX-z*p.sinTX, y*p.sinTX+z*p.cosTX
	x, y = x*p.cosTZ-y*p.sinTZ, x*p.sinTZ+y*p.cosTZ

	return x, y + l.PosY, z + l.PosZ
}

// project maps a world-space point to screen coordinates. depthScale is 1
// at the camera's reference distance and shrinks with depth, sizing the
// plotted point. ok is false for points behind the near plane or fully off
// screen.
func (p *Projector) project(f frame, wx, wy, wz float64) (sx, sy, depthScale float64, ok bool) {
	vx := wx
	vy := wy - f.camY
	vz := wz - camDist

	// Pitch the view down toward the look target.
	vy, vz = vy*f.cosP-vz*f.sinP, vy*f.sinP+vz*f.cosP

	if vz > -nearClip {
		return 0, 0, 0, false
	}

	inv := 1 / -vz
	sx = float64(p.w)/2 + p.focal*vx*inv
	sy = float64(p.h)/2 - p.focal*vy*inv
	depthScale = camDist * inv

	const margin = 8
	if sx < -margin || sx > float64(p.w)+margin || sy < -margin || sy > float64(p.h)+margin {
		return 0, 0, 0, false
	}
	return sx, sy, depthScale, true
}
