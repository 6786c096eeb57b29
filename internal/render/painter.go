//go:build ebiten

package render

import (
	"image/color"
	"math"

	"glide/internal/stack"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	pointColor = color.RGBA{R: 210, G: 225, B: 255, A: 255}
	background = color.RGBA{R: 8, G: 10, B: 18, A: 255}
)

// PointPainter rasterizes the layer stack into a single offscreen image:
// fill the pixel buffer back to front, upload it once, draw it once.
type PointPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	proj *Projector
	cfg  stack.Config
}

// NewPointPainter allocates a painter for a screen of size w*h.
func NewPointPainter(w, h int, cfg stack.Config) *PointPainter {
	pp := &PointPainter{cfg: cfg, proj: NewProjector(w, h, cfg)}
	pp.Resize(w, h)
	return pp
}

// Resize reallocates the offscreen image and pixel buffer.
func (pp *PointPainter) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == pp.w && h == pp.h && pp.img != nil {
		return
	}
	pp.w = w
	pp.h = h
	pp.buf = make([]byte, 4*w*h)
	pp.img = ebiten.NewImage(w, h)
	pp.proj.Resize(w, h)
}

// Paint renders every visible layer's point grid. Layers are walked back
// to front so nearer points accumulate over deeper ones, and a layer's
// dirty flag is cleared only once its vertices have been uploaded.
func (pp *PointPainter) Paint(dst *ebiten.Image, s *stack.Stack, cam *stack.Camera) {
	clearRGBA(pp.buf, background)
	f := pp.proj.frameFor(cam)

	for i := len(s.Layers) - 1; i >= 0; i-- {
		l := s.Layers[i]
		if !l.Visible {
			continue
		}
		for vi := range l.Z {
			wx, wy, wz := pp.proj.layerVertex(l, vi)
			sx, sy, depthScale, ok := pp.proj.project(f, wx, wy, wz)
			if !ok {
				continue
			}
			size := int(math.Round(pp.cfg.PointSize * depthScale))
			if size < 1 {
				size = 1
			}
			plotPoint(pp.buf, pp.w, pp.h, int(sx), int(sy), size, pointColor, l.Opacity)
		}
		l.Dirty = false
	}

	pp.img.WritePixels(pp.buf)
	dst.DrawImage(pp.img, nil)
}
