//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Stats is the read-only view of driver state the overlay displays.
type Stats interface {
	ScrollProgress() float64
	VisibleLayers() int
	LayerCount() int
	Animating() bool
}

var overlayColor = color.RGBA{R: 200, G: 210, B: 230, A: 255}

// Overlay draws scroll diagnostics in the corner of the screen.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance, initially visible.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles overlay visibility on Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the diagnostics line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Stats) {
	if !o.visible || st == nil {
		return
	}
	mode := "static"
	if st.Animating() {
		mode = "animated"
	}
	line := fmt.Sprintf("scroll %3.0f%%  layers %d/%d  %s  tps %0.0f",
		st.ScrollProgress()*100, st.VisibleLayers(), st.LayerCount(), mode, ebiten.ActualTPS())
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, overlayColor)
}
