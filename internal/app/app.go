//go:build ebiten

package app

import (
	"time"

	"glide/internal/render"
	"glide/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scroll offset units per wheel notch and per held arrow-key tick.
const (
	wheelStep = 40.0
	arrowStep = 8.0
)

// Game adapts the frame driver to the ebiten.Game interface. Update runs
// exactly one driver step, Draw issues exactly one paint.
type Game struct {
	driver  *Driver
	page    *Page
	painter *render.PointPainter
	overlay *ui.Overlay

	width  int
	height int
	paused bool

	reseed func(seed int64) error
}

// New constructs a Game around a wired driver and its scroll page.
func New(driver *Driver, page *Page, width, height int) *Game {
	return &Game{
		driver:  driver,
		page:    page,
		painter: render.NewPointPainter(width, height, driver.cfg),
		overlay: ui.NewOverlay(),
		width:   width,
		height:  height,
	}
}

// OnReseed installs the callback invoked when the user requests a fresh
// noise seed.
func (g *Game) OnReseed(f func(seed int64) error) {
	g.reseed = f
}

// Update handles input and advances the scene by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.driver.ToggleAnimate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.page.ScrollTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.reseed != nil {
		if err := g.reseed(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.page.ScrollBy(-wy * wheelStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.page.ScrollBy(arrowStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.page.ScrollBy(-arrowStep)
	}

	g.overlay.Update()

	if !g.paused {
		g.driver.Step()
	}
	return nil
}

// Draw renders the current stack state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Paint(screen, g.driver.Stack(), g.driver.Camera())
	g.overlay.Draw(screen, g.driver)
}

// Layout tracks window resizes and reconfigures the painter.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.painter.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
