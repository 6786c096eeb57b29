package app

// Virtual document height per layer. Any positive constant works since
// progress is normalized; 600 keeps one wheel notch around 2% of an
// eight-layer stack.
const pageHeightPerLayer = 600.0

// Page models the scroll spacer the visualization glides against: a
// virtual document tall enough that scrolling it end to end traverses the
// whole stack. Input adapters push offsets in, the driver reads them out.
type Page struct {
	offset float64
	height float64
}

// NewPage sizes the virtual document for a stack of layerCount layers.
func NewPage(layerCount int) *Page {
	if layerCount < 1 {
		layerCount = 1
	}
	return &Page{height: pageHeightPerLayer * float64(layerCount)}
}

// ScrollBy moves the scroll position, clamped to the document bounds.
func (p *Page) ScrollBy(delta float64) {
	p.offset += delta
	if p.offset < 0 {
		p.offset = 0
	}
	if p.offset > p.height {
		p.offset = p.height
	}
}

// ScrollTo jumps to an absolute offset, clamped to the document bounds.
func (p *Page) ScrollTo(offset float64) {
	p.offset = 0
	p.ScrollBy(offset)
}

// ScrollOffset returns the current raw scroll offset.
func (p *Page) ScrollOffset() float64 { return p.offset }

// PageHeight returns the total scrollable height.
func (p *Page) PageHeight() float64 { return p.height }
