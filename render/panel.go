package render

import (
	"github.com/lixenwraith/orrery/panel"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/scene"
)

// PanelRenderer draws the speed sliders down the right side of the screen
type PanelRenderer struct {
	layout panel.Layout
}

// NewPanelRenderer creates a renderer with an empty layout
func NewPanelRenderer() *PanelRenderer {
	return &PanelRenderer{}
}

// SetLayout sets the panel rectangle
func (r *PanelRenderer) SetLayout(l panel.Layout) {
	r.layout = l
}

// Render draws one label, track and value per visible slider in registry order
func (r *PanelRenderer) Render(buf *RenderBuffer, p *panel.Panel, reg *scene.Registry) {
	l := r.layout
	if l.Width <= 0 {
		return
	}
	maxX := l.X + l.Width
	bottom := l.Bottom
	if _, h := buf.Size(); bottom <= 0 || bottom > h {
		bottom = h
	}

	// Background and left border
	for y := 0; y < bottom; y++ {
		buf.SetWithBg(l.X-1, y, '│', RGBDim, RGBPanel)
		for x := l.X; x < maxX; x++ {
			buf.SetWithBg(x, y, ' ', RGBWhite, RGBPanel)
		}
	}

	for i, s := range p.Sliders[:l.Visible(len(p.Sliders))] {
		labelY := l.LabelRow(i)
		b := reg.At(s.Index)

		fg := RGBWhite
		if b != nil && b.Highlighted() {
			fg = Lit(b.Color, b.Emissive, 1)
		}
		marker := ' '
		if i == p.Focus() {
			marker = '>'
			fg = RGBFocus
		}
		buf.SetFgOnly(l.X, labelY, marker, RGBFocus)
		buf.WriteString(l.X+1, labelY, maxX, l.Label(s), fg)
		if b != nil {
			// Swatch in the planet's own color
			buf.SetFgOnly(maxX-2, labelY, parameter.GlyphKnob, b.Color)
		}

		x, y, w := l.Track(i)
		knob := l.KnobOffset(s, w)
		for k := 0; k < w; k++ {
			glyph, c := parameter.GlyphTrack, RGBDim
			if k < knob {
				c = RGBWhite
			}
			if k == knob {
				glyph, c = parameter.GlyphKnob, RGBFocus
			}
			buf.SetFgOnly(x+k, y, glyph, c)
		}
		buf.WriteString(l.ValueX(i), y, maxX, s.String(), RGBWhite)
	}
}
