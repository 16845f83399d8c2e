package panel

import (
	"math"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/parameter"
)

// Layout places the panel's sliders in a column of terminal cells
// Each slider takes a label row and a track row, plus a spacer row unless compacted
type Layout struct {
	X, Y  int
	Width int

	// Bottom is the first row the panel may not use; 0 leaves it unbounded
	Bottom int

	// Stride is rows per slider; 0 means PanelRowsPerSlider
	Stride int
}

// Fit returns the roomiest layout that shows all n sliders above bottom
// When none does, the compact layout is returned and Visible reports how many fit
func Fit(x, width, bottom, n int) Layout {
	candidates := []Layout{
		{Y: 1, Stride: parameter.PanelRowsPerSlider},
		{Y: 0, Stride: parameter.PanelRowsPerSlider},
		{Y: 0, Stride: parameter.PanelRowsCompact},
	}
	var l Layout
	for _, c := range candidates {
		l = Layout{X: x, Y: c.Y, Width: width, Bottom: bottom, Stride: c.Stride}
		if l.Visible(n) == n {
			break
		}
	}
	return l
}

func (l Layout) stride() int {
	if l.Stride <= 0 {
		return parameter.PanelRowsPerSlider
	}
	return l.Stride
}

// Visible returns how many of n sliders have both label and track above Bottom
func (l Layout) Visible(n int) int {
	if l.Bottom <= 0 {
		return n
	}
	for i := 0; i < n; i++ {
		if l.LabelRow(i)+1 >= l.Bottom {
			return i
		}
	}
	return n
}

// valueWidth is the cell width of a formatted speed, e.g. "0.050"
const valueWidth = 5

// LabelRow returns the row of slider i's label
func (l Layout) LabelRow(i int) int {
	return l.Y + i*l.stride()
}

// Track returns the first cell and length of slider i's track
func (l Layout) Track(i int) (x, y, width int) {
	x = l.X + 1
	y = l.LabelRow(i) + 1
	width = l.Width - 2 - valueWidth - 1
	if width < 2 {
		width = 2
	}
	return x, y, width
}

// ValueX returns the column where slider i's value text starts
func (l Layout) ValueX(i int) int {
	x, _, w := l.Track(i)
	return x + w + 1
}

// Label returns the slider label truncated to the panel width
func (l Layout) Label(s *Slider) string {
	avail := l.Width - 2
	if avail <= 0 {
		return ""
	}
	if runewidth.StringWidth(s.Label) <= avail {
		return s.Label
	}
	return runewidth.Truncate(s.Label, avail, "…")
}

// KnobOffset returns the knob cell offset within the track
func (l Layout) KnobOffset(s *Slider, width int) int {
	return int(math.Round(s.Fraction() * float64(width-1)))
}

// Hit maps a cell to a visible slider track, returning the value under the cell as control text
func (l Layout) Hit(p *Panel, col, row int) (index int, raw string, ok bool) {
	for i, s := range p.Sliders[:l.Visible(len(p.Sliders))] {
		x, y, w := l.Track(i)
		if row != y || col < x || col >= x+w {
			continue
		}
		f := float64(col-x) / float64(w-1)
		return i, strconv.FormatFloat(s.ValueAt(f), 'f', -1, 64), true
	}
	return -1, "", false
}
