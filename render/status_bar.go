package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/parameter"
)

// Status is the per-frame content of the bottom bar
type Status struct {
	RotationEnabled bool
	Hovered         string
	Sound           bool

	// Focused is the focused slider's text when the panel cannot show it
	Focused string
}

// RenderStatusBar draws the mode badge, hovered planet and key help on row y
func RenderStatusBar(buf *RenderBuffer, y, width int, st Status) {
	for x := 0; x < width; x++ {
		buf.SetWithBg(x, y, ' ', RGBWhite, RGBBlack)
	}

	badge, badgeBg := parameter.StatusRotationOn, RGB{R: 40, G: 120, B: 60}
	if !st.RotationEnabled {
		badge, badgeBg = parameter.StatusRotationOff, RGB{R: 140, G: 60, B: 40}
	}
	x := 0
	for _, r := range badge {
		buf.SetWithBg(x, y, r, RGBWhite, badgeBg)
		buf.SetBold(x, y)
		x++
	}
	x++

	if st.Sound {
		x = buf.WriteString(x, y, width, parameter.AudioStr, RGBFocus)
	}
	if st.Hovered != "" {
		x = buf.WriteString(x, y, width, st.Hovered, RGBWhite)
		x++
	}
	if st.Focused != "" {
		x = buf.WriteString(x, y, width, st.Focused, RGBFocus)
		x++
	}

	// Right-aligned help, truncated to what is left
	avail := width - x - 1
	if avail <= 0 {
		return
	}
	help := parameter.StatusHelp
	if runewidth.StringWidth(help) > avail {
		help = runewidth.Truncate(help, avail, "…")
	}
	buf.WriteString(width-runewidth.StringWidth(help), y, width, help, RGBDim)
}
