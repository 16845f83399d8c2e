package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/scene"
)

// RGB is an alias to scene.RGB so material colors render without conversion
type RGB = scene.RGB

// Predefined colors
var (
	RGBBlack = RGB{R: 0, G: 0, B: 0}
	RGBWhite = RGB{R: 255, G: 255, B: 255}
	RGBDim   = RGB{R: 100, G: 100, B: 110}
	RGBPanel = RGB{R: 14, G: 14, B: 22}
	RGBFocus = RGB{R: 255, G: 200, B: 50}
)

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend mixes src over c at alpha in RGB space
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return fromColorful(toColorful(c).BlendRgb(toColorful(src), alpha))
}

// Scale multiplies every channel by k, clamped
func Scale(c RGB, k float64) RGB {
	cc := toColorful(c)
	return fromColorful(colorful.Color{R: cc.R * k, G: cc.G * k, B: cc.B * k})
}

// Add sums channels, clamped
func Add(a, b RGB) RGB {
	ca, cb := toColorful(a), toColorful(b)
	return fromColorful(colorful.Color{R: ca.R + cb.R, G: ca.G + cb.G, B: ca.B + cb.B})
}

// Lit returns the diffuse-lit base color plus the emissive term, as a Lambert material does
func Lit(base, emissive RGB, diffuse float64) RGB {
	return Add(Scale(base, diffuse), emissive)
}

// TcellColor converts to a 24-bit tcell color
func TcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
