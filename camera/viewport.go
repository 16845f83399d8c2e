package camera

import (
	"math"

	"github.com/lixenwraith/orrery/parameter"
)

// Viewport is the rectangle of terminal cells the scene is drawn into
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell lies inside the viewport
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Width && row >= v.Y && row < v.Y+v.Height
}

// Aspect is the on-screen width/height ratio, correcting for tall cells
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 1
	}
	return float64(v.Width) * parameter.CellAspect / float64(v.Height)
}

// ToNDC maps a cell to normalized device coordinates using the cell center, Y inverted
func (v Viewport) ToNDC(col, row int) (x, y float64) {
	x = (float64(col-v.X)+0.5)/float64(v.Width)*2 - 1
	y = -(float64(row-v.Y)+0.5)/float64(v.Height)*2 + 1
	return x, y
}

// FromNDC maps normalized device coordinates to fractional screen cell coordinates
// Inverse of ToNDC: the center of cell (c, r) maps to (c+0.5, r+0.5)
func (v Viewport) FromNDC(x, y float64) (col, row float64) {
	col = float64(v.X) + (x+1)/2*float64(v.Width)
	row = float64(v.Y) + (1-y)/2*float64(v.Height)
	return col, row
}

// CellAt returns the cell containing an NDC point
func (v Viewport) CellAt(x, y float64) (col, row int) {
	fx, fy := v.FromNDC(x, y)
	return int(math.Floor(fx)), int(math.Floor(fy))
}
