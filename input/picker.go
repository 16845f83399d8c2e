package input

import (
	"sort"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/vmath"
)

// Hit is one planet intersected by a pointer ray
type Hit struct {
	Index    int
	Distance float64
}

// Picker resolves pointer positions to planets
// Only planet spheres are pickable; the sun, rings and stars are not
type Picker struct {
	cam *camera.Camera
	reg *scene.Registry

	// vp, when set, makes the cell under a planet's projected center pickable
	vp camera.Viewport
}

// NewPicker binds a picker to the camera and registry it reads on every event
func NewPicker(cam *camera.Camera, reg *scene.Registry) *Picker {
	return &Picker{cam: cam, reg: reg}
}

// SetViewport enables center-cell picking for the given viewport
func (p *Picker) SetViewport(vp camera.Viewport) {
	p.vp = vp
}

// Intersect returns every planet hit by the ray through (ndcX, ndcY), nearest first
// With a viewport set, a planet also counts as hit from the cell under its projected center,
// the cell the renderer always fills even when the planet is smaller than a cell
func (p *Picker) Intersect(ndcX, ndcY float64) []Hit {
	ray := p.cam.Ray(ndcX, ndcY)
	cells := p.vp.Width > 0 && p.vp.Height > 0
	var col, row int
	if cells {
		col, row = p.vp.CellAt(ndcX, ndcY)
	}

	var hits []Hit
	for i, b := range p.reg.All() {
		if t, ok := vmath.RaySphere(ray, b.Position, b.Size); ok {
			if t >= p.cam.Near && t <= p.cam.Far {
				hits = append(hits, Hit{Index: i, Distance: t})
			}
			continue
		}
		if !cells {
			continue
		}
		nx, ny, _, ok := p.cam.Project(b.Position)
		if !ok {
			continue
		}
		if c, r := p.vp.CellAt(nx, ny); c == col && r == row {
			// Closest approach along the ray stands in for the surface distance
			t := vmath.V3FDot(vmath.V3FSub(b.Position, ray.Origin), ray.Dir)
			hits = append(hits, Hit{Index: i, Distance: t})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})
	return hits
}

// PointerMove resets every planet to base, then highlights the nearest hit
// Returns the highlighted index or -1
func (p *Picker) PointerMove(ndcX, ndcY float64) int {
	hits := p.Intersect(ndcX, ndcY)

	// Clear before set, so leaving a planet over empty space drops its highlight
	p.reg.ClearHighlight()
	if len(hits) == 0 {
		return -1
	}
	p.reg.Highlight(hits[0].Index)
	return hits[0].Index
}

// PointerLeave resets every planet to base
func (p *Picker) PointerLeave() {
	p.reg.ClearHighlight()
}
