package scene

import "github.com/lixenwraith/orrery/parameter"

// Registry is the ordered set of planets shared by the frame loop, the picker and the control panel
// Index i is fixed for the program lifetime: slider i always addresses body i
// Not safe for concurrent use; every caller runs on the host goroutine
type Registry struct {
	bodies []*CelestialBody
}

// NewRegistry wraps bodies in the given order
func NewRegistry(bodies []*CelestialBody) *Registry {
	return &Registry{bodies: bodies}
}

// Len returns the number of bodies
func (r *Registry) Len() int {
	return len(r.bodies)
}

// At returns body i, nil when out of range
func (r *Registry) At(i int) *CelestialBody {
	if i < 0 || i >= len(r.bodies) {
		return nil
	}
	return r.bodies[i]
}

// All returns the backing slice in registry order, callers must not reorder it
func (r *Registry) All() []*CelestialBody {
	return r.bodies
}

// SetSpeed writes body i's angular speed as-is
// Range is not checked; the slider clamps before calling
func (r *Registry) SetSpeed(i int, speed float64) bool {
	b := r.At(i)
	if b == nil {
		return false
	}
	b.AngularSpeed = speed
	return true
}

// ClearHighlight resets every body to the base emissive
func (r *Registry) ClearHighlight() {
	base := Hex(parameter.EmissiveBase)
	for _, b := range r.bodies {
		b.Emissive = base
	}
}

// Highlight clears all bodies then sets body i to full bright
// Out of range i leaves everything at base
func (r *Registry) Highlight(i int) {
	r.ClearHighlight()
	if b := r.At(i); b != nil {
		b.Emissive = Hex(parameter.EmissiveHighlight)
	}
}

// Highlighted returns the index of the highlighted body or -1
func (r *Registry) Highlighted() int {
	for i, b := range r.bodies {
		if b.Highlighted() {
			return i
		}
	}
	return -1
}

// Advance steps every body's orbit by one frame
func (r *Registry) Advance() {
	for _, b := range r.bodies {
		b.Advance()
	}
}
