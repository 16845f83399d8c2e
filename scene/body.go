package scene

import (
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Descriptor is one row of the planet configuration table
type Descriptor struct {
	Name     string
	Color    uint32
	Distance float64
	Size     float64
	Speed    float64
}

// CelestialBody is a planet on a circular orbit around the origin
type CelestialBody struct {
	Name        string
	Color       RGB
	OrbitRadius float64
	Size        float64

	// AngularSpeed is radians added to Angle per frame callback
	// Slider writes keep it within [SpeedMin, SpeedMax]; programmatic writes are not checked
	AngularSpeed float64

	// Angle is unbounded, sin/cos wrap it implicitly
	Angle float64

	Position vmath.Vec3F

	// Emissive is the material's emissive color, base or highlight
	Emissive RGB
}

func newBody(d Descriptor) *CelestialBody {
	b := &CelestialBody{
		Name:         d.Name,
		Color:        Hex(d.Color),
		OrbitRadius:  d.Distance,
		Size:         d.Size,
		AngularSpeed: d.Speed,
		Emissive:     Hex(parameter.EmissiveBase),
	}
	b.Position = vmath.CirclePoint(b.OrbitRadius, b.Angle)
	return b
}

// Advance steps the orbit by one frame: angle += speed, then recomputes position
func (b *CelestialBody) Advance() {
	b.Angle += b.AngularSpeed
	b.Position = vmath.CirclePoint(b.OrbitRadius, b.Angle)
}

// Highlighted reports whether the body carries the highlight emissive
func (b *CelestialBody) Highlighted() bool {
	return b.Emissive == Hex(parameter.EmissiveHighlight)
}

// OrbitRing is the flat ring drawn along a body's orbit, immutable after creation
type OrbitRing struct {
	Radius   float64
	Inner    float64
	Outer    float64
	Segments int
	Color    RGB
}

func newOrbitRing(radius float64) OrbitRing {
	return OrbitRing{
		Radius:   radius,
		Inner:    radius - parameter.OrbitRingHalfWidth,
		Outer:    radius + parameter.OrbitRingHalfWidth,
		Segments: parameter.OrbitRingSegments,
		Color:    Hex(parameter.OrbitRingColor),
	}
}

// Points returns Segments+1 points along the ring centerline, closing the loop
func (r OrbitRing) Points() []vmath.Vec3F {
	pts := make([]vmath.Vec3F, r.Segments+1)
	for i := 0; i <= r.Segments; i++ {
		pts[i] = vmath.CirclePoint(r.Radius, twoPi*float64(i)/float64(r.Segments))
	}
	return pts
}

// Sun is the unlit central body
type Sun struct {
	Radius float64
	Color  RGB
}

// PointLight sits at the origin and lights the planets
type PointLight struct {
	Position  vmath.Vec3F
	Intensity float64
	Distance  float64
}
