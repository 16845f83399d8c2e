package scene

import (
	"math/rand"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Scene is everything submitted to the renderer once at startup
type Scene struct {
	Sun    Sun
	Light  PointLight
	Stars  *StarField
	Bodies *Registry

	// Rings[i] belongs to Bodies.At(i)
	Rings []OrbitRing
}

// Build creates one body and one orbit ring per descriptor, in order, plus the sun and star field
func Build(descs []Descriptor, src rand.Source) *Scene {
	bodies := make([]*CelestialBody, 0, len(descs))
	rings := make([]OrbitRing, 0, len(descs))
	for _, d := range descs {
		bodies = append(bodies, newBody(d))
		rings = append(rings, newOrbitRing(d.Distance))
	}

	return &Scene{
		Sun: Sun{
			Radius: parameter.SunRadius,
			Color:  Hex(parameter.SunColor),
		},
		Light: PointLight{
			Position:  vmath.Vec3F{},
			Intensity: parameter.LightIntensity,
			Distance:  parameter.LightDistance,
		},
		Stars:  NewStarField(parameter.StarCount, parameter.StarFieldExtent, rand.New(src)),
		Bodies: NewRegistry(bodies),
		Rings:  rings,
	}
}
