package parameter

// Star field
const (
	// StarCount is the number of background points
	StarCount = 1000

	// StarFieldExtent is the edge length of the cube stars are sampled from, centered on origin
	StarFieldExtent = 200.0

	// StarSize is the world-space point size
	StarSize = 0.3

	StarColor = 0xffffff
)

// Sun
const (
	SunRadius = 5.0
	SunColor  = 0xffff00
)

// Point light at the sun
const (
	LightIntensity = 2.0
	LightDistance  = 100.0
)

// Planets
const (
	// EmissiveBase is the resting emissive color of every planet
	EmissiveBase = 0x111111

	// EmissiveHighlight is applied to the hovered planet
	EmissiveHighlight = 0xffffff
)

// Orbit rings
const (
	// OrbitRingHalfWidth is subtracted from/added to the orbit radius for the ring's inner/outer edge
	OrbitRingHalfWidth = 0.1

	OrbitRingSegments = 64
	OrbitRingColor    = 0xffffff
)
