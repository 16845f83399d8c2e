package scene

// DefaultPlanets returns the reference configuration, innermost first
func DefaultPlanets() []Descriptor {
	return []Descriptor{
		{Name: "Mercury", Color: 0xaaaaaa, Distance: 10, Size: 0.5, Speed: 0.04},
		{Name: "Venus", Color: 0xffcc00, Distance: 15, Size: 0.9, Speed: 0.03},
		{Name: "Earth", Color: 0x0000ff, Distance: 20, Size: 1, Speed: 0.02},
		{Name: "Mars", Color: 0xff0000, Distance: 25, Size: 0.7, Speed: 0.018},
		{Name: "Jupiter", Color: 0xffa500, Distance: 35, Size: 2, Speed: 0.01},
		{Name: "Saturn", Color: 0xffff00, Distance: 45, Size: 1.7, Speed: 0.008},
		{Name: "Uranus", Color: 0x00ffff, Distance: 55, Size: 1.5, Speed: 0.006},
		{Name: "Neptune", Color: 0x0000ff, Distance: 65, Size: 1.4, Speed: 0.005},
	}
}
