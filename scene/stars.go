package scene

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

const twoPi = 2 * math.Pi

// StarField is a fixed cloud of background points with a shared, pulsing opacity
type StarField struct {
	Points  []vmath.Vec3F
	Size    float64
	Color   RGB
	Opacity float64
}

// NewStarField samples count points uniformly from a cube of edge extent centered on the origin
// rng is injected so tests can reproduce a field; production passes a time-seeded source
func NewStarField(count int, extent float64, rng *rand.Rand) *StarField {
	pts := make([]vmath.Vec3F, count)
	for i := range pts {
		pts[i] = vmath.Vec3F{
			X: (rng.Float64() - 0.5) * extent,
			Y: (rng.Float64() - 0.5) * extent,
			Z: (rng.Float64() - 0.5) * extent,
		}
	}
	return &StarField{
		Points:  pts,
		Size:    parameter.StarSize,
		Color:   Hex(parameter.StarColor),
		Opacity: 1.0,
	}
}

// PulseOpacity returns the star opacity at a wall clock instant in milliseconds
func PulseOpacity(millis int64) float64 {
	return parameter.StarOpacityBase + parameter.StarOpacityAmplitude*math.Sin(float64(millis)*parameter.StarPulseRate)
}
