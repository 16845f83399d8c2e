package camera

import (
	"math"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

var worldUp = vmath.Vec3F{X: 0, Y: 1, Z: 0}

// Camera is a perspective camera orbiting the origin on an ellipse in the plane y = CameraHeight
type Camera struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F

	// FOV is the vertical field of view in degrees
	FOV    float64
	Aspect float64
	Near   float64
	Far    float64

	// Angle is the orbit parameter, advanced once per frame
	Angle float64

	right, up, forward vmath.Vec3F
}

// New creates a camera at the start position looking at the origin
func New(aspect float64) *Camera {
	c := &Camera{
		Position: vmath.Vec3F{X: parameter.CameraStart[0], Y: parameter.CameraStart[1], Z: parameter.CameraStart[2]},
		FOV:      parameter.CameraFOV,
		Aspect:   aspect,
		Near:     parameter.CameraNear,
		Far:      parameter.CameraFar,
	}
	c.LookAt(vmath.Vec3F{})
	return c
}

// Orbit advances the orbit angle by one step, moves the camera to the new angle and re-aims at the origin
func (c *Camera) Orbit() {
	c.Angle += parameter.CameraAngleStep
	c.Position = vmath.Vec3F{
		X: parameter.CameraRadiusX * math.Cos(c.Angle),
		Y: parameter.CameraHeight,
		Z: parameter.CameraRadiusZ * math.Sin(c.Angle),
	}
	c.LookAt(vmath.Vec3F{})
}

// LookAt aims the camera at target and rebuilds its basis
func (c *Camera) LookAt(target vmath.Vec3F) {
	c.Target = target
	c.forward = vmath.V3FNormalize(vmath.V3FSub(target, c.Position))
	c.right = vmath.V3FNormalize(vmath.V3FCross(c.forward, worldUp))
	if vmath.V3FMagSq(c.right) == 0 {
		// Looking straight up or down
		c.right = vmath.Vec3F{X: 1}
	}
	c.up = vmath.V3FCross(c.right, c.forward)
}

// Basis returns the camera's right, up and forward unit vectors
func (c *Camera) Basis() (right, up, forward vmath.Vec3F) {
	return c.right, c.up, c.forward
}

func (c *Camera) tanHalfFOV() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

// Ray returns the ray from the camera through a point in normalized device coordinates
func (c *Camera) Ray(ndcX, ndcY float64) vmath.Ray {
	th := c.tanHalfFOV()
	dir := vmath.V3FAdd(
		vmath.V3FAdd(
			vmath.V3FScale(c.right, ndcX*th*c.Aspect),
			vmath.V3FScale(c.up, ndcY*th),
		),
		c.forward,
	)
	return vmath.NewRay(c.Position, dir)
}

// Project maps a world point to normalized device coordinates
// depth is the distance along the view axis; ok is false outside the near/far range
func (c *Camera) Project(p vmath.Vec3F) (ndcX, ndcY, depth float64, ok bool) {
	v := vmath.V3FSub(p, c.Position)
	depth = vmath.V3FDot(v, c.forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	th := c.tanHalfFOV()
	ndcX = vmath.V3FDot(v, c.right) / (depth * th * c.Aspect)
	ndcY = vmath.V3FDot(v, c.up) / (depth * th)
	return ndcX, ndcY, depth, true
}

// ProjectedRadius returns the apparent vertical radius in NDC units of a sphere at the given depth
func (c *Camera) ProjectedRadius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * c.tanHalfFOV())
}
