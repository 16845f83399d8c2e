package vmath

import "math"

// Ray is a half-line with a unit direction
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// NewRay normalizes dir
func NewRay(origin, dir Vec3F) Ray {
	return Ray{Origin: origin, Dir: V3FNormalize(dir)}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// RaySphere returns the distance to the nearest intersection in front of the ray origin
// Origin inside the sphere yields the exit distance
func RaySphere(r Ray, center Vec3F, radius float64) (float64, bool) {
	// |o + t·d - c|² = radius², d is unit length so a = 1
	oc := V3FSub(r.Origin, center)
	b := V3FDot(oc, r.Dir)
	c := V3FMagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
