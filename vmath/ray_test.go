package vmath

import (
	"math"
	"testing"
)

func TestRaySphere(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		center Vec3F
		radius float64
		want   float64
		hit    bool
	}{
		{"Head on", NewRay(Vec3F{0, 0, -10}, Vec3F{0, 0, 1}), Vec3F{}, 2, 8, true},
		{"Miss sideways", NewRay(Vec3F{5, 0, -10}, Vec3F{0, 0, 1}), Vec3F{}, 2, 0, false},
		{"Behind origin", NewRay(Vec3F{0, 0, 10}, Vec3F{0, 0, 1}), Vec3F{}, 2, 0, false},
		{"Inside sphere", NewRay(Vec3F{}, Vec3F{1, 0, 0}), Vec3F{}, 3, 3, true},
		{"Unnormalized dir", NewRay(Vec3F{0, -20, 0}, Vec3F{0, 7, 0}), Vec3F{0, 5, 0}, 1, 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := RaySphere(tt.ray, tt.center, tt.radius)
			if hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, hit)
			}
			if hit && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected distance %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCirclePoint(t *testing.T) {
	p := CirclePoint(10, math.Pi/2)
	if math.Abs(p.X) > 1e-9 || p.Y != 0 || math.Abs(p.Z-10) > 1e-9 {
		t.Errorf("Expected (0,0,10), got %+v", p)
	}
}

func TestCross(t *testing.T) {
	z := V3FCross(Vec3F{1, 0, 0}, Vec3F{0, 1, 0})
	if z != (Vec3F{0, 0, 1}) {
		t.Errorf("Expected +Z, got %+v", z)
	}
}
