package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/orrery/parameter"
)

const epsilon = 1e-9

func TestBuildPopulatesRegistryInOrder(t *testing.T) {
	descs := DefaultPlanets()
	s := Build(descs, rand.NewSource(1))

	if s.Bodies.Len() != len(descs) {
		t.Fatalf("Expected %d bodies, got %d", len(descs), s.Bodies.Len())
	}
	if len(s.Rings) != len(descs) {
		t.Fatalf("Expected %d rings, got %d", len(descs), len(s.Rings))
	}

	for i, d := range descs {
		b := s.Bodies.At(i)
		if b.Name != d.Name {
			t.Errorf("Body %d: expected %s, got %s", i, d.Name, b.Name)
		}
		if b.OrbitRadius != d.Distance || b.Size != d.Size || b.AngularSpeed != d.Speed {
			t.Errorf("Body %d: fields not copied from descriptor: %+v", i, b)
		}
		if b.Color != Hex(d.Color) {
			t.Errorf("Body %d: expected color %06x, got %06x", i, d.Color, b.Color.Uint32())
		}
		if b.Angle != 0 {
			t.Errorf("Body %d: expected initial angle 0, got %v", i, b.Angle)
		}
		if b.Highlighted() {
			t.Errorf("Body %d: should start unhighlighted", i)
		}
		r := s.Rings[i]
		if r.Radius != d.Distance || math.Abs(r.Inner-(d.Distance-0.1)) > epsilon || math.Abs(r.Outer-(d.Distance+0.1)) > epsilon {
			t.Errorf("Ring %d: unexpected bounds %+v", i, r)
		}
	}

	if s.Sun.Radius != parameter.SunRadius || s.Sun.Color != Hex(0xffff00) {
		t.Errorf("Unexpected sun %+v", s.Sun)
	}
}

func TestStarFieldWithinCube(t *testing.T) {
	s := Build(DefaultPlanets(), rand.NewSource(42))

	if len(s.Stars.Points) != parameter.StarCount {
		t.Fatalf("Expected %d stars, got %d", parameter.StarCount, len(s.Stars.Points))
	}
	half := parameter.StarFieldExtent / 2
	for i, p := range s.Stars.Points {
		if p.X < -half || p.X >= half || p.Y < -half || p.Y >= half || p.Z < -half || p.Z >= half {
			t.Fatalf("Star %d outside cube: %+v", i, p)
		}
	}
}

func TestStarFieldInjectableSource(t *testing.T) {
	a := Build(DefaultPlanets(), rand.NewSource(7)).Stars.Points
	b := Build(DefaultPlanets(), rand.NewSource(7)).Stars.Points
	c := Build(DefaultPlanets(), rand.NewSource(8)).Stars.Points

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same source produced different star %d", i)
		}
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different sources produced identical fields")
	}
}

func TestAdvanceCircularMotion(t *testing.T) {
	b := newBody(Descriptor{Name: "Test", Distance: 20, Size: 1, Speed: 0.02})

	const frames = 500
	for n := 0; n < frames; n++ {
		b.Advance()
	}

	wantAngle := frames * 0.02
	if math.Abs(b.Angle-wantAngle) > 1e-9 {
		t.Errorf("Expected angle %v, got %v", wantAngle, b.Angle)
	}
	if math.Abs(b.Position.X-20*math.Cos(b.Angle)) > epsilon ||
		b.Position.Y != 0 ||
		math.Abs(b.Position.Z-20*math.Sin(b.Angle)) > epsilon {
		t.Errorf("Position off circle: %+v", b.Position)
	}
}

func TestRegistrySetSpeedDoesNotClamp(t *testing.T) {
	reg := Build(DefaultPlanets(), rand.NewSource(1)).Bodies

	if !reg.SetSpeed(2, 0.5) {
		t.Fatal("SetSpeed rejected a valid index")
	}
	if reg.At(2).AngularSpeed != 0.5 {
		t.Errorf("Expected unclamped 0.5, got %v", reg.At(2).AngularSpeed)
	}
	if reg.SetSpeed(8, 0.01) || reg.SetSpeed(-1, 0.01) {
		t.Error("SetSpeed accepted an out of range index")
	}
}

func TestRegistryHighlightExclusive(t *testing.T) {
	reg := Build(DefaultPlanets(), rand.NewSource(1)).Bodies

	reg.Highlight(3)
	reg.Highlight(5)

	if got := reg.Highlighted(); got != 5 {
		t.Fatalf("Expected body 5 highlighted, got %d", got)
	}
	count := 0
	for _, b := range reg.All() {
		if b.Highlighted() {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one highlighted body, got %d", count)
	}

	reg.Highlight(-1)
	if got := reg.Highlighted(); got != -1 {
		t.Errorf("Expected no highlight, got %d", got)
	}
}

func TestPulseOpacity(t *testing.T) {
	tests := []struct {
		millis int64
		want   float64
	}{
		{0, 0.5},
		{1571, 0.5 + 0.5*math.Sin(1.571)},
		{4712, 0.5 + 0.5*math.Sin(4.712)},
	}
	for _, tt := range tests {
		if got := PulseOpacity(tt.millis); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PulseOpacity(%d): expected %v, got %v", tt.millis, tt.want, got)
		}
	}

	// Wall clock scale inputs stay within [0, 1]
	for _, ms := range []int64{1_700_000_000_000, 1_700_000_000_123, 1_800_000_004_712} {
		got := PulseOpacity(ms)
		if got < 0 || got > 1 {
			t.Errorf("PulseOpacity(%d) out of range: %v", ms, got)
		}
		want := 0.5 + 0.5*math.Sin(float64(ms)*0.001)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("PulseOpacity(%d): expected %v, got %v", ms, want, got)
		}
	}
}

func TestOrbitRingPointsClosed(t *testing.T) {
	r := newOrbitRing(10)
	pts := r.Points()
	if len(pts) != r.Segments+1 {
		t.Fatalf("Expected %d points, got %d", r.Segments+1, len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first.X-last.X) > epsilon || math.Abs(first.Z-last.Z) > epsilon {
		t.Errorf("Ring not closed: %+v vs %+v", first, last)
	}
}
