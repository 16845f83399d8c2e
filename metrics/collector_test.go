package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordFrame(t *testing.T) {
	m := NewCollector()

	m.RecordFrame(2*time.Millisecond, true, 0.001, 0.75)
	m.RecordFrame(3*time.Millisecond, false, 0.002, 0.5)

	if got := testutil.ToFloat64(m.frames); got != 2 {
		t.Errorf("frames: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rotationEnabled); got != 0 {
		t.Errorf("rotation gauge: got %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.cameraAngle); got != 0.002 {
		t.Errorf("camera angle: got %v, want 0.002", got)
	}
	if got := testutil.ToFloat64(m.starOpacity); got != 0.5 {
		t.Errorf("opacity: got %v, want 0.5", got)
	}
}

func TestPerPlanetCounters(t *testing.T) {
	m := NewCollector()

	m.RecordHighlight("Mars")
	m.RecordHighlight("Mars")
	m.RecordHighlight("Venus")
	m.RecordSpeed("Earth", 0.03)
	m.SetSpeed("Mercury", 0.02)

	if got := testutil.ToFloat64(m.highlightChanges.WithLabelValues("Mars")); got != 2 {
		t.Errorf("Mars highlights: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.sliderChanges.WithLabelValues("Earth")); got != 1 {
		t.Errorf("Earth slider changes: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.planetSpeed.WithLabelValues("Mercury")); got != 0.02 {
		t.Errorf("Mercury speed: got %v, want 0.02", got)
	}
	if got := testutil.CollectAndCount(m.sliderChanges); got != 1 {
		t.Errorf("SetSpeed must not count as an input, got %d series", got)
	}
}

func TestSummary(t *testing.T) {
	m := NewCollector()
	m.RecordPointer()
	m.RecordSpeed("Earth", 0.03)

	out, err := m.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	for _, want := range []string{
		"orrery_pointer_events_total 1",
		`orrery_planet_speed_radians{planet="Earth"} 0.03`,
		"orrery_frame_duration_seconds count=0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
}
