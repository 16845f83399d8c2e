package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "orrery"

// Collector holds the session counters on a private registry
// Nothing is served; Summary renders the values for the log at exit
type Collector struct {
	registry *prometheus.Registry

	frames           prometheus.Counter
	frameDuration    prometheus.Histogram
	pointerEvents    prometheus.Counter
	highlightChanges *prometheus.CounterVec
	sliderChanges    *prometheus.CounterVec
	rotationEnabled  prometheus.Gauge
	cameraAngle      prometheus.Gauge
	starOpacity      prometheus.Gauge
	planetSpeed      *prometheus.GaugeVec
}

// NewCollector creates and registers every metric
func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Frame callbacks run",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Time spent updating and drawing one frame",
			Buckets:   []float64{.001, .002, .004, .008, .016, .033, .066},
		}),
		pointerEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pointer_events_total",
			Help:      "Pointer move events handled",
		}),
		highlightChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "highlight_changes_total",
			Help:      "Times a planet became the highlighted one",
		}, []string{"planet"}),
		sliderChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slider_changes_total",
			Help:      "Accepted speed slider inputs",
		}, []string{"planet"}),
		rotationEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rotation_enabled",
			Help:      "1 while planets advance each frame",
		}),
		cameraAngle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "camera_angle_radians",
			Help:      "Camera orbit parameter",
		}),
		starOpacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "star_opacity",
			Help:      "Current star field opacity",
		}),
		planetSpeed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "planet_speed_radians",
			Help:      "Angular speed per frame",
		}, []string{"planet"}),
	}

	m.registry.MustRegister(
		m.frames,
		m.frameDuration,
		m.pointerEvents,
		m.highlightChanges,
		m.sliderChanges,
		m.rotationEnabled,
		m.cameraAngle,
		m.starOpacity,
		m.planetSpeed,
	)
	return m
}

// Registry exposes the private registry for tests and exporters
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}

// RecordFrame records one frame and the state it left behind
func (m *Collector) RecordFrame(d time.Duration, rotation bool, cameraAngle, opacity float64) {
	m.frames.Inc()
	m.frameDuration.Observe(d.Seconds())
	if rotation {
		m.rotationEnabled.Set(1)
	} else {
		m.rotationEnabled.Set(0)
	}
	m.cameraAngle.Set(cameraAngle)
	m.starOpacity.Set(opacity)
}

// RecordPointer counts a pointer move
func (m *Collector) RecordPointer() {
	m.pointerEvents.Inc()
}

// RecordHighlight counts a new highlighted planet
func (m *Collector) RecordHighlight(planet string) {
	m.highlightChanges.WithLabelValues(planet).Inc()
}

// RecordSpeed counts a slider input and tracks the resulting speed
func (m *Collector) RecordSpeed(planet string, speed float64) {
	m.sliderChanges.WithLabelValues(planet).Inc()
	m.planetSpeed.WithLabelValues(planet).Set(speed)
}

// SetSpeed tracks a planet speed without counting an input
func (m *Collector) SetSpeed(planet string, speed float64) {
	m.planetSpeed.WithLabelValues(planet).Set(speed)
}

// Summary renders every sample as "name{labels} value", one per line, sorted
func (m *Collector) Summary() (string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return "", errors.Wrap(err, "gather metrics")
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			lines = append(lines, mf.GetName()+labels(metric)+" "+value(mf.GetType(), metric))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}

func labels(m *dto.Metric) string {
	pairs := m.GetLabel()
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func value(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%g", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "?"
	}
}
