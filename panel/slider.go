package panel

import (
	"math"
	"strconv"
)

// Slider is a labeled range control bound to one registry index
type Slider struct {
	Index int
	Label string

	Min, Max, Step float64

	// Value is always on the step grid and within [Min, Max]
	Value float64
}

// Set clamps v to [Min, Max], snaps it to the nearest step from Min and returns the stored value
func (s *Slider) Set(v float64) float64 {
	if math.IsNaN(v) {
		v = s.Min
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if s.Step > 0 {
		steps := math.Round((v - s.Min) / s.Step)
		v = s.Min + steps*s.Step
		// Range not a whole number of steps: stay on the grid below Max
		if v > s.Max+s.Step*1e-6 {
			v -= s.Step
		}
	}
	// Round trip through text the way the control reports its value, dropping float noise below the step
	s.Value = v
	s.Value, _ = strconv.ParseFloat(s.String(), 64)
	return s.Value
}

// String formats the value with as many decimals as the step needs
func (s *Slider) String() string {
	return strconv.FormatFloat(s.Value, 'f', s.decimals(), 64)
}

// Fraction is the knob position in [0, 1]
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// ValueAt returns the unsnapped value at fraction f of the track
func (s *Slider) ValueAt(f float64) float64 {
	return s.Min + f*(s.Max-s.Min)
}

func (s *Slider) decimals() int {
	if s.Step <= 0 || s.Step >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(s.Step) - 1e-9))
}
