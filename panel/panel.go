package panel

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/scene"
)

// ChangeFunc observes a committed slider change
type ChangeFunc func(index int, speed float64)

// Panel holds one speed slider per registry body, in registry order
type Panel struct {
	Sliders []*Slider

	reg      *scene.Registry
	focus    int
	onChange ChangeFunc
}

// Build creates a slider for every body, seeded with the body's current speed
func Build(reg *scene.Registry) *Panel {
	p := &Panel{
		Sliders: make([]*Slider, 0, reg.Len()),
		reg:     reg,
	}
	for i, b := range reg.All() {
		s := &Slider{
			Index: i,
			Label: b.Name + parameter.SpeedLabelSuffix,
			Min:   parameter.SpeedMin,
			Max:   parameter.SpeedMax,
			Step:  parameter.SpeedStep,
		}
		s.Set(b.AngularSpeed)
		p.Sliders = append(p.Sliders, s)
	}
	return p
}

// OnChange registers an observer called after every committed change
func (p *Panel) OnChange(fn ChangeFunc) {
	p.onChange = fn
}

// Input is the input-change handler for slider i
// raw is the control's reported value; the slider applies its own min/max/step, then the
// result is written straight into the registry with no further checks
func (p *Panel) Input(i int, raw string) error {
	if i < 0 || i >= len(p.Sliders) {
		return errors.Errorf("slider %d out of range [0,%d)", i, len(p.Sliders))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "slider %d", i)
	}

	s := p.Sliders[i]
	s.Set(v)
	p.reg.SetSpeed(s.Index, s.Value)

	if p.onChange != nil {
		p.onChange(s.Index, s.Value)
	}
	return nil
}

// Nudge moves slider i by whole steps
func (p *Panel) Nudge(i, steps int) error {
	if i < 0 || i >= len(p.Sliders) {
		return errors.Errorf("slider %d out of range [0,%d)", i, len(p.Sliders))
	}
	s := p.Sliders[i]
	next := s.Value + float64(steps)*s.Step
	return p.Input(i, strconv.FormatFloat(next, 'f', -1, 64))
}

// Focus returns the keyboard-focused slider index
func (p *Panel) Focus() int {
	return p.focus
}

// FocusNext moves keyboard focus down, wrapping
func (p *Panel) FocusNext() {
	if len(p.Sliders) == 0 {
		return
	}
	p.focus = (p.focus + 1) % len(p.Sliders)
}

// FocusPrev moves keyboard focus up, wrapping
func (p *Panel) FocusPrev() {
	if len(p.Sliders) == 0 {
		return
	}
	p.focus = (p.focus - 1 + len(p.Sliders)) % len(p.Sliders)
}

// SetFocus focuses slider i if it exists
func (p *Panel) SetFocus(i int) {
	if i >= 0 && i < len(p.Sliders) {
		p.focus = i
	}
}
