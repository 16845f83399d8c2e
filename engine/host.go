package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/metrics"
	"github.com/lixenwraith/orrery/panel"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/scene"
)

// Sound plays hover feedback; audio.SoundManager satisfies it
type Sound interface {
	PlayHover(index int)
	SetMuted(muted bool)
	Muted() bool
	Enabled() bool
}

type silentSound struct{ muted bool }

func (s *silentSound) PlayHover(int)       {}
func (s *silentSound) SetMuted(muted bool) { s.muted = muted }
func (s *silentSound) Muted() bool         { return s.muted }
func (s *silentSound) Enabled() bool       { return false }

// Config wires a Host; Screen and Scene are required
type Config struct {
	Screen  tcell.Screen
	Scene   *scene.Scene
	Clock   TimeProvider
	Sound   Sound
	Metrics *metrics.Collector
	FPS     int
}

// Host owns the scene, camera, controls and render loop
//
// Frame callbacks, pointer moves and slider inputs all run on the goroutine that calls Run,
// so the scene is never touched concurrently. The only other goroutine forwards terminal
// events into the loop without reading scene state.
type Host struct {
	Scene  *scene.Scene
	Camera *camera.Camera
	Panel  *panel.Panel
	Picker *input.Picker

	// RotationEnabled gates planet advancement; the camera and stars keep moving regardless
	RotationEnabled bool

	screen   tcell.Screen
	clock    TimeProvider
	sound    Sound
	metrics  *metrics.Collector
	interval time.Duration

	buf         *render.RenderBuffer
	sceneView   *render.SceneRenderer
	panelView   *render.PanelRenderer
	vp          camera.Viewport
	layout      panel.Layout
	statusRow   int
	screenWidth int

	hovered int
	frames  int64
	started bool
}

// NewHost builds the controls for cfg.Scene and sizes everything to the screen
func NewHost(cfg Config) (*Host, error) {
	if cfg.Screen == nil {
		return nil, errors.New("host: nil screen")
	}
	if cfg.Scene == nil || cfg.Scene.Bodies == nil || cfg.Scene.Stars == nil {
		return nil, errors.New("host: incomplete scene")
	}

	fps := cfg.FPS
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	fps = min(fps, parameter.MaxFPS)

	h := &Host{
		Scene:           cfg.Scene,
		Camera:          camera.New(1),
		Panel:           panel.Build(cfg.Scene.Bodies),
		RotationEnabled: parameter.RotationEnabledDefault,
		screen:          cfg.Screen,
		clock:           cfg.Clock,
		sound:           cfg.Sound,
		metrics:         cfg.Metrics,
		interval:        time.Second / time.Duration(fps),
		buf:             render.NewRenderBuffer(0, 0),
		panelView:       render.NewPanelRenderer(),
		hovered:         -1,
	}
	if h.clock == nil {
		h.clock = NewMonotonicTimeProvider()
	}
	if h.sound == nil {
		h.sound = &silentSound{}
	}
	h.Picker = input.NewPicker(h.Camera, h.Scene.Bodies)
	h.sceneView = render.NewSceneRenderer(h.Camera)

	h.Panel.OnChange(func(index int, speed float64) {
		if h.metrics != nil {
			h.metrics.RecordSpeed(h.Scene.Bodies.At(index).Name, speed)
		}
	})
	if h.metrics != nil {
		for _, b := range h.Scene.Bodies.All() {
			h.metrics.SetSpeed(b.Name, b.AngularSpeed)
		}
	}

	h.Scene.Stars.Opacity = scene.PulseOpacity(h.clock.Now().UnixMilli())
	h.resize()
	return h, nil
}

// Interval is the time between frame callbacks
func (h *Host) Interval() time.Duration {
	return h.interval
}

// Frames returns the number of frame callbacks run
func (h *Host) Frames() int64 {
	return h.frames
}

// Hovered returns the highlighted planet index or -1
func (h *Host) Hovered() int {
	return h.hovered
}

// Viewport returns the scene rectangle
func (h *Host) Viewport() camera.Viewport {
	return h.vp
}

// Layout returns the slider panel rectangle; Width is 0 when the panel is hidden
func (h *Host) Layout() panel.Layout {
	return h.layout
}

// Buffer returns the composed frame
func (h *Host) Buffer() *render.RenderBuffer {
	return h.buf
}

// Step is the per-frame update: planets when rotation is on, then camera and star pulse
func (h *Host) Step() {
	if h.RotationEnabled {
		h.Scene.Bodies.Advance()
	}
	h.Camera.Orbit()
	h.Scene.Stars.Opacity = scene.PulseOpacity(h.clock.Now().UnixMilli())
	h.frames++
}

// Frame runs one update and redraws the screen
func (h *Host) Frame() {
	start := time.Now()
	h.Step()
	h.Draw()
	if h.metrics != nil {
		h.metrics.RecordFrame(time.Since(start), h.RotationEnabled, h.Camera.Angle, h.Scene.Stars.Opacity)
	}
}

// Draw composes scene, panel and status bar, then flushes to the screen
func (h *Host) Draw() {
	h.buf.Clear()
	h.sceneView.Render(h.buf, h.Scene)
	h.panelView.Render(h.buf, h.Panel, h.Scene.Bodies)

	st := render.Status{
		RotationEnabled: h.RotationEnabled,
		Sound:           h.sound.Enabled(),
	}
	if b := h.Scene.Bodies.At(h.hovered); b != nil {
		st.Hovered = b.Name
	}
	// A focused slider that does not fit the panel is shown on the status line
	if f := h.Panel.Focus(); h.layout.Width > 0 && f >= h.layout.Visible(len(h.Panel.Sliders)) {
		s := h.Panel.Sliders[f]
		st.Focused = s.Label + s.String()
	}
	render.RenderStatusBar(h.buf, h.statusRow, h.screenWidth, st)

	h.buf.FlushToScreen(h.screen)
}

// HandleEvent applies one terminal event, returning true when the host should stop
func (h *Host) HandleEvent(ev tcell.Event) bool {
	it := input.Translate(ev)
	switch it.Type {
	case input.IntentQuit:
		return true

	case input.IntentResize:
		h.resize()
		h.screen.Sync()

	case input.IntentToggleRotation:
		h.RotationEnabled = !h.RotationEnabled

	case input.IntentToggleMute:
		h.sound.SetMuted(!h.sound.Muted())

	case input.IntentFocusNext:
		h.Panel.FocusNext()

	case input.IntentFocusPrev:
		h.Panel.FocusPrev()

	case input.IntentSpeedUp:
		h.nudge(1)

	case input.IntentSpeedDown:
		h.nudge(-1)

	case input.IntentPointerDrag:
		if i, raw, ok := h.layout.Hit(h.Panel, it.Col, it.Row); ok && h.layout.Width > 0 {
			h.Panel.SetFocus(i)
			if err := h.Panel.Input(i, raw); err != nil {
				log.Printf("slider input: %v", err)
			}
		}
		h.pointerMove(it.Col, it.Row)

	case input.IntentPointerMove:
		h.pointerMove(it.Col, it.Row)
	}
	return false
}

func (h *Host) nudge(steps int) {
	if err := h.Panel.Nudge(h.Panel.Focus(), steps); err != nil {
		log.Printf("slider nudge: %v", err)
	}
}

// pointerMove re-picks under the pointer; outside the scene every highlight is dropped
func (h *Host) pointerMove(col, row int) {
	if h.metrics != nil {
		h.metrics.RecordPointer()
	}

	idx := -1
	if h.vp.Contains(col, row) {
		idx = h.Picker.PointerMove(h.vp.ToNDC(col, row))
	} else {
		h.Picker.PointerLeave()
	}

	if idx == h.hovered {
		return
	}
	h.hovered = idx
	if idx < 0 {
		return
	}
	h.sound.PlayHover(idx)
	if h.metrics != nil {
		h.metrics.RecordHighlight(h.Scene.Bodies.At(idx).Name)
	}
}

// resize lays out scene, panel and status bar for the current screen size
// The panel is dropped when it would leave the scene too narrow
func (h *Host) resize() {
	w, ht := h.screen.Size()
	h.screenWidth = w
	h.buf.Resize(w, ht)

	panelW := parameter.PanelWidth
	if w-panelW < parameter.MinSceneWidth {
		panelW = 0
	}
	sceneH := max(ht-parameter.BottomMargin, 0)

	h.vp = camera.Viewport{Width: w - panelW, Height: sceneH}
	h.layout = panel.Layout{}
	if panelW > 0 {
		h.layout = panel.Fit(w-panelW+1, panelW-1, sceneH, len(h.Panel.Sliders))
	}
	h.statusRow = ht - 1

	h.Camera.Aspect = h.vp.Aspect()
	h.Picker.SetViewport(h.vp)
	h.sceneView.SetViewport(h.vp)
	h.panelView.SetLayout(h.layout)
}

// Run drives frames from a ticker and events from the screen until quit or ctx is done
// The event forwarder lives until the screen is finalized, so Run may be called only once per Host
func (h *Host) Run(ctx context.Context) error {
	if h.started {
		return errors.New("host: Run called twice")
	}
	h.started = true

	events := make(chan tcell.Event, parameter.EventQueueSize)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		// Panic recovery for the poller so the terminal is restored
		defer func() {
			if r := recover(); r != nil {
				h.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if h.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.Frame()
		}
	}
}
