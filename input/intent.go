package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Scene
	IntentToggleRotation // Space

	// Panel keyboard
	IntentFocusNext // Tab, Down
	IntentFocusPrev // Shift+Tab, Up
	IntentSpeedUp   // Right, l, +
	IntentSpeedDown // Left, h, -

	// Mouse
	IntentPointerMove // Motion with no button held
	IntentPointerDrag // Button 1 held, panel sliders only
)

// Intent is a translated terminal event
type Intent struct {
	Type IntentType

	// Col, Row are the pointer cell for mouse intents
	Col, Row int
}

// Translate maps a tcell event to an intent
func Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)

	case *tcell.EventMouse:
		col, row := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			return Intent{Type: IntentPointerDrag, Col: col, Row: row}
		}
		return Intent{Type: IntentPointerMove, Col: col, Row: row}

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{Type: IntentNone}
}

func translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyTab, tcell.KeyDown:
		return Intent{Type: IntentFocusNext}
	case tcell.KeyBacktab, tcell.KeyUp:
		return Intent{Type: IntentFocusPrev}
	case tcell.KeyRight:
		return Intent{Type: IntentSpeedUp}
	case tcell.KeyLeft:
		return Intent{Type: IntentSpeedDown}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return Intent{Type: IntentQuit}
		case ' ':
			return Intent{Type: IntentToggleRotation}
		case 'm':
			return Intent{Type: IntentToggleMute}
		case 'l', '+':
			return Intent{Type: IntentSpeedUp}
		case 'h', '-':
			return Intent{Type: IntentSpeedDown}
		case 'j':
			return Intent{Type: IntentFocusNext}
		case 'k':
			return Intent{Type: IntentFocusPrev}
		}
	}
	return Intent{Type: IntentNone}
}
