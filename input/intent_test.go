package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"Quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"Ctrl+C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"Space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentToggleRotation},
		{"Tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), IntentFocusNext},
		{"Backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), IntentFocusPrev},
		{"Right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentSpeedUp},
		{"Left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentSpeedDown},
		{"Mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"Unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.ev).Type; got != tt.want {
				t.Errorf("Expected intent %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	move := Translate(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone))
	if move.Type != IntentPointerMove || move.Col != 12 || move.Row != 7 {
		t.Errorf("Unexpected move intent %+v", move)
	}

	drag := Translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	if drag.Type != IntentPointerDrag || drag.Col != 3 || drag.Row != 4 {
		t.Errorf("Unexpected drag intent %+v", drag)
	}
}
