package input

import "github.com/lixenwraith/wurm/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C, Ctrl+Q
	IntentCancel // ESC (quit while playing, abort in prompts)
	IntentPause  // p
	IntentResize // Terminal resize event

	// Steering
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Text entry
	IntentTextBackspace
	IntentTextConfirm

	// Any other key; carries its rune when printable
	IntentOther
)

// Intent is a translated input event
type Intent struct {
	Type IntentType
	Rune rune // Printable rune behind the key, 0 for special keys
}

// None is the absence of input for a tick
var None = Intent{Type: IntentNone}

// Direction returns the steering direction for directional intents
func (i Intent) Direction() (core.Direction, bool) {
	switch i.Type {
	case IntentUp:
		return core.Up, true
	case IntentDown:
		return core.Down, true
	case IntentLeft:
		return core.Left, true
	case IntentRight:
		return core.Right, true
	}
	return core.Direction{}, false
}

// IsKey reports whether the intent came from a key press
func (i Intent) IsKey() bool {
	return i.Type != IntentNone && i.Type != IntentResize
}
