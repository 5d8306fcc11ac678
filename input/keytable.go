package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, editing keys)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings: arrows and hjkl steer
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyCtrlQ:      IntentQuit,
			tcell.KeyEscape:     IntentCancel,
			tcell.KeyUp:         IntentUp,
			tcell.KeyDown:       IntentDown,
			tcell.KeyLeft:       IntentLeft,
			tcell.KeyRight:      IntentRight,
			tcell.KeyEnter:      IntentTextConfirm,
			tcell.KeyBackspace:  IntentTextBackspace,
			tcell.KeyBackspace2: IntentTextBackspace,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			'k': IntentUp,
			'j': IntentDown,
			'h': IntentLeft,
			'l': IntentRight,
		},
	}
}

// Translate converts a tcell event into an intent
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.translateKey(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return None
}

func (kt *KeyTable) translateKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if !unicode.IsPrint(r) {
			return Intent{Type: IntentOther}
		}
		if it, ok := kt.Runes[r]; ok {
			return Intent{Type: it, Rune: r}
		}
		return Intent{Type: IntentOther, Rune: r}
	}

	if it, ok := kt.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: it}
	}
	return Intent{Type: IntentOther}
}
