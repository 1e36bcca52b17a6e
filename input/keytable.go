package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/game"
)

// KeyTable maps raw keys to game commands
type KeyTable struct {
	// Special keys (arrows, Enter, Ctrl+letter codes)
	SpecialKeys map[tcell.Key]game.Command

	// Special keys held with Ctrl
	CtrlKeys map[tcell.Key]game.Command

	// Plain rune bindings
	Runes map[rune]game.Command

	// Runes held with Ctrl, for terminals that report Ctrl+letter as a modified rune
	CtrlRunes map[rune]game.Command
}

// DefaultKeyTable returns arrow and vi-style bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]game.Command{
			tcell.KeyUp:    game.CommandMoveUp,
			tcell.KeyDown:  game.CommandMoveDown,
			tcell.KeyLeft:  game.CommandMoveLeft,
			tcell.KeyRight: game.CommandMoveRight,
			tcell.KeyEnter: game.CommandNewGame,
			tcell.KeyCtrlC: game.CommandQuit,
			// KeyCtrlH shares code 8 with KeyBackspace; terminals sending BS for Backspace trigger it
			tcell.KeyCtrlK: game.CommandMoveUpDouble,
			tcell.KeyCtrlJ: game.CommandMoveDownDouble,
			tcell.KeyCtrlH: game.CommandMoveLeftDouble,
			tcell.KeyCtrlL: game.CommandMoveRightDouble,
		},

		CtrlKeys: map[tcell.Key]game.Command{
			tcell.KeyUp:    game.CommandMoveUpDouble,
			tcell.KeyDown:  game.CommandMoveDownDouble,
			tcell.KeyLeft:  game.CommandMoveLeftDouble,
			tcell.KeyRight: game.CommandMoveRightDouble,
		},

		Runes: map[rune]game.Command{
			'k': game.CommandMoveUp,
			'j': game.CommandMoveDown,
			'h': game.CommandMoveLeft,
			'l': game.CommandMoveRight,
			' ': game.CommandTogglePause,
			'b': game.CommandBoost,
			'n': game.CommandNewGame,
			'q': game.CommandQuit,
		},

		CtrlRunes: map[rune]game.Command{
			'k': game.CommandMoveUpDouble,
			'j': game.CommandMoveDownDouble,
			'h': game.CommandMoveLeftDouble,
			'l': game.CommandMoveRightDouble,
			'c': game.CommandQuit,
		},
	}
}

// Translate maps a key, rune and modifier set to a command
// Unbound input yields CommandNone
func (t *KeyTable) Translate(key tcell.Key, r rune, mod tcell.ModMask) game.Command {
	ctrl := mod&tcell.ModCtrl != 0

	if key == tcell.KeyRune {
		table := t.Runes
		if ctrl {
			table = t.CtrlRunes
		}
		if cmd, ok := table[r]; ok {
			return cmd
		}
		return game.CommandNone
	}

	if ctrl {
		if cmd, ok := t.CtrlKeys[key]; ok {
			return cmd
		}
	}
	if cmd, ok := t.SpecialKeys[key]; ok {
		return cmd
	}
	return game.CommandNone
}

// TranslateEvent maps a tcell key event to a command
func (t *KeyTable) TranslateEvent(ev *tcell.EventKey) game.Command {
	return t.Translate(ev.Key(), ev.Rune(), ev.Modifiers())
}
