package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/cellwars/game"
	"github.com/pthm-cable/cellwars/systems"
)

// fieldKeys maps editing keys to speed field operations.
var fieldKeys = map[tcell.Key]systems.EditOp{
	tcell.KeyBackspace:  systems.EditBackspace,
	tcell.KeyBackspace2: systems.EditBackspace,
	tcell.KeyDelete:     systems.EditDelete,
	tcell.KeyLeft:       systems.EditLeft,
	tcell.KeyRight:      systems.EditRight,
	tcell.KeyHome:       systems.EditHome,
	tcell.KeyEnd:        systems.EditEnd,
	tcell.KeyCtrlA:      systems.EditHome,
	tcell.KeyCtrlE:      systems.EditEnd,
}

// keymap turns key presses into game input. While the speed field has
// focus, printable keys edit it instead of acting as shortcuts.
type keymap struct {
	focused bool
}

func (k *keymap) apply(in *game.Input, key tcell.Key, r rune) {
	if key == tcell.KeyCtrlC {
		in.Quit = true
		return
	}
	if key == tcell.KeyTab {
		k.focused = !k.focused
		return
	}

	if k.focused {
		switch key {
		case tcell.KeyEnter:
			in.SpeedEdits = append(in.SpeedEdits, systems.TextEdit{Op: systems.EditCommit})
			k.focused = false
		case tcell.KeyEscape:
			k.focused = false
		case tcell.KeyRune:
			in.SpeedEdits = append(in.SpeedEdits, systems.TextEdit{Op: systems.EditInsert, Rune: r})
		default:
			if op, ok := fieldKeys[key]; ok {
				in.SpeedEdits = append(in.SpeedEdits, systems.TextEdit{Op: op})
			}
		}
		return
	}

	if key != tcell.KeyRune {
		return
	}
	switch r {
	case 'q', 'Q':
		in.Quit = true
	case 'r', 'R':
		in.Restart = true
	case 'p', 'P', ' ':
		in.TogglePause = true
	case 's', 'S':
		k.focused = true
	}
}
