package game

import "github.com/gdamore/tcell/v2"

// Action represents a sandbox command.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionJump
	ActionSword
	ActionIceArrow
	ActionSong
	ActionShield
	ActionRelease
	ActionPause
	ActionStep
	ActionSpawnCaster
	ActionSpawnIceCaster
	ActionSpawnRat
	ActionSpawnPolsVoice
	ActionSpawnPlatform
	ActionQuit
)

// keyToAction maps a tcell key event to a sandbox action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case ' ':
		return ActionJump
	case 'a', 'A':
		return ActionSword
	case 'i', 'I':
		return ActionIceArrow
	case 's', 'S':
		return ActionSong
	case 'm', 'M':
		return ActionShield
	case 'r', 'R':
		return ActionRelease
	case 'p', 'P':
		return ActionPause
	case '.':
		return ActionStep
	case '1':
		return ActionSpawnCaster
	case '2':
		return ActionSpawnIceCaster
	case '3':
		return ActionSpawnRat
	case '4':
		return ActionSpawnPolsVoice
	case '5':
		return ActionSpawnPlatform
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to a cell step (dx, dz).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}
