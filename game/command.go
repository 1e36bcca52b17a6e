package game

// Command is a discrete input applied to the model
type Command uint8

const (
	CommandNone Command = iota // Input arrived but maps to nothing
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUpDouble
	CommandMoveDownDouble
	CommandMoveLeftDouble
	CommandMoveRightDouble
	CommandTogglePause
	CommandBoost
	CommandNewGame
	CommandQuit
	CommandTimeout // No key within the tick window
)

var commandNames = [...]string{
	CommandNone:            "None",
	CommandMoveUp:          "MoveUp",
	CommandMoveDown:        "MoveDown",
	CommandMoveLeft:        "MoveLeft",
	CommandMoveRight:       "MoveRight",
	CommandMoveUpDouble:    "MoveUpDouble",
	CommandMoveDownDouble:  "MoveDownDouble",
	CommandMoveLeftDouble:  "MoveLeftDouble",
	CommandMoveRightDouble: "MoveRightDouble",
	CommandTogglePause:     "TogglePause",
	CommandBoost:           "Boost",
	CommandNewGame:         "NewGame",
	CommandQuit:            "Quit",
	CommandTimeout:         "Timeout",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Unknown"
}

// Direction returns the heading of a move command and whether it is a double move
func (c Command) Direction() (dir Direction, double bool, ok bool) {
	switch c {
	case CommandMoveUp:
		return DirUp, false, true
	case CommandMoveDown:
		return DirDown, false, true
	case CommandMoveLeft:
		return DirLeft, false, true
	case CommandMoveRight:
		return DirRight, false, true
	case CommandMoveUpDouble:
		return DirUp, true, true
	case CommandMoveDownDouble:
		return DirDown, true, true
	case CommandMoveLeftDouble:
		return DirLeft, true, true
	case CommandMoveRightDouble:
		return DirRight, true, true
	}
	return 0, false, false
}

// Events is the set of notable outcomes of one transition
type Events uint16

const (
	EventAte Events = 1 << iota
	EventLost
	EventWon
	EventBoostStarted
	EventBoostEnded
	EventPaused
	EventResumed
	EventReset
	EventMoved      // Head advanced one cell
	EventMovedTwice // Second half of a double move also advanced
)

// Has reports whether all bits of flag are set
func (e Events) Has(flag Events) bool {
	return e&flag == flag
}
