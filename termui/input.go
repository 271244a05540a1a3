package termui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/game"
)

// Command is a player action decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
	CommandRestart
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandSoftDrop:
		return "soft-drop"
	case CommandRotate:
		return "rotate"
	case CommandHardDrop:
		return "hard-drop"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	}
	return "none"
}

// CommandFor decodes a key event.
func CommandFor(ev *tcell.EventKey) Command {
	return commandFor(ev.Key(), ev.Rune())
}

func commandFor(key tcell.Key, ch rune) Command {
	switch key {
	case tcell.KeyLeft:
		return CommandLeft
	case tcell.KeyRight:
		return CommandRight
	case tcell.KeyDown:
		return CommandSoftDrop
	case tcell.KeyUp:
		return CommandRotate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyRune:
		switch ch {
		case ' ':
			return CommandHardDrop
		case 'h', 'a':
			return CommandLeft
		case 'l', 'd':
			return CommandRight
		case 'j', 's':
			return CommandSoftDrop
		case 'k', 'w':
			return CommandRotate
		case 'r', 'R':
			return CommandRestart
		case 'q', 'Q':
			return CommandQuit
		}
	}
	return CommandNone
}

// Apply performs cmd on s. Quit and None are left to the caller.
func Apply(cmd Command, s *game.Session) {
	switch cmd {
	case CommandLeft:
		s.MovePiece(-1, 0)
	case CommandRight:
		s.MovePiece(1, 0)
	case CommandSoftDrop:
		s.MovePiece(0, 1)
	case CommandRotate:
		s.RotatePiece()
	case CommandHardDrop:
		s.DropPiece()
	case CommandRestart:
		s.Start()
	}
}
