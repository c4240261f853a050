package dispatch

import (
	"fmt"

	"github.com/AbdouB/clipper/internal/models"
)

// Command is one of the commands the host can send back
type Command int

const (
	CommandAddText Command = iota
	CommandAddImage
	CommandEditTextClip
	CommandDeleteTextClip
	CommandEditImageClip
	CommandDeleteImageClip
	CommandCopyImage
)

var commandNames = map[Command]string{
	CommandAddText:         "add-text",
	CommandAddImage:        "add-image",
	CommandEditTextClip:    "edit-text-clip",
	CommandDeleteTextClip:  "delete-text-clip",
	CommandEditImageClip:   "edit-image-clip",
	CommandDeleteImageClip: "delete-image-clip",
	CommandCopyImage:       "copy-image",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand resolves a wire command name
func ParseCommand(name string) (Command, error) {
	for command, commandName := range commandNames {
		if commandName == name {
			return command, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

type operation int

const (
	opAdd operation = iota
	opEdit
	opDelete
	opCopy
)

// target returns which collection a command works on and what it does there
func (c Command) target() (models.ClipKind, operation) {
	switch c {
	case CommandAddText:
		return models.KindText, opAdd
	case CommandAddImage:
		return models.KindImage, opAdd
	case CommandEditTextClip:
		return models.KindText, opEdit
	case CommandEditImageClip:
		return models.KindImage, opEdit
	case CommandDeleteTextClip:
		return models.KindText, opDelete
	case CommandDeleteImageClip:
		return models.KindImage, opDelete
	case CommandCopyImage:
		return models.KindImage, opCopy
	}
	panic(fmt.Sprintf("dispatch: unhandled command %d", int(c)))
}

// Mutates reports whether a successful run must persist the clipboard
func (c Command) Mutates() bool {
	_, op := c.target()
	return op != opCopy
}

func editCommand(kind models.ClipKind) Command {
	if kind == models.KindImage {
		return CommandEditImageClip
	}
	return CommandEditTextClip
}

func deleteCommand(kind models.ClipKind) Command {
	if kind == models.KindImage {
		return CommandDeleteImageClip
	}
	return CommandDeleteTextClip
}
