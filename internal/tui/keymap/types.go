// Package keymap provides key binding definitions and lookup for the form
// TUI. Bindings are declarative and depend on the kind of row that has
// focus.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects the active bindings. It follows the kind of the focused row.
type Mode string

const (
	ModeNumeric Mode = "numeric" // A numeric input has focus
	ModeChoice  Mode = "choice"  // A choice field has focus
	ModeButton  Mode = "button"  // The submit button has focus
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	// Navigation
	CmdNextField Command = "next_field"
	CmdPrevField Command = "prev_field"

	// Editing
	CmdStepUp     Command = "step_up"
	CmdStepDown   Command = "step_down"
	CmdOptionNext Command = "option_next"
	CmdOptionPrev Command = "option_prev"

	// Result scrolling
	CmdPageUp   Command = "page_up"
	CmdPageDown Command = "page_down"

	CmdSubmit Command = "submit"
	CmdQuit   Command = "quit"
)

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key; rune keys use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	if kb.KeyType != tea.KeyRunes {
		return kb.KeyType.String()
	}
	return string(kb.Rune)
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Keys without a binding (e.g. digits typed into a numeric field) return false.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetBindingsForCommand returns all bindings that trigger cmd in mode.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}
