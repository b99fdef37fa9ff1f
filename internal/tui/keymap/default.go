package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the form's key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNumeric: {Mode: ModeNumeric, Bindings: append(numericBindings(), commonBindings()...)},
			ModeChoice:  {Mode: ModeChoice, Bindings: append(choiceBindings(), commonBindings()...)},
			ModeButton:  {Mode: ModeButton, Bindings: commonBindings()},
		},
	}
}

func commonBindings() []KeyBinding {
	return []KeyBinding{
		{KeyType: tea.KeyTab, Command: CmdNextField, Description: "Next field"},
		{KeyType: tea.KeyDown, Command: CmdNextField, Description: "Next field"},
		{KeyType: tea.KeyShiftTab, Command: CmdPrevField, Description: "Previous field"},
		{KeyType: tea.KeyUp, Command: CmdPrevField, Description: "Previous field"},
		{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: "Generate meal plan"},
		{KeyType: tea.KeyPgUp, Command: CmdPageUp, Description: "Scroll plan up"},
		{KeyType: tea.KeyPgDown, Command: CmdPageDown, Description: "Scroll plan down"},
		{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit"},
		{KeyType: tea.KeyEsc, Command: CmdQuit, Description: "Quit"},
	}
}

func numericBindings() []KeyBinding {
	return []KeyBinding{
		{KeyType: tea.KeyRunes, Rune: '+', Command: CmdStepUp, Description: "Increase"},
		{KeyType: tea.KeyRunes, Rune: '=', Command: CmdStepUp, Description: "Increase"},
		{KeyType: tea.KeyRunes, Rune: '-', Command: CmdStepDown, Description: "Decrease"},
	}
}

func choiceBindings() []KeyBinding {
	return []KeyBinding{
		{KeyType: tea.KeyRight, Command: CmdOptionNext, Description: "Next option"},
		{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdOptionNext, Description: "Next option"},
		{KeyType: tea.KeyRunes, Rune: ' ', Command: CmdOptionNext, Description: "Next option"},
		{KeyType: tea.KeyLeft, Command: CmdOptionPrev, Description: "Previous option"},
		{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdOptionPrev, Description: "Previous option"},
	}
}
