package view

import (
	"strings"

	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// FocusNumeric is set when a numeric field has focus.
	FocusNumeric bool
	// FocusChoice is set when a choice field has focus.
	FocusChoice bool
	// Loading disables the submit hint.
	Loading bool
	// HasPlan adds the scroll hint.
	HasPlan bool
}

// HelpBarView renders the key hints shown below the form.
type HelpBarView struct{}

// NewHelpBarView creates a new HelpBarView instance.
func NewHelpBarView() *HelpBarView {
	return &HelpBarView{}
}

// Render renders the help bar for the given state.
func (v *HelpBarView) Render(state HelpBarState) string {
	entries := []string{styles.HelpEntry("tab/↓", "next"), styles.HelpEntry("shift+tab/↑", "prev")}

	switch {
	case state.FocusNumeric:
		entries = append(entries, styles.HelpEntry("+/-", "step"))
	case state.FocusChoice:
		entries = append(entries, styles.HelpEntry("←/→", "change"))
	}

	if !state.Loading {
		entries = append(entries, styles.HelpEntry("enter", "generate"))
	}
	if state.HasPlan {
		entries = append(entries, styles.HelpEntry("pgup/pgdn", "scroll plan"))
	}
	entries = append(entries, styles.HelpEntry("esc", "quit"))

	return styles.HelpBar.Render(strings.Join(entries, "  "))
}
