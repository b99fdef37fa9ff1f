package msg

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/dietplanner/internal/planclient"
	"github.com/Iron-Ham/dietplanner/internal/submission"
	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
)

// GeneratePlan returns a command that performs the boundary call for
// ticket's form snapshot and reports the outcome as a PlanGeneratedMsg.
// The request ID travels to the service in the X-Request-ID header.
func GeneratePlan(ctx context.Context, client planclient.Client, ticket submission.Ticket) tea.Cmd {
	return func() tea.Msg {
		plan, err := client.GeneratePlan(ticket.Context(ctx), ticket.Form)
		if err != nil {
			return PlanGeneratedMsg{Ticket: ticket, Err: err}
		}
		return PlanGeneratedMsg{Ticket: ticket, Plan: plan}
	}
}

// ClearNoticeAfter returns a command that clears notice id once it expires.
func ClearNoticeAfter(id int) tea.Cmd {
	return clearNoticeAfter(id, noticeTTL)
}

func clearNoticeAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearNoticeMsg{ID: id}
	})
}

// DiscoverThemes returns a command that loads custom theme files.
func DiscoverThemes() tea.Cmd {
	return func() tea.Msg {
		loaded, errs := styles.DiscoverCustomThemes()
		return ThemesLoadedMsg{Loaded: loaded, Errs: errs}
	}
}
