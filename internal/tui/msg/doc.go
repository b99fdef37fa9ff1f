// Package msg defines the message types used by the TUI's Bubbletea event
// loop and the command factories that produce them.
//
// The boundary call to the meal-plan service runs inside a [tea.Cmd]. Its
// outcome comes back to the event loop as a [PlanGeneratedMsg] carrying
// the submission ticket, so stale or post-teardown results can be dropped
// by the receiver.
package msg
