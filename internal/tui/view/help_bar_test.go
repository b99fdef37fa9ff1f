package view

import (
	"strings"
	"testing"
)

func TestHelpBarView_Render(t *testing.T) {
	tests := []struct {
		name    string
		state   HelpBarState
		want    []string
		notWant []string
	}{
		{
			name:    "numeric focus",
			state:   HelpBarState{FocusNumeric: true},
			want:    []string{"+/-", "generate", "quit"},
			notWant: []string{"←/→", "scroll plan"},
		},
		{
			name:    "choice focus",
			state:   HelpBarState{FocusChoice: true},
			want:    []string{"←/→", "change"},
			notWant: []string{"+/-"},
		},
		{
			name:    "loading hides submit",
			state:   HelpBarState{Loading: true},
			notWant: []string{"generate"},
		},
		{
			name:  "plan shown",
			state: HelpBarState{HasPlan: true},
			want:  []string{"pgup/pgdn", "scroll plan"},
		},
	}

	v := NewHelpBarView()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := v.Render(tt.state)
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("Render() missing %q: %s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("Render() should not contain %q: %s", s, out)
				}
			}
		})
	}
}
