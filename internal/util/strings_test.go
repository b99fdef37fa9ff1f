package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "Oats", 10, "Oats"},
		{"exact length unchanged", "Lunch", 5, "Lunch"},
		{"long string truncated", "Grilled chicken salad", 10, "Grilled..."},
		{"tiny limit", "Breakfast", 3, "..."},
		{"multibyte runes", "Crème brûlée tart", 8, "Crème..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("Recommended Water Intake: 2500 ml")

	got := TruncateANSI(styled, 12)
	if w := lipgloss.Width(got); w > 12 {
		t.Errorf("width = %d, want <= 12", w)
	}
	if TruncateANSI("short", 20) != "short" {
		t.Error("short text should be unchanged")
	}
	if TruncateANSI("anything", 2) != "..." {
		t.Error("tiny width should return the ellipsis")
	}
}

func TestTruncateLines(t *testing.T) {
	in := "Breakfast\n  • Steel-cut oats with berries (Grain)\n\nLunch"
	got := TruncateLines(in, 12)
	want := "Breakfast\n  • Steel...\n\nLunch"
	if got != want {
		t.Errorf("TruncateLines() = %q, want %q", got, want)
	}
	if TruncateLines(in, 0) != in {
		t.Error("zero width should leave text alone")
	}
}
