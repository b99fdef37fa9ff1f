// Package config implements the interactive editor behind `dietplanner config`.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/dietplanner/internal/config"
	"github.com/Iron-Ham/dietplanner/internal/tui/styles"
	"github.com/Iron-Ham/dietplanner/internal/util"
)

const maxValueWidth = 40

// Model edits the settings catalog one key at a time and writes every
// accepted change to the config file.
type Model struct {
	settings   []config.Setting
	cursor     int
	editing    bool
	input      textinput.Model
	options    []string // choices while editing a theme or level
	choice     int
	errorMsg   string
	infoMsg    string
	quitting   bool
	configFile string
}

// New creates an editor positioned on the first setting.
func New() Model {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = maxValueWidth

	return Model{
		settings:   config.Settings(),
		input:      input,
		configFile: config.ConfigFile(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) current() config.Setting {
	return m.settings[m.cursor]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.errorMsg, m.infoMsg = "", ""
	if m.editing {
		return m.updateEditing(keyMsg)
	}

	n := len(m.settings)
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor - 1 + n) % n
	case "down", "j":
		m.cursor = (m.cursor + 1) % n
	case "tab":
		m.cursor = m.nextSection(1)
	case "shift+tab":
		m.cursor = m.nextSection(-1)
	case "enter", " ":
		return m.beginEdit()
	case "r":
		m.reset()
	}
	return m, nil
}

// nextSection returns the index of the first setting of the section dir
// steps away from the current one, wrapping around.
func (m Model) nextSection(dir int) int {
	var starts []int
	for i, s := range m.settings {
		if i == 0 || s.Section != m.settings[i-1].Section {
			starts = append(starts, i)
		}
	}
	cur := 0
	for i, start := range starts {
		if start <= m.cursor {
			cur = i
		}
	}
	return starts[(cur+dir+len(starts))%len(starts)]
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	s := m.current()
	if s.Kind == config.KindBool {
		m.apply(s, strconv.FormatBool(!viper.GetBool(s.Key)))
		return m, nil
	}

	m.editing = true
	if m.options = s.Options(); m.options != nil {
		m.choice = max(slices.Index(m.options, viper.GetString(s.Key)), 0)
		return m, nil
	}
	m.input.SetValue(displayValue(s))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.current()
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "enter":
		value := m.input.Value()
		if m.options != nil {
			value = m.options[m.choice]
		}
		if m.apply(s, value) {
			m.stopEditing()
		}
		return m, nil
	}

	if m.options != nil {
		switch msg.String() {
		case "up", "k":
			m.choice = (m.choice - 1 + len(m.options)) % len(m.options)
		case "down", "j":
			m.choice = (m.choice + 1) % len(m.options)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.options = nil
	m.input.SetValue("")
	m.input.Blur()
}

// apply parses raw for s, stores it and saves. It reports whether the
// value was accepted.
func (m *Model) apply(s config.Setting, raw string) bool {
	value, err := s.Parse(raw)
	if err != nil {
		m.errorMsg = err.Error()
		return false
	}
	viper.Set(s.Key, value)
	if s.Kind == config.KindTheme {
		styles.SetActiveTheme(styles.ThemeName(raw))
	}
	return m.save("Saved " + s.Label)
}

func (m *Model) reset() {
	s := m.current()
	value, ok := config.DefaultValues()[s.Key]
	if !ok {
		return
	}
	viper.Set(s.Key, value)
	m.save("Reset " + s.Label + " to default")
}

func (m *Model) save(info string) bool {
	if err := os.MkdirAll(filepath.Dir(m.configFile), 0o755); err != nil {
		m.errorMsg = fmt.Sprintf("creating config directory: %v", err)
		return false
	}
	if err := viper.WriteConfigAs(m.configFile); err != nil {
		m.errorMsg = fmt.Sprintf("saving config: %v", err)
		return false
	}
	m.infoMsg = info
	return true
}

func displayValue(s config.Setting) string {
	switch s.Kind {
	case config.KindBool:
		return strconv.FormatBool(viper.GetBool(s.Key))
	case config.KindInt:
		return strconv.Itoa(viper.GetInt(s.Key))
	case config.KindDuration:
		return viper.GetDuration(s.Key).String()
	default:
		return viper.GetString(s.Key)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Diet Planner Configuration"))
	b.WriteString("\n\n")

	path := viper.ConfigFileUsed()
	if path == "" {
		path = m.configFile
		if _, err := os.Stat(path); err != nil {
			path += " (not created)"
		}
	}
	b.WriteString(styles.Muted.Render("Config file: " + path))
	b.WriteString("\n")

	section := m.current().Section
	for i, s := range m.settings {
		if i == 0 || s.Section != m.settings[i-1].Section {
			heading := styles.Muted.Bold(true)
			if s.Section == section {
				heading = styles.Primary.Bold(true)
			}
			b.WriteString("\n" + heading.Render("[ "+s.Section+" ]") + "\n")
		}
		b.WriteString(renderSetting(s, i == m.cursor) + "\n")
	}
	b.WriteString("\n")

	if m.editing {
		b.WriteString(m.renderEditor())
	} else {
		b.WriteString(styles.Muted.Render(m.current().Description))
	}
	b.WriteString("\n")

	switch {
	case m.errorMsg != "":
		b.WriteString("\n" + styles.ErrorMsg.Render("Error: "+m.errorMsg) + "\n")
	case m.infoMsg != "":
		b.WriteString("\n" + styles.Primary.Render(m.infoMsg) + "\n")
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func renderSetting(s config.Setting, selected bool) string {
	value := util.TruncateString(displayValue(s), maxValueWidth)
	if value == "" {
		value = "(default)"
	}
	label := fmt.Sprintf("%-20s", s.Label)
	if selected {
		return "  " + styles.FocusMarker.Render(">") + " " +
			styles.Text.Bold(true).Render(label) + "  " + styles.Primary.Render(value)
	}
	return "    " + styles.Muted.Render(label) + "  " + styles.Text.Render(value)
}

func (m Model) renderEditor() string {
	s := m.current()
	var content strings.Builder
	if m.options != nil {
		content.WriteString("Select " + s.Label + ":\n\n")
		for i, opt := range m.options {
			if i == m.choice {
				content.WriteString(styles.Primary.Bold(true).Render(" > "+opt) + "\n")
			} else {
				content.WriteString(styles.Text.Render("   "+opt) + "\n")
			}
		}
	} else {
		content.WriteString("Edit " + s.Label + ":\n\n" + m.input.View() + "\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PrimaryColor).
		Padding(1, 2).
		Width(56)
	return box.Render(strings.TrimRight(content.String(), "\n"))
}

func (m Model) renderHelp() string {
	entries := []string{
		styles.HelpEntry("j/k", "move"),
		styles.HelpEntry("tab", "section"),
		styles.HelpEntry("enter", "edit"),
		styles.HelpEntry("r", "reset"),
		styles.HelpEntry("q", "quit"),
	}
	if m.editing {
		entries = []string{styles.HelpEntry("enter", "save"), styles.HelpEntry("esc", "cancel")}
		if m.options != nil {
			entries = append([]string{styles.HelpEntry("j/k", "choose")}, entries...)
		}
	}
	return styles.HelpBar.Render(strings.Join(entries, "  "))
}

// Run starts the editor in the alternate screen.
func Run() error {
	_, err := tea.NewProgram(New(), tea.WithAltScreen()).Run()
	return err
}
