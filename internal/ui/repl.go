// Package ui holds the Bubble Tea models behind sx's interactive surfaces.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Evaluator runs one line of REPL input and returns the rendered result.
// A returned error is shown in place of a result; it never stops the loop.
type Evaluator func(input string) (string, error)

type historyEntry struct {
	input  string
	output string
	failed bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// ReplModel is the Bubble Tea model for the interactive evaluator loop.
type ReplModel struct {
	input   textinput.Model
	eval    Evaluator
	history []historyEntry
	width   int
	quit    bool
}

// NewReplModel returns a REPL model bound to the given evaluator.
func NewReplModel(eval Evaluator) *ReplModel {
	ti := textinput.New()
	ti.Prompt = "sx> "
	ti.PromptStyle = promptStyle
	ti.Placeholder = "(+ 1 2)"
	ti.Focus()

	return &ReplModel{
		input: ti,
		eval:  eval,
		width: 80,
	}
}

func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - len(m.input.Prompt) - 2
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) submit() {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return
	}

	out, err := m.eval(line)
	entry := historyEntry{input: line, output: out}
	if err != nil {
		entry.output = err.Error()
		entry.failed = true
	}
	m.history = append(m.history, entry)
}

func (m *ReplModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sx repl"))
	b.WriteString(faintStyle.Render("  (esc or ctrl+c to quit)"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(promptStyle.Render("sx> "))
		b.WriteString(truncate(entry.input, m.width-4))
		b.WriteString("\n")

		style := resultStyle
		if entry.failed {
			style = errStyle
		}
		b.WriteString(style.Render(truncate(entry.output, m.width)))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.quit {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%d expressions evaluated", len(m.history))))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
