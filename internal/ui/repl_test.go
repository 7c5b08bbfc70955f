package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeLine(m *ReplModel, line string) *ReplModel {
	var model tea.Model = m
	model, _ = model.(*ReplModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	model, _ = model.(*ReplModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(*ReplModel)
}

func TestReplModel_SubmitRecordsHistory(t *testing.T) {
	m := NewReplModel(func(input string) (string, error) {
		if input != "(+ 1 2)" {
			t.Errorf("Evaluator got %q", input)
		}
		return "3", nil
	})

	m = typeLine(m, "(+ 1 2)")

	if len(m.history) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(m.history))
	}
	entry := m.history[0]
	if entry.input != "(+ 1 2)" || entry.output != "3" || entry.failed {
		t.Errorf("Unexpected entry %+v", entry)
	}

	view := m.View()
	if !strings.Contains(view, "(+ 1 2)") || !strings.Contains(view, "3") {
		t.Errorf("View missing history:\n%s", view)
	}
}

func TestReplModel_SubmitRecordsFailure(t *testing.T) {
	m := NewReplModel(func(input string) (string, error) {
		return "", errors.New("EVL3004: unknown operator \"foo\"")
	})

	m = typeLine(m, "(foo 1 2)")

	if len(m.history) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(m.history))
	}
	if !m.history[0].failed {
		t.Error("Expected entry marked failed")
	}
	if !strings.Contains(m.View(), "EVL3004") {
		t.Error("View missing error text")
	}
}

func TestReplModel_EmptyLineIgnored(t *testing.T) {
	m := NewReplModel(func(string) (string, error) {
		t.Error("Evaluator must not run for empty input")
		return "", nil
	})

	m = typeLine(m, "   ")

	if len(m.history) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(m.history))
	}
}

func TestReplModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := NewReplModel(func(string) (string, error) { return "", nil })
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Errorf("Key %v: expected tea.Quit command", key)
		}
		if !m.quit {
			t.Errorf("Key %v: expected quit flag", key)
		}
	}
}

func TestReplModel_WindowSize(t *testing.T) {
	m := NewReplModel(func(string) (string, error) { return "", nil })
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.width != 40 {
		t.Errorf("Expected width 40, got %d", m.width)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		value string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten..", 0, "exactly ten.."},
		{"this line is too long", 10, "this li..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d): expected %q, got %q",
				tt.value, tt.width, got, tt.want)
		}
	}
}
