package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormatChoices(t *testing.T) {
	choices := formatChoices()
	if len(choices) < 4 {
		t.Fatalf("len(choices) = %d, want at least 4 (2 styles x 2 sizes)", len(choices))
	}

	var found bool
	for _, c := range choices {
		if c.Spec() == "latex,revtex" {
			found = true
			if c.Font != 8 {
				t.Errorf("latex,revtex font = %v, want 8", c.Font)
			}
			if c.Title != 9 {
				t.Errorf("latex,revtex title = %v, want 9", c.Title)
			}
		}
	}
	if !found {
		t.Error("latex,revtex not among choices")
	}
}

func TestFormatPickerUpdate(t *testing.T) {
	choices := formatChoices()
	m := newFormatPickerModel(choices)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(formatPickerModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(formatPickerModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up = %d, want 0", m.Cursor)
	}

	// Up at the top stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(formatPickerModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.Cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(formatPickerModel)
	if cmd == nil {
		t.Error("enter should quit")
	}
	if m.Choice != choices[0].Spec() {
		t.Errorf("choice = %q, want %q", m.Choice, choices[0].Spec())
	}
}

func TestFormatPickerAbort(t *testing.T) {
	m := newFormatPickerModel(formatChoices())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(formatPickerModel)
	if cmd == nil {
		t.Error("esc should quit")
	}
	if m.Choice != "" {
		t.Errorf("choice after abort = %q, want empty", m.Choice)
	}
}

func TestFormatPickerView(t *testing.T) {
	m := newFormatPickerModel(formatChoices())
	view := m.View()

	for _, want := range []string{"Select Format", "revtex", "latex"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
