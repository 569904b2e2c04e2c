package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/standings/pkg/standings"
)

func press(m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestDivisionListSelect(t *testing.T) {
	m, cmd := press(NewDivisionListModel(), keyDown, keyDown, keyDown, keyUp, keyDown, keyEnter)
	if cmd == nil {
		t.Fatal("enter should quit the program")
	}

	got := m.(DivisionListModel)
	if got.Selected == nil {
		t.Fatal("no selection after enter")
	}
	if got.Selected.Conference != standings.NL || got.Selected.Division != standings.East {
		t.Errorf("selected %v, want NL E", *got.Selected)
	}
}

func TestDivisionListCursorBounds(t *testing.T) {
	m, _ := press(NewDivisionListModel(), keyUp, keyUp)
	if c := m.(DivisionListModel).Cursor; c != 0 {
		t.Errorf("cursor = %d after moving up from the top", c)
	}

	keys := make([]tea.KeyMsg, 10)
	for i := range keys {
		keys[i] = keyDown
	}
	m, _ = press(m, keys...)
	if c := m.(DivisionListModel).Cursor; c != 5 {
		t.Errorf("cursor = %d, want 5 (last division)", c)
	}
}

func TestDivisionListQuit(t *testing.T) {
	m, cmd := press(NewDivisionListModel(), keyDown, keyQuit)
	if cmd == nil {
		t.Fatal("q should quit the program")
	}
	if m.(DivisionListModel).Selected != nil {
		t.Error("quitting should not select a division")
	}
}

func TestDivisionListView(t *testing.T) {
	view := NewDivisionListModel().View()
	for _, want := range []string{"Select Division", "AL EAST", "NL WEST", "standings-AL-C.jpg", "[1/6]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
