package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/standings/pkg/builder"
	"github.com/matzehuels/standings/pkg/render"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DivisionListModel - Interactive division selection
// =============================================================================

// DivisionListModel is the bubbletea model for picking one division.
type DivisionListModel struct {
	Targets  []builder.Target
	Cursor   int
	Selected *builder.Target
}

// NewDivisionListModel creates a model over every division in build order.
func NewDivisionListModel() DivisionListModel {
	return DivisionListModel{Targets: builder.Targets()}
}

func (m DivisionListModel) Init() tea.Cmd {
	return nil
}

func (m DivisionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Targets)-1 {
			m.Cursor++
		}
	case "enter":
		t := m.Targets[m.Cursor]
		m.Selected = &t
		return m, tea.Quit
	}
	return m, nil
}

func (m DivisionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Division"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Targets))
	for i, t := range m.Targets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, render.Title(t.Conference, t.Division), t.FileName()}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Division", "File").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			case col == 2:
				return lipgloss.NewStyle().Foreground(colorDim)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Targets))))

	return b.String()
}

// pickDivision runs the picker. ok is false when the user quit without
// choosing.
func pickDivision() (t builder.Target, ok bool, err error) {
	final, err := tea.NewProgram(NewDivisionListModel()).Run()
	if err != nil {
		return t, false, err
	}
	m, ok := final.(DivisionListModel)
	if !ok || m.Selected == nil {
		return t, false, nil
	}
	return *m.Selected, true, nil
}
