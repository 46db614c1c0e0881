package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/utensils/hexalith/pkg/palette"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorText)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Themes   []palette.Theme
	Cursor   int
	Selected *palette.Theme
}

// NewThemeListModel creates a theme list with the cursor on current.
// An unknown current name leaves the cursor on the first theme.
func NewThemeListModel(current string) ThemeListModel {
	m := ThemeListModel{Themes: palette.All()}
	if t, err := palette.Parse(current); err == nil {
		for i, th := range m.Themes {
			if th == t {
				m.Cursor = i
			}
		}
	}
	return m
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Themes)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.Themes) - 1
		case "enter":
			t := m.Themes[m.Cursor]
			m.Selected = &t
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Themes))
	for i, t := range m.Themes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, t.String(), swatch(t.Colors()), t.Describe()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Theme", "Colors", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			// swatch cells carry their own colors
			if col == 2 {
				return lipgloss.NewStyle()
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			if col == 3 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Themes))))

	return b.String()
}

// pickTheme runs the interactive picker. It returns ok=false when the user
// quits without choosing.
func pickTheme(current string) (name string, ok bool, err error) {
	p := tea.NewProgram(NewThemeListModel(current))
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}
	fm, isModel := final.(ThemeListModel)
	if !isModel || fm.Selected == nil {
		return "", false, nil
	}
	return fm.Selected.String(), true, nil
}
