package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depgraph/pkg/currency"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// CurrencyListModel is the bubbletea model for interactive currency selection.
type CurrencyListModel struct {
	Kinds    []currency.Kind
	Cursor   int
	Selected *currency.Kind
}

// NewCurrencyListModel creates a new currency list model.
func NewCurrencyListModel(kinds []currency.Kind) CurrencyListModel {
	return CurrencyListModel{Kinds: kinds}
}

func (m CurrencyListModel) Init() tea.Cmd {
	return nil
}

func (m CurrencyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Kinds)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Kinds[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m CurrencyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Currency"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	for i, kind := range m.Kinds {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		denoms := kind.Denominations()
		largest := ""
		if len(denoms) > 0 {
			largest = fmt.Sprintf("largest %.0f", denoms[0].Value)
		}

		var status string
		if hasSubUnit(denoms) {
			status = StyleSuccess.Render("*")
		} else {
			status = StyleWarning.Render("!")
		}

		line := fmt.Sprintf("%s%s %-4s %-18s %s", cursor, status, string(kind), kind.Name(),
			listDimStyle.Render(fmt.Sprintf("%d denominations, %s", len(denoms), largest)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s sub-unit coins   %s whole units only\n",
		StyleSuccess.Render("*"), StyleWarning.Render("!")))

	return b.String()
}

// hasSubUnit reports whether the catalog reaches below one major unit.
// Amounts with a fractional part always leave a remainder without one.
func hasSubUnit(denoms []currency.Denomination) bool {
	return len(denoms) > 0 && denoms[len(denoms)-1].Value < 1
}
