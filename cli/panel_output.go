package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Italic(true)

type panelModel struct {
	text  string
	valid bool
}

func (m panelModel) Update(msg tea.Msg, mm *uiModel) (panelModel, tea.Cmd) {
	if mm.sm.RcvFrame("ioniq") > 0 {
		m.valid = true
		m.text = mm.info.Plain()
	}

	return m, nil
}

func (m panelModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for ioniq...\n\n(esc to return)") + "\n"
	}
	return docStyle.Render(titleStyle.Render(m.text)+"\n(esc to return)") + "\n"
}
