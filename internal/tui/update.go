package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nettogo/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultsModel.SetWidth(msg.Width)
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case tuimsg.ErrorMsg:
		m.err = msg.Err
		m.status = ""
		return m, nil

	case tuimsg.ScenarioSubmittedMsg:
		s, err := m.collection.Add(msg.Draft)
		if err != nil {
			m.err = err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("added scenario #%d", s.ID)
		m.formModel.Reset()
		m.recalculate()
		return m, nil

	case tuimsg.ScenarioRemovedMsg:
		if err := m.collection.Remove(msg.ID); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("removed scenario #%d", msg.ID)
		m.recalculate()
		if m.collection.Len() == 0 {
			m.setPane(PaneForm)
		}
		return m, nil
	}

	return m.updateCurrentPane(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q", "esc":
		// the form takes q as text
		if m.pane == PaneResults {
			return m, tea.Quit
		}
		if msg.String() == "esc" {
			m.setPane(PaneResults)
			return m, nil
		}

	case "tab":
		if m.pane == PaneForm {
			m.setPane(PaneResults)
		} else {
			m.setPane(PaneForm)
		}
		return m, nil
	}

	return m.updateCurrentPane(msg)
}

// updateCurrentPane delegates updates to the focused pane's model
func (m Model) updateCurrentPane(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.pane {
	case PaneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case PaneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
