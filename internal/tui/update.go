package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SimulationDoneMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.result = nil
		} else {
			m.err = nil
			m.result = msg.Result
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "left":
		if m.focus == fieldCity {
			m.cityIndex = (m.cityIndex + len(m.cities) - 1) % len(m.cities)
			return m, nil
		}

	case "right":
		if m.focus == fieldCity {
			m.cityIndex = (m.cityIndex + 1) % len(m.cities)
			return m, nil
		}

	case " ":
		switch m.focus {
		case fieldPartner:
			m.hasPartner = !m.hasPartner
			return m, nil
		case fieldCar:
			m.hasCar = !m.hasCar
			return m, nil
		case fieldSubsidy:
			m.hasSubsidy = !m.hasSubsidy
			return m, nil
		}

	case "enter":
		in, err := m.buildInput()
		if err != nil {
			m.err = err
			m.result = nil
			return m, nil
		}
		return m, simulateCmd(m.engine, in)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) moveFocus(delta int) Model {
	m.focus = (m.focus + delta + fieldCount) % fieldCount

	m.salaryInput.Blur()
	m.agesInput.Blur()
	switch m.focus {
	case fieldSalary:
		m.salaryInput.Focus()
	case fieldAges:
		m.agesInput.Focus()
	}
	return m
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldSalary:
		m.salaryInput, cmd = m.salaryInput.Update(msg)
	case fieldAges:
		m.agesInput, cmd = m.agesInput.Update(msg)
	}
	return m, cmd
}
