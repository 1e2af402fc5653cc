// Package tui provides an interactive terminal front end for the life
// simulator. One screen: a household form on the left, live results on
// the right.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/qcfin/qcsim/internal/calculation"
	"github.com/qcfin/qcsim/internal/domain"
)

// Form fields, in focus order.
const (
	fieldSalary = iota
	fieldCity
	fieldAges
	fieldPartner
	fieldCar
	fieldSubsidy
	fieldCount
)

// Model represents the entire application state.
type Model struct {
	engine *calculation.Engine
	cities []domain.City

	salaryInput textinput.Model
	agesInput   textinput.Model
	cityIndex   int
	hasPartner  bool
	hasCar      bool
	hasSubsidy  bool

	focus  int
	result *domain.SimulationResult
	err    error

	width  int
	height int
}

// NewModel creates the application model around a calculation engine.
func NewModel(engine *calculation.Engine) Model {
	salary := textinput.New()
	salary.Placeholder = "55000"
	salary.CharLimit = 9
	salary.Width = 12
	salary.Focus()

	ages := textinput.New()
	ages.Placeholder = "4, 9"
	ages.CharLimit = 30
	ages.Width = 20

	return Model{
		engine:      engine,
		cities:      engine.Cities(),
		salaryInput: salary,
		agesInput:   ages,
		focus:       fieldSalary,
		width:       80,
		height:      24,
	}
}

// Init is required by the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// simulateCmd parses the form and runs the simulation off the update loop.
func simulateCmd(engine *calculation.Engine, in calculation.SimulationInput) tea.Cmd {
	return func() tea.Msg {
		result := engine.Simulate(in)
		if result == nil {
			return SimulationDoneMsg{Err: fmt.Errorf("entrées invalides: vérifiez le salaire et la ville")}
		}
		return SimulationDoneMsg{Result: result}
	}
}

// buildInput converts the form state into a simulation input.
func (m Model) buildInput() (calculation.SimulationInput, error) {
	salary, err := decimal.NewFromString(strings.TrimSpace(m.salaryInput.Value()))
	if err != nil {
		return calculation.SimulationInput{}, fmt.Errorf("salaire invalide %q", m.salaryInput.Value())
	}

	ages, err := parseAges(m.agesInput.Value())
	if err != nil {
		return calculation.SimulationInput{}, err
	}

	if len(m.cities) == 0 {
		return calculation.SimulationInput{}, fmt.Errorf("aucune ville disponible")
	}

	return calculation.SimulationInput{
		GrossSalary: salary,
		CityID:      m.cities[m.cityIndex].ID,
		Household: domain.Household{
			HasPartner: m.hasPartner,
			HasCar:     m.hasCar,
			Ages:       ages,
			HasSubsidy: m.hasSubsidy,
		},
	}, nil
}

func parseAges(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ages := make([]int, 0, len(parts))
	for _, part := range parts {
		age, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || age < 0 || age > 17 {
			return nil, fmt.Errorf("âge invalide %q (0 à 17 attendu)", strings.TrimSpace(part))
		}
		ages = append(ages, age)
	}
	return ages, nil
}
