package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qcfin/qcsim/internal/output"
)

// View renders the current state of the application.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("qcsim - Simulateur de vie au Québec"))
	b.WriteString("\n\n")

	form := panelStyle.Render(m.renderForm())
	if m.result != nil {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			form, "  ", resultPanelStyle.Render(m.renderResult())))
	} else {
		b.WriteString(form)
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Erreur: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"tab/↑↓: champ  ←→: ville  espace: basculer  entrée: simuler  esc: quitter"))
	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.fieldLabel(fieldSalary, "Salaire brut annuel"))
	b.WriteString(m.salaryInput.View())
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(fieldCity, "Ville"))
	b.WriteString(fmt.Sprintf("◀ %s ▶", m.cities[m.cityIndex].Name))
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(fieldAges, "Âges des enfants"))
	b.WriteString(m.agesInput.View())
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(fieldPartner, "Conjoint(e)"))
	b.WriteString(checkbox(m.hasPartner))
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(fieldCar, "Voiture"))
	b.WriteString(checkbox(m.hasCar))
	b.WriteString("\n")

	b.WriteString(m.fieldLabel(fieldSubsidy, "Garderie subventionnée"))
	b.WriteString(checkbox(m.hasSubsidy))

	return b.String()
}

func (m Model) renderResult() string {
	r := m.result
	var b strings.Builder

	line := func(label string, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	line("Revenu net mensuel", output.FormatCurrency(r.Tax.NetMonthly))
	line("Paie aux 2 semaines", output.FormatCurrency(r.Tax.NetBiWeekly))
	line("Taux effectif", output.FormatPercent(r.Tax.EffectiveTaxRate))
	line("Dépenses mensuelles", output.FormatCurrency(r.Expenses.Total()))
	if !r.ChildCosts.NetMonthlyCost.IsZero() {
		line("Coût net des enfants", output.FormatCurrency(r.ChildCosts.NetMonthlyCost))
	}
	line("Revenu disponible", output.FormatCurrency(r.DisposableIncome))
	line("Taux d'épargne", output.FormatPercent(r.SavingsRate))

	b.WriteString(labelStyle.Render("Santé financière"))
	b.WriteString(healthStyle(string(r.FinancialHealth)).Render(healthLabelFR(string(r.FinancialHealth))))

	return b.String()
}

func (m Model) fieldLabel(field int, label string) string {
	if m.focus == field {
		return focusedLabelStyle.Render("› " + label)
	}
	return labelStyle.Render("  " + label)
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func healthLabelFR(health string) string {
	switch health {
	case "excellent":
		return "excellente"
	case "good":
		return "bonne"
	case "tight":
		return "serrée"
	default:
		return "déficitaire"
	}
}
