package output

import (
	"fmt"
	"strings"

	"github.com/qcfin/qcsim/internal/domain"
)

// ConsoleRenderer renders a simulation result as a plain-text report.
type ConsoleRenderer struct{}

// Name implements domain.ReportRenderer.
func (ConsoleRenderer) Name() string { return "console" }

// Render implements domain.ReportRenderer.
func (ConsoleRenderer) Render(result *domain.SimulationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nothing to render: simulation produced no result")
	}

	var b strings.Builder
	line := strings.Repeat("=", 60)

	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "SIMULATION DE VIE — %s (%s)\n", result.City.Name, result.City.Region)
	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "REVENU")
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintf(&b, "  Salaire brut annuel:    %s\n", FormatCurrency(result.Tax.GrossAnnual))
	fmt.Fprintf(&b, "  Impôt fédéral:          %s\n", FormatCurrency(result.Tax.FederalTax))
	fmt.Fprintf(&b, "  Impôt provincial:       %s\n", FormatCurrency(result.Tax.ProvincialTax))
	fmt.Fprintf(&b, "  RRQ:                    %s\n", FormatCurrency(result.Tax.QPPContribution))
	fmt.Fprintf(&b, "  RQAP:                   %s\n", FormatCurrency(result.Tax.QPIPContribution))
	fmt.Fprintf(&b, "  Assurance-emploi:       %s\n", FormatCurrency(result.Tax.EIContribution))
	fmt.Fprintf(&b, "  Revenu net annuel:      %s\n", FormatCurrency(result.Tax.NetAnnual))
	fmt.Fprintf(&b, "  Revenu net mensuel:     %s\n", FormatCurrency(result.Tax.NetMonthly))
	fmt.Fprintf(&b, "  Taux effectif:          %s\n", FormatPercent(result.Tax.EffectiveTaxRate))
	fmt.Fprintf(&b, "  Taux marginal:          %s\n", FormatPercent(result.Tax.MarginalTaxRate))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DÉPENSES MENSUELLES")
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintf(&b, "  Loyer:                  %s\n", FormatCurrency(result.Expenses.Rent))
	fmt.Fprintf(&b, "  Épicerie:               %s\n", FormatCurrency(result.Expenses.Groceries))
	fmt.Fprintf(&b, "  Services publics:       %s\n", FormatCurrency(result.Expenses.Utilities))
	fmt.Fprintf(&b, "  Transport:              %s\n", FormatCurrency(result.Expenses.Transportation))
	if !result.ChildCosts.TotalMonthly.IsZero() || !result.ChildCosts.NetMonthlyCost.IsZero() {
		fmt.Fprintf(&b, "  Enfants (coût net):     %s\n", FormatCurrency(result.ChildCosts.NetMonthlyCost))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "BILAN")
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	fmt.Fprintf(&b, "  Revenu disponible:      %s\n", FormatCurrency(result.DisposableIncome))
	fmt.Fprintf(&b, "  Taux d'épargne:         %s\n", FormatPercent(result.SavingsRate))
	fmt.Fprintf(&b, "  Loyer / revenu:         %s\n", FormatPercent(result.RentToIncomeRatio))
	fmt.Fprintf(&b, "  Santé financière:       %s\n", healthLabel(result.FinancialHealth))

	return []byte(b.String()), nil
}

func healthLabel(h domain.FinancialHealth) string {
	switch h {
	case domain.HealthExcellent:
		return "excellente"
	case domain.HealthGood:
		return "bonne"
	case domain.HealthTight:
		return "serrée"
	case domain.HealthDeficit:
		return "déficitaire"
	default:
		return string(h)
	}
}

// GetRendererByName resolves a renderer from a --format value; nil for
// unsupported names.
func GetRendererByName(name string) domain.ReportRenderer {
	switch name {
	case "console", "":
		return ConsoleRenderer{}
	case "json":
		return JSONRenderer{}
	case "csv":
		return CSVRenderer{}
	default:
		return nil
	}
}
