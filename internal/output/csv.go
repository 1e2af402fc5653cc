package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/qcfin/qcsim/internal/domain"
)

// CSVRenderer renders a simulation result as a two-column CSV of
// metric/value rows, convenient for spreadsheet import.
type CSVRenderer struct{}

// Name implements domain.ReportRenderer.
func (CSVRenderer) Name() string { return "csv" }

// Render implements domain.ReportRenderer.
func (CSVRenderer) Render(result *domain.SimulationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("nothing to render: simulation produced no result")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"city", result.City.ID},
		{"gross_annual", result.Tax.GrossAnnual.StringFixed(2)},
		{"federal_tax", result.Tax.FederalTax.StringFixed(2)},
		{"provincial_tax", result.Tax.ProvincialTax.StringFixed(2)},
		{"qpp_contribution", result.Tax.QPPContribution.StringFixed(2)},
		{"qpip_contribution", result.Tax.QPIPContribution.StringFixed(2)},
		{"ei_contribution", result.Tax.EIContribution.StringFixed(2)},
		{"net_annual", result.Tax.NetAnnual.StringFixed(2)},
		{"net_monthly", result.Tax.NetMonthly.StringFixed(2)},
		{"effective_tax_rate", result.Tax.EffectiveTaxRate.StringFixed(2)},
		{"marginal_tax_rate", result.Tax.MarginalTaxRate.StringFixed(2)},
		{"rent", result.Expenses.Rent.StringFixed(2)},
		{"groceries", result.Expenses.Groceries.StringFixed(2)},
		{"utilities", result.Expenses.Utilities.StringFixed(2)},
		{"transportation", result.Expenses.Transportation.StringFixed(2)},
		{"child_net_monthly_cost", result.ChildCosts.NetMonthlyCost.StringFixed(2)},
		{"disposable_income", result.DisposableIncome.StringFixed(2)},
		{"savings_rate", result.SavingsRate.StringFixed(2)},
		{"rent_to_income_ratio", result.RentToIncomeRatio.StringFixed(2)},
		{"financial_health", string(result.FinancialHealth)},
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
