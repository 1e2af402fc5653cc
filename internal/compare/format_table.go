package compare

import (
	"fmt"
	"strings"

	"github.com/qcfin/qcsim/internal/output"
)

const (
	cityColWidth = 18
	numColWidth  = 15
)

// TableFormatter renders a comparison as a fixed-width text table.
type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

func (tf *TableFormatter) Format(c *Comparison) string {
	var b strings.Builder

	totalWidth := 6 + cityColWidth + 4*numColWidth
	b.WriteString(fmt.Sprintf("Comparaison des villes pour un salaire de %s\n",
		output.FormatCurrency(c.GrossSalary)))
	b.WriteString(strings.Repeat("=", totalWidth) + "\n")
	b.WriteString(fmt.Sprintf("%-6s%-*s%*s%*s%*s%*s\n",
		"Rang",
		cityColWidth, "Ville",
		numColWidth, "Revenu net",
		numColWidth, "Dépenses",
		numColWidth, "Disponible",
		numColWidth, "Écart"))
	b.WriteString(strings.Repeat("-", totalWidth) + "\n")

	for _, r := range c.Results {
		delta := output.FormatCurrency(r.DeltaFromBase)
		if r.City.ID == c.BaseCityID {
			delta = "base"
		}
		b.WriteString(fmt.Sprintf("%-6d%-*s%*s%*s%*s%*s\n",
			r.Rank,
			cityColWidth, r.City.Name,
			numColWidth, output.FormatCurrency(r.Result.Tax.NetMonthly),
			numColWidth, output.FormatCurrency(r.Result.Expenses.Total()),
			numColWidth, output.FormatCurrency(r.Result.DisposableIncome),
			numColWidth, delta))
	}

	b.WriteString(strings.Repeat("=", totalWidth) + "\n")
	b.WriteString(fmt.Sprintf("Écarts mesurés contre: %s\n", c.BaseCityID))

	return b.String()
}
