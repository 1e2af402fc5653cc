package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a monetary amount in French-Canadian form:
// "48 123,45 $". Thousands groups are separated by spaces and the
// decimal separator is a comma.
func FormatCurrency(amount decimal.Decimal) string {
	return formatNumber(amount) + " $"
}

// FormatPercent renders a percentage in French-Canadian form:
// "27,93 %".
func FormatPercent(rate decimal.Decimal) string {
	return formatNumber(rate) + " %"
}

func formatNumber(v decimal.Decimal) string {
	s := v.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	if rem > len(intPart) {
		rem = len(intPart)
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(' ')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
