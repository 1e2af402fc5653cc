package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcfin/qcsim/internal/calculation"
	"github.com/qcfin/qcsim/internal/config"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"Zero", decimal.Zero, "0,00 $"},
		{"Cents only", decimal.NewFromFloat(0.5), "0,50 $"},
		{"No grouping under a thousand", decimal.NewFromFloat(999.99), "999,99 $"},
		{"One group", decimal.NewFromFloat(1234.56), "1 234,56 $"},
		{"Two groups", decimal.NewFromFloat(1234567.89), "1 234 567,89 $"},
		{"Exact thousand", decimal.NewFromInt(1000), "1 000,00 $"},
		{"Negative", decimal.NewFromFloat(-319.41), "-319,41 $"},
		{"Negative grouped", decimal.NewFromFloat(-45123.07), "-45 123,07 $"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "27,93 %", FormatPercent(decimal.NewFromFloat(27.93)))
	assert.Equal(t, "0,00 %", FormatPercent(decimal.Zero))
	assert.Equal(t, "-5,20 %", FormatPercent(decimal.NewFromFloat(-5.2)))
}

func TestGetRendererByName(t *testing.T) {
	assert.Equal(t, "console", GetRendererByName("console").Name())
	assert.Equal(t, "console", GetRendererByName("").Name())
	assert.Equal(t, "json", GetRendererByName("json").Name())
	assert.Equal(t, "csv", GetRendererByName("csv").Name())
	assert.Nil(t, GetRendererByName("pdf"))
}

func TestRenderersRejectNilResult(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		_, err := GetRendererByName(name).Render(nil)
		assert.Error(t, err, "renderer %s should reject nil", name)
	}
}

func TestRenderSimulation(t *testing.T) {
	engine := calculation.NewEngine(config.DefaultParameters())
	result := engine.Simulate(calculation.SimulationInput{
		GrossSalary: decimal.NewFromInt(75000),
		CityID:      "montreal",
	})
	require.NotNil(t, result)

	t.Run("console", func(t *testing.T) {
		data, err := (ConsoleRenderer{}).Render(result)
		require.NoError(t, err)
		text := string(data)
		assert.Contains(t, text, "Montréal")
		assert.Contains(t, text, "Salaire brut annuel")
		assert.Contains(t, text, "75 000,00 $")
		assert.Contains(t, text, "Santé financière")
	})

	t.Run("json", func(t *testing.T) {
		data, err := (JSONRenderer{}).Render(result)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "tax")
		assert.Contains(t, decoded, "disposable_income")
	})

	t.Run("csv", func(t *testing.T) {
		data, err := (CSVRenderer{}).Render(result)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, "metric,value", lines[0])
		assert.Contains(t, string(data), "net_annual")
		assert.Contains(t, string(data), "financial_health")
	})
}
