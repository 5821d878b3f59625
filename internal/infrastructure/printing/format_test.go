package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"zero", decimal.Zero, "₹0.00"},
		{"nil pointer renders as zero", (*decimal.Decimal)(nil), "₹0.00"},
		{"small amount", decimal.NewFromFloat(42.5), "₹42.50"},
		{"thousands grouping", decimal.NewFromFloat(1234.56), "₹1,234.56"},
		{"millions grouping", decimal.NewFromInt(1234567), "₹1,234,567.00"},
		{"negative", decimal.NewFromFloat(-1234.56), "₹-1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.input))
		})
	}
}

func TestFormatCurrencyNilEqualsZero(t *testing.T) {
	assert.Equal(t, FormatCurrency(decimal.Zero), FormatCurrency((*decimal.Decimal)(nil)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,234.56", FormatAmount(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}

func TestFormatAmountWhole(t *testing.T) {
	tests := []struct {
		name     string
		input    decimal.Decimal
		expected string
	}{
		{"below thousand", decimal.NewFromInt(999), "999"},
		{"thousand", decimal.NewFromInt(1000), "1,000"},
		{"lakh grouping", decimal.NewFromInt(123456), "1,23,456"},
		{"indian grouping", decimal.NewFromInt(1234567), "12,34,567"},
		{"crore grouping", decimal.NewFromInt(123456789), "12,34,56,789"},
		{"rounds to whole", decimal.NewFromFloat(1234.60), "1,235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmountWhole(tt.input))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "05-03-2024", FormatDate(d))
	assert.Equal(t, "05.03.2024", FormatDateDotted(d))

	t.Run("zero time renders empty", func(t *testing.T) {
		assert.Equal(t, "", FormatDate(time.Time{}))
		assert.Equal(t, "", FormatDateDotted((*time.Time)(nil)))
	})
}
