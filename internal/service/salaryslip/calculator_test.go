package salaryslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nexhr/hr-panel-go/internal/domain/salaryslip"
)

func items(amounts ...float64) []salaryslip.LineItem {
	out := make([]salaryslip.LineItem, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, salaryslip.LineItem{
			Description: "item",
			Amount:      decimal.NewFromFloat(a),
		})
	}
	return out
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(items(30000, 5000, 1200.50), items(1800, 200.50))

	assert.True(t, got.TotalEarnings.Equal(decimal.NewFromFloat(36200.50)), "earnings = %s", got.TotalEarnings)
	assert.True(t, got.TotalDeductions.Equal(decimal.NewFromFloat(2000.50)), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetSalary.Equal(decimal.NewFromInt(34200)), "net = %s", got.NetSalary)
}

func TestComputeTotals_NetFlooredAtZero(t *testing.T) {
	got := ComputeTotals(items(500), items(800))

	assert.True(t, got.TotalEarnings.Equal(decimal.NewFromInt(500)))
	assert.True(t, got.TotalDeductions.Equal(decimal.NewFromInt(800)))
	assert.True(t, got.NetSalary.IsZero(), "net must not go negative, got %s", got.NetSalary)
}

func TestComputeTotals_Empty(t *testing.T) {
	got := ComputeTotals(nil, nil)

	assert.True(t, got.TotalEarnings.IsZero())
	assert.True(t, got.TotalDeductions.IsZero())
	assert.True(t, got.NetSalary.IsZero())
}

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero"},
		{1, "One"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{118, "One Hundred Eighteen"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{25000, "Twenty Five Thousand"},
		{100000, "One Lakh"},
		{250500, "Two Lakh Fifty Thousand Five Hundred"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountToWords(decimal.NewFromFloat(tt.amount)))
		})
	}
}

func TestAmountToWords_RoundsPaise(t *testing.T) {
	assert.Equal(t, "Forty Six", AmountToWords(decimal.NewFromFloat(45.60)))
	assert.Equal(t, "Forty Five", AmountToWords(decimal.NewFromFloat(45.40)))
}

func TestAmountToWords_Idempotent(t *testing.T) {
	amount := decimal.NewFromInt(34200)
	first := AmountToWords(amount)
	second := AmountToWords(amount)

	assert.Equal(t, first, second)
	assert.Equal(t, "Thirty Four Thousand Two Hundred", first)
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{500, "₹500"},
		{1000, "₹1,000"},
		{25000, "₹25,000"},
		{100000, "₹1,00,000"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{34200.50, "₹34,200.50"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(decimal.NewFromFloat(tt.amount)))
		})
	}
}
