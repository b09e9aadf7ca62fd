package salaryslip

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nexhr/hr-panel-go/internal/domain/salaryslip"
)

// Totals holds the computed money fields of a slip.
type Totals struct {
	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// ComputeTotals sums both sides of the slip. Net salary is floored at
// zero; deductions never push a slip negative.
func ComputeTotals(earnings, deductions []salaryslip.LineItem) Totals {
	sum := func(items []salaryslip.LineItem) decimal.Decimal {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Amount)
		}
		return total
	}

	t := Totals{
		TotalEarnings:   sum(earnings),
		TotalDeductions: sum(deductions),
	}

	t.NetSalary = t.TotalEarnings.Sub(t.TotalDeductions)
	if t.NetSalary.IsNegative() {
		t.NetSalary = decimal.Zero
	}
	return t
}

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountToWords spells a rupee amount using Indian grouping: crore,
// lakh, thousand, hundred. Paise are rounded to the nearest rupee.
func AmountToWords(amount decimal.Decimal) string {
	rupees := amount.Round(0).IntPart()
	if rupees < 0 {
		rupees = 0
	}
	if rupees == 0 {
		return "Zero"
	}

	var parts []string
	appendGroup := func(n int64, label string) {
		if n == 0 {
			return
		}
		words := belowThousand(n)
		if label != "" {
			words += " " + label
		}
		parts = append(parts, words)
	}

	appendGroup(rupees/10000000, "Crore")
	rupees %= 10000000
	appendGroup(rupees/100000, "Lakh")
	rupees %= 100000
	appendGroup(rupees/1000, "Thousand")
	rupees %= 1000
	appendGroup(rupees, "")

	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}
	if n >= 20 {
		if n%10 != 0 {
			parts = append(parts, tensWords[n/10]+" "+onesWords[n%10])
		} else {
			parts = append(parts, tensWords[n/10])
		}
	} else if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}

// FormatINR renders an amount with the rupee sign and Indian digit
// grouping: the last three digits, then groups of two (12,34,567).
// Whole amounts drop the fractional part.
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	neg := rounded.IsNegative()
	abs := rounded.Abs()

	intPart := abs.IntPart()
	frac := abs.Sub(decimal.NewFromInt(intPart))

	grouped := groupIndian(intPart)
	out := "₹" + grouped
	if !frac.IsZero() {
		out += strings.TrimPrefix(frac.StringFixed(2), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
