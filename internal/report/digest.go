package report

import (
	"fmt"
	"strings"
)

// NoExpensesMarker is emitted in place of an empty category breakdown so
// the digest never contains a blank field.
const NoExpensesMarker = "no expenses"

// CategoryBreakdown renders expense totals per category as a single
// comma-separated line, or the explicit marker when there are none.
func CategoryBreakdown(totals []CategoryTotal) string {
	if len(totals) == 0 {
		return NoExpensesMarker
	}

	parts := make([]string, 0, len(totals))
	for _, ct := range totals {
		parts = append(parts, fmt.Sprintf("%s:%.2f", ct.Category, ct.Total))
	}
	return strings.Join(parts, ", ")
}

// BuildDigest assembles the plain-text summary of a reporting window.
// This text is the entire payload handed to the AI advisor; nothing else
// crosses that boundary.
func BuildDigest(windowLabel string, totalIncome, totalExpense float64, categoryBreakdown string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Period: %s\n", windowLabel)
	fmt.Fprintf(&b, "Total income: %.2f\n", totalIncome)
	fmt.Fprintf(&b, "Total expense: %.2f\n", totalExpense)
	fmt.Fprintf(&b, "Expenses by category: %s", categoryBreakdown)
	return b.String()
}
