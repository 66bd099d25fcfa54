package report

import (
	"testing"

	"github.com/LightDevCoder/iPurseLight/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCategoryBreakdown(t *testing.T) {
	totals := []CategoryTotal{
		{Category: "Food", Total: 150.5},
		{Category: "Transport", Total: 42},
	}
	assert.Equal(t, "Food:150.50, Transport:42.00", CategoryBreakdown(totals))
	assert.Equal(t, NoExpensesMarker, CategoryBreakdown(nil))
}

func TestBuildDigest(t *testing.T) {
	digest := BuildDigest("2025 January", 3200, 1850.25, "Food:900.00, Rent:950.25")

	assert.Equal(t,
		"Period: 2025 January\n"+
			"Total income: 3200.00\n"+
			"Total expense: 1850.25\n"+
			"Expenses by category: Food:900.00, Rent:950.25",
		digest)
}

func TestBuildDigest_NoExpenses(t *testing.T) {
	txs := []model.Transaction{{Amount: 500, Category: "Work", Channel: "Bank Card"}}

	digest := BuildDigest("2025 March",
		TotalIncome(txs),
		TotalExpense(txs),
		CategoryBreakdown(SumByCategory(txs)))

	assert.Contains(t, digest, "Total income: 500.00")
	assert.Contains(t, digest, "Total expense: 0.00")
	assert.Contains(t, digest, NoExpensesMarker)
}
