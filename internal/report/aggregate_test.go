package report

import (
	"testing"

	"github.com/LightDevCoder/iPurseLight/internal/model"
	"github.com/stretchr/testify/assert"
)

func tx(amount float64, category, channel string) model.Transaction {
	return model.Transaction{Amount: amount, Category: category, Channel: channel}
}

func TestSumByChannel(t *testing.T) {
	tests := []struct {
		name string
		txs  []model.Transaction
		sign Sign
		want []ChannelTotal
	}{
		{
			name: "expenses grouped and sorted descending",
			txs: []model.Transaction{
				tx(-30, "Food", "A"),
				tx(-20, "Food", "B"),
				tx(-30, "Transport", "A"),
			},
			sign: SignExpense,
			want: []ChannelTotal{{Channel: "A", Total: 60}, {Channel: "B", Total: 20}},
		},
		{
			name: "income view ignores expenses",
			txs: []model.Transaction{
				tx(-30, "Food", "WeChat"),
				tx(100, "Work", "Bank Card"),
				tx(50, "Work", "WeChat"),
			},
			sign: SignIncome,
			want: []ChannelTotal{{Channel: "Bank Card", Total: 100}, {Channel: "WeChat", Total: 50}},
		},
		{
			name: "zero amounts excluded from both views",
			txs: []model.Transaction{
				tx(0, "Food", "Cash"),
			},
			sign: SignExpense,
			want: []ChannelTotal{},
		},
		{
			name: "ties keep first-encountered channel order",
			txs: []model.Transaction{
				tx(-10, "Food", "Cash"),
				tx(-10, "Food", "Alipay"),
			},
			sign: SignExpense,
			want: []ChannelTotal{{Channel: "Cash", Total: 10}, {Channel: "Alipay", Total: 10}},
		},
		{
			name: "channel match is case-sensitive",
			txs: []model.Transaction{
				tx(-10, "Food", "cash"),
				tx(-5, "Food", "Cash"),
			},
			sign: SignExpense,
			want: []ChannelTotal{{Channel: "cash", Total: 10}, {Channel: "Cash", Total: 5}},
		},
		{
			name: "empty input",
			txs:  nil,
			sign: SignExpense,
			want: []ChannelTotal{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SumByChannel(tt.txs, tt.sign)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSumByChannel_SumsToTotalExpense(t *testing.T) {
	txs := []model.Transaction{
		tx(-30, "Food", "A"),
		tx(-20, "Food", "B"),
		tx(-12.5, "Transport", "C"),
		tx(99, "Work", "A"),
		tx(0, "Food", "A"),
	}

	var channelSum float64
	for _, ct := range SumByChannel(txs, SignExpense) {
		channelSum += ct.Total
	}
	assert.InDelta(t, TotalExpense(txs), channelSum, 1e-9)
}

func TestTotals(t *testing.T) {
	txs := []model.Transaction{
		tx(-30, "Food", "A"),
		tx(-20, "Rent", "B"),
		tx(100, "Work", "A"),
		tx(0, "Food", "A"),
	}

	assert.InDelta(t, 50, TotalExpense(txs), 1e-9)
	assert.InDelta(t, 100, TotalIncome(txs), 1e-9)

	// Income minus expense equals the signed sum of all non-zero amounts.
	var signed float64
	for _, txn := range txs {
		signed += txn.Amount
	}
	assert.InDelta(t, signed, TotalIncome(txs)-TotalExpense(txs), 1e-9)
}

func TestTotals_Empty(t *testing.T) {
	assert.Zero(t, TotalExpense(nil))
	assert.Zero(t, TotalIncome(nil))
	assert.Empty(t, SumByChannel(nil, SignExpense))
	assert.Equal(t, NoExpensesMarker, CategoryBreakdown(SumByCategory(nil)))
}

func TestSumByCategory(t *testing.T) {
	txs := []model.Transaction{
		tx(-30, "Food", "A"),
		tx(-45, "Rent", "B"),
		tx(-15, "Food", "C"),
		tx(200, "Work", "A"), // income excluded
	}

	got := SumByCategory(txs)
	// Equal totals keep first-encountered order.
	assert.Equal(t, []CategoryTotal{
		{Category: "Food", Total: 45},
		{Category: "Rent", Total: 45},
	}, got)
}
