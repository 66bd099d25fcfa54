// Package report groups transactions into reporting views: channel and
// category breakdowns, period filters, and the plain-text digest handed
// to the AI advisor. All functions are pure over their inputs.
package report

import (
	"math"
	"sort"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// Sign selects which side of the ledger an aggregation covers.
type Sign int

// Aggregation signs. Zero-amount transactions match neither.
const (
	SignExpense Sign = iota
	SignIncome
)

// ChannelTotal is one row of a channel breakdown.
type ChannelTotal struct {
	Channel string
	Total   float64 // Absolute amount
}

// CategoryTotal is one row of an expense category breakdown.
type CategoryTotal struct {
	Category string
	Total    float64 // Absolute amount
}

func matches(sign Sign, amount float64) bool {
	if sign == SignExpense {
		return amount < 0
	}
	return amount > 0
}

// SumByChannel groups the transactions matching sign by exact channel
// string and returns absolute totals sorted descending. Ties keep the
// order in which the channel was first encountered.
func SumByChannel(txs []model.Transaction, sign Sign) []ChannelTotal {
	totals := make(map[string]float64)
	var order []string

	for i := range txs {
		if !matches(sign, txs[i].Amount) {
			continue
		}
		ch := txs[i].Channel
		if _, seen := totals[ch]; !seen {
			order = append(order, ch)
		}
		totals[ch] += math.Abs(txs[i].Amount)
	}

	out := make([]ChannelTotal, 0, len(order))
	for _, ch := range order {
		out = append(out, ChannelTotal{Channel: ch, Total: totals[ch]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// SumByCategory groups expense transactions by exact category string and
// returns absolute totals sorted descending, first-encountered tie order.
func SumByCategory(txs []model.Transaction) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	for i := range txs {
		if txs[i].Amount >= 0 {
			continue
		}
		cat := txs[i].Category
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] += math.Abs(txs[i].Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// TotalExpense returns the absolute sum of all negative amounts.
func TotalExpense(txs []model.Transaction) float64 {
	var total float64
	for i := range txs {
		if txs[i].Amount < 0 {
			total += math.Abs(txs[i].Amount)
		}
	}
	return total
}

// TotalIncome returns the sum of all positive amounts.
func TotalIncome(txs []model.Transaction) float64 {
	var total float64
	for i := range txs {
		if txs[i].Amount > 0 {
			total += txs[i].Amount
		}
	}
	return total
}
