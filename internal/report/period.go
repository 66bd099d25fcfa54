package report

import (
	"sort"
	"time"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// SelectMonth returns the transactions whose timestamp falls in the given
// year and month when evaluated in loc. The location is an explicit input:
// the same data produces different buckets in different zones, and the
// caller decides which zone a view is rendered in.
func SelectMonth(txs []model.Transaction, year int, month time.Month, loc *time.Location) []model.Transaction {
	var out []model.Transaction
	for i := range txs {
		d := txs[i].Date.In(loc)
		if d.Year() == year && d.Month() == month {
			out = append(out, txs[i])
		}
	}
	return out
}

// SelectYear returns the transactions whose timestamp falls in the given
// year when evaluated in loc.
func SelectYear(txs []model.Transaction, year int, loc *time.Location) []model.Transaction {
	var out []model.Transaction
	for i := range txs {
		if txs[i].Date.In(loc).Year() == year {
			out = append(out, txs[i])
		}
	}
	return out
}

// AvailableYears returns the distinct years present in txs, descending.
// An empty transaction set falls back to the current year in loc so a
// selector always has at least one entry.
func AvailableYears(txs []model.Transaction, loc *time.Location, now time.Time) []int {
	if len(txs) == 0 {
		return []int{now.In(loc).Year()}
	}

	seen := make(map[int]struct{})
	var years []int
	for i := range txs {
		y := txs[i].Date.In(loc).Year()
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
