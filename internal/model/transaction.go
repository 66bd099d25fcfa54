// Package model defines the core entities tracked by the application.
package model

import (
	"fmt"
	"time"
)

// Kind classifies a transaction as money in or money out. It is always
// derived from the sign of the amount; it is never stored independently.
type Kind string

// Transaction kinds.
const (
	KindExpense Kind = "Expense"
	KindIncome  Kind = "Income"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	Date     time.Time
	ID       string
	Category string // Free-text label, user- or AI-assigned
	Channel  string // Free-text payment channel, user- or AI-assigned
	Note     string
	Amount   float64 // Negative = expense, positive = income
}

// KindOf derives the transaction kind from a signed amount. A zero amount
// carries no sign and cannot be classified.
func KindOf(amount float64) (Kind, error) {
	switch {
	case amount < 0:
		return KindExpense, nil
	case amount > 0:
		return KindIncome, nil
	default:
		return "", fmt.Errorf("zero amount cannot be classified as income or expense")
	}
}

// Kind returns the derived kind of this transaction.
func (t *Transaction) Kind() (Kind, error) {
	return KindOf(t.Amount)
}

// Year returns the calendar year of the transaction evaluated in loc.
func (t *Transaction) Year(loc *time.Location) int {
	return t.Date.In(loc).Year()
}

// Month returns the calendar month of the transaction evaluated in loc.
func (t *Transaction) Month(loc *time.Location) time.Month {
	return t.Date.In(loc).Month()
}
