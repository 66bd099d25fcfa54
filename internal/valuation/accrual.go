// Package valuation computes the derived value of assets: time-based
// simple interest on the principal, realized gains, and projections.
// Every function is a pure computation over its inputs plus an explicit
// "now"; nothing here caches, persists, or touches shared state, so the
// package is safe to call from any goroutine.
package valuation

import "time"

// hoursPerDay and daysPerYear fix the accrual calendar: fractional days
// count, and a year is always 365 days with no leap adjustment.
const (
	hoursPerDay = 24.0
	daysPerYear = 365.0
)

// AccruedInterest returns the simple interest accrued on principal since
// lastUpdate, evaluated at now. A non-positive rate accrues nothing, and
// a lastUpdate at or after now yields zero rather than negative interest.
func AccruedInterest(principal, annualRatePercent float64, lastUpdate, now time.Time) float64 {
	if annualRatePercent <= 0 {
		return 0
	}
	days := now.Sub(lastUpdate).Hours() / hoursPerDay
	if days <= 0 {
		return 0
	}
	return principal * (annualRatePercent / 100.0) * (days / daysPerYear)
}

// DailyIncome returns the projected yield per day at the current rate.
// It is a projection independent of elapsed time, not an accrual.
func DailyIncome(principal, annualRatePercent float64) float64 {
	if annualRatePercent <= 0 {
		return 0
	}
	return principal * (annualRatePercent / 100.0) / daysPerYear
}
