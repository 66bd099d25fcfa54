package model

import "time"

// Asset is a tracked holding whose principal may accrue simple interest.
// The derived value fields (accrued interest, total gain, current value,
// daily income) are pure functions of this snapshot plus a caller-supplied
// "now" and live in the valuation package; they are never persisted.
type Asset struct {
	LastPrincipalUpdate time.Time
	ID                  string
	Name                string
	Category            string
	Note                string
	Principal           float64 // Base amount subject to yield, never negative
	RealizedGain        float64 // Historical profit, may be negative, no further accrual
	AnnualRatePercent   float64 // 0 means no accrual
}

// Portfolio is a named, non-exclusive grouping of assets used for
// reporting. It references assets by ID; deleting a portfolio must not
// delete or orphan its members.
type Portfolio struct {
	CreatedAt time.Time
	ID        string
	Name      string
	AssetIDs  []string
}
