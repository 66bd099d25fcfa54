package valuation

import (
	"time"

	"github.com/LightDevCoder/iPurseLight/internal/model"
)

// TotalGain is the realized gain plus interest accrued since the last
// principal update. The realized gain may be negative; no floor applies.
func TotalGain(a *model.Asset, now time.Time) float64 {
	return a.RealizedGain + AccruedInterest(a.Principal, a.AnnualRatePercent, a.LastPrincipalUpdate, now)
}

// CurrentValue is the principal plus total gain. A sufficiently negative
// realized gain makes the current value negative; that is preserved,
// not clamped.
func CurrentValue(a *model.Asset, now time.Time) float64 {
	return a.Principal + TotalGain(a, now)
}

// AssetDailyIncome is the projected daily yield for the asset.
func AssetDailyIncome(a *model.Asset) float64 {
	return DailyIncome(a.Principal, a.AnnualRatePercent)
}

// PortfolioTotal sums the current value of the given assets at a single
// shared evaluation time.
func PortfolioTotal(assets []model.Asset, now time.Time) float64 {
	var total float64
	for i := range assets {
		total += CurrentValue(&assets[i], now)
	}
	return total
}
