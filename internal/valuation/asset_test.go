package valuation

import (
	"testing"
	"time"

	"github.com/LightDevCoder/iPurseLight/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCurrentValue(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		asset model.Asset
		want  float64
	}{
		{
			name: "principal plus realized gain plus accrual",
			asset: model.Asset{
				Principal:           1000,
				RealizedGain:        50,
				AnnualRatePercent:   3.65,
				LastPrincipalUpdate: now.AddDate(0, 0, -100),
			},
			want: 1000 + 50 + 10,
		},
		{
			name: "no rate means value is static",
			asset: model.Asset{
				Principal:           500,
				RealizedGain:        25,
				LastPrincipalUpdate: now.AddDate(0, 0, -900),
			},
			want: 525,
		},
		{
			name: "fully liquidated asset with tracked loss",
			asset: model.Asset{
				Principal:           0,
				RealizedGain:        -120.5,
				AnnualRatePercent:   5,
				LastPrincipalUpdate: now.AddDate(0, 0, -10),
			},
			want: -120.5,
		},
		{
			name: "loss larger than principal goes negative",
			asset: model.Asset{
				Principal:           100,
				RealizedGain:        -300,
				LastPrincipalUpdate: now,
			},
			want: -200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CurrentValue(&tt.asset, now), 1e-9)
		})
	}
}

func TestCurrentValue_Decomposition(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	a := model.Asset{
		Principal:           1234.56,
		RealizedGain:        -42,
		AnnualRatePercent:   2.4,
		LastPrincipalUpdate: now.AddDate(0, 0, -33),
	}

	interest := AccruedInterest(a.Principal, a.AnnualRatePercent, a.LastPrincipalUpdate, now)
	assert.Equal(t, a.Principal+a.RealizedGain+interest, CurrentValue(&a, now))
	assert.Equal(t, a.RealizedGain+interest, TotalGain(&a, now))
}

func TestPortfolioTotal(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assets := []model.Asset{
		{Principal: 1000, RealizedGain: 0, AnnualRatePercent: 3.65, LastPrincipalUpdate: now.AddDate(0, 0, -100)},
		{Principal: 500, RealizedGain: 20, LastPrincipalUpdate: now},
	}

	assert.InDelta(t, 1010+520, PortfolioTotal(assets, now), 1e-9)
	assert.Zero(t, PortfolioTotal(nil, now))
}

func TestAssetDailyIncome(t *testing.T) {
	a := model.Asset{Principal: 3650, AnnualRatePercent: 10}
	assert.InDelta(t, 1.0, AssetDailyIncome(&a), 1e-9)

	flat := model.Asset{Principal: 3650}
	assert.Zero(t, AssetDailyIncome(&flat))
}
