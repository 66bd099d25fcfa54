package valuation

import (
	"testing"
	"time"
)

func TestAccruedInterest(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		lastUpdate time.Time
		name       string
		principal  float64
		rate       float64
		want       float64
	}{
		{
			name:       "100 days at 3.65 percent",
			principal:  1000,
			rate:       3.65,
			lastUpdate: now.AddDate(0, 0, -100),
			want:       10.00,
		},
		{
			name:       "zero rate accrues nothing",
			principal:  500,
			rate:       0,
			lastUpdate: now.AddDate(0, 0, -1000),
			want:       0,
		},
		{
			name:       "negative rate accrues nothing",
			principal:  500,
			rate:       -2,
			lastUpdate: now.AddDate(0, 0, -30),
			want:       0,
		},
		{
			name:       "future-dated last update never goes negative",
			principal:  1000,
			rate:       5,
			lastUpdate: now.AddDate(0, 0, 10),
			want:       0,
		},
		{
			name:       "last update equal to now",
			principal:  1000,
			rate:       5,
			lastUpdate: now,
			want:       0,
		},
		{
			name:       "fractional days count",
			principal:  1000,
			rate:       3.65,
			lastUpdate: now.Add(-12 * time.Hour),
			want:       1000 * 0.0365 * (0.5 / 365.0),
		},
		{
			name:       "zero principal",
			principal:  0,
			rate:       5,
			lastUpdate: now.AddDate(0, 0, -100),
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccruedInterest(tt.principal, tt.rate, tt.lastUpdate, now)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("AccruedInterest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccruedInterest_Monotonic(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// Non-decreasing in elapsed days.
	prev := 0.0
	for days := 0; days <= 400; days += 7 {
		got := AccruedInterest(1000, 4.2, now.AddDate(0, 0, -days), now)
		if got < prev {
			t.Fatalf("interest decreased at %d days: %v < %v", days, got, prev)
		}
		prev = got
	}

	// Non-decreasing in rate.
	prev = 0.0
	last := now.AddDate(0, 0, -90)
	for rate := 0.0; rate <= 10.0; rate += 0.5 {
		got := AccruedInterest(1000, rate, last, now)
		if got < prev {
			t.Fatalf("interest decreased at rate %v: %v < %v", rate, got, prev)
		}
		prev = got
	}
}

func TestAccruedInterest_Idempotent(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	last := now.AddDate(0, 0, -45)

	first := AccruedInterest(2500, 2.8, last, now)
	second := AccruedInterest(2500, 2.8, last, now)
	if first != second {
		t.Errorf("identical inputs produced different results: %v vs %v", first, second)
	}
}

func TestDailyIncome(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		want      float64
	}{
		{name: "positive rate", principal: 3650, rate: 10, want: 1.0},
		{name: "zero rate", principal: 500, rate: 0, want: 0},
		{name: "negative rate", principal: 500, rate: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyIncome(tt.principal, tt.rate)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("DailyIncome() = %v, want %v", got, tt.want)
			}
		})
	}
}
