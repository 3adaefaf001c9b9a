package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedCosts returns canned spend per window
type fixedCosts struct {
	daily  float64
	weekly float64
	total  float64
	err    error
}

func (f *fixedCosts) TotalCost(_ context.Context, daysBack int) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	switch daysBack {
	case 1:
		return f.daily, nil
	case 7:
		return f.weekly, nil
	default:
		return f.total, nil
	}
}

func TestGuard_CanProceed(t *testing.T) {
	tests := []struct {
		name       string
		daily      float64
		weekly     float64
		expectOK   bool
		wantReason string
	}{
		{"well under limits", 1.00, 3.00, true, "daily: $4.00 remaining, weekly: $17.00 remaining"},
		{"daily limit reached", 5.00, 5.00, false, "daily limit reached: $5.00 / $5.00"},
		{"daily limit exceeded", 6.50, 6.50, false, "daily limit reached: $6.50 / $5.00"},
		{"weekly limit reached", 2.00, 20.00, false, "weekly limit reached: $20.00 / $20.00"},
		{"at alert threshold but allowed", 4.00, 10.00, true, "daily: $1.00 remaining, weekly: $10.00 remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(&fixedCosts{daily: tt.daily, weekly: tt.weekly}, 5.00, 20.00, 0.8)

			ok, reason, err := g.CanProceed(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestGuard_CanProceedDailyCheckedFirst(t *testing.T) {
	// both limits blown, the daily reason wins
	g := NewGuard(&fixedCosts{daily: 10.00, weekly: 30.00}, 5.00, 20.00, 0.8)

	ok, reason, err := g.CanProceed(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "daily limit reached: $10.00 / $5.00", reason)
}

func TestGuard_CanProceedStoreError(t *testing.T) {
	g := NewGuard(&fixedCosts{err: errors.New("db down")}, 5.00, 20.00, 0.8)

	_, _, err := g.CanProceed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestGuard_SpendingSummary(t *testing.T) {
	g := NewGuard(&fixedCosts{daily: 2.00, weekly: 10.00, total: 15.00}, 5.00, 20.00, 0.8)

	s, err := g.SpendingSummary(context.Background(), 30)
	require.NoError(t, err)

	assert.InEpsilon(t, 15.00, s.TotalCost, 0.0001)
	assert.InEpsilon(t, 2.00, s.DailySpent, 0.0001)
	assert.InEpsilon(t, 3.00, s.DailyRemaining, 0.0001)
	assert.InEpsilon(t, 40.0, s.DailyPercent, 0.0001)
	assert.InEpsilon(t, 10.00, s.WeeklySpent, 0.0001)
	assert.InEpsilon(t, 10.00, s.WeeklyRemaining, 0.0001)
	assert.InEpsilon(t, 50.0, s.WeeklyPercent, 0.0001)
	assert.Equal(t, 30, s.PeriodDays)
}

func TestGuard_SpendingSummaryOverspent(t *testing.T) {
	g := NewGuard(&fixedCosts{daily: 7.00, weekly: 25.00, total: 25.00}, 5.00, 20.00, 0.8)

	s, err := g.SpendingSummary(context.Background(), 7)
	require.NoError(t, err)

	assert.Zero(t, s.DailyRemaining, "remaining never negative")
	assert.Zero(t, s.WeeklyRemaining)
	assert.InEpsilon(t, 140.0, s.DailyPercent, 0.0001)
}
