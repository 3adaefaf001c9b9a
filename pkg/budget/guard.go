package budget

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrBudgetExceeded returned by the processor when the pre-flight gate denies a run
var ErrBudgetExceeded = errors.New("budget exceeded")

// Costs is the slice of the intelligence store the guard needs
type Costs interface {
	TotalCost(ctx context.Context, daysBack int) (float64, error)
}

// Guard enforces daily and weekly spending ceilings. It is a single
// pre-flight gate evaluated once per run, not per episode - a run already
// past the gate can overshoot by the episodes in flight. Concurrent runs
// sharing a store can jointly pass the gate, single-run scheduling is
// assumed externally.
type Guard struct {
	costs          Costs
	dailyLimitUSD  float64
	weeklyLimitUSD float64
	alertThreshold float64
}

// NewGuard creates a budget guard. alertThreshold is a fraction of the
// limit at which a non-blocking warning fires, e.g. 0.8.
func NewGuard(costs Costs, dailyLimitUSD, weeklyLimitUSD, alertThreshold float64) *Guard {
	return &Guard{
		costs:          costs,
		dailyLimitUSD:  dailyLimitUSD,
		weeklyLimitUSD: weeklyLimitUSD,
		alertThreshold: alertThreshold,
	}
}

// CanProceed checks rolling daily and weekly spend against the limits.
// Returns false with the blocking reason when a ceiling is reached, true
// with a remaining-budget message otherwise. Approaching a limit logs a
// warning but never blocks.
func (g *Guard) CanProceed(ctx context.Context) (ok bool, reason string, err error) {
	dailySpent, err := g.costs.TotalCost(ctx, 1)
	if err != nil {
		return false, "", fmt.Errorf("get daily spend: %w", err)
	}

	if dailySpent >= g.dailyLimitUSD {
		reason = fmt.Sprintf("daily limit reached: $%.2f / $%.2f", dailySpent, g.dailyLimitUSD)
		log.Printf("[ERROR] %s", reason)
		return false, reason, nil
	}

	weeklySpent, err := g.costs.TotalCost(ctx, 7)
	if err != nil {
		return false, "", fmt.Errorf("get weekly spend: %w", err)
	}

	if weeklySpent >= g.weeklyLimitUSD {
		reason = fmt.Sprintf("weekly limit reached: $%.2f / $%.2f", weeklySpent, g.weeklyLimitUSD)
		log.Printf("[ERROR] %s", reason)
		return false, reason, nil
	}

	if g.dailyLimitUSD > 0 && dailySpent/g.dailyLimitUSD >= g.alertThreshold {
		log.Printf("[WARN] approaching daily limit: $%.2f / $%.2f (%.0f%%)",
			dailySpent, g.dailyLimitUSD, dailySpent/g.dailyLimitUSD*100)
	}
	if g.weeklyLimitUSD > 0 && weeklySpent/g.weeklyLimitUSD >= g.alertThreshold {
		log.Printf("[WARN] approaching weekly limit: $%.2f / $%.2f (%.0f%%)",
			weeklySpent, g.weeklyLimitUSD, weeklySpent/g.weeklyLimitUSD*100)
	}

	log.Printf("[INFO] budget check passed, daily $%.2f / $%.2f, weekly $%.2f / $%.2f",
		dailySpent, g.dailyLimitUSD, weeklySpent, g.weeklyLimitUSD)

	reason = fmt.Sprintf("daily: $%.2f remaining, weekly: $%.2f remaining",
		g.dailyLimitUSD-dailySpent, g.weeklyLimitUSD-weeklySpent)
	return true, reason, nil
}

// Summary holds spending statistics for dashboards and reports
type Summary struct {
	TotalCost       float64 `json:"total_cost"`
	DailySpent      float64 `json:"daily_spent"`
	DailyLimit      float64 `json:"daily_limit"`
	DailyRemaining  float64 `json:"daily_remaining"`
	DailyPercent    float64 `json:"daily_percent"`
	WeeklySpent     float64 `json:"weekly_spent"`
	WeeklyLimit     float64 `json:"weekly_limit"`
	WeeklyRemaining float64 `json:"weekly_remaining"`
	WeeklyPercent   float64 `json:"weekly_percent"`
	PeriodDays      int     `json:"period_days"`
}

// SpendingSummary reports spend over the trailing daysBack window along
// with the daily/weekly limit status
func (g *Guard) SpendingSummary(ctx context.Context, daysBack int) (*Summary, error) {
	totalCost, err := g.costs.TotalCost(ctx, daysBack)
	if err != nil {
		return nil, fmt.Errorf("get period spend: %w", err)
	}
	dailySpent, err := g.costs.TotalCost(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("get daily spend: %w", err)
	}
	weeklySpent, err := g.costs.TotalCost(ctx, 7)
	if err != nil {
		return nil, fmt.Errorf("get weekly spend: %w", err)
	}

	s := &Summary{
		TotalCost:       totalCost,
		DailySpent:      dailySpent,
		DailyLimit:      g.dailyLimitUSD,
		DailyRemaining:  max(0, g.dailyLimitUSD-dailySpent),
		WeeklySpent:     weeklySpent,
		WeeklyLimit:     g.weeklyLimitUSD,
		WeeklyRemaining: max(0, g.weeklyLimitUSD-weeklySpent),
		PeriodDays:      daysBack,
	}
	if g.dailyLimitUSD > 0 {
		s.DailyPercent = dailySpent / g.dailyLimitUSD * 100
	}
	if g.weeklyLimitUSD > 0 {
		s.WeeklyPercent = weeklySpent / g.weeklyLimitUSD * 100
	}
	return s, nil
}
