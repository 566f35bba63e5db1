package planner

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roamhq/roam-backend/internal/domain"
)

// Tier classifies spend against budget for display purposes.
type Tier string

const (
	TierOK   Tier = "ok"   // at or under 75% of budget
	TierWarn Tier = "warn" // over 75%, at or under 100%
	TierOver Tier = "over" // over budget
)

// Summary is the derived budget view for one trip.
// PercentSpent is unclamped (it can exceed 100 when over budget);
// DisplayRatio is the same value clamped to [0,100] for progress bars.
type Summary struct {
	TotalSpent   int64   `json:"total_spent"`
	PercentSpent float64 `json:"percent_spent"`
	DisplayRatio float64 `json:"display_ratio"`
	Tier         Tier    `json:"tier"`
}

// TotalSpent sums expense amounts in minor units. Empty input yields 0.
func TotalSpent(expenses []domain.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// PercentSpent returns spend as a percentage of budget.
// A zero or negative budget always yields 0 — an absent budget never
// produces a ratio, which also keeps division by zero impossible.
// The result is not clamped; over-budget trips exceed 100.
func PercentSpent(totalSpent, budget int64) float64 {
	if budget <= 0 {
		return 0
	}
	return float64(totalSpent) / float64(budget) * 100
}

// TierFor classifies an unclamped percentage into a display tier.
func TierFor(percent float64) Tier {
	switch {
	case percent > 100:
		return TierOver
	case percent > 75:
		return TierWarn
	}
	return TierOK
}

// DisplayRatio clamps an unclamped percentage into [0,100] for rendering.
func DisplayRatio(percent float64) float64 {
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// Summarize computes the full budget summary for one trip's expenses.
func Summarize(budget int64, expenses []domain.Expense) Summary {
	total := TotalSpent(expenses)
	percent := PercentSpent(total, budget)
	return Summary{
		TotalSpent:   total,
		PercentSpent: percent,
		DisplayRatio: DisplayRatio(percent),
		Tier:         TierFor(percent),
	}
}

// ParseAmount converts a user-entered decimal amount in major units
// ("42.5") into integer minor units (4250). Rounding is half away from
// zero. Non-numeric or negative input fails with domain.ErrInvalidAmount.
func ParseAmount(input string) (int64, error) {
	d, err := decimal.NewFromString(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, input)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", domain.ErrInvalidAmount, input)
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
