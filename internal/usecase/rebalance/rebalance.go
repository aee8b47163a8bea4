package rebalance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthdash/internal/domain"
)

// Plan is the split of one contribution across categories
type Plan struct {
	Contribution  decimal.Decimal
	Contributions map[domain.Category]decimal.Decimal
	After         map[domain.Category]decimal.Decimal
}

// CalculatePlan splits a contribution to move holdings towards target weights
// Logic:
//  1. Target value per category = (current total + contribution) * weight
//  2. Gap = target - current; only positive gaps (under-allocated) receive money
//  3. Each under-allocated category gets contribution * gap / sum(positive gaps)
//  4. Any rounding leftover goes to the category with the largest share
//
// Safety: Ensures the planned contributions sum to the contribution exactly
func CalculatePlan(current, targets map[domain.Category]decimal.Decimal, contribution decimal.Decimal) (*Plan, error) {
	if !contribution.IsPositive() {
		return nil, errors.New("contribution must be positive")
	}

	if err := validateTargets(current, targets); err != nil {
		return nil, err
	}

	categories := sortedCategories(targets)

	total := contribution
	for _, v := range current {
		total = total.Add(v)
	}

	gaps := make(map[domain.Category]decimal.Decimal)
	positiveGaps := decimal.Zero
	for _, c := range categories {
		gap := total.Mul(targets[c]).Sub(current[c])
		if gap.IsPositive() {
			gaps[c] = gap
			positiveGaps = positiveGaps.Add(gap)
		}
	}

	// Gaps sum to the contribution, so at least one is positive
	shares := make(map[domain.Category]decimal.Decimal, len(gaps))
	for c, gap := range gaps {
		shares[c] = gap.Div(positiveGaps)
	}

	plan := &Plan{
		Contribution:  contribution,
		Contributions: make(map[domain.Category]decimal.Decimal),
		After:         make(map[domain.Category]decimal.Decimal),
	}

	allocated := decimal.Zero
	var largest domain.Category
	for _, c := range categories {
		share, ok := shares[c]
		if !ok {
			plan.Contributions[c] = decimal.Zero
			continue
		}
		amount := contribution.Mul(share)
		plan.Contributions[c] = amount
		allocated = allocated.Add(amount)
		if largest == "" || share.GreaterThan(shares[largest]) {
			largest = c
		}
	}

	// Assign the leftover from decimal division
	if leftover := contribution.Sub(allocated); !leftover.IsZero() {
		plan.Contributions[largest] = plan.Contributions[largest].Add(leftover)
	}

	for _, c := range categories {
		plan.After[c] = current[c].Add(plan.Contributions[c])
	}

	return plan, nil
}

// Simulate applies a sequence of contributions, feeding each plan's holdings into the next
func Simulate(current, targets map[domain.Category]decimal.Decimal, contributions []decimal.Decimal) ([]*Plan, error) {
	holdings := make(map[domain.Category]decimal.Decimal, len(current))
	for c, v := range current {
		holdings[c] = v
	}

	plans := make([]*Plan, 0, len(contributions))
	for i, contribution := range contributions {
		plan, err := CalculatePlan(holdings, targets, contribution)
		if err != nil {
			return nil, fmt.Errorf("contribution %d: %w", i+1, err)
		}
		plans = append(plans, plan)
		holdings = plan.After
	}

	return plans, nil
}

func validateTargets(current, targets map[domain.Category]decimal.Decimal) error {
	if len(targets) == 0 {
		return errors.New("targets cannot be empty")
	}

	sum := decimal.Zero
	for c, w := range targets {
		if w.IsNegative() {
			return fmt.Errorf("target weight for %s must be non-negative", c)
		}
		sum = sum.Add(w)
	}
	if !sum.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("target weights must sum to 1, got %s", sum)
	}

	for c, v := range current {
		if _, ok := targets[c]; !ok {
			return fmt.Errorf("current holding %s has no target weight", c)
		}
		if v.IsNegative() {
			return fmt.Errorf("%w: current holding %s is negative", domain.ErrInvalidAsset, c)
		}
	}

	return nil
}

func sortedCategories(m map[domain.Category]decimal.Decimal) []domain.Category {
	out := make([]domain.Category, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
