package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthdash/internal/csvimport"
	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/usecase/rebalance"
)

type planCmd struct {
	source      sourceFlags
	render      renderFlags
	targets     string
	contributes string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "split contributions to move towards target weights" }
func (*planCmd) Usage() string {
	return `wealthctl plan -targets stocks=0.6,crypto=0.4 -contribute 500[,500...] [-file holdings.csv]

  Splits each contribution across categories, feeding the holdings after
  one contribution into the next.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	c.source.register(f)
	c.render.register(f)
	f.StringVar(&c.targets, "targets", "", "comma separated category=weight pairs summing to 1")
	f.StringVar(&c.contributes, "contribute", "", "comma separated contribution amounts")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.render.validate(); err != nil {
		return usageError(err)
	}

	targets, err := parseTargets(c.targets)
	if err != nil {
		return usageError(err)
	}

	contributions, err := parseAmounts(c.contributes)
	if err != nil {
		return usageError(err)
	}

	assets, err := csvimport.LoadFiles(c.source.file, "")
	if err != nil {
		return fail(err)
	}
	if err := domain.ValidateAssets(assets); err != nil {
		return fail(err)
	}

	current := make(map[domain.Category]decimal.Decimal)
	for _, a := range assets {
		current[a.Category] = current[a.Category].Add(a.Value)
	}

	plans, err := rebalance.Simulate(current, targets, contributions)
	if err != nil {
		return fail(err)
	}

	if err := c.render.emit(plans, func() (string, error) {
		return PlanMarkdown(plans, c.render.currency)
	}); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// parseTargets parses "stocks=0.6,crypto=0.4"
func parseTargets(raw string) (map[domain.Category]decimal.Decimal, error) {
	items := splitList(raw)
	if len(items) == 0 {
		return nil, fmt.Errorf("-targets is required")
	}

	targets := make(map[domain.Category]decimal.Decimal, len(items))
	for _, item := range items {
		name, weight, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid target %q: expected category=weight", item)
		}
		category := domain.Category(strings.ToLower(strings.TrimSpace(name)))
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidCategoryFilter, name)
		}
		w, err := decimal.NewFromString(strings.TrimSpace(weight))
		if err != nil {
			return nil, fmt.Errorf("invalid weight for %s: %w", category, err)
		}
		targets[category] = w
	}
	return targets, nil
}

func parseAmounts(raw string) ([]decimal.Decimal, error) {
	items := splitList(raw)
	if len(items) == 0 {
		return nil, fmt.Errorf("-contribute is required")
	}

	amounts := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		amount, err := decimal.NewFromString(item)
		if err != nil {
			return nil, fmt.Errorf("invalid contribution %q: %w", item, err)
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}
