package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/google/subcommands"

	"github.com/simaogato/wealthdash/internal/csvimport"
	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/usecase/correlation"
)

type correlateCmd struct {
	source sourceFlags
	render renderFlags
	period string
}

func (*correlateCmd) Name() string     { return "correlate" }
func (*correlateCmd) Synopsis() string { return "display pairwise correlation of asset returns" }
func (*correlateCmd) Usage() string {
	return `wealthctl correlate -history history.csv [-file holdings.csv] [-period 1m]

  Correlates the period returns of every pair of holdings sharing history.
`
}

func (c *correlateCmd) SetFlags(f *flag.FlagSet) {
	c.source.register(f)
	c.render.register(f)
	f.StringVar(&c.period, "period", "all", "period (1d, 7d, 1m, ytd, all)")
}

func (c *correlateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.render.validate(); err != nil {
		return usageError(err)
	}
	if c.source.history == "" {
		return usageError(errors.New("-history is required"))
	}

	p, err := domain.ParsePeriod(c.period)
	if err != nil {
		return usageError(err)
	}

	assets, err := csvimport.LoadFiles(c.source.file, c.source.history)
	if err != nil {
		return fail(err)
	}

	result, err := correlation.Matrix(assets, p)
	if err != nil {
		return fail(err)
	}

	if err := c.render.emit(result, func() (string, error) {
		return CorrelationMarkdown(result), nil
	}); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
