package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	grpcadapter "github.com/simaogato/wealthdash/internal/adapter/grpc"
	"github.com/simaogato/wealthdash/internal/csvimport"
	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/logger"
	"github.com/simaogato/wealthdash/internal/usecase/allocation"
	"github.com/simaogato/wealthdash/internal/usecase/portfolio"
)

type summaryCmd struct {
	source     sourceFlags
	render     renderFlags
	period     string
	sort       string
	categories string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio view-model for a period" }
func (*summaryCmd) Usage() string {
	return `wealthctl summary [-file holdings.csv] [-history history.csv] [-period 7d] [-sort value] [-category stocks,crypto]

  Displays totals, ranked holdings, allocation and the historical series.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.source.register(f)
	c.render.register(f)
	f.StringVar(&c.period, "period", "all", "period (1d, 7d, 1m, ytd, all)")
	f.StringVar(&c.sort, "sort", string(domain.SortByValue), "sort key (performance, value, name)")
	f.StringVar(&c.categories, "category", "all", "comma separated categories to list, or all")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.render.validate(); err != nil {
		return usageError(err)
	}

	sortKey, err := domain.ParseSortKey(c.sort)
	if err != nil {
		return usageError(err)
	}

	filter, err := domain.ParseCategoryFilter(splitList(c.categories))
	if err != nil {
		return usageError(err)
	}

	assets, err := csvimport.LoadFiles(c.source.file, c.source.history)
	if err != nil {
		return fail(err)
	}

	logger.FromContext(ctx).Debugw("loaded holdings",
		"file", c.source.file,
		"history", c.source.history,
		"assets", len(assets),
	)

	assembler := portfolio.NewAssembler(allocation.DefaultOptions())
	snapshot := domain.PortfolioSnapshot{Assets: assets, Period: c.period}
	vm, err := assembler.Assemble(ctx, snapshot, portfolio.Query{SortKey: sortKey, Filter: filter})
	if err != nil {
		return fail(err)
	}

	resp := grpcadapter.ViewModelResponse(vm, allocation.DefaultPalette)
	if err := c.render.emit(resp, func() (string, error) {
		return SummaryMarkdown(vm, c.render.currency)
	}); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
