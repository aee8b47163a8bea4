package cli

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthdash/internal/domain"
	"github.com/simaogato/wealthdash/internal/usecase/correlation"
	"github.com/simaogato/wealthdash/internal/usecase/rebalance"
)

// formatMoney formats an amount in major units using the currency's symbol and grouping
func formatMoney(amount decimal.Decimal, currency string) (string, error) {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return "", fmt.Errorf("unknown currency %q", currency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart()), nil
}

func formatPercent(p decimal.Decimal) string {
	if p.IsPositive() {
		return "+" + p.StringFixed(1) + "%"
	}
	return p.StringFixed(1) + "%"
}

// SummaryMarkdown renders a view-model as a markdown report
func SummaryMarkdown(vm *domain.PortfolioViewModel, currency string) (string, error) {
	var sb strings.Builder
	m := moneyFormatter{currency: currency}

	fmt.Fprintf(&sb, "# Portfolio (%s)\n\n", vm.Period)
	fmt.Fprintf(&sb, "**Total value:** %s  \n", m.format(vm.TotalValue))
	fmt.Fprintf(&sb, "**Performance:** %s (%s)\n\n", formatPercent(vm.TotalPerformancePercent), m.format(vm.TotalPerformanceValue))

	sb.WriteString("## Holdings\n\n")
	sb.WriteString("| Name | Category | Value | Performance |\n")
	sb.WriteString("|---|---|---:|---:|\n")
	for _, a := range vm.SortedAssets {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", a.Name, a.Category, m.format(a.Value), formatPercent(a.Performance))
	}

	sb.WriteString("\n## Allocation\n\n")
	sb.WriteString("| Category | Share | Value |\n")
	sb.WriteString("|---|---:|---:|\n")
	for _, b := range vm.AllocationBuckets {
		fmt.Fprintf(&sb, "| %s | %s%% | %s |\n", b.ShortLabel, b.Percentage.StringFixed(1), m.format(b.Value))
	}

	if len(vm.HistoricalSeries) > 0 {
		first := vm.HistoricalSeries[0]
		last := vm.HistoricalSeries[len(vm.HistoricalSeries)-1]
		fmt.Fprintf(&sb, "\n%d points from %s (%s) to %s (%s)\n",
			len(vm.HistoricalSeries),
			first.Timestamp.Format("2006-01-02"), m.format(first.Value),
			last.Timestamp.Format("2006-01-02"), m.format(last.Value))
	}

	if m.err != nil {
		return "", m.err
	}
	return sb.String(), nil
}

// CorrelationMarkdown renders the correlation pairs as a markdown table
func CorrelationMarkdown(result *correlation.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Correlation (%s)\n\n", result.Period)
	if len(result.Pairs) == 0 {
		sb.WriteString("Not enough shared history to correlate any pair.\n")
		return sb.String()
	}

	sb.WriteString("| Asset | Asset | Coefficient | Points |\n")
	sb.WriteString("|---|---|---:|---:|\n")
	for _, p := range result.Pairs {
		fmt.Fprintf(&sb, "| %s | %s | %.2f | %d |\n", p.AssetA, p.AssetB, p.Coefficient, p.Points)
	}
	fmt.Fprintf(&sb, "\nMean %.2f, min %.2f, max %.2f\n", result.Mean, result.Min, result.Max)
	return sb.String()
}

// PlanMarkdown renders one table per contribution
func PlanMarkdown(plans []*rebalance.Plan, currency string) (string, error) {
	var sb strings.Builder
	m := moneyFormatter{currency: currency}

	sb.WriteString("# Contribution plan\n")
	for i, plan := range plans {
		fmt.Fprintf(&sb, "\n## Contribution %d: %s\n\n", i+1, m.format(plan.Contribution))
		sb.WriteString("| Category | Contribution | After |\n")
		sb.WriteString("|---|---:|---:|\n")
		for _, c := range domain.Categories {
			after, ok := plan.After[c]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", c, m.format(plan.Contributions[c]), m.format(after))
		}
	}

	if m.err != nil {
		return "", m.err
	}
	return sb.String(), nil
}

// moneyFormatter keeps the first formatting error so tables can be built without checks on every cell
type moneyFormatter struct {
	currency string
	err      error
}

func (m *moneyFormatter) format(amount decimal.Decimal) string {
	s, err := formatMoney(amount, m.currency)
	if err != nil && m.err == nil {
		m.err = err
	}
	return s
}

// printMarkdown renders markdown for the terminal
func printMarkdown(md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = fmt.Fprint(output, out)
	return err
}
