package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/export"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/google/subcommands"
)

func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}

type metricsCmd struct {
	reportFlags
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "print sales, profit and margins for a period" }
func (*metricsCmd) Usage() string {
	return `bookkeeping metrics -snapshot <file> [-range <preset> | -from <day> -to <day>] [-cogs purchases|matched]

  Prints the dashboard headline figures.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f, true)
	f.StringVar(&c.cogs, "cogs", string(analytics.COGSPurchases), "cost of goods sold method: purchases or matched")
}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	method, err := analytics.ParseCOGSMethod(c.cogs)
	if err != nil {
		return usageError(err)
	}
	rep, err := c.load()
	if err != nil {
		return usageError(err)
	}
	period, err := rep.period()
	if err != nil {
		return usageError(err)
	}
	m, err := rep.metrics(method)
	if err != nil {
		return fail(err)
	}

	money := rep.money
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Period\t%s\n", period)
	fmt.Fprintf(w, "Total sales\t%s\t(%d sales)\n", money.Format(m.TotalSales), m.SalesCount)
	fmt.Fprintf(w, "Cost of goods sold\t%s\t(%d purchases)\n", money.Format(m.TotalCOGS), m.PurchasesCount)
	fmt.Fprintf(w, "Gross profit\t%s\t%s%%\n", money.Format(m.GrossProfit), utils.FormatWithPrecision(m.GrossMargin, 2))
	fmt.Fprintf(w, "Operating expenses\t%s\t(%d expenses)\n", money.Format(m.TotalOperatingExpenses), m.ExpensesCount)
	fmt.Fprintf(w, "Net profit\t%s\t%s%%\n", money.Format(m.NetProfit), utils.FormatWithPrecision(m.NetMargin, 2))
	fmt.Fprintf(w, "Investments\t%s\n", money.Format(m.TotalInvestments))
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type expensesCmd struct {
	reportFlags
}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "print expenses grouped by category" }
func (*expensesCmd) Usage() string {
	return `bookkeeping expenses -snapshot <file> [-range <preset> | -from <day> -to <day>] [-marketing k1,k2]

  Prints expense totals per category, largest first.
`
}

func (c *expensesCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f, true)
	f.StringVar(&c.marketing, "marketing", "", "comma separated keywords that mark a category as marketing")
}

func (c *expensesCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	rep, err := c.load()
	if err != nil {
		return usageError(err)
	}
	b, err := rep.expenses(marketingMatcher(c.marketing))
	if err != nil {
		return usageError(err)
	}

	money := rep.money
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Category\tTotal\tShare")
	for _, cat := range b.Categories {
		fmt.Fprintf(w, "%s\t%s\t%s%%\n", cat.Category, money.Format(cat.Total), utils.FormatWithPrecision(cat.Share, 2))
	}
	fmt.Fprintf(w, "Total\t%s\n", money.Format(b.TotalExpenses))
	fmt.Fprintf(w, "Marketing\t%s\n", money.Format(b.MarketingSpend))
	fmt.Fprintf(w, "Monthly average\t%s\t(%d months)\n", money.Format(b.MonthlyAverage), b.MonthsSpanned)
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type stockCmd struct {
	reportFlags
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "print products in stock at weighted average cost" }
func (*stockCmd) Usage() string {
	return `bookkeeping stock -snapshot <file>

  Prints every product still in stock. Stock always covers the full history.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *stockCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	rep, err := c.load()
	if err != nil {
		return usageError(err)
	}
	v := analytics.ValueStock(rep.snap.Purchases, rep.snap.Sales)

	money := rep.money
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Product\tIn stock\tAverage cost\tValue\t")
	for _, l := range v.Lines {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t\n", l.Product, l.Quantity, money.Format(l.AverageCost), money.Format(l.CurrentValue))
	}
	fmt.Fprintf(w, "Total\t%d\t\t%s\t\n", v.TotalQuantity, money.Format(v.TotalValue))
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type depreciationCmd struct {
	reportFlags
}

func (*depreciationCmd) Name() string     { return "depreciation" }
func (*depreciationCmd) Synopsis() string { return "print straight-line depreciation of every asset" }
func (*depreciationCmd) Usage() string {
	return `bookkeeping depreciation -snapshot <file> [-today <day>]

  Prints each asset's accumulated depreciation and net book value.
`
}

func (c *depreciationCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f, false) }

func (c *depreciationCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	rep, err := c.load()
	if err != nil {
		return usageError(err)
	}
	p := analytics.ValueAssets(rep.snap.Assets, rep.today)

	money := rep.money
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "As of\t%s\n", rep.today)
	fmt.Fprintln(w, "Asset\tCost\tPer month\tMonths\tAccumulated\tNet book value")
	for _, a := range p.Assets {
		d := a.Depreciation
		status := ""
		if d.FullyDepreciated {
			status = "\t(fully depreciated)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s%s\n", a.Asset.Name, money.Format(a.Asset.Cost), money.Format(d.DepreciationPerMonth),
			d.MonthsElapsed, money.Format(d.AccumulatedDepreciation), money.Format(d.NetBookValue), status)
	}
	fmt.Fprintf(w, "Total\t%s\t%s\t\t%s\t%s\n", money.Format(p.TotalCost), money.Format(p.MonthlyDepreciationRate),
		money.Format(p.TotalAccumulated), money.Format(p.TotalNetBookValue))
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type workbookCmd struct {
	reportFlags
	output string
}

func (*workbookCmd) Name() string     { return "workbook" }
func (*workbookCmd) Synopsis() string { return "write the dashboard to an xlsx workbook" }
func (*workbookCmd) Usage() string {
	return `bookkeeping workbook -snapshot <file> -o <file.xlsx> [-range <preset> | -from <day> -to <day>]

  Writes the same workbook as /api/v1/export/dashboard.xlsx.
`
}

func (c *workbookCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f, true)
	f.StringVar(&c.cogs, "cogs", string(analytics.COGSPurchases), "cost of goods sold method: purchases or matched")
	f.StringVar(&c.marketing, "marketing", "", "comma separated marketing keywords")
	f.StringVar(&c.output, "o", "dashboard.xlsx", "output file")
}

func (c *workbookCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	method, err := analytics.ParseCOGSMethod(c.cogs)
	if err != nil {
		return usageError(err)
	}
	rep, err := c.load()
	if err != nil {
		return usageError(err)
	}
	period, err := rep.period()
	if err != nil {
		return usageError(err)
	}

	r := export.DashboardReport{GeneratedAt: time.Now(), Period: period}
	if r.Metrics, err = rep.metrics(method); err != nil {
		return fail(err)
	}
	if r.Expenses, err = rep.expenses(marketingMatcher(c.marketing)); err != nil {
		return fail(err)
	}
	r.Stock = analytics.ValueStock(rep.snap.Purchases, rep.snap.Sales)
	r.Assets = analytics.ValueAssets(rep.snap.Assets, rep.today)

	out, err := os.Create(c.output)
	if err != nil {
		return fail(err)
	}
	if err := export.WriteDashboard(out, r, rep.money); err != nil {
		out.Close()
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}
	fmt.Fprintf(c.out, "wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
