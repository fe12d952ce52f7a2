// Package cli implements the offline reporting commands. They read a
// snapshot exported by the API and print the same figures the dashboard shows.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/shop_bookkeeping/internal/core/analytics"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/export"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/google/subcommands"
)

// Commands returns every reporting command, writing to out.
func Commands(out io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&metricsCmd{reportFlags: reportFlags{out: out}},
		&expensesCmd{reportFlags: reportFlags{out: out}},
		&stockCmd{reportFlags: reportFlags{out: out}},
		&depreciationCmd{reportFlags: reportFlags{out: out}},
		&workbookCmd{reportFlags: reportFlags{out: out}},
		&hashPasswordCmd{in: os.Stdin, out: out},
	}
}

// reportFlags are shared by every command.
type reportFlags struct {
	out io.Writer

	snapshot  string
	rangeName string
	from      string
	to        string
	currency  string
	today     string
	cogs      string
	marketing string
}

func (r *reportFlags) setFlags(f *flag.FlagSet, windowed bool) {
	f.StringVar(&r.snapshot, "snapshot", "", "path to a snapshot exported from /api/v1/export/snapshot.json")
	f.StringVar(&r.currency, "currency", "", "currency code (defaults to the snapshot's)")
	f.StringVar(&r.today, "today", "", "report as of this day, YYYY-MM-DD (defaults to today)")
	if windowed {
		f.StringVar(&r.rangeName, "range", "all", "all, last-7-days, last-1-month or last-3-months")
		f.StringVar(&r.from, "from", "", "custom range start, YYYY-MM-DD")
		f.StringVar(&r.to, "to", "", "custom range end, YYYY-MM-DD")
	}
}

// report is a loaded snapshot plus the parsed flags.
type report struct {
	snap   *portssvc.Snapshot
	window analytics.Window
	today  domain.Day
	money  *utils.CurrencyFormatter
}

func (r *reportFlags) load() (*report, error) {
	if r.snapshot == "" {
		return nil, fmt.Errorf("-snapshot is required")
	}
	f, err := os.Open(r.snapshot)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	snap, err := export.ReadSnapshot(f)
	if err != nil {
		return nil, err
	}

	window, err := dto.RangeQuery{Range: r.rangeName, FromDate: r.from, ToDate: r.to}.Window()
	if err != nil {
		return nil, err
	}

	today := domain.Today()
	if r.today != "" {
		if today, err = domain.ParseDay(r.today); err != nil {
			return nil, err
		}
	}

	code := r.currency
	if code == "" {
		code = snap.Currency
	}
	if code == "" {
		code = "INR"
	}
	money, err := utils.NewCurrencyFormatter(strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	return &report{snap: snap, window: window, today: today, money: money}, nil
}

// period renders the resolved window for report headers.
func (rep *report) period() (string, error) {
	rng, bounded, err := rep.window.Resolve(rep.today)
	if err != nil {
		return "", err
	}
	if !bounded {
		return "all time", nil
	}
	return rng.From.String() + " to " + rng.To.String(), nil
}

func (rep *report) metrics(method analytics.COGSMethod) (domain.DashboardMetrics, error) {
	in := analytics.MetricsInput{PurchaseHistory: rep.snap.Purchases}
	var err error
	if in.Sales, err = analytics.Filter(rep.snap.Sales, rep.window, rep.today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	if in.Purchases, err = analytics.Filter(rep.snap.Purchases, rep.window, rep.today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	if in.Expenses, err = analytics.Filter(rep.snap.Expenses, rep.window, rep.today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	if in.Investments, err = analytics.Filter(rep.snap.Investments, rep.window, rep.today); err != nil {
		return domain.DashboardMetrics{}, err
	}
	return analytics.ComputeMetrics(in, method), nil
}

func (rep *report) expenses(matcher analytics.MarketingMatcher) (domain.ExpenseBreakdown, error) {
	expenses, err := analytics.Filter(rep.snap.Expenses, rep.window, rep.today)
	if err != nil {
		return domain.ExpenseBreakdown{}, err
	}
	return analytics.BreakdownExpenses(expenses, matcher), nil
}

func marketingMatcher(raw string) analytics.MarketingMatcher {
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		keywords = analytics.DefaultMarketingKeywords
	}
	return analytics.NewMarketingMatcher(keywords...)
}

// fail prints err and maps it onto an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
