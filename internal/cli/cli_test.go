package cli

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const snapshotJSON = `{
  "currency": "USD",
  "sales": [
    {"id": "s1", "date": "2024-06-10", "product": "A", "quantity": 4, "price": "250", "total": "1000"},
    {"id": "s0", "date": "2023-01-10", "product": "A", "quantity": 1, "price": "90", "total": "90"}
  ],
  "purchases": [
    {"id": "p1", "date": "2024-06-01", "product": "A", "quantity": 10, "price": "40", "total": "400"}
  ],
  "expenses": [
    {"id": "e1", "date": "2024-06-05", "category": "Rent", "amount": "70"},
    {"id": "e2", "date": "2024-06-06", "category": "Facebook Ads", "amount": "30"}
  ],
  "investments": [],
  "assets": [
    {"id": "a1", "name": "Display case", "purchaseDate": "2024-01-15", "cost": "1200", "usefulLife": 1}
  ]
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o600))
	return path
}

func run(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var out bytes.Buffer
	switch c := cmd.(type) {
	case *metricsCmd:
		c.out = &out
	case *expensesCmd:
		c.out = &out
	case *stockCmd:
		c.out = &out
	case *depreciationCmd:
		c.out = &out
	case *workbookCmd:
		c.out = &out
	}
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return cmd.Execute(context.Background(), f), out.String()
}

func TestMetricsCmd(t *testing.T) {
	snap := writeSnapshot(t)

	status, out := run(t, &metricsCmd{}, "-snapshot", snap, "-from", "2024-06-01", "-to", "2024-06-30")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "2024-06-01 to 2024-06-30")
	assert.Contains(t, out, "$1,000.00")
	assert.Contains(t, out, "60.00%")
	assert.Contains(t, out, "$500.00")
	assert.Contains(t, out, "50.00%")

	status, out = run(t, &metricsCmd{}, "-snapshot", snap)
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "all time")
	assert.Contains(t, out, "$1,090.00")
}

func TestMetricsCmd_UsageErrors(t *testing.T) {
	snap := writeSnapshot(t)

	status, _ := run(t, &metricsCmd{})
	assert.Equal(t, subcommands.ExitUsageError, status, "missing snapshot")

	status, _ = run(t, &metricsCmd{}, "-snapshot", snap, "-cogs", "fifo")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, _ = run(t, &metricsCmd{}, "-snapshot", snap, "-from", "2024-06-01")
	assert.Equal(t, subcommands.ExitUsageError, status, "from without to")

	status, _ = run(t, &metricsCmd{}, "-snapshot", snap, "-range", "forever")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestExpensesCmd(t *testing.T) {
	status, out := run(t, &expensesCmd{}, "-snapshot", writeSnapshot(t), "-marketing", "facebook")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "70.00%")
	assert.Contains(t, out, "Marketing")
	assert.Contains(t, out, "$30.00")
}

func TestStockCmd(t *testing.T) {
	status, out := run(t, &stockCmd{}, "-snapshot", writeSnapshot(t))
	require.Equal(t, subcommands.ExitSuccess, status)
	// 10 bought, 5 sold at any date
	assert.Contains(t, out, "$200.00")
}

func TestDepreciationCmd(t *testing.T) {
	status, out := run(t, &depreciationCmd{}, "-snapshot", writeSnapshot(t), "-today", "2024-07-01")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Display case")
	assert.Contains(t, out, "$600.00")
}

func TestWorkbookCmd(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.xlsx")
	status, out := run(t, &workbookCmd{}, "-snapshot", writeSnapshot(t), "-o", target, "-today", "2024-07-01", "-range", "last-1-month")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, target)

	f, err := excelize.OpenFile(target)
	require.NoError(t, err)
	defer f.Close()
	period, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01 to 2024-07-01", period)
}

func TestCommandsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Commands(&bytes.Buffer{}) {
		assert.False(t, seen[c.Name()], c.Name())
		seen[c.Name()] = true
	}
	assert.Len(t, seen, 6)
}

func TestHashPasswordCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &hashPasswordCmd{in: strings.NewReader("correct horse battery\n"), out: &out}
	require.Equal(t, subcommands.ExitSuccess, cmd.Execute(context.Background(), flag.NewFlagSet("hash-password", flag.ContinueOnError)))
	assert.True(t, utils.CheckPasswordHash("correct horse battery", strings.TrimSpace(out.String())))

	cmd = &hashPasswordCmd{in: strings.NewReader("short"), out: &out}
	assert.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), flag.NewFlagSet("hash-password", flag.ContinueOnError)))
}
