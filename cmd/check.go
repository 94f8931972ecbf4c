package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/brel/ledger"
	"github.com/brel/ledger/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	ledgerFile string
	tolerance  string
	quiet      bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify the balance assertions of a ledger" }
func (*checkCmd) Usage() string {
	return `lvet check [-l <ledger>] [-tolerance <amount>] [-q]

  Replays the ledger and verifies every balance assertion against the
  accumulated balance of its account and sub-accounts. Prints a report and
  exits with a non-zero status when any assertion fails.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to verify (JSONL format, \"-\" for stdin).")
	f.StringVar(&c.tolerance, "tolerance", "", "Maximum allowed discrepancy before an assertion fails (defaults to 0.015).")
	f.BoolVar(&c.quiet, "q", false, "Print one line per failure instead of the full report.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	newEntries, checkErrors, err := l.Check(opts)
	if err != nil {
		// Internal invariant violation: a bug in the verifier, not bad data.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.quiet {
		for _, e := range checkErrors {
			fmt.Fprintln(os.Stderr, e.Error())
		}
	} else {
		report := buildReport(l.Name(), newEntries)
		printMarkdown(renderer.CheckMarkdown(report))
	}

	if len(checkErrors) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *checkCmd) options() (ledger.CheckOptions, error) {
	var opts ledger.CheckOptions
	if c.tolerance == "" {
		return opts, nil
	}
	tol, err := decimal.NewFromString(c.tolerance)
	if err != nil {
		return opts, fmt.Errorf("invalid tolerance %q: %w", c.tolerance, err)
	}
	if tol.IsNegative() {
		return opts, fmt.Errorf("tolerance must not be negative: %s", tol)
	}
	opts.Tolerance = tol
	return opts, nil
}

// buildReport summarizes the rewritten entry list of a verification pass:
// failing assertions carry their observed discrepancy in the Diff field.
func buildReport(name string, entries []ledger.Entry) *renderer.CheckReport {
	report := &renderer.CheckReport{Ledger: name, Entries: len(entries)}
	for _, e := range entries {
		b, ok := e.(ledger.Balance)
		if !ok {
			continue
		}
		report.Assertions++
		if b.Diff == nil {
			continue
		}
		accumulated := ledger.Position{
			Amount:   b.Amount.Amount.Add(b.Diff.Amount),
			Currency: b.Amount.Currency,
		}
		direction := "too much"
		if b.Diff.Amount.IsNegative() {
			direction = "too little"
		}
		report.Failures = append(report.Failures, renderer.BalanceFailure{
			Location:    b.Where().String(),
			Date:        b.When().String(),
			Account:     string(b.Account),
			Expected:    b.Amount.String(),
			Accumulated: accumulated.String(),
			Diff:        b.Diff.SignedString(),
			Direction:   direction,
		})
	}
	return report
}
