package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brel/ledger"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	ledgerFile string
	outputFile string
	annotate   bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `lvet fmt [-l <ledger>] [-o <output>] [-diff]

  Reads all entries, sorts them by date, and writes them back in a
  canonical JSONL format. With -diff, failing balance assertions are
  annotated with the observed discrepancy in their "diff" property.
  By default the result is written to stdout; use -o to write a file.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger file to format (JSONL format, \"-\" for stdin).")
	f.StringVar(&p.outputFile, "o", "", "Output file. Writes to stdout when empty.")
	f.BoolVar(&p.annotate, "diff", false, "Annotate failing balance assertions with their observed discrepancy.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedgerFile(p.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	entries := l.All()
	if p.annotate {
		var verr error
		entries, _, verr = ledger.CheckBalances(entries, ledger.CheckOptions{})
		if verr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
			return subcommands.ExitFailure
		}
	}

	var out io.Writer = os.Stdout
	if p.outputFile != "" {
		file, err := os.Create(p.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", p.outputFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := ledger.EncodeEntries(out, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
