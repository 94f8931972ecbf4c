package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/brel/ledger"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	ledgerFile string
	tracked    bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts mentioned in a ledger" }
func (*accountsCmd) Usage() string {
	return `lvet accounts [-l <ledger>] [-tracked]

  Lists every account mentioned in the ledger, one per line, in lexical
  order. With -tracked, lists only the accounts a verification pass would
  maintain a running balance for.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Ledger file to inspect (JSONL format, \"-\" for stdin).")
	f.BoolVar(&c.tracked, "tracked", false, "Only list accounts tracked for balance verification.")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := decodeLedgerFile(c.ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.tracked {
		for _, account := range ledger.TrackedAccounts(l.All()) {
			fmt.Println(account)
		}
		return subcommands.ExitSuccess
	}

	for account := range l.Accounts() {
		fmt.Println(account)
	}
	return subcommands.ExitSuccess
}
