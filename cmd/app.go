// Package cmd implements the CLI application to verify ledger files.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brel/ledger"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the lvet application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&checkCmd{},
	&fmtCmd{},
	&accountsCmd{},
	&topicCmd{},
}

// Register the subcommands.
func Register(c *subcommands.Commander) {
	for _, command := range Commands {
		c.Register(command, "")
	}
}

// defaultLedgerFile is used when a command's -l flag is left empty.
const defaultLedgerFile = "ledger.jsonl"

// decodeLedgerFile loads a ledger from a JSONL file, or from stdin when the
// name is "-". Entry locations are "name:line" tokens.
func decodeLedgerFile(name string) (*ledger.Ledger, error) {
	if name == "" {
		name = defaultLedgerFile
	}
	if name == "-" {
		return ledger.DecodeLedger("stdin", os.Stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", name, err)
	}
	defer f.Close()

	l, err := ledger.DecodeLedger(name, f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", name, err)
	}
	l.SetName(strings.TrimSuffix(filepath.Base(name), ".jsonl"))
	return l, nil
}
