package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/brel/ledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and exits when one is
// detected. Install with COMP_INSTALL=1 lvet.
func completion() {
	checkFlags := map[string]complete.Predictor{
		"l":         predict.Files("*.jsonl"),
		"tolerance": predict.Something,
		"q":         predict.Nothing,
	}
	fmtFlags := map[string]complete.Predictor{
		"l":    predict.Files("*.jsonl"),
		"o":    predict.Files("*.jsonl"),
		"diff": predict.Nothing,
	}
	accountsFlags := map[string]complete.Predictor{
		"l":       predict.Files("*.jsonl"),
		"tracked": predict.Nothing,
	}

	cli := &complete.Command{
		Sub: map[string]*complete.Command{
			"check":    {Flags: checkFlags},
			"fmt":      {Flags: fmtFlags},
			"accounts": {Flags: accountsFlags},
			"topic":    {Args: predict.Set{"readme", "assertions", "tolerance", "format"}},
		},
	}
	cli.Complete("lvet")
}
