package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/finhouse/homesim"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	input  string
	output string
	mode   string
	date   string
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "realize a scenario into a ledger of dated transactions, or its equity"
}
func (*simulateCmd) Usage() string {
	return `hfs simulate -input <file> [-mode ledger|equity] [-output <file>] [-d <date>]

  Expands the scenario's assets, liabilities, purchases, expenses and
  revenues into a ledger of double-entry transactions over the simulation
  window. With -mode equity, prints the net equity figure instead.

Usage Examples:
# Write the ledger to stdout.
$ hfs simulate -input scenario.json

`
}

func (p *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "input", "", "Scenario file (JSON).")
	f.StringVar(&p.output, "output", "", "Output file. Defaults to stdout.")
	f.StringVar(&p.mode, "mode", "ledger", "What to report: the full 'ledger' or the 'equity' scalar.")
	f.StringVar(&p.date, "d", "", "Reference date for window defaults (YYYY-MM-DD). Defaults to today.")
}

func (p *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadScenario(p.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	today, err := parseToday(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger, err := homesim.Simulate(cfg, today)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var out io.Writer = os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create output file %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	switch p.mode {
	case "ledger":
		if err := homesim.EncodeLedger(out, ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case "equity":
		fmt.Fprintln(out, ledger.Equity().Display())
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q, want ledger or equity\n", p.mode)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
