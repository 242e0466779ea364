package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finhouse/homesim"
	"github.com/google/subcommands"
)

type equityCmd struct {
	input string
	date  string
}

func (*equityCmd) Name() string     { return "equity" }
func (*equityCmd) Synopsis() string { return "report a scenario's net equity" }
func (*equityCmd) Usage() string {
	return `hfs equity -input <file> [-d <date>]

  Simulates the scenario and prints assets minus liabilities. Shorthand for
  'hfs simulate -mode equity'.
`
}

func (p *equityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "input", "", "Scenario file (JSON).")
	f.StringVar(&p.date, "d", "", "Reference date for window defaults (YYYY-MM-DD). Defaults to today.")
}

func (p *equityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	fmt.Println(ledger.Equity().String())
	return subcommands.ExitSuccess
}
