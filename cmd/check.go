package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct {
	input string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a scenario file" }
func (*checkCmd) Usage() string {
	return `hfs check -input <file>

  Decodes and validates the scenario, reporting the first configuration,
  date or domain error found.
`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "input", "", "Scenario file (JSON).")
}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadScenario(p.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s is valid: %d assets, %d liabilities, %d purchases, %d expenses, %d revenues\n",
		p.input, len(cfg.Assets), len(cfg.Liabilities), len(cfg.Purchases), len(cfg.Expenses), len(cfg.Revenues))
	return subcommands.ExitSuccess
}
