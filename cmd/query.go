package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/finhouse/homesim"
	"github.com/google/subcommands"
)

type queryCmd struct {
	input string
	query string
	date  string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from a simulated ledger with JSONPath" }
func (*queryCmd) Usage() string {
	return `hfs query -input <file> -q <jsonpath> [-d <date>]

  Simulates the scenario and evaluates a JSONPath expression against the
  encoded ledger, an array of record mappings.

Usage Examples:
# Amount of the first record.
$ hfs query -input scenario.json -q '$[0].amount'
# All stamp duty records.
$ hfs query -input scenario.json -q '$[?@.description=="Stamp Duty"]'

`
}

func (p *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "input", "", "Scenario file (JSON).")
	f.StringVar(&p.query, "q", "$", "JSONPath expression to evaluate.")
	f.StringVar(&p.date, "d", "", "Reference date for window defaults (YYYY-MM-DD). Defaults to today.")
}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Round-trip through json so jsonpath sees plain maps and slices.
	encoded, err := json.Marshal(ledger.Records())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(p.query, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot evaluate %q: %v\n", p.query, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
