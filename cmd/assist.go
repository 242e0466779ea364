package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finhouse/homesim"
	"github.com/finhouse/homesim/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	input string
	date  string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI advisor" }
func (*assistCmd) Usage() string {
	return `hfs assist -input <file> [prompt]

  Simulates the scenario and starts an interactive advisor seeded with its
  summary. Requires a configured Gemini API key.
`
}

func (p *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "input", "", "Scenario file (JSON).")
	f.StringVar(&p.date, "d", "", "Reference date for window defaults (YYYY-MM-DD). Defaults to today.")
}

func (p *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

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

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	window := cfg.Runtime.Window(today)
	summary := fmt.Sprintf("window %s to %s, %d transactions, net equity %s",
		window.From, window.To, ledger.Len(), ledger.Equity())

	a := agent.New(os.Stdout, os.Stdin)
	if err := a.Run(ctx, client, summary, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
