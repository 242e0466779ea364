// Package cmd implements the CLI application to simulate household finances.
package cmd

import (
	"fmt"
	"os"

	"github.com/finhouse/homesim"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&equityCmd{},
	&compareCmd{},
	&checkCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// loadScenario opens and decodes a scenario file.
func loadScenario(path string) (*homesim.Configuration, error) {
	if path == "" {
		return nil, fmt.Errorf("missing required -input flag")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open scenario %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := homesim.DecodeConfiguration(f)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", path, err)
	}
	return cfg, nil
}

// parseToday resolves the date used for window defaults: the -d flag when
// given, the clock otherwise. This is the only place the clock is read.
func parseToday(s string) (homesim.Date, error) {
	if s == "" {
		return homesim.Today(), nil
	}
	return homesim.ParseDate(s)
}
