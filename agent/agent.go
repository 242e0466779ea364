// Package agent implements the interactive AI advisor behind `hfs assist`.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const prompt = "assist> "

const instruction = `You are a pragmatic household-finances advisor.

The user has simulated a financial scenario below: a ledger of double-entry
transactions over a bounded window, reduced to a net-equity figure. Answer
questions about the scenario, and point out consequential assumptions (the
repayment schedule, stamp duty, the simulation window) when they matter.
Keep answers short and concrete. Do not invent numbers that are not derivable
from the scenario.

Scenario summary:
`

// Advisor holds the chat session with the financial assistant.
type Advisor struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates an Advisor writing its output to w and reading user input
// from r (typically os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader) *Advisor {
	return &Advisor{w: w, r: bufio.NewReader(r)}
}

// Start opens the chat session, seeding the system instruction with the
// scenario summary.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, scenario string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction + scenario}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's text response.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Run drives the interactive session. Initial prompts are consumed first,
// then the user's input; 'bye' or EOF ends the session.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, scenario string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, scenario); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to hfs assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
