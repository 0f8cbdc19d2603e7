package cli

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/secretsanta/internal/draw"
	"github.com/spf13/cobra"
)

// DrawResult is the JSON payload of the draw command.
type DrawResult struct {
	Event    string        `json:"event,omitempty"`
	Pairings []PairingJSON `json:"pairings"`
}

// PairingJSON is one giver and receiver.
type PairingJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewDrawCommand creates the draw command.
func NewDrawCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "draw <event.yaml>",
		Short: "Draw pairings for an event file",
		Long: `Draw a receiver for every participant in the event file, respecting its exclusions.
Exits with status 1 when the exclusions make the event impossible.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
}

func runDraw(opts *RootOptions, path string, w io.Writer) error {
	file, result, err := generate(opts, path, w)
	if err != nil {
		return err
	}

	if !result.output.Feasible {
		return reportInfeasible(opts, w)
	}

	drawResult := DrawResult{Event: file.Name}
	for _, giver := range result.input.Participants {
		receiverID := result.output.Pairings[giver.ID]
		drawResult.Pairings = append(drawResult.Pairings, PairingJSON{
			From: giver.Name,
			To:   result.names[receiverID],
		})
	}

	if opts.Format == "json" {
		return writeJSON(w, CLIResponse{Status: "ok", Data: drawResult})
	}

	writeDrawText(w, drawResult)
	return nil
}

func writeDrawText(w io.Writer, result DrawResult) {
	if result.Event != "" {
		fmt.Fprintf(w, "Pairings for %s (%d participants)\n\n", result.Event, len(result.Pairings))
	} else {
		fmt.Fprintf(w, "Pairings (%d participants)\n\n", len(result.Pairings))
	}

	for _, p := range result.Pairings {
		fmt.Fprintf(w, "  %s → %s\n", p.From, p.To)
	}
}

// generation is one generator run over a loaded file
type generation struct {
	input  *draw.GenerateInput
	output *draw.GenerateOutput

	// names maps participant ID to display name
	names map[string]string
}

// generate loads the file and runs the generator, reporting load and input
// errors in the chosen format.
func generate(opts *RootOptions, path string, w io.Writer) (*EventFile, *generation, error) {
	file, err := LoadEventFile(path)
	if err != nil {
		return nil, nil, fail(opts, w, ErrCodeLoad, ExitCommandError, "failed to load event file", err)
	}

	input, err := file.GenerateInput()
	if err != nil {
		return nil, nil, fail(opts, w, ErrCodeInvalid, ExitCommandError, "invalid event file", err)
	}

	generator, err := draw.New(&draw.Config{
		Shuffler: draw.NewShuffler(&draw.ShufflerConfig{Seed: opts.Seed}),
	})
	if err != nil {
		return nil, nil, err
	}

	output, err := generator.Generate(input)
	if err != nil {
		return nil, nil, fail(opts, w, ErrCodeInvalid, ExitCommandError, "invalid event file", err)
	}

	byID := make(map[string]string, len(input.Participants))
	for _, p := range input.Participants {
		byID[p.ID] = p.Name
	}

	return file, &generation{input: input, output: output, names: byID}, nil
}

func reportInfeasible(opts *RootOptions, w io.Writer) error {
	const message = "no valid pairing: these exclusions make the event impossible"

	if opts.Format != "json" {
		fmt.Fprintf(w, "✗ %s\n", message)
	}
	return fail(opts, w, ErrCodeNoPairing, ExitFailure, message, nil)
}
