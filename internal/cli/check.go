package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// CheckResult is the JSON payload of the check command.
type CheckResult struct {
	Feasible     bool `json:"feasible"`
	Participants int  `json:"participants"`
	Exclusions   int  `json:"exclusions"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <event.yaml>",
		Short: "Check that an event file admits a pairing",
		Long: `Check whether every participant in the event file can be given a receiver
without breaking an exclusion. Nothing is printed about who draws whom.
Exits with status 1 when no pairing exists.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
}

func runCheck(opts *RootOptions, path string, w io.Writer) error {
	_, result, err := generate(opts, path, w)
	if err != nil {
		return err
	}

	if !result.output.Feasible {
		return reportInfeasible(opts, w)
	}

	if opts.Format == "json" {
		return writeJSON(w, CLIResponse{Status: "ok", Data: CheckResult{
			Feasible:     true,
			Participants: len(result.input.Participants),
			Exclusions:   len(result.input.Exclusions),
		}})
	}

	fmt.Fprintf(w, "✓ %d participants can be paired with %d exclusions\n",
		len(result.input.Participants), len(result.input.Exclusions))
	return nil
}
