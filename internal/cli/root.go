// Package cli provides CLI command implementations.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/adrianpk/commitwatch/internal/exitcode"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commitwatch",
	Short: "Review gate for commit classification tags",
	Long: `Commitwatch inspects the commit message of the repository's HEAD commit
and decides whether it is acceptable to submit, based on a required
classification tag (BACKPORT, FROMPULL, CHROMIUM) at the start of the
subject line.

Run without a subcommand it behaves like "commitwatch check".`,
	Args:          cobra.NoArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	addCheckFlags(rootCmd.Flags())
}

// accessError marks failures reading the repository or configuration.
// They abort before the policy is evaluated and must not be reported as
// a policy verdict.
type accessError struct {
	err error
}

func (e *accessError) Error() string { return e.err.Error() }
func (e *accessError) Unwrap() error { return e.err }

// blockedError marks a blocking policy verdict. The verdict text has
// already been printed by the time it is returned.
type blockedError struct {
	disposition string
}

func (e *blockedError) Error() string {
	return "commit blocked by tag policy: " + e.disposition
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return exitcode.Success
	}

	var blocked *blockedError
	if errors.As(err, &blocked) {
		return exitcode.PolicyBlocked
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var access *accessError
	if errors.As(err, &access) {
		return exitcode.AccessError
	}
	return exitcode.UsageError
}
