// Package cli implements the cleardef command-line interface.
//
// This package provides commands for looking up component definitions from
// the clearlydefined.io service, inspecting coordinate texts, and running a
// local mock of the definitions endpoint. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - lookup: Fetch definitions for one or more coordinates
//   - coord: Parse coordinate texts and print their components
//   - mock: Serve a local fixture-backed definitions endpoint
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cleardef/pkg/buildinfo"
)

// Execute runs the cleardef CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cleardef",
		Short:        "cleardef looks up component definitions from clearlydefined.io",
		Long:         `cleardef is a client for the clearlydefined.io component-metadata service: it chunks coordinate lookups into bounded requests, tolerates partially processed components, and renders the resulting definitions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLookupCmd())
	root.AddCommand(newCoordCmd())
	root.AddCommand(newMockCmd())

	return root.ExecuteContext(ctx)
}
