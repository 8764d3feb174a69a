package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depgraph/pkg/buildinfo"
)

// Execute runs the depgraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (check, export,
// decompose, currencies), configures logging based on the --verbose flag, and
// executes the command tree against ctx. Cancelling ctx (e.g., on SIGINT)
// cancels any in-flight command.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
//
// Example:
//
//	func main() {
//	    ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	    defer cancel()
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands attached.
// It is separate from Execute so tests can drive the command tree directly.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "depgraph",
		Short:        "depgraph validates and renders component dependency graphs",
		Long:         `Depgraph builds dependency graphs from TOML manifests, rejects self-references and cycles, and renders the result as DOT, SVG, or PNG. It also ships a change-making helper that breaks monetary amounts into bills and coins.`,
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

	root.AddCommand(newCheckCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newDecomposeCmd())
	root.AddCommand(newCurrenciesCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
