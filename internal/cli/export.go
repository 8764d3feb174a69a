package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depgraph/pkg/manifest"
	"github.com/matzehuels/depgraph/pkg/render"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format string // output format: "dot", "svg", "png"
	output string // output file path (stdout if empty)
	name   string // override package name from the manifest
}

// newExportCmd creates the export command for rendering dependency graphs.
//
// Default settings:
//   - format: dot (Graphviz source, suitable for piping)
//   - output: stdout (png is binary and requires --output)
func newExportCmd() *cobra.Command {
	opts := exportOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "export <manifest.toml>",
		Short: "Render a dependency graph as DOT, SVG, or PNG",
		Long: `Render a component manifest as a Graphviz diagram.

The export command builds the dependency graph from the manifest and emits
it in the requested format. DOT and SVG default to stdout; PNG is binary
and requires --output.

Examples:
  depgraph export shop.toml                      # DOT to stdout
  depgraph export shop.toml -f svg -o shop.svg   # SVG to file
  depgraph export shop.toml -f png -o shop.png   # PNG to file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.format == "png" && opts.output == "" {
				return fmt.Errorf("png is binary, use --output to write it to a file")
			}
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "package name (overrides the manifest)")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// validateFormat checks that the requested format is valid.
func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// runExport builds the graph from the manifest and writes it in the requested format.
func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Exporting %s", input)

	m, err := manifest.Parse(input)
	if err != nil {
		return err
	}
	if opts.name != "" {
		m.Name = opts.name
	}

	g, err := m.Build(manifest.BuildOptions{
		Logger: func(msg string, args ...any) { logger.Warnf(msg, args...) },
	})
	if err != nil {
		return err
	}
	logger.Infof("Built graph: %d components", g.Len())

	data, err := exportData(ctx, render.ToDOT(g), opts.format)
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Exported %s", m.Name)
		printFile(opts.output)
	}
	return nil
}

// exportData renders the DOT source in the requested format.
// DOT passes through unchanged; SVG and PNG go through Graphviz.
func exportData(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return renderImage(ctx, dot, "SVG", render.SVG)
	case "png":
		return renderImage(ctx, dot, "PNG", render.PNG)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderImage runs fn under a spinner and reports failures on it.
func renderImage(ctx context.Context, dot, label string, fn func(context.Context, string) ([]byte, error)) ([]byte, error) {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", label))
	spinner.Start()
	data, err := fn(ctx, dot)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("%s rendering failed", label))
		return nil, err
	}
	spinner.Stop()
	return data, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
