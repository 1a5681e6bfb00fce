package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/pipeline"
)

// batchOpts holds the command-line flags for the batch command.
type batchOpts struct {
	format  string
	output  string
	size    int
	noCache bool
}

// newBatchCmd creates the batch command for rendering many identicons.
func newBatchCmd() *cobra.Command {
	opts := batchOpts{}

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Render identicons for a list of inputs",
		Long: `Batch reads one input per line from the given file (or stdin when the
file is "-") and renders an identicon for each. Blank lines and lines
starting with # are skipped.
Failures are reported per input; the command fails if any input failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: current directory)")
	cmd.Flags().IntVar(&opts.size, "size", 0, "output edge length in pixels (default: 250)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// readInputs collects non-blank lines from r, preserving order. Lines
// starting with # are treated as comments.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, scanner.Err()
}

// runBatch renders every input in the list sequentially. Each run is
// independent, so one failure does not stop the rest.
func runBatch(cmd *cobra.Command, file string, opts *batchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	var src io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	inputs, err := readInputs(src)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		printInfo("No inputs to render")
		return nil
	}

	runner, err := newRunner(ctx, runnerOpts{
		outputDir: opts.output,
		noCache:   opts.noCache,
	})
	if err != nil {
		return err
	}
	defer runner.Close()

	format := opts.format
	if format == "" {
		format = cfg.Format
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d identicons...", len(inputs)))
	spinner.Start()

	prog := newProgress(logger)
	written, failed := 0, 0
	for i, input := range inputs {
		if ctx.Err() != nil {
			break
		}
		spinner.SetMessage(fmt.Sprintf("Rendering %d/%d: %s", i+1, len(inputs), input))
		_, err := runner.Execute(ctx, pipeline.Options{
			Input:  input,
			Format: format,
			Size:   opts.size,
			Logger: logger,
		})
		if err != nil {
			failed++
			logger.Error("render failed", "input", input, "err", err)
			continue
		}
		written++
	}
	spinner.Stop()

	if ctx.Err() != nil {
		printWarning("Interrupted after %d of %d inputs", written+failed, len(inputs))
		return ctx.Err()
	}

	prog.done(fmt.Sprintf("Rendered %d identicons", written))
	printSuccess("Wrote %d identicons", written)
	if failed > 0 {
		printError("%d inputs failed", failed)
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}
