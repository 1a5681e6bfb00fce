package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/identicon"
	"github.com/matzehuels/identicon/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	format  string // output format: "png" or "svg"
	output  string // output directory
	size    int    // output edge length in pixels (0 = native 250)
	noCache bool   // bypass and skip the artifact cache
	refresh bool   // re-render even on a cache hit
	random  bool   // derive from a random UUID instead of an argument
	show    bool   // print the derived color and cell count
}

// newGenerateCmd creates the generate command for rendering one identicon.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Render an identicon and write it to a file",
		Long: `Generate derives a deterministic identicon from the input string and
writes the rendered image to <input>.<format> in the output directory.
With --random a fresh UUID is used as the input instead of an argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args, opts.random)
			if err != nil {
				return err
			}
			return runGenerate(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: current directory)")
	cmd.Flags().IntVar(&opts.size, "size", 0, "output edge length in pixels (default: 250)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().BoolVar(&opts.random, "random", false, "derive from a random UUID")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print the derived color and grid summary")

	return cmd
}

// resolveInput picks the pipeline input from the positional argument or,
// with --random, a fresh UUID.
func resolveInput(args []string, random bool) (string, error) {
	if random {
		return uuid.NewString(), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("input argument is required (or use --random)")
	}
	return args[0], nil
}

// runGenerate executes the pipeline for a single input.
func runGenerate(cmd *cobra.Command, input string, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

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

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Format:  format,
		Size:    opts.size,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %q", input))

	printSuccess("Wrote %s", result.Path)
	if result.CacheInfo.RenderHit {
		printDetail("render: cached")
	}
	if opts.show {
		img := result.Image
		printDetail("color: %s", colorSwatch(img.Color.R, img.Color.G, img.Color.B))
		printDetail("squares: %d of %d", len(img.PixelMap), identicon.GridSize*identicon.GridSize)
	}
	return nil
}
