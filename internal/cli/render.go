package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedgraph/pkg/pipeline"
)

type renderOpts struct {
	buildFlags
	output   string
	format   string
	detailed bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the family graph with Graphviz",
		Long: `Render people as boxes colored by gender, parent-child arrows and dashed
spouse links, one generation per row. The input is a GEDCOM file or a built
JSON artifact.`,
		Example: `  gedgraph render family.ged
  gedgraph render family.json -f dot -o family.dot --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "add life dates, birth place and generation to labels")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	ropts := pipeline.RenderOptions{Format: opts.format, Detailed: opts.detailed}
	if err := ropts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	res, err := c.loadArtifact(ctx, input, opts.buildFlags)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	data, hit, err := runner.Render(ctx, res.Artifact, ropts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d people", len(res.Artifact.People)))

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "." + ropts.Format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Rendered %s", ropts.Format)
	printBuildStats(len(res.Artifact.People), res.Artifact.Statistics.TotalFamilies, hit)
	printFile(out)
	return nil
}
