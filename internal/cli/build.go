package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	gio "github.com/matzehuels/gedgraph/pkg/io"
	"github.com/matzehuels/gedgraph/pkg/store/mongo"
)

// maxListed bounds the problems printed per category.
const maxListed = 10

type buildOpts struct {
	buildFlags
	output   string
	mongoURI string
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [file.ged]",
		Short: "Parse a GEDCOM file into a JSON artifact",
		Long: `Parse a GEDCOM file, derive parents, spouses, children and siblings for
every person, validate the references and write the result as JSON.

Line-level problems never stop the build; they are recorded in the
artifact's parseErrors and parseWarnings lists.`,
		Example: `  gedgraph build family.ged
  gedgraph build family.ged -o out/family.json --refresh
  gedgraph build family.ged --mongo-uri mongodb://localhost:27017`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.json)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "also save the people to MongoDB (default from config)")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, input string, opts buildOpts) error {
	prog := newProgress(c.Logger)
	res, err := c.loadArtifact(ctx, input, opts.buildFlags)
	if err != nil {
		return err
	}
	a := res.Artifact

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
	}
	if err := gio.ExportJSON(a, out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built %d people", len(a.People)))

	printSuccess("Built %s", filepath.Base(input))
	printBuildStats(len(a.People), a.Statistics.TotalFamilies, res.CacheHit)
	printFile(out)
	if n := len(a.ParseErrors); n > 0 {
		printWarning("%d line errors (see parseErrors)", n)
	}
	if !a.Validation.Valid {
		printWarning("%d validation issues", len(a.Validation.Errors))
	}

	uri := opts.mongoURI
	if uri == "" {
		uri = c.cfg.Store.MongoURI
	}
	if uri != "" {
		if err := c.savePeople(ctx, uri, a); err != nil {
			return err
		}
	}

	printNextStep("Query it", fmt.Sprintf("gedgraph query search %s --name <text>", out))
	return nil
}

func (c *CLI) savePeople(ctx context.Context, uri string, a *gio.Artifact) error {
	store, err := mongo.Open(ctx, uri, c.cfg.Store.Database, c.cfg.Store.Collection)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	if err := store.SavePeople(ctx, a.BuildID, a.People); err != nil {
		return fmt.Errorf("save to mongo: %w", err)
	}
	printInfo("Saved %d people to MongoDB", len(a.People))
	return nil
}
