package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedgraph/internal/server"
	"github.com/matzehuels/gedgraph/pkg/genealogy"
	"github.com/matzehuels/gedgraph/pkg/observability"
	"github.com/matzehuels/gedgraph/pkg/store/mongo"
)

type serveOpts struct {
	buildFlags
	addr      string
	fromMongo bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the family graph over HTTP",
		Long: `Load a GEDCOM file, a built JSON artifact, or (with --from-mongo) the
people saved by "build --mongo-uri", and serve them as a read-only JSON API:

  GET /api/genealogy/data
  GET /api/people?q=&tag=&profession=
  GET /api/people/{id}[/relatives|/ancestors|/descendants|/generation/{level}]
  GET /api/distance?from=&to=
  GET /api/statistics
  GET /healthz
  GET /metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runServe(cmd.Context(), input, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&opts.fromMongo, "from-mongo", false, "load people from the configured MongoDB store")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input string, opts serveOpts) error {
	depth := opts.maxDepth
	if depth == 0 {
		depth = c.cfg.Relations.MaxDepth
	}
	people := genealogy.NewCache(genealogy.WithMaxDepth(depth))

	if err := c.fillPeople(ctx, people, input, opts); err != nil {
		return err
	}
	printSuccess("Loaded %d people", people.Graph().Len())

	addr := opts.addr
	if addr == "" {
		addr = c.cfg.Server.Addr
	}
	printKeyValue("Listening", addr)

	srv := server.New(people, c.Logger)
	observability.SetHTTPHooks(srv.Metrics())
	return srv.ListenAndServe(ctx, server.Options{
		Addr:         addr,
		ReadTimeout:  c.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: c.cfg.Server.WriteTimeout.Duration,
	})
}

func (c *CLI) fillPeople(ctx context.Context, people *genealogy.Cache, input string, opts serveOpts) error {
	if !opts.fromMongo {
		if input == "" {
			return errors.New("an input file is required unless --from-mongo is set")
		}
		res, err := c.loadArtifact(ctx, input, opts.buildFlags)
		if err != nil {
			return err
		}
		people.Store(res.Artifact.People, res.Artifact.Statistics)
		return nil
	}

	if c.cfg.Store.MongoURI == "" {
		return errors.New("--from-mongo needs store.mongo_uri in the config file")
	}
	store, err := mongo.Open(ctx, c.cfg.Store.MongoURI, c.cfg.Store.Database, c.cfg.Store.Collection)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	list, err := store.LoadPeople(ctx)
	if err != nil {
		return err
	}
	people.Store(list, genealogy.ComputeStatistics(list))
	return nil
}
