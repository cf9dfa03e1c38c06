package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	gerrors "github.com/matzehuels/gedgraph/pkg/errors"
	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

// queryCommand creates the query command. Every subcommand takes the input
// (a GEDCOM file or a built JSON artifact) as its first argument and writes
// JSON to stdout.
func (c *CLI) queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Answer relationship questions about a family graph",
		Example: `  gedgraph query person family.ged I1
  gedgraph query ancestors family.json I5
  gedgraph query distance family.ged I1 I5
  gedgraph query generation family.ged I5 2
  gedgraph query search family.ged --name delpech`,
	}

	var flags buildFlags
	cmd.PersistentFlags().BoolVar(&flags.noCache, "no-cache", false, "disable the artifact cache")
	cmd.PersistentFlags().IntVar(&flags.maxDepth, "max-depth", 0, "generation distance search depth (default from config)")

	cmd.AddCommand(c.queryPersonCommand(&flags))
	cmd.AddCommand(c.queryClosureCommand(&flags, "ancestors", "List every ancestor of a person", (*genealogy.Graph).Ancestors))
	cmd.AddCommand(c.queryClosureCommand(&flags, "descendants", "List every descendant of a person", (*genealogy.Graph).Descendants))
	cmd.AddCommand(c.queryDistanceCommand(&flags))
	cmd.AddCommand(c.queryGenerationCommand(&flags))
	cmd.AddCommand(c.querySearchCommand(&flags))

	return cmd
}

// graph loads input and indexes its people.
func (c *CLI) graph(cmd *cobra.Command, input string, flags buildFlags) (*genealogy.Graph, error) {
	res, err := c.loadArtifact(cmd.Context(), input, flags)
	if err != nil {
		return nil, err
	}
	depth := flags.maxDepth
	if depth == 0 {
		depth = c.cfg.Relations.MaxDepth
	}
	return genealogy.NewGraph(res.Artifact.People, genealogy.WithMaxDepth(depth)), nil
}

func (c *CLI) queryPersonCommand(flags *buildFlags) *cobra.Command {
	var relatives bool
	cmd := &cobra.Command{
		Use:               "person [file] [id]",
		Short:             "Show one person",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completePersonIDs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gerrors.ParsePersonID(args[1])
			if err != nil {
				return err
			}
			g, err := c.graph(cmd, args[0], *flags)
			if err != nil {
				return err
			}
			if relatives {
				rel, err := g.Relatives(id)
				if err != nil {
					return genealogy.LookupError(id, err)
				}
				return writeJSON(cmd, rel)
			}
			p, ok := g.Person(id)
			if !ok {
				return genealogy.NotFound(id)
			}
			return writeJSON(cmd, p)
		},
	}
	cmd.Flags().BoolVar(&relatives, "relatives", false, "resolve parents, spouses, children and siblings")
	return cmd
}

func (c *CLI) queryClosureCommand(flags *buildFlags, use, short string, walk func(*genealogy.Graph, string) ([]genealogy.Person, error)) *cobra.Command {
	return &cobra.Command{
		Use:               use + " [file] [id]",
		Short:             short,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completePersonIDs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gerrors.ParsePersonID(args[1])
			if err != nil {
				return err
			}
			g, err := c.graph(cmd, args[0], *flags)
			if err != nil {
				return err
			}
			people, err := walk(g, id)
			if err != nil {
				return genealogy.LookupError(id, err)
			}
			return writeJSON(cmd, people)
		},
	}
}

// distanceResult mirrors the server's distance response.
type distanceResult struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance *int   `json:"distance"`
	Level    *int   `json:"generationLevel"`
}

func (c *CLI) queryDistanceCommand(flags *buildFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "distance [file] [from] [to]",
		Short: "Signed generation distance between two people",
		Long: `Print the number of generations from one person to another: positive when
the second is a descendant of the first, negative when an ancestor, null when
they are not connected within the search depth. generationLevel is the same
value counted with ancestors positive.`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: c.completePersonIDs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := gerrors.ParsePersonID(args[1])
			if err != nil {
				return err
			}
			to, err := gerrors.ParsePersonID(args[2])
			if err != nil {
				return err
			}
			g, err := c.graph(cmd, args[0], *flags)
			if err != nil {
				return err
			}
			for _, id := range []string{from, to} {
				if _, ok := g.Person(id); !ok {
					return genealogy.NotFound(id)
				}
			}

			res := distanceResult{From: from, To: to}
			if d, ok := g.GenerationDistance(from, to); ok {
				level := -d
				res.Distance, res.Level = &d, &level
			}
			return writeJSON(cmd, res)
		},
	}
}

func (c *CLI) queryGenerationCommand(flags *buildFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "generation [file] [id] [level]",
		Short: "List the people at a generation level (parents 1, children -1)",
		Example: `  gedgraph query generation family.ged I5 2
  gedgraph query generation family.ged I1 -- -2`,
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: c.completePersonIDs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gerrors.ParsePersonID(args[1])
			if err != nil {
				return err
			}
			g, err := c.graph(cmd, args[0], *flags)
			if err != nil {
				return err
			}
			level, err := gerrors.ParseGenerationLevel(args[2], g.MaxDepth())
			if err != nil {
				return err
			}
			people, err := g.PeopleByGeneration(cmd.Context(), id, level)
			if err != nil {
				return genealogy.LookupError(id, err)
			}
			return writeJSON(cmd, people)
		},
	}
}

func (c *CLI) querySearchCommand(flags *buildFlags) *cobra.Command {
	var name, tag, profession string
	cmd := &cobra.Command{
		Use:   "search [file]",
		Short: "Filter people by name, tag or profession",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.graph(cmd, args[0], *flags)
			if err != nil {
				return err
			}
			people := g.People()
			if name != "" {
				people = genealogy.SearchByName(people, name)
			}
			if tag != "" {
				people = genealogy.FilterByTag(people, tag)
			}
			if profession != "" {
				people = genealogy.FilterByProfession(people, profession)
			}
			if people == nil {
				people = []genealogy.Person{}
			}
			return writeJSON(cmd, people)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "substring of the name")
	cmd.Flags().StringVar(&tag, "tag", "", "substring of a tag")
	cmd.Flags().StringVar(&profession, "profession", "", "keyword in name, bio or tags")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
