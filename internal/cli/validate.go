package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gedgraph/pkg/pipeline"
)

// errInvalidData is returned by validate when the data has problems, so the
// process exits non-zero.
var errInvalidData = errors.New("validation failed")

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		flags  buildFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a GEDCOM file or artifact for data problems",
		Long: `Report dangling references, line errors and pedigree cycles (someone
recorded as their own ancestor). Exits non-zero when references are broken,
a cycle exists, or with --strict when any line error was recorded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0], flags, strict)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "treat line errors as failures")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, input string, flags buildFlags, strict bool) error {
	res, err := c.loadArtifact(ctx, input, flags)
	if err != nil {
		return err
	}
	a := res.Artifact
	failed := false

	if len(a.ParseErrors) > 0 {
		printWarning("%d line errors", len(a.ParseErrors))
		printList(a.ParseErrors, maxListed)
		failed = failed || strict
	}
	if len(a.ParseWarnings) > 0 {
		printInfo("%d lines skipped", len(a.ParseWarnings))
		printList(a.ParseWarnings, maxListed)
	}
	if !a.Validation.Valid {
		printError("%d validation errors", len(a.Validation.Errors))
		printList(a.Validation.Errors, maxListed)
		failed = true
	}
	if path := pipeline.PedigreeCycle(a.People); path != nil {
		printError("Pedigree cycle: %s", strings.Join(path, " -> "))
		failed = true
	}

	if failed {
		return errInvalidData
	}
	printSuccess("%d people, no problems found", len(a.People))
	return nil
}
