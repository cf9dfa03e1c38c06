package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/gedgraph/pkg/cache"
	"github.com/matzehuels/gedgraph/pkg/dag"
	gerrors "github.com/matzehuels/gedgraph/pkg/errors"
	"github.com/matzehuels/gedgraph/pkg/gedcom"
	"github.com/matzehuels/gedgraph/pkg/genealogy"
	gio "github.com/matzehuels/gedgraph/pkg/io"
	"github.com/matzehuels/gedgraph/pkg/observability"
)

// LoadSource reads a GEDCOM file. A bad path yields an INVALID_PATH or
// INVALID_FORMAT error and a missing file a FILE_NOT_FOUND error.
func LoadSource(path string) ([]byte, error) {
	if err := gerrors.ValidateSourcePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, gerrors.Wrap(gerrors.ErrCodeFileNotFound, err, "source file %s not found", path)
	}
	if err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInternal, err, "read %s", path)
	}
	return data, nil
}

// Build parses src and returns the artifact without consulting a cache.
// Line-level problems are recorded in the artifact, never returned; the only
// errors are invalid options and a cancelled context.
func Build(ctx context.Context, src []byte, opts Options) (*gio.Artifact, Stats, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, Stats{}, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnParseStart(ctx, opts.Source)

	parser := gedcom.NewParser(gedcom.Options{
		Lookahead: opts.Lookahead,
		Logger:    opts.Logger.Debugf,
	})
	res := parser.Parse(string(src))
	people := genealogy.Convert(res)

	stats := genealogy.ComputeStatistics(people)
	stats.TotalFamilies = len(res.Families)

	a := &gio.Artifact{
		BuildID:       uuid.NewString(),
		Source:        opts.Source,
		SourceHash:    cache.Hash(src),
		People:        people,
		Statistics:    stats,
		ParsedAt:      res.ParsedAt,
		ParseErrors:   res.Errors,
		ParseWarnings: res.Warnings,
		Validation:    genealogy.Validate(people),
	}

	s := Stats{
		Lines:      res.TotalLines,
		People:     len(people),
		Families:   len(res.Families),
		LineErrors: len(res.Errors),
		BuildTime:  time.Since(start),
	}
	hooks.OnParseComplete(ctx, opts.Source, s.People, s.LineErrors, s.BuildTime, nil)
	hooks.OnValidate(ctx, opts.Source, a.Validation.Valid, len(a.Validation.Errors))

	if path := PedigreeCycle(people); path != nil {
		opts.Logger.Warn("pedigree contains a cycle", "path", path)
	}
	return a, s, nil
}

// PedigreeCycle returns the IDs along a parent→child cycle (someone who is
// their own ancestor), first ID repeated at the end, or nil when the
// pedigree is acyclic.
func PedigreeCycle(people []genealogy.Person) []string {
	var cerr *dag.CycleError
	if errors.As(dag.FromPeople(people).Validate(), &cerr) {
		return cerr.Path
	}
	return nil
}
