// Package pkg provides the core libraries of gedgraph.
//
// # Overview
//
// gedgraph turns GEDCOM genealogy files into a normalized family graph: a
// flat list of people, each carrying the IDs of their parents, spouses,
// children and siblings. The graph can be validated, exported as JSON,
// queried for ancestors, descendants and generation distances, rendered
// with Graphviz, or served over HTTP.
//
// # Architecture
//
// The data flow through gedgraph:
//
//	GEDCOM text
//	     ↓
//	[gedcom] package (tokenize lines, assemble INDI and FAM records)
//	     ↓
//	[genealogy] package (derive relations, validate, index, query)
//	     ↓
//	[io] package (JSON artifact)      [render] package (DOT, SVG)
//
// # Quick Start
//
// Parse a file and walk a person's ancestors:
//
//	import (
//	    "github.com/matzehuels/gedgraph/pkg/gedcom"
//	    "github.com/matzehuels/gedgraph/pkg/genealogy"
//	)
//
//	res := gedcom.Parse(text)
//	people := genealogy.Convert(res)
//	g := genealogy.NewGraph(people)
//	ancestors, err := g.Ancestors("I5")
//
// # Main Packages
//
// ## Core Domain Logic
//
// [gedcom] - Line tokenizer and record assembler for the GEDCOM subset that
// describes individuals and families. Malformed lines never abort a parse.
//
// [genealogy] - The [genealogy.Person] model, conversion from parsed
// records, reference validation, search filters, statistics and the indexed
// [genealogy.Graph] with relatives, ancestors, descendants and signed
// generation distance.
//
// [dag] - Row-based layered graph of the parent-to-child relation, with
// cycle breaking for data that records someone as their own ancestor.
//
// ## Output
//
// [io] - The JSON artifact: people, statistics, validation outcome and line
// errors of one build.
//
// [render] - Graphviz diagrams with one rank per generation.
//
// ## Infrastructure
//
// [pipeline] - Build and render orchestration with content-addressed
// caching, shared by the CLI and the server.
//
// [cache] - Cache backends: file, Redis and a null cache.
//
// [store/mongo] - MongoDB persistence of built people.
//
// [errors] - Coded errors with user messages and HTTP status mapping.
//
// [observability] - Hooks for parse, render, cache and HTTP events.
//
// [buildinfo] - Version information set at link time.
//
// [gedcom]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/gedcom
// [genealogy]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/genealogy
// [dag]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/dag
// [io]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/cache
// [store/mongo]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/store/mongo
// [errors]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gedgraph/pkg/buildinfo
package pkg
