package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/gedgraph/pkg/dag"
	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// Options configures diagram rendering.
type Options struct {
	// Detailed adds life dates, birth place and generation row to labels.
	// When false, only the display name is shown.
	Detailed bool
}

var genderFill = map[genealogy.Gender]string{
	genealogy.GenderMale:   "#dbe9f6",
	genealogy.GenderFemale: "#f8dde3",
	genealogy.GenderOther:  "#eeeeee",
}

// ToDOT converts people to Graphviz DOT source.
// The result can be rendered with [RenderSVG].
func ToDOT(people []genealogy.Person, opts Options) string {
	g := dag.FromPeople(people)
	dag.BreakCycles(g)
	dag.AssignRows(g)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range people {
		n, ok := g.Node(p.ID)
		if !ok {
			continue
		}
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(p, n.Row, opts.Detailed)),
			fmt.Sprintf("fillcolor=%q", fillColor(p.Gender)),
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", p.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	// Spouse pairs are emitted once, from the lexically smaller ID.
	for _, p := range people {
		for _, s := range p.Spouses {
			if _, ok := g.Node(s); !ok || s <= p.ID {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=dashed, constraint=false];\n", p.ID, s)
		}
	}

	buf.WriteString("\n")
	for _, row := range g.RowIDs() {
		nodes := g.NodesInRow(row)
		if len(nodes) < 2 {
			continue
		}
		ids := make([]string, len(nodes))
		for i, n := range nodes {
			ids[i] = fmt.Sprintf("%q", n.ID)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p genealogy.Person, row int, detailed bool) string {
	name := p.DisplayName
	if name == "" {
		name = p.ID
	}
	if !detailed {
		return name
	}

	parts := []string{name}
	if life := lifespan(p); life != "" {
		parts = append(parts, life)
	}
	if p.BirthPlace != "" {
		parts = append(parts, p.BirthPlace)
	}
	parts = append(parts, fmt.Sprintf("gen: %d", row))
	return strings.Join(parts, "\n")
}

// lifespan formats "1760-1822", "b. 1760" or "d. 1822" from ISO dates.
func lifespan(p genealogy.Person) string {
	birth, death := year(p.BirthDate), year(p.DeathDate)
	switch {
	case birth != "" && death != "":
		return birth + "-" + death
	case birth != "":
		return "b. " + birth
	case death != "":
		return "d. " + death
	}
	return ""
}

func year(iso string) string {
	if len(iso) < 4 {
		return ""
	}
	return iso[:4]
}

func fillColor(g genealogy.Gender) string {
	if c, ok := genderFill[g]; ok {
		return c
	}
	return genderFill[genealogy.GenderOther]
}
