package dag

import "github.com/matzehuels/gedgraph/pkg/genealogy"

// Node metadata keys set by [FromPeople].
const (
	MetaLabel  = "label"
	MetaGender = "gender"
)

// FromPeople builds the pedigree graph of people: one node per person and
// one parent→child edge per entry of each person's Children list. Child IDs
// that name no person are skipped, as are repeated IDs. Rows are left at 0;
// call [AssignRows] to lay out generations.
func FromPeople(people []genealogy.Person) *DAG {
	g := New(nil)
	for _, p := range people {
		_ = g.AddNode(Node{ID: p.ID, Meta: Metadata{
			MetaLabel:  p.DisplayName,
			MetaGender: string(p.Gender),
		}})
	}
	for _, p := range people {
		for _, child := range p.Children {
			_ = g.AddEdge(Edge{From: p.ID, To: child})
		}
	}
	return g
}
