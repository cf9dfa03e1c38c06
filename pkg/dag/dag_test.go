package dag

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

func TestAddNodeErrors(t *testing.T) {
	g := New(nil)
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want ErrDuplicateNodeID", err)
	}
	if n, _ := g.Node("a"); n.Meta == nil {
		t.Error("Meta should be initialized")
	}
}

func TestAddEdge(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	if err := g.AddEdge(Edge{From: "x", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge(unknown from) = %v", err)
	}
	if err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge(unknown to) = %v", err)
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want repeated edge ignored", g.EdgeCount())
	}
	if !slices.Equal(g.Parents("b"), []string{"a"}) || !slices.Equal(g.Children("a"), []string{"b"}) {
		t.Errorf("Parents(b) = %v, Children(a) = %v", g.Parents("b"), g.Children("a"))
	}

	g.RemoveEdge("a", "b")
	if g.EdgeCount() != 0 || len(g.Children("a")) != 0 || len(g.Parents("b")) != 0 {
		t.Error("RemoveEdge left edge behind")
	}
}

func TestValidate(t *testing.T) {
	g := New(nil)
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "a", To: "b"})
	_ = g.AddEdge(Edge{From: "b", To: "c"})
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate(acyclic) = %v", err)
	}

	_ = g.AddEdge(Edge{From: "c", To: "b"})
	err := g.Validate()
	if !errors.Is(err, ErrGraphHasCycle) {
		t.Fatalf("Validate(cyclic) = %v, want ErrGraphHasCycle", err)
	}
	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not a *CycleError", err)
	}
	if want := []string{"b", "c", "b"}; !slices.Equal(ce.Path, want) {
		t.Errorf("Path = %v, want %v", ce.Path, want)
	}
	if got := err.Error(); got != "graph contains a cycle: b -> c -> b" {
		t.Errorf("Error() = %q", got)
	}
}

func TestFromPeopleAndAssignRows(t *testing.T) {
	people := []genealogy.Person{
		{ID: "I1", DisplayName: "Pierre", Gender: genealogy.GenderMale, Children: []string{"I3"}},
		{ID: "I2", DisplayName: "Marguerite", Gender: genealogy.GenderFemale, Children: []string{"I3"}},
		{ID: "I3", Children: []string{"I5", "missing"}},
		{ID: "I4", Children: []string{"I5"}},
		{ID: "I5"},
	}
	g := FromPeople(people)

	if g.NodeCount() != 5 || g.EdgeCount() != 4 {
		t.Fatalf("nodes/edges = %d/%d, want 5/4", g.NodeCount(), g.EdgeCount())
	}
	if n, _ := g.Node("I1"); n.Meta[MetaLabel] != "Pierre" || n.Meta[MetaGender] != "male" {
		t.Errorf("I1 meta = %v", n.Meta)
	}

	AssignRows(g)

	want := map[string]int{"I1": 0, "I2": 0, "I3": 1, "I4": 0, "I5": 2}
	for id, row := range want {
		if n, _ := g.Node(id); n.Row != row {
			t.Errorf("%s.Row = %d, want %d", id, n.Row, row)
		}
	}
	if !slices.Equal(g.RowIDs(), []int{0, 1, 2}) {
		t.Errorf("RowIDs = %v", g.RowIDs())
	}
	var row0 []string
	for _, n := range g.NodesInRow(0) {
		row0 = append(row0, n.ID)
	}
	if !slices.Equal(row0, []string{"I1", "I2", "I4"}) {
		t.Errorf("row 0 = %v, want insertion order", row0)
	}
	if len(g.Sources()) != 3 {
		t.Errorf("len(Sources) = %d, want 3", len(g.Sources()))
	}
}

func TestBreakCycles(t *testing.T) {
	tests := []struct {
		name    string
		edges   [][2]string
		removed int
	}{
		{"acyclic", [][2]string{{"a", "b"}, {"b", "c"}}, 0},
		{"two-cycle", [][2]string{{"a", "b"}, {"b", "a"}}, 1},
		{"triangle", [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			for _, id := range []string{"a", "b", "c"} {
				_ = g.AddNode(Node{ID: id})
			}
			for _, e := range tt.edges {
				_ = g.AddEdge(Edge{From: e[0], To: e[1]})
			}
			if got := BreakCycles(g); got != tt.removed {
				t.Errorf("BreakCycles() = %d, want %d", got, tt.removed)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate after BreakCycles = %v", err)
			}
		})
	}
}
