package genealogy

import (
	"context"
	"errors"
	"maps"

	gerrors "github.com/matzehuels/gedgraph/pkg/errors"
)

// DefaultMaxDepth bounds the generation-distance search. Paths between two
// people longer than this many parent or child steps are reported as
// unrelated.
const DefaultMaxDepth = 10

// ErrPersonNotFound is returned by [Graph] queries when the starting ID names
// no person.
var ErrPersonNotFound = errors.New("person not found")

// NotFound returns the NOT_FOUND error reported for an unknown person id.
func NotFound(id string) error {
	return gerrors.Wrap(gerrors.ErrCodeNotFound, ErrPersonNotFound, "person %s not found", id)
}

// LookupError maps ErrPersonNotFound from a query about id to [NotFound].
// Other errors are returned as is.
func LookupError(id string, err error) error {
	if errors.Is(err, ErrPersonNotFound) {
		return NotFound(id)
	}
	return err
}

// Option configures a Graph.
type Option func(*Graph)

// WithMaxDepth sets the generation-distance depth bound. Values below 1 keep
// DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.maxDepth = n
		}
	}
}

// Graph indexes a converted person list for relationship queries.
//
// A Graph is read-only after construction and safe for concurrent use. The
// people it returns share relationship slices with the list it was built
// from; callers must not modify them.
type Graph struct {
	people   []Person
	index    map[string]int
	maxDepth int
}

// NewGraph indexes people by ID. When IDs repeat, the last person wins the
// index slot.
func NewGraph(people []Person, opts ...Option) *Graph {
	g := &Graph{
		people:   people,
		index:    make(map[string]int, len(people)),
		maxDepth: DefaultMaxDepth,
	}
	for i, p := range people {
		g.index[p.ID] = i
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Len returns the number of people in the graph.
func (g *Graph) Len() int { return len(g.people) }

// MaxDepth returns the generation-distance depth bound.
func (g *Graph) MaxDepth() int { return g.maxDepth }

// People returns every person in source order.
func (g *Graph) People() []Person { return g.people }

// Person looks up a person by ID.
func (g *Graph) Person(id string) (Person, bool) {
	i, ok := g.index[id]
	if !ok {
		return Person{}, false
	}
	return g.people[i], true
}

// Relatives resolves the relationship lists of the person with the given ID.
func (g *Graph) Relatives(id string) (Relatives, error) {
	p, ok := g.Person(id)
	if !ok {
		return Relatives{}, ErrPersonNotFound
	}
	return Relatives{
		Person:   p,
		Parents:  g.resolve(p.Parents),
		Spouses:  g.resolve(p.Spouses),
		Children: g.resolve(p.Children),
		Siblings: g.resolve(p.Siblings),
	}, nil
}

func (g *Graph) resolve(ids []string) []Person {
	out := make([]Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := g.Person(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Ancestors returns every person reachable from id along parent links,
// nearest generation first. Each person appears once and the start person is
// never included, even when the data loops back to it.
func (g *Graph) Ancestors(id string) ([]Person, error) {
	return g.closure(id, func(p Person) []string { return p.Parents })
}

// Descendants returns every person reachable from id along child links,
// nearest generation first.
func (g *Graph) Descendants(id string) ([]Person, error) {
	return g.closure(id, func(p Person) []string { return p.Children })
}

// closure walks breadth-first along next. The depth is unbounded; the
// visited set guarantees termination.
func (g *Graph) closure(id string, next func(Person) []string) ([]Person, error) {
	start, ok := g.Person(id)
	if !ok {
		return nil, ErrPersonNotFound
	}

	out := []Person{}
	visited := map[string]bool{id: true}
	queue := []Person{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nid := range next(cur) {
			if visited[nid] {
				continue
			}
			visited[nid] = true
			if p, ok := g.Person(nid); ok {
				out = append(out, p)
				queue = append(queue, p)
			}
		}
	}
	return out, nil
}

// GenerationDistance returns the signed number of generations from one
// person to another: positive when to is a descendant of from, negative when
// it is an ancestor, 0 when they are the same person. The bool is false when
// no chain of parent and child links of at most MaxDepth steps connects them.
//
// The search is depth-first, children before parents, and returns the first
// path found, which is not necessarily the shortest when the data contains
// pedigree collapse.
func (g *Graph) GenerationDistance(from, to string) (int, bool) {
	return g.distance(from, to, nil, 0)
}

// distance gives every branch its own copy of the visited set so a person
// already seen on one path can still be reached through another.
func (g *Graph) distance(from, to string, visited map[string]bool, depth int) (int, bool) {
	if from == to {
		return 0, true
	}
	if depth >= g.maxDepth || visited[from] {
		return 0, false
	}
	p, ok := g.Person(from)
	if !ok {
		return 0, false
	}

	visited = maps.Clone(visited)
	if visited == nil {
		visited = make(map[string]bool)
	}
	visited[from] = true

	for _, child := range p.Children {
		if d, ok := g.distance(child, to, visited, depth+1); ok {
			return d + 1, true
		}
	}
	for _, parent := range p.Parents {
		if d, ok := g.distance(parent, to, visited, depth+1); ok {
			return d - 1, true
		}
	}
	return 0, false
}

// GenerationLevel returns the generation of to as seen from from, counting
// ancestors as positive: a parent is at level 1, a grandchild at level -2.
// It is the negation of GenerationDistance.
func (g *Graph) GenerationLevel(from, to string) (int, bool) {
	d, ok := g.GenerationDistance(from, to)
	if !ok {
		return 0, false
	}
	return -d, true
}

// PeopleByGeneration returns every person whose GenerationLevel from id
// equals level, in source order. Level 0 includes the start person.
//
// It walks the graph once from id in the order GenerationDistance searches
// and keeps the offset of the first visit to each person, which is the
// offset a search for that person would return. The walk stops with
// ctx.Err() when ctx ends.
func (g *Graph) PeopleByGeneration(ctx context.Context, id string, level int) ([]Person, error) {
	if _, ok := g.Person(id); !ok {
		return nil, ErrPersonNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w := &levelWalk{g: g, ctx: ctx, first: make(map[string]int)}
	w.visit(id, 0, nil, 0)
	if w.err != nil {
		return nil, w.err
	}

	out := []Person{}
	for _, p := range g.people {
		if d, ok := w.first[p.ID]; ok && -d == level {
			out = append(out, p)
		}
	}
	return out, nil
}

// ctxCheckInterval is how many visits a levelWalk makes between context
// checks.
const ctxCheckInterval = 1024

// levelWalk is the exhaustive form of distance: the same traversal, without
// a target, recording the offset at which each person is first reached.
type levelWalk struct {
	g     *Graph
	ctx   context.Context
	first map[string]int
	steps int
	err   error
}

func (w *levelWalk) visit(from string, offset int, visited map[string]bool, depth int) {
	if w.err != nil {
		return
	}
	if w.steps++; w.steps%ctxCheckInterval == 0 {
		if err := w.ctx.Err(); err != nil {
			w.err = err
			return
		}
	}
	if _, seen := w.first[from]; !seen {
		w.first[from] = offset
	}
	if depth >= w.g.maxDepth || visited[from] {
		return
	}
	p, ok := w.g.Person(from)
	if !ok {
		return
	}

	visited = maps.Clone(visited)
	if visited == nil {
		visited = make(map[string]bool)
	}
	visited[from] = true

	for _, child := range p.Children {
		w.visit(child, offset+1, visited, depth+1)
	}
	for _, parent := range p.Parents {
		w.visit(parent, offset-1, visited, depth+1)
	}
}
