// Package genealogy turns parsed GEDCOM records into a canonical person graph
// and answers relationship queries over it.
//
// # Conversion
//
// [Convert] maps every raw individual to a [Person] with normalized gender,
// ISO dates, formatted places and four relationship lists (parents, spouses,
// children, siblings) derived from family membership. Relationship lists are
// deduplicated and never reference a person missing from the output.
// [Validate] reports the data-quality problems of a person list without
// changing it.
//
// # Queries
//
// A [Graph] indexes a person list:
//
//	g := genealogy.NewGraph(people)
//	ancestors, err := g.Ancestors("I5")
//	d, ok := g.GenerationDistance("I1", "I5") // 2, true: I5 is a grandchild
//	l, ok := g.GenerationLevel("I1", "I5")    // -2, true
//
// Generation distance counts descendants as positive; generation level is its
// negation and counts ancestors as positive. Both search at most
// [DefaultMaxDepth] steps unless configured with [WithMaxDepth]. Ancestor and
// descendant closures are unbounded.
//
// [SearchByName], [FilterByTag] and [FilterByProfession] are case-insensitive
// substring filters over a person list.
//
// # Caching
//
// [Cache] keeps the most recently loaded list for a long-running process such
// as the HTTP server. It has no implicit invalidation.
package genealogy
