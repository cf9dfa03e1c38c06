// Package dag provides the directed pedigree graph used to lay out a family
// tree by generation.
//
// # Overview
//
// Nodes are people and edges run from parent to child. Each node carries a
// row: row 0 holds the founders and every later row holds the next
// generation. The renderer in package render uses the rows to align each
// generation on one rank.
//
// # Basic Usage
//
// Build the graph from a converted person list with [FromPeople], then
// assign generations with [AssignRows]:
//
//	g := dag.FromPeople(people)
//	if err := g.Validate(); err != nil {
//		// someone is their own ancestor
//		dag.BreakCycles(g)
//	}
//	dag.AssignRows(g)
//	for _, row := range g.RowIDs() {
//		for _, n := range g.NodesInRow(row) { ... }
//	}
//
// Graphs can also be assembled by hand with [New], [DAG.AddNode] and
// [DAG.AddEdge].
//
// # Cycles
//
// Genealogical data entered by hand can loop: a person recorded as the child
// of their own descendant. [DAG.Validate] reports the first such loop as a
// [*CycleError] naming the people on it, and [BreakCycles] removes the back
// edges so that layering can proceed.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package dag
