// Package render draws a family graph as a Graphviz diagram.
//
// # Overview
//
// [ToDOT] turns a person list into Graphviz DOT source:
//
//   - one box per person, filled by gender
//   - a solid arrow from each parent to each child
//   - a dashed, undirected edge between spouses
//   - people of the same generation on the same rank
//
// Generations come from the pedigree DAG in package dag: founders sit in the
// top row and everyone else one row below their lowest parent. Parent edges
// that would close a cycle are dropped before the rows are computed, so
// malformed data still renders.
//
// [RenderSVG] runs the DOT source through the Graphviz library bundled with
// go-graphviz; no external binary is needed.
//
//	dot := render.ToDOT(people, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(ctx, dot)
package render
