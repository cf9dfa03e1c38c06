package dag

// AssignRows places every node one row below its deepest parent, so
// founders sit in row 0 and each generation follows.
//
// It is the longest-path layering computed with Kahn's topological sort in
// O(V+E). Nodes on a cycle never reach in-degree zero and keep row 0; run
// [BreakCycles] first on data that may loop.
func AssignRows(g *DAG) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		deg := g.InDegree(n.ID)
		inDegree[n.ID] = deg
		rows[n.ID] = 0
		if deg == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range g.Children(curr) {
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
}

// BreakCycles removes back edges found by a depth-first search from the
// sources, then from any node not yet reached, and returns how many edges
// were removed. The result is acyclic.
func BreakCycles(g *DAG) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var back [][2]string

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, child := range g.Children(id) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				back = append(back, [2]string{id, child})
			}
		}
		color[id] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range back {
		g.RemoveEdge(e[0], e[1])
	}
	return len(back)
}
