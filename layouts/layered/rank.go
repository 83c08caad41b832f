package layered

import (
	"golang.org/x/exp/slices"

	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/geo"
)

// TopologicalSort orders nodes with Kahn's algorithm, always taking the
// lexicographically greatest ready id. When a cycle stalls the sort, one node
// of a cycle with no unsorted predecessors outside its cycle is taken next:
// the one with the most sorted predecessors, ties going to input order.
func TopologicalSort(nodes []string, edges []*graph.Edge) []string {
	known := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		known[id] = struct{}{}
	}
	inDegree := make(map[string]int, len(nodes))
	out := make(map[string][]string, len(nodes))
	in := make(map[string][]string, len(nodes))
	for _, e := range edges {
		if !isKnown(known, e.From) || !isKnown(known, e.To) {
			continue
		}
		inDegree[e.To]++
		out[e.From] = append(out[e.From], e.To)
		in[e.To] = append(in[e.To], e.From)
	}

	var stack []string
	for _, id := range nodes {
		if inDegree[id] == 0 {
			stack = append(stack, id)
		}
	}
	slices.Sort(stack)

	var scc map[string]int
	order := make([]string, 0, len(nodes))
	visited := make(map[string]struct{}, len(nodes))
	for len(order) < len(known) {
		if len(stack) == 0 {
			if scc == nil {
				scc = components(nodes, out)
			}
			stack = append(stack, breakCycle(nodes, in, visited, scc))
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		order = append(order, id)

		pushed := false
		for _, to := range out[id] {
			inDegree[to]--
			if inDegree[to] == 0 {
				stack = append(stack, to)
				pushed = true
			}
		}
		if pushed {
			slices.Sort(stack)
		}
	}
	return order
}

// breakCycle picks the node to take when no node is ready. Its unsorted
// predecessors all share its strongly connected component, so every edge
// entering that component from outside is already behind it.
func breakCycle(nodes []string, in map[string][]string, visited map[string]struct{}, scc map[string]int) string {
	best, bestSorted := "", -1
	for _, id := range nodes {
		if _, ok := visited[id]; ok {
			continue
		}
		sorted := 0
		entry := true
		for _, p := range in[id] {
			if _, ok := visited[p]; ok {
				sorted++
			} else if scc[p] != scc[id] {
				entry = false
				break
			}
		}
		if entry && sorted > bestSorted {
			best, bestSorted = id, sorted
		}
	}
	return best
}

// components numbers the strongly connected components of the graph with
// Tarjan's algorithm.
func components(nodes []string, out map[string][]string) map[string]int {
	index := make(map[string]int, len(nodes))
	low := make(map[string]int, len(nodes))
	onStack := make(map[string]bool, len(nodes))
	comp := make(map[string]int, len(nodes))
	var stack []string
	next, ncomp := 0, 0

	var visit func(id string)
	visit = func(id string) {
		index[id] = next
		low[id] = next
		next++
		stack = append(stack, id)
		onStack[id] = true

		for _, to := range out[id] {
			if _, ok := index[to]; !ok {
				visit(to)
				low[id] = geo.Min(low[id], low[to])
			} else if onStack[to] {
				low[id] = geo.Min(low[id], index[to])
			}
		}

		if low[id] == index[id] {
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[top] = false
				comp[top] = ncomp
				if top == id {
					break
				}
			}
			ncomp++
		}
	}
	for _, id := range nodes {
		if _, ok := index[id]; !ok {
			visit(id)
		}
	}
	return comp
}

func isKnown(known map[string]struct{}, id string) bool {
	_, ok := known[id]
	return ok
}

// AssignRanks gives every node the longest-path rank over the order of
// TopologicalSort, counting only predecessors ranked before it. Every edge
// outside a cycle therefore points to a higher rank.
func AssignRanks(nodes []string, edges []*graph.Edge) map[string]int {
	known := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		known[id] = struct{}{}
	}
	preds := make(map[string][]string, len(nodes))
	for _, e := range edges {
		if !isKnown(known, e.From) || !isKnown(known, e.To) {
			continue
		}
		preds[e.To] = append(preds[e.To], e.From)
	}

	ranks := make(map[string]int, len(nodes))
	for _, id := range TopologicalSort(nodes, edges) {
		r := 0
		for _, p := range preds[id] {
			if pr, ok := ranks[p]; ok && pr+1 > r {
				r = pr + 1
			}
		}
		ranks[id] = r
	}
	return ranks
}

// Layers groups nodes by rank. Each layer is sorted by id.
func Layers(nodes []string, ranks map[string]int) [][]string {
	maxRank := -1
	for _, id := range nodes {
		if r := ranks[id]; r > maxRank {
			maxRank = r
		}
	}
	layers := make([][]string, maxRank+1)
	for _, id := range nodes {
		r := ranks[id]
		layers[r] = append(layers[r], id)
	}
	out := layers[:0]
	for _, l := range layers {
		if len(l) == 0 {
			continue
		}
		slices.Sort(l)
		out = append(out, l)
	}
	return out
}
