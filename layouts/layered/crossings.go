package layered

import (
	"golang.org/x/exp/slices"

	"oss.terrastruct.com/textgraph/graph"
)

// Sweep is the direction of a barycenter pass.
type Sweep int

const (
	// Down orders a layer by the positions of its predecessors.
	Down Sweep = iota
	// Up orders a layer by the positions of its successors.
	Up
)

type Barycenter struct {
	Value float64
	// Valid is false when the node has no neighbor in the reference layer.
	Valid bool
}

func positions(layer []string) map[string]int {
	pos := make(map[string]int, len(layer))
	for i, id := range layer {
		pos[id] = i
	}
	return pos
}

// CrossCount sums, over every pair of adjacent layers, the pairs of edges
// between them whose endpoints are in inverted order.
func CrossCount(layers [][]string, edges []*graph.Edge) int {
	total := 0
	for i := 0; i+1 < len(layers); i++ {
		total += countBetween(layers[i], layers[i+1], edges)
	}
	return total
}

func countBetween(upper, lower []string, edges []*graph.Edge) int {
	upos := positions(upper)
	lpos := positions(lower)
	type pair struct{ a, b int }
	var pairs []pair
	for _, e := range edges {
		a, ok := upos[e.From]
		if !ok {
			continue
		}
		b, ok := lpos[e.To]
		if !ok {
			continue
		}
		pairs = append(pairs, pair{a, b})
	}

	count := 0
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			p, q := pairs[i], pairs[j]
			if (p.a < q.a && p.b > q.b) || (p.a > q.a && p.b < q.b) {
				count++
			}
		}
	}
	return count
}

// Barycenters returns, for each node of layer, the mean position in ref of the
// neighbors the sweep looks at.
func Barycenters(layer, ref []string, edges []*graph.Edge, sweep Sweep) []Barycenter {
	rpos := positions(ref)
	idx := positions(layer)
	sums := make([]int, len(layer))
	counts := make([]int, len(layer))
	for _, e := range edges {
		node, neighbor := e.To, e.From
		if sweep == Up {
			node, neighbor = e.From, e.To
		}
		i, ok := idx[node]
		if !ok {
			continue
		}
		p, ok := rpos[neighbor]
		if !ok {
			continue
		}
		sums[i] += p
		counts[i]++
	}

	bcs := make([]Barycenter, len(layer))
	for i := range layer {
		if counts[i] == 0 {
			continue
		}
		bcs[i] = Barycenter{
			Value: float64(sums[i]) / float64(counts[i]),
			Valid: true,
		}
	}
	return bcs
}

// OrderLayerByBarycenter stable sorts layer by ascending barycenter. Nodes
// without one go last in their original order.
func OrderLayerByBarycenter(layer []string, bcs []Barycenter) []string {
	idx := make([]int, len(layer))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) bool {
		ba, bb := bcs[a], bcs[b]
		if !ba.Valid || !bb.Valid {
			return ba.Valid && !bb.Valid
		}
		return ba.Value < bb.Value
	})

	out := make([]string, len(layer))
	for i, j := range idx {
		out[i] = layer[j]
	}
	return out
}

// OrderLayersBarycenter alternates down and up sweeps and returns the ordering
// with the fewest crossings seen along with that count. A sweep only replaces
// the best ordering when it strictly improves on it.
func OrderLayersBarycenter(layers [][]string, edges []*graph.Edge, iterations int) ([][]string, int) {
	if len(layers) < 2 {
		return layers, 0
	}

	cur := cloneLayers(layers)
	best := cloneLayers(cur)
	bestCount := CrossCount(best, edges)

	for it := 0; it < iterations && bestCount > 0; it++ {
		if it%2 == 0 {
			for i := 1; i < len(cur); i++ {
				cur[i] = OrderLayerByBarycenter(cur[i], Barycenters(cur[i], cur[i-1], edges, Down))
			}
		} else {
			for i := len(cur) - 2; i >= 0; i-- {
				cur[i] = OrderLayerByBarycenter(cur[i], Barycenters(cur[i], cur[i+1], edges, Up))
			}
		}
		if c := CrossCount(cur, edges); c < bestCount {
			best = cloneLayers(cur)
			bestCount = c
		}
	}
	return best, bestCount
}

func cloneLayers(layers [][]string) [][]string {
	out := make([][]string, len(layers))
	for i, l := range layers {
		out[i] = append([]string(nil), l...)
	}
	return out
}
