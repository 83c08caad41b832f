// Package textgraphchaos generates random graphs for property tests of the
// layout and rendering pipeline.
package textgraphchaos

import (
	"fmt"
	mathrand "math/rand"

	"oss.terrastruct.com/xrand"

	"oss.terrastruct.com/textgraph/graph"
)

type Opts struct {
	// Seed drives every structural choice. Labels come from xrand and are
	// not seeded.
	Seed int64
	// Maxi bounds the number of generator steps, roughly the complexity of
	// the graph.
	Maxi int
	// Acyclic only creates edges from older nodes to newer ones.
	Acyclic bool
	// ComplexLabels allows long labels of arbitrary runes, wide and
	// newline included.
	ComplexLabels bool
}

func Gen(opts Opts) *graph.Graph {
	if opts.Maxi <= 0 {
		opts.Maxi = 10
	}
	gs := &genState{
		opts: opts,
		rand: mathrand.New(mathrand.NewSource(opts.Seed)),
	}
	gs.g = graph.New(directions[gs.rand.Intn(len(directions))])
	gs.gen()
	return gs.g
}

var directions = []graph.Direction{graph.TopDown, graph.BottomUp, graph.LeftRight, graph.RightLeft}

var kinds = []graph.EdgeKind{
	graph.Arrow, graph.Line, graph.DottedArrow, graph.DottedLine,
	graph.ThickArrow, graph.ThickLine, graph.Invisible, graph.OpenArrow, graph.CrossArrow,
}

var shapes = []graph.Shape{
	graph.Rectangle, graph.RoundedRect, graph.Diamond, graph.Circle, graph.Hexagon,
	graph.Subroutine, graph.Cylinder, graph.Asymmetric, graph.Parallelogram, graph.Trapezoid,
}

type genState struct {
	opts Opts
	rand *mathrand.Rand
	g    *graph.Graph

	nodes []string
}

func (gs *genState) gen() {
	maxi := gs.rand.Intn(gs.opts.Maxi) + 1

	for i := 0; i < maxi; i++ {
		switch gs.roll(25, 65, 10) {
		case 0:
			// 25% chance of creating a new node.
			gs.node()
		case 1:
			// 65% chance of connecting two random nodes with a random label.
			gs.edge()
		case 2:
			gs.container()
		}
	}
}

func (gs *genState) node() string {
	id := fmt.Sprintf("n%d", len(gs.nodes))
	label := ""
	if gs.roll(25, 75) == 0 {
		// 25% chance of adding a label.
		label = gs.randLabel()
	}
	shape := graph.Rectangle
	if gs.roll(25, 75) == 1 {
		shape = shapes[gs.rand.Intn(len(shapes))]
	}
	n, err := gs.g.AddNode(id, label, shape)
	if err != nil {
		panic(fmt.Sprintf("textgraphchaos: %v", err))
	}
	if gs.roll(90, 5, 5) > 0 {
		n.Terminal = graph.Start
		if gs.randBool() {
			n.Terminal = graph.End
		}
	}
	gs.nodes = append(gs.nodes, id)
	return id
}

func (gs *genState) edge() {
	from, to := gs.randNode(), gs.randNode()
	if gs.opts.Acyclic {
		if from == to {
			to = gs.node()
		}
		if gs.g.NodeIndex(from) > gs.g.NodeIndex(to) {
			from, to = to, from
		}
	}
	label := ""
	if gs.randBool() {
		label = gs.randLabel()
	}
	gs.g.AddEdge(from, to, kinds[gs.rand.Intn(len(kinds))], label)
}

func (gs *genState) container() {
	if len(gs.nodes) == 0 {
		return
	}
	var members []string
	for _, id := range gs.nodes {
		if gs.roll(70, 30) == 1 {
			members = append(members, id)
		}
	}
	if gs.roll(90, 10) == 1 {
		// Unknown members are dropped on resolution.
		members = append(members, "ghost")
	}
	gs.g.AddContainer(gs.randLabel(), members...)
}

func (gs *genState) randNode() string {
	if len(gs.nodes) == 0 {
		return gs.node()
	}
	return gs.nodes[gs.rand.Intn(len(gs.nodes))]
}

func (gs *genState) randBool() bool {
	return gs.rand.Intn(2) == 0
}

func (gs *genState) randLabel() string {
	maxLen := 8
	if gs.opts.ComplexLabels {
		maxLen = 64
		return xrand.String(gs.rand.Intn(maxLen), nil)
	}
	b := make([]rune, gs.rand.Intn(maxLen))
	for i := range b {
		b[i] = rune(gs.rand.Int31n(26) + 97)
	}
	return string(b)
}

func (gs *genState) roll(probs ...int) int {
	max := 0
	for _, p := range probs {
		max += p
	}

	n := gs.rand.Intn(max)
	var acc int
	for i, p := range probs {
		if n >= acc && n < acc+p {
			return i
		}
		acc += p
	}

	panic("textgraphchaos: unreachable")
}
