// Package layered is a rank based layout for flowcharts on a character grid.
//
// Nodes are ranked by longest path, ordered within ranks by barycenter sweeps
// and placed on integer coordinates. All placement happens in flow space,
// where the main axis runs along ranks and the cross axis runs within a rank,
// and is transformed to canvas coordinates per direction at the end.
package layered

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/log"
)

type Opts struct {
	NodeSep         int `json:"nodeSep"`
	RankSep         int `json:"rankSep"`
	MinNodeWidth    int `json:"minNodeWidth"`
	MinNodeHeight   int `json:"minNodeHeight"`
	Padding         int `json:"padding"`
	MaxLabelWidth   int `json:"maxLabelWidth"`
	OrderIterations int `json:"orderIterations"`
}

var DefaultOpts = Opts{
	NodeSep:         1,
	RankSep:         4,
	MinNodeWidth:    5,
	MinNodeHeight:   3,
	Padding:         1,
	MaxLabelWidth:   30,
	OrderIterations: 4,
}

// ContainerPadding is added to Padding when the graph has containers so their
// borders stay on the canvas.
const ContainerPadding = 2

// Sizer measures nodes. The layout never looks at shapes itself.
type Sizer interface {
	Size(n *graph.Node) (w, h int, lines []string)
}

type Node struct {
	ID    string   `json:"id"`
	Rank  int      `json:"rank"`
	Order int      `json:"order"`
	Box   geo.Box  `json:"box"`
	Lines []string `json:"lines"`
}

type Diagram struct {
	Direction graph.Direction `json:"direction"`
	Layers    [][]string      `json:"layers"`
	Ranks     map[string]int  `json:"ranks"`
	Nodes     []*Node         `json:"nodes"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Crossings int             `json:"crossings"`

	index map[string]int
}

func (d *Diagram) Node(id string) *Node {
	i, ok := d.index[id]
	if !ok {
		return nil
	}
	return d.Nodes[i]
}

// Translate moves every node by dx, dy and grows the drawing to match. Routes
// planned over d must be moved along with it.
func (d *Diagram) Translate(dx, dy int) {
	for _, n := range d.Nodes {
		n.Box = n.Box.Translate(dx, dy)
	}
	d.Width += dx
	d.Height += dy
}

// RankEdges returns the edges that take part in ranking and ordering: both
// endpoints known and not a self loop.
func RankEdges(g *graph.Graph) []*graph.Edge {
	var out []*graph.Edge
	for _, e := range g.ValidEdges() {
		if e.From != e.To {
			out = append(out, e)
		}
	}
	return out
}

// Layout ranks, orders and places every node of g.
func Layout(ctx context.Context, g *graph.Graph, sizer Sizer, opts *Opts) *Diagram {
	if opts == nil {
		opts = &DefaultOpts
	}
	ids := g.NodeIDs()
	edges := RankEdges(g)

	ranks := AssignRanks(ids, edges)
	layers := Layers(ids, ranks)
	layers, crossings := OrderLayersBarycenter(layers, edges, opts.OrderIterations)
	for r, l := range layers {
		for _, id := range l {
			ranks[id] = r
		}
	}
	log.Debug(ctx, "ordered layers",
		slog.F("nodes", len(ids)),
		slog.F("ranks", len(layers)),
		slog.F("crossings", crossings),
	)

	d := &Diagram{
		Direction: g.Direction,
		Layers:    layers,
		Ranks:     ranks,
		Crossings: crossings,
		index:     make(map[string]int, len(ids)),
	}
	for i, n := range g.Nodes {
		d.index[n.ID] = i
		d.Nodes = append(d.Nodes, &Node{ID: n.ID, Rank: ranks[n.ID]})
	}
	for _, l := range layers {
		for order, id := range l {
			d.Node(id).Order = order
		}
	}

	assignCoordinates(d, g, sizer, opts)
	log.Debug(ctx, "placed nodes", slog.F("width", d.Width), slog.F("height", d.Height))
	return d
}
