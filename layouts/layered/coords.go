package layered

import (
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

// Flow maps flow space onto the canvas. In flow space ranks grow along the
// main axis and nodes of one rank sit side by side along the cross axis.
type Flow struct {
	Direction graph.Direction
	// MainExtent is the canvas size along the main axis. Reversed directions
	// mirror main coordinates inside it.
	MainExtent int
}

// Span is a box in flow space with inclusive bounds.
type Span struct {
	CrossLo, CrossHi int
	MainLo, MainHi   int
}

func (s Span) CrossCenter() int {
	return s.CrossLo + (s.CrossHi-s.CrossLo+1)/2
}

func (s Span) MainCenter() int {
	return s.MainLo + (s.MainHi-s.MainLo+1)/2
}

func (d *Diagram) Flow() Flow {
	f := Flow{Direction: d.Direction, MainExtent: d.Height}
	if d.Direction.IsHorizontal() {
		f.MainExtent = d.Width
	}
	return f
}

func (f Flow) mirror(main int) int {
	if f.Direction.IsReversed() {
		return f.MainExtent - 1 - main
	}
	return main
}

// Point converts a flow cell to a canvas cell.
func (f Flow) Point(cross, main int) geo.Point {
	main = f.mirror(main)
	if f.Direction.IsHorizontal() {
		return geo.Point{X: main, Y: cross}
	}
	return geo.Point{X: cross, Y: main}
}

// Span converts a canvas box to flow space.
func (f Flow) Span(b geo.Box) Span {
	var s Span
	if f.Direction.IsHorizontal() {
		s = Span{CrossLo: b.Top(), CrossHi: b.Bottom(), MainLo: b.Left(), MainHi: b.Right()}
	} else {
		s = Span{CrossLo: b.Left(), CrossHi: b.Right(), MainLo: b.Top(), MainHi: b.Bottom()}
	}
	if f.Direction.IsReversed() {
		s.MainLo, s.MainHi = f.mirror(s.MainHi), f.mirror(s.MainLo)
	}
	return s
}

// Dirs converts a flow direction mask to canvas directions. Flow down points
// toward higher ranks and flow right toward higher cross coordinates.
func (f Flow) Dirs(d geo.Dirs) geo.Dirs {
	forward, backward := geo.DirDown, geo.DirUp
	right, left := geo.DirRight, geo.DirLeft
	switch f.Direction {
	case graph.BottomUp:
		forward, backward = geo.DirUp, geo.DirDown
	case graph.LeftRight:
		forward, backward = geo.DirRight, geo.DirLeft
		right, left = geo.DirDown, geo.DirUp
	case graph.RightLeft:
		forward, backward = geo.DirLeft, geo.DirRight
		right, left = geo.DirDown, geo.DirUp
	}

	var out geo.Dirs
	if d.Has(geo.DirDown) {
		out |= forward
	}
	if d.Has(geo.DirUp) {
		out |= backward
	}
	if d.Has(geo.DirRight) {
		out |= right
	}
	if d.Has(geo.DirLeft) {
		out |= left
	}
	return out
}

type flowSize struct {
	cross, main int
}

func assignCoordinates(d *Diagram, g *graph.Graph, sizer Sizer, opts *Opts) {
	if len(d.Layers) == 0 {
		return
	}
	horizontal := g.Direction.IsHorizontal()
	pad := opts.Padding
	if len(g.ResolvedContainers()) > 0 {
		pad += ContainerPadding
	}

	sizes := make([]flowSize, len(d.Nodes))
	for i, n := range g.Nodes {
		w, h, lines := sizer.Size(n)
		d.Nodes[i].Lines = lines
		if horizontal {
			sizes[i] = flowSize{cross: h, main: w}
		} else {
			sizes[i] = flowSize{cross: w, main: h}
		}
	}

	maxMain := make([]int, len(d.Layers))
	spans := make([]int, len(d.Layers))
	maxSpan := 0
	for r, l := range d.Layers {
		for k, id := range l {
			s := sizes[d.index[id]]
			maxMain[r] = geo.Max(maxMain[r], s.main)
			spans[r] += s.cross
			if k > 0 {
				spans[r] += opts.NodeSep
			}
		}
		maxSpan = geo.Max(maxSpan, spans[r])
	}
	if horizontal {
		for r, l := range d.Layers {
			for _, id := range l {
				sizes[d.index[id]].main = maxMain[r]
			}
		}
	}

	gaps := rankGaps(d, g, opts)
	mainStart := make([]int, len(d.Layers))
	mainStart[0] = pad
	for r := 1; r < len(d.Layers); r++ {
		mainStart[r] = mainStart[r-1] + maxMain[r-1] + gaps[r-1]
	}
	last := len(d.Layers) - 1
	mainExtent := mainStart[last] + maxMain[last] + pad
	crossExtent := pad + maxSpan + pad

	if horizontal {
		d.Width, d.Height = mainExtent, crossExtent
	} else {
		d.Width, d.Height = crossExtent, mainExtent
	}

	center := pad + maxSpan/2
	for r, l := range d.Layers {
		cross := center - spans[r]/2
		for _, id := range l {
			i := d.index[id]
			s := sizes[i]
			main := mainStart[r]
			if g.Direction.IsReversed() {
				main = mainExtent - main - s.main
			}
			if horizontal {
				d.Nodes[i].Box = geo.Box{TopLeft: geo.Point{X: main, Y: cross}, Width: s.main, Height: s.cross}
			} else {
				d.Nodes[i].Box = geo.Box{TopLeft: geo.Point{X: cross, Y: main}, Width: s.cross, Height: s.main}
			}
			cross += s.cross + opts.NodeSep
		}
	}
}

// rankGaps returns the space after each rank. Horizontal layouts draw edge
// labels above the final segment, so a gap widens to fit the widest label of
// an edge landing in the next rank.
func rankGaps(d *Diagram, g *graph.Graph, opts *Opts) []int {
	gaps := make([]int, len(d.Layers))
	for r := range gaps {
		gaps[r] = opts.RankSep
	}
	if !g.Direction.IsHorizontal() {
		return gaps
	}
	for _, e := range g.ValidEdges() {
		if e.Label == "" || !e.Kind.IsVisible() {
			continue
		}
		ru, rv := d.Ranks[e.From], d.Ranks[e.To]
		if rv <= ru || rv == 0 {
			continue
		}
		w := textmeasure.MaxWidth(textmeasure.Lines(e.Label, opts.MaxLabelWidth))
		gaps[rv-1] = geo.Max(gaps[rv-1], w+4)
	}
	return gaps
}
