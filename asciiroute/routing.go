package asciiroute

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/layouts/layered"
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/log"
	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

type Opts struct {
	MaxLabelWidth int
}

// flowPoint is a cell in flow space: c along the cross axis, m along the main
// axis. Flow down is toward higher ranks.
type flowPoint struct {
	c, m int
}

type planner struct {
	g    *graph.Graph
	d    *layered.Diagram
	flow layered.Flow
	opts Opts

	spans      map[string]layered.Span
	rankBottom []int
	maxCross   int
	outCount   map[string]int
	inCount    map[string]int
	laneBase   int
	laneCount  int
}

// Plan routes every visible edge of g over the layout d. Routes come back in
// edge order. Invisible edges and edges with unknown endpoints get no route.
func Plan(ctx context.Context, g *graph.Graph, d *layered.Diagram, opts Opts) []*Route {
	p := &planner{
		g:        g,
		d:        d,
		flow:     d.Flow(),
		opts:     opts,
		spans:    make(map[string]layered.Span, len(d.Nodes)),
		maxCross: -1,
		outCount: make(map[string]int),
		inCount:  make(map[string]int),
	}
	p.rankBottom = make([]int, len(d.Layers))
	for i := range p.rankBottom {
		p.rankBottom[i] = -1
	}
	for _, n := range d.Nodes {
		s := p.flow.Span(n.Box)
		p.spans[n.ID] = s
		p.rankBottom[n.Rank] = geo.Max(p.rankBottom[n.Rank], s.MainHi)
		p.maxCross = geo.Max(p.maxCross, s.CrossHi)
	}
	// Back edge lanes clear the self loop lanes beside the widest nodes.
	p.laneBase = p.maxCross + 2
	for _, e := range g.Edges {
		if p.isForward(e) {
			p.outCount[e.From]++
			p.inCount[e.To]++
		}
		if e.From == e.To && e.Kind.IsVisible() && g.HasNode(e.From) {
			p.laneBase = p.maxCross + 4
		}
	}

	var routes []*Route
	splits := make(map[string][]*Route)
	merges := make(map[string][]*Route)
	var splitOrder, mergeOrder []string
	for _, e := range g.Edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			log.Warn(ctx, "skipping edge with unknown endpoint", slog.F("from", e.From), slog.F("to", e.To))
			continue
		}
		if !e.Kind.IsVisible() {
			continue
		}

		var r *Route
		switch {
		case e.From == e.To:
			r = p.selfLoop(e)
		case p.isForward(e):
			r = p.forward(e)
			if p.splits(e.From) {
				if len(splits[e.From]) == 0 {
					splitOrder = append(splitOrder, e.From)
				}
				splits[e.From] = append(splits[e.From], r)
			} else if p.merges(e.To) {
				r.GroupSize = p.inCount[e.To]
				r.GroupIndex = len(merges[e.To])
			}
			if p.merges(e.To) {
				if len(merges[e.To]) == 0 {
					mergeOrder = append(mergeOrder, e.To)
				}
				merges[e.To] = append(merges[e.To], r)
			}
		default:
			r = p.backward(e)
		}
		if r != nil {
			routes = append(routes, r)
		}
	}

	for _, id := range splitOrder {
		group := splits[id]
		for i, r := range group {
			r.GroupIndex = i
			r.GroupSize = len(group)
		}
		p.splitStructure(group)
	}
	for _, id := range mergeOrder {
		p.mergeStructure(merges[id])
	}

	log.Debug(ctx, "routed edges",
		slog.F("routes", len(routes)),
		slog.F("splits", len(splitOrder)),
		slog.F("merges", len(mergeOrder)),
		slog.F("lanes", p.laneCount),
	)
	return routes
}

func (p *planner) isForward(e *graph.Edge) bool {
	if !e.Kind.IsVisible() || e.From == e.To {
		return false
	}
	if !p.g.HasNode(e.From) || !p.g.HasNode(e.To) {
		return false
	}
	return p.d.Ranks[e.To] > p.d.Ranks[e.From]
}

func (p *planner) splits(id string) bool {
	return p.outCount[id] >= 2
}

func (p *planner) merges(id string) bool {
	return p.inCount[id] >= 2
}

// descent is the column an edge travels along toward its target: the target's
// column when the source splits, the source's otherwise.
func (p *planner) descent(e *graph.Edge) int {
	if p.splits(e.From) {
		return p.spans[e.To].CrossCenter()
	}
	return p.spans[e.From].CrossCenter()
}

func (p *planner) splitBar(id string) int {
	return p.rankBottom[p.d.Ranks[id]] + 2
}

func (p *planner) bendRow(id string) int {
	return p.rankBottom[p.d.Ranks[id]] + 1
}

func (p *planner) mergeBar(id string) int {
	return p.spans[id].MainLo - 2
}

// builder accumulates primitives for one route in flow space.
type builder struct {
	flow  layered.Flow
	route *Route
	kind  graph.EdgeKind
	path  []flowPoint
}

func (p *planner) newBuilder(e *graph.Edge) *builder {
	return &builder{
		flow:  p.flow,
		route: &Route{Edge: e, GroupSize: 1},
		kind:  e.Kind,
	}
}

func (b *builder) pt(fp flowPoint) geo.Point {
	return b.flow.Point(fp.c, fp.m)
}

// vrun draws along the main axis at cross c from lo to hi inclusive.
func (b *builder) vrun(c, lo, hi int) {
	if lo > hi {
		return
	}
	b.route.Runs = append(b.route.Runs, Run{
		From:       b.pt(flowPoint{c, lo}),
		To:         b.pt(flowPoint{c, hi}),
		Horizontal: b.flow.Direction.IsHorizontal(),
		Kind:       b.kind,
	})
}

// hrun draws along the cross axis at main m from lo to hi inclusive.
func (b *builder) hrun(m, lo, hi int) {
	if lo > hi {
		return
	}
	b.route.Runs = append(b.route.Runs, Run{
		From:       b.pt(flowPoint{lo, m}),
		To:         b.pt(flowPoint{hi, m}),
		Horizontal: b.flow.Direction.IsVertical(),
		Kind:       b.kind,
	})
}

func (b *builder) mark(c, m int, dirs geo.Dirs) {
	b.route.Marks = append(b.route.Marks, Mark{
		At:   b.pt(flowPoint{c, m}),
		Dirs: b.flow.Dirs(dirs),
		Kind: b.kind,
	})
}

// end finishes a line arriving at cell (c, m) while traveling in flow
// direction travel: an arrowhead if the kind has one, a line cell otherwise.
func (b *builder) end(c, m int, travel geo.Dirs) {
	if !b.kind.HasArrow() {
		if travel.Vertical() {
			b.vrun(c, m, m)
		} else {
			b.hrun(m, c, c)
		}
		return
	}
	b.route.Arrow = &Arrow{
		At:     b.pt(flowPoint{c, m}),
		Travel: b.flow.Dirs(travel),
		Kind:   b.kind,
	}
}

func (b *builder) via(fps ...flowPoint) {
	for _, fp := range fps {
		if n := len(b.path); n > 0 && b.path[n-1] == fp {
			continue
		}
		b.path = append(b.path, fp)
	}
}

// finish converts the path to waypoints and places the label along the
// segment from a to z. branch is the side of a split junction the edge leaves
// toward: negative for flow left, positive for flow right.
func (b *builder) finish(a, z flowPoint, branch int, maxLabelWidth int) *Route {
	for _, fp := range b.path {
		b.route.Waypoints = append(b.route.Waypoints, b.pt(fp))
	}
	if b.route.Edge.Label != "" {
		lines := textmeasure.Lines(b.route.Edge.Label, maxLabelWidth)
		b.route.Label = placeLabel(lines, b.pt(a), b.pt(z), branch, b.flow.Direction.IsHorizontal())
	}
	return b.route
}

// sides returns the bar directions of column c on a bar spanning lo..hi.
func sides(c, lo, hi int) geo.Dirs {
	var d geo.Dirs
	if c > lo {
		d |= geo.DirLeft
	}
	if c < hi {
		d |= geo.DirRight
	}
	return d
}

func toward(delta int) geo.Dirs {
	if delta < 0 {
		return geo.DirLeft
	}
	return geo.DirRight
}

func (p *planner) forward(e *graph.Edge) *Route {
	b := p.newBuilder(e)
	su, sv := p.spans[e.From], p.spans[e.To]
	cu, cv := su.CrossCenter(), sv.CrossCenter()
	dcol := p.descent(e)
	exit := su.MainHi + 1
	entry := sv.MainLo - 1
	split := p.splits(e.From)

	start := exit
	branch := 0
	b.via(flowPoint{cu, exit})
	if split {
		bar := p.splitBar(e.From)
		lo, hi := p.splitSpan(e.From)
		if dcol != cu {
			b.mark(dcol, bar, geo.DirDown|sides(dcol, lo, hi))
		}
		start = bar + 1
		branch = dcol - cu
		b.via(flowPoint{cu, bar}, flowPoint{dcol, bar})
	}

	switch {
	case p.merges(e.To):
		mbar := p.mergeBar(e.To)
		lo, hi := p.mergeSpan(e.To)
		if dcol != cv {
			b.mark(dcol, mbar, geo.DirUp|sides(dcol, lo, hi))
		}
		b.vrun(dcol, start, mbar-1)
		b.via(flowPoint{dcol, mbar}, flowPoint{cv, mbar}, flowPoint{cv, entry})
		if start > mbar-1 {
			return b.finish(flowPoint{dcol, mbar}, flowPoint{dcol, mbar}, branch, p.opts.MaxLabelWidth)
		}
		return b.finish(flowPoint{dcol, start}, flowPoint{dcol, mbar - 1}, branch, p.opts.MaxLabelWidth)
	case dcol == cv:
		b.vrun(cv, start, entry-1)
		b.end(cv, entry, geo.DirDown)
		b.via(flowPoint{cv, entry})
		return b.finish(flowPoint{cv, start}, flowPoint{cv, entry}, branch, p.opts.MaxLabelWidth)
	default:
		bend := p.bendRow(e.From)
		b.vrun(cu, exit, bend-1)
		b.mark(cu, bend, geo.DirUp|toward(cv-cu))
		b.hrun(bend, geo.Min(cu, cv)+1, geo.Max(cu, cv)-1)
		b.mark(cv, bend, geo.DirDown|toward(cu-cv))
		b.vrun(cv, bend+1, entry-1)
		b.end(cv, entry, geo.DirDown)
		b.via(flowPoint{cu, bend}, flowPoint{cv, bend}, flowPoint{cv, entry})
		return b.finish(flowPoint{cv, bend + 1}, flowPoint{cv, entry}, 0, p.opts.MaxLabelWidth)
	}
}

func (p *planner) splitSpan(id string) (lo, hi int) {
	lo = p.spans[id].CrossCenter()
	hi = lo
	for _, e := range p.g.Edges {
		if e.From != id || !p.isForward(e) {
			continue
		}
		c := p.spans[e.To].CrossCenter()
		lo, hi = geo.Min(lo, c), geo.Max(hi, c)
	}
	return lo, hi
}

func (p *planner) mergeSpan(id string) (lo, hi int) {
	lo = p.spans[id].CrossCenter()
	hi = lo
	for _, e := range p.g.Edges {
		if e.To != id || !p.isForward(e) {
			continue
		}
		c := p.descent(e)
		lo, hi = geo.Min(lo, c), geo.Max(hi, c)
	}
	return lo, hi
}

// splitStructure attaches the stem, bar and junction of a split to the first
// route of the group.
func (p *planner) splitStructure(group []*Route) {
	first := group[0]
	id := first.Edge.From
	b := &builder{flow: p.flow, route: first, kind: first.Edge.Kind}

	su := p.spans[id]
	cu := su.CrossCenter()
	bar := p.splitBar(id)
	lo, hi := p.splitSpan(id)

	// A corner at either end of the bar, a T otherwise. An arm leaving from
	// the source column starts below the junction.
	b.vrun(cu, su.MainHi+1, bar-1)
	b.mark(cu, bar, geo.DirUp|sides(cu, lo, hi))
	b.hrun(bar, lo+1, hi-1)

	j := p.flow.Point(cu, bar)
	for _, r := range group {
		jr := j
		r.Junction = &jr
	}
}

// mergeStructure attaches the bar, junction and the single arrowhead of a
// merge to the first route of the group.
func (p *planner) mergeStructure(group []*Route) {
	first := group[0]
	id := first.Edge.To
	b := &builder{flow: p.flow, route: first, kind: first.Edge.Kind}

	sv := p.spans[id]
	cv := sv.CrossCenter()
	mbar := p.mergeBar(id)
	lo, hi := p.mergeSpan(id)

	b.mark(cv, mbar, geo.DirDown|sides(cv, lo, hi))
	b.hrun(mbar, lo+1, hi-1)

	entry := sv.MainLo - 1
	arrowed := first.Edge
	for _, r := range group {
		if r.Edge.Kind.HasArrow() {
			arrowed = r.Edge
			break
		}
	}
	b.kind = arrowed.Kind
	b.end(cv, entry, geo.DirDown)

	j := p.flow.Point(cv, mbar)
	for _, r := range group {
		jr := j
		r.MergeJunction = &jr
	}
}

// backward routes an edge that does not go to a higher rank: directly when
// both nodes share a rank and a middle row, around a lane past every node
// otherwise.
func (p *planner) backward(e *graph.Edge) *Route {
	b := p.newBuilder(e)
	su, sv := p.spans[e.From], p.spans[e.To]
	mu, mv := su.MainCenter(), sv.MainCenter()

	if mu == mv {
		if sv.CrossLo > su.CrossHi {
			from, to := su.CrossHi+1, sv.CrossLo-1
			b.hrun(mu, from, to-1)
			b.end(to, mu, geo.DirRight)
			b.via(flowPoint{from, mu}, flowPoint{to, mu})
			return b.finish(flowPoint{from, mu}, flowPoint{to, mu}, 0, p.opts.MaxLabelWidth)
		}
		from, to := su.CrossLo-1, sv.CrossHi+1
		b.hrun(mu, to+1, from)
		b.end(to, mu, geo.DirLeft)
		b.via(flowPoint{from, mu}, flowPoint{to, mu})
		return b.finish(flowPoint{from, mu}, flowPoint{to, mu}, 0, p.opts.MaxLabelWidth)
	}

	lane := p.laneBase + 2*p.laneCount
	p.laneCount++
	vertical := geo.DirDown
	if mv < mu {
		vertical = geo.DirUp
	}
	b.hrun(mu, su.CrossHi+1, lane-1)
	b.mark(lane, mu, geo.DirLeft|vertical)
	b.vrun(lane, geo.Min(mu, mv)+1, geo.Max(mu, mv)-1)
	b.mark(lane, mv, geo.DirLeft|vertical.Opposite())
	b.hrun(mv, sv.CrossHi+2, lane-1)
	b.end(sv.CrossHi+1, mv, geo.DirLeft)
	b.via(flowPoint{su.CrossHi + 1, mu}, flowPoint{lane, mu}, flowPoint{lane, mv}, flowPoint{sv.CrossHi + 1, mv})
	return b.finish(flowPoint{lane - 1, mv}, flowPoint{sv.CrossHi + 1, mv}, 0, p.opts.MaxLabelWidth)
}

// selfLoop routes an edge from a node to itself around a lane beside it.
// Nodes shorter than two rows along the main axis get no loop.
func (p *planner) selfLoop(e *graph.Edge) *Route {
	s := p.spans[e.From]
	if s.MainHi-s.MainLo+1 < 2 {
		return nil
	}
	b := p.newBuilder(e)
	lane := s.CrossHi + 2
	top, bottom := s.MainLo, s.MainHi

	b.hrun(top, s.CrossHi+1, lane-1)
	b.mark(lane, top, geo.DirLeft|geo.DirDown)
	b.vrun(lane, top+1, bottom-1)
	b.mark(lane, bottom, geo.DirLeft|geo.DirUp)
	b.hrun(bottom, s.CrossHi+2, lane-1)
	b.end(s.CrossHi+1, bottom, geo.DirLeft)
	b.via(flowPoint{s.CrossHi + 1, top}, flowPoint{lane, top}, flowPoint{lane, bottom}, flowPoint{s.CrossHi + 1, bottom})
	return b.finish(flowPoint{lane, top}, flowPoint{lane, bottom}, 0, p.opts.MaxLabelWidth)
}
