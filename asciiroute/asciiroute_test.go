package asciiroute_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/textgraph/asciicanvas"
	"oss.terrastruct.com/textgraph/asciiroute"
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/layouts/layered"
	"oss.terrastruct.com/textgraph/lib/geo"
)

type fixedSizer struct {
	w, h int
}

func (s fixedSizer) Size(n *graph.Node) (int, int, []string) {
	return s.w, s.h, []string{n.Label}
}

func plan(t *testing.T, g *graph.Graph) (*layered.Diagram, []*asciiroute.Route) {
	t.Helper()
	return planWrap(t, g, 30)
}

func planWrap(t *testing.T, g *graph.Graph, maxLabelWidth int) (*layered.Diagram, []*asciiroute.Route) {
	t.Helper()
	ctx := context.Background()
	d := layered.Layout(ctx, g, fixedSizer{5, 3}, nil)
	return d, asciiroute.Plan(ctx, g, d, asciiroute.Opts{MaxLabelWidth: maxLabelWidth})
}

// crossCenter is the middle cell of n across the flow.
func crossCenter(d *layered.Diagram, id string) int {
	b := d.Node(id).Box
	if d.Direction.IsHorizontal() {
		return b.Top() + b.Height/2
	}
	return b.Left() + b.Width/2
}

func draw(d *layered.Diagram, routes []*asciiroute.Route) *asciicanvas.Canvas {
	c := asciicanvas.New(d.Width, d.Height)
	dr := asciiroute.NewDrawer(c, charset.New(charset.Unicode))
	for _, r := range routes {
		dr.Draw(r)
	}
	for _, r := range routes {
		dr.DrawLabel(r)
	}
	return c
}

func countArrows(routes []*asciiroute.Route) int {
	n := 0
	for _, r := range routes {
		if r.Arrow != nil {
			n++
		}
	}
	return n
}

func TestStraight(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "yes")
	d, routes := plan(t, g)
	require.Len(t, routes, 1)

	r := routes[0]
	assert.Equal(t, []geo.Point{{X: 3, Y: 4}, {X: 3, Y: 7}}, r.Waypoints)
	require.NotNil(t, r.Arrow)
	assert.Equal(t, geo.Point{X: 3, Y: 7}, r.Arrow.At)
	assert.Equal(t, geo.DirDown, r.Arrow.Travel)
	assert.Equal(t, []asciiroute.Text{{At: geo.Point{X: 5, Y: 5}, Text: "yes"}}, r.Label)
	assert.Nil(t, r.Junction)
	assert.Equal(t, 1, r.GroupSize)

	c := draw(d, routes)
	for y := 4; y <= 6; y++ {
		assert.Equal(t, "│", c.Get(3, y), "row %d", y)
	}
	assert.Equal(t, "▼", c.Get(3, 7))
	assert.Equal(t, "yes", c.Get(5, 5)+c.Get(6, 5)+c.Get(7, 5))
}

func TestDirections(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		dir    graph.Direction
		travel geo.Dirs
		glyph  string
	}{
		{graph.TopDown, geo.DirDown, "▼"},
		{graph.BottomUp, geo.DirUp, "▲"},
		{graph.LeftRight, geo.DirRight, "▶"},
		{graph.RightLeft, geo.DirLeft, "◀"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.dir.String(), func(t *testing.T) {
			t.Parallel()

			g := graph.New(tc.dir)
			g.AddEdge("A", "B", graph.Arrow, "")
			d, routes := plan(t, g)
			require.Len(t, routes, 1)
			r := routes[0]
			require.NotNil(t, r.Arrow)
			assert.Equal(t, tc.travel, r.Arrow.Travel)
			for _, run := range r.Runs {
				assert.Equal(t, tc.dir.IsHorizontal(), run.Horizontal)
			}

			c := draw(d, routes)
			assert.Equal(t, tc.glyph, c.Get(r.Arrow.At.X, r.Arrow.At.Y))

			a, b := d.Node("A").Box, d.Node("B").Box
			assert.False(t, a.Contains(r.Arrow.At))
			assert.False(t, b.Contains(r.Arrow.At))
		})
	}
}

func TestLeftRightRun(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.LeftRight)
	g.AddEdge("A", "B", graph.Arrow, "")
	d, routes := plan(t, g)
	require.Len(t, routes, 1)

	c := draw(d, routes)
	assert.Equal(t, "───▶", c.Get(6, 2)+c.Get(7, 2)+c.Get(8, 2)+c.Get(9, 2))
}

func TestSplit(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.AddEdge("A", "C", graph.Arrow, "")
	d, routes := plan(t, g)
	require.Len(t, routes, 2)

	assert.Equal(t, 2, countArrows(routes))
	require.NotNil(t, routes[0].Junction)
	require.NotNil(t, routes[1].Junction)
	assert.Equal(t, *routes[0].Junction, *routes[1].Junction)
	for i, r := range routes {
		assert.Equal(t, i, r.GroupIndex)
		assert.Equal(t, 2, r.GroupSize)
	}

	c := draw(d, routes)
	lines := c.Lines()
	assert.Equal(t, "│", c.Get(6, 4))
	assert.Equal(t, "   ┌──┴──┐", strings.TrimRight(lines[5], " "))
	assert.Equal(t, "▼", c.Get(3, 7))
	assert.Equal(t, "▼", c.Get(9, 7))

	junctions := 0
	for _, l := range lines {
		junctions += strings.Count(l, "┴")
	}
	assert.Equal(t, 1, junctions)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "C", graph.Arrow, "")
	g.AddEdge("B", "C", graph.Arrow, "")
	d, routes := plan(t, g)
	require.Len(t, routes, 2)

	assert.Equal(t, 1, countArrows(routes))
	require.NotNil(t, routes[0].MergeJunction)
	assert.Equal(t, geo.Point{X: 6, Y: 6}, *routes[0].MergeJunction)
	assert.Equal(t, 2, routes[1].GroupSize)
	assert.Equal(t, 1, routes[1].GroupIndex)

	c := draw(d, routes)
	lines := c.Lines()
	assert.Equal(t, "   └──┬──┘", strings.TrimRight(lines[6], " "))
	assert.Equal(t, "▼", c.Get(6, 7))
	assert.Equal(t, "│", c.Get(3, 4))
	assert.Equal(t, "│", c.Get(9, 5))
}

func TestMergeKeepsArrowedKind(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "C", graph.Line, "")
	g.AddEdge("B", "C", graph.Arrow, "")
	_, routes := plan(t, g)
	require.Len(t, routes, 2)

	assert.Equal(t, 1, countArrows(routes))
	require.NotNil(t, routes[0].Arrow)
	assert.Equal(t, graph.Arrow, routes[0].Arrow.Kind)
}

func TestBend(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddNode("B", "", graph.Rectangle)
	g.AddEdge("A", "C", graph.Arrow, "")
	d, routes := plan(t, g)
	require.Len(t, routes, 1)
	require.Len(t, routes[0].Marks, 2)

	c := draw(d, routes)
	assert.Contains(t, c.Lines()[4], "└──┐")
	assert.Equal(t, "▼", c.Get(6, 7))
}

func TestBackEdges(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.AddEdge("B", "C", graph.Arrow, "")
	g.AddEdge("C", "A", graph.Arrow, "back")
	g.AddEdge("C", "C", graph.Arrow, "")
	d, routes := plan(t, g)
	require.Len(t, routes, 4)
	assert.Equal(t, 4, countArrows(routes))

	for _, r := range routes[2:] {
		assert.Equal(t, geo.DirLeft, r.Arrow.Travel)
		for _, n := range d.Nodes {
			assert.False(t, n.Box.Contains(r.Arrow.At), "arrow of %s->%s inside %s", r.Edge.From, r.Edge.To, n.ID)
		}
	}
	assert.NotPanics(t, func() {
		draw(d, routes)
	})
}

func TestSkippedEdges(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Invisible, "")
	g.Edges = append(g.Edges, &graph.Edge{From: "A", To: "ghost", Kind: graph.Arrow})
	_, routes := plan(t, g)
	assert.Empty(t, routes)
}

func TestSelfLoopTooShort(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "A", graph.Arrow, "")
	ctx := context.Background()
	d := layered.Layout(ctx, g, fixedSizer{5, 1}, nil)
	assert.Empty(t, asciiroute.Plan(ctx, g, d, asciiroute.Opts{}))
}

func TestDrawerCrossings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		runs  []asciiroute.Run
		at    geo.Point
		glyph string
	}{
		{
			name: "cross",
			runs: []asciiroute.Run{
				{From: geo.Point{X: 5, Y: 0}, To: geo.Point{X: 5, Y: 4}},
				{From: geo.Point{X: 2, Y: 2}, To: geo.Point{X: 8, Y: 2}, Horizontal: true},
			},
			at:    geo.Point{X: 5, Y: 2},
			glyph: "┼",
		},
		{
			name: "horizontal_end",
			runs: []asciiroute.Run{
				{From: geo.Point{X: 5, Y: 0}, To: geo.Point{X: 5, Y: 4}},
				{From: geo.Point{X: 2, Y: 2}, To: geo.Point{X: 5, Y: 2}, Horizontal: true},
			},
			at:    geo.Point{X: 5, Y: 2},
			glyph: "┤",
		},
		{
			name: "horizontal_start",
			runs: []asciiroute.Run{
				{From: geo.Point{X: 5, Y: 0}, To: geo.Point{X: 5, Y: 4}},
				{From: geo.Point{X: 5, Y: 2}, To: geo.Point{X: 8, Y: 2}, Horizontal: true},
			},
			at:    geo.Point{X: 5, Y: 2},
			glyph: "├",
		},
		{
			name: "vertical_end",
			runs: []asciiroute.Run{
				{From: geo.Point{X: 2, Y: 2}, To: geo.Point{X: 8, Y: 2}, Horizontal: true},
				{From: geo.Point{X: 5, Y: 0}, To: geo.Point{X: 5, Y: 2}},
			},
			at:    geo.Point{X: 5, Y: 2},
			glyph: "┴",
		},
		{
			name: "same_axis",
			runs: []asciiroute.Run{
				{From: geo.Point{X: 5, Y: 0}, To: geo.Point{X: 5, Y: 4}, Kind: graph.ThickArrow},
				{From: geo.Point{X: 5, Y: 2}, To: geo.Point{X: 5, Y: 6}},
			},
			at:    geo.Point{X: 5, Y: 3},
			glyph: "║",
		},
		{
			name: "single_cell",
			runs: []asciiroute.Run{
				{From: geo.Point{X: 2, Y: 2}, To: geo.Point{X: 8, Y: 2}, Horizontal: true},
				{From: geo.Point{X: 5, Y: 2}, To: geo.Point{X: 5, Y: 2}},
			},
			at:    geo.Point{X: 5, Y: 2},
			glyph: "┼",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := asciicanvas.New(10, 8)
			dr := asciiroute.NewDrawer(c, charset.New(charset.Unicode))
			dr.Draw(&asciiroute.Route{Runs: tc.runs})
			assert.Equal(t, tc.glyph, c.Get(tc.at.X, tc.at.Y))
		})
	}
}

func TestDrawerKeepsText(t *testing.T) {
	t.Parallel()

	c := asciicanvas.New(10, 3)
	c.DrawText(0, 1, "label")
	dr := asciiroute.NewDrawer(c, charset.New(charset.ASCII))
	dr.Draw(&asciiroute.Route{
		Runs: []asciiroute.Run{{From: geo.Point{X: 0, Y: 1}, To: geo.Point{X: 9, Y: 1}, Horizontal: true}},
	})
	assert.Equal(t, "label-----", c.Lines()[1])
}

func TestLabelPlacement(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		dir           graph.Direction
		edges         [][3]string
		maxLabelWidth int
		check         func(t *testing.T, d *layered.Diagram, routes []*asciiroute.Route)
	}{
		{
			name:  "right_of_straight_run",
			dir:   graph.TopDown,
			edges: [][3]string{{"A", "B", "yes"}},
			check: func(t *testing.T, d *layered.Diagram, routes []*asciiroute.Route) {
				assert.Equal(t, []asciiroute.Text{{At: geo.Point{X: 5, Y: 5}, Text: "yes"}}, routes[0].Label)
			},
		},
		{
			name:          "multi_line_centered_on_run",
			dir:           graph.TopDown,
			edges:         [][3]string{{"A", "B", "one two"}},
			maxLabelWidth: 3,
			check: func(t *testing.T, d *layered.Diagram, routes []*asciiroute.Route) {
				assert.Equal(t, []asciiroute.Text{
					{At: geo.Point{X: 5, Y: 4}, Text: "one"},
					{At: geo.Point{X: 5, Y: 5}, Text: "two"},
				}, routes[0].Label)
			},
		},
		{
			name:  "left_of_left_branch",
			dir:   graph.TopDown,
			edges: [][3]string{{"A", "B", "yes"}, {"A", "C", "no"}},
			check: func(t *testing.T, d *layered.Diagram, routes []*asciiroute.Route) {
				require.Len(t, routes[0].Label, 1)
				require.Len(t, routes[1].Label, 1)
				left, right := routes[0].Label[0], routes[1].Label[0]
				// The left label ends one blank short of its arm.
				assert.Equal(t, crossCenter(d, "B")-1-3, left.At.X)
				assert.Equal(t, crossCenter(d, "C")+2, right.At.X)
				assert.Equal(t, left.At.Y, right.At.Y)
			},
		},
		{
			name:  "above_horizontal_run",
			dir:   graph.LeftRight,
			edges: [][3]string{{"A", "B", "yes"}},
			check: func(t *testing.T, d *layered.Diagram, routes []*asciiroute.Route) {
				r := routes[0]
				require.Len(t, r.Label, 1)
				a, z := r.Waypoints[0], r.Waypoints[len(r.Waypoints)-1]
				assert.Equal(t, geo.Point{X: (a.X+z.X)/2 - 1, Y: crossCenter(d, "A") - 1}, r.Label[0].At)
			},
		},
		{
			name:  "below_right_branch",
			dir:   graph.LeftRight,
			edges: [][3]string{{"A", "B", "yes"}, {"A", "C", "no"}},
			check: func(t *testing.T, d *layered.Diagram, routes []*asciiroute.Route) {
				require.Len(t, routes[0].Label, 1)
				require.Len(t, routes[1].Label, 1)
				assert.Equal(t, crossCenter(d, "B")-1, routes[0].Label[0].At.Y)
				assert.Equal(t, crossCenter(d, "C")+1, routes[1].Label[0].At.Y)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g := graph.New(tc.dir)
			for _, e := range tc.edges {
				g.AddEdge(e[0], e[1], graph.Arrow, e[2])
			}
			mlw := tc.maxLabelWidth
			if mlw == 0 {
				mlw = 30
			}
			d, routes := planWrap(t, g, mlw)
			require.Len(t, routes, len(tc.edges))
			tc.check(t, d, routes)
		})
	}
}

func TestOverhang(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "a rather long label")
	g.AddEdge("A", "C", graph.Arrow, "")
	d, routes := plan(t, g)

	// The left arm sits at column 3, the label is 19 wide and keeps one blank.
	dx, dy := asciiroute.Overhang(routes)
	assert.Equal(t, 17, dx)
	assert.Equal(t, 0, dy)

	arrow := routes[0].Arrow.At
	junction := *routes[1].Junction
	for _, r := range routes {
		r.Translate(dx, dy)
	}
	assert.Equal(t, arrow.Add(dx, 0), routes[0].Arrow.At)
	assert.Equal(t, junction.Add(dx, 0), *routes[1].Junction)
	assert.Equal(t, 0, routes[0].Label[0].At.X)
	dx, dy = asciiroute.Overhang(routes)
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)

	d.Translate(17, 0)
	c := draw(d, routes)
	label := c.Lines()[routes[0].Label[0].At.Y]
	assert.True(t, strings.HasPrefix(label, "a rather long label "), "%q", label)
}

func TestJunctionOnArmColumn(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.AddEdge("A", "C", graph.Arrow, "")
	g.AddEdge("A", "D", graph.Arrow, "")
	g.AddEdge("B", "F", graph.Arrow, "")
	g.AddEdge("C", "F", graph.Arrow, "")
	g.AddEdge("D", "F", graph.Arrow, "")
	d, routes := plan(t, g)
	require.Len(t, routes, 6)

	c := draw(d, routes)
	lines := c.Lines()
	// A split from the middle column keeps a T; the middle arm starts below it.
	assert.Equal(t, "   ┌─────┴─────┐", strings.TrimRight(lines[5], " "))
	assert.Equal(t, "│", c.Get(9, 6))
	assert.Equal(t, "▼", c.Get(9, 7))

	mbar := d.Node("F").Box.Top() - 2
	assert.Equal(t, "   └─────┬─────┘", strings.TrimRight(lines[mbar], " "))
	assert.Equal(t, "│", c.Get(9, mbar-1))
	assert.Equal(t, "▼", c.Get(9, mbar+1))
	for _, l := range lines {
		assert.NotContains(t, l, "┼")
	}
}
