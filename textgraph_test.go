package textgraph_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/diff"

	"oss.terrastruct.com/textgraph"
	"oss.terrastruct.com/textgraph/asciishapes"
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	libdiff "oss.terrastruct.com/textgraph/lib/diff"
	"oss.terrastruct.com/textgraph/lib/log"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		build func() *graph.Graph
		opts  *textgraph.RenderOpts
	}{
		{
			name: "td_chain",
			build: func() *graph.Graph {
				g := graph.New(graph.TopDown)
				g.AddEdge("A", "B", graph.Arrow, "")
				return g
			},
		},
		{
			name: "split_ascii",
			build: func() *graph.Graph {
				g := graph.New(graph.TopDown)
				g.AddEdge("A", "B", graph.Arrow, "")
				g.AddEdge("A", "C", graph.Arrow, "")
				return g
			},
			opts: &textgraph.RenderOpts{Charset: charset.ASCII},
		},
		{
			name: "merge",
			build: func() *graph.Graph {
				g := graph.New(graph.TopDown)
				g.AddEdge("A", "C", graph.Arrow, "")
				g.AddEdge("B", "C", graph.Arrow, "")
				return g
			},
		},
		{
			name: "lr_label",
			build: func() *graph.Graph {
				g := graph.New(graph.LeftRight)
				g.AddEdge("A", "B", graph.Arrow, "go")
				return g
			},
		},
		{
			name: "container",
			build: func() *graph.Graph {
				g := graph.New(graph.TopDown)
				g.AddEdge("A", "B", graph.Arrow, "")
				g.AddContainer("grp", "A", "B")
				return g
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := log.WithTB(context.Background(), t, nil)
			got := textgraph.RenderBytes(ctx, tc.build(), tc.opts)
			err := libdiff.TestdataText(filepath.Join("testdata", t.Name()), got)
			assert.NoError(t, err)
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, "", textgraph.Render(ctx, graph.New(graph.TopDown), nil))
	assert.Equal(t, "", textgraph.Render(ctx, nil, nil))
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *graph.Graph {
		g := graph.New(graph.TopDown)
		g.AddEdge("start", "check", graph.Arrow, "")
		g.AddEdge("check", "yes", graph.Arrow, "ok")
		g.AddEdge("check", "no", graph.DottedArrow, "fail")
		g.AddEdge("yes", "end", graph.Arrow, "")
		g.AddEdge("no", "end", graph.ThickArrow, "")
		g.AddEdge("end", "start", graph.Arrow, "again")
		g.Node("check").Shape = graph.Diamond
		return g
	}
	ctx := context.Background()
	first := textgraph.Render(ctx, build(), nil)
	for i := 0; i < 5; i++ {
		diff.AssertStringEq(t, first, textgraph.Render(ctx, build(), nil))
	}
}

func TestRenderDirections(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		dir   graph.Direction
		first func(line int, col int, prevLine int, prevCol int) bool
	}{
		{graph.TopDown, func(l, c, pl, pc int) bool { return l > pl }},
		{graph.BottomUp, func(l, c, pl, pc int) bool { return l < pl }},
		{graph.LeftRight, func(l, c, pl, pc int) bool { return c > pc && l == pl }},
		{graph.RightLeft, func(l, c, pl, pc int) bool { return c < pc && l == pl }},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.dir.String(), func(t *testing.T) {
			t.Parallel()

			g := graph.New(tc.dir)
			g.AddEdge("A", "B", graph.Arrow, "")
			out := textgraph.Render(context.Background(), g, nil)

			la, ca := find(out, "A")
			lb, cb := find(out, "B")
			require.NotEqual(t, -1, la)
			require.NotEqual(t, -1, lb)
			assert.True(t, tc.first(lb, cb, la, ca), "\n%s", out)
		})
	}
}

func find(out, s string) (line, col int) {
	for i, l := range strings.Split(out, "\n") {
		if j := strings.Index(l, s); j >= 0 {
			return i, len([]rune(l[:j]))
		}
	}
	return -1, -1
}

func TestRenderSplitMerge(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.AddEdge("A", "C", graph.Arrow, "")
	g.AddEdge("B", "D", graph.Arrow, "")
	g.AddEdge("C", "D", graph.Arrow, "")
	out := textgraph.Render(context.Background(), g, nil)

	assert.Equal(t, 1, strings.Count(out, "┴"), "\n%s", out)
	assert.Equal(t, 1, strings.Count(out, "┬"), "\n%s", out)
	assert.Equal(t, 3, strings.Count(out, "▼"), "\n%s", out)
}

func TestRenderCycles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.AddEdge("B", "A", graph.Arrow, "")
	out := textgraph.Render(ctx, g, nil)
	assert.Equal(t, 1, strings.Count(out, "▼"), "\n%s", out)
	assert.Equal(t, 1, strings.Count(out, "◀"), "\n%s", out)

	g = graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.AddEdge("B", "C", graph.Arrow, "")
	g.AddEdge("C", "B", graph.Arrow, "")
	g.AddEdge("C", "D", graph.Arrow, "")
	d, routes := textgraph.Layout(ctx, g, nil)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}, d.Ranks)
	assert.Greater(t, d.Node("D").Box.Top(), d.Node("C").Box.Bottom())
	require.Len(t, routes, 4)
	for _, r := range routes {
		assert.NotNil(t, r.Arrow, "%s -> %s", r.Edge.From, r.Edge.To)
	}
}

func TestRenderBranchLabels(t *testing.T) {
	t.Parallel()

	// Labels sit beside the middle cell of the arm, which is the arrowhead
	// when the arm is two cells long and the rows are mirrored.
	arms := map[graph.Direction]string{
		graph.TopDown:  "│",
		graph.BottomUp: "▲",
	}
	for dir, arm := range arms {
		for _, label := range []string{"yes", "a label wider than its arm"} {
			g := graph.New(dir)
			g.AddEdge("A", "B", graph.Arrow, label)
			g.AddEdge("A", "C", graph.Arrow, "no")
			out := textgraph.Render(context.Background(), g, nil)
			assert.Contains(t, out, label+" "+arm, "%v\n%s", dir, out)
			assert.Contains(t, out, arm+" no", "%v\n%s", dir, out)
		}
	}
}

func TestRenderDiamondStyles(t *testing.T) {
	t.Parallel()

	build := func() *graph.Graph {
		g := graph.New(graph.TopDown)
		g.AddNode("q", "ok?", graph.Diamond)
		return g
	}
	ctx := context.Background()

	diff.AssertStringEq(t, "◆─────◆\n│ ok? │\n◆─────◆", textgraph.Render(ctx, build(), nil))
	out := textgraph.Render(ctx, build(), &textgraph.RenderOpts{Diamond: asciishapes.Inline})
	assert.Equal(t, 1, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "ok?")
}

func TestRenderUnknownEndpoint(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.Edges = append(g.Edges, &graph.Edge{From: "A", To: "missing", Kind: graph.Arrow})

	ctx := log.WithTB(context.Background(), t, nil)
	out := textgraph.Render(ctx, g, nil)
	assert.Equal(t, 1, strings.Count(out, "▼"))
}

func TestLayout(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.LeftRight)
	g.AddEdge("A", "B", graph.Arrow, "")
	g.AddEdge("B", "C", graph.Invisible, "")
	d, routes := textgraph.Layout(context.Background(), g, nil)

	require.Len(t, routes, 1)
	assert.Equal(t, 0, d.Node("A").Rank)
	assert.Equal(t, 1, d.Node("B").Rank)
	assert.Equal(t, 2, d.Node("C").Rank)
	assert.Less(t, d.Node("A").Box.Left(), d.Node("B").Box.Left())
}
