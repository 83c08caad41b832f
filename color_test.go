package textgraph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/textgraph"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/color"
	"oss.terrastruct.com/textgraph/lib/log"
)

func TestColorize(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	g.AddEdge("A", "B", graph.Arrow, "yes")
	out := textgraph.Render(context.Background(), g, &textgraph.RenderOpts{Color: true})

	arrow, err := color.Paint("▼", color.DefaultPalette.Arrow, "")
	require.NoError(t, err)
	assert.Contains(t, out, arrow)
	edge, err := color.Paint("│", color.DefaultPalette.Edge, "")
	require.NoError(t, err)
	assert.Contains(t, out, edge)

	// Labels stay plain without a fill.
	assert.Contains(t, out, " A ")
	assert.Contains(t, out, "yes")
	assert.NotContains(t, out, "y\x1b")
}

func TestColorizeFill(t *testing.T) {
	t.Parallel()

	g := graph.New(graph.TopDown)
	n, err := g.AddNode("A", "", graph.Rectangle)
	require.NoError(t, err)
	n.Fill = "#ffcc00"
	out := textgraph.Render(context.Background(), g, &textgraph.RenderOpts{Color: true})

	label, err := color.Paint("A", "#000000", "#ffcc00")
	require.NoError(t, err)
	assert.Contains(t, out, label)
	border, err := color.Darken("#ffcc00")
	require.NoError(t, err)
	fg, err := color.Foreground(border)
	require.NoError(t, err)
	assert.Contains(t, out, fg+"┌")
}

func TestColorizeInvalidFill(t *testing.T) {
	t.Parallel()

	build := func() *graph.Graph {
		g := graph.New(graph.TopDown)
		n, _ := g.AddNode("A", "", graph.Rectangle)
		n.Fill = "not a color"
		return g
	}
	ctx := log.WithTB(context.Background(), t, nil)
	out := textgraph.Render(ctx, build(), &textgraph.RenderOpts{Color: true})
	assert.False(t, strings.Contains(out, "\x1b"))
	assert.Equal(t, textgraph.Render(ctx, build(), nil), out)
}
