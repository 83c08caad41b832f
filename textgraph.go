// Package textgraph draws directed graphs as monospace text.
//
// A graph is ranked, ordered and placed by the layered layout, its edges are
// routed orthogonally by asciiroute and everything is composited onto a
// character canvas in one of the charset dialects.
package textgraph

import (
	"context"

	"cdr.dev/slog"

	"oss.terrastruct.com/textgraph/asciicanvas"
	"oss.terrastruct.com/textgraph/asciiroute"
	"oss.terrastruct.com/textgraph/asciishapes"
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/layouts/layered"
	"oss.terrastruct.com/textgraph/lib/color"
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/log"
	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

type RenderOpts struct {
	Charset charset.Type             `json:"charset"`
	Diamond asciishapes.DiamondStyle `json:"diamond"`
	// Layout overrides layered.DefaultOpts when set.
	Layout *layered.Opts `json:"layout,omitempty"`
	// Color paints the drawing with ANSI escapes from Palette, or
	// color.DefaultPalette when Palette is nil.
	Color   bool           `json:"color,omitempty"`
	Palette *color.Palette `json:"palette,omitempty"`
}

func (opts *RenderOpts) layoutOpts() *layered.Opts {
	if opts == nil || opts.Layout == nil {
		lo := layered.DefaultOpts
		return &lo
	}
	return opts.Layout
}

func (opts *RenderOpts) charset() charset.Set {
	if opts == nil {
		return charset.New(charset.Unicode)
	}
	return charset.New(opts.Charset)
}

func (opts *RenderOpts) shapeOpts() asciishapes.Opts {
	lo := opts.layoutOpts()
	so := asciishapes.Opts{
		Chars:         opts.charset(),
		MaxLabelWidth: lo.MaxLabelWidth,
		MinWidth:      lo.MinNodeWidth,
		MinHeight:     lo.MinNodeHeight,
	}
	if opts != nil {
		so.Diamond = opts.Diamond
	}
	return so
}

// Layout places the nodes of g and routes its edges without drawing anything.
func Layout(ctx context.Context, g *graph.Graph, opts *RenderOpts) (*layered.Diagram, []*asciiroute.Route) {
	lo := opts.layoutOpts()
	d := layered.Layout(ctx, g, opts.shapeOpts(), lo)
	routes := asciiroute.Plan(ctx, g, d, asciiroute.Opts{MaxLabelWidth: lo.MaxLabelWidth})
	// Labels left of a left branch or above a top run can reach past the
	// origin, where the canvas cannot draw.
	if dx, dy := asciiroute.Overhang(routes); dx > 0 || dy > 0 {
		d.Translate(dx, dy)
		for _, r := range routes {
			r.Translate(dx, dy)
		}
		log.Debug(ctx, "moved drawing to fit edge labels", slog.F("dx", dx), slog.F("dy", dy))
	}
	return d, routes
}

// Render draws g. The pipeline never fails: cycles are broken, edges to
// unknown nodes are dropped and an empty graph renders as "".
func Render(ctx context.Context, g *graph.Graph, opts *RenderOpts) string {
	if g == nil || len(g.Nodes) == 0 {
		return ""
	}
	d, routes := Layout(ctx, g, opts)
	c := Composite(ctx, g, d, routes, opts)
	if opts != nil && opts.Color {
		p := color.DefaultPalette
		if opts.Palette != nil {
			p = *opts.Palette
		}
		err := Colorize(c, g, d, routes, opts.charset(), p)
		if err != nil {
			log.Warn(ctx, "rendering without color", slog.Error(err))
			c = Composite(ctx, g, d, routes, opts)
		}
	}
	return c.String()
}

func RenderBytes(ctx context.Context, g *graph.Graph, opts *RenderOpts) []byte {
	return []byte(Render(ctx, g, opts))
}

// Composite draws a laid out graph onto a fresh canvas: container borders,
// edge lines, edge labels, nodes and finally container titles so no line
// runs through them.
func Composite(ctx context.Context, g *graph.Graph, d *layered.Diagram, routes []*asciiroute.Route, opts *RenderOpts) *asciicanvas.Canvas {
	chars := opts.charset()
	c := asciicanvas.New(d.Width, d.Height)

	containers := containerBoxes(g, d)
	for _, cb := range containers {
		drawContainer(c, chars, cb.box)
	}

	dr := asciiroute.NewDrawer(c, chars)
	for _, r := range routes {
		dr.Draw(r)
	}
	for _, r := range routes {
		dr.DrawLabel(r)
	}

	sctx := &asciishapes.Context{Canvas: c, Chars: chars}
	if opts != nil {
		sctx.Diamond = opts.Diamond
	}
	for _, n := range g.Nodes {
		ln := d.Node(n.ID)
		if ln == nil {
			continue
		}
		asciishapes.Draw(sctx, n, ln.Box, ln.Lines)
	}

	for _, cb := range containers {
		drawTitle(c, cb.box, cb.title)
	}

	log.Debug(ctx, "composited",
		slog.F("width", c.Width()),
		slog.F("height", c.Height()),
		slog.F("routes", len(routes)),
		slog.F("containers", len(containers)),
	)
	return c
}

type containerBox struct {
	title string
	box   geo.Box
}

// containerBoxes returns the border box of every resolved container: the
// members' bounding box with one cell of margin inside the border.
func containerBoxes(g *graph.Graph, d *layered.Diagram) []containerBox {
	var out []containerBox
	for _, ct := range g.ResolvedContainers() {
		var bbox *geo.Box
		for _, id := range ct.Members {
			n := d.Node(id)
			if n == nil {
				continue
			}
			if bbox == nil {
				b := n.Box
				bbox = &b
				continue
			}
			u := bbox.Union(n.Box)
			bbox = &u
		}
		if bbox == nil {
			continue
		}
		out = append(out, containerBox{
			title: ct.Title,
			box: geo.Box{
				TopLeft: bbox.TopLeft.Add(-2, -2),
				Width:   bbox.Width + 4,
				Height:  bbox.Height + 4,
			},
		})
	}
	return out
}

func drawContainer(c *asciicanvas.Canvas, chars charset.Set, b geo.Box) {
	l, t, r, btm := b.Left(), b.Top(), b.Right(), b.Bottom()
	for x := l + 1; x < r; x++ {
		c.Set(x, t, chars.DoubleHorizontal())
		c.Set(x, btm, chars.DoubleHorizontal())
	}
	for y := t + 1; y < btm; y++ {
		c.Set(l, y, chars.DoubleVertical())
		c.Set(r, y, chars.DoubleVertical())
	}
	c.Set(l, t, chars.DoubleTopLeft())
	c.Set(r, t, chars.DoubleTopRight())
	c.Set(l, btm, chars.DoubleBottomLeft())
	c.Set(r, btm, chars.DoubleBottomRight())
}

// drawTitle centers the title on the top border, padded by a blank on each
// side when the border is wide enough.
func drawTitle(c *asciicanvas.Canvas, b geo.Box, title string) {
	if title == "" {
		return
	}
	inner := b.Width - 2
	if textmeasure.Width(title)+2 <= inner {
		title = " " + title + " "
	}
	c.DrawTextCentered(b.Left()+b.Width/2, b.Top(), title)
}
