package asciishapes

import (
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/geo"
)

// drawCompact writes a node as its glyph followed by the label on one row.
func drawCompact(ctx *Context, n *graph.Node, box geo.Box, lines []string) {
	ng := ctx.Chars.(charset.NodeGlyphs)
	ctx.Canvas.ClearRect(box.Left(), box.Top(), box.Width, box.Height)

	label := ""
	if len(lines) > 0 {
		label = lines[0]
	}
	if n.Terminal != graph.NotTerminal {
		ctx.Canvas.DrawText(box.Left(), box.Top(), label)
		return
	}

	glyph := ng.RectangleGlyph()
	switch n.Shape {
	case graph.RoundedRect:
		glyph = ng.RoundedGlyph()
	case graph.Diamond:
		glyph = ng.DiamondGlyph()
	case graph.Circle:
		glyph = ng.CircleGlyph()
	}
	ctx.Canvas.Set(box.Left(), box.Top(), glyph)
	ctx.Canvas.DrawText(box.Left()+2, box.Top(), label)
}
