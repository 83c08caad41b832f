package asciishapes

import (
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/lib/geo"
)

type corners struct {
	tl, tr, bl, br string
}

func squareCorners(chars charset.Set) corners {
	return corners{chars.TopLeftCorner(), chars.TopRightCorner(), chars.BottomLeftCorner(), chars.BottomRightCorner()}
}

func roundedCorners(chars charset.Set) corners {
	return corners{chars.TopLeftArc(), chars.TopRightArc(), chars.BottomLeftArc(), chars.BottomRightArc()}
}

// DrawBorder draws the outline of box with the given corners.
func DrawBorder(ctx *Context, box geo.Box, c corners) {
	x1, y1, x2, y2 := box.Left(), box.Top(), box.Right(), box.Bottom()
	for xi := x1 + 1; xi < x2; xi++ {
		ctx.Canvas.Set(xi, y1, ctx.Chars.Horizontal())
		ctx.Canvas.Set(xi, y2, ctx.Chars.Horizontal())
	}
	for yi := y1 + 1; yi < y2; yi++ {
		ctx.Canvas.Set(x1, yi, ctx.Chars.Vertical())
		ctx.Canvas.Set(x2, yi, ctx.Chars.Vertical())
	}
	ctx.Canvas.Set(x1, y1, c.tl)
	ctx.Canvas.Set(x2, y1, c.tr)
	ctx.Canvas.Set(x1, y2, c.bl)
	ctx.Canvas.Set(x2, y2, c.br)
}

func DrawRect(ctx *Context, box geo.Box, lines []string, c corners) {
	DrawBorder(ctx, box, c)
	DrawLabel(ctx, box, box.Top()+1, box.Bottom()-1, lines)
}

// DrawSubroutine draws a rectangle with inner bars next to both sides.
func DrawSubroutine(ctx *Context, box geo.Box, lines []string) {
	DrawBorder(ctx, box, squareCorners(ctx.Chars))
	x1, x2 := box.Left()+1, box.Right()-1
	for yi := box.Top() + 1; yi < box.Bottom(); yi++ {
		ctx.Canvas.Set(x1, yi, ctx.Chars.Vertical())
		ctx.Canvas.Set(x2, yi, ctx.Chars.Vertical())
	}
	ctx.Canvas.Set(x1, box.Top(), ctx.Chars.TDown())
	ctx.Canvas.Set(x2, box.Top(), ctx.Chars.TDown())
	ctx.Canvas.Set(x1, box.Bottom(), ctx.Chars.TUp())
	ctx.Canvas.Set(x2, box.Bottom(), ctx.Chars.TUp())
	DrawLabel(ctx, box, box.Top()+1, box.Bottom()-1, lines)
}

// DrawCylinder draws an arc border with a rim row under the top.
func DrawCylinder(ctx *Context, box geo.Box, lines []string) {
	DrawBorder(ctx, box, roundedCorners(ctx.Chars))
	rim := box.Top() + 1
	ctx.Canvas.Set(box.Left(), rim, ctx.Chars.TRight())
	for xi := box.Left() + 1; xi < box.Right(); xi++ {
		ctx.Canvas.Set(xi, rim, ctx.Chars.Horizontal())
	}
	ctx.Canvas.Set(box.Right(), rim, ctx.Chars.TLeft())
	DrawLabel(ctx, box, rim+1, box.Bottom()-1, lines)
}

// DrawCircle draws arc corners with parentheses on the interior rows.
// Terminal nodes pass their glyph as the only label line.
func DrawCircle(ctx *Context, box geo.Box, lines []string) {
	DrawBorder(ctx, box, roundedCorners(ctx.Chars))
	for yi := box.Top() + 1; yi < box.Bottom(); yi++ {
		ctx.Canvas.Set(box.Left(), yi, "(")
		ctx.Canvas.Set(box.Right(), yi, ")")
	}
	DrawLabel(ctx, box, box.Top()+1, box.Bottom()-1, lines)
}
