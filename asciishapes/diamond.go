package asciishapes

import (
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

func DrawDiamond(ctx *Context, box geo.Box, lines []string) {
	switch ctx.Diamond {
	case Inline:
		drawInlineDiamond(ctx, box, lines)
	case Tall:
		drawTallDiamond(ctx, box, lines)
	default:
		drawBoxDiamond(ctx, box, lines)
	}
}

func drawBoxDiamond(ctx *Context, box geo.Box, lines []string) {
	d := ctx.Chars.DiamondCorner()
	DrawRect(ctx, box, lines, corners{d, d, d, d})
}

func drawInlineDiamond(ctx *Context, box geo.Box, lines []string) {
	y := box.Top() + box.Height/2
	ctx.Canvas.Set(box.Left(), y, ctx.Chars.DiamondCorner())
	ctx.Canvas.Set(box.Right(), y, ctx.Chars.DiamondCorner())
	if len(lines) > 0 {
		ctx.Canvas.DrawText(box.Left()+(box.Width-textmeasure.Width(lines[0]))/2, y, lines[0])
	}
}

// drawTallDiamond draws diagonals from the apex pair at the top center out to
// the < > on the middle row and back in to the bottom apex pair.
func drawTallDiamond(ctx *Context, box geo.Box, lines []string) {
	x1, y1 := box.Left(), box.Top()
	w, h := box.Width, box.Height
	half := h / 2
	reach := w/2 - 1
	mid := y1 + half

	for r := 0; r < half; r++ {
		k := (2*r*reach + half) / (2 * half)
		left := x1 + reach - k
		right := x1 + w - 1 - reach + k
		ctx.Canvas.Set(left, y1+r, ctx.Chars.ForwardSlash())
		ctx.Canvas.Set(right, y1+r, ctx.Chars.Backslash())
		ctx.Canvas.Set(left, y1+h-1-r, ctx.Chars.Backslash())
		ctx.Canvas.Set(right, y1+h-1-r, ctx.Chars.ForwardSlash())
	}
	ctx.Canvas.Set(x1, mid, "<")
	ctx.Canvas.Set(x1+w-1, mid, ">")

	DrawLabel(ctx, box, y1+1, y1+h-2, lines)
}
