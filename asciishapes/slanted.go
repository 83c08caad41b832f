package asciishapes

import (
	"oss.terrastruct.com/textgraph/lib/geo"
)

func hline(ctx *Context, x1, x2, y int) {
	for xi := x1; xi <= x2; xi++ {
		ctx.Canvas.Set(xi, y, ctx.Chars.Horizontal())
	}
}

// DrawHexagon draws slashes on the top and bottom rows and angle brackets on
// the middle row.
func DrawHexagon(ctx *Context, box geo.Box, lines []string) {
	x1, y1, x2, y2 := box.Left(), box.Top(), box.Right(), box.Bottom()
	mid := y1 + box.Height/2

	ctx.Canvas.Set(x1+1, y1, "/")
	hline(ctx, x1+2, x2-2, y1)
	ctx.Canvas.Set(x2-1, y1, "\\")

	ctx.Canvas.Set(x1+1, y2, "\\")
	hline(ctx, x1+2, x2-2, y2)
	ctx.Canvas.Set(x2-1, y2, "/")

	for yi := y1 + 1; yi < y2; yi++ {
		if yi == mid {
			ctx.Canvas.Set(x1, yi, "<")
			ctx.Canvas.Set(x2, yi, ">")
			continue
		}
		ctx.Canvas.Set(x1, yi, ctx.Chars.Vertical())
		ctx.Canvas.Set(x2, yi, ctx.Chars.Vertical())
	}
	DrawLabel(ctx, box, y1+1, y2-1, lines)
}

// slant is the horizontal offset of row r in a shape of h rows: 2 on the top
// row, 0 on the bottom row.
func slant(r, h int) int {
	if h <= 1 {
		return 0
	}
	return (4*(h-1-r) + (h - 1)) / (2 * (h - 1))
}

// DrawParallelogram leans both sides to the right.
func DrawParallelogram(ctx *Context, box geo.Box, lines []string) {
	x1, y1 := box.Left(), box.Top()
	h := box.Height
	for r := 0; r < h; r++ {
		off := slant(r, h)
		left := x1 + off
		right := box.Right() - 2 + off
		if r == 0 || r == h-1 {
			hline(ctx, left+1, right-1, y1+r)
		}
		ctx.Canvas.Set(left, y1+r, "/")
		ctx.Canvas.Set(right, y1+r, "/")
	}
	DrawLabel(ctx, box, y1+1, box.Bottom()-1, lines)
}

// DrawTrapezoid narrows toward the top.
func DrawTrapezoid(ctx *Context, box geo.Box, lines []string) {
	x1, y1 := box.Left(), box.Top()
	h := box.Height
	for r := 0; r < h; r++ {
		off := slant(r, h)
		left := x1 + off
		right := box.Right() - off
		if r == 0 || r == h-1 {
			hline(ctx, left+1, right-1, y1+r)
		}
		ctx.Canvas.Set(left, y1+r, "/")
		ctx.Canvas.Set(right, y1+r, "\\")
	}
	DrawLabel(ctx, box, y1+1, box.Bottom()-1, lines)
}

// DrawAsymmetric draws a flag: a notched left side and a square right side.
func DrawAsymmetric(ctx *Context, box geo.Box, lines []string) {
	x1, y1, x2, y2 := box.Left(), box.Top(), box.Right(), box.Bottom()
	mid := y1 + box.Height/2

	hline(ctx, x1+1, x2-1, y1)
	hline(ctx, x1+1, x2-1, y2)
	ctx.Canvas.Set(x2, y1, ctx.Chars.TopRightCorner())
	ctx.Canvas.Set(x2, y2, ctx.Chars.BottomRightCorner())
	for yi := y1; yi <= y2; yi++ {
		switch {
		case yi == mid:
			ctx.Canvas.Set(x1+1, yi, ">")
		case yi < mid:
			ctx.Canvas.Set(x1, yi, "\\")
		default:
			ctx.Canvas.Set(x1, yi, "/")
		}
		if yi != y1 && yi != y2 {
			ctx.Canvas.Set(x2, yi, ctx.Chars.Vertical())
		}
	}
	DrawLabel(ctx, box, y1+1, y2-1, lines)
}
