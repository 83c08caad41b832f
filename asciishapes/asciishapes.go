package asciishapes

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/textgraph/asciicanvas"
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

// Context provides the drawing context for shapes
type Context struct {
	Canvas  *asciicanvas.Canvas
	Chars   charset.Set
	Diamond DiamondStyle
}

// DiamondStyle selects how decision nodes are drawn.
type DiamondStyle int

const (
	// Box is a rectangle with diamond glyphs on its corners.
	Box DiamondStyle = iota
	// Inline is a single row, ◆ label ◆.
	Inline
	// Tall draws real diagonals meeting above and below the label.
	Tall
)

func (s DiamondStyle) String() string {
	switch s {
	case Inline:
		return "inline"
	case Tall:
		return "tall"
	default:
		return "box"
	}
}

func ParseDiamondStyle(s string) (DiamondStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "box":
		return Box, nil
	case "inline":
		return Inline, nil
	case "tall":
		return Tall, nil
	}
	return Box, fmt.Errorf("unknown diamond style %q", s)
}

// Opts configures node sizing. The zero value wraps nothing and clamps
// nothing.
type Opts struct {
	Chars         charset.Set
	Diamond       DiamondStyle
	MaxLabelWidth int
	MinWidth      int
	MinHeight     int
}

// Padding returns the cells a shape adds around its label.
func Padding(shape graph.Shape, diamond DiamondStyle) (extraW, extraH int) {
	switch shape {
	case graph.Subroutine, graph.Hexagon, graph.Asymmetric, graph.Parallelogram, graph.Trapezoid:
		return 6, 0
	case graph.Cylinder:
		return 4, 2
	case graph.Diamond:
		if diamond == Tall {
			return 6, 2
		}
		return 4, 0
	default:
		return 4, 0
	}
}

func isCompact(chars charset.Set) bool {
	_, ok := chars.(charset.NodeGlyphs)
	return ok
}

func effectiveShape(n *graph.Node) graph.Shape {
	if n.Terminal != graph.NotTerminal {
		return graph.Circle
	}
	return n.Shape
}

// LabelLines returns the text drawn inside a node.
func LabelLines(n *graph.Node, opts Opts) []string {
	if n.Terminal != graph.NotTerminal {
		return []string{terminalGlyph(opts.Chars, n.Terminal)}
	}
	lines := textmeasure.Lines(n.Label, opts.MaxLabelWidth)
	if isCompact(opts.Chars) || (n.Shape == graph.Diamond && opts.Diamond == Inline) {
		return []string{strings.Join(lines, " ")}
	}
	return lines
}

func terminalGlyph(chars charset.Set, t graph.Terminal) string {
	if t == graph.End {
		return chars.TerminalEnd()
	}
	return chars.TerminalStart()
}

// Size returns the width and height of the node's box along with its label
// lines.
func Size(n *graph.Node, opts Opts) (w, h int, lines []string) {
	if opts.Chars == nil {
		opts.Chars = charset.New(charset.Unicode)
	}
	lines = LabelLines(n, opts)
	labelW := textmeasure.MaxWidth(lines)

	if isCompact(opts.Chars) {
		if n.Terminal != graph.NotTerminal {
			return labelW, 1, lines
		}
		return labelW + 2, 1, lines
	}

	shape := effectiveShape(n)
	extraW, extraH := Padding(shape, opts.Diamond)
	w = labelW + extraW
	h = 3 + extraH + len(lines) - 1

	if shape == graph.Diamond {
		switch opts.Diamond {
		case Inline:
			return w, 1, lines
		case Tall:
			w = geo.Max(w, opts.MinWidth)
			if w%2 == 1 {
				w++
			}
			h = geo.Max(5, len(lines)+4)
			if h%2 == 0 {
				h++
			}
			return w, h, lines
		default:
			h = len(lines) + 2
		}
	}
	return geo.Max(w, opts.MinWidth), geo.Max(h, opts.MinHeight), lines
}

// Size implements the layout's node sizer.
func (opts Opts) Size(n *graph.Node) (w, h int, lines []string) {
	return Size(n, opts)
}

// Draw renders the node into box. Nodes are drawn after edges so the box is
// cleared first.
func Draw(ctx *Context, n *graph.Node, box geo.Box, lines []string) {
	if isCompact(ctx.Chars) {
		drawCompact(ctx, n, box, lines)
		return
	}
	ctx.Canvas.ClearRect(box.Left(), box.Top(), box.Width, box.Height)

	switch effectiveShape(n) {
	case graph.RoundedRect:
		DrawRect(ctx, box, lines, roundedCorners(ctx.Chars))
	case graph.Diamond:
		DrawDiamond(ctx, box, lines)
	case graph.Circle:
		DrawCircle(ctx, box, lines)
	case graph.Hexagon:
		DrawHexagon(ctx, box, lines)
	case graph.Subroutine:
		DrawSubroutine(ctx, box, lines)
	case graph.Cylinder:
		DrawCylinder(ctx, box, lines)
	case graph.Asymmetric:
		DrawAsymmetric(ctx, box, lines)
	case graph.Parallelogram:
		DrawParallelogram(ctx, box, lines)
	case graph.Trapezoid:
		DrawTrapezoid(ctx, box, lines)
	default:
		DrawRect(ctx, box, lines, squareCorners(ctx.Chars))
	}
}

// DrawLabel centers lines horizontally in the box and vertically between rows
// top and bottom inclusive.
func DrawLabel(ctx *Context, box geo.Box, top, bottom int, lines []string) {
	if len(lines) == 0 {
		return
	}
	y := top + (bottom-top+1-len(lines))/2
	if y < top {
		y = top
	}
	for i, l := range lines {
		if l == "" {
			continue
		}
		x := box.Left() + (box.Width-textmeasure.Width(l))/2
		ctx.Canvas.DrawText(x, y+i, l)
	}
}
