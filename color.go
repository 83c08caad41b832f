package textgraph

import (
	"strings"
	"unicode"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/textgraph/asciicanvas"
	"oss.terrastruct.com/textgraph/asciiroute"
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/layouts/layered"
	"oss.terrastruct.com/textgraph/lib/color"
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

type glyphClass int

const (
	classNone glyphClass = iota
	classEdge
	classArrow
	classJunction
)

func glyphClasses(chars charset.Set) map[string]glyphClass {
	classes := make(map[string]glyphClass)
	for _, g := range []string{
		chars.Horizontal(), chars.Vertical(),
		chars.DottedHorizontal(), chars.DottedVertical(),
		chars.ThickHorizontal(), chars.ThickVertical(),
	} {
		classes[g] = classEdge
	}
	for _, g := range []string{
		chars.TopLeftCorner(), chars.TopRightCorner(),
		chars.BottomLeftCorner(), chars.BottomRightCorner(),
		chars.TDown(), chars.TUp(), chars.TLeft(), chars.TRight(), chars.Cross(),
	} {
		classes[g] = classJunction
	}
	for _, g := range []string{
		chars.ArrowUp(), chars.ArrowDown(), chars.ArrowLeft(), chars.ArrowRight(),
		chars.OpenArrow(), chars.CrossArrow(),
	} {
		classes[g] = classArrow
	}
	return classes
}

// Colorize paints a composited canvas with ANSI escapes. Node outlines and
// container borders get the border color, edge cells the color of their
// class. Nodes with a fill get it as background with a readable text color
// and a darker outline. Label text outside nodes is never painted.
func Colorize(c *asciicanvas.Canvas, g *graph.Graph, d *layered.Diagram, routes []*asciiroute.Route, chars charset.Set, p color.Palette) (err error) {
	defer xdefer.Errorf(&err, "failed to colorize")

	done := make(map[geo.Point]struct{})
	for _, r := range routes {
		for _, t := range r.Label {
			for x := t.At.X; x < t.At.X+textmeasure.Width(t.Text); x++ {
				done[geo.Point{X: x, Y: t.At.Y}] = struct{}{}
			}
		}
	}

	for _, n := range g.Nodes {
		ln := d.Node(n.ID)
		if ln == nil {
			continue
		}
		err = paintNode(c, ln.Box, n.Fill, p, done)
		if err != nil {
			return err
		}
	}

	for _, cb := range containerBoxes(g, d) {
		b := cb.box
		for y := b.Top(); y <= b.Bottom(); y++ {
			for x := b.Left(); x <= b.Right(); x++ {
				if y != b.Top() && y != b.Bottom() && x != b.Left() && x != b.Right() {
					continue
				}
				err = paintCell(c, geo.Point{X: x, Y: y}, p.Border, "", done)
				if err != nil {
					return err
				}
			}
		}
	}

	classes := glyphClasses(chars)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			pt := geo.Point{X: x, Y: y}
			if _, ok := done[pt]; ok {
				continue
			}
			var fg string
			switch classes[c.Get(x, y)] {
			case classEdge:
				fg = p.Edge
			case classArrow:
				fg = p.Arrow
			case classJunction:
				fg = p.Junction
			default:
				continue
			}
			err = paintCell(c, pt, fg, "", done)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func paintNode(c *asciicanvas.Canvas, b geo.Box, fill string, p color.Palette, done map[geo.Point]struct{}) error {
	border, text := p.Border, ""
	if fill != "" {
		var err error
		border, err = color.Darken(fill)
		if err != nil {
			return err
		}
		text, err = color.Readable(fill)
		if err != nil {
			return err
		}
	}
	for y := b.Top(); y <= b.Bottom(); y++ {
		for x := b.Left(); x <= b.Right(); x++ {
			pt := geo.Point{X: x, Y: y}
			var err error
			switch g := c.Get(x, y); {
			case onPerimeter(b, pt) || !isLabelRune(g) && g != " ":
				err = paintCell(c, pt, border, "", done)
			case g == " ":
				err = paintCell(c, pt, "", fill, done)
			default:
				err = paintCell(c, pt, text, fill, done)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func paintCell(c *asciicanvas.Canvas, pt geo.Point, fg, bg string, done map[geo.Point]struct{}) error {
	if _, ok := done[pt]; ok {
		return nil
	}
	done[pt] = struct{}{}
	if fg == "" && bg == "" {
		return nil
	}
	before, err := color.Escapes(fg, bg)
	if err != nil {
		return err
	}
	c.Decorate(pt.X, pt.Y, before, color.Reset)
	return nil
}

func onPerimeter(b geo.Box, pt geo.Point) bool {
	return pt.X == b.Left() || pt.X == b.Right() || pt.Y == b.Top() || pt.Y == b.Bottom()
}

// isLabelRune reports whether a glyph inside a node belongs to its label
// rather than its outline.
func isLabelRune(g string) bool {
	for _, r := range g {
		if strings.ContainsRune(`|-/\<>`, r) {
			return false
		}
		return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) && r < unicode.MaxASCII
	}
	return false
}
