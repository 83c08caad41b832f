package asciiroute

import (
	"oss.terrastruct.com/textgraph/lib/geo"
	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

// placeLabel positions label lines beside the midpoint of the segment a..z.
// Beside a vertical segment the block sits to the right, or to the left when
// the edge branched left. Beside a horizontal segment it sits above, or below
// when the edge branched right.
func placeLabel(lines []string, a, z geo.Point, branch int, horizontalFlow bool) []Text {
	if len(lines) == 0 {
		return nil
	}
	vertical := a.X == z.X && (a.Y != z.Y || !horizontalFlow)
	mid := geo.Point{X: (a.X + z.X) / 2, Y: (a.Y + z.Y) / 2}

	texts := make([]Text, 0, len(lines))
	if vertical {
		w := textmeasure.MaxWidth(lines)
		x := mid.X + 2
		if branch < 0 {
			x = mid.X - 1 - w
		}
		y := mid.Y - len(lines)/2
		for i, l := range lines {
			texts = append(texts, Text{At: geo.Point{X: x, Y: y + i}, Text: l})
		}
		return texts
	}

	y := mid.Y - len(lines)
	if branch > 0 {
		y = mid.Y + 1
	}
	for i, l := range lines {
		x := mid.X - textmeasure.Width(l)/2
		texts = append(texts, Text{At: geo.Point{X: x, Y: y + i}, Text: l})
	}
	return texts
}
