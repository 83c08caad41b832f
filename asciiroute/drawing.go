package asciiroute

import (
	"oss.terrastruct.com/textgraph/asciicanvas"
	"oss.terrastruct.com/textgraph/charset"
	"oss.terrastruct.com/textgraph/graph"
	"oss.terrastruct.com/textgraph/lib/geo"
)

// Drawer paints routes onto a canvas. It remembers which cells hold edge
// lines and the directions they connect in, so later routes can join or cross
// them instead of guessing from glyphs that may be ambiguous in ASCII.
type Drawer struct {
	Canvas *asciicanvas.Canvas
	Chars  charset.Set

	cells  map[geo.Point]geo.Dirs
	arrows map[geo.Point]struct{}
}

func NewDrawer(c *asciicanvas.Canvas, chars charset.Set) *Drawer {
	return &Drawer{
		Canvas: c,
		Chars:  chars,
		cells:  make(map[geo.Point]geo.Dirs),
		arrows: make(map[geo.Point]struct{}),
	}
}

// Draw paints the marks, runs and arrowhead of r. Labels are drawn separately
// with DrawLabel once every line is down.
func (d *Drawer) Draw(r *Route) {
	for _, m := range r.Marks {
		d.drawMark(m)
	}
	for _, run := range r.Runs {
		d.drawRun(run)
	}
	if r.Arrow != nil {
		d.drawArrow(*r.Arrow)
	}
}

func (d *Drawer) DrawLabel(r *Route) {
	for _, t := range r.Label {
		d.Canvas.DrawText(t.At.X, t.At.Y, t.Text)
	}
}

// isBackground reports whether p holds nothing an edge must preserve: a blank
// or a container border no edge has claimed.
func (d *Drawer) isBackground(p geo.Point) bool {
	if _, ok := d.cells[p]; ok {
		return false
	}
	g := d.Canvas.Get(p.X, p.Y)
	if g == " " {
		return true
	}
	switch g {
	case d.Chars.DoubleTopLeft(), d.Chars.DoubleTopRight(),
		d.Chars.DoubleBottomLeft(), d.Chars.DoubleBottomRight(),
		d.Chars.DoubleHorizontal(), d.Chars.DoubleVertical():
		return true
	}
	return false
}

func (d *Drawer) isArrow(p geo.Point) bool {
	_, ok := d.arrows[p]
	return ok
}

func (d *Drawer) drawMark(m Mark) {
	p := m.At
	if p.X < 0 || p.Y < 0 {
		return
	}
	if d.isBackground(p) {
		d.cells[p] = m.Dirs
		d.Canvas.Set(p.X, p.Y, d.junction(m.Dirs, m.Kind))
		return
	}
	owned, ok := d.cells[p]
	if !ok || d.isArrow(p) {
		return
	}
	owned |= m.Dirs
	d.cells[p] = owned
	d.Canvas.Set(p.X, p.Y, d.junction(owned, m.Kind))
}

func (d *Drawer) drawRun(run Run) {
	step := run.From.Step(run.To)
	axis := geo.DirUp | geo.DirDown
	if run.Horizontal {
		axis = geo.DirLeft | geo.DirRight
	}
	glyph := d.line(run.Kind, run.Horizontal)

	dx, dy := 0, 0
	switch {
	case step.Has(geo.DirRight):
		dx = 1
	case step.Has(geo.DirLeft):
		dx = -1
	case step.Has(geo.DirDown):
		dy = 1
	case step.Has(geo.DirUp):
		dy = -1
	}

	p := run.From
	for {
		end := p == run.From || p == run.To
		d.drawRunCell(p, axis, glyph, end, run)
		if p == run.To {
			break
		}
		p = p.Add(dx, dy)
	}
}

func (d *Drawer) drawRunCell(p geo.Point, axis geo.Dirs, glyph string, end bool, run Run) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	if d.isBackground(p) {
		d.cells[p] = axis
		d.Canvas.Set(p.X, p.Y, glyph)
		return
	}
	owned, ok := d.cells[p]
	if !ok || d.isArrow(p) {
		return
	}
	perpendicular := geo.DirLeft | geo.DirRight
	if run.Horizontal {
		perpendicular = geo.DirUp | geo.DirDown
	}
	if owned != perpendicular {
		return
	}

	if run.From == run.To || !end {
		d.cells[p] = geo.AllDirs
		d.Canvas.Set(p.X, p.Y, d.junction(geo.AllDirs, run.Kind))
		return
	}
	// An endpoint on a crossing line becomes a T opening toward the run body.
	body := run.From.Step(run.To)
	if p == run.To {
		body = run.To.Step(run.From)
	}
	owned |= body
	d.cells[p] = owned
	d.Canvas.Set(p.X, p.Y, d.junction(owned, run.Kind))
}

func (d *Drawer) drawArrow(a Arrow) {
	p := a.At
	if p.X < 0 || p.Y < 0 {
		return
	}
	var glyph string
	switch a.Kind {
	case graph.OpenArrow:
		glyph = d.Chars.OpenArrow()
	case graph.CrossArrow:
		glyph = d.Chars.CrossArrow()
	default:
		switch {
		case a.Travel.Has(geo.DirUp):
			glyph = d.Chars.ArrowUp()
		case a.Travel.Has(geo.DirLeft):
			glyph = d.Chars.ArrowLeft()
		case a.Travel.Has(geo.DirRight):
			glyph = d.Chars.ArrowRight()
		default:
			glyph = d.Chars.ArrowDown()
		}
	}
	d.arrows[p] = struct{}{}
	d.cells[p] = a.Travel | a.Travel.Opposite()
	d.Canvas.Set(p.X, p.Y, glyph)
}

func (d *Drawer) line(k graph.EdgeKind, horizontal bool) string {
	switch {
	case k.IsDotted() && horizontal:
		return d.Chars.DottedHorizontal()
	case k.IsDotted():
		return d.Chars.DottedVertical()
	case k.IsThick() && horizontal:
		return d.Chars.ThickHorizontal()
	case k.IsThick():
		return d.Chars.ThickVertical()
	case horizontal:
		return d.Chars.Horizontal()
	default:
		return d.Chars.Vertical()
	}
}

// junction returns the glyph connecting every direction in dirs. Masks along a
// single axis are plain lines in the style of kind. Corners and junctions are
// always light.
func (d *Drawer) junction(dirs geo.Dirs, k graph.EdgeKind) string {
	up, down := dirs.Has(geo.DirUp), dirs.Has(geo.DirDown)
	left, right := dirs.Has(geo.DirLeft), dirs.Has(geo.DirRight)
	switch {
	case up && down && left && right:
		return d.Chars.Cross()
	case up && down && left:
		return d.Chars.TLeft()
	case up && down && right:
		return d.Chars.TRight()
	case left && right && down:
		return d.Chars.TDown()
	case left && right && up:
		return d.Chars.TUp()
	case down && right:
		return d.Chars.TopLeftCorner()
	case down && left:
		return d.Chars.TopRightCorner()
	case up && right:
		return d.Chars.BottomLeftCorner()
	case up && left:
		return d.Chars.BottomRightCorner()
	case left || right:
		return d.line(k, true)
	default:
		return d.line(k, false)
	}
}
