package geo

// Box is an axis aligned rectangle of cells. Width and Height count cells, so the
// bottom-right cell is (X+Width-1, Y+Height-1).
type Box struct {
	TopLeft Point `json:"topLeft"`
	Width   int   `json:"width"`
	Height  int   `json:"height"`
}

func (b Box) Left() int   { return b.TopLeft.X }
func (b Box) Top() int    { return b.TopLeft.Y }
func (b Box) Right() int  { return b.TopLeft.X + b.Width - 1 }
func (b Box) Bottom() int { return b.TopLeft.Y + b.Height - 1 }

func (b Box) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	l := Min(b.Left(), o.Left())
	t := Min(b.Top(), o.Top())
	r := Max(b.Right(), o.Right())
	bt := Max(b.Bottom(), o.Bottom())
	return Box{TopLeft: Point{X: l, Y: t}, Width: r - l + 1, Height: bt - t + 1}
}

// Translate moves the box by dx, dy.
func (b Box) Translate(dx, dy int) Box {
	b.TopLeft = b.TopLeft.Add(dx, dy)
	return b
}
