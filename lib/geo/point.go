package geo

// Point is a cell on the character grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the unit travel direction from pFrom to pTo on an orthogonal segment.
func (pFrom Point) Step(pTo Point) Dirs {
	switch {
	case pTo.Y > pFrom.Y:
		return DirDown
	case pTo.Y < pFrom.Y:
		return DirUp
	case pTo.X > pFrom.X:
		return DirRight
	case pTo.X < pFrom.X:
		return DirLeft
	}
	return 0
}
