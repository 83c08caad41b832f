package charset

// ASCIISet implements the Set interface using 7-bit ASCII only
type ASCIISet struct{}

// NewASCII creates a new ASCII character set
func NewASCII() Set {
	return &ASCIISet{}
}

// Corners
func (a *ASCIISet) TopLeftArc() string        { return "." }
func (a *ASCIISet) TopRightArc() string       { return "." }
func (a *ASCIISet) BottomLeftArc() string     { return "'" }
func (a *ASCIISet) BottomRightArc() string    { return "'" }
func (a *ASCIISet) TopLeftCorner() string     { return "+" }
func (a *ASCIISet) TopRightCorner() string    { return "+" }
func (a *ASCIISet) BottomLeftCorner() string  { return "+" }
func (a *ASCIISet) BottomRightCorner() string { return "+" }

// Lines
func (a *ASCIISet) Horizontal() string       { return "-" }
func (a *ASCIISet) Vertical() string         { return "|" }
func (a *ASCIISet) DottedHorizontal() string { return "." }
func (a *ASCIISet) DottedVertical() string   { return ":" }
func (a *ASCIISet) ThickHorizontal() string  { return "=" }
func (a *ASCIISet) ThickVertical() string    { return "#" }
func (a *ASCIISet) Cross() string            { return "+" }

// Junctions
func (a *ASCIISet) TDown() string  { return "+" }
func (a *ASCIISet) TLeft() string  { return "+" }
func (a *ASCIISet) TRight() string { return "+" }
func (a *ASCIISet) TUp() string    { return "+" }

// Containers
func (a *ASCIISet) DoubleTopLeft() string     { return "#" }
func (a *ASCIISet) DoubleTopRight() string    { return "#" }
func (a *ASCIISet) DoubleBottomLeft() string  { return "#" }
func (a *ASCIISet) DoubleBottomRight() string { return "#" }
func (a *ASCIISet) DoubleHorizontal() string  { return "=" }
func (a *ASCIISet) DoubleVertical() string    { return "#" }

// Diagonals
func (a *ASCIISet) ForwardSlash() string { return "/" }
func (a *ASCIISet) Backslash() string    { return "\\" }

// Symbols
func (a *ASCIISet) DiamondCorner() string { return "*" }
func (a *ASCIISet) TerminalStart() string { return "*" }
func (a *ASCIISet) TerminalEnd() string   { return "o" }

// Arrows
func (a *ASCIISet) ArrowUp() string    { return "^" }
func (a *ASCIISet) ArrowRight() string { return ">" }
func (a *ASCIISet) ArrowDown() string  { return "v" }
func (a *ASCIISet) ArrowLeft() string  { return "<" }
func (a *ASCIISet) OpenArrow() string  { return "o" }
func (a *ASCIISet) CrossArrow() string { return "x" }
