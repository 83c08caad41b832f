package charset

// UnicodeSet implements the Set interface using Unicode box-drawing characters
type UnicodeSet struct{}

// NewUnicode creates a new Unicode character set
func NewUnicode() Set {
	return &UnicodeSet{}
}

// Corners
func (u *UnicodeSet) TopLeftArc() string        { return "╭" }
func (u *UnicodeSet) TopRightArc() string       { return "╮" }
func (u *UnicodeSet) BottomLeftArc() string     { return "╰" }
func (u *UnicodeSet) BottomRightArc() string    { return "╯" }
func (u *UnicodeSet) TopLeftCorner() string     { return "┌" }
func (u *UnicodeSet) TopRightCorner() string    { return "┐" }
func (u *UnicodeSet) BottomLeftCorner() string  { return "└" }
func (u *UnicodeSet) BottomRightCorner() string { return "┘" }

// Lines
func (u *UnicodeSet) Horizontal() string       { return "─" }
func (u *UnicodeSet) Vertical() string         { return "│" }
func (u *UnicodeSet) DottedHorizontal() string { return "┄" }
func (u *UnicodeSet) DottedVertical() string   { return "┆" }
func (u *UnicodeSet) ThickHorizontal() string  { return "═" }
func (u *UnicodeSet) ThickVertical() string    { return "║" }
func (u *UnicodeSet) Cross() string            { return "┼" }

// Junctions
func (u *UnicodeSet) TDown() string  { return "┬" }
func (u *UnicodeSet) TLeft() string  { return "┤" }
func (u *UnicodeSet) TRight() string { return "├" }
func (u *UnicodeSet) TUp() string    { return "┴" }

// Containers
func (u *UnicodeSet) DoubleTopLeft() string     { return "╔" }
func (u *UnicodeSet) DoubleTopRight() string    { return "╗" }
func (u *UnicodeSet) DoubleBottomLeft() string  { return "╚" }
func (u *UnicodeSet) DoubleBottomRight() string { return "╝" }
func (u *UnicodeSet) DoubleHorizontal() string  { return "═" }
func (u *UnicodeSet) DoubleVertical() string    { return "║" }

// Diagonals
func (u *UnicodeSet) ForwardSlash() string { return "╱" }
func (u *UnicodeSet) Backslash() string    { return "╲" }

// Symbols
func (u *UnicodeSet) DiamondCorner() string { return "◆" }
func (u *UnicodeSet) TerminalStart() string { return "●" }
func (u *UnicodeSet) TerminalEnd() string   { return "◉" }

// Arrows
func (u *UnicodeSet) ArrowUp() string    { return "▲" }
func (u *UnicodeSet) ArrowRight() string { return "▶" }
func (u *UnicodeSet) ArrowDown() string  { return "▼" }
func (u *UnicodeSet) ArrowLeft() string  { return "◀" }
func (u *UnicodeSet) OpenArrow() string  { return "○" }
func (u *UnicodeSet) CrossArrow() string { return "×" }
