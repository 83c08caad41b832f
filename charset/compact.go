package charset

// CompactSet draws edges like the Unicode set but collapses every node to a
// single glyph followed by its label.
type CompactSet struct {
	UnicodeSet
}

func NewCompact() Set {
	return &CompactSet{}
}

// Shapes that fall back to full drawings keep plain slashes.
func (c *CompactSet) ForwardSlash() string { return "/" }
func (c *CompactSet) Backslash() string    { return "\\" }

func (c *CompactSet) RectangleGlyph() string { return "□" }
func (c *CompactSet) RoundedGlyph() string   { return "▢" }
func (c *CompactSet) DiamondGlyph() string   { return "◇" }
func (c *CompactSet) CircleGlyph() string    { return "○" }
