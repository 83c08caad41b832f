package charset

import (
	"fmt"
	"strings"
)

// Set defines the glyphs one character-set dialect draws with.
type Set interface {
	// Corners
	TopLeftArc() string
	TopRightArc() string
	BottomLeftArc() string
	BottomRightArc() string
	TopLeftCorner() string
	TopRightCorner() string
	BottomLeftCorner() string
	BottomRightCorner() string

	// Lines
	Horizontal() string
	Vertical() string
	DottedHorizontal() string
	DottedVertical() string
	ThickHorizontal() string
	ThickVertical() string
	Cross() string

	// Junctions
	TDown() string
	TLeft() string
	TRight() string
	TUp() string

	// Containers
	DoubleTopLeft() string
	DoubleTopRight() string
	DoubleBottomLeft() string
	DoubleBottomRight() string
	DoubleHorizontal() string
	DoubleVertical() string

	// Diagonals used by tall diamonds
	ForwardSlash() string
	Backslash() string

	// Symbols
	DiamondCorner() string
	TerminalStart() string
	TerminalEnd() string

	// Arrows
	ArrowUp() string
	ArrowRight() string
	ArrowDown() string
	ArrowLeft() string
	OpenArrow() string
	CrossArrow() string
}

// NodeGlyphs is implemented by sets that draw every node as a single glyph
// followed by its label.
type NodeGlyphs interface {
	RectangleGlyph() string
	RoundedGlyph() string
	DiamondGlyph() string
	CircleGlyph() string
}

// Type represents the type of character set
type Type int

const (
	Unicode Type = iota
	ASCII
	UnicodeMath
	Compact
)

// New creates a new character set based on the specified type
func New(t Type) Set {
	switch t {
	case ASCII:
		return NewASCII()
	case UnicodeMath:
		return NewUnicodeMath()
	case Compact:
		return NewCompact()
	default:
		return NewUnicode()
	}
}

func (t Type) String() string {
	switch t {
	case ASCII:
		return "ascii"
	case UnicodeMath:
		return "unicode-math"
	case Compact:
		return "compact"
	default:
		return "unicode"
	}
}

func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unicode":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	case "unicode-math", "unicodemath", "math":
		return UnicodeMath, nil
	case "compact":
		return Compact, nil
	}
	return Unicode, fmt.Errorf("unknown character set %q", s)
}

// IsCompact reports whether nodes collapse to a single row.
func (t Type) IsCompact() bool {
	return t == Compact
}
