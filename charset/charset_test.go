package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/textgraph/charset"
)

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		typ      charset.Type
		name     string
		fwd, bwd string
		arrow    string
		corner   string
	}{
		{charset.ASCII, "ascii", "/", "\\", "v", "+"},
		{charset.Unicode, "unicode", "╱", "╲", "▼", "┌"},
		{charset.UnicodeMath, "unicode-math", "⟋", "⟍", "▼", "┌"},
		{charset.Compact, "compact", "/", "\\", "▼", "┌"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.name, tc.typ.String())
			parsed, err := charset.ParseType(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.typ, parsed)

			set := charset.New(tc.typ)
			assert.Equal(t, tc.fwd, set.ForwardSlash())
			assert.Equal(t, tc.bwd, set.Backslash())
			assert.Equal(t, tc.arrow, set.ArrowDown())
			assert.Equal(t, tc.corner, set.TopLeftCorner())
		})
	}
}

func TestGlyphsAreSingleCell(t *testing.T) {
	t.Parallel()

	for _, typ := range []charset.Type{charset.ASCII, charset.Unicode, charset.UnicodeMath, charset.Compact} {
		set := charset.New(typ)
		glyphs := []string{
			set.TopLeftArc(), set.TopRightArc(), set.BottomLeftArc(), set.BottomRightArc(),
			set.TopLeftCorner(), set.TopRightCorner(), set.BottomLeftCorner(), set.BottomRightCorner(),
			set.Horizontal(), set.Vertical(), set.DottedHorizontal(), set.DottedVertical(),
			set.ThickHorizontal(), set.ThickVertical(), set.Cross(),
			set.TDown(), set.TLeft(), set.TRight(), set.TUp(),
			set.DoubleTopLeft(), set.DoubleTopRight(), set.DoubleBottomLeft(), set.DoubleBottomRight(),
			set.DoubleHorizontal(), set.DoubleVertical(),
			set.ForwardSlash(), set.Backslash(),
			set.DiamondCorner(), set.TerminalStart(), set.TerminalEnd(),
			set.ArrowUp(), set.ArrowRight(), set.ArrowDown(), set.ArrowLeft(), set.OpenArrow(), set.CrossArrow(),
		}
		for _, g := range glyphs {
			assert.Len(t, []rune(g), 1, "%s: %q", typ, g)
		}
	}
}

func TestParseTypeUnknown(t *testing.T) {
	t.Parallel()

	typ, err := charset.ParseType("")
	require.NoError(t, err)
	assert.Equal(t, charset.Unicode, typ)

	_, err = charset.ParseType("braille")
	assert.Error(t, err)
	assert.True(t, charset.Compact.IsCompact())
}

func TestNodeGlyphs(t *testing.T) {
	t.Parallel()

	ng, ok := charset.New(charset.Compact).(charset.NodeGlyphs)
	require.True(t, ok)
	assert.Equal(t, "□", ng.RectangleGlyph())
	assert.Equal(t, "▢", ng.RoundedGlyph())
	assert.Equal(t, "◇", ng.DiamondGlyph())
	assert.Equal(t, "○", ng.CircleGlyph())

	_, ok = charset.New(charset.Unicode).(charset.NodeGlyphs)
	assert.False(t, ok)
}
