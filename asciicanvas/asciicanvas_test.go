package asciicanvas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/diff"

	"oss.terrastruct.com/textgraph/asciicanvas"
)

func TestSetGrows(t *testing.T) {
	t.Parallel()

	c := asciicanvas.New(2, 2)
	c.Set(5, 3, "x")
	assert.Equal(t, 6, c.Width())
	assert.Equal(t, 4, c.Height())
	assert.Equal(t, "x", c.Get(5, 3))
	assert.True(t, c.IsBlank(0, 0))

	c.Set(-1, 0, "y")
	c.Set(0, -4, "y")
	assert.Equal(t, 6, c.Width())
	assert.Equal(t, " ", c.Get(-1, 0))
	assert.Equal(t, " ", c.Get(100, 100))
}

func TestString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		draw func(c *asciicanvas.Canvas)
		exp  string
	}{
		{
			name: "empty",
			draw: func(c *asciicanvas.Canvas) {},
			exp:  "",
		},
		{
			name: "trim",
			draw: func(c *asciicanvas.Canvas) {
				c.DrawText(3, 2, "ab")
				c.DrawText(4, 4, "c")
			},
			exp: "ab\n\n c",
		},
		{
			name: "trailing_spaces",
			draw: func(c *asciicanvas.Canvas) {
				c.DrawText(0, 0, "a   ")
				c.Set(8, 1, " ")
			},
			exp: "a",
		},
		{
			name: "centered",
			draw: func(c *asciicanvas.Canvas) {
				c.Set(0, 0, "|")
				c.DrawTextCentered(4, 1, "abc")
			},
			exp: "|\n   abc",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := asciicanvas.New(10, 6)
			tc.draw(c)
			diff.AssertStringEq(t, tc.exp, c.String())
		})
	}
}

func TestWideRunes(t *testing.T) {
	t.Parallel()

	c := asciicanvas.New(0, 0)
	n := c.DrawText(0, 0, "日本x")
	assert.Equal(t, 5, n)
	assert.Equal(t, "日", c.Get(0, 0))
	assert.True(t, c.IsContinuation(1, 0))
	assert.Equal(t, "x", c.Get(4, 0))
	c.Set(0, 1, "|")
	c.Set(4, 1, "|")
	diff.AssertStringEq(t, "日本x\n|   |", c.String())

	// Overwriting half of a wide rune blanks the other half.
	c.Set(3, 0, "-")
	diff.AssertStringEq(t, "日 -x\n|   |", c.String())
}

func TestClearRect(t *testing.T) {
	t.Parallel()

	c := asciicanvas.New(0, 0)
	c.DrawText(0, 0, "xxxx")
	c.DrawText(0, 1, "xxxx")
	c.ClearRect(1, 0, 2, 2)
	diff.AssertStringEq(t, "x  x\nx  x", c.String())
	assert.Equal(t, []string{"x  x", "x  x"}, c.Lines())
	assert.Equal(t, "x  x\nx  x", string(c.Bytes()))
}
