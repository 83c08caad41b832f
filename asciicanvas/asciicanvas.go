// Package asciicanvas is a growable grid of monospace cells.
//
// Every cell holds one glyph. A wide rune occupies its cell and the cell to its
// right, which holds the continuation marker so rows still join to the right
// display width.
package asciicanvas

import (
	"strings"

	"oss.terrastruct.com/textgraph/lib/textmeasure"
)

const (
	blank        = " "
	continuation = ""
)

type Canvas struct {
	grid  [][]string
	width int
}

func New(width, height int) *Canvas {
	c := &Canvas{}
	c.grow(width, height)
	return c
}

func (c *Canvas) grow(width, height int) {
	if width > c.width {
		for y := range c.grid {
			c.grid[y] = append(c.grid[y], blankRow(width-c.width)...)
		}
		c.width = width
	}
	for len(c.grid) < height {
		c.grid = append(c.grid, blankRow(c.width))
	}
}

func blankRow(n int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = blank
	}
	return row
}

// Set writes a single-cell glyph. Writes past the right or bottom edge grow the
// canvas; negative coordinates are ignored.
func (c *Canvas) Set(x, y int, glyph string) {
	if x < 0 || y < 0 {
		return
	}
	c.grow(x+1, y+1)
	c.clearWide(x, y)
	c.grid[y][x] = glyph
}

// clearWide blanks the other half of a wide rune about to be split.
func (c *Canvas) clearWide(x, y int) {
	row := c.grid[y]
	if row[x] == continuation && x > 0 {
		row[x-1] = blank
	}
	if x+1 < len(row) && row[x+1] == continuation {
		row[x+1] = blank
	}
}

// Decorate wraps the glyph at x, y in before and after, such as terminal
// escapes. Cells outside the grid and continuation cells are left alone so
// wide runes keep their two cells.
func (c *Canvas) Decorate(x, y int, before, after string) {
	if !c.IsInBounds(x, y) || c.grid[y][x] == continuation {
		return
	}
	c.grid[y][x] = before + c.grid[y][x] + after
}

// Get returns the glyph at x, y or a blank outside the grid.
func (c *Canvas) Get(x, y int) string {
	if !c.IsInBounds(x, y) {
		return blank
	}
	return c.grid[y][x]
}

func (c *Canvas) IsInBounds(x, y int) bool {
	return y >= 0 && y < len(c.grid) && x >= 0 && x < c.width
}

func (c *Canvas) IsBlank(x, y int) bool {
	return c.Get(x, y) == blank
}

// IsContinuation reports whether the cell is the right half of a wide rune.
func (c *Canvas) IsContinuation(x, y int) bool {
	return c.IsInBounds(x, y) && c.grid[y][x] == continuation
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return len(c.grid)
}

// DrawText writes text starting at x and returns the number of cells used.
func (c *Canvas) DrawText(x, y int, text string) int {
	col := x
	for _, r := range text {
		w := textmeasure.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.Set(col, y, string(r))
		if w == 2 {
			c.Set(col+1, y, blank)
			if col >= 0 && y >= 0 {
				c.grid[y][col+1] = continuation
			}
		}
		col += w
	}
	return col - x
}

// DrawTextCentered centers text on column cx.
func (c *Canvas) DrawTextCentered(cx, y int, text string) int {
	return c.DrawText(cx-textmeasure.Width(text)/2, y, text)
}

// ClearRect blanks a rectangle of cells.
func (c *Canvas) ClearRect(x, y, width, height int) {
	for yi := y; yi < y+height; yi++ {
		for xi := x; xi < x+width; xi++ {
			c.Set(xi, yi, blank)
		}
	}
}

// Lines returns every row joined, without any trimming.
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.grid))
	for i, row := range c.grid {
		lines[i] = strings.Join(row, "")
	}
	return lines
}

// String right-trims rows, drops blank rows at the top and bottom, removes the
// leading blank columns shared by every remaining row and joins with newlines.
func (c *Canvas) String() string {
	start, end := -1, -1
	for y, row := range c.grid {
		if !isBlankRow(row) {
			if start == -1 {
				start = y
			}
			end = y
		}
	}
	if start == -1 {
		return ""
	}

	indent := -1
	for y := start; y <= end; y++ {
		row := c.grid[y]
		if isBlankRow(row) {
			continue
		}
		lead := 0
		for lead < len(row) && row[lead] == blank {
			lead++
		}
		if indent == -1 || lead < indent {
			indent = lead
		}
	}

	lines := make([]string, 0, end-start+1)
	for y := start; y <= end; y++ {
		row := c.grid[y]
		if len(row) > indent {
			row = row[indent:]
		} else {
			row = nil
		}
		lines = append(lines, strings.TrimRight(strings.Join(row, ""), blank))
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) Bytes() []byte {
	return []byte(c.String())
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != blank && cell != continuation {
			return false
		}
	}
	return true
}
