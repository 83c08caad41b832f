package geo

import "strings"

// Dirs is a set of the four grid directions a glyph connects to.
// A corner connecting up and right is DirUp|DirRight, a cross is all four.
type Dirs uint8

const (
	DirUp Dirs = 1 << iota
	DirDown
	DirLeft
	DirRight

	AllDirs = DirUp | DirDown | DirLeft | DirRight
)

func (d Dirs) Has(o Dirs) bool {
	return d&o == o
}

func (d Dirs) Vertical() bool {
	return d&(DirUp|DirDown) != 0
}

func (d Dirs) Horizontal() bool {
	return d&(DirLeft|DirRight) != 0
}

// Opposite mirrors every direction in the set.
func (d Dirs) Opposite() Dirs {
	var o Dirs
	if d.Has(DirUp) {
		o |= DirDown
	}
	if d.Has(DirDown) {
		o |= DirUp
	}
	if d.Has(DirLeft) {
		o |= DirRight
	}
	if d.Has(DirRight) {
		o |= DirLeft
	}
	return o
}

func (d Dirs) ToString() string {
	var parts []string
	if d.Has(DirUp) {
		parts = append(parts, "up")
	}
	if d.Has(DirDown) {
		parts = append(parts, "down")
	}
	if d.Has(DirLeft) {
		parts = append(parts, "left")
	}
	if d.Has(DirRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "|")
}

func (d Dirs) MarshalText() ([]byte, error) {
	return []byte(d.ToString()), nil
}
