package graph

import (
	"fmt"
	"strings"
)

type Direction int

const (
	TopDown Direction = iota
	BottomUp
	LeftRight
	RightLeft
)

func (d Direction) String() string {
	switch d {
	case BottomUp:
		return "BT"
	case LeftRight:
		return "LR"
	case RightLeft:
		return "RL"
	default:
		return "TD"
	}
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "TD", "TB":
		return TopDown, nil
	case "BT":
		return BottomUp, nil
	case "LR":
		return LeftRight, nil
	case "RL":
		return RightLeft, nil
	}
	return TopDown, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) IsVertical() bool {
	return d == TopDown || d == BottomUp
}

func (d Direction) IsHorizontal() bool {
	return d == LeftRight || d == RightLeft
}

// IsReversed reports whether rank 0 sits at the bottom or right.
func (d Direction) IsReversed() bool {
	return d == BottomUp || d == RightLeft
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) (err error) {
	*d, err = ParseDirection(string(b))
	return err
}

type Shape int

const (
	Rectangle Shape = iota
	RoundedRect
	Diamond
	Circle
	Hexagon
	Subroutine
	Cylinder
	Asymmetric
	Parallelogram
	Trapezoid
)

var shapeNames = [...]string{
	Rectangle:     "rectangle",
	RoundedRect:   "rounded",
	Diamond:       "diamond",
	Circle:        "circle",
	Hexagon:       "hexagon",
	Subroutine:    "subroutine",
	Cylinder:      "cylinder",
	Asymmetric:    "asymmetric",
	Parallelogram: "parallelogram",
	Trapezoid:     "trapezoid",
}

var shapeAliases = map[string]Shape{
	"rect":         Rectangle,
	"square":       Rectangle,
	"roundedrect":  RoundedRect,
	"rounded-rect": RoundedRect,
	"rhombus":      Diamond,
	"oval":         Circle,
	"terminal":     Circle,
	"hex":          Hexagon,
	"database":     Cylinder,
	"db":           Cylinder,
	"flag":         Asymmetric,
	"lean-right":   Parallelogram,
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

func ParseShape(s string) (Shape, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Rectangle, nil
	}
	for i, n := range shapeNames {
		if n == s {
			return Shape(i), nil
		}
	}
	if sh, ok := shapeAliases[s]; ok {
		return sh, nil
	}
	return Rectangle, fmt.Errorf("unknown shape %q", s)
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) (err error) {
	*s, err = ParseShape(string(b))
	return err
}

// Terminal marks the start and end pseudo states of state diagrams.
type Terminal int

const (
	NotTerminal Terminal = iota
	Start
	End
)

func (t Terminal) String() string {
	switch t {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return ""
	}
}

func ParseTerminal(s string) (Terminal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NotTerminal, nil
	case "start":
		return Start, nil
	case "end":
		return End, nil
	}
	return NotTerminal, fmt.Errorf("unknown terminal %q", s)
}

func (t Terminal) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Terminal) UnmarshalText(b []byte) (err error) {
	*t, err = ParseTerminal(string(b))
	return err
}

type EdgeKind int

const (
	Arrow EdgeKind = iota
	Line
	DottedArrow
	DottedLine
	ThickArrow
	ThickLine
	Invisible
	OpenArrow
	CrossArrow
)

var edgeKinds = [...]struct {
	name  string
	token string
}{
	Arrow:       {"arrow", "-->"},
	Line:        {"line", "---"},
	DottedArrow: {"dotted-arrow", "-.->"},
	DottedLine:  {"dotted-line", "-.-"},
	ThickArrow:  {"thick-arrow", "==>"},
	ThickLine:   {"thick-line", "==="},
	Invisible:   {"invisible", "~~~"},
	OpenArrow:   {"open-arrow", "--o"},
	CrossArrow:  {"cross-arrow", "--x"},
}

// String returns the mermaid token of the edge kind.
func (k EdgeKind) String() string {
	if k < 0 || int(k) >= len(edgeKinds) {
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
	return edgeKinds[k].token
}

func (k EdgeKind) Name() string {
	if k < 0 || int(k) >= len(edgeKinds) {
		return k.String()
	}
	return edgeKinds[k].name
}

// ParseEdgeKind accepts either the mermaid token or the name.
func ParseEdgeKind(s string) (EdgeKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Arrow, nil
	}
	for i, ek := range edgeKinds {
		if ek.name == s || ek.token == s {
			return EdgeKind(i), nil
		}
	}
	return Arrow, fmt.Errorf("unknown edge kind %q", s)
}

func (k EdgeKind) HasArrow() bool {
	switch k {
	case Arrow, DottedArrow, ThickArrow, OpenArrow, CrossArrow:
		return true
	}
	return false
}

func (k EdgeKind) IsDotted() bool {
	return k == DottedArrow || k == DottedLine
}

func (k EdgeKind) IsThick() bool {
	return k == ThickArrow || k == ThickLine
}

func (k EdgeKind) IsVisible() bool {
	return k != Invisible
}

func (k EdgeKind) MarshalText() ([]byte, error) {
	return []byte(k.Name()), nil
}

func (k *EdgeKind) UnmarshalText(b []byte) (err error) {
	*k, err = ParseEdgeKind(string(b))
	return err
}
