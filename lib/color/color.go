// Package color turns CSS colors into 24-bit ANSI escapes for terminals.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const Reset = "\x1b[0m"

// Palette assigns a CSS color to each glyph class. An empty color leaves the
// class unpainted.
type Palette struct {
	Border   string `json:"border"`
	Edge     string `json:"edge"`
	Arrow    string `json:"arrow"`
	Junction string `json:"junction"`
}

var DefaultPalette = Palette{
	Border:   "#8c9bb5",
	Edge:     "#5f87af",
	Arrow:    "#d7875f",
	Junction: "#87afd7",
}

func parse(css string) (colorful.Color, error) {
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped(), nil
}

func escape(layer int, css string) (string, error) {
	c, err := parse(css)
	if err != nil {
		return "", err
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", layer, r, g, b), nil
}

// Foreground returns the escape that sets the text color.
func Foreground(css string) (string, error) {
	return escape(38, css)
}

// Background returns the escape that sets the cell color.
func Background(css string) (string, error) {
	return escape(48, css)
}

// Escapes returns the escapes that set fg and bg. Empty colors are skipped.
func Escapes(fg, bg string) (string, error) {
	var prefix string
	if fg != "" {
		e, err := Foreground(fg)
		if err != nil {
			return "", err
		}
		prefix += e
	}
	if bg != "" {
		e, err := Background(bg)
		if err != nil {
			return "", err
		}
		prefix += e
	}
	return prefix, nil
}

// Paint wraps s in the escapes for fg and bg.
func Paint(s, fg, bg string) (string, error) {
	prefix, err := Escapes(fg, bg)
	if err != nil || prefix == "" {
		return s, err
	}
	return prefix + s + Reset, nil
}

// Luminance is the perceived lightness of a color from 0 to 1.
func Luminance(css string) (float64, error) {
	c, err := parse(css)
	if err != nil {
		return 0, err
	}
	l, _, _ := c.Lab()
	return l, nil
}

// Readable returns black or white, whichever reads better on bg.
func Readable(bg string) (string, error) {
	l, err := Luminance(bg)
	if err != nil {
		return "", err
	}
	if l >= .6 {
		return "#000000", nil
	}
	return "#ffffff", nil
}

func Darken(css string) (string, error) {
	c, err := parse(css)
	if err != nil {
		return "", err
	}
	h, s, l := c.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}
