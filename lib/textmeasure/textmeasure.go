// Package textmeasure measures labels in monospace cells.
//
// East Asian wide runes take two cells and combining marks take none, so every
// width here is a count of terminal columns rather than runes or bytes.
package textmeasure

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Width returns the display width of s in cells.
func Width(s string) int {
	return runewidth.StringWidth(norm.NFC.String(s))
}

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// MaxWidth returns the width of the widest line.
func MaxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if lw := Width(l); lw > w {
			w = lw
		}
	}
	return w
}

// Wrap breaks label on whitespace so that no line is wider than max cells.
// Words are never split: a word wider than max gets a line of its own.
// A max of 0 or a label that already fits returns the label unchanged.
func Wrap(label string, max int) []string {
	if max <= 0 || Width(label) <= max {
		return []string{label}
	}
	words := strings.Fields(label)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	lineWidth := Width(line)
	for _, w := range words[1:] {
		ww := Width(w)
		if lineWidth+1+ww > max {
			lines = append(lines, line)
			line = w
			lineWidth = ww
			continue
		}
		line += " " + w
		lineWidth += 1 + ww
	}
	return append(lines, line)
}

// Lines splits label on explicit newlines and wraps each piece to max.
func Lines(label string, max int) []string {
	if label == "" {
		return []string{""}
	}
	var lines []string
	for _, l := range strings.Split(label, "\n") {
		lines = append(lines, Wrap(strings.TrimSpace(l), max)...)
	}
	return lines
}
