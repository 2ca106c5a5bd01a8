package pipeline

import (
	"strings"
	"unicode"
)

// HeaderStage transforms =Text= into # Text.
//
// The number of = on each side gives the level; both runs must have the same
// length and must not cover the whole line. Padding shifts every level, so a
// document that already starts with its own top heading can nest entries
// below it. Whenever a line is rewritten:
//
//	strings.Count(in, "=") == (strings.Count(out, "#") - Padding) * 2
type HeaderStage struct {
	Padding int
}

// Next implements Stage.
func (h HeaderStage) Next(line string) string {
	start := len(line) - len(strings.TrimLeft(line, "="))
	if start == 0 || start == len(line) {
		return line
	}
	end := len(line) - len(strings.TrimRight(line, "="))
	if end != start {
		return line
	}

	hashes := start + h.Padding
	if hashes <= 0 {
		return line
	}
	inner := strings.TrimLeftFunc(line[start:len(line)-end], unicode.IsSpace)
	return strings.Repeat("#", hashes) + " " + inner
}
