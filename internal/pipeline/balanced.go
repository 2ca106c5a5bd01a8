package pipeline

import (
	"regexp"
	"strings"
)

// Replacement holds the tokens written in place of a delimiter pair.
type Replacement struct {
	Open  string
	Close string
}

// symmetric returns a Replacement using tok for both ends.
func symmetric(tok string) Replacement {
	return Replacement{Open: tok, Close: tok}
}

// replaceBalanced pairs the matches of delim that pass preds (1st with 2nd,
// 3rd with 4th, ...) and swaps each pair for repl. An odd trailing match is
// left as is. Pairs are rewritten right to left so earlier offsets stay valid.
func replaceBalanced(delim *regexp.Regexp, repl Replacement, line string, preds []Predicate) string {
	matches := filteredMatches(delim, line, preds)
	pairs := len(matches) / 2
	if pairs == 0 {
		return line
	}

	for i := pairs - 1; i >= 0; i-- {
		open, closing := matches[2*i], matches[2*i+1]

		var b strings.Builder
		b.Grow(len(line) + len(repl.Open) + len(repl.Close))
		b.WriteString(line[:open.Start])
		b.WriteString(repl.Open)
		b.WriteString(line[open.End:closing.Start])
		b.WriteString(repl.Close)
		b.WriteString(line[closing.End:])
		line = b.String()
	}
	return line
}
