package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// InnerUnderscoreStage escapes underscores sitting between two word
// characters, so snake_case text is not read as emphasis.
type InnerUnderscoreStage struct{}

// Next implements Stage.
func (InnerUnderscoreStage) Next(line string) string {
	spans := innerUnderscores(line)
	if len(spans) == 0 {
		return line
	}
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		line = line[:s.Start] + `\_` + line[s.End:]
	}
	return line
}

// innerUnderscores returns the unprotected underscores that have a word
// character on both sides.
func innerUnderscores(line string) []Span {
	var spans []Span
	for i := strings.IndexByte(line, '_'); i >= 0; {
		before, _ := utf8.DecodeLastRuneInString(line[:i])
		after, _ := utf8.DecodeRuneInString(line[i+1:])
		span := Span{Start: i, End: i + 1}
		if isWordRune(before) && isWordRune(after) && allow(span, line, defaultPredicates) {
			spans = append(spans, span)
		}

		next := strings.IndexByte(line[i+1:], '_')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return spans
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
