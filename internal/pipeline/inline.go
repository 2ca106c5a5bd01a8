package pipeline

import (
	"regexp"
	"strings"
)

var (
	italicDelim        = regexp.MustCompile(`//`)
	strikethroughDelim = regexp.MustCompile(`--`)
	codeSpanDelim      = regexp.MustCompile("``")
)

// ItalicStage transforms //text// into _text_.
type ItalicStage struct{}

// Next implements Stage.
func (ItalicStage) Next(line string) string {
	return replaceBalanced(italicDelim, symmetric("_"), line, defaultPredicates)
}

// StrikethroughStage transforms --text-- into ~text~.
// Lines made only of dashes are rules, not strikethrough, and pass through.
type StrikethroughStage struct{}

// Next implements Stage.
func (StrikethroughStage) Next(line string) string {
	if isDashRule(line) {
		return line
	}
	return replaceBalanced(strikethroughDelim, symmetric("~"), line, defaultPredicates)
}

func isDashRule(line string) bool {
	return line != "" && strings.Trim(line, "-") == ""
}

// CodeSpanStage turns double-backtick code spans into single-backtick ones.
// Only link URLs are excluded: the stage would otherwise protect itself.
type CodeSpanStage struct{}

// Next implements Stage.
func (CodeSpanStage) Next(line string) string {
	return replaceBalanced(codeSpanDelim, symmetric("`"), line, []Predicate{NotInLink})
}
