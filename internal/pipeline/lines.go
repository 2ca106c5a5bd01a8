package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines breaks an entry into lines for the pipeline. Line endings are
// normalized and trailing whitespace is dropped from every line.
func SplitLines(content string) []string {
	lines := strings.Split(NormalizeLineEndings(content), "\n")
	for i, line := range lines {
		lines[i] = TrimLine(line)
	}
	return lines
}

// TrimLine drops trailing whitespace, including a stray carriage return.
func TrimLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
