package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// listItemPattern matches a list marker after optional indentation.
// Group 1 is the marker: - for unordered, + for ordered.
var listItemPattern = regexp.MustCompile(`^\s*([-+])\s`)

// blankRunReset is the number of consecutive blank lines that ends every
// ordered list in progress.
const blankRunReset = 2

// columnCounter maps an indentation column to the next ordinal for ordered
// items at that column. Absent columns start at 1.
type columnCounter map[int]int

func (c columnCounter) get(col int) int {
	if n, ok := c[col]; ok {
		return n
	}
	return 1
}

// truncateAbove drops every column deeper than col.
func (c columnCounter) truncateAbove(col int) {
	for k := range c {
		if k > col {
			delete(c, k)
		}
	}
}

func (c columnCounter) reset() {
	clear(c)
}

// ListStage transforms "+ item" into "<n>. item", numbering ordered items per
// indentation column. Unordered "- item" lines pass through unchanged but
// still end deeper ordered sub-lists. Any prose line, or two blank lines in a
// row, restarts numbering.
type ListStage struct {
	counters columnCounter
	blankRun int
}

// NewListStage returns a ListStage with empty numbering state.
func NewListStage() *ListStage {
	return &ListStage{counters: make(columnCounter)}
}

// Next implements Stage.
func (s *ListStage) Next(line string) string {
	if s.counters == nil {
		s.counters = make(columnCounter)
	}

	if strings.TrimSpace(line) == "" {
		s.blankRun++
		if s.blankRun >= blankRunReset {
			s.counters.reset()
		}
		return line
	}
	s.blankRun = 0

	loc := listItemPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		s.counters.reset()
		return line
	}

	col := loc[2]
	s.counters.truncateAbove(col)
	if line[col] == '-' {
		return line
	}

	n := s.counters.get(col)
	s.counters[col] = n + 1
	return line[:col] + strconv.Itoa(n) + "." + line[col+1:]
}
