package pipeline

import "regexp"

// Protected-span patterns. A delimiter found inside one of these regions is
// left alone by every stage that consults the default predicates.
var (
	// RedNotebook link: [text ""url""]. Group 2 is the URL.
	rnLinkPattern = regexp.MustCompile(`\[([^\]]*?) ""(.*?)""\]`)

	// Markdown link or image produced by the link stages: [text](url), ![](url).
	// Group 2 is the URL.
	mdLinkPattern = regexp.MustCompile(`!?\[([^\]]*)\]\(([^)]*)\)`)

	// Code span, shortest match between two backticks.
	codeSpanPattern = regexp.MustCompile("`.*?`")
)

// Span is a half-open byte interval [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// intersects reports whether two spans share a boundary-inclusive position.
// Touching spans intersect: [0,6) and [6,8) do.
func (s Span) intersects(o Span) bool {
	return s.End >= o.Start && o.End >= s.Start
}

// Predicate decides whether a candidate match at span may be rewritten.
// It returns false when the span lies in a protected region of line.
type Predicate func(span Span, line string) bool

// defaultPredicates is the exclusion set used by general delimiter scans.
var defaultPredicates = []Predicate{NotInLink, NotInCodeSpan}

// NotInLink reports whether span stays clear of every link URL in line.
func NotInLink(span Span, line string) bool {
	for _, p := range []*regexp.Regexp{rnLinkPattern, mdLinkPattern} {
		for _, url := range groupSpans(p, line, 2) {
			if span.intersects(url) {
				return false
			}
		}
	}
	return true
}

// NotInCodeSpan reports whether span stays clear of every code span in line.
func NotInCodeSpan(span Span, line string) bool {
	for _, code := range groupSpans(codeSpanPattern, line, 0) {
		if span.intersects(code) {
			return false
		}
	}
	return true
}

// groupSpans returns the spans of capture group g for every match of p.
// Matches where the group did not participate are skipped.
func groupSpans(p *regexp.Regexp, line string, g int) []Span {
	all := p.FindAllStringSubmatchIndex(line, -1)
	spans := make([]Span, 0, len(all))
	for _, loc := range all {
		if loc[2*g] < 0 {
			continue
		}
		spans = append(spans, Span{Start: loc[2*g], End: loc[2*g+1]})
	}
	return spans
}

// filteredMatches returns the spans of every match of p in line that passes
// all predicates, in ascending order.
func filteredMatches(p *regexp.Regexp, line string, preds []Predicate) []Span {
	var spans []Span
	for _, s := range groupSpans(p, line, 0) {
		if allow(s, line, preds) {
			spans = append(spans, s)
		}
	}
	return spans
}

func allow(span Span, line string, preds []Predicate) bool {
	for _, pred := range preds {
		if !pred(span, line) {
			return false
		}
	}
	return true
}
