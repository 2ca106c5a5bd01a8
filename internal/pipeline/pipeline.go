package pipeline

// Stage rewrites one line at a time. Implementations may carry state from one
// line to the next, so a Stage must only ever see the lines of one document,
// in order.
type Stage interface {
	Next(line string) string
}

// Compile-time interface implementation checks.
var (
	_ Stage = LinkStage{}
	_ Stage = ImageStage{}
	_ Stage = HeaderStage{}
	_ Stage = CodeSpanStage{}
	_ Stage = ItalicStage{}
	_ Stage = StrikethroughStage{}
	_ Stage = (*ListStage)(nil)
	_ Stage = InnerUnderscoreStage{}
)

// Pipeline feeds each line through an ordered list of stages. It keeps no
// state of its own; numbering and blank-line state live in the stages.
// A Pipeline is not safe for concurrent use: give each document its own.
type Pipeline struct {
	stages []Stage
}

// New returns a Pipeline running stages in the given order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// NewRedNotebook returns the RedNotebook to Markdown pipeline. headerPadding
// is added to every header level.
//
// Links and images are rewritten first so later stages see (and protect) the
// Markdown URLs, and code spans are settled before the italic and
// strikethrough scans that must skip them.
func NewRedNotebook(headerPadding int) *Pipeline {
	return New(
		LinkStage{},
		ImageStage{},
		HeaderStage{Padding: headerPadding},
		CodeSpanStage{},
		ItalicStage{},
		StrikethroughStage{},
		NewListStage(),
		InnerUnderscoreStage{},
	)
}

// Next transforms a single line.
func (p *Pipeline) Next(line string) string {
	for _, s := range p.stages {
		line = s.Next(line)
	}
	return line
}

// Lines transforms lines in order and returns a new slice of the same length.
func (p *Pipeline) Lines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = p.Next(line)
	}
	return out
}
