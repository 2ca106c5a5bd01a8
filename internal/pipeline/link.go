package pipeline

import "regexp"

// rnImagePattern matches [""url""]. Group 1 is the image location.
var rnImagePattern = regexp.MustCompile(`\[""(.*?)""\]`)

// LinkStage transforms [text ""url""] into [text](url).
type LinkStage struct{}

// Next implements Stage.
func (LinkStage) Next(line string) string {
	return rnLinkPattern.ReplaceAllString(line, "[$1]($2)")
}

// ImageStage transforms [""url""] into ![](url).
type ImageStage struct{}

// Next implements Stage.
func (ImageStage) Next(line string) string {
	return rnImagePattern.ReplaceAllString(line, "![]($1)")
}
