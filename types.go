package rn2md

import "time"

// Input contains conversion parameters.
type Input struct {
	Text      string    // RedNotebook entry text
	Date      time.Time // Day of the entry (optional, zero = no heading)
	SourceDir string    // Base for relative picture paths in HTML (optional)
}

// ConvertResult holds the converted entry.
type ConvertResult struct {
	Markdown string // Converted lines joined by "\n", no trailing newline
	HTML     string // Standalone HTML preview, empty unless WithHTML(true)
}
