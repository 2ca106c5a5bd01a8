// Package pipeline implements the RedNotebook-to-Markdown line pipeline.
//
// A Pipeline is an ordered chain of stages. Each stage rewrites one line and
// may carry a little state to the next line:
//   - LinkStage and ImageStage rewrite [text ""url""] and [""url""]
//   - HeaderStage rewrites =Title= headers, shifted by a padding
//   - CodeSpanStage, ItalicStage and StrikethroughStage pair delimiters
//   - ListStage numbers "+" items per indentation column
//   - InnerUnderscoreStage escapes underscores inside words
//
// Delimiter scans skip protected spans: link URLs and code spans found by
// re-scanning the current line. Every stage is total: malformed markup passes
// through unchanged.
//
// The package also holds the optional HTML preview stages: Markdown to HTML
// via Goldmark, relative path resolution and CSS injection.
package pipeline
