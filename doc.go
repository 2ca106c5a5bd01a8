// Package rn2md converts RedNotebook entries to Markdown.
//
// # Quick Start
//
//	conv, err := rn2md.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, rn2md.Input{
//	    Text: "=Plans=\n+ write //more// tests",
//	    Date: time.Date(2018, 3, 24, 0, 0, 0, 0, time.UTC),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Markdown)
//	// # Sat Mar 24, 2018
//	// ## Plans
//	// 1. write _more_ tests
//
// # Conversion Pipeline
//
// Every line passes through these stages, in order:
//
//  1. Links and images: [text ""url""] and [""url""]
//  2. Headers: =Title= becomes # Title, shifted by the header padding
//  3. Code spans: ``code`` becomes `code`
//  4. Italic and strikethrough: //x// and --x-- become _x_ and ~x~
//  5. Lists: "+" items are numbered per indentation column
//  6. Underscores inside words are escaped
//
// Markup inside link URLs and code spans is left alone. Malformed markup
// passes through unchanged; conversion never fails on content.
//
// Each Convert call uses a fresh pipeline, so a Converter is safe for
// concurrent use. Stream converts a reader line by line with one pipeline.
//
// # Configuration
//
//	conv, err := rn2md.NewConverter(
//	    rn2md.WithHeaderPadding(1),
//	    rn2md.WithHeadingFormat("iso"),
//	    rn2md.WithHTML(true),
//	)
//
// With WithHTML the result also carries a standalone HTML preview rendered
// by Goldmark. Input.SourceDir resolves relative picture paths in it.
package rn2md
