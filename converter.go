package rn2md

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-rn2md/internal/dateutil"
	"github.com/alnah/go-rn2md/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.StyleInjector = (*pipeline.CSSInjection)(nil)
)

// maxLineSize caps a single streamed line.
const maxLineSize = 1 << 20

// Converter turns RedNotebook entries into Markdown.
// Create with NewConverter; a Converter is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	headingLayout string

	htmlOnce      sync.Once
	htmlConverter pipeline.HTMLConverter
	styleInjector pipeline.StyleInjector
}

// NewConverter creates a Converter with default configuration.
// Returns an error if the heading format or header padding is invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           defaultConfig(),
		styleInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.headerPadding < -MaxHeaderPadding || c.cfg.headerPadding > MaxHeaderPadding {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidHeaderPadding, c.cfg.headerPadding, -MaxHeaderPadding, MaxHeaderPadding)
	}

	layout, err := dateutil.ResolveFormat(c.cfg.headingFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeadingFormat, err)
	}
	c.headingLayout = layout

	return c, nil
}

// Convert converts one entry. A non-zero input.Date puts a level-1 day
// heading first. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := pipeline.NewRedNotebook(c.padding(input)).Lines(pipeline.SplitLines(input.Text))
	if !input.Date.IsZero() {
		lines = append([]string{c.Heading(input.Date)}, lines...)
	}

	res := &ConvertResult{Markdown: strings.Join(lines, "\n")}
	if !c.cfg.html {
		return res, nil
	}

	res.HTML, err = c.toHTML(ctx, res.Markdown, input.SourceDir)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Heading returns the level-1 heading for day, such as "# Sat Mar 24, 2018".
// It returns "" for a zero day.
func (c *Converter) Heading(day time.Time) string {
	if day.IsZero() {
		return ""
	}
	return "# " + dateutil.Day(day).Format(c.headingLayout)
}

// Stream converts r line by line to w through a single pipeline, writing
// each line as soon as it is read. \n, \r\n and \r all end a line; every
// output line ends with \n. The context is checked between lines.
func (c *Converter) Stream(ctx context.Context, r io.Reader, w io.Writer) error {
	p := pipeline.NewRedNotebook(c.padding(Input{}))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)

	bw := bufio.NewWriter(w)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := p.Next(pipeline.TrimLine(scanner.Text()))
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// RenderHTML renders already converted Markdown, such as several joined
// entries, as a standalone HTML preview. sourceDir resolves relative
// picture paths when non-empty.
func (c *Converter) RenderHTML(ctx context.Context, markdown, sourceDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.toHTML(ctx, markdown, sourceDir)
}

// ConvertLines converts lines as one document with no header padding.
func ConvertLines(lines []string) []string {
	return pipeline.NewRedNotebook(0).Lines(lines)
}

func (c *Converter) padding(input Input) int {
	if c.cfg.headerPaddingSet {
		return c.cfg.headerPadding
	}
	if !input.Date.IsZero() {
		return 1
	}
	return 0
}

func (c *Converter) toHTML(ctx context.Context, markdown, sourceDir string) (string, error) {
	c.htmlOnce.Do(func() {
		if c.htmlConverter == nil {
			c.htmlConverter = pipeline.NewGoldmarkConverter()
		}
	})

	htmlContent, err := c.htmlConverter.ToHTML(ctx, markdown)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	if sourceDir != "" {
		htmlContent, err = pipeline.ResolveRelativePaths(htmlContent, sourceDir)
		if err != nil {
			return "", fmt.Errorf("resolving relative paths: %w", err)
		}
	}

	htmlContent = c.styleInjector.InjectCSS(ctx, htmlContent, c.cfg.css)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return htmlContent, nil
}

// scanLines is bufio.ScanLines extended to treat a lone \r as a line end.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// \r: need one more byte to tell \r\n from a lone \r.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
