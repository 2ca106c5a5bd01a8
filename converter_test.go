package rn2md

// Notes:
// - HTML output is checked for the markers this package adds (day heading,
//   stylesheet, resolved paths); Goldmark rendering itself is covered in
//   internal/pipeline.
// - Stream write errors surface at the final flush because output is
//   buffered.

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-rn2md/internal/pipeline"
)

var saturday = time.Date(2018, 3, 24, 15, 4, 5, 0, time.UTC)

func mustConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	conv, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return conv
}

// ---------------------------------------------------------------------------
// TestNewConverter - Option validation
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "defaults"},
		{name: "negative padding in range", opts: []Option{WithHeaderPadding(-MaxHeaderPadding)}},
		{name: "preset heading", opts: []Option{WithHeadingFormat("iso")}},
		{name: "padding too large", opts: []Option{WithHeaderPadding(MaxHeaderPadding + 1)}, wantErr: ErrInvalidHeaderPadding},
		{name: "padding too small", opts: []Option{WithHeaderPadding(-MaxHeaderPadding - 1)}, wantErr: ErrInvalidHeaderPadding},
		{name: "unclosed bracket", opts: []Option{WithHeadingFormat("[Day D")}, wantErr: ErrInvalidHeadingFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewConverter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || conv == nil {
				t.Fatalf("NewConverter() = %v, %v", conv, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConverter_Convert - Entry conversion
// ---------------------------------------------------------------------------

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []Option
		input Input
		want  string
	}{
		{
			name:  "no date no padding",
			input: Input{Text: "=Title=\n//it// and --old--"},
			want:  "# Title\n_it_ and ~old~",
		},
		{
			name:  "date heading nests entry headers",
			input: Input{Text: "=Plans=\n+ a\n+ b", Date: saturday},
			want:  "# Sat Mar 24, 2018\n## Plans\n1. a\n2. b",
		},
		{
			name:  "explicit padding wins over date default",
			opts:  []Option{WithHeaderPadding(0)},
			input: Input{Text: "=Plans=", Date: saturday},
			want:  "# Sat Mar 24, 2018\n# Plans",
		},
		{
			name:  "custom heading format",
			opts:  []Option{WithHeadingFormat("long")},
			input: Input{Text: "hi", Date: saturday},
			want:  "# Saturday, March 24, 2018\nhi",
		},
		{
			name:  "line endings normalized and trailing space dropped",
			input: Input{Text: "+ a  \r\n+ b\t\r+ c"},
			want:  "1. a\n2. b\n3. c",
		},
		{
			name:  "links and underscores",
			input: Input{Text: `see [my_site ""http://a_b.com/x--y""] for snake_case`},
			want:  `see [my\_site](http://a_b.com/x--y) for snake\_case`,
		},
		{
			name:  "empty text",
			input: Input{},
			want:  "",
		},
		{
			name:  "empty text with date",
			input: Input{Date: saturday},
			want:  "# Sat Mar 24, 2018\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := mustConverter(t, tt.opts...).Convert(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got.Markdown != tt.want {
				t.Errorf("Convert() Markdown = %q, want %q", got.Markdown, tt.want)
			}
			if got.HTML != "" {
				t.Errorf("Convert() HTML = %q, want empty without WithHTML", got.HTML)
			}
		})
	}
}

func TestConverter_Convert_FreshPipeline(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t)
	for i := 0; i < 3; i++ {
		got, err := conv.Convert(context.Background(), Input{Text: "+ a\n+ b"})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if got.Markdown != "1. a\n2. b" {
			t.Errorf("call %d: Markdown = %q, want numbering restarted", i, got.Markdown)
		}
	}
}

func TestConverter_Convert_Concurrent(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t, WithHTML(true))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			text := strings.Repeat("+ item\n", n+1)
			got, err := conv.Convert(context.Background(), Input{Text: text})
			if err != nil {
				errs <- err
				return
			}
			last := fmt.Sprintf("%d. item", n+1)
			if !strings.Contains(got.Markdown, last) {
				errs <- fmt.Errorf("document %d: missing %q in %q", n, last, got.Markdown)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestConverter_Convert_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mustConverter(t).Convert(ctx, Input{Text: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestConverter_Convert_HTML - Preview rendering
// ---------------------------------------------------------------------------

type stubHTML struct {
	html  string
	err   error
	panic bool
}

func (s *stubHTML) ToHTML(_ context.Context, _ string) (string, error) {
	if s.panic {
		panic("boom")
	}
	return s.html, s.err
}

func TestConverter_Convert_HTML(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t, WithHTML(true), WithCSS("h1 { color: teal; }"))
	got, err := conv.Convert(context.Background(), Input{Text: "//it//", Date: saturday})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	for _, want := range []string{"<!DOCTYPE html>", "Sat Mar 24, 2018</h1>", "<em>it</em>", "<style>h1 { color: teal; }</style>"} {
		if !strings.Contains(got.HTML, want) {
			t.Errorf("HTML missing %q in:\n%s", want, got.HTML)
		}
	}
	if !strings.HasPrefix(got.Markdown, "# Sat Mar 24, 2018") {
		t.Errorf("Markdown = %q, want day heading", got.Markdown)
	}
}

func TestConverter_Convert_HTMLSourceDir(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t, WithHTML(true))
	conv.htmlConverter = &stubHTML{html: `<html><body><img src="pics/a.png"/></body></html>`}

	got, err := conv.Convert(context.Background(), Input{Text: `[""pics/a.png""]`, SourceDir: "/notes"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(got.HTML, `src="file:///notes/pics/a.png"`) {
		t.Errorf("HTML = %q, want resolved picture path", got.HTML)
	}
}

func TestConverter_Convert_HTMLErrors(t *testing.T) {
	t.Parallel()

	t.Run("conversion error", func(t *testing.T) {
		t.Parallel()

		conv := mustConverter(t, WithHTML(true))
		conv.htmlConverter = &stubHTML{err: fmt.Errorf("%w: bad", pipeline.ErrHTMLConversion)}

		_, err := conv.Convert(context.Background(), Input{Text: "x"})
		if !errors.Is(err, ErrHTMLConversion) {
			t.Errorf("Convert() error = %v, want ErrHTMLConversion", err)
		}
	})

	t.Run("panic recovered", func(t *testing.T) {
		t.Parallel()

		conv := mustConverter(t, WithHTML(true))
		conv.htmlConverter = &stubHTML{panic: true}

		_, err := conv.Convert(context.Background(), Input{Text: "x"})
		if err == nil || !strings.Contains(err.Error(), "internal error: boom") {
			t.Errorf("Convert() error = %v, want recovered panic", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConverter_RenderHTML - Preview of already converted Markdown
// ---------------------------------------------------------------------------

func TestConverter_RenderHTML(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t)
	got, err := conv.RenderHTML(context.Background(), "# Sat Mar 24, 2018\n\n\n# Sun Mar 25, 2018", "")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	for _, want := range []string{"Sat Mar 24, 2018</h1>", "Sun Mar 25, 2018</h1>"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderHTML() missing %q in:\n%s", want, got)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := conv.RenderHTML(ctx, "x", ""); !errors.Is(err, context.Canceled) {
		t.Errorf("RenderHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestConverter_Heading
// ---------------------------------------------------------------------------

func TestConverter_Heading(t *testing.T) {
	t.Parallel()

	late := time.Date(2018, 3, 24, 23, 30, 0, 0, time.FixedZone("PDT", -7*3600))

	tests := []struct {
		name   string
		format string
		day    time.Time
		want   string
	}{
		{"default", "", saturday, "# Sat Mar 24, 2018"},
		{"iso", "iso", saturday, "# 2018-03-24"},
		{"calendar day of the given zone", "", late, "# Sat Mar 24, 2018"},
		{"zero day", "", time.Time{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []Option
			if tt.format != "" {
				opts = append(opts, WithHeadingFormat(tt.format))
			}
			if got := mustConverter(t, opts...).Heading(tt.day); got != tt.want {
				t.Errorf("Heading() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConverter_Stream - Line-at-a-time conversion
// ---------------------------------------------------------------------------

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestConverter_Stream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []Option
		input string
		want  string
	}{
		{
			name:  "mixed line endings",
			input: "=T=\r\n+ a\r+ b\n\n\n+ c",
			want:  "# T\n1. a\n2. b\n\n\n1. c\n",
		},
		{
			name:  "padding applies",
			opts:  []Option{WithHeaderPadding(2)},
			input: "==Sub==\n",
			want:  "#### Sub\n",
		},
		{
			name:  "state carried across lines",
			input: "+ a\n  + b\n  + c\n+ d\n",
			want:  "1. a\n  1. b\n  2. c\n2. d\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			if err := mustConverter(t, tt.opts...).Stream(context.Background(), strings.NewReader(tt.input), &out); err != nil {
				t.Fatalf("Stream() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Stream() = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestConverter_Stream_Errors(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t)

	t.Run("read error", func(t *testing.T) {
		t.Parallel()

		err := conv.Stream(context.Background(), failReader{}, &strings.Builder{})
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("Stream() error = %v, want ErrReadInput", err)
		}
	})

	t.Run("line too long", func(t *testing.T) {
		t.Parallel()

		long := strings.NewReader(strings.Repeat("a", maxLineSize+1))
		err := conv.Stream(context.Background(), long, &strings.Builder{})
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("Stream() error = %v, want ErrReadInput", err)
		}
	})

	t.Run("write error", func(t *testing.T) {
		t.Parallel()

		err := conv.Stream(context.Background(), strings.NewReader("a\nb\n"), failWriter{})
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("Stream() error = %v, want ErrWriteOutput", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := conv.Stream(ctx, strings.NewReader("a\n"), &strings.Builder{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Stream() error = %v, want context.Canceled", err)
		}
	})
}

func TestScanLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []string
	}{
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\rb\r", []string{"a", "b"}},
		{"a\r\r\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			t.Parallel()

			s := bufio.NewScanner(strings.NewReader(tt.input))
			s.Split(scanLines)
			var got []string
			for s.Scan() {
				got = append(got, s.Text())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertLines(t *testing.T) {
	t.Parallel()

	got := ConvertLines([]string{"=A=", "+ x", "+ y"})
	want := []string{"# A", "1. x", "2. y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConvertLines() = %q, want %q", got, want)
	}
}
