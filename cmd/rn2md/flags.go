package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// headerPaddingSentinel detects if --header-padding was explicitly set.
// Since 0 is a valid padding, we use an out-of-range sentinel.
const headerPaddingSentinel = -999

// ErrInvalidArgs wraps flag parsing and argument errors.
var ErrInvalidArgs = errors.New("invalid arguments")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// notebookFlags holds flags selecting and reading notebook days.
type notebookFlags struct {
	dataPath    string
	workdays    bool
	workdaysSet bool
}

// renderFlags holds flags shaping the converted output.
type renderFlags struct {
	headerPadding int
	headingFormat string
	html          bool
	style         string
	noStyle       bool
}

// showFlags holds all flags for the show command.
type showFlags struct {
	config   string
	common   commonFlags
	notebook notebookFlags
	render   renderFlags
	output   string
	workers  int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	render renderFlags
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addNotebookFlags adds notebook flags to a FlagSet.
func addNotebookFlags(fs *flag.FlagSet, f *notebookFlags) {
	fs.StringVarP(&f.dataPath, "data-path", "d", "", "RedNotebook data directory")
	fs.BoolVar(&f.workdays, "workdays", false, "weeks are Monday-Friday, weekend days move to a workday")
}

// addRenderFlags adds output shaping flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVar(&f.headerPadding, "header-padding", headerPaddingSentinel, "levels added to every header (-5 to 5)")
	fs.BoolVar(&f.html, "html", false, "output an HTML preview instead of Markdown")
	fs.StringVar(&f.style, "style", "", "preview style name or CSS file (default: notebook)")
	fs.BoolVar(&f.noStyle, "no-style", false, "HTML preview without a stylesheet")
}

// newFlagSet creates a silent FlagSet: errors are reported by runMain.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// buildShowFlagSet registers the show command flags on a new FlagSet.
func buildShowFlagSet(f *showFlags) *flag.FlagSet {
	fs := newFlagSet("show")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.render.headingFormat, "heading-format", "", "day heading: preset or date tokens")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addNotebookFlags(fs, &f.notebook)
	addRenderFlags(fs, &f.render)
	return fs
}

// buildConvertFlagSet registers the convert command flags on a new FlagSet.
func buildConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := newFlagSet("convert")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	return fs
}

// parseShowFlags parses show command flags and returns positional args.
func parseShowFlags(args []string) (*showFlags, []string, error) {
	f := &showFlags{}
	fs := buildShowFlagSet(f)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	f.notebook.workdaysSet = fs.Changed("workdays")
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(f)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
}
