package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-rn2md/internal/dateutil"
	"github.com/alnah/go-rn2md/internal/hints"
	"github.com/alnah/go-rn2md/internal/storage"
)

// daySeparator joins converted days: two blank lines.
const daySeparator = "\n\n\n"

// runShowCmd parses flags and runs the show command.
func runShowCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseShowFlags(args)
	if err != nil {
		return err
	}
	return runShow(ctx, positional, flags, env)
}

// runShow prints the notebook entries of the days named by the positional
// date expression, or by the configured default range.
func runShow(ctx context.Context, positionalArgs []string, flags *showFlags, env *Environment) error {
	start := time.Now()

	envCfg := loadEnvConfig(env.Getenv, env.Stderr)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	// Load configuration, then layer env vars and flags over it
	cfg, cfgPath, err := loadConfig(flags.config, envCfg, env.ConfigPaths())
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeNotebookFlags(flags.notebook, cfg)
	mergeRenderFlags(flags.render, cfg)
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if err := finishConfig(cfg); err != nil {
		return err
	}

	if flags.common.verbose {
		if cfgPath == "" {
			fmt.Fprintln(env.Stderr, "Config: defaults")
		} else {
			fmt.Fprintf(env.Stderr, "Config: %s\n", cfgPath)
		}
	}

	expr := strings.Join(positionalArgs, " ")
	if strings.TrimSpace(expr) == "" {
		expr = cfg.DefaultDateRange
	}
	days, err := dateutil.ParseDates(expr, env.Now(), cfg.WorkdaysOnly)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForDateExpression())
	}

	conv, err := buildConverter(cfg.HeadingFormat, flags.render, env.StyleDir())
	if err != nil {
		return err
	}

	nb, err := storage.Load(cfg.DataPath)
	if err != nil {
		if errors.Is(err, storage.ErrDataPathNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForDataPath(cfg.DataPath))
		}
		return err
	}
	if flags.common.verbose {
		for _, s := range nb.Skipped {
			fmt.Fprintf(env.Stderr, "Skipped %s (%s)\n", s.Path, s.Reason)
		}
	}

	jobs := selectDays(nb, days)
	if len(jobs) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "No entries for %q\n", expr)
		}
		return nil
	}

	poolSize := resolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	results := convertDays(ctx, conv, jobs, poolSize)
	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("converting %s: %w", r.Day.Format(time.DateOnly), r.Err)
		}
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "Converted %s (%v)\n", r.Day.Format(time.DateOnly), r.Duration.Round(time.Microsecond))
		}
		parts = append(parts, r.Markdown)
	}

	out := strings.Join(parts, daySeparator)
	if flags.render.html {
		out, err = conv.RenderHTML(ctx, out, cfg.DataPath)
		if err != nil {
			return err
		}
	}

	if err := writeOutput(env.Stdout, flags.output, out+"\n"); err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done: %d day(s) in %v\n", len(jobs), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// selectDays returns a job for every day that has an entry, in day order.
func selectDays(nb *storage.Notebook, days []time.Time) []dayJob {
	jobs := make([]dayJob, 0, len(days))
	for _, d := range days {
		if text, ok := nb.Entry(d); ok {
			jobs = append(jobs, dayJob{Day: dateutil.Day(d), Text: text})
		}
	}
	return jobs
}
