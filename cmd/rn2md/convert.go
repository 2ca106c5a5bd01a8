package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rn2md "github.com/alnah/go-rn2md"
	"github.com/alnah/go-rn2md/internal/fileutil"
)

// maxPreviewInput caps the text read whole for an HTML preview.
const maxPreviewInput = 8 << 20

// runConvertCmd parses flags and runs the convert command.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert converts a RedNotebook text file, or stdin for "-" or no
// argument. Markdown is streamed line by line; --html reads the whole input.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) (err error) {
	if len(positionalArgs) > 1 {
		return fmt.Errorf("%w: expected one input file, got %d", ErrInvalidArgs, len(positionalArgs))
	}
	start := time.Now()

	conv, err := buildConverter("", flags.render, env.StyleDir())
	if err != nil {
		return err
	}

	var in io.Reader = env.Stdin
	sourceDir := ""
	inputPath := "-"
	if len(positionalArgs) == 1 && positionalArgs[0] != "-" {
		inputPath = positionalArgs[0]
		f, dir, err := openInput(inputPath)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		in, sourceDir = f, dir
	}

	out, closeOut, err := openOutput(env.Stdout, flags.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if flags.render.html {
		err = convertPreview(ctx, conv, in, out, sourceDir)
	} else {
		err = conv.Stream(ctx, in, out)
	}
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converted %s in %v\n", inputPath, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// openInput opens a text file and returns its absolute directory, the base
// for relative picture paths.
func openInput(path string) (*os.File, string, error) {
	expanded, err := fileutil.ExpandHome(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", rn2md.ErrReadInput, err)
	}
	f, err := os.Open(expanded) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", rn2md.ErrReadInput, err)
	}
	dir, err := filepath.Abs(filepath.Dir(expanded))
	if err != nil {
		dir = filepath.Dir(expanded)
	}
	return f, dir, nil
}

// convertPreview converts all of in as one entry and writes its HTML preview.
func convertPreview(ctx context.Context, conv *rn2md.Converter, in io.Reader, out io.Writer, sourceDir string) error {
	data, err := io.ReadAll(io.LimitReader(in, maxPreviewInput+1))
	if err != nil {
		return fmt.Errorf("%w: %v", rn2md.ErrReadInput, err)
	}
	if len(data) > maxPreviewInput {
		return fmt.Errorf("%w: input exceeds %d bytes", rn2md.ErrReadInput, maxPreviewInput)
	}

	res, err := conv.Convert(ctx, rn2md.Input{Text: string(data)})
	if err != nil {
		return err
	}
	html, err := conv.RenderHTML(ctx, res.Markdown, sourceDir)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, html); err != nil {
		return fmt.Errorf("%w: %v", rn2md.ErrWriteOutput, err)
	}
	return nil
}
