package main

import (
	"fmt"
	"io"
	"os"

	rn2md "github.com/alnah/go-rn2md"
	"github.com/alnah/go-rn2md/internal/fileutil"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// nopClose is the close func for outputs the command does not own.
func nopClose() error { return nil }

// openOutput returns w when path is empty or "-", else a new file at path.
// The returned close func must be called once writing is done.
func openOutput(w io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return w, nopClose, nil
	}

	expanded, err := fileutil.ExpandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", rn2md.ErrWriteOutput, err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions) // #nosec G304 -- user-provided output path
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", rn2md.ErrWriteOutput, err)
	}
	closeFn := func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: %v", rn2md.ErrWriteOutput, err)
		}
		return nil
	}
	return f, closeFn, nil
}

// writeOutput writes content to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path, content string) (err error) {
	out, closeFn, err := openOutput(w, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := io.WriteString(out, content); err != nil {
		return fmt.Errorf("%w: %v", rn2md.ErrWriteOutput, err)
	}
	return nil
}
