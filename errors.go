package rn2md

import (
	"errors"

	"github.com/alnah/go-rn2md/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrReadInput      = errors.New("reading input failed")
	ErrWriteOutput    = errors.New("writing output failed")

	// Option validation errors.
	ErrInvalidHeadingFormat = errors.New("invalid heading format")
	ErrInvalidHeaderPadding = errors.New("invalid header padding")
)
