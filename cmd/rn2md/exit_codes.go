package main

import (
	"errors"
	"os"

	rn2md "github.com/alnah/go-rn2md"
	"github.com/alnah/go-rn2md/internal/assets"
	"github.com/alnah/go-rn2md/internal/config"
	"github.com/alnah/go-rn2md/internal/dateutil"
	"github.com/alnah/go-rn2md/internal/storage"
)

// Exit codes for rn2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, date expression or format
	ExitIO      = 3 // Data path or file not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, storage.ErrDataPathNotFound) ||
		errors.Is(err, rn2md.ErrReadInput) ||
		errors.Is(err, rn2md.ErrWriteOutput) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateExpression) ||
		errors.Is(err, rn2md.ErrInvalidHeadingFormat) ||
		errors.Is(err, rn2md.ErrInvalidHeaderPadding) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
