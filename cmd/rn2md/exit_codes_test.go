package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	rn2md "github.com/alnah/go-rn2md"
	"github.com/alnah/go-rn2md/internal/assets"
	"github.com/alnah/go-rn2md/internal/config"
	"github.com/alnah/go-rn2md/internal/dateutil"
	"github.com/alnah/go-rn2md/internal/storage"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown error", errors.New("boom"), ExitGeneral},

		// I/O
		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", fmt.Errorf("open: %w", os.ErrPermission), ExitIO},
		{"data path", fmt.Errorf("%w: /x", storage.ErrDataPathNotFound), ExitIO},
		{"read input", fmt.Errorf("%w: eof", rn2md.ErrReadInput), ExitIO},
		{"write output", rn2md.ErrWriteOutput, ExitIO},
		{"style file", fmt.Errorf("%w: %w", assets.ErrAssetRead, os.ErrNotExist), ExitIO},
		{"style dir", assets.ErrInvalidBasePath, ExitIO},

		// Usage
		{"flags", fmt.Errorf("%w: unknown flag", ErrInvalidArgs), ExitUsage},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"date expression", fmt.Errorf("%w: %q", dateutil.ErrInvalidDateExpression, "x"), ExitUsage},
		{"heading format", rn2md.ErrInvalidHeadingFormat, ExitUsage},
		{"unknown style", fmt.Errorf("%w: %q", assets.ErrStyleNotFound, "x"), ExitUsage},
		{"style name", assets.ErrInvalidAssetName, ExitUsage},
		{"header padding", rn2md.ErrInvalidHeaderPadding, ExitUsage},
		{"shell", ErrUnsupportedShell, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
