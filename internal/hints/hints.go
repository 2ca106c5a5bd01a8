// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-rn2md/internal/fileutil"
)

// DefaultDataPath is where RedNotebook keeps its month files.
const DefaultDataPath = "~/.rednotebook/data"

// DefaultDataPathExists reports whether RedNotebook's default data directory
// is present. Replaced in tests.
var DefaultDataPathExists = func() bool {
	path, err := fileutil.ExpandHome(DefaultDataPath)
	return err == nil && fileutil.DirExists(path)
}

// ForDataPath returns hints for a missing notebook directory.
// It points at RedNotebook's default location when that one exists and
// mentions RN2MD_DATA_PATH when the variable is not already set.
func ForDataPath(path string) string {
	var hints []string

	if path != DefaultDataPath && DefaultDataPathExists() {
		hints = append(hints, "RedNotebook data found at "+DefaultDataPath)
	}
	if os.Getenv("RN2MD_DATA_PATH") == "" {
		hints = append(hints, "use --data-path or set RN2MD_DATA_PATH")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user config location searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-rn2md") || strings.HasSuffix(p, ".rn2mdrc") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDateExpression returns a hint listing accepted day expressions.
func ForDateExpression() string {
	return format("try: today, yesterday, \"3 days ago\", \"last week\", \"last friday\" or 2018-03-24")
}

// ForHeadingFormat returns a hint for invalid heading formats.
func ForHeadingFormat(presets []string) string {
	hint := "tokens: YYYY YY MMMM MMM MM M DD D dddd ddd, [literal]"
	if len(presets) > 0 {
		hint += "; presets: " + strings.Join(presets, ", ")
	}
	return format(hint)
}

// ForStyle returns a hint listing the available preview styles.
func ForStyle(styles []string) string {
	if len(styles) == 0 {
		return ""
	}
	return format("available styles: " + strings.Join(styles, ", ") + ", or a path to a .css file")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
