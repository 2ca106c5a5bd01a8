package assets

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/alnah/go-rn2md/internal/fileutil"
)

// StyleResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the style is not found in the custom location.
type StyleResolver struct {
	custom   *FilesystemLoader // nil if no custom path configured
	embedded *EmbeddedLoader
}

// NewStyleResolver creates a StyleResolver.
// If customBasePath is empty, only embedded styles are used.
// If customBasePath is set, custom styles take precedence with fallback to embedded.
// Returns error if customBasePath is set but invalid.
func NewStyleResolver(customBasePath string) (*StyleResolver, error) {
	resolver := &StyleResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a style by name, trying the custom loader first if available.
func (r *StyleResolver) LoadStyle(name string) (string, error) {
	// If no custom loader, use embedded directly
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

// Styles lists every loadable style name, custom and built-in, sorted and
// without duplicates.
func (r *StyleResolver) Styles() []string {
	names := r.embedded.Styles()
	if r.custom != nil {
		names = append(names, r.custom.Styles()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// HasCustomLoader returns true if a custom style directory is configured.
func (r *StyleResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// ResolveStyle returns the stylesheet for value: a path to a .css file
// (anything containing a path separator or ending in .css), or a style name
// loaded through loader. An empty value selects DefaultStyle.
func ResolveStyle(value string, loader StyleLoader) (string, error) {
	if value == "" {
		value = DefaultStyle
	}

	if !fileutil.IsFilePath(value) && !strings.HasSuffix(strings.ToLower(value), ".css") {
		return loader.LoadStyle(value)
	}

	path, err := fileutil.ExpandHome(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided stylesheet
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ StyleLoader = (*StyleResolver)(nil)
