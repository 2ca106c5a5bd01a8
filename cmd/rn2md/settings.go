package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	rn2md "github.com/alnah/go-rn2md"
	"github.com/alnah/go-rn2md/internal/assets"
	"github.com/alnah/go-rn2md/internal/config"
	"github.com/alnah/go-rn2md/internal/dateutil"
	"github.com/alnah/go-rn2md/internal/fileutil"
	"github.com/alnah/go-rn2md/internal/hints"
)

// loadConfig resolves the config file: --config, then RN2MD_CONFIG, then
// the default search paths. It returns the path actually loaded, or "" when
// the defaults apply.
func loadConfig(flagPath string, envCfg *envConfig, searchPaths []string) (*config.Config, string, error) {
	name := flagPath
	if name == "" {
		name = envCfg.ConfigPath
	}

	if name == "" {
		cfg, path, err := config.LoadFirst(searchPaths)
		if err != nil {
			return nil, path, fmt.Errorf("loading config: %w", err)
		}
		return cfg, path, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, name, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searchPaths))
		}
		return nil, name, fmt.Errorf("loading config: %w", err)
	}
	return cfg, name, nil
}

// mergeNotebookFlags applies notebook flags to cfg (CLI wins).
func mergeNotebookFlags(f notebookFlags, cfg *config.Config) {
	if f.dataPath != "" {
		cfg.DataPath = f.dataPath
	}
	if f.workdaysSet {
		cfg.WorkdaysOnly = f.workdays
	}
}

// mergeRenderFlags applies render flags to cfg (CLI wins).
func mergeRenderFlags(f renderFlags, cfg *config.Config) {
	if f.headingFormat != "" {
		cfg.HeadingFormat = f.headingFormat
	}
}

// finishConfig expands ~ in the data path and validates the merged config.
func finishConfig(cfg *config.Config) error {
	expanded, err := fileutil.ExpandHome(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("%w: dataPath: %v", config.ErrInvalidConfig, err)
	}
	cfg.DataPath = expanded
	return cfg.Validate()
}

// buildConverter creates the Converter for a heading format and render
// flags. HTML is rendered by the commands through RenderHTML, once per output.
// styleDir is the custom style base searched before the built-in styles.
func buildConverter(headingFormat string, f renderFlags, styleDir string) (*rn2md.Converter, error) {
	opts := []rn2md.Option{rn2md.WithHeadingFormat(headingFormat)}
	if f.headerPadding != headerPaddingSentinel {
		opts = append(opts, rn2md.WithHeaderPadding(f.headerPadding))
	}

	if f.html && !f.noStyle {
		css, err := resolveStyle(f.style, styleDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rn2md.WithCSS(css))
	}

	conv, err := rn2md.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, rn2md.ErrInvalidHeadingFormat) {
			return nil, fmt.Errorf("%w%s", err, hints.ForHeadingFormat(presetNames()))
		}
		return nil, err
	}
	return conv, nil
}

// resolveStyle loads a preview stylesheet by name or path. Unknown names
// get a hint listing the available styles.
func resolveStyle(value, styleDir string) (string, error) {
	resolver, err := assets.NewStyleResolver(styleDir)
	if err != nil {
		return "", err
	}
	css, err := assets.ResolveStyle(value, resolver)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return "", fmt.Errorf("%w%s", err, hints.ForStyle(resolver.Styles()))
		}
		return "", err
	}
	return css, nil
}

// presetNames lists the heading format presets, sorted.
func presetNames() []string {
	return slices.Sorted(maps.Keys(dateutil.DatePresets))
}
