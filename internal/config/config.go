// Package config loads rn2md settings from YAML files and from the classic
// INI-style ~/.rn2mdrc.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/ini.v1"

	"github.com/alnah/go-rn2md/internal/dateutil"
	"github.com/alnah/go-rn2md/internal/fileutil"
	"github.com/alnah/go-rn2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Defaults.
const (
	DefaultDataPath  = "~/.rednotebook/data"
	DefaultDateRange = "today"

	// RCFile is the classic per-user settings file, looked up in $HOME.
	// It is INI, not YAML: keys "data path" and "workday mode" in [DEFAULT].
	RCFile = ".rn2mdrc"

	appDir = "go-rn2md"
)

// Field limits.
const (
	MaxPathLength = 4096
	MaxWorkers    = 32
)

// Config holds the settings of one rn2md run.
type Config struct {
	// DataPath is the RedNotebook data directory holding YYYY-MM month files.
	DataPath string `yaml:"dataPath"`
	// WorkdaysOnly restricts weeks to Monday..Friday and moves weekend days
	// to the nearest workday.
	WorkdaysOnly bool `yaml:"workdaysOnly"`
	// DefaultDateRange is the day expression used when none is given.
	DefaultDateRange string `yaml:"defaultDateRange"`
	// HeadingFormat renders day headings: a preset name or date tokens.
	HeadingFormat string `yaml:"headingFormat"`
	// Workers caps concurrent day conversions (0 = auto).
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DataPath:         DefaultDataPath,
		WorkdaysOnly:     false,
		DefaultDateRange: DefaultDateRange,
		HeadingFormat:    dateutil.DefaultHeadingFormat,
	}
}

// Validate checks every field. Called by the loaders, but available for
// callers building a Config by hand.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.DataPath, validation.Required, validation.Length(1, MaxPathLength)),
		validation.Field(&c.DefaultDateRange,
			validation.Length(0, dateutil.MaxExpressionLength),
			validation.By(validDateRange)),
		validation.Field(&c.HeadingFormat,
			validation.Length(0, dateutil.MaxDateFormatLength),
			validation.By(validHeadingFormat)),
		validation.Field(&c.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validDateRange(value any) error {
	expr, _ := value.(string)
	if expr == "" {
		return nil
	}
	if _, err := dateutil.ParseDates(expr, time.Now(), false); err != nil {
		return validation.NewError("rn2md.config.default_date_range", "must be a day expression such as today or last week")
	}
	return nil
}

func validHeadingFormat(value any) error {
	format, _ := value.(string)
	if format == "" {
		return nil
	}
	if _, err := dateutil.ResolveFormat(format); err != nil {
		return validation.NewError("rn2md.config.heading_format", "must be a preset or a date token format")
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if fileutil.IsFilePath(nameOrPath) {
		expanded, err := fileutil.ExpandHome(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = expanded
	} else {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if filepath.Base(configPath) == RCFile {
		return parseRC(data)
	}
	return parse(data)
}

// LoadFirst loads the first existing file among paths. When none exists the
// defaults are returned with an empty path.
func LoadFirst(paths []string) (*Config, string, error) {
	for _, p := range paths {
		if !fileutil.FileExists(p) {
			continue
		}
		cfg, err := LoadConfig(p)
		if err != nil {
			return nil, p, err
		}
		return cfg, p, nil
	}

	cfg := DefaultConfig()
	if err := cfg.finish(); err != nil {
		return nil, "", err
	}
	return cfg, "", nil
}

// SearchPaths lists the default config locations in lookup order:
// ~/.rn2mdrc, then <UserConfigDir>/go-rn2md/config.yaml.
func SearchPaths() []string {
	var paths []string
	if rc, err := fileutil.ExpandHome("~/" + RCFile); err == nil {
		paths = append(paths, rc)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, appDir, "config.yaml"))
	}
	return paths
}

// StyleDir returns <UserConfigDir>/go-rn2md when it holds a styles
// directory with custom preview stylesheets, or "" otherwise.
func StyleDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	base := filepath.Join(dir, appDir)
	if info, err := os.Stat(filepath.Join(base, "styles")); err != nil || !info.IsDir() {
		return ""
	}
	return base
}

// parse decodes data over the defaults, so omitted keys keep their default.
func parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RC file keys, matched case-insensitively.
const (
	rcDataPath    = "data path"
	rcWorkdayMode = "workday mode"
)

// parseRC decodes an INI rc file over the defaults. Only the [DEFAULT]
// section is read; other keys and sections are ignored.
func parseRC(data []byte) (*Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := DefaultConfig()
	section := file.Section(ini.DefaultSection)
	if key, err := section.GetKey(rcDataPath); err == nil {
		cfg.DataPath = key.String()
	}
	if key, err := section.GetKey(rcWorkdayMode); err == nil {
		on, err := key.Bool()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a boolean", ErrConfigParse, rcWorkdayMode, key.String())
		}
		cfg.WorkdaysOnly = on
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish fills blank fields with defaults, expands ~ and validates.
func (c *Config) finish() error {
	def := DefaultConfig()
	if strings.TrimSpace(c.DataPath) == "" {
		c.DataPath = def.DataPath
	}
	if strings.TrimSpace(c.DefaultDateRange) == "" {
		c.DefaultDateRange = def.DefaultDateRange
	}
	if strings.TrimSpace(c.HeadingFormat) == "" {
		c.HeadingFormat = def.HeadingFormat
	}

	expanded, err := fileutil.ExpandHome(c.DataPath)
	if err != nil {
		return fmt.Errorf("%w: dataPath: %v", ErrInvalidConfig, err)
	}
	c.DataPath = expanded

	return c.Validate()
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/go-rn2md/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
