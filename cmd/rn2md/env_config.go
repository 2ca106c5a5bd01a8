package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-rn2md/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides script-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath    string // RN2MD_CONFIG: config file path
	DataPath      string // RN2MD_DATA_PATH: RedNotebook data directory
	HeadingFormat string // RN2MD_HEADING_FORMAT: day heading preset or tokens
	Workdays      *bool  // RN2MD_WORKDAYS: workday mode (nil = unset)
	Workers       int    // RN2MD_WORKERS: parallel workers
}

// knownEnvVars lists valid RN2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RN2MD_CONFIG":         true,
	"RN2MD_DATA_PATH":      true,
	"RN2MD_HEADING_FORMAT": true,
	"RN2MD_WORKDAYS":       true,
	"RN2MD_WORKERS":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed boolean and integer values are reported on w and ignored.
func loadEnvConfig(getenv func(string) string, w io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath:    getenv("RN2MD_CONFIG"),
		DataPath:      getenv("RN2MD_DATA_PATH"),
		HeadingFormat: getenv("RN2MD_HEADING_FORMAT"),
	}

	if v := getenv("RN2MD_WORKDAYS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fmt.Fprintf(w, "warning: ignoring RN2MD_WORKDAYS=%q (want true or false)\n", v)
		} else {
			cfg.Workdays = &b
		}
	}

	if v := getenv("RN2MD_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			fmt.Fprintf(w, "warning: ignoring RN2MD_WORKERS=%q (want a positive number)\n", v)
		} else {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized RN2MD_* variables.
// Helps catch typos like RN2MD_DATAPATH instead of RN2MD_DATA_PATH.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, name := range unknownEnvVars(environ) {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// unknownEnvVars returns the unrecognized RN2MD_* names in environ.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		if strings.HasPrefix(env, "RN2MD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				unknown = append(unknown, name)
			}
		}
	}
	return unknown
}

// applyEnvConfig applies environment variable values over the config file.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.DataPath != "" {
		cfg.DataPath = env.DataPath
	}
	if env.HeadingFormat != "" {
		cfg.HeadingFormat = env.HeadingFormat
	}
	if env.Workdays != nil {
		cfg.WorkdaysOnly = *env.Workdays
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
