package main

// Notes:
// - loadEnvConfig: we test every RN2MD_* variable, plus malformed boolean
//   and integer values (ignored with a warning, not errors).
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that set variables override the config file and
//   unset ones leave it alone.
// Variables are injected through a getenv func, so tests run in parallel.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-rn2md/internal/config"
)

func getenvFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		var warn bytes.Buffer
		cfg := loadEnvConfig(getenvFrom(map[string]string{
			"RN2MD_CONFIG":         "/etc/rn2md.yaml",
			"RN2MD_DATA_PATH":      "/notes",
			"RN2MD_HEADING_FORMAT": "iso",
			"RN2MD_WORKDAYS":       "true",
			"RN2MD_WORKERS":        "3",
		}), &warn)

		if cfg.ConfigPath != "/etc/rn2md.yaml" {
			t.Errorf("ConfigPath = %q, want /etc/rn2md.yaml", cfg.ConfigPath)
		}
		if cfg.DataPath != "/notes" {
			t.Errorf("DataPath = %q, want /notes", cfg.DataPath)
		}
		if cfg.HeadingFormat != "iso" {
			t.Errorf("HeadingFormat = %q, want iso", cfg.HeadingFormat)
		}
		if cfg.Workdays == nil || !*cfg.Workdays {
			t.Errorf("Workdays = %v, want true", cfg.Workdays)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
		if warn.Len() != 0 {
			t.Errorf("unexpected warnings: %q", warn.String())
		}
	})

	t.Run("unset variables", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(getenvFrom(nil), &bytes.Buffer{})
		if cfg.Workdays != nil {
			t.Errorf("Workdays = %v, want nil", *cfg.Workdays)
		}
		if cfg.Workers != 0 || cfg.DataPath != "" {
			t.Errorf("want zero values, got %+v", cfg)
		}
	})

	t.Run("workdays false is kept", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(getenvFrom(map[string]string{"RN2MD_WORKDAYS": "0"}), &bytes.Buffer{})
		if cfg.Workdays == nil || *cfg.Workdays {
			t.Errorf("Workdays = %v, want false", cfg.Workdays)
		}
	})

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad boolean", "RN2MD_WORKDAYS", "sometimes"},
		{"non-numeric workers", "RN2MD_WORKERS", "many"},
		{"zero workers", "RN2MD_WORKERS", "0"},
		{"negative workers", "RN2MD_WORKERS", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var warn bytes.Buffer
			cfg := loadEnvConfig(getenvFrom(map[string]string{tt.key: tt.value}), &warn)
			if cfg.Workdays != nil || cfg.Workers != 0 {
				t.Errorf("malformed %s should be ignored, got %+v", tt.key, cfg)
			}
			if !strings.Contains(warn.String(), "ignoring "+tt.key) {
				t.Errorf("warning = %q, want mention of %s", warn.String(), tt.key)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"RN2MD_DATAPATH=/x",
		"RN2MD_DATA_PATH=/y",
		"RN2MD_WORKER=2",
		"HOME=/home/me",
		"RN2MDX=1",
	})

	out := buf.String()
	for _, want := range []string{"RN2MD_DATAPATH", "RN2MD_WORKER "} {
		if !strings.Contains(out, want) {
			t.Errorf("output should warn about %q, got %q", strings.TrimSpace(want), out)
		}
	}
	for _, notWant := range []string{"RN2MD_DATA_PATH", "HOME", "RN2MDX"} {
		if strings.Contains(out, notWant) {
			t.Errorf("output should not mention %s, got %q", notWant, out)
		}
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env vars override the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	yes := true

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{DataPath: "/file", HeadingFormat: "us", Workers: 1}
		applyEnvConfig(&envConfig{DataPath: "/env", HeadingFormat: "iso", Workdays: &yes, Workers: 4}, cfg)

		if cfg.DataPath != "/env" || cfg.HeadingFormat != "iso" || !cfg.WorkdaysOnly || cfg.Workers != 4 {
			t.Errorf("applyEnvConfig() = %+v, want env values", cfg)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{DataPath: "/file", HeadingFormat: "us", WorkdaysOnly: true, Workers: 2}
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.DataPath != "/file" || cfg.HeadingFormat != "us" || !cfg.WorkdaysOnly || cfg.Workers != 2 {
			t.Errorf("applyEnvConfig() = %+v, want config values", cfg)
		}
	})
}
