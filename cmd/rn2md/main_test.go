package main

// Notes:
// - runMain: we test dispatch and exit codes through observable output.
//   Conversion output is covered in show_test.go and convert_test.go.
// - setMaxProcs is not tested: it mutates process-wide GOMAXPROCS.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestVersion - Version variable
// ---------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	t.Parallel()

	if Version == "" {
		t.Error("Version should not be empty")
	}

	env, stdout, _ := newTestEnv(nil)
	if code := runMain([]string{"rn2md", "version"}, env); code != ExitSuccess {
		t.Fatalf("runMain(version) = %d, want %d", code, ExitSuccess)
	}
	if got, want := stdout.String(), "rn2md "+Version+"\n"; got != want {
		t.Errorf("version output = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"show", true},
		{"convert", true},
		{"doctor", true},
		{"completion", true},
		{"version", true},
		{"help", true},
		{"today", false},
		{"", false},
		{"Convert", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWantsVerbose - Early verbose detection for automaxprocs logging
// ---------------------------------------------------------------------------

func TestWantsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"short flag", []string{"last", "week", "-v"}, true},
		{"long flag", []string{"--verbose"}, true},
		{"absent", []string{"today"}, false},
		{"after terminator", []string{"--", "-v"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := wantsVerbose(tt.args); got != tt.want {
				t.Errorf("wantsVerbose(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Main entry point exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "help command exits 0",
			args:         []string{"rn2md", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: rn2md", "Commands:"},
		},
		{
			name:         "help show",
			args:         []string{"rn2md", "help", "show"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Date expressions:", "--workdays"},
		},
		{
			name:         "help convert",
			args:         []string{"rn2md", "help", "convert"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: rn2md convert"},
		},
		{
			name:         "help for unknown command",
			args:         []string{"rn2md", "help", "bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: bogus"},
		},
		{
			name:         "-h prints show usage",
			args:         []string{"rn2md", "-h"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: rn2md [show]"},
		},
		{
			name:         "convert --help prints convert usage",
			args:         []string{"rn2md", "convert", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: rn2md convert"},
		},
		{
			name:         "unknown flag",
			args:         []string{"rn2md", "--bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid arguments", "rn2md help show"},
		},
		{
			name:         "unknown word is a bad date expression",
			args:         []string{"rn2md", "someday"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid date expression", "hint:"},
		},
		{
			name:         "completion without shell prints usage",
			args:         []string{"rn2md", "completion"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: rn2md completion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv(nil)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			assertContains(t, "stdout", stdout.String(), tt.wantInStdout)
			assertContains(t, "stderr", stderr.String(), tt.wantInStderr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_ExitCodes - Integration tests for semantic exit codes
// ---------------------------------------------------------------------------

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	dataPath := newNotebook(t)
	badConfig := writeFiles(t, map[string]string{"bad.yaml": "unknownKey: 1\n"})

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		// ExitSuccess (0)
		{"show today", []string{"rn2md", "-d", dataPath}, ExitSuccess},
		{"show without entries", []string{"rn2md", "-d", dataPath, "2017-01-01"}, ExitSuccess},

		// ExitUsage (2)
		{"bad date expression", []string{"rn2md", "-d", dataPath, "the", "ides", "of", "march"}, ExitUsage},
		{"missing config", []string{"rn2md", "-d", dataPath, "-c", "/nonexistent/rn2md.yaml"}, ExitUsage},
		{"unknown config key", []string{"rn2md", "-d", dataPath, "-c", badConfig + "/bad.yaml"}, ExitUsage},
		{"bad heading format", []string{"rn2md", "-d", dataPath, "--heading-format", "[YYYY"}, ExitUsage},
		{"padding out of range", []string{"rn2md", "-d", dataPath, "--header-padding", "9"}, ExitUsage},
		{"too many workers", []string{"rn2md", "-d", dataPath, "-w", "999"}, ExitUsage},
		{"unsupported shell", []string{"rn2md", "completion", "tcsh"}, ExitUsage},

		// ExitIO (3)
		{"missing data path", []string{"rn2md", "-d", dataPath + "/nope"}, ExitIO},
		{"missing input file", []string{"rn2md", "convert", dataPath + "/nope.txt"}, ExitIO},
		{"missing style file", []string{"rn2md", "-d", dataPath, "--html", "--style", dataPath + "/nope.css"}, ExitIO},
		{"unknown style", []string{"rn2md", "-d", dataPath, "--html", "--style", "fancy"}, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := newTestEnv(nil)
			if code := runMain(tt.args, env); code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d (stderr: %s)", tt.args[1:], code, tt.wantCode, stderr.String())
			}
		})
	}
}
