package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and notebook fixtures
// ---------------------------------------------------------------------------

// testNow is Saturday, March 24 2018.
var testNow = time.Date(2018, 3, 24, 10, 0, 0, 0, time.UTC)

// marchNotebook holds entries for Mon 19, Fri 23 and Sat 24 March 2018.
const marchNotebook = `19: {text: "Monday entry"}
23: {text: "=Plans=\n+ a\n+ b"}
24:
  text: |
    Saturday //fun//
`

// newTestEnv returns an Environment with captured output, a fixed clock, the
// given variables as process environment and no default config files.
func newTestEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return testNow },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			list := make([]string, 0, len(vars))
			for k, v := range vars {
				list = append(list, k+"="+v)
			}
			sort.Strings(list)
			return list
		},
		ConfigPaths: func() []string { return nil },
		StyleDir:    func() string { return "" },
	}
	return env, &stdout, &stderr
}

// writeFiles creates files under a new temp directory and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// newNotebook writes the March 2018 fixture and returns its data directory.
func newNotebook(t *testing.T) string {
	t.Helper()
	return writeFiles(t, map[string]string{"2018-03.txt": marchNotebook})
}

func assertContains(t *testing.T, label, got string, wants []string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("%s should contain %q, got %q", label, want, got)
		}
	}
}
