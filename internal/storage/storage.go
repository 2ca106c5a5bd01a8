// Package storage reads RedNotebook month files.
//
// A data directory holds one file per month named YYYY-MM.<ext>. Each file
// is a YAML mapping from day of month to an entry:
//
//	24: {text: "=Plans=\n+ write tests"}
//	25:
//	  text: |
//	    Sunday.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alnah/go-rn2md/internal/dateutil"
	"github.com/alnah/go-rn2md/internal/yamlutil"
)

// ErrDataPathNotFound indicates the data directory is missing or not a directory.
var ErrDataPathNotFound = errors.New("data path not found")

// monthFilePattern matches month file names; the extension is free.
var monthFilePattern = regexp.MustCompile(`^(\d{4})-(\d{2})(\.[^.]*)?$`)

// Skip reasons.
const (
	SkipNotYAML  = "not YAML"
	SkipNotUTF8  = "not UTF-8"
	SkipBadDay   = "invalid day"
	SkipReadFail = "unreadable"
	SkipTooLarge = "too large"
)

// Skipped records a file or entry that was ignored while loading.
type Skipped struct {
	Path   string
	Reason string
}

// Notebook holds the entries of a data directory keyed by day.
type Notebook struct {
	entries map[time.Time]string
	Skipped []Skipped
}

// monthEntry is one day in a month file.
type monthEntry struct {
	Text string `yaml:"text"`
}

// Load reads every month file in dataPath. Files with other names are
// ignored; month files that cannot be decoded are recorded in Skipped.
// Entries that are blank after trimming trailing whitespace are dropped.
func Load(dataPath string) (*Notebook, error) {
	info, err := os.Stat(dataPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDataPathNotFound, dataPath)
	}

	dirEntries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("reading data path: %w", err)
	}

	nb := &Notebook{entries: make(map[time.Time]string)}
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		year, month, ok := parseMonthName(de.Name())
		if !ok {
			continue
		}
		nb.loadMonth(filepath.Join(dataPath, de.Name()), year, month)
	}
	return nb, nil
}

// parseMonthName extracts year and month from a YYYY-MM.<ext> file name.
func parseMonthName(name string) (int, time.Month, bool) {
	m := monthFilePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	t, err := time.Parse("2006-01", m[1]+"-"+m[2])
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

func (nb *Notebook) loadMonth(path string, year int, month time.Month) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's data directory
	if err != nil {
		nb.skip(path, SkipReadFail)
		return
	}
	if len(data) > yamlutil.MaxInputSize {
		nb.skip(path, SkipTooLarge)
		return
	}
	if !utf8.Valid(data) {
		nb.skip(path, SkipNotUTF8)
		return
	}
	if strings.TrimSpace(string(data)) == "" {
		return
	}

	var days map[int]monthEntry
	if err := yamlutil.Unmarshal(data, &days); err != nil {
		nb.skip(path, SkipNotYAML)
		return
	}

	for dayOfMonth, e := range days {
		day := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
		if day.Month() != month || dayOfMonth < 1 {
			nb.skip(fmt.Sprintf("%s#%d", path, dayOfMonth), SkipBadDay)
			continue
		}
		text := strings.TrimRight(e.Text, " \t\r\n\v\f")
		if text == "" {
			continue
		}
		nb.entries[day] = text
	}
}

func (nb *Notebook) skip(path, reason string) {
	nb.Skipped = append(nb.Skipped, Skipped{Path: path, Reason: reason})
}

// Entry returns the text for the calendar day of t.
func (nb *Notebook) Entry(t time.Time) (string, bool) {
	text, ok := nb.entries[dateutil.Day(t)]
	return text, ok
}

// Days returns every day with an entry, oldest first.
func (nb *Notebook) Days() []time.Time {
	days := make([]time.Time, 0, len(nb.entries))
	for d := range nb.entries {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	return days
}

// Len returns the number of entries.
func (nb *Notebook) Len() int {
	return len(nb.entries)
}
