package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateExpression indicates a day expression that could not be parsed.
var ErrInvalidDateExpression = errors.New("invalid date expression")

// MaxExpressionLength limits day expressions read from the command line.
const MaxExpressionLength = 64

// MaxOffset bounds "N days ago" style offsets (about a century of days).
const MaxOffset = 36600

const isoDay = "2006-01-02"

var (
	agoPattern     = regexp.MustCompile(`^(\d+) (days?|weeks?) ago$`)
	inPattern      = regexp.MustCompile(`^in (\d+) (days?|weeks?)$`)
	relWeekPattern = regexp.MustCompile(`^(this|last|next) week$`)
	weekdayPattern = regexp.MustCompile(`^(last|next) (monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Day truncates t to its calendar day at midnight UTC. Notebook entries are
// keyed by these values.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDates returns the days selected by expr relative to now.
//
// Accepted forms: today, yesterday, tomorrow, "N day(s) ago", "in N day(s)",
// "this week", "last week", "next week", "N week(s) ago", "in N week(s)",
// "last friday", "next monday" and ISO dates (2018-03-24). Matching is
// case-insensitive and ignores extra spaces.
//
// An expression mentioning "week" selects the ISO week (Monday to Sunday)
// holding the parsed day, or its first five days when workdaysOnly is set.
// Otherwise a single day is returned; in workday mode a Saturday or Sunday
// moves forward to Monday when it lies after today, else back to Friday.
func ParseDates(expr string, now time.Time, workdaysOnly bool) ([]time.Time, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(expr)), " ")
	if norm == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidDateExpression)
	}
	if len(norm) > MaxExpressionLength {
		return nil, fmt.Errorf("%w: expression exceeds %d characters", ErrInvalidDateExpression, MaxExpressionLength)
	}

	today := Day(now)
	day, err := parseDay(norm, today)
	if err != nil {
		return nil, err
	}

	if strings.Contains(norm, "week") {
		return weekOf(day, workdaysOnly), nil
	}
	return []time.Time{roundToWorkday(day, today, workdaysOnly)}, nil
}

// parseDay resolves norm to a single day. Week expressions resolve to a day
// inside the wanted week.
func parseDay(norm string, today time.Time) (time.Time, error) {
	switch norm {
	case "today", "now", "this week":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if t, err := time.Parse(isoDay, norm); err == nil {
		return t, nil
	}

	if m := relWeekPattern.FindStringSubmatch(norm); m != nil {
		if m[1] == "last" {
			return today.AddDate(0, 0, -7), nil
		}
		return today.AddDate(0, 0, 7), nil
	}

	if m := agoPattern.FindStringSubmatch(norm); m != nil {
		days, err := offsetDays(m[1], m[2], norm)
		if err != nil {
			return time.Time{}, err
		}
		return today.AddDate(0, 0, -days), nil
	}

	if m := inPattern.FindStringSubmatch(norm); m != nil {
		days, err := offsetDays(m[1], m[2], norm)
		if err != nil {
			return time.Time{}, err
		}
		return today.AddDate(0, 0, days), nil
	}

	if m := weekdayPattern.FindStringSubmatch(norm); m != nil {
		want := weekdays[m[2]]
		if m[1] == "last" {
			back := (int(today.Weekday()) - int(want) + 7) % 7
			if back == 0 {
				back = 7
			}
			return today.AddDate(0, 0, -back), nil
		}
		ahead := (int(want) - int(today.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return today.AddDate(0, 0, ahead), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateExpression, norm)
}

func offsetDays(count, unit, norm string) (int, error) {
	n, err := strconv.Atoi(count)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDateExpression, norm)
	}
	if strings.HasPrefix(unit, "week") {
		n *= 7
	}
	if n > MaxOffset {
		return 0, fmt.Errorf("%w: offset in %q exceeds %d days", ErrInvalidDateExpression, norm, MaxOffset)
	}
	return n, nil
}

// weekOf returns the ISO week holding day, Monday first.
func weekOf(day time.Time, workdaysOnly bool) []time.Time {
	// Weekday counts from Sunday; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	n := 7
	if workdaysOnly {
		n = 5
	}
	days := make([]time.Time, n)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

func roundToWorkday(day, today time.Time, workdaysOnly bool) time.Time {
	if !workdaysOnly {
		return day
	}
	switch day.Weekday() {
	case time.Saturday:
		if day.After(today) {
			return day.AddDate(0, 0, 2)
		}
		return day.AddDate(0, 0, -1)
	case time.Sunday:
		if day.After(today) {
			return day.AddDate(0, 0, 1)
		}
		return day.AddDate(0, 0, -2)
	}
	return day
}
