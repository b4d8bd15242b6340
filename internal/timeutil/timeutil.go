package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// InRange reports whether date falls inside [start, end], inclusive on both
// ends. All three values must be YYYY-MM-DD, which makes plain string
// comparison equivalent to chronological comparison.
func InRange(date, start, end string) bool {
	return date >= start && date <= end
}

// ParseClock parses a user-edited duration field into minutes. Accepted
// forms are "H:MM" (minutes 00-59) and a bare minute count such as "90".
// Negative and malformed input is rejected before any remote call happens.
func ParseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("duration cannot be negative: %q", s)
	}

	if h, m, ok := strings.Cut(s, ":"); ok {
		hours, err := strconv.Atoi(h)
		if err != nil || hours < 0 {
			return 0, fmt.Errorf("invalid duration %q: use H:MM", s)
		}
		mins, err := strconv.Atoi(m)
		if err != nil || mins < 0 || mins > 59 || len(m) != 2 {
			return 0, fmt.Errorf("invalid duration %q: minutes must be 00-59", s)
		}
		return float64(hours*60 + mins), nil
	}

	mins, err := strconv.ParseFloat(s, 64)
	if err != nil || mins < 0 {
		return 0, fmt.Errorf("invalid duration %q: use H:MM or minutes", s)
	}
	return mins, nil
}

// FormatClock renders minutes as the editable "H:MM" cell form.
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// WeekRange returns the Monday and Sunday dates of the week containing t,
// as YYYY-MM-DD strings. Used as the default report window.
func WeekRange(t time.Time) (string, string) {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(dateLayout), sunday.Format(dateLayout)
}

// DateOf formats t as YYYY-MM-DD.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}
