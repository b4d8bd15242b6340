package timeutil_test

import (
	"testing"
	"time"

	"github.com/zolten95/project-man/internal/timeutil"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0:00", 0, false},
		{"0:01", 1, false},
		{"1:30", 90, false},
		{"10:05", 605, false},
		{"90", 90, false},
		{"0.5", 0.5, false},
		{" 2:15 ", 135, false},
		{"", 0, true},
		{"-1:30", 0, true},
		{"-5", 0, true},
		{"1:60", 0, true},
		{"1:5", 0, true},
		{"abc", 0, true},
		{"1:ab", 0, true},
	}
	for _, tt := range tests {
		got, err := timeutil.ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0:00"},
		{1, "0:01"},
		{59, "0:59"},
		{60, "1:00"},
		{90, "1:30"},
		{605, "10:05"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := timeutil.FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-01-04", true},
		{"2024-01-07", true},
		{"2023-12-31", false},
		{"2024-01-08", false},
	}
	for _, tt := range tests {
		if got := timeutil.InRange(tt.date, "2024-01-01", "2024-01-07"); got != tt.want {
			t.Errorf("InRange(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !timeutil.ValidDate("2024-02-29") {
		t.Error("ValidDate: 2024-02-29 is a valid leap day")
	}
	if timeutil.ValidDate("2023-02-29") {
		t.Error("ValidDate: 2023-02-29 is not a real date")
	}
	if timeutil.ValidDate("01-01-2024") {
		t.Error("ValidDate: expected YYYY-MM-DD only")
	}
}

func TestWeekRange(t *testing.T) {
	// 2024-01-03 is a Wednesday.
	wed := time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)
	start, end := timeutil.WeekRange(wed)
	if start != "2024-01-01" || end != "2024-01-07" {
		t.Errorf("WeekRange(wed) = %q..%q, want 2024-01-01..2024-01-07", start, end)
	}

	// Sunday belongs to the week that started the previous Monday.
	sun := time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC)
	start, end = timeutil.WeekRange(sun)
	if start != "2024-01-01" || end != "2024-01-07" {
		t.Errorf("WeekRange(sun) = %q..%q, want 2024-01-01..2024-01-07", start, end)
	}
}
