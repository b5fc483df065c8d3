package utils

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", MustParseDate("2024-06-01"), MustParseDate("2024-06-01"), true},
		{"same day different hours", time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC), time.Date(2024, 6, 1, 23, 55, 0, 0, time.UTC), true},
		{"adjacent days under 24h apart", time.Date(2024, 6, 1, 23, 55, 0, 0, time.UTC), time.Date(2024, 6, 2, 0, 5, 0, 0, time.UTC), false},
		{"same day-of-month different month", MustParseDate("2024-05-01"), MustParseDate("2024-06-01"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSameMonth(t *testing.T) {
	if !SameMonth(MustParseDate("2024-06-01"), MustParseDate("2024-06-30")) {
		t.Error("expected days in the same month to match")
	}
	if SameMonth(MustParseDate("2023-06-01"), MustParseDate("2024-06-01")) {
		t.Error("same month of a different year must not match")
	}
}

func TestSameYear(t *testing.T) {
	if !SameYear(MustParseDate("2024-01-01"), MustParseDate("2024-12-31")) {
		t.Error("expected dates in the same year to match")
	}
	if SameYear(MustParseDate("2023-12-31"), MustParseDate("2024-01-01")) {
		t.Error("adjacent days across new year must not match")
	}
}

func TestParseISOTime(t *testing.T) {
	got, err := ParseISOTime("2024-06-01T08:15:00Z")
	if err != nil {
		t.Fatalf("ParseISOTime returned error: %v", err)
	}
	want := time.Date(2024, 6, 1, 8, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseISOTime = %v, want %v", got, want)
	}

	if _, err := ParseISOTime(""); err == nil {
		t.Error("expected error for empty string")
	}
	if _, err := ParseISOTime("not-a-time"); err == nil {
		t.Error("expected error for garbage input")
	}
}
