package clock

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Error("expected same day for times within one UTC day")
	}
	if SameDay(night, nextDay) {
		t.Error("expected different days across midnight")
	}
}

func TestSameDayConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	// 01:30 local on the 16th is 22:30 UTC on the 15th
	local := time.Date(2024, 3, 16, 1, 30, 0, 0, loc)
	utc := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	if !SameDay(local, utc) {
		t.Error("comparison must truncate in UTC, not the local zone")
	}
}

func TestIsPreviousDay(t *testing.T) {
	now := time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		prev time.Time
		want bool
	}{
		{"yesterday late", time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC), true},
		{"yesterday early", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"same day", time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC), false},
		{"two days ago", time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := IsPreviousDay(tc.prev, now); got != tc.want {
			t.Errorf("%s: IsPreviousDay = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 16, 17, 45, 12, 99, time.UTC)
	got := StartOfDay(in)
	want := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
