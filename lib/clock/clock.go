package clock

import (
	"time"
)

func Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

// SameDay reports whether both times fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// IsPreviousDay reports whether `prev` falls exactly on the UTC calendar day
// before `now`. A gap of two or more days returns false.
func IsPreviousDay(prev, now time.Time) bool {
	return SameDay(prev.UTC().AddDate(0, 0, 1), now)
}

// StartOfDay truncates a time to midnight UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
