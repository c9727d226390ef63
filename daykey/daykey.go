// daykey/daykey.go - Calendar day keys for the daily challenge engine
//
// All "one per day" logic in the app (one challenge per day, one scored
// submission per user per day) is keyed on a DayKey: a calendar date with no
// time component, always computed in UTC. Using a single fixed reference
// timezone keeps the key stable even when a client crosses local midnight
// between fetching the challenge and submitting an answer.
package daykey

import "time"

// Layout is the wire/storage format of a day key.
const Layout = "2006-01-02"

// Key is a calendar date formatted as "YYYY-MM-DD" (UTC).
type Key string

// Of converts an instant to its UTC day key.
func Of(t time.Time) Key {
	return Key(t.UTC().Format(Layout))
}

// Today returns the current UTC day key.
func Today() Key {
	return Of(time.Now())
}

func (k Key) String() string {
	return string(k)
}

// Time parses the key back into a UTC midnight instant.
// Returns the zero time for malformed keys.
func (k Key) Time() time.Time {
	t, err := time.ParseInLocation(Layout, string(k), time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// IsSame reports whether both keys name the same calendar day.
func IsSame(a, b Key) bool {
	return a != "" && a == b
}

// IsNext reports whether curr is exactly one calendar day after prev,
// across month and year boundaries.
func IsNext(prev, curr Key) bool {
	pt := prev.Time()
	ct := curr.Time()
	if pt.IsZero() || ct.IsZero() {
		return false
	}
	return pt.AddDate(0, 0, 1).Equal(ct)
}
