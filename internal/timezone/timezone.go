package timezone

import "time"

// The salon runs single-location; every date and clock string in the
// store is interpreted in this one zone.
const DefaultTimezone = "Asia/Kolkata"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today is the current calendar day as a stored date string.
func Today() string {
	return Now().Format("2006-01-02")
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location())
}

// ParseClock validates a "15:04" value.
func ParseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}
