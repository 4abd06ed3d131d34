package services

import "time"

// DateAtLocation truncates a timestamp to midnight of its calendar day
// in the given location. All day comparisons in this package go through
// it so wall-clock time and timezone offsets never leak into streak or
// upsert decisions.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) interval covering the
// calendar day of value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a time.Time, b time.Time, location *time.Location) bool {
	return DateAtLocation(a, location).Equal(DateAtLocation(b, location))
}
