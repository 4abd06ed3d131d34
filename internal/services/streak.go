package services

import "time"

// ComputeNextStreak derives the streak value a student should hold after
// studying on today. It is a pure function of its inputs:
//
//   - last study day == today: the streak is unchanged and changed is
//     false, signalling the caller to skip persistence entirely.
//   - last study day == yesterday: consecutive day, streak + 1.
//   - anything else (gap of two or more days, or no prior study day):
//     the streak restarts at 1.
//
// Comparison happens at calendar-day granularity in location, never on
// raw timestamps.
func ComputeNextStreak(lastStudyDate *time.Time, currentStreak int, today time.Time, location *time.Location) (int, bool) {
	day := DateAtLocation(today, location)

	if lastStudyDate != nil {
		last := DateAtLocation(*lastStudyDate, location)
		if last.Equal(day) {
			return currentStreak, false
		}
		if last.AddDate(0, 0, 1).Equal(day) {
			return currentStreak + 1, true
		}
	}

	return 1, true
}
