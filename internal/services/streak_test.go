package services

import (
	"testing"
	"time"
)

func day(value string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func dayPtr(value string) *time.Time {
	parsed := day(value)
	return &parsed
}

func TestComputeNextStreak(t *testing.T) {
	tests := []struct {
		name          string
		lastStudyDate *time.Time
		currentStreak int
		today         time.Time
		want          int
		wantChanged   bool
	}{
		{
			name:          "no prior study date starts at one",
			lastStudyDate: nil,
			currentStreak: 0,
			today:         day("2024-01-06"),
			want:          1,
			wantChanged:   true,
		},
		{
			name:          "same day is a no-op",
			lastStudyDate: dayPtr("2024-01-06"),
			currentStreak: 4,
			today:         day("2024-01-06"),
			want:          4,
			wantChanged:   false,
		},
		{
			name:          "consecutive day increments",
			lastStudyDate: dayPtr("2024-01-05"),
			currentStreak: 3,
			today:         day("2024-01-06"),
			want:          4,
			wantChanged:   true,
		},
		{
			name:          "two day gap resets",
			lastStudyDate: dayPtr("2024-01-05"),
			currentStreak: 3,
			today:         day("2024-01-07"),
			want:          1,
			wantChanged:   true,
		},
		{
			name:          "long gap resets",
			lastStudyDate: dayPtr("2024-01-05"),
			currentStreak: 3,
			today:         day("2024-01-10"),
			want:          1,
			wantChanged:   true,
		},
		{
			name:          "month boundary still counts as consecutive",
			lastStudyDate: dayPtr("2024-01-31"),
			currentStreak: 9,
			today:         day("2024-02-01"),
			want:          10,
			wantChanged:   true,
		},
		{
			name:          "today before last study date resets",
			lastStudyDate: dayPtr("2024-01-10"),
			currentStreak: 5,
			today:         day("2024-01-08"),
			want:          1,
			wantChanged:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ComputeNextStreak(tt.lastStudyDate, tt.currentStreak, tt.today, time.UTC)
			if got != tt.want || changed != tt.wantChanged {
				t.Fatalf("ComputeNextStreak() = (%d, %v), want (%d, %v)", got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestComputeNextStreakIgnoresTimeOfDay(t *testing.T) {
	lastEvening := time.Date(2024, 1, 5, 23, 50, 0, 0, time.UTC)
	todayMorning := time.Date(2024, 1, 6, 0, 5, 0, 0, time.UTC)

	got, changed := ComputeNextStreak(&lastEvening, 3, todayMorning, time.UTC)
	if got != 4 || !changed {
		t.Fatalf("expected consecutive-day increment across midnight, got (%d, %v)", got, changed)
	}
}

func TestComputeNextStreakComparesCalendarDaysInLocation(t *testing.T) {
	location, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 20:00 UTC on Jan 5 is already Jan 6 in Kolkata; with a last study
	// day of Jan 6 local this must be treated as "already logged today".
	last := time.Date(2024, 1, 6, 0, 0, 0, 0, location)
	now := time.Date(2024, 1, 5, 20, 0, 0, 0, time.UTC)

	got, changed := ComputeNextStreak(&last, 2, now, location)
	if got != 2 || changed {
		t.Fatalf("expected same-day no-op in local calendar, got (%d, %v)", got, changed)
	}
}
