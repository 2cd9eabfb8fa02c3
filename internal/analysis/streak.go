package analysis

import (
	"time"

	"github.com/damie/spotify-insights/internal/dataset"
)

// ListeningStreaks finds the longest run of consecutive listening
// days and the run ending at today. The caller supplies today so the
// result is reproducible; it is truncated to UTC midnight here.
// The earliest maximal streak wins when several share the length.
func ListeningStreaks(ds dataset.Dataset, today time.Time) Streaks {
	dates := ds.ActiveDates()
	if len(dates) == 0 {
		return Streaks{}
	}

	longest, current := 1, 1
	bestStart, bestEnd := dates[0], dates[0]
	streakStart := dates[0]

	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			current++
			if current > longest {
				longest = current
				bestStart = streakStart
				bestEnd = dates[i]
			}
		} else {
			current = 1
			streakStart = dates[i]
		}
	}

	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	currentStreak := 0
	for i := len(dates) - 1; i >= 0; i-- {
		expected := today.AddDate(0, 0, -currentStreak)
		if dates[i].Equal(expected) {
			currentStreak++
		} else {
			break
		}
	}

	return Streaks{
		LongestStreak:   longest,
		CurrentStreak:   currentStreak,
		BestStreakStart: bestStart.Format("2006-01-02"),
		BestStreakEnd:   bestEnd.Format("2006-01-02"),
	}
}
