package analysis

import (
	"time"

	"github.com/damie/spotify-insights/internal/dataset"
)

// GetListeningAge computes the minutes-weighted average age of the
// music listened to, given a track URI to release year mapping.
// Events whose URI has no known year are excluded from the averaging
// entirely, never defaulted. OK is false when the mapping covers no
// event or no minutes were played on covered tracks.
func GetListeningAge(ds dataset.Dataset, years map[string]int, now time.Time) ListeningAge {
	currentYear := now.Year()

	var weightedAge, totalMinutes float64
	age := ListeningAge{}
	for _, e := range ds {
		year, known := years[e.TrackURI]
		if !known {
			continue
		}
		weightedAge += float64(currentYear-year) * e.Minutes
		totalMinutes += e.Minutes

		if !age.OK || year < age.OldestYear {
			age.OldestTrack = e.Track
			age.OldestArtist = e.Artist
			age.OldestYear = year
		}
		if !age.OK || year > age.NewestYear {
			age.NewestTrack = e.Track
			age.NewestArtist = e.Artist
			age.NewestYear = year
		}
		age.OK = true
	}

	if !age.OK || totalMinutes == 0 {
		return ListeningAge{}
	}

	avgAge := weightedAge / totalMinutes
	age.AvgSongAgeYears = round1(avgAge)
	age.AvgReleaseYear = round1(float64(currentYear) - avgAge)
	return age
}
