package dataset

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Normalize cleans raw export records into the canonical table.
// Records with an unparseable timestamp or a null track or artist name
// are dropped; they are expected noise (podcasts, local files) rather
// than errors. The result is sorted ascending by timestamp.
func Normalize(records []Raw) Dataset {
	ds := make(Dataset, 0, len(records))
	for _, r := range records {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			continue
		}
		if r.Track == nil || r.Artist == nil {
			continue
		}
		ts = ts.UTC()

		e := Event{
			Timestamp: ts,
			Track:     *r.Track,
			Artist:    *r.Artist,
			Minutes:   round2(float64(r.MsPlayed) / 60000),
			Platform:  CategorizePlatform(r.Platform),
			Date:      time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Year:      ts.Year(),
			Month:     ts.Month(),
			MonthName: ts.Month().String(),
			Weekday:   ts.Weekday(),
			Hour:      ts.Hour(),
		}
		if r.Album != nil {
			e.Album = *r.Album
		}
		if r.TrackURI != nil {
			e.TrackURI = *r.TrackURI
		}
		if r.Skipped != nil {
			e.Skipped = *r.Skipped
		}
		if r.Shuffle != nil {
			e.Shuffle = *r.Shuffle
		}
		if r.ReasonStart != nil {
			e.ReasonStart = *r.ReasonStart
		}
		if r.ReasonEnd != nil {
			e.ReasonEnd = *r.ReasonEnd
		}
		ds = append(ds, e)
	}

	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].Timestamp.Before(ds[j].Timestamp)
	})
	return ds
}

var platformFamilies = []struct {
	category string
	keywords []string
}{
	{PlatformMobile, []string{"android", "ios", "iphone", "mobile"}},
	{PlatformDesktop, []string{"windows", "mac", "linux", "desktop"}},
	{PlatformWeb, []string{"web"}},
	{PlatformSmartDevice, []string{"cast", "tv", "speaker"}},
}

// CategorizePlatform maps a raw platform string onto one of the fixed
// categories. Families are checked in order, so a string matching
// several takes the first. A missing value is "unknown".
func CategorizePlatform(platform *string) string {
	if platform == nil {
		return PlatformUnknown
	}
	p := strings.ToLower(strings.TrimSpace(*platform))
	for _, family := range platformFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(p, kw) {
				return family.category
			}
		}
	}
	return PlatformOther
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
