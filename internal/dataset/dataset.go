// Package dataset turns raw Spotify extended streaming history exports
// into the canonical event table that every analysis operates on.
package dataset

import (
	"sort"
	"time"
)

// Platform categories derived from the free-text platform string.
const (
	PlatformMobile      = "mobile"
	PlatformDesktop     = "desktop"
	PlatformWeb         = "web"
	PlatformSmartDevice = "smart device"
	PlatformOther       = "other"
	PlatformUnknown     = "unknown"
)

// Event is one cleaned play record. The calendar fields are derived
// once at normalization time from the UTC timestamp.
type Event struct {
	Timestamp time.Time
	Track     string
	Artist    string
	Album     string
	TrackURI  string

	// Minutes of playback, ms_played/60000 rounded to 2 decimals.
	Minutes float64
	Skipped bool
	Shuffle bool

	Platform    string
	ReasonStart string
	ReasonEnd   string

	Date      time.Time // UTC midnight
	Year      int
	Month     time.Month
	MonthName string
	Weekday   time.Weekday
	Hour      int
}

// Dataset is the canonical table, sorted ascending by timestamp.
type Dataset []Event

// FilterYear returns the events from the given year. A zero year
// returns the dataset unchanged.
func (ds Dataset) FilterYear(year int) Dataset {
	if year == 0 {
		return ds
	}
	var out Dataset
	for _, e := range ds {
		if e.Year == year {
			out = append(out, e)
		}
	}
	return out
}

// ActiveDates returns the distinct calendar dates with at least one
// event, sorted ascending.
func (ds Dataset) ActiveDates() []time.Time {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, e := range ds {
		if !seen[e.Date] {
			seen[e.Date] = true
			dates = append(dates, e.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Years returns the distinct years present, ascending.
func (ds Dataset) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, e := range ds {
		if !seen[e.Year] {
			seen[e.Year] = true
			years = append(years, e.Year)
		}
	}
	sort.Ints(years)
	return years
}

// TrackURIs returns the distinct non-empty track URIs.
func (ds Dataset) TrackURIs() []string {
	seen := make(map[string]bool)
	var uris []string
	for _, e := range ds {
		if e.TrackURI != "" && !seen[e.TrackURI] {
			seen[e.TrackURI] = true
			uris = append(uris, e.TrackURI)
		}
	}
	sort.Strings(uris)
	return uris
}

// Artists returns the distinct artist names.
func (ds Dataset) Artists() []string {
	seen := make(map[string]bool)
	var artists []string
	for _, e := range ds {
		if !seen[e.Artist] {
			seen[e.Artist] = true
			artists = append(artists, e.Artist)
		}
	}
	sort.Strings(artists)
	return artists
}
