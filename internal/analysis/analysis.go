// Package analysis computes descriptive and inferential statistics
// over a canonical play-event table. Every function is a pure pass
// over the dataset and returns well-defined zero values when the
// table is empty.
package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/damie/spotify-insights/internal/dataset"
)

// MinSkipStreams is the floor below which an artist is excluded from
// skip analysis.
const MinSkipStreams = 20

// Overview computes the headline totals.
func Overview(ds dataset.Dataset) OverviewStats {
	if len(ds) == 0 {
		return OverviewStats{}
	}

	var totalMinutes float64
	tracks := make(map[string]bool)
	artists := make(map[string]bool)
	albums := make(map[string]bool)
	yearCounts := make(map[int]int)
	minTs, maxTs := ds[0].Timestamp, ds[0].Timestamp

	for _, e := range ds {
		totalMinutes += e.Minutes
		tracks[e.Track] = true
		artists[e.Artist] = true
		albums[e.Album] = true
		yearCounts[e.Year]++
		if e.Timestamp.Before(minTs) {
			minTs = e.Timestamp
		}
		if e.Timestamp.After(maxTs) {
			maxTs = e.Timestamp
		}
	}

	mostActiveYear := 0
	best := -1
	for year, count := range yearCounts {
		if count > best || (count == best && year < mostActiveYear) {
			best = count
			mostActiveYear = year
		}
	}

	return OverviewStats{
		TotalHours:     round1(totalMinutes / 60),
		TotalDays:      round1(totalMinutes / 1440),
		TotalStreams:   len(ds),
		UniqueTracks:   len(tracks),
		UniqueArtists:  len(artists),
		UniqueAlbums:   len(albums),
		DateRangeStart: minTs.Format("2006-01-02"),
		DateRangeEnd:   maxTs.Format("2006-01-02"),
		MostActiveYear: mostActiveYear,
	}
}

// TopItems ranks artists, tracks, or albums by total minutes played.
// A non-zero year restricts to that year. Ties are broken by name
// ascending so rankings are deterministic.
func TopItems(ds dataset.Dataset, dim string, n int, year int) ([]TopItem, error) {
	key, err := dimensionKey(dim)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, e := range ds.FilterYear(year) {
		totals[key(e)] += e.Minutes
	}

	items := make([]TopItem, 0, len(totals))
	for name, minutes := range totals {
		items = append(items, TopItem{Name: name, TotalMinutes: round2(minutes)})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalMinutes != items[j].TotalMinutes {
			return items[i].TotalMinutes > items[j].TotalMinutes
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func dimensionKey(dim string) (func(dataset.Event) string, error) {
	switch dim {
	case DimArtist:
		return func(e dataset.Event) string { return e.Artist }, nil
	case DimTrack:
		return func(e dataset.Event) string { return e.Track }, nil
	case DimAlbum:
		return func(e dataset.Event) string { return e.Album }, nil
	}
	return nil, fmt.Errorf("unknown dimension %q, expected one of artist, track, album", dim)
}

// HourlyHeatmap sums minutes into a weekday-by-hour matrix, Monday
// first, hours 0-23. Cells with no listening stay zero.
func HourlyHeatmap(ds dataset.Dataset) Heatmap {
	var hm Heatmap
	for i := 0; i < 7; i++ {
		hm.Days[i] = time.Weekday((i + 1) % 7).String()
	}
	for _, e := range ds {
		hm.Minutes[mondayIndex(e.Weekday)][e.Hour] += e.Minutes
	}
	return hm
}

// mondayIndex maps time.Weekday (Sunday=0) to a Monday-first row.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// SkipAnalysis finds the most skipped artists by skip rate, excluding
// artists with fewer than MinSkipStreams streams. The result is empty
// (not an error) when no artist clears the floor.
func SkipAnalysis(ds dataset.Dataset, n int) []SkipStat {
	type counts struct {
		streams int
		skips   int
	}
	byArtist := make(map[string]*counts)
	for _, e := range ds {
		c := byArtist[e.Artist]
		if c == nil {
			c = &counts{}
			byArtist[e.Artist] = c
		}
		c.streams++
		if e.Skipped {
			c.skips++
		}
	}

	var stats []SkipStat
	for artist, c := range byArtist {
		if c.streams < MinSkipStreams {
			continue
		}
		stats = append(stats, SkipStat{
			Artist:       artist,
			TotalStreams: c.streams,
			TotalSkips:   c.skips,
			SkipRate:     round1(float64(c.skips) / float64(c.streams) * 100),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].SkipRate != stats[j].SkipRate {
			return stats[i].SkipRate > stats[j].SkipRate
		}
		return stats[i].Artist < stats[j].Artist
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// PlatformBreakdown sums minutes and streams per platform category,
// sorted by minutes descending.
func PlatformBreakdown(ds dataset.Dataset) []PlatformStat {
	type totals struct {
		minutes float64
		streams int
	}
	byPlatform := make(map[string]*totals)
	for _, e := range ds {
		t := byPlatform[e.Platform]
		if t == nil {
			t = &totals{}
			byPlatform[e.Platform] = t
		}
		t.minutes += e.Minutes
		t.streams++
	}

	var stats []PlatformStat
	for platform, t := range byPlatform {
		stats = append(stats, PlatformStat{
			Platform:     platform,
			TotalMinutes: round2(t.minutes),
			TotalStreams: t.streams,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalMinutes != stats[j].TotalMinutes {
			return stats[i].TotalMinutes > stats[j].TotalMinutes
		}
		return stats[i].Platform < stats[j].Platform
	})
	return stats
}

// YearlyTrend returns total minutes per year, ascending by year.
func YearlyTrend(ds dataset.Dataset) []YearTotal {
	totals := make(map[int]float64)
	for _, e := range ds {
		totals[e.Year] += e.Minutes
	}
	var trend []YearTotal
	for year, minutes := range totals {
		trend = append(trend, YearTotal{Year: year, TotalMinutes: round2(minutes)})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Year < trend[j].Year })
	return trend
}

// MonthlyBreakdown returns total minutes per month of the given year,
// in calendar order January through December. Months without
// listening are omitted.
func MonthlyBreakdown(ds dataset.Dataset, year int) []MonthTotal {
	totals := make(map[time.Month]float64)
	for _, e := range ds {
		if e.Year == year {
			totals[e.Month] += e.Minutes
		}
	}
	var months []MonthTotal
	for m := time.January; m <= time.December; m++ {
		if minutes, ok := totals[m]; ok {
			months = append(months, MonthTotal{
				Month:        m,
				MonthName:    m.String(),
				TotalMinutes: round2(minutes),
			})
		}
	}
	return months
}

// ArtistLoyaltyTimeline returns the top artist per year by minutes,
// ascending by year. Ties go to the name that sorts first.
func ArtistLoyaltyTimeline(ds dataset.Dataset) []LoyaltyEntry {
	type yearArtist struct {
		year   int
		artist string
	}
	totals := make(map[yearArtist]float64)
	for _, e := range ds {
		totals[yearArtist{e.Year, e.Artist}] += e.Minutes
	}

	best := make(map[int]LoyaltyEntry)
	for ya, minutes := range totals {
		cur, ok := best[ya.year]
		if !ok || minutes > cur.TotalMinutes ||
			(minutes == cur.TotalMinutes && ya.artist < cur.Artist) {
			best[ya.year] = LoyaltyEntry{Year: ya.year, Artist: ya.artist, TotalMinutes: minutes}
		}
	}

	var timeline []LoyaltyEntry
	for _, entry := range best {
		entry.TotalMinutes = round2(entry.TotalMinutes)
		timeline = append(timeline, entry)
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Year < timeline[j].Year })
	return timeline
}

// BiggestListeningDay finds the calendar date with the most minutes
// and the top 3 tracks played that day.
func BiggestListeningDay(ds dataset.Dataset) BiggestDay {
	if len(ds) == 0 {
		return BiggestDay{}
	}

	daily := make(map[time.Time]float64)
	for _, e := range ds {
		daily[e.Date] += e.Minutes
	}

	var bestDate time.Time
	bestMinutes := math.Inf(-1)
	for date, minutes := range daily {
		if minutes > bestMinutes || (minutes == bestMinutes && date.Before(bestDate)) {
			bestMinutes = minutes
			bestDate = date
		}
	}

	trackMinutes := make(map[string]float64)
	streams := 0
	for _, e := range ds {
		if e.Date.Equal(bestDate) {
			trackMinutes[e.Track] += e.Minutes
			streams++
		}
	}
	var tracks []TopItem
	for track, minutes := range trackMinutes {
		tracks = append(tracks, TopItem{Name: track, TotalMinutes: minutes})
	}
	sort.Slice(tracks, func(i, j int) bool {
		if tracks[i].TotalMinutes != tracks[j].TotalMinutes {
			return tracks[i].TotalMinutes > tracks[j].TotalMinutes
		}
		return tracks[i].Name < tracks[j].Name
	})
	if len(tracks) > 3 {
		tracks = tracks[:3]
	}
	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = t.Name
	}

	return BiggestDay{
		Date:         bestDate.Format("2006-01-02"),
		TotalMinutes: round1(bestMinutes),
		TotalHours:   round1(bestMinutes / 60),
		TopTracks:    names,
		TotalStreams: streams,
	}
}

// GetPersonality builds the composite listening-habit summary.
func GetPersonality(ds dataset.Dataset) Personality {
	if len(ds) == 0 {
		return Personality{}
	}

	artistCounts := make(map[string]int)
	hourCounts := make(map[int]int)
	monthCounts := make(map[time.Month]int)
	nightEvents := 0
	skips := 0
	for _, e := range ds {
		artistCounts[e.Artist]++
		hourCounts[e.Hour]++
		monthCounts[e.Month]++
		if e.Hour >= 22 || e.Hour < 4 {
			nightEvents++
		}
		if e.Skipped {
			skips++
		}
	}

	topArtist := ""
	best := -1
	for artist, count := range artistCounts {
		if count > best || (count == best && artist < topArtist) {
			best = count
			topArtist = artist
		}
	}

	peakHour := 0
	best = -1
	for hour := 0; hour < 24; hour++ {
		if hourCounts[hour] > best {
			best = hourCounts[hour]
			peakHour = hour
		}
	}

	peakMonth := time.January
	best = -1
	for m := time.January; m <= time.December; m++ {
		if monthCounts[m] > best {
			best = monthCounts[m]
			peakMonth = m
		}
	}

	nightOwlScore := round1(float64(nightEvents) / float64(len(ds)) * 100)

	style := StyleDaytime
	switch {
	case nightOwlScore > 20:
		style = StyleNightOwl
	case peakHour < 10:
		style = StyleEarlyBird
	}

	return Personality{
		MostLoyalArtist: topArtist,
		NightOwlScore:   nightOwlScore,
		PeakHour:        peakHour,
		PeakHourLabel:   fmt.Sprintf("%d:00 - %d:00", peakHour, peakHour+1),
		MostActiveMonth: peakMonth.String(),
		OverallSkipRate: round1(float64(skips) / float64(len(ds)) * 100),
		ListeningStyle:  style,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
