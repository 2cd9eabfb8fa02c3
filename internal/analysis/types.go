package analysis

import "time"

// OverviewStats are the headline totals for the whole dataset.
type OverviewStats struct {
	TotalHours     float64
	TotalDays      float64
	TotalStreams   int
	UniqueTracks   int
	UniqueArtists  int
	UniqueAlbums   int
	DateRangeStart string
	DateRangeEnd   string
	MostActiveYear int
}

// TopItem is one row of a ranking by total minutes played.
type TopItem struct {
	Name         string
	TotalMinutes float64
}

// Dimensions accepted by TopItems.
const (
	DimArtist = "artist"
	DimTrack  = "track"
	DimAlbum  = "album"
)

// Heatmap holds summed minutes per weekday and hour. Rows run
// Monday through Sunday, columns are hours 0-23.
type Heatmap struct {
	Days    [7]string
	Minutes [7][24]float64
}

// SkipStat is one artist's skip behavior. Artists with fewer than
// MinSkipStreams streams are excluded as statistical noise.
type SkipStat struct {
	Artist       string
	TotalStreams int
	TotalSkips   int
	SkipRate     float64
}

// PlatformStat summarizes listening on one platform category.
type PlatformStat struct {
	Platform     string
	TotalMinutes float64
	TotalStreams int
}

// YearTotal is total minutes listened in one year.
type YearTotal struct {
	Year         int
	TotalMinutes float64
}

// MonthTotal is total minutes listened in one month of a year.
type MonthTotal struct {
	Month        time.Month
	MonthName    string
	TotalMinutes float64
}

// LoyaltyEntry is the top artist of one year.
type LoyaltyEntry struct {
	Year         int
	Artist       string
	TotalMinutes float64
}

// BiggestDay is the single calendar date with the most listening.
type BiggestDay struct {
	Date         string
	TotalMinutes float64
	TotalHours   float64
	TopTracks    []string
	TotalStreams int
}

// Personality is a composite summary of listening habits.
type Personality struct {
	MostLoyalArtist string
	NightOwlScore   float64
	PeakHour        int
	PeakHourLabel   string
	MostActiveMonth string
	OverallSkipRate float64
	ListeningStyle  string
}

// Listening style labels.
const (
	StyleNightOwl  = "night owl"
	StyleEarlyBird = "early bird"
	StyleDaytime   = "daytime listener"
)

// Streaks holds the longest and current consecutive-day runs.
// BestStreakStart/End are empty when the dataset is empty.
type Streaks struct {
	LongestStreak   int
	CurrentStreak   int
	BestStreakStart string
	BestStreakEnd   string
}

// TTestResult is the weekend vs. weekday comparison. Valid is false
// when the test could not be run (an empty group or no degrees of
// freedom), in which case Statistic and PValue carry no meaning.
type TTestResult struct {
	WeekdayMeanMinutes float64
	WeekendMeanMinutes float64
	Statistic          float64
	PValue             float64
	Significant        bool
	Valid              bool
	Interpretation     string
}

// Time-of-day period names.
const (
	PeriodMorning   = "Morning"
	PeriodAfternoon = "Afternoon"
	PeriodEvening   = "Evening"
	PeriodNight     = "Night"
)

// PeriodOrder is the fixed bucket order used for iteration and
// tie-breaking.
var PeriodOrder = []string{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}

// AnovaResult is the one-way ANOVA across time-of-day buckets.
// PeriodAvgs only contains buckets that had at least one observation.
// Valid is false when fewer than two buckets had enough data to test.
type AnovaResult struct {
	PeriodAvgs     map[string]float64
	DominantPeriod string
	Statistic      float64
	PValue         float64
	Significant    bool
	Valid          bool
	Interpretation string
}

// ListeningAge summarizes how old the music is, weighted by minutes
// played, over the subset of events whose track has a known release
// year. OK is false when no event is covered.
type ListeningAge struct {
	AvgSongAgeYears float64
	AvgReleaseYear  float64
	OldestTrack     string
	OldestArtist    string
	OldestYear      int
	NewestTrack     string
	NewestArtist    string
	NewestYear      int
	OK              bool
}
