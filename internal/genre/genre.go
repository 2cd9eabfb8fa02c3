// Package genre merges catalog genre data with a manual fallback map
// and distributes listening minutes across genre tags.
package genre

import (
	"sort"
	"strings"

	"github.com/damie/spotify-insights/internal/dataset"
)

// GenreTime is total minutes attributed to one genre tag.
type GenreTime struct {
	Genre        string
	TotalMinutes float64
}

// ArtistGenres is one artist with their tags joined for display.
type ArtistGenres struct {
	Artist       string
	TotalMinutes float64
	Genres       string
}

// Merge combines fetched genre data with the fallback map. Fetched
// non-empty lists win; empty ones fall back to the manual table; an
// artist in neither maps to an empty list. Fallback-only artists are
// included so the merged map is a superset of both inputs.
func Merge(fetched map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(fetched)+len(FallbackMap))
	for artist, genres := range fetched {
		switch {
		case len(genres) > 0:
			merged[artist] = genres
		case len(FallbackMap[artist]) > 0:
			merged[artist] = FallbackMap[artist]
		default:
			merged[artist] = nil
		}
	}
	for artist, genres := range FallbackMap {
		if _, present := merged[artist]; !present {
			merged[artist] = genres
		}
	}
	return merged
}

// ListeningTime distributes every event's minutes equally across its
// artist's genre tags and returns the top n genres by total minutes.
// Events whose artist has no tags contribute nothing.
func ListeningTime(ds dataset.Dataset, genres map[string][]string, n int) []GenreTime {
	totals := make(map[string]float64)
	for _, e := range ds {
		tags := genres[e.Artist]
		if len(tags) == 0 {
			continue
		}
		share := e.Minutes / float64(len(tags))
		for _, tag := range tags {
			totals[tag] += share
		}
	}

	out := make([]GenreTime, 0, len(totals))
	for tag, minutes := range totals {
		out = append(out, GenreTime{Genre: tag, TotalMinutes: minutes})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMinutes != out[j].TotalMinutes {
			return out[i].TotalMinutes > out[j].TotalMinutes
		}
		return out[i].Genre < out[j].Genre
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopNigerianArtists ranks the Nigerian artists in the dataset by
// total minutes played. Untagged artists are labeled "untagged".
func TopNigerianArtists(ds dataset.Dataset, genres map[string][]string, n int) []ArtistGenres {
	totals := make(map[string]float64)
	for _, e := range ds {
		if NigerianArtists[e.Artist] {
			totals[e.Artist] += e.Minutes
		}
	}

	out := make([]ArtistGenres, 0, len(totals))
	for artist, minutes := range totals {
		tags := strings.Join(genres[artist], ", ")
		if tags == "" {
			tags = "untagged"
		}
		out = append(out, ArtistGenres{Artist: artist, TotalMinutes: minutes, Genres: tags})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMinutes != out[j].TotalMinutes {
			return out[i].TotalMinutes > out[j].TotalMinutes
		}
		return out[i].Artist < out[j].Artist
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
