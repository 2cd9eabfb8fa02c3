package genre

import (
	"testing"
	"time"

	"github.com/damie/spotify-insights/internal/dataset"
)

func play(artist string, minutes float64) dataset.Event {
	return dataset.Event{
		Timestamp: time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC),
		Artist:    artist,
		Track:     "Track",
		Minutes:   minutes,
	}
}

func TestMergeFetchedWins(t *testing.T) {
	fetched := map[string][]string{"Wizkid": {"alté"}}

	merged := Merge(fetched)
	if len(merged["Wizkid"]) != 1 || merged["Wizkid"][0] != "alté" {
		t.Fatalf("non-empty fetched tags should win: %v", merged["Wizkid"])
	}
}

func TestMergeEmptyFetchedFallsBack(t *testing.T) {
	fetched := map[string][]string{"Wizkid": nil}

	merged := Merge(fetched)
	want := FallbackMap["Wizkid"]
	if len(want) == 0 {
		t.Fatalf("fixture assumes Wizkid is in the fallback table")
	}
	if len(merged["Wizkid"]) != len(want) {
		t.Fatalf("empty fetched tags should fall back, got %v", merged["Wizkid"])
	}
}

func TestMergeIncludesFallbackOnlyArtists(t *testing.T) {
	merged := Merge(map[string][]string{})
	if len(merged) != len(FallbackMap) {
		t.Fatalf("merged map should cover the whole fallback table: %d vs %d",
			len(merged), len(FallbackMap))
	}
}

func TestMergeUnknownArtist(t *testing.T) {
	merged := Merge(map[string][]string{"Nobody At All": nil})
	if len(merged["Nobody At All"]) != 0 {
		t.Fatalf("unknown artist should map to no tags, got %v", merged["Nobody At All"])
	}
}

func TestListeningTimeSplitsAcrossTags(t *testing.T) {
	ds := dataset.Dataset{play("Wizkid", 10)}
	genres := map[string][]string{"Wizkid": {"afrobeats", "afropop"}}

	got := ListeningTime(ds, genres, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 genres, got %+v", got)
	}
	for _, g := range got {
		if g.TotalMinutes != 5 {
			t.Fatalf("10 minutes over 2 tags should split 5/5, got %+v", got)
		}
	}
}

func TestListeningTimeSkipsUntagged(t *testing.T) {
	ds := dataset.Dataset{
		play("Wizkid", 10),
		play("Nobody At All", 100),
	}
	genres := map[string][]string{"Wizkid": {"afrobeats"}}

	got := ListeningTime(ds, genres, 10)
	if len(got) != 1 || got[0].Genre != "afrobeats" || got[0].TotalMinutes != 10 {
		t.Fatalf("untagged artists should contribute nothing: %+v", got)
	}
}

func TestListeningTimeTopN(t *testing.T) {
	ds := dataset.Dataset{
		play("A", 30),
		play("B", 20),
		play("C", 10),
	}
	genres := map[string][]string{
		"A": {"g1"},
		"B": {"g2"},
		"C": {"g3"},
	}

	got := ListeningTime(ds, genres, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Genre != "g1" || got[1].Genre != "g2" {
		t.Fatalf("rows should be sorted by minutes descending: %+v", got)
	}
}

func TestTopNigerianArtists(t *testing.T) {
	ds := dataset.Dataset{
		play("Wizkid", 10),
		play("Burna Boy", 30),
		play("Taylor Swift", 500),
	}
	genres := map[string][]string{"Burna Boy": {"afro-fusion"}}

	got := TopNigerianArtists(ds, genres, 10)
	if len(got) != 2 {
		t.Fatalf("only Nigerian artists should appear, got %+v", got)
	}
	if got[0].Artist != "Burna Boy" || got[0].Genres != "afro-fusion" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].Artist != "Wizkid" || got[1].Genres != "untagged" {
		t.Fatalf("artists without tags should be labeled untagged: %+v", got[1])
	}
}
