package store

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFreshStoreIsEmpty(t *testing.T) {
	s := setupTestStore(t)

	years, err := s.TrackYears()
	if err != nil {
		t.Fatalf("TrackYears: %v", err)
	}
	if len(years) != 0 {
		t.Fatalf("fresh store should have no track years, got %v", years)
	}

	genres, err := s.ArtistGenres()
	if err != nil {
		t.Fatalf("ArtistGenres: %v", err)
	}
	if len(genres) != 0 {
		t.Fatalf("fresh store should have no genres, got %v", genres)
	}
}

func TestTrackYearsRoundtrip(t *testing.T) {
	s := setupTestStore(t)

	want := map[string]int{
		"spotify:track:a": 1976,
		"spotify:track:b": 2022,
	}
	if err := s.SaveTrackYears(want); err != nil {
		t.Fatalf("SaveTrackYears: %v", err)
	}

	got, err := s.TrackYears()
	if err != nil {
		t.Fatalf("TrackYears: %v", err)
	}
	if len(got) != 2 || got["spotify:track:a"] != 1976 || got["spotify:track:b"] != 2022 {
		t.Fatalf("unexpected mapping: %v", got)
	}
}

func TestSaveTrackYearsUpserts(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SaveTrackYears(map[string]int{"spotify:track:a": 1990}); err != nil {
		t.Fatalf("SaveTrackYears: %v", err)
	}
	if err := s.SaveTrackYears(map[string]int{"spotify:track:a": 1991}); err != nil {
		t.Fatalf("SaveTrackYears: %v", err)
	}

	got, err := s.TrackYears()
	if err != nil {
		t.Fatalf("TrackYears: %v", err)
	}
	if got["spotify:track:a"] != 1991 {
		t.Fatalf("expected the later year to win, got %v", got)
	}
}

func TestArtistGenresRoundtrip(t *testing.T) {
	s := setupTestStore(t)

	err := s.SaveArtistGenres(map[string][]string{
		"Burna Boy": {"afrobeats", "afrofusion"},
		"Obscure":   nil,
	})
	if err != nil {
		t.Fatalf("SaveArtistGenres: %v", err)
	}

	got, err := s.ArtistGenres()
	if err != nil {
		t.Fatalf("ArtistGenres: %v", err)
	}
	if len(got["Burna Boy"]) != 2 || got["Burna Boy"][0] != "afrobeats" {
		t.Fatalf("unexpected genres: %v", got["Burna Boy"])
	}

	// A fetched artist with no genres is present with an empty list,
	// so it isn't re-fetched next run.
	tags, present := got["Obscure"]
	if !present {
		t.Fatalf("fetched artist with no genres should still be recorded")
	}
	if len(tags) != 0 {
		t.Fatalf("expected no tags, got %v", tags)
	}
}

func TestSaveArtistGenresReplaces(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SaveArtistGenres(map[string][]string{"Rema": {"afro-rave", "pop"}}); err != nil {
		t.Fatalf("SaveArtistGenres: %v", err)
	}
	if err := s.SaveArtistGenres(map[string][]string{"Rema": {"afrobeats"}}); err != nil {
		t.Fatalf("SaveArtistGenres: %v", err)
	}

	got, err := s.ArtistGenres()
	if err != nil {
		t.Fatalf("ArtistGenres: %v", err)
	}
	if len(got["Rema"]) != 1 || got["Rema"][0] != "afrobeats" {
		t.Fatalf("second save should replace the tag list, got %v", got["Rema"])
	}
}

func TestPersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SaveTrackYears(map[string]int{"spotify:track:a": 2001}); err != nil {
		t.Fatalf("SaveTrackYears: %v", err)
	}
	s.Close()

	s, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s.Close()

	got, err := s.TrackYears()
	if err != nil {
		t.Fatalf("TrackYears: %v", err)
	}
	if got["spotify:track:a"] != 2001 {
		t.Fatalf("data should survive reopening, got %v", got)
	}
}
