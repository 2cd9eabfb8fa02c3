package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeHistoryFile(t *testing.T, dir string, name string, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatalf("Load should have errored for a missing directory")
	}
}

func TestLoadNoHistoryFiles(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "unrelated.json", "[]")

	_, err := Load(dir)
	if err == nil {
		t.Fatalf("Load should have errored with no matching files")
	}
}

func TestLoadConcatenatesFiles(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "Streaming_History_Audio_2022_0.json", `[
		{"ts": "2022-01-01T10:00:00Z", "ms_played": 60000,
		 "master_metadata_track_name": "Last Last",
		 "master_metadata_album_artist_name": "Burna Boy"}
	]`)
	writeHistoryFile(t, dir, "Streaming_History_Audio_2023_1.json", `[
		{"ts": "2023-01-01T10:00:00Z", "ms_played": 120000,
		 "master_metadata_track_name": "Rush",
		 "master_metadata_album_artist_name": "Ayra Starr"},
		{"ts": "2023-01-02T10:00:00Z", "ms_played": 30000,
		 "master_metadata_track_name": null,
		 "master_metadata_album_artist_name": null}
	]`)

	records, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 raw records, got %d", len(records))
	}
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	writeHistoryFile(t, dir, "Streaming_History_Audio_2023_0.json", `[
		{"ts": "2023-01-02T10:00:00Z", "ms_played": 30000,
		 "master_metadata_track_name": null,
		 "master_metadata_album_artist_name": null},
		{"ts": "2023-01-01T10:00:00Z", "ms_played": 120000,
		 "master_metadata_track_name": "Rush",
		 "master_metadata_album_artist_name": "Ayra Starr",
		 "platform": "Android OS 13",
		 "skipped": true}
	]`)

	ds, err := LoadDataset(dir)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if len(ds) != 1 {
		t.Fatalf("expected 1 event after normalization, got %d", len(ds))
	}
	e := ds[0]
	if e.Track != "Rush" || e.Artist != "Ayra Starr" {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.Minutes != 2 {
		t.Fatalf("expected 2 minutes, got %v", e.Minutes)
	}
	if e.Platform != PlatformMobile {
		t.Fatalf("expected mobile platform, got %q", e.Platform)
	}
	if !e.Skipped {
		t.Fatalf("expected skipped to carry through")
	}
}
