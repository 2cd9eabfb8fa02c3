package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Raw mirrors one record of the Spotify extended streaming history
// export. Name fields are pointers because podcast entries and local
// files leave them null.
type Raw struct {
	Timestamp   string  `json:"ts"`
	MsPlayed    int64   `json:"ms_played"`
	Track       *string `json:"master_metadata_track_name"`
	Artist      *string `json:"master_metadata_album_artist_name"`
	Album       *string `json:"master_metadata_album_album_name"`
	TrackURI    *string `json:"spotify_track_uri"`
	Platform    *string `json:"platform"`
	Skipped     *bool   `json:"skipped"`
	Shuffle     *bool   `json:"shuffle"`
	ReasonStart *string `json:"reason_start"`
	ReasonEnd   *string `json:"reason_end"`
}

// Load reads every Streaming_History_Audio*.json file in dir and
// concatenates their records in file-name order.
func Load(dir string) ([]Raw, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("data directory %q: %w", dir, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "Streaming_History_Audio*.json"))
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no streaming history files found in %q", dir)
	}

	var records []Raw
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", file, err)
		}
		var batch []Raw
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", file, err)
		}
		records = append(records, batch...)
	}
	return records, nil
}

// LoadDataset loads and normalizes in one step.
func LoadDataset(dir string) (Dataset, error) {
	records, err := Load(dir)
	if err != nil {
		return nil, err
	}
	return Normalize(records), nil
}
