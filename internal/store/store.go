// Package store persists catalog metadata fetched from the Spotify
// API in a local sqlite database, so enrichment runs are incremental.
package store

import (
	"database/sql"
	"fmt"

	"github.com/damie/spotify-insights/internal/migration"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// New opens the cache at dbPath, creating the schema if the file does
// not exist yet. A fresh cache behaves as two empty mappings.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if _, err := db.Exec(migration.Create); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// TrackYears returns the cached track URI to release year mapping.
func (s *Store) TrackYears() (map[string]int, error) {
	rows, err := s.db.Query("SELECT uri, year FROM TrackYear")
	if err != nil {
		return nil, fmt.Errorf("reading track years: %w", err)
	}
	defer rows.Close()

	years := make(map[string]int)
	for rows.Next() {
		var uri string
		var year int
		if err := rows.Scan(&uri, &year); err != nil {
			return nil, fmt.Errorf("scanning track year: %w", err)
		}
		years[uri] = year
	}
	return years, rows.Err()
}

// SaveTrackYears upserts the given mapping.
func (s *Store) SaveTrackYears(years map[string]int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving track years: %w", err)
	}
	for uri, year := range years {
		if _, err := tx.Exec(
			"INSERT INTO TrackYear (uri, year) VALUES (?, ?) ON CONFLICT(uri) DO UPDATE SET year = excluded.year",
			uri, year); err != nil {
			tx.Rollback()
			return fmt.Errorf("saving year for %q: %w", uri, err)
		}
	}
	return tx.Commit()
}

// ArtistGenres returns the cached artist to genre-list mapping.
// Artists that were fetched but returned no genres are present with
// an empty list, so callers can tell them apart from never-fetched
// artists.
func (s *Store) ArtistGenres() (map[string][]string, error) {
	genres := make(map[string][]string)

	fetched, err := s.db.Query("SELECT artist FROM ArtistFetched")
	if err != nil {
		return nil, fmt.Errorf("reading fetched artists: %w", err)
	}
	defer fetched.Close()
	for fetched.Next() {
		var artist string
		if err := fetched.Scan(&artist); err != nil {
			return nil, fmt.Errorf("scanning fetched artist: %w", err)
		}
		genres[artist] = nil
	}
	if err := fetched.Err(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT artist, genre FROM ArtistGenre ORDER BY artist, position")
	if err != nil {
		return nil, fmt.Errorf("reading artist genres: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var artist, genre string
		if err := rows.Scan(&artist, &genre); err != nil {
			return nil, fmt.Errorf("scanning artist genre: %w", err)
		}
		genres[artist] = append(genres[artist], genre)
	}
	return genres, rows.Err()
}

// SaveArtistGenres records the given artists as fetched and replaces
// their tag lists.
func (s *Store) SaveArtistGenres(genres map[string][]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving artist genres: %w", err)
	}
	for artist, tags := range genres {
		if _, err := tx.Exec("INSERT OR IGNORE INTO ArtistFetched (artist) VALUES (?)", artist); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording artist %q: %w", artist, err)
		}
		if _, err := tx.Exec("DELETE FROM ArtistGenre WHERE artist = ?", artist); err != nil {
			tx.Rollback()
			return fmt.Errorf("clearing genres for %q: %w", artist, err)
		}
		for i, tag := range tags {
			if _, err := tx.Exec(
				"INSERT INTO ArtistGenre (artist, position, genre) VALUES (?, ?, ?)",
				artist, i, tag); err != nil {
				tx.Rollback()
				return fmt.Errorf("saving genre for %q: %w", artist, err)
			}
		}
	}
	return tx.Commit()
}
