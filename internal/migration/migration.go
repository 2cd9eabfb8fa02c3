// Package migration holds the schema for the metadata cache.
package migration

// Create builds the cache tables. TrackYear maps a Spotify track URI
// to its release year; ArtistGenre holds one row per (artist, tag),
// with position preserving the catalog's tag order.
const Create = `
CREATE TABLE IF NOT EXISTS TrackYear (
  uri TEXT PRIMARY KEY,
  year INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ArtistGenre (
  artist TEXT NOT NULL,
  position INTEGER NOT NULL,
  genre TEXT NOT NULL,
  PRIMARY KEY (artist, position)
);

CREATE TABLE IF NOT EXISTS ArtistFetched (
  artist TEXT PRIMARY KEY
);
`
