/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/damie/spotify-insights/internal/dataset"
	"github.com/damie/spotify-insights/internal/spotify"
	"github.com/damie/spotify-insights/internal/store"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Fetches track release years and artist genres from Spotify",
	Long: `Looks up metadata for every track and artist in the dataset that is
not already in the cache, and stores it for the 'age' and 'genres'
commands. Requires --client_id and --client_secret.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("client_id") == "" || viper.GetString("client_secret") == "" {
			return fmt.Errorf("required flag(s) \"client_id\", \"client_secret\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := enrich(ds, viper.GetString("cache")); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(enrichCmd)
}

func enrich(ds dataset.Dataset, cachePath string) error {
	db, err := store.New(cachePath)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	client := spotify.New()
	err = client.Authenticate(viper.GetString("client_id"), viper.GetString("client_secret"))
	if err != nil {
		return fmt.Errorf("authenticating with Spotify: %w", err)
	}

	cachedYears, err := db.TrackYears()
	if err != nil {
		return fmt.Errorf("reading cached release years: %w", err)
	}
	var missingTracks []string
	for _, uri := range ds.TrackURIs() {
		if _, present := cachedYears[uri]; !present {
			missingTracks = append(missingTracks, uri)
		}
	}
	fmt.Printf("Fetching release years for %d tracks\n", len(missingTracks))
	if len(missingTracks) > 0 {
		years, err := client.TrackYears(missingTracks)
		if err != nil {
			return fmt.Errorf("fetching release years: %w", err)
		}
		if err := db.SaveTrackYears(years); err != nil {
			return fmt.Errorf("caching release years: %w", err)
		}
	}

	cachedGenres, err := db.ArtistGenres()
	if err != nil {
		return fmt.Errorf("reading cached genres: %w", err)
	}
	var missingArtists []string
	for _, artist := range ds.Artists() {
		if _, present := cachedGenres[artist]; !present {
			missingArtists = append(missingArtists, artist)
		}
	}
	fmt.Printf("Fetching genres for %d artists\n", len(missingArtists))
	if len(missingArtists) > 0 {
		genres := client.ArtistGenres(missingArtists)
		if err := db.SaveArtistGenres(genres); err != nil {
			return fmt.Errorf("caching genres: %w", err)
		}
	}

	fmt.Println("Done.")
	return nil
}
