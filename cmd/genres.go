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

	"github.com/damie/spotify-insights/internal/genre"
	"github.com/damie/spotify-insights/internal/store"
)

var genresNumber int
var genresNigerian bool

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Shows the top genres by listening time",
	Long: `Distributes each stream's minutes equally across its artist's genre
tags. Tags come from the metadata cache when the artist has been
enriched, falling back to a built-in table otherwise. With --nigerian,
ranks Nigerian artists instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		genres, err := cachedArtistGenres(viper.GetString("cache"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if genresNigerian {
			fmt.Println(nigerianAnalysis(genre.TopNigerianArtists(ds, genres, genresNumber)))
			return
		}
		fmt.Println(genreAnalysis(genre.ListeningTime(ds, genres, genresNumber)))
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)

	genresCmd.Flags().IntVarP(&genresNumber, "number", "n", 15, "number of rows to show")
	genresCmd.Flags().BoolVar(&genresNigerian, "nigerian", false, "rank Nigerian artists instead of genres")
}

func cachedArtistGenres(cachePath string) (map[string][]string, error) {
	db, err := store.New(cachePath)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	defer db.Close()

	fetched, err := db.ArtistGenres()
	if err != nil {
		return nil, fmt.Errorf("reading cached genres: %w", err)
	}
	return genre.Merge(fetched), nil
}

func genreAnalysis(genres []genre.GenreTime) Analysis {
	a := Analysis{results: [][]string{{"Genre", "Minutes"}}}
	for _, g := range genres {
		a.results = append(a.results, []string{g.Genre, formatMinutes(g.TotalMinutes)})
	}
	return a
}

func nigerianAnalysis(artists []genre.ArtistGenres) Analysis {
	a := Analysis{results: [][]string{{"Artist", "Minutes", "Genres"}}}
	for _, artist := range artists {
		a.results = append(a.results, []string{
			artist.Artist, formatMinutes(artist.TotalMinutes), artist.Genres})
	}
	return a
}
