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
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/damie/spotify-insights/internal/analysis"
	"github.com/damie/spotify-insights/internal/store"
)

var ageCmd = &cobra.Command{
	Use:   "age",
	Short: "Shows how old your music is, weighted by listening time",
	Long: `Uses cached track release years to compute the average age of the
music you listen to. Run 'enrich' first to populate the cache.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		db, err := store.New(viper.GetString("cache"))
		if err != nil {
			fmt.Println(fmt.Errorf("opening cache: %w", err))
			os.Exit(1)
		}
		defer db.Close()

		years, err := db.TrackYears()
		if err != nil {
			fmt.Println(fmt.Errorf("reading cached release years: %w", err))
			os.Exit(1)
		}

		age := analysis.GetListeningAge(ds, years, time.Now().UTC())
		if !age.OK {
			fmt.Println("No release years cached yet - run 'enrich' first.")
			return
		}
		fmt.Printf("Average song age: %v years (average release year %v)\n",
			age.AvgSongAgeYears, age.AvgReleaseYear)
		fmt.Printf("Oldest track: %s by %s (%d)\n", age.OldestTrack, age.OldestArtist, age.OldestYear)
		fmt.Printf("Newest track: %s by %s (%d)\n", age.NewestTrack, age.NewestArtist, age.NewestYear)
	},
}

func init() {
	rootCmd.AddCommand(ageCmd)
}
