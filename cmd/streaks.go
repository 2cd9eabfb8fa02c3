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

	"github.com/damie/spotify-insights/internal/analysis"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Shows the longest and current consecutive-day listening streaks",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		streaks := analysis.ListeningStreaks(ds, time.Now().UTC())
		if streaks.LongestStreak == 0 {
			fmt.Println("No listening data.")
			return
		}
		fmt.Printf("Longest streak: %d days (%s to %s)\n",
			streaks.LongestStreak, streaks.BestStreakStart, streaks.BestStreakEnd)
		fmt.Printf("Current streak: %d days\n", streaks.CurrentStreak)
	},
}

func init() {
	rootCmd.AddCommand(streaksCmd)
}
