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
	"strings"

	"github.com/spf13/cobra"

	"github.com/damie/spotify-insights/internal/analysis"
)

var bestDayCmd = &cobra.Command{
	Use:   "best-day",
	Short: "Shows the single day with the most listening",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		best := analysis.BiggestListeningDay(ds)
		if best.TotalStreams == 0 {
			fmt.Println("No listening data.")
			return
		}
		fmt.Printf("%s: %v minutes (%v hours) over %d streams\n",
			best.Date, best.TotalMinutes, best.TotalHours, best.TotalStreams)
		fmt.Printf("Top tracks: %s\n", strings.Join(best.TopTracks, ", "))
	},
}

func init() {
	rootCmd.AddCommand(bestDayCmd)
}
