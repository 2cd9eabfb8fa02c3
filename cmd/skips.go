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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/damie/spotify-insights/internal/analysis"
)

var skipsNumber int

var skipsCmd = &cobra.Command{
	Use:   "skips",
	Short: "Shows the most skipped artists by skip rate",
	Long: `Only artists with at least 20 streams are considered, to keep
one-off listens from dominating the rates.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		stats := analysis.SkipAnalysis(ds, skipsNumber)
		if len(stats) == 0 {
			fmt.Printf("No artist has %d or more streams yet - not enough data for skip rates.\n",
				analysis.MinSkipStreams)
			return
		}
		fmt.Println(skipsAnalysis(stats))
	},
}

func init() {
	rootCmd.AddCommand(skipsCmd)

	skipsCmd.Flags().IntVarP(&skipsNumber, "number", "n", 10, "number of artists to return")
}

func skipsAnalysis(stats []analysis.SkipStat) Analysis {
	a := Analysis{results: [][]string{{"Artist", "Streams", "Skips", "Skip rate %"}}}
	for _, s := range stats {
		a.results = append(a.results, []string{
			s.Artist,
			strconv.Itoa(s.TotalStreams),
			strconv.Itoa(s.TotalSkips),
			formatFloat(s.SkipRate),
		})
	}
	return a
}
