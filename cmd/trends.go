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

var trendsYear int
var trendsLoyalty bool

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Shows listening trends over time",
	Long: `Without flags, prints total minutes per year. With --year, prints the
monthly breakdown for that year in calendar order. With --loyalty,
prints the top artist per year.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		switch {
		case trendsLoyalty:
			fmt.Println(loyaltyAnalysis(analysis.ArtistLoyaltyTimeline(ds)))
		case trendsYear != 0:
			fmt.Println(monthlyAnalysis(analysis.MonthlyBreakdown(ds, trendsYear)))
		default:
			fmt.Println(yearlyAnalysis(analysis.YearlyTrend(ds)))
		}
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)

	trendsCmd.Flags().IntVar(&trendsYear, "year", 0, "show the monthly breakdown for this year")
	trendsCmd.Flags().BoolVar(&trendsLoyalty, "loyalty", false, "show the top artist per year")
}

func monthlyAnalysis(months []analysis.MonthTotal) Analysis {
	a := Analysis{results: [][]string{{"Month", "Minutes"}}}
	for _, m := range months {
		a.results = append(a.results, []string{m.MonthName, formatMinutes(m.TotalMinutes)})
	}
	return a
}

func loyaltyAnalysis(timeline []analysis.LoyaltyEntry) Analysis {
	a := Analysis{results: [][]string{{"Year", "Artist", "Minutes"}}}
	for _, entry := range timeline {
		a.results = append(a.results, []string{
			strconv.Itoa(entry.Year), entry.Artist, formatMinutes(entry.TotalMinutes)})
	}
	return a
}
