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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/damie/spotify-insights/internal/analysis"
	"github.com/damie/spotify-insights/internal/dataset"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Prints the full listening report",
	Long: `Combines the overview, top artists/tracks/albums, platform breakdown,
yearly trend, biggest listening day, and personality summary.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := printReport(os.Stdout, ds); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func printReport(out io.Writer, ds dataset.Dataset) error {
	overview := analysis.Overview(ds)
	fmt.Fprintf(out, "## Overview\n")
	fmt.Fprintf(out, "Total listening: %v hours (%v days)\n", overview.TotalHours, overview.TotalDays)
	fmt.Fprintf(out, "Streams: %d (%d tracks, %d artists, %d albums)\n",
		overview.TotalStreams, overview.UniqueTracks, overview.UniqueArtists, overview.UniqueAlbums)
	if overview.TotalStreams > 0 {
		fmt.Fprintf(out, "Range: %s to %s, most active year %d\n",
			overview.DateRangeStart, overview.DateRangeEnd, overview.MostActiveYear)
	}
	fmt.Fprintln(out)

	for _, dim := range []string{analysis.DimArtist, analysis.DimTrack, analysis.DimAlbum} {
		items, err := analysis.TopItems(ds, dim, 10, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "## Top %ss\n%s\n", title(dim), topItemsAnalysis(dim, items))
	}

	fmt.Fprintf(out, "## Platforms\n%s\n", platformAnalysis(analysis.PlatformBreakdown(ds)))
	fmt.Fprintf(out, "## Yearly trend\n%s\n", yearlyAnalysis(analysis.YearlyTrend(ds)))

	best := analysis.BiggestListeningDay(ds)
	fmt.Fprintf(out, "## Biggest listening day\n")
	if best.TotalStreams > 0 {
		fmt.Fprintf(out, "%s: %v minutes (%v hours) over %d streams\n",
			best.Date, best.TotalMinutes, best.TotalHours, best.TotalStreams)
		fmt.Fprintf(out, "Top tracks: %s\n", strings.Join(best.TopTracks, ", "))
	} else {
		fmt.Fprintln(out, "No listening data.")
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "## Personality\n%s", personalitySummary(analysis.GetPersonality(ds)))
	return nil
}

func topItemsAnalysis(dim string, items []analysis.TopItem) Analysis {
	a := Analysis{results: [][]string{{title(dim), "Minutes"}}}
	for _, item := range items {
		a.results = append(a.results, []string{item.Name, formatMinutes(item.TotalMinutes)})
	}
	a.summary = fmt.Sprintf("Found %d %ss", len(items), dim)
	return a
}

func platformAnalysis(stats []analysis.PlatformStat) Analysis {
	a := Analysis{results: [][]string{{"Platform", "Minutes", "Streams"}}}
	for _, s := range stats {
		a.results = append(a.results, []string{
			s.Platform, formatMinutes(s.TotalMinutes), strconv.Itoa(s.TotalStreams)})
	}
	return a
}

func yearlyAnalysis(trend []analysis.YearTotal) Analysis {
	a := Analysis{results: [][]string{{"Year", "Minutes"}}}
	for _, y := range trend {
		a.results = append(a.results, []string{strconv.Itoa(y.Year), formatMinutes(y.TotalMinutes)})
	}
	return a
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func personalitySummary(p analysis.Personality) string {
	if p.MostLoyalArtist == "" {
		return "No listening data.\n"
	}
	return fmt.Sprintf(
		"Most loyal artist: %s\nNight owl score: %v%%\nPeak hour: %s\nMost active month: %s\nOverall skip rate: %v%%\nListening style: %s\n",
		p.MostLoyalArtist, p.NightOwlScore, p.PeakHourLabel, p.MostActiveMonth, p.OverallSkipRate, p.ListeningStyle)
}
