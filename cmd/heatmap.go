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

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Shows listening minutes by weekday and hour",
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(heatmapAnalysis(analysis.HourlyHeatmap(ds)))
	},
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
}

func heatmapAnalysis(hm analysis.Heatmap) Analysis {
	header := []string{"Day"}
	for hour := 0; hour < 24; hour++ {
		header = append(header, strconv.Itoa(hour))
	}

	a := Analysis{results: [][]string{header}}
	for i, day := range hm.Days {
		row := []string{day}
		for hour := 0; hour < 24; hour++ {
			row = append(row, strconv.FormatFloat(hm.Minutes[i][hour], 'f', 0, 64))
		}
		a.results = append(a.results, row)
	}
	return a
}
