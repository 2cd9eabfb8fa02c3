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

	"github.com/damie/spotify-insights/internal/analysis"
)

var topNumber int
var topYear int

var topCmd = &cobra.Command{
	Use:   "top <artist|track|album>",
	Short: "Ranks artists, tracks, or albums by minutes played",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		items, err := analysis.TopItems(ds, args[0], topNumber, topYear)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(topItemsAnalysis(args[0], items))
	},
}

func init() {
	rootCmd.AddCommand(topCmd)

	topCmd.Flags().IntVarP(&topNumber, "number", "n", 10, "number of results to return")
	topCmd.Flags().IntVar(&topYear, "year", 0, "restrict to a single year")
}
