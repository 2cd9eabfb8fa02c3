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

	"github.com/spf13/cobra"

	"github.com/damie/spotify-insights/internal/analysis"
	"github.com/damie/spotify-insights/internal/dataset"
)

var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "Runs the hypothesis tests on listening behavior",
	Long: `Runs a t-test comparing weekend and weekday listening, and a one-way
ANOVA across the time-of-day buckets.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := loadDataset()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		printHypothesisTests(os.Stdout, ds)
	},
}

func init() {
	rootCmd.AddCommand(testsCmd)
}

func printHypothesisTests(out io.Writer, ds dataset.Dataset) {
	ttest := analysis.WeekendVsWeekday(ds)
	fmt.Fprintf(out, "## Weekend vs. weekday\n")
	if ttest.Valid {
		fmt.Fprintf(out, "Weekday mean: %v minutes/day, weekend mean: %v minutes/day\n",
			ttest.WeekdayMeanMinutes, ttest.WeekendMeanMinutes)
		fmt.Fprintf(out, "t = %v, p = %v\n", ttest.Statistic, ttest.PValue)
	}
	fmt.Fprintln(out, ttest.Interpretation)
	fmt.Fprintln(out)

	anova := analysis.TimeOfDay(ds)
	fmt.Fprintf(out, "## Time of day\n")
	for _, period := range analysis.PeriodOrder {
		avg, ok := anova.PeriodAvgs[period]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%s: %v minutes/day\n", period, avg)
	}
	if anova.DominantPeriod != "" {
		fmt.Fprintf(out, "Dominant period: %s\n", anova.DominantPeriod)
	}
	if anova.Valid {
		fmt.Fprintf(out, "F = %v, p = %v\n", anova.Statistic, anova.PValue)
	}
	fmt.Fprintln(out, anova.Interpretation)
}
