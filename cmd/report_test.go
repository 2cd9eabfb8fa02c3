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
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/damie/spotify-insights/internal/dataset"
)

func fixtureDataset(t *testing.T) dataset.Dataset {
	t.Helper()
	var records []dataset.Raw
	track, artist, album := "Essence", "Wizkid", "Made in Lagos"
	platform := "Android OS 11"
	for day := 0; day < 10; day++ {
		ts := time.Date(2023, time.June, 1+day, 14, 0, 0, 0, time.UTC).Format(time.RFC3339)
		records = append(records, dataset.Raw{
			Timestamp: ts,
			MsPlayed:  180000,
			Track:     &track,
			Artist:    &artist,
			Album:     &album,
			Platform:  &platform,
		})
	}
	return dataset.Normalize(records)
}

func TestPrintReport(t *testing.T) {
	out := new(bytes.Buffer)
	if err := printReport(out, fixtureDataset(t)); err != nil {
		t.Fatalf("printReport: %v", err)
	}

	got := out.String()
	for _, section := range []string{
		"## Overview",
		"## Top Artists",
		"## Top Tracks",
		"## Top Albums",
		"## Platforms",
		"## Yearly trend",
		"## Biggest listening day",
		"## Personality",
	} {
		if !strings.Contains(got, section) {
			t.Fatalf("report missing section %q:\n%s", section, got)
		}
	}
	if !strings.Contains(got, "Wizkid") {
		t.Fatalf("report should mention the artist:\n%s", got)
	}
	if !strings.Contains(got, "mobile") {
		t.Fatalf("report should include the platform breakdown:\n%s", got)
	}
}

func TestPrintReportEmptyDataset(t *testing.T) {
	out := new(bytes.Buffer)
	if err := printReport(out, dataset.Dataset{}); err != nil {
		t.Fatalf("printReport on an empty dataset: %v", err)
	}
	if !strings.Contains(out.String(), "No listening data.") {
		t.Fatalf("empty dataset should be reported as such:\n%s", out.String())
	}
}

func TestPrintHypothesisTests(t *testing.T) {
	out := new(bytes.Buffer)
	printHypothesisTests(out, fixtureDataset(t))

	got := out.String()
	if !strings.Contains(got, "## Weekend vs. weekday") {
		t.Fatalf("missing t-test section:\n%s", got)
	}
	if !strings.Contains(got, "## Time of day") {
		t.Fatalf("missing ANOVA section:\n%s", got)
	}
}
