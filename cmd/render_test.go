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
	"strings"
	"testing"
)

func TestAnalysisStringRendersTable(t *testing.T) {
	a := Analysis{
		results: [][]string{
			{"Artist", "Minutes"},
			{"Wizkid", "120.00"},
		},
		summary: "Found 1 artist",
	}

	out := a.String()
	if !strings.Contains(out, "Wizkid") {
		t.Fatalf("output should contain the data row: %q", out)
	}
	if !strings.Contains(out, "Found 1 artist") {
		t.Fatalf("output should contain the summary: %q", out)
	}
}

func TestAnalysisStringHeaderOnly(t *testing.T) {
	a := Analysis{
		results: [][]string{{"Artist", "Minutes"}},
		summary: "Found 0 artists",
	}

	out := a.String()
	if strings.Contains(out, "Artist") {
		t.Fatalf("a header-only result should not render a table: %q", out)
	}
	if !strings.Contains(out, "Found 0 artists") {
		t.Fatalf("the summary should still print: %q", out)
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(12.5); got != "12.50" {
		t.Fatalf("expected 12.50, got %q", got)
	}
}

func TestTitle(t *testing.T) {
	if got := title("artist"); got != "Artist" {
		t.Fatalf("expected Artist, got %q", got)
	}
	if got := title(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
