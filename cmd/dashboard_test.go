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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

const testDatasetJSON = `{
  "playlists": [
    {
      "id": "afrobeats-hits",
      "name": "Afrobeats Hits",
      "curator": "Spotify",
      "curatorType": "Media Publisher",
      "launchYear": 2019,
      "followerCount": 1500,
      "tracks": [
        {
          "id": "t1",
          "title": "Song One",
          "artist": "Burna Boy",
          "artistCountry": "Nigeria",
          "regionGroup": "Nigeria",
          "diaspora": false,
          "releaseYear": 2020,
          "features": {"danceability": 0.8, "energy": 0.6, "valence": 0.5, "tempo": 120, "acousticness": 0.1}
        },
        {
          "id": "t2",
          "title": "Song Two",
          "artist": "J Hus",
          "artistCountry": "UK",
          "regionGroup": "Diaspora",
          "diaspora": true,
          "releaseYear": 2022,
          "features": {"danceability": 0.6, "energy": 0.7, "valence": 0.4, "tempo": 110, "acousticness": 0.2}
        }
      ]
    },
    {
      "id": "ginja",
      "name": "Ginja",
      "curator": "wavybeats",
      "curatorType": "User-Generated",
      "launchYear": null,
      "followerCount": null,
      "tracks": [
        {
          "id": "t3",
          "title": "Song Three",
          "artist": "Tems",
          "artistCountry": "Nigeria",
          "regionGroup": "Nigeria",
          "diaspora": false,
          "releaseYear": 2021,
          "features": null
        }
      ]
    }
  ],
  "runMetadata": {
    "startedAt": "2026-08-27T10:00:00Z",
    "generatedAt": "2026-08-27T10:05:00Z",
    "playlistCount": 2,
    "missingArtists": ["Tems"]
  }
}`

// writeTestDataset writes the fixture dataset and points viper at it.
func writeTestDataset(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "afrobeats_playlists.json")
	if err := os.WriteFile(path, []byte(testDatasetJSON), 0644); err != nil {
		t.Fatalf("writing test dataset: %v", err)
	}
	viper.Set("data", path)
	t.Cleanup(func() { viper.Set("data", "") })
}

func TestPrintDashboard(t *testing.T) {
	writeTestDataset(t)

	var out bytes.Buffer
	if err := printDashboard(&out, &filterFlags{}, "Nigeria"); err != nil {
		t.Fatalf("printDashboard failed: %v", err)
	}

	output := out.String()
	expected := []string{
		"Dataset generated 2026-08-27 10:05 UTC (2 playlists, 1 unresolved artists, 67% feature coverage)",
		"Playlists: 2   Tracks: 3",
		"Tracks by region",
		"Afrobeats Hits",
		"Ginja",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q. Got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "WARNING") {
		t.Errorf("Output should not contain a warning banner. Got:\n%s", output)
	}
}

func TestPrintDashboardWithFilters(t *testing.T) {
	writeTestDataset(t)

	var out bytes.Buffer
	flags := &filterFlags{curators: []string{"Media Publisher"}, minYear: 2022}
	if err := printDashboard(&out, flags, "Nigeria"); err != nil {
		t.Fatalf("printDashboard failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Playlists: 1   Tracks: 1") {
		t.Errorf("Output missing filtered counts. Got:\n%s", output)
	}
	if strings.Contains(output, "Ginja") {
		t.Errorf("Output should not contain filtered-out playlist. Got:\n%s", output)
	}
}

func TestPrintDashboardNoMatches(t *testing.T) {
	writeTestDataset(t)

	var out bytes.Buffer
	flags := &filterFlags{search: "no such playlist"}
	if err := printDashboard(&out, flags, "Nigeria"); err != nil {
		t.Fatalf("printDashboard failed: %v", err)
	}

	if !strings.Contains(out.String(), "No playlists match the current filters.") {
		t.Errorf("Output missing empty-state line. Got:\n%s", out.String())
	}
}

func TestPrintDashboardUnknownCurator(t *testing.T) {
	writeTestDataset(t)

	var out bytes.Buffer
	flags := &filterFlags{curators: []string{"Algorithmic"}}
	if err := printDashboard(&out, flags, "Nigeria"); err == nil {
		t.Error("expected error for unknown curator category")
	}
}
