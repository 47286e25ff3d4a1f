package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestPrintHealth(t *testing.T) {
	writeTestDataset(t)

	var out bytes.Buffer
	if err := printHealth(&out); err != nil {
		t.Fatalf("printHealth failed: %v", err)
	}

	output := out.String()
	expected := []string{
		"Generated:          2026-08-27 10:05 UTC",
		"Run started:        2026-08-27 10:00 UTC",
		"Playlists:          2",
		"Unresolved artists: 1",
		"Feature coverage:   67%",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q. Got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "WARNING") {
		t.Errorf("Output should not contain a warning. Got:\n%s", output)
	}
}

func TestPrintHealthWarnsOnZeroCoverage(t *testing.T) {
	// A dataset where no track carries feature data.
	const noFeatures = `{
  "playlists": [
    {
      "id": "ginja",
      "name": "Ginja",
      "curator": "wavybeats",
      "curatorType": "User-Generated",
      "launchYear": null,
      "followerCount": null,
      "tracks": [
        {"id": "t1", "title": "Song", "artist": "Tems", "artistCountry": "Nigeria",
         "regionGroup": "Nigeria", "diaspora": false, "releaseYear": 2021, "features": null}
      ]
    }
  ],
  "runMetadata": {"startedAt": "", "generatedAt": "", "playlistCount": 1, "missingArtists": []}
}`
	path := filepath.Join(t.TempDir(), "afrobeats_playlists.json")
	if err := os.WriteFile(path, []byte(noFeatures), 0644); err != nil {
		t.Fatalf("writing test dataset: %v", err)
	}
	viper.Set("data", path)
	t.Cleanup(func() { viper.Set("data", "") })

	var out bytes.Buffer
	if err := printHealth(&out); err != nil {
		t.Fatalf("printHealth failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Feature coverage:   0%") {
		t.Errorf("Output missing zero coverage. Got:\n%s", output)
	}
	if !strings.Contains(output, "WARNING") {
		t.Errorf("Output missing warning. Got:\n%s", output)
	}
	if !strings.Contains(output, "Generated:          Unknown") {
		t.Errorf("Output missing Unknown timestamp fallback. Got:\n%s", output)
	}
}
