// Package spotifydata collects playlists, tracks and audio features
// from the Spotify Web API and builds the processed dataset.
package spotifydata

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// PlaylistConfig names one playlist to collect. The map key (slug)
// becomes the playlist id in the dataset.
type PlaylistConfig struct {
	ID          string `json:"id"`
	CuratorType string `json:"curatorType"`
	Label       string `json:"label"`
	Market      string `json:"market,omitempty"`
}

// LoadPlaylistConfig reads the playlist configuration. A missing file
// falls back to the built-in default set; an empty or malformed file is
// an error, since silently collecting nothing helps nobody.
func LoadPlaylistConfig(path string) (map[string]PlaylistConfig, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultPlaylistConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading playlist config: %w", err)
	}

	// The file either maps slugs directly, or wraps them under a
	// top-level "playlists" key.
	var wrapped struct {
		Playlists map[string]PlaylistConfig `json:"playlists"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Playlists) > 0 {
		return validatePlaylistConfig(wrapped.Playlists, path)
	}

	var config map[string]PlaylistConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("parsing playlist config %s: %w", path, err)
	}
	return validatePlaylistConfig(config, path)
}

func validatePlaylistConfig(config map[string]PlaylistConfig, path string) (map[string]PlaylistConfig, error) {
	if len(config) == 0 {
		return nil, fmt.Errorf("playlist config %s is empty", path)
	}
	for slug, cfg := range config {
		if cfg.ID == "" {
			return nil, fmt.Errorf("playlist config for %q is missing an id", slug)
		}
	}
	return config, nil
}

// ArtistInfo is the manually curated origin metadata for one artist.
type ArtistInfo struct {
	Country     string
	RegionGroup string
	Diaspora    bool
}

// LoadArtistMetadata reads the artist metadata CSV. Expected columns:
// artist, artistCountry, regionGroup, diaspora. A missing file falls
// back to the built-in defaults.
func LoadArtistMetadata(path string) (map[string]ArtistInfo, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return defaultArtistMetadata(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading artist metadata: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing artist metadata %s: %w", path, err)
	}
	if len(records) == 0 {
		return defaultArtistMetadata(), nil
	}

	columns := make(map[string]int)
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"artist", "artistCountry", "regionGroup", "diaspora"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("artist metadata %s is missing column %q", path, required)
		}
	}

	metadata := make(map[string]ArtistInfo)
	for _, record := range records[1:] {
		artist := strings.TrimSpace(record[columns["artist"]])
		if artist == "" {
			continue
		}
		metadata[artist] = ArtistInfo{
			Country:     fieldOrUnknown(record[columns["artistCountry"]]),
			RegionGroup: fieldOrUnknown(record[columns["regionGroup"]]),
			Diaspora:    parseBool(record[columns["diaspora"]]),
		}
	}
	if len(metadata) == 0 {
		return defaultArtistMetadata(), nil
	}
	return metadata, nil
}

func fieldOrUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "Unknown"
	}
	return v
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
