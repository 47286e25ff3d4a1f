// Package dataset defines the processed playlist dataset produced by the
// fetch pipeline and consumed by every analysis command.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Features is the audio profile Spotify reports for a track. Tracks the
// audio-features endpoint did not cover carry no Features at all; a zero
// value in any field means "not reported".
type Features struct {
	Danceability float64 `json:"danceability" yaml:"danceability"`
	Energy       float64 `json:"energy" yaml:"energy"`
	Valence      float64 `json:"valence" yaml:"valence"`
	Tempo        float64 `json:"tempo" yaml:"tempo"`
	Acousticness float64 `json:"acousticness" yaml:"acousticness"`
}

type Track struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	ArtistCountry string    `json:"artistCountry"`
	RegionGroup   string    `json:"regionGroup"`
	Diaspora      bool      `json:"diaspora"`
	ReleaseYear   *int      `json:"releaseYear"`
	Features      *Features `json:"features"`
}

// FeatureValues returns the track's audio features, or all zeros when the
// feature block is missing.
func (t Track) FeatureValues() Features {
	if t.Features == nil {
		return Features{}
	}
	return *t.Features
}

// HasFeatureData reports whether at least one feature value is positive.
func (t Track) HasFeatureData() bool {
	f := t.FeatureValues()
	return f.Danceability > 0 || f.Energy > 0 || f.Valence > 0 || f.Tempo > 0 || f.Acousticness > 0
}

type Playlist struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Curator       string  `json:"curator"`
	CuratorType   string  `json:"curatorType"`
	LaunchYear    *int    `json:"launchYear"`
	FollowerCount *int64  `json:"followerCount"`
	Description   string  `json:"description,omitempty"`
	Tracks        []Track `json:"tracks"`
}

type SkippedPlaylist struct {
	PlaylistID string `json:"playlistId"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

type RunMetadata struct {
	StartedAt        string                     `json:"startedAt"`
	GeneratedAt      string                     `json:"generatedAt"`
	PlaylistCount    int                        `json:"playlistCount"`
	MissingArtists   []string                   `json:"missingArtists"`
	SkippedPlaylists map[string]SkippedPlaylist `json:"skippedPlaylists,omitempty"`
}

type Dataset struct {
	Playlists   []Playlist  `json:"playlists"`
	RunMetadata RunMetadata `json:"runMetadata"`
}

// Load reads a processed dataset from disk. A missing file, invalid JSON,
// or a payload without a playlists array are all fatal: there is nothing
// the analysis commands can do without playlists.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	if d.Playlists == nil {
		return nil, fmt.Errorf("dataset %s has no playlists array", path)
	}

	return &d, nil
}

// AllTracks flattens every playlist's tracks into a single slice, in
// playlist order.
func (d *Dataset) AllTracks() []Track {
	var tracks []Track
	for _, p := range d.Playlists {
		tracks = append(tracks, p.Tracks...)
	}
	return tracks
}

// CuratorTypes returns the sorted set of distinct curator categories.
func (d *Dataset) CuratorTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, p := range d.Playlists {
		if !seen[p.CuratorType] {
			seen[p.CuratorType] = true
			types = append(types, p.CuratorType)
		}
	}
	sort.Strings(types)
	return types
}

// YearBounds returns the minimum and maximum release year across all
// tracks. Tracks without a release year are ignored; (0, 0) means the
// dataset has no dated tracks at all.
func (d *Dataset) YearBounds() (min int, max int) {
	for _, t := range d.AllTracks() {
		if t.ReleaseYear == nil {
			continue
		}
		y := *t.ReleaseYear
		if min == 0 || y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max
}
