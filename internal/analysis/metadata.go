package analysis

import (
	"time"

	"github.com/rilchief/afrostats/internal/dataset"
)

// HealthStatus selects the presentation of the dataset health banner.
type HealthStatus string

const (
	StatusSuccess HealthStatus = "success"
	StatusWarning HealthStatus = "warning"
)

// HealthReport is the dataset-level quality summary. It is computed once
// over the unfiltered dataset, independent of any filter state.
type HealthReport struct {
	GeneratedAt    string       `yaml:"generated_at"`
	StartedAt      string       `yaml:"started_at"`
	PlaylistCount  int          `yaml:"playlist_count"`
	MissingArtists int          `yaml:"missing_artists"`
	Coverage       int          `yaml:"feature_coverage"`
	Status         HealthStatus `yaml:"status"`
}

// Health builds the report. Zero audio-feature coverage means the
// feature source was unavailable for the whole run, which selects the
// warning presentation instead of success.
func Health(d *dataset.Dataset) HealthReport {
	count := d.RunMetadata.PlaylistCount
	if count == 0 {
		count = len(d.Playlists)
	}

	coverage := FeatureCoverage(d.AllTracks())
	status := StatusSuccess
	if coverage == 0 {
		status = StatusWarning
	}

	return HealthReport{
		GeneratedAt:    FormatTimestamp(d.RunMetadata.GeneratedAt),
		StartedAt:      FormatTimestamp(d.RunMetadata.StartedAt),
		PlaylistCount:  count,
		MissingArtists: len(d.RunMetadata.MissingArtists),
		Coverage:       coverage,
		Status:         status,
	}
}

// FeatureCoverage is the percentage of tracks carrying at least one
// positive audio feature value.
func FeatureCoverage(tracks []dataset.Track) int {
	covered := 0
	for _, t := range tracks {
		if t.HasFeatureData() {
			covered++
		}
	}
	return Percent(covered, len(tracks))
}

// FormatTimestamp renders a run timestamp for display. Missing values
// become "Unknown"; values that do not parse as RFC 3339 pass through
// unchanged so the operator still sees what the pipeline recorded.
func FormatTimestamp(raw string) string {
	if raw == "" {
		return "Unknown"
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}
