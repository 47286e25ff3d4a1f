// Package analysis computes the dashboard metrics from a filtered
// playlist/track set. Everything here is a pure function: empty input
// yields zero output, never NaN.
package analysis

import (
	"fmt"
	"math"

	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/filter"
)

// TempoAxisMax is the reference tempo (BPM) used to rescale average
// tempo onto the normalized [0, 1] feature chart axis.
const TempoAxisMax = 160

// Summary holds the headline card values.
type Summary struct {
	PlaylistCount  int    `yaml:"playlist_count"`
	TrackCount     int    `yaml:"track_count"`
	ReferenceShare string `yaml:"reference_share"`
	DiasporaShare  string `yaml:"diaspora_share"`
	AvgDiversity   string `yaml:"avg_diversity"`
}

// Summarize computes the headline metrics. ReferenceShare is the
// percentage of tracks whose artist country equals refCountry;
// AvgDiversity is the mean count of distinct region groups per playlist,
// to one decimal place ("0" when there are no playlists).
func Summarize(playlists []filter.FilteredPlaylist, tracks []dataset.Track, refCountry string) Summary {
	reference := 0
	diaspora := 0
	for _, t := range tracks {
		if t.ArtistCountry == refCountry {
			reference++
		}
		if t.Diaspora {
			diaspora++
		}
	}

	diversity := "0"
	if len(playlists) > 0 {
		sum := 0
		for _, p := range playlists {
			sum += DistinctRegions(p.FilteredTracks)
		}
		diversity = fmt.Sprintf("%.1f", float64(sum)/float64(len(playlists)))
	}

	return Summary{
		PlaylistCount:  len(playlists),
		TrackCount:     len(tracks),
		ReferenceShare: FormatPercent(reference, len(tracks)),
		DiasporaShare:  FormatPercent(diaspora, len(tracks)),
		AvgDiversity:   diversity,
	}
}

// DistinctRegions counts the distinct region groups in a track set.
// Missing labels count as one shared "Unknown" region.
func DistinctRegions(tracks []dataset.Track) int {
	seen := make(map[string]bool)
	for _, t := range tracks {
		seen[regionLabel(t)] = true
	}
	return len(seen)
}

// RegionHistogram counts tracks per region group. Tracks without a
// label bucket under "Unknown".
func RegionHistogram(tracks []dataset.Track) map[string]int {
	histogram := make(map[string]int)
	for _, t := range tracks {
		histogram[regionLabel(t)]++
	}
	return histogram
}

func regionLabel(t dataset.Track) string {
	if t.RegionGroup == "" {
		return "Unknown"
	}
	return t.RegionGroup
}

// FeatureAverages is the elementwise mean of the audio features across a
// track set, with missing feature blocks contributing zeros.
type FeatureAverages struct {
	Danceability float64 `yaml:"danceability"`
	Energy       float64 `yaml:"energy"`
	Valence      float64 `yaml:"valence"`
	Tempo        float64 `yaml:"tempo"`
	Acousticness float64 `yaml:"acousticness"`
}

func AverageFeatures(tracks []dataset.Track) FeatureAverages {
	if len(tracks) == 0 {
		return FeatureAverages{}
	}
	var sum FeatureAverages
	for _, t := range tracks {
		f := t.FeatureValues()
		sum.Danceability += f.Danceability
		sum.Energy += f.Energy
		sum.Valence += f.Valence
		sum.Tempo += f.Tempo
		sum.Acousticness += f.Acousticness
	}
	n := float64(len(tracks))
	return FeatureAverages{
		Danceability: sum.Danceability / n,
		Energy:       sum.Energy / n,
		Valence:      sum.Valence / n,
		Tempo:        sum.Tempo / n,
		Acousticness: sum.Acousticness / n,
	}
}

// FeatureAxes is the fixed axis order of the feature chart.
var FeatureAxes = []string{"Danceability", "Energy", "Valence", "Tempo", "Acousticness"}

// NormalizedAxes returns the averages in FeatureAxes order, with tempo
// rescaled by TempoAxisMax and clamped to 1 so every axis fits [0, 1].
func (f FeatureAverages) NormalizedAxes() []float64 {
	tempo := math.Min(f.Tempo/TempoAxisMax, 1)
	return []float64{f.Danceability, f.Energy, f.Valence, tempo, f.Acousticness}
}

// CuratorShares computes, for each curator category present in the
// filtered playlists, the percentage of that category's tracks from
// refCountry. A category with no tracks reports 0.
func CuratorShares(playlists []filter.FilteredPlaylist, refCountry string) map[string]int {
	totals := make(map[string]int)
	matches := make(map[string]int)
	for _, p := range playlists {
		totals[p.CuratorType] += len(p.FilteredTracks)
		for _, t := range p.FilteredTracks {
			if t.ArtistCountry == refCountry {
				matches[p.CuratorType]++
			}
		}
	}

	shares := make(map[string]int, len(totals))
	for category, total := range totals {
		shares[category] = Percent(matches[category], total)
	}
	return shares
}

// PlaylistRow is one table row of the dashboard.
type PlaylistRow struct {
	Name            string `yaml:"name"`
	Curator         string `yaml:"curator"`
	LaunchYear      string `yaml:"launch_year"`
	Followers       string `yaml:"followers"`
	Regions         int    `yaml:"regions"`
	DiasporaShare   string `yaml:"diaspora_share"`
	ReferenceShare  string `yaml:"reference_share"`
	AvgEnergy       string `yaml:"avg_energy"`
	AvgDanceability string `yaml:"avg_danceability"`
}

// PlaylistRows derives the per-playlist table from the filtered set.
func PlaylistRows(playlists []filter.FilteredPlaylist, refCountry string) []PlaylistRow {
	var rows []PlaylistRow
	for _, p := range playlists {
		reference := 0
		diaspora := 0
		for _, t := range p.FilteredTracks {
			if t.ArtistCountry == refCountry {
				reference++
			}
			if t.Diaspora {
				diaspora++
			}
		}
		avg := AverageFeatures(p.FilteredTracks)

		launch := "Unknown"
		if p.LaunchYear != nil {
			launch = fmt.Sprintf("%d", *p.LaunchYear)
		}
		var followers int64
		if p.FollowerCount != nil {
			followers = *p.FollowerCount
		}

		rows = append(rows, PlaylistRow{
			Name:            p.Name,
			Curator:         p.Curator,
			LaunchYear:      launch,
			Followers:       FormatNumber(followers),
			Regions:         DistinctRegions(p.FilteredTracks),
			DiasporaShare:   FormatPercent(diaspora, len(p.FilteredTracks)),
			ReferenceShare:  FormatPercent(reference, len(p.FilteredTracks)),
			AvgEnergy:       fmt.Sprintf("%.2f", avg.Energy),
			AvgDanceability: fmt.Sprintf("%.2f", avg.Danceability),
		})
	}
	return rows
}
