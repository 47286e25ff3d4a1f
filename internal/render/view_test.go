package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/rilchief/afrostats/internal/analysis"
	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/filter"
)

func intPtr(v int) *int {
	return &v
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{Playlists: []dataset.Playlist{
		{
			Name:        "Afrobeats Hits",
			Curator:     "Spotify",
			CuratorType: "Media Publisher",
			Tracks: []dataset.Track{
				{
					ID: "a", ArtistCountry: "Nigeria", RegionGroup: "Nigeria",
					ReleaseYear: intPtr(2020),
					Features:    &dataset.Features{Danceability: 0.8, Energy: 0.6, Valence: 0.5, Tempo: 120, Acousticness: 0.1},
				},
				{
					ID: "b", ArtistCountry: "Nigeria", RegionGroup: "Nigeria",
					ReleaseYear: intPtr(2021),
					Features:    &dataset.Features{Danceability: 0.6, Energy: 0.8, Valence: 0.7, Tempo: 140, Acousticness: 0.2},
				},
				{
					ID: "c", ArtistCountry: "Ghana", RegionGroup: "Ghana", Diaspora: true,
					ReleaseYear: intPtr(2022),
				},
			},
		},
	}}
}

func buildTestView(t *testing.T, mutate func(*filter.State)) View {
	t.Helper()
	d := testDataset()
	s := filter.NewState(d)
	if mutate != nil {
		mutate(s)
	}
	playlists := filter.FilterPlaylists(d, s)
	return BuildView(playlists, filter.FlattenTracks(playlists), "Nigeria")
}

func TestBuildView(t *testing.T) {
	v := buildTestView(t, nil)

	if v.Empty {
		t.Fatal("expected non-empty view")
	}
	if v.Cards.Playlists != "1" || v.Cards.Tracks != "3" {
		t.Errorf("unexpected cards: %+v", v.Cards)
	}
	if v.Cards.ReferenceShare != "67%" || v.Cards.DiasporaShare != "33%" {
		t.Errorf("unexpected shares: %+v", v.Cards)
	}

	// Regions ordered by descending count.
	if !reflect.DeepEqual(v.RegionChart.Categories, []string{"Nigeria", "Ghana"}) {
		t.Errorf("unexpected region order: %v", v.RegionChart.Categories)
	}
	if !reflect.DeepEqual(v.RegionChart.Values, []float64{2, 1}) {
		t.Errorf("unexpected region values: %v", v.RegionChart.Values)
	}

	if !reflect.DeepEqual(v.FeatureChart.Axes, analysis.FeatureAxes) {
		t.Errorf("unexpected feature axes: %v", v.FeatureChart.Axes)
	}
	if len(v.FeatureChart.Values) != len(analysis.FeatureAxes) {
		t.Errorf("expected %d feature values, got %d", len(analysis.FeatureAxes), len(v.FeatureChart.Values))
	}

	if v.CuratorChart.Name != "Nigeria share by curator type" {
		t.Errorf("unexpected curator chart name: %q", v.CuratorChart.Name)
	}
	if len(v.Rows) != 1 || v.Rows[0].Name != "Afrobeats Hits" {
		t.Errorf("unexpected rows: %+v", v.Rows)
	}
}

func TestBuildViewRegionTieBreak(t *testing.T) {
	tracks := []dataset.Track{
		{RegionGroup: "Ghana"},
		{RegionGroup: "Nigeria"},
	}
	v := BuildView(nil, tracks, "Nigeria")
	if !reflect.DeepEqual(v.RegionChart.Categories, []string{"Ghana", "Nigeria"}) {
		t.Errorf("expected alphabetical tie break, got %v", v.RegionChart.Categories)
	}
}

func TestBuildViewEmpty(t *testing.T) {
	v := buildTestView(t, func(s *filter.State) {
		s.SetSearch("no such playlist")
	})

	if !v.Empty {
		t.Fatal("expected empty view")
	}
	if v.Cards.Playlists != "0" || v.Cards.Tracks != "0" {
		t.Errorf("unexpected cards: %+v", v.Cards)
	}
	if v.Cards.ReferenceShare != "0%" || v.Cards.DiasporaShare != "0%" || v.Cards.AvgDiversity != "0" {
		t.Errorf("unexpected zero cards: %+v", v.Cards)
	}

	// Series stay present but explicitly empty.
	if v.RegionChart.Categories == nil || len(v.RegionChart.Categories) != 0 {
		t.Errorf("expected empty region categories, got %v", v.RegionChart.Categories)
	}
	if v.FeatureChart.Values == nil || len(v.FeatureChart.Values) != 0 {
		t.Errorf("expected empty feature values, got %v", v.FeatureChart.Values)
	}
	if v.CuratorChart.Values == nil || len(v.CuratorChart.Values) != 0 {
		t.Errorf("expected empty curator values, got %v", v.CuratorChart.Values)
	}
}

func TestWriteText(t *testing.T) {
	v := buildTestView(t, nil)
	var buf bytes.Buffer
	if err := WriteText(&buf, v); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Playlists: 1   Tracks: 3",
		"Nigeria tracks: 67%",
		"Tracks by region",
		"Average audio features (0-1)",
		"Nigeria share by curator type",
		"Afrobeats Hits",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextEmpty(t *testing.T) {
	v := buildTestView(t, func(s *filter.State) {
		s.SetSearch("nothing")
	})
	var buf bytes.Buffer
	if err := WriteText(&buf, v); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "No playlists match the current filters.") {
		t.Errorf("expected empty-state line, got:\n%s", out)
	}
	if strings.Contains(out, "Tracks by region") {
		t.Errorf("expected no chart tables in empty output:\n%s", out)
	}
}
