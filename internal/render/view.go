// Package render translates aggregation output into the shapes the
// table and chart renderers consume. It performs no business logic.
package render

import (
	"sort"

	"github.com/rilchief/afrostats/internal/analysis"
	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/filter"
)

// BarSeries is the generic categories-plus-values contract every bar
// chart consumer is driven through.
type BarSeries struct {
	Name       string    `yaml:"name"`
	Categories []string  `yaml:"categories"`
	Values     []float64 `yaml:"values"`
}

// RadarSeries drives the five-axis audio feature chart. Values are
// normalized to [0, 1].
type RadarSeries struct {
	Axes   []string  `yaml:"axes"`
	Values []float64 `yaml:"values"`
}

// Cards holds the summary card texts.
type Cards struct {
	Playlists      string `yaml:"playlists"`
	Tracks         string `yaml:"tracks"`
	ReferenceShare string `yaml:"reference_share"`
	DiasporaShare  string `yaml:"diaspora_share"`
	AvgDiversity   string `yaml:"avg_diversity"`
}

// View is everything a renderer needs for one recomputation. When Empty
// is set, every series is present but explicitly empty, and the table is
// replaced by an empty-state line.
type View struct {
	Country      string                 `yaml:"country"`
	Cards        Cards                  `yaml:"cards"`
	RegionChart  BarSeries              `yaml:"region_chart"`
	FeatureChart RadarSeries            `yaml:"feature_chart"`
	CuratorChart BarSeries              `yaml:"curator_chart"`
	Rows         []analysis.PlaylistRow `yaml:"playlists"`
	Empty        bool                   `yaml:"empty"`
}

// BuildView runs the aggregation engine over the filtered set and maps
// the results into chart series and table rows.
func BuildView(playlists []filter.FilteredPlaylist, tracks []dataset.Track, country string) View {
	summary := analysis.Summarize(playlists, tracks, country)
	view := View{
		Country: country,
		Cards: Cards{
			Playlists:      analysis.FormatNumber(int64(summary.PlaylistCount)),
			Tracks:         analysis.FormatNumber(int64(summary.TrackCount)),
			ReferenceShare: summary.ReferenceShare,
			DiasporaShare:  summary.DiasporaShare,
			AvgDiversity:   summary.AvgDiversity,
		},
	}

	if len(tracks) == 0 {
		view.Empty = true
		view.RegionChart = BarSeries{Name: "Tracks by region", Categories: []string{}, Values: []float64{}}
		view.FeatureChart = RadarSeries{Axes: analysis.FeatureAxes, Values: []float64{}}
		view.CuratorChart = BarSeries{Name: country + " share by curator type", Categories: []string{}, Values: []float64{}}
		return view
	}

	view.RegionChart = regionSeries(analysis.RegionHistogram(tracks))
	view.FeatureChart = RadarSeries{
		Axes:   analysis.FeatureAxes,
		Values: analysis.AverageFeatures(tracks).NormalizedAxes(),
	}
	view.CuratorChart = curatorSeries(analysis.CuratorShares(playlists, country), country)
	view.Rows = analysis.PlaylistRows(playlists, country)
	return view
}

// regionSeries orders regions by descending track count, ties broken by
// name so output is stable.
func regionSeries(histogram map[string]int) BarSeries {
	series := BarSeries{Name: "Tracks by region", Categories: []string{}, Values: []float64{}}
	for region := range histogram {
		series.Categories = append(series.Categories, region)
	}
	sort.Slice(series.Categories, func(i, j int) bool {
		a, b := series.Categories[i], series.Categories[j]
		if histogram[a] != histogram[b] {
			return histogram[a] > histogram[b]
		}
		return a < b
	})
	for _, region := range series.Categories {
		series.Values = append(series.Values, float64(histogram[region]))
	}
	return series
}

func curatorSeries(shares map[string]int, country string) BarSeries {
	series := BarSeries{
		Name:       country + " share by curator type",
		Categories: []string{},
		Values:     []float64{},
	}
	for category := range shares {
		series.Categories = append(series.Categories, category)
	}
	sort.Strings(series.Categories)
	for _, category := range series.Categories {
		series.Values = append(series.Values, float64(shares[category]))
	}
	return series
}
