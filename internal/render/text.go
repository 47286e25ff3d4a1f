package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// WriteText renders a View as plain text: summary cards, the three
// chart series as tables, and the playlist table.
func WriteText(out io.Writer, v View) error {
	fmt.Fprintf(out, "Playlists: %s   Tracks: %s\n", v.Cards.Playlists, v.Cards.Tracks)
	fmt.Fprintf(out, "%s tracks: %s   Diaspora tracks: %s   Avg regions per playlist: %s\n\n",
		v.Country, v.Cards.ReferenceShare, v.Cards.DiasporaShare, v.Cards.AvgDiversity)

	if v.Empty {
		fmt.Fprintln(out, "No playlists match the current filters.")
		return nil
	}

	fmt.Fprintln(out, v.RegionChart.Name)
	if err := writeBarTable(out, "Region", "Tracks", v.RegionChart, "%.0f"); err != nil {
		return err
	}

	fmt.Fprintln(out, "Average audio features (0-1)")
	features := tablewriter.NewWriter(out)
	features.Header([]string{"Feature", "Value"})
	for i, axis := range v.FeatureChart.Axes {
		if err := features.Append([]string{axis, fmt.Sprintf("%.2f", v.FeatureChart.Values[i])}); err != nil {
			return fmt.Errorf("rendering feature table: %w", err)
		}
	}
	if err := features.Render(); err != nil {
		return fmt.Errorf("rendering feature table: %w", err)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, v.CuratorChart.Name)
	if err := writeBarTable(out, "Curator type", "Share", v.CuratorChart, "%.0f%%"); err != nil {
		return err
	}

	fmt.Fprintln(out, "Playlists")
	table := tablewriter.NewWriter(out)
	table.Header(playlistHeader(v.Country))
	for _, row := range v.Rows {
		cells := []string{
			row.Name, row.Curator, row.LaunchYear, row.Followers,
			fmt.Sprintf("%d", row.Regions), row.DiasporaShare, row.ReferenceShare,
			row.AvgEnergy, row.AvgDanceability,
		}
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("rendering playlist table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering playlist table: %w", err)
	}

	return nil
}

func playlistHeader(country string) []string {
	return []string{
		"Playlist", "Curator", "Launch", "Followers", "Regions",
		"Diaspora", country, "Energy", "Dance",
	}
}

func writeBarTable(out io.Writer, label, value string, series BarSeries, format string) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{label, value})
	for i, category := range series.Categories {
		if err := table.Append([]string{category, fmt.Sprintf(format, series.Values[i])}); err != nil {
			return fmt.Errorf("rendering %s table: %w", label, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering %s table: %w", label, err)
	}
	fmt.Fprintln(out)
	return nil
}
