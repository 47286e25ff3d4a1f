package render

import (
	"fmt"
	"html"

	"github.com/rilchief/afrostats/internal/analysis"
)

// WriteHTML renders a View plus the dataset health report as a
// self-contained HTML document, suitable for an email body.
func WriteHTML(v View, health analysis.HealthReport) string {
	out := `
<html>
  <head>
<style>
td {
  padding: 0.1em 0.2em;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
.warning {
  background: #fff3cd;
  padding: 0.4em;
}
</style>
  </head>
  <body>
`
	out += fmt.Sprintf("<h1>Afrobeats playlist report (%s)</h1>\n", html.EscapeString(v.Country))

	if health.Status == analysis.StatusWarning {
		out += "<div class=\"warning\">Audio feature data was unavailable for this run.</div>\n"
	}
	out += fmt.Sprintf("<div>Generated: %s (run started %s). %d playlists, %d unresolved artists, %d%% feature coverage.</div>\n",
		html.EscapeString(health.GeneratedAt), html.EscapeString(health.StartedAt),
		health.PlaylistCount, health.MissingArtists, health.Coverage)

	out += "<h2>Summary</h2>\n"
	out += fmt.Sprintf("<div>Playlists: %s, Tracks: %s, %s tracks: %s, Diaspora tracks: %s, Avg regions per playlist: %s</div>\n",
		v.Cards.Playlists, v.Cards.Tracks, html.EscapeString(v.Country),
		v.Cards.ReferenceShare, v.Cards.DiasporaShare, v.Cards.AvgDiversity)

	if v.Empty {
		out += "<div>No playlists match the current filters.</div>\n"
		out += `  </body>
</html>
`
		return out
	}

	out += htmlBarTable(v.RegionChart, "Region", "Tracks", "%.0f")
	out += htmlBarTable(v.CuratorChart, "Curator type", "Share", "%.0f%%")

	out += "<h2>Average audio features</h2>\n<table>\n<tr>"
	for _, axis := range v.FeatureChart.Axes {
		out += fmt.Sprintf("<th>%s</th>", axis)
	}
	out += "</tr>\n<tr>"
	for _, value := range v.FeatureChart.Values {
		out += fmt.Sprintf("<td>%.2f</td>", value)
	}
	out += "</tr>\n</table>\n"

	out += "<h2>Playlists</h2>\n<table>\n<tr>"
	for _, header := range playlistHeader(v.Country) {
		out += fmt.Sprintf("<th>%s</th>", html.EscapeString(header))
	}
	out += "</tr>\n"
	for _, row := range v.Rows {
		out += "<tr>"
		for _, cell := range []string{
			row.Name, row.Curator, row.LaunchYear, row.Followers,
			fmt.Sprintf("%d", row.Regions), row.DiasporaShare, row.ReferenceShare,
			row.AvgEnergy, row.AvgDanceability,
		} {
			out += fmt.Sprintf("<td>%s</td>", html.EscapeString(cell))
		}
		out += "</tr>\n"
	}
	out += "</table>\n"

	out += `  </body>
</html>
`
	return out
}

func htmlBarTable(series BarSeries, label, value, format string) string {
	out := fmt.Sprintf("<h2>%s</h2>\n<table>\n", html.EscapeString(series.Name))
	out += fmt.Sprintf("<tr><th>%s</th><th>%s</th></tr>\n", label, value)
	for i, category := range series.Categories {
		out += fmt.Sprintf("<tr><td>%s</td><td>"+format+"</td></tr>\n",
			html.EscapeString(category), series.Values[i])
	}
	out += "</table>\n"
	return out
}
