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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rilchief/afrostats/internal/analysis"
	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/filter"
	"github.com/rilchief/afrostats/internal/render"
)

var dashboardFilters *filterFlags

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Renders the playlist dashboard as text",
	Long: `Loads the processed dataset, applies the filter flags and prints the
summary cards, region and curator breakdowns, audio feature averages and
the per-playlist table.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printDashboard(os.Stdout, dashboardFilters, viper.GetString("country"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardFilters = addFilterFlags(dashboardCmd)
}

func printDashboard(out io.Writer, flags *filterFlags, country string) error {
	d, err := loadDataset()
	if err != nil {
		return err
	}
	state, err := flags.buildState(d)
	if err != nil {
		return err
	}
	return writeDashboard(out, d, state, country)
}

func writeDashboard(out io.Writer, d *dataset.Dataset, state *filter.State, country string) error {
	health := analysis.Health(d)
	if health.Status == analysis.StatusWarning {
		fmt.Fprintln(out, "WARNING: audio feature data was unavailable for this run.")
	}
	fmt.Fprintf(out, "Dataset generated %s (%d playlists, %d unresolved artists, %d%% feature coverage)\n\n",
		health.GeneratedAt, health.PlaylistCount, health.MissingArtists, health.Coverage)

	playlists := filter.FilterPlaylists(d, state)
	tracks := filter.FlattenTracks(playlists)
	view := render.BuildView(playlists, tracks, country)
	return render.WriteText(out, view)
}
