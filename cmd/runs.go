/*
Copyright 2026 Google LLC

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
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rilchief/afrostats/internal/archive"
)

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Lists archived fetch runs",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		err := listRuns(viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func listRuns(archivePath string) error {
	arc, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	defer arc.Close()

	runs, err := arc.ListRuns()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tCOMPLETED\tPLAYLISTS\tTRACKS\tMISSING ARTISTS\tSKIPPED")

	const format = "2006-01-02 15:04"
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID, run.StartedAt.UTC().Format(format), run.CompletedAt.UTC().Format(format),
			run.PlaylistCount, run.TrackCount, run.MissingArtists, run.Skipped)
	}

	w.Flush()
	return nil
}
