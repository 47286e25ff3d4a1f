package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rilchief/afrostats/internal/analysis"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Reports dataset quality indicators",
	Long: `Prints generation timestamps, playlist counts, unresolved artists and
audio-feature coverage for the loaded dataset. These indicators are
independent of any filter selection.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printHealth(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func printHealth(out io.Writer) error {
	d, err := loadDataset()
	if err != nil {
		return err
	}

	health := analysis.Health(d)
	fmt.Fprintf(out, "Generated:          %s\n", health.GeneratedAt)
	fmt.Fprintf(out, "Run started:        %s\n", health.StartedAt)
	fmt.Fprintf(out, "Playlists:          %d\n", health.PlaylistCount)
	fmt.Fprintf(out, "Unresolved artists: %d\n", health.MissingArtists)
	fmt.Fprintf(out, "Feature coverage:   %d%%\n", health.Coverage)

	if health.Status == analysis.StatusWarning {
		fmt.Fprintln(out, "\nWARNING: no track has audio feature data. The feature source was likely unavailable during collection.")
	}
	return nil
}
