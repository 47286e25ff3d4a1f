package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rilchief/afrostats/internal/render"
)

var reportFilters *filterFlags

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Emits the full dashboard output as YAML",
	Long: `Runs the same filtering and aggregation as the dashboard and writes
the complete result (health, summary, chart series, playlist rows) as
YAML for downstream tooling.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, reportFilters, viper.GetString("country"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportFilters = addFilterFlags(reportCmd)
}

func runReport(out io.Writer, flags *filterFlags, country string) error {
	d, err := loadDataset()
	if err != nil {
		return err
	}
	state, err := flags.buildState(d)
	if err != nil {
		return err
	}

	report := render.BuildReport(d, state, country)

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	err = encoder.Encode(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}
