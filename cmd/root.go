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
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/rilchief/afrostats/internal/dataset"
)

var cfgFile string
var dataPath string
var archivePath string
var referenceCountry string
var spotifyID string
var spotifySecret string
var sendgridAPIKey string
var fromAddress string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "afrostats",
	Short: "Analyzes Afrobeats playlist data from Spotify",
	Long: `Collects playlist, track and audio-feature data from the Spotify Web
API and renders filterable summaries: regional spread, diaspora share,
curator comparisons and per-playlist audio profiles.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.afrostats.yaml)")

	rootCmd.PersistentFlags().StringVar(
		&dataPath, "data", "./afrobeats_playlists.json", "Path to the processed dataset JSON")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	rootCmd.PersistentFlags().StringVarP(
		&archivePath, "database", "d", "./afrostats.db", "Path to the SQLite fetch archive")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().StringVar(
		&referenceCountry, "country", "Nigeria", "Reference country for share metrics")
	viper.BindPFlag("country", rootCmd.PersistentFlags().Lookup("country"))

	rootCmd.PersistentFlags().StringVar(&spotifyID, "spotify_id", "", "Spotify client ID")
	viper.BindPFlag("spotify_id", rootCmd.PersistentFlags().Lookup("spotify_id"))

	rootCmd.PersistentFlags().StringVar(&spotifySecret, "spotify_secret", "", "Spotify client secret")
	viper.BindPFlag("spotify_secret", rootCmd.PersistentFlags().Lookup("spotify_secret"))

	rootCmd.PersistentFlags().StringVar(&sendgridAPIKey, "sendgrid_api_key", "", "SendGrid API key")
	viper.BindPFlag("sendgrid_api_key", rootCmd.PersistentFlags().Lookup("sendgrid_api_key"))

	rootCmd.PersistentFlags().StringVar(&fromAddress, "from", "", "From email address")
	viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Spotify credentials usually live in a .env next to the data files.
	godotenv.Load()
	viper.BindEnv("spotify_id", "SPOTIFY_CLIENT_ID")
	viper.BindEnv("spotify_secret", "SPOTIFY_CLIENT_SECRET")
	viper.BindEnv("sendgrid_api_key", "SENDGRID_API_KEY")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".afrostats" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".afrostats")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func loadDataset() (*dataset.Dataset, error) {
	return dataset.Load(viper.GetString("data"))
}
