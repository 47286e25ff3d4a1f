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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rilchief/afrostats/internal/archive"
	"github.com/rilchief/afrostats/internal/dataset"
	"github.com/rilchief/afrostats/internal/spotifydata"
)

type FetchConfig struct {
	PlaylistConfigPath string
	ArtistMetadataPath string
	OutPath            string
	ArchivePath        string
	ClientID           string
	ClientSecret       string
}

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetches playlist data from Spotify",
	Long: `Collects the configured playlists, their tracks and audio features
from the Spotify Web API, joins the curated artist metadata and writes
the processed dataset JSON. Each run is recorded in the local archive.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := FetchConfig{
			PlaylistConfigPath: viper.GetString("playlist-config"),
			ArtistMetadataPath: viper.GetString("artist-metadata"),
			OutPath:            viper.GetString("data"),
			ArchivePath:        viper.GetString("database"),
			ClientID:           viper.GetString("spotify_id"),
			ClientSecret:       viper.GetString("spotify_secret"),
		}

		err := runFetch(config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	var playlistConfig string
	fetchCmd.Flags().StringVar(&playlistConfig, "playlist-config", "./playlist_config.json", "Playlist configuration file")
	viper.BindPFlag("playlist-config", fetchCmd.Flags().Lookup("playlist-config"))

	var artistMetadata string
	fetchCmd.Flags().StringVar(&artistMetadata, "artist-metadata", "./artist_metadata.csv", "Artist metadata CSV")
	viper.BindPFlag("artist-metadata", fetchCmd.Flags().Lookup("artist-metadata"))
}

func runFetch(config FetchConfig) error {
	playlistConfig, err := spotifydata.LoadPlaylistConfig(config.PlaylistConfigPath)
	if err != nil {
		return fmt.Errorf("loading playlist config: %w", err)
	}
	artistMetadata, err := spotifydata.LoadArtistMetadata(config.ArtistMetadataPath)
	if err != nil {
		return fmt.Errorf("loading artist metadata: %w", err)
	}

	ctx := context.Background()
	fetcher, err := spotifydata.NewFetcher(ctx, config.ClientID, config.ClientSecret)
	if err != nil {
		return err
	}

	d, err := fetcher.BuildDataset(ctx, playlistConfig, artistMetadata)
	if err != nil {
		return fmt.Errorf("building dataset: %w", err)
	}
	if len(d.Playlists) == 0 {
		fmt.Println("Warning: every configured playlist was skipped")
	}

	payload, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	if err := os.WriteFile(config.OutPath, append(payload, '\n'), 0644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	trackCount := len(d.AllTracks())
	fmt.Printf("Wrote %s (%d playlists, %d tracks)\n", config.OutPath, len(d.Playlists), trackCount)

	if err := recordFetchRun(config.ArchivePath, d, trackCount); err != nil {
		return fmt.Errorf("archiving run: %w", err)
	}
	return nil
}

func recordFetchRun(archivePath string, d *dataset.Dataset, trackCount int) error {
	arc, err := archive.Open(archivePath)
	if err != nil {
		return err
	}
	defer arc.Close()

	startedAt, err := time.Parse(time.RFC3339, d.RunMetadata.StartedAt)
	if err != nil {
		startedAt = time.Now().UTC()
	}
	completedAt, err := time.Parse(time.RFC3339, d.RunMetadata.GeneratedAt)
	if err != nil {
		completedAt = time.Now().UTC()
	}

	_, err = arc.RecordRun(archive.Run{
		StartedAt:     startedAt,
		CompletedAt:   completedAt,
		PlaylistCount: len(d.Playlists),
		TrackCount:    trackCount,
	}, d.RunMetadata.MissingArtists, d.RunMetadata.SkippedPlaylists)
	return err
}
