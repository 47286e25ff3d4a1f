package spotifydata

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/rilchief/afrostats/internal/dataset"
)

// Fetcher wraps the Spotify client with the rate limiting the Web API
// expects from batch collectors.
type Fetcher struct {
	client  *spotify.Client
	limiter *rate.Limiter
}

// NewFetcher authenticates with the client-credentials flow. Playlist
// and audio-feature reads need no user consent.
func NewFetcher(ctx context.Context, clientID, clientSecret string) (*Fetcher, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("spotify client id and secret must be set")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticating with Spotify: %w", err)
	}

	return &Fetcher{
		client:  spotify.New(spotifyauth.New().Client(ctx, token)),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}, nil
}

// BuildDataset collects every configured playlist and assembles the
// processed dataset. Playlists that fail to fetch are recorded under
// skippedPlaylists and do not abort the run; a failed audio-features
// batch only costs feature coverage.
func (f *Fetcher) BuildDataset(ctx context.Context, config map[string]PlaylistConfig, artists map[string]ArtistInfo) (*dataset.Dataset, error) {
	startedAt := utcTimestamp()

	slugs := make([]string, 0, len(config))
	for slug := range config {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	var playlists []dataset.Playlist
	missing := make(map[string]bool)
	skipped := make(map[string]dataset.SkippedPlaylist)

	for _, slug := range slugs {
		cfg := config[slug]
		fmt.Printf("Fetching playlist %s (%s)...\n", slug, cfg.ID)

		playlist, items, err := f.fetchPlaylist(ctx, cfg)
		if err != nil {
			status := "?"
			var serr spotify.Error
			if errors.As(err, &serr) {
				status = strconv.Itoa(serr.Status)
			}
			fmt.Printf("  ! failed to fetch playlist (status %s), skipping\n", status)
			skipped[slug] = dataset.SkippedPlaylist{
				PlaylistID: cfg.ID,
				Status:     status,
				Message:    err.Error(),
			}
			continue
		}

		features, err := f.fetchAudioFeatures(ctx, trackIDs(items))
		if err != nil {
			// Coverage degrades to zero for these tracks; the health
			// report surfaces that.
			fmt.Printf("  ! audio features unavailable: %v\n", err)
			features = nil
		}

		playlists = append(playlists, buildPlaylist(slug, cfg, playlist, items, features, artists, missing))
	}

	missingArtists := make([]string, 0, len(missing))
	for artist := range missing {
		missingArtists = append(missingArtists, artist)
	}
	sort.Strings(missingArtists)

	return &dataset.Dataset{
		Playlists: playlists,
		RunMetadata: dataset.RunMetadata{
			StartedAt:        startedAt,
			GeneratedAt:      utcTimestamp(),
			PlaylistCount:    len(playlists),
			MissingArtists:   missingArtists,
			SkippedPlaylists: skipped,
		},
	}, nil
}

func (f *Fetcher) fetchPlaylist(ctx context.Context, cfg PlaylistConfig) (*spotify.FullPlaylist, []spotify.PlaylistTrack, error) {
	var opts []spotify.RequestOption
	if cfg.Market != "" {
		opts = append(opts, spotify.Market(cfg.Market))
	}

	var playlist *spotify.FullPlaylist
	err := retry.Do(
		func() error {
			if err := f.limiter.Wait(ctx); err != nil {
				return err
			}
			var err error
			playlist, err = f.client.GetPlaylist(ctx, spotify.ID(cfg.ID), opts...)
			return err
		},
		retry.RetryIf(transient),
	)
	if err != nil {
		return nil, nil, err
	}

	items := append([]spotify.PlaylistTrack(nil), playlist.Tracks.Tracks...)
	page := playlist.Tracks
	for {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}
		err := f.client.NextPage(ctx, &page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("paging playlist tracks: %w", err)
		}
		items = append(items, page.Tracks...)
	}

	return playlist, items, nil
}

func (f *Fetcher) fetchAudioFeatures(ctx context.Context, ids []spotify.ID) (map[spotify.ID]*spotify.AudioFeatures, error) {
	features := make(map[spotify.ID]*spotify.AudioFeatures)
	// The audio-features endpoint takes at most 100 ids per request.
	for start := 0; start < len(ids); start += 100 {
		end := start + 100
		if end > len(ids) {
			end = len(ids)
		}

		var batch []*spotify.AudioFeatures
		err := retry.Do(
			func() error {
				if err := f.limiter.Wait(ctx); err != nil {
					return err
				}
				var err error
				batch, err = f.client.GetAudioFeatures(ctx, ids[start:end]...)
				return err
			},
			retry.RetryIf(transient),
		)
		if err != nil {
			return nil, fmt.Errorf("fetching audio features: %w", err)
		}
		for _, af := range batch {
			if af != nil {
				features[af.ID] = af
			}
		}
	}
	return features, nil
}

func transient(err error) bool {
	var serr spotify.Error
	if errors.As(err, &serr) {
		return serr.Status == 429 || serr.Status/100 == 5
	}
	return false
}

func trackIDs(items []spotify.PlaylistTrack) []spotify.ID {
	var ids []spotify.ID
	for _, item := range items {
		if !item.IsLocal && item.Track.ID != "" {
			ids = append(ids, item.Track.ID)
		}
	}
	return ids
}

func buildPlaylist(slug string, cfg PlaylistConfig, playlist *spotify.FullPlaylist,
	items []spotify.PlaylistTrack, features map[spotify.ID]*spotify.AudioFeatures,
	artists map[string]ArtistInfo, missing map[string]bool) dataset.Playlist {

	var tracks []dataset.Track
	var launchYear *int
	for _, item := range items {
		if year := releaseYear(item.Track.Album.ReleaseDate); launchYear == nil && year != nil {
			launchYear = year
		}
		if track, ok := buildTrack(item, features, artists, missing); ok {
			tracks = append(tracks, track)
		}
	}

	name := playlist.Name
	if name == "" {
		name = cfg.Label
	}
	if name == "" {
		name = slug
	}
	curator := playlist.Owner.DisplayName
	if curator == "" {
		curator = playlist.Owner.ID
	}
	if curator == "" {
		curator = "Unknown"
	}
	curatorType := cfg.CuratorType
	if curatorType == "" {
		curatorType = "Unknown"
	}
	followers := int64(playlist.Followers.Count)

	return dataset.Playlist{
		ID:            slug,
		Name:          name,
		Curator:       curator,
		CuratorType:   curatorType,
		LaunchYear:    launchYear,
		FollowerCount: &followers,
		Description:   playlist.Description,
		Tracks:        tracks,
	}
}

func buildTrack(item spotify.PlaylistTrack, features map[spotify.ID]*spotify.AudioFeatures,
	artists map[string]ArtistInfo, missing map[string]bool) (dataset.Track, bool) {

	track := item.Track
	if item.IsLocal || track.ID == "" {
		return dataset.Track{}, false
	}

	var names []string
	for _, artist := range track.Artists {
		names = append(names, artist.Name)
	}
	artistNames := strings.Join(names, ", ")
	if artistNames == "" {
		artistNames = "Unknown"
	}

	info := ArtistInfo{Country: "Unknown", RegionGroup: "Unknown"}
	if len(names) > 0 && names[0] != "" {
		if known, ok := artists[names[0]]; ok {
			info = known
		} else {
			missing[names[0]] = true
		}
	}

	var featureBlock *dataset.Features
	if af := features[track.ID]; af != nil {
		featureBlock = &dataset.Features{
			Danceability: float64(af.Danceability),
			Energy:       float64(af.Energy),
			Valence:      float64(af.Valence),
			Tempo:        float64(af.Tempo),
			Acousticness: float64(af.Acousticness),
		}
	}

	return dataset.Track{
		ID:            string(track.ID),
		Title:         track.Name,
		Artist:        artistNames,
		ArtistCountry: info.Country,
		RegionGroup:   info.RegionGroup,
		Diaspora:      info.Diaspora,
		ReleaseYear:   releaseYear(track.Album.ReleaseDate),
		Features:      featureBlock,
	}, true
}

// releaseYear extracts the year from Spotify release dates, which come
// as "2006", "2006-01" or "2006-01-02" depending on album precision.
func releaseYear(releaseDate string) *int {
	if len(releaseDate) < 4 {
		return nil
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil || year == 0 {
		return nil
	}
	return &year
}

func utcTimestamp() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}
