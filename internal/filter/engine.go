package filter

import (
	"strings"

	"github.com/rilchief/afrostats/internal/dataset"
)

// FilteredPlaylist is a playlist annotated with the subset of its tracks
// that pass the current filters. The source playlist is never mutated.
type FilteredPlaylist struct {
	dataset.Playlist
	FilteredTracks []dataset.Track
}

// FilterTracks returns the playlist's tracks that have a release year
// inside the selected range, passing the diaspora gate when it is on.
// Tracks without a release year never match. Source order is preserved.
func FilterTracks(p dataset.Playlist, s *State) []dataset.Track {
	var matched []dataset.Track
	for _, t := range p.Tracks {
		if t.ReleaseYear == nil {
			continue
		}
		year := *t.ReleaseYear
		if year < s.MinYear() || year > s.MaxYear() {
			continue
		}
		if s.DiasporaOnly() && !t.Diaspora {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// FilterPlaylists returns the playlists whose curator category is
// accepted, whose name contains the search text (case-insensitive; the
// empty search matches everything), and which keep at least one track
// after FilterTracks. Playlists with no surviving tracks are dropped
// entirely.
func FilterPlaylists(d *dataset.Dataset, s *State) []FilteredPlaylist {
	var matched []FilteredPlaylist
	for _, p := range d.Playlists {
		if !s.Accepts(p.CuratorType) {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), s.Search()) {
			continue
		}
		tracks := FilterTracks(p, s)
		if len(tracks) == 0 {
			continue
		}
		matched = append(matched, FilteredPlaylist{Playlist: p, FilteredTracks: tracks})
	}
	return matched
}

// FlattenTracks collects the filtered tracks of every playlist into a
// single slice, in playlist order.
func FlattenTracks(playlists []FilteredPlaylist) []dataset.Track {
	var tracks []dataset.Track
	for _, p := range playlists {
		tracks = append(tracks, p.FilteredTracks...)
	}
	return tracks
}
