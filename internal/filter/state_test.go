package filter

import (
	"reflect"
	"testing"

	"github.com/rilchief/afrostats/internal/dataset"
)

func intPtr(v int) *int {
	return &v
}

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{Playlists: []dataset.Playlist{
		{
			Name:        "Afrobeats Hits",
			CuratorType: "Media Publisher",
			Tracks: []dataset.Track{
				{ID: "a", ReleaseYear: intPtr(2018), RegionGroup: "Nigeria"},
				{ID: "b", ReleaseYear: intPtr(2023), RegionGroup: "Ghana", Diaspora: true},
			},
		},
		{
			Name:        "Ginja",
			CuratorType: "User-Generated",
			Tracks: []dataset.Track{
				{ID: "c", ReleaseYear: intPtr(2020), RegionGroup: "Nigeria"},
				{ID: "d", ReleaseYear: nil},
			},
		},
	}}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(testDataset())

	if s.Search() != "" {
		t.Errorf("expected empty search, got %q", s.Search())
	}
	if s.MinYear() != 2018 || s.MaxYear() != 2023 {
		t.Errorf("expected year range [2018, 2023], got [%d, %d]", s.MinYear(), s.MaxYear())
	}
	if s.DiasporaOnly() {
		t.Error("expected diasporaOnly off by default")
	}
	want := []string{"Media Publisher", "User-Generated"}
	if got := s.AcceptedCuratorTypes(); !reflect.DeepEqual(got, want) {
		t.Errorf("AcceptedCuratorTypes() = %v, want %v", got, want)
	}
}

func TestSetSearchLowercases(t *testing.T) {
	s := NewState(testDataset())
	s.SetSearch("  AfroBeats ")
	if s.Search() != "afrobeats" {
		t.Errorf("expected 'afrobeats', got %q", s.Search())
	}
}

func TestToggleCuratorType(t *testing.T) {
	s := NewState(testDataset())

	s.ToggleCuratorType("Media Publisher")
	if s.Accepts("Media Publisher") {
		t.Error("expected Media Publisher unchecked after toggle")
	}

	// Unchecking the last remaining category is a no-op.
	s.ToggleCuratorType("User-Generated")
	if !s.Accepts("User-Generated") {
		t.Error("last category must stay checked")
	}

	s.ToggleCuratorType("Media Publisher")
	if !s.Accepts("Media Publisher") {
		t.Error("expected Media Publisher re-checked")
	}
}

func TestToggleUnknownCategory(t *testing.T) {
	s := NewState(testDataset())
	s.ToggleCuratorType("Algorithmic")
	if s.Accepts("Algorithmic") {
		t.Error("unknown categories must not enter the accepted set")
	}
}

func TestSetCuratorTypes(t *testing.T) {
	s := NewState(testDataset())

	if err := s.SetCuratorTypes([]string{"User-Generated"}); err != nil {
		t.Fatalf("SetCuratorTypes: %v", err)
	}
	if s.Accepts("Media Publisher") || !s.Accepts("User-Generated") {
		t.Error("expected only User-Generated accepted")
	}

	if err := s.SetCuratorTypes(nil); err == nil {
		t.Error("expected error for empty category list")
	}
	if err := s.SetCuratorTypes([]string{"Algorithmic"}); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestYearClamping(t *testing.T) {
	s := NewState(testDataset())

	s.SetMinYear(1990)
	if s.MinYear() != 2018 {
		t.Errorf("expected min clamped to 2018, got %d", s.MinYear())
	}
	s.SetMaxYear(2030)
	if s.MaxYear() != 2023 {
		t.Errorf("expected max clamped to 2023, got %d", s.MaxYear())
	}

	// The range never inverts, whichever bound moves.
	s.SetMaxYear(2019)
	s.SetMinYear(2022)
	if s.MinYear() > s.MaxYear() {
		t.Errorf("range inverted: [%d, %d]", s.MinYear(), s.MaxYear())
	}
}

func TestReset(t *testing.T) {
	s := NewState(testDataset())
	s.SetSearch("ginja")
	s.ToggleCuratorType("Media Publisher")
	s.SetMinYear(2020)
	s.SetMaxYear(2021)
	s.SetDiasporaOnly(true)

	s.Reset()

	if s.Search() != "" || s.DiasporaOnly() {
		t.Error("expected search and diaspora reset")
	}
	if s.MinYear() != 2018 || s.MaxYear() != 2023 {
		t.Errorf("expected year range restored to [2018, 2023], got [%d, %d]", s.MinYear(), s.MaxYear())
	}
	if !s.Accepts("Media Publisher") || !s.Accepts("User-Generated") {
		t.Error("expected all categories restored")
	}
}
