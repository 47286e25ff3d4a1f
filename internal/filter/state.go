// Package filter holds the dashboard's filter selection and the matching
// logic that derives the visible playlist/track subset from it.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rilchief/afrostats/internal/dataset"
)

// State is the current filter selection. Mutators keep two invariants:
// the accepted curator-category set is never empty, and the year range
// never inverts. State does no rendering; callers recompute after each
// mutation.
type State struct {
	search       string
	accepted     map[string]bool
	minYear      int
	maxYear      int
	diasporaOnly bool

	categories []string
	minBound   int
	maxBound   int
}

// NewState builds the default selection for a dataset: empty search, all
// curator categories accepted, the full observed year range, and the
// diaspora filter off.
func NewState(d *dataset.Dataset) *State {
	s := &State{
		categories: d.CuratorTypes(),
	}
	s.minBound, s.maxBound = d.YearBounds()
	s.Reset()
	return s
}

// Reset restores every field to the dataset defaults.
func (s *State) Reset() {
	s.search = ""
	s.accepted = make(map[string]bool, len(s.categories))
	for _, c := range s.categories {
		s.accepted[c] = true
	}
	s.minYear = s.minBound
	s.maxYear = s.maxBound
	s.diasporaOnly = false
}

// SetSearch stores the name filter, lower-cased.
func (s *State) SetSearch(q string) {
	s.search = strings.ToLower(strings.TrimSpace(q))
}

func (s *State) Search() string {
	return s.search
}

// ToggleCuratorType flips one category in or out of the accepted set.
// Unchecking the last remaining category is a no-op, and unknown
// categories are ignored.
func (s *State) ToggleCuratorType(category string) {
	known := false
	for _, c := range s.categories {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		return
	}

	if s.accepted[category] {
		if len(s.acceptedList()) == 1 {
			return
		}
		delete(s.accepted, category)
		return
	}
	s.accepted[category] = true
}

// SetCuratorTypes replaces the accepted set wholesale. Used by command
// flags, where the caller names the categories to keep.
func (s *State) SetCuratorTypes(categories []string) error {
	if len(categories) == 0 {
		return fmt.Errorf("at least one curator category is required")
	}
	next := make(map[string]bool, len(categories))
	for _, category := range categories {
		known := false
		for _, c := range s.categories {
			if c == category {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown curator category %q (dataset has: %s)",
				category, strings.Join(s.categories, ", "))
		}
		next[category] = true
	}
	s.accepted = next
	return nil
}

// Accepts reports whether a curator category is currently checked.
func (s *State) Accepts(category string) bool {
	return s.accepted[category]
}

// AcceptedCuratorTypes returns the checked categories, sorted.
func (s *State) AcceptedCuratorTypes() []string {
	return s.acceptedList()
}

func (s *State) acceptedList() []string {
	var list []string
	for c := range s.accepted {
		list = append(list, c)
	}
	sort.Strings(list)
	return list
}

// SetMinYear clamps to the dataset bounds and to the current maximum so
// the range never inverts.
func (s *State) SetMinYear(year int) {
	s.minYear = clamp(year, s.minBound, s.maxBound)
	if s.minYear > s.maxYear {
		s.minYear = s.maxYear
	}
}

// SetMaxYear clamps to the dataset bounds and to the current minimum.
func (s *State) SetMaxYear(year int) {
	s.maxYear = clamp(year, s.minBound, s.maxBound)
	if s.maxYear < s.minYear {
		s.maxYear = s.minYear
	}
}

func (s *State) MinYear() int {
	return s.minYear
}

func (s *State) MaxYear() int {
	return s.maxYear
}

// YearBounds returns the dataset's observed year range.
func (s *State) YearBounds() (int, int) {
	return s.minBound, s.maxBound
}

func (s *State) SetDiasporaOnly(on bool) {
	s.diasporaOnly = on
}

func (s *State) DiasporaOnly() bool {
	return s.diasporaOnly
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
