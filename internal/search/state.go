package search

import (
	"slices"

	"github.com/mmcdole/marquee/internal/domain"
)

// Mode is the single thing a presentation surface should render in the main area
type Mode int

const (
	ModeResults Mode = iota // grid (possibly empty)
	ModeLoading             // loader; suppresses grid and error
	ModeError               // error banner
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	default:
		return "results"
	}
}

// State is a read-only snapshot of the search UI state
type State struct {
	Query     string         // last submitted query
	Movies    []domain.Movie // current results, in gateway order
	IsLoading bool
	HasError  bool
	Selected  *domain.Movie // detail modal target; independent of Mode

	// Version increases on every mutation. Observers may receive snapshots
	// out of order and should drop any older than the last one applied.
	Version uint64
}

// Mode returns the active render mode. Loading wins over error.
func (s State) Mode() Mode {
	switch {
	case s.IsLoading:
		return ModeLoading
	case s.HasError:
		return ModeError
	default:
		return ModeResults
	}
}

// HasSelection returns true if the detail modal should be shown
func (s State) HasSelection() bool {
	return s.Selected != nil
}

// clone returns a deep copy safe to hand to other goroutines
func (s State) clone() State {
	c := s
	c.Movies = slices.Clone(s.Movies)
	if s.Selected != nil {
		sel := *s.Selected
		c.Selected = &sel
	}
	return c
}

// Observer receives a snapshot after every state change
type Observer interface {
	OnStateChange(state State)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(state State)

// OnStateChange calls f(state)
func (f ObserverFunc) OnStateChange(state State) {
	f(state)
}
