package bias

import "errors"

var (
	// ErrUnknownState indicates a state with no district-count entry.
	ErrUnknownState = errors.New("unknown state")

	// ErrNoData indicates zero two-party votes for a state/year.
	ErrNoData = errors.New("no two-party vote data")

	// ErrNoMajority indicates no district with a qualifying Democratic
	// share, which signals malformed or empty per-district data.
	ErrNoMajority = errors.New("no district won")
)
