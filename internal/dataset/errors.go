package dataset

import "errors"

var (
	// ErrDataLoad indicates a missing, unreadable, or structurally
	// malformed input file.
	ErrDataLoad = errors.New("data load failed")

	// ErrUnknownColumn indicates a column-drop target that does not
	// exist in the results table.
	ErrUnknownColumn = errors.New("unknown column")
)
