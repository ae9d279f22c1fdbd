package chart

import "errors"

var (
	// ErrUnknownColor indicates a color name outside the supported set.
	ErrUnknownColor = errors.New("unknown color")

	// ErrUnknownLineStyle indicates an unsupported line-style string.
	ErrUnknownLineStyle = errors.New("unknown line style")

	// ErrBadOptions indicates an option value the renderer cannot use.
	ErrBadOptions = errors.New("bad draw options")

	// ErrNoColorForYear indicates a rendered year missing from the
	// year-to-color assignment.
	ErrNoColorForYear = errors.New("no color assigned to year")
)
