package universe

import "errors"

// Domain errors for world queries and mutations.
var (
	// ErrNoBodies indicates a query against an empty world.
	ErrNoBodies = errors.New("universe: no bodies")

	// ErrTickSize indicates a tick-size adjustment outside the valid range.
	ErrTickSize = errors.New("universe: tick size out of range")

	// ErrDuplicateName indicates a body with the same name already exists.
	ErrDuplicateName = errors.New("universe: duplicate body name")
)
