package scoringdb

import "errors"

// Sentinel errors for the repository layer.
// These are infrastructure-level errors that indicate database state, not business logic failures.
var (
	// ErrMatchNotFound indicates no stored match exists for the two named players.
	ErrMatchNotFound = errors.New("no match found for players")

	// ErrInvalidTable indicates an empty or unusable match table name.
	ErrInvalidTable = errors.New("invalid match table name")

	// ErrUnsupportedDriver indicates a database driver other than postgres or sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
