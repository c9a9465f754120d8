package scoringservice

import "errors"

// Domain errors for the scoring engine.
// These describe input that cannot be scored; callers report them and stop.
var (
	// ErrNoPlayers indicates the event contained no player scores at all.
	ErrNoPlayers = errors.New("no players found")

	// ErrNoHoles indicates a round without any holes.
	ErrNoHoles = errors.New("round has no holes")

	// ErrInconsistentHoleCount indicates a player's score count differs from the round's hole count.
	ErrInconsistentHoleCount = errors.New("inconsistent hole count")

	// ErrInvalidHoleRank indicates a hole difficulty rank that is not a positive integer.
	ErrInvalidHoleRank = errors.New("invalid hole handicap rank")

	// ErrDuplicateHoleRank indicates two holes in a round share a difficulty rank.
	ErrDuplicateHoleRank = errors.New("duplicate hole handicap rank")

	// ErrMatchPlayNeedsTwoPlayers indicates a match-play request with other than two players.
	ErrMatchPlayNeedsTwoPlayers = errors.New("match play requires exactly two players")

	// ErrUnknownMode indicates a scoring mode the engine does not implement.
	ErrUnknownMode = errors.New("unknown scoring mode")

	// ErrRepositoryUnavailable indicates a stored match was requested without a database.
	ErrRepositoryUnavailable = errors.New("no database configured")
)
