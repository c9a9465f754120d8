package scoringdb

import (
	"context"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/uptrace/bun"
)

// MatchQuery names the match table and the two players on the card.
type MatchQuery struct {
	Table   string
	Player1 scoringtypes.PlayerName
	Player2 scoringtypes.PlayerName
}

// Repository defines the contract for stored match lookups.
//
// Error semantics:
//   - ErrMatchNotFound: no card joins the two named players
//   - ErrInvalidTable: the table name is empty
//   - Other errors: Infrastructure failures (DB connection, query errors)
type Repository interface {
	GetMatch(ctx context.Context, db bun.IDB, q MatchQuery) (*StoredMatch, error)
	SavePlayer(ctx context.Context, db bun.IDB, player *Player) error
	SaveMatch(ctx context.Context, db bun.IDB, match *Match) error
}
