package scoringdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/uptrace/bun"
)

// ScoringDBImpl is the bun implementation of Repository.
type ScoringDBImpl struct {
	DB *bun.DB
}

// NewRepository creates a repository bound to db.
func NewRepository(db *bun.DB) *ScoringDBImpl {
	return &ScoringDBImpl{DB: db}
}

// holeColumns lists every hole column pair in card order.
var holeColumns = func() string {
	cols := make([]string, 0, MaxHoles*2)
	for i := 1; i <= MaxHoles; i++ {
		cols = append(cols,
			fmt.Sprintf("r.hole%d_score_p1", i),
			fmt.Sprintf("r.hole%d_score_p2", i),
		)
	}
	return strings.Join(cols, ", ")
}()

func (db *ScoringDBImpl) idb(tx bun.IDB) bun.IDB {
	if tx != nil {
		return tx
	}
	return db.DB
}

// GetMatch joins the players table twice onto the match table and returns
// the first card where player1 and player2 match the given names.
func (db *ScoringDBImpl) GetMatch(ctx context.Context, tx bun.IDB, q MatchQuery) (*StoredMatch, error) {
	if strings.TrimSpace(q.Table) == "" {
		return nil, ErrInvalidTable
	}

	slog.DebugContext(ctx, "Executing ScoringDBImpl.GetMatch",
		slog.String("table", q.Table),
		slog.String("player1", q.Player1.String()),
		slog.String("player2", q.Player2.String()),
	)

	row := new(matchRow)
	err := db.idb(tx).NewSelect().
		TableExpr("? AS r", bun.Ident(q.Table)).
		ColumnExpr("p1.player_name AS player1_name").
		ColumnExpr("p1.handicap AS player1_handicap").
		ColumnExpr("p2.player_name AS player2_name").
		ColumnExpr("p2.handicap AS player2_handicap").
		ColumnExpr(holeColumns).
		Join("JOIN players AS p1 ON r.player1_id = p1.player_id").
		Join("JOIN players AS p2 ON r.player2_id = p2.player_id").
		Where("p1.player_name = ?", string(q.Player1)).
		Where("p2.player_name = ?", string(q.Player2)).
		Limit(1).
		Scan(ctx, row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s and %s", ErrMatchNotFound, q.Player1, q.Player2)
		}
		return nil, fmt.Errorf("failed to query match from %s: %w", q.Table, err)
	}

	return row.toStoredMatch(), nil
}

// SavePlayer inserts a player and fills in the generated id.
func (db *ScoringDBImpl) SavePlayer(ctx context.Context, tx bun.IDB, player *Player) error {
	if _, err := db.idb(tx).NewInsert().Model(player).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert player %q: %w", player.PlayerName, err)
	}
	return nil
}

// SaveMatch inserts a match card.
func (db *ScoringDBImpl) SaveMatch(ctx context.Context, tx bun.IDB, match *Match) error {
	if _, err := db.idb(tx).NewInsert().Model(match).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

var _ Repository = (*ScoringDBImpl)(nil)
