package scoringdb_test

import (
	"context"
	"testing"

	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
	scoringmigrations "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories/migrations"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

func setupSQLite(t *testing.T) *bun.DB {
	t.Helper()
	ctx := context.Background()

	db, err := scoringdb.Open(ctx, scoringdb.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := migrate.NewMigrator(db, scoringmigrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)
	return db
}

func seedMatch(t *testing.T, repo *scoringdb.ScoringDBImpl, p1, p2 *scoringdb.Player, s1, s2 []int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.SavePlayer(ctx, nil, p1))
	require.NoError(t, repo.SavePlayer(ctx, nil, p2))
	require.NotZero(t, p1.PlayerID)
	require.NotZero(t, p2.PlayerID)

	match := &scoringdb.Match{Player1ID: p1.PlayerID, Player2ID: p2.PlayerID}
	match.SetScores(s1, s2)
	require.NoError(t, repo.SaveMatch(ctx, nil, match))
}

func TestScoringDBImpl_GetMatch(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := scoringdb.NewRepository(db)

	tigerScores := []int{4, 4, 3, 5, 4, 4, 3, 5, 4, 4, 4, 3, 5, 4, 4, 3, 5, 4}
	philScores := []int{5, 4, 4, 5, 4, 3, 3, 5, 4, 4, 5, 3, 5, 4, 4, 4, 5, 4}
	seedMatch(t, repo,
		&scoringdb.Player{PlayerName: "Tiger Woods", Handicap: 0},
		&scoringdb.Player{PlayerName: "Phil Mickelson", Handicap: 2},
		tigerScores, philScores,
	)

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetMatch(ctx, nil, scoringdb.MatchQuery{
			Table:   "scores",
			Player1: "Tiger Woods",
			Player2: "Phil Mickelson",
		})
		require.NoError(t, err)
		require.Equal(t, &scoringdb.StoredMatch{
			Player1:         "Tiger Woods",
			Player1Handicap: 0,
			Player1Scores:   tigerScores,
			Player2:         "Phil Mickelson",
			Player2Handicap: 2,
			Player2Scores:   philScores,
		}, got)
	})

	t.Run("players reversed", func(t *testing.T) {
		_, err := repo.GetMatch(ctx, nil, scoringdb.MatchQuery{
			Table:   "scores",
			Player1: "Phil Mickelson",
			Player2: "Tiger Woods",
		})
		require.ErrorIs(t, err, scoringdb.ErrMatchNotFound)
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := repo.GetMatch(ctx, nil, scoringdb.MatchQuery{
			Table:   "scores",
			Player1: "Tiger Woods",
			Player2: "Nobody",
		})
		require.ErrorIs(t, err, scoringdb.ErrMatchNotFound)
	})

	t.Run("empty table name", func(t *testing.T) {
		_, err := repo.GetMatch(ctx, nil, scoringdb.MatchQuery{Player1: "a", Player2: "b"})
		require.ErrorIs(t, err, scoringdb.ErrInvalidTable)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := repo.GetMatch(ctx, nil, scoringdb.MatchQuery{
			Table:   "no_such_table",
			Player1: "Tiger Woods",
			Player2: "Phil Mickelson",
		})
		require.Error(t, err)
		require.NotErrorIs(t, err, scoringdb.ErrMatchNotFound)
	})

	t.Run("inside a transaction", func(t *testing.T) {
		err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			got, err := repo.GetMatch(ctx, tx, scoringdb.MatchQuery{
				Table:   "scores",
				Player1: "Tiger Woods",
				Player2: "Phil Mickelson",
			})
			if err != nil {
				return err
			}
			require.Equal(t, philScores, got.Player2Scores)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := scoringdb.Open(context.Background(), "mysql", "root@/golf")
	require.ErrorIs(t, err, scoringdb.ErrUnsupportedDriver)
}

func TestHoleScores_SetScores(t *testing.T) {
	var h scoringdb.HoleScores
	h.SetScores([]int{4, 5, 3}, []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 9})

	p1 := h.Player1Scores()
	require.Len(t, p1, scoringdb.MaxHoles)
	require.Equal(t, []int{4, 5, 3}, p1[:3])
	require.Equal(t, 0, p1[3])

	p2 := h.Player2Scores()
	require.Len(t, p2, scoringdb.MaxHoles)
	require.Equal(t, 5, p2[17])
}
