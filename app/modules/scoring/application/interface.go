package scoringservice

import (
	"context"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
)

// Service defines the interface for the ScoringService.
type Service interface {
	ScoreEvent(ctx context.Context, event scoringtypes.Event, mode scoringtypes.Mode) (*scoringtypes.Result, error)
	ScoreFile(ctx context.Context, path string, mode scoringtypes.Mode) (*scoringtypes.Result, error)
	ScoreStoredMatch(ctx context.Context, q scoringdb.MatchQuery, holes []scoringtypes.Hole, mode scoringtypes.Mode) (*scoringtypes.Result, error)
	ScoreSample(ctx context.Context, p1 scoringtypes.PlayerName, h1 int, p2 scoringtypes.PlayerName, h2 int, mode scoringtypes.Mode) (*scoringtypes.Result, error)
}

var _ Service = (*ScoringService)(nil)
