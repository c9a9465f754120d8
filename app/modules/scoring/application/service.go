package scoringservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	scoringmetrics "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/metrics"
	"github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/parsers"
	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ScoringService implements the Service interface.
type ScoringService struct {
	parsers parsers.ParserFactory
	repo    scoringdb.Repository
	logger  *slog.Logger
	metrics scoringmetrics.ScoringMetrics
	tracer  trace.Tracer
	db      *bun.DB
}

// NewScoringService creates a new ScoringService. repo and db may be nil when
// no database is configured.
func NewScoringService(
	parserFactory parsers.ParserFactory,
	repo scoringdb.Repository,
	logger *slog.Logger,
	metrics scoringmetrics.ScoringMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ScoringService {
	return &ScoringService{
		parsers: parserFactory,
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *ScoringService,
	ctx context.Context,
	operationName string,
	attrs []attribute.KeyValue,
	op operationFunc[T],
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		append([]attribute.KeyValue{attribute.String("operation", operationName)}, attrs...)...,
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		slog.String("operation", operationName),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			var zero T
			result = zero
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, wrappedErr.Error())
		return result, wrappedErr
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		slog.String("operation", operationName),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}

// --- Service Methods ---

// ScoreEvent scores an already parsed event.
func (s *ScoringService) ScoreEvent(ctx context.Context, event scoringtypes.Event, mode scoringtypes.Mode) (*scoringtypes.Result, error) {
	return withTelemetry(s, ctx, "ScoreEvent", []attribute.KeyValue{
		attribute.String("mode", string(mode)),
		attribute.Int("rounds", len(event.Rounds)),
	}, func(ctx context.Context) (*scoringtypes.Result, error) {
		return s.evaluate(ctx, event, mode)
	})
}

// ScoreFile reads an event from a YAML, CSV or XLSX file and scores it.
func (s *ScoringService) ScoreFile(ctx context.Context, path string, mode scoringtypes.Mode) (*scoringtypes.Result, error) {
	return withTelemetry(s, ctx, "ScoreFile", []attribute.KeyValue{
		attribute.String("mode", string(mode)),
		attribute.String("path", path),
	}, func(ctx context.Context) (*scoringtypes.Result, error) {
		data, err := parsers.ReadFile(path)
		if err != nil {
			return nil, err
		}

		parser, err := s.parsers.GetParser(path)
		if err != nil {
			return nil, err
		}

		event, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		s.logger.DebugContext(ctx, "Parsed event file",
			slog.String("path", path),
			slog.Int("rounds", len(event.Rounds)),
		)
		return s.evaluate(ctx, *event, mode)
	})
}

// ScoreStoredMatch loads the card for two players from the database and
// scores it over the given holes. Only the first len(holes) hole columns are
// used.
func (s *ScoringService) ScoreStoredMatch(ctx context.Context, q scoringdb.MatchQuery, holes []scoringtypes.Hole, mode scoringtypes.Mode) (*scoringtypes.Result, error) {
	return withTelemetry(s, ctx, "ScoreStoredMatch", []attribute.KeyValue{
		attribute.String("mode", string(mode)),
		attribute.String("table", q.Table),
		attribute.String("player1", q.Player1.String()),
		attribute.String("player2", q.Player2.String()),
	}, func(ctx context.Context) (*scoringtypes.Result, error) {
		if s.repo == nil {
			return nil, ErrRepositoryUnavailable
		}
		if len(holes) > scoringdb.MaxHoles {
			return nil, fmt.Errorf("%w: %d holes configured, match table stores %d",
				ErrInconsistentHoleCount, len(holes), scoringdb.MaxHoles)
		}

		var idb bun.IDB
		if s.db != nil {
			idb = s.db
		}

		dbStart := time.Now()
		match, err := s.repo.GetMatch(ctx, idb, q)
		s.metrics.RecordDBQueryDuration(ctx, time.Since(dbStart))
		if err != nil {
			return nil, err
		}

		event := scoringtypes.Event{Rounds: []scoringtypes.Round{{
			Holes: holes,
			Players: []scoringtypes.PlayerScores{
				{Player: match.Player1, CourseHandicap: match.Player1Handicap, Gross: firstN(match.Player1Scores, len(holes))},
				{Player: match.Player2, CourseHandicap: match.Player2Handicap, Gross: firstN(match.Player2Scores, len(holes))},
			},
		}}}
		return s.evaluate(ctx, event, mode)
	})
}

// ScoreSample scores the built-in nine-hole sample card for two players.
func (s *ScoringService) ScoreSample(ctx context.Context, p1 scoringtypes.PlayerName, h1 int, p2 scoringtypes.PlayerName, h2 int, mode scoringtypes.Mode) (*scoringtypes.Result, error) {
	return withTelemetry(s, ctx, "ScoreSample", []attribute.KeyValue{
		attribute.String("mode", string(mode)),
	}, func(ctx context.Context) (*scoringtypes.Result, error) {
		return s.evaluate(ctx, SampleEvent(p1, h1, p2, h2), mode)
	})
}

// evaluate runs the engine and records per-player metrics.
func (s *ScoringService) evaluate(ctx context.Context, event scoringtypes.Event, mode scoringtypes.Mode) (*scoringtypes.Result, error) {
	records, err := ComputeEvent(event)
	if err != nil {
		return nil, err
	}

	result, err := Decide(mode, records)
	if err != nil {
		return nil, err
	}

	holes := 0
	for _, r := range records {
		s.metrics.RecordStrokesAllocated(ctx, r.Player.String(), r.StrokesReceived())
		if len(r.Net) > holes {
			holes = len(r.Net)
		}
	}
	s.metrics.RecordEventScored(ctx, string(mode), len(records), holes)

	s.logger.InfoContext(ctx, "Event scored",
		slog.String("mode", string(mode)),
		slog.String("winner", result.Winner),
		slog.Int("players", len(records)),
		slog.Int("holes", holes),
	)
	return &result, nil
}

func firstN(values []int, n int) []int {
	if len(values) < n {
		n = len(values)
	}
	out := make([]int, n)
	copy(out, values[:n])
	return out
}
