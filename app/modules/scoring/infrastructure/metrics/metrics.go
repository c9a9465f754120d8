package scoringmetrics

import (
	"context"
	"time"
)

// ScoringMetrics records what happens during a scoring run.
type ScoringMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordStrokesAllocated(ctx context.Context, player string, strokes int)
	RecordEventScored(ctx context.Context, mode string, players int, holes int)
	RecordDBQueryDuration(ctx context.Context, duration time.Duration)
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordStrokesAllocated(context.Context, string, int)            {}
func (NoOpMetrics) RecordEventScored(context.Context, string, int, int)            {}
func (NoOpMetrics) RecordDBQueryDuration(context.Context, time.Duration)           {}

var _ ScoringMetrics = NoOpMetrics{}
