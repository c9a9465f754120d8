package scoringservice

import (
	"context"
	"sync"
	"time"

	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Scoring Repo
// ------------------------

type FakeScoringRepo struct {
	trace []string

	GetMatchFunc   func(ctx context.Context, db bun.IDB, q scoringdb.MatchQuery) (*scoringdb.StoredMatch, error)
	SavePlayerFunc func(ctx context.Context, db bun.IDB, player *scoringdb.Player) error
	SaveMatchFunc  func(ctx context.Context, db bun.IDB, match *scoringdb.Match) error
}

func NewFakeScoringRepo() *FakeScoringRepo {
	return &FakeScoringRepo{
		trace: []string{},
	}
}

func (f *FakeScoringRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeScoringRepo) GetMatch(ctx context.Context, db bun.IDB, q scoringdb.MatchQuery) (*scoringdb.StoredMatch, error) {
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, db, q)
	}
	return nil, scoringdb.ErrMatchNotFound
}

func (f *FakeScoringRepo) SavePlayer(ctx context.Context, db bun.IDB, player *scoringdb.Player) error {
	f.record("SavePlayer")
	if f.SavePlayerFunc != nil {
		return f.SavePlayerFunc(ctx, db, player)
	}
	return nil
}

func (f *FakeScoringRepo) SaveMatch(ctx context.Context, db bun.IDB, match *scoringdb.Match) error {
	f.record("SaveMatch")
	if f.SaveMatchFunc != nil {
		return f.SaveMatchFunc(ctx, db, match)
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakeScoringRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ scoringdb.Repository = (*FakeScoringRepo)(nil)

// ------------------------
// Fake Metrics
// ------------------------

type FakeMetrics struct {
	mu        sync.Mutex
	trace     []string
	strokes   map[string]int
	dbQueries int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{strokes: map[string]int{}}
}

func (m *FakeMetrics) record(step string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trace = append(m.trace, step)
}

func (m *FakeMetrics) RecordOperationAttempt(_ context.Context, op string) { m.record("attempt:" + op) }
func (m *FakeMetrics) RecordOperationSuccess(_ context.Context, op string) { m.record("success:" + op) }
func (m *FakeMetrics) RecordOperationFailure(_ context.Context, op string) { m.record("failure:" + op) }
func (m *FakeMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

func (m *FakeMetrics) RecordStrokesAllocated(_ context.Context, player string, strokes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strokes[player] = strokes
}

func (m *FakeMetrics) RecordEventScored(_ context.Context, mode string, _, _ int) {
	m.record("scored:" + mode)
}

func (m *FakeMetrics) RecordDBQueryDuration(context.Context, time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dbQueries++
}

func (m *FakeMetrics) Trace() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.trace))
	copy(out, m.trace)
	return out
}
