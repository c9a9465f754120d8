package scoringmetrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	ctx := context.Background()
	m := NewPrometheusMetrics()

	m.RecordOperationAttempt(ctx, "ScoreEvent")
	m.RecordOperationAttempt(ctx, "ScoreEvent")
	m.RecordOperationSuccess(ctx, "ScoreEvent")
	m.RecordOperationFailure(ctx, "ScoreFile")
	m.RecordOperationDuration(ctx, "ScoreEvent", 20*time.Millisecond)
	m.RecordStrokesAllocated(ctx, "Player B", 9)
	m.RecordStrokesAllocated(ctx, "Player B", 3)
	m.RecordEventScored(ctx, "stroke", 2, 9)
	m.RecordDBQueryDuration(ctx, 5*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.attempts.WithLabelValues("ScoreEvent")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.successes.WithLabelValues("ScoreEvent")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("ScoreFile")))
	require.Equal(t, 12.0, testutil.ToFloat64(m.strokesAllocated.WithLabelValues("Player B")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.eventsScored.WithLabelValues("stroke")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.playersScored))
	require.Equal(t, 9.0, testutil.ToFloat64(m.holesScored))
	require.Equal(t, 1, testutil.CollectAndCount(m.durations))
	require.Equal(t, 1, testutil.CollectAndCount(m.dbQueryDuration))
}

func TestPrometheusMetrics_Push(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewPrometheusMetrics()
	m.RecordOperationAttempt(context.Background(), "ScoreSample")

	require.NoError(t, m.Push(context.Background(), srv.URL, "golfscore"))
	require.Equal(t, "/metrics/job/golfscore", gotPath)
}

func TestPrometheusMetrics_PushFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewPrometheusMetrics()
	require.Error(t, m.Push(context.Background(), srv.URL, "golfscore"))
}
