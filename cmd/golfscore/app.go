package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	scoringservice "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/application"
	scoringmetrics "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/metrics"
	"github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/parsers"
	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-scorer/config"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "golfscore"

// runEnv is built once per invocation in the Before hook.
type runEnv struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *scoringmetrics.PrometheusMetrics
	tracer  trace.Tracer
	runID   string
	stdin   io.Reader
	pushed  bool
}

func (e *runEnv) service(repo scoringdb.Repository, db *bun.DB) *scoringservice.ScoringService {
	return scoringservice.NewScoringService(parsers.NewFactory(), repo, e.logger, e.metrics, e.tracer, db)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	env := &runEnv{stdin: stdin}

	return &cli.App{
		Name:      serviceName,
		Usage:     "score golf matches with handicap strokes",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"GOLF_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "debug logging",
			},
			&cli.BoolFlag{
				Name:  "breakdown",
				Usage: "print each player's hole by hole breakdown",
			},
			&cli.StringFlag{
				Name:  "export-xlsx",
				Usage: "write the breakdown to an XLSX workbook",
			},
			&cli.StringFlag{
				Name:  "chart",
				Usage: "write a PNG chart of cumulative net scores",
			},
			&cli.StringFlag{
				Name:    "metrics-push-url",
				Usage:   "Prometheus Pushgateway to push run metrics to",
				EnvVars: []string{"METRICS_PUSH_URL"},
			},
		},
		Before: func(c *cli.Context) error {
			return env.setup(c)
		},
		After: func(c *cli.Context) error {
			return env.pushMetrics(c)
		},
		// Exit errors terminate the process before After runs.
		ExitErrHandler: env.handleExitErr,
		Commands: []*cli.Command{
			newMatchCommand(env),
			newFileCommand(env),
			newDBCommand(env),
			newMigrateCommand(env),
		},
	}
}

func (e *runEnv) setup(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	e.runID = uuid.NewString()
	e.logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})).
		With(slog.String("run_id", e.runID))

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if url := c.String("metrics-push-url"); url != "" {
		cfg.Observability.MetricsPushURL = url
	}
	e.cfg = cfg

	e.metrics = scoringmetrics.NewPrometheusMetrics()
	e.tracer = otel.Tracer(serviceName)

	e.logger.Debug("Loaded config",
		slog.String("config", c.String("config")),
		slog.String("driver", cfg.Database.Driver),
		slog.String("table", cfg.Database.Table),
	)
	return nil
}

// handleExitErr pushes the run's metrics before handing the error to
// cli.HandleExitCoder, which may exit the process.
func (e *runEnv) handleExitErr(c *cli.Context, err error) {
	if err == nil {
		return
	}
	_ = e.pushMetrics(c)
	cli.HandleExitCoder(err)
}

// pushMetrics pushes at most once per run.
func (e *runEnv) pushMetrics(c *cli.Context) error {
	if e.pushed || e.cfg == nil || e.metrics == nil || e.cfg.Observability.MetricsPushURL == "" {
		return nil
	}
	e.pushed = true
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if err := e.metrics.Push(ctx, e.cfg.Observability.MetricsPushURL, e.cfg.Observability.MetricsJob); err != nil {
		// A failed push never changes the outcome of the run.
		e.logger.Warn("Failed to push metrics",
			slog.String("url", e.cfg.Observability.MetricsPushURL),
			slog.Any("error", err),
		)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
