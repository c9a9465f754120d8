package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	scoringservice "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/application"
	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/parsers"
	scoringdb "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/repositories"
)

func modeFlag(defaultMode scoringtypes.Mode) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "mode",
		Value: string(defaultMode),
		Usage: "scoring mode: match or stroke",
	}
}

func parseMode(c *cli.Context) (scoringtypes.Mode, error) {
	mode, err := scoringtypes.ParseMode(strings.ToLower(c.String("mode")))
	if err != nil {
		return "", cli.Exit(err.Error(), 2)
	}
	return mode, nil
}

func newMatchCommand(env *runEnv) *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "score the built-in nine hole card for two players",
		ArgsUsage: "<player1> <handicap1> <player2> <handicap2>",
		Flags:     []cli.Flag{modeFlag(scoringtypes.ModeMatchPlay)},
		Action: func(c *cli.Context) error {
			if c.NArg() != 4 {
				return cli.Exit("Usage: golfscore match <player1> <handicap1> <player2> <handicap2>", 2)
			}
			mode, err := parseMode(c)
			if err != nil {
				return err
			}

			args := c.Args().Slice()
			if args[0] == args[2] {
				return cli.Exit(fmt.Sprintf("players must have different names, got %q twice", args[0]), 2)
			}
			h1, err := strconv.Atoi(args[1])
			if err != nil {
				return cli.Exit(fmt.Sprintf("handicap for %s must be an integer, got %q", args[0], args[1]), 2)
			}
			h2, err := strconv.Atoi(args[3])
			if err != nil {
				return cli.Exit(fmt.Sprintf("handicap for %s must be an integer, got %q", args[2], args[3]), 2)
			}

			res, err := env.service(nil, nil).ScoreSample(c.Context,
				scoringtypes.PlayerName(args[0]), h1,
				scoringtypes.PlayerName(args[2]), h2,
				mode,
			)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return env.writeResult(c, res)
		},
	}
}

func newFileCommand(env *runEnv) *cli.Command {
	return &cli.Command{
		Name:      "file",
		Usage:     "score an event from a YAML, CSV or XLSX file",
		ArgsUsage: "[path]",
		Flags:     []cli.Flag{modeFlag(scoringtypes.ModeStrokePlay)},
		Action: func(c *cli.Context) error {
			mode, err := parseMode(c)
			if err != nil {
				return err
			}

			path := c.Args().First()
			if path == "" {
				path, err = env.promptPath(c)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
			}

			res, err := env.service(nil, nil).ScoreFile(c.Context, path, mode)
			if err != nil {
				if errors.Is(err, parsers.ErrFileNotFound) {
					return cli.Exit(fmt.Sprintf("File not found at %s", path), 1)
				}
				return cli.Exit(err.Error(), 1)
			}
			return env.writeResult(c, res)
		},
	}
}

// promptPath asks for the scores file. Accessible mode reads a plain line
// when stdin is not a terminal.
func (e *runEnv) promptPath(c *cli.Context) (string, error) {
	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scores file").
				Description("YAML, CSV or XLSX").
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a path is required")
					}
					return nil
				}),
		),
	).
		WithAccessible(!isTerminal(e.stdin)).
		WithInput(e.stdin).
		WithOutput(c.App.ErrWriter)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("read file path: %w", err)
	}
	return strings.TrimSpace(path), nil
}

func newDBCommand(env *runEnv) *cli.Command {
	return &cli.Command{
		Name:  "db",
		Usage: "score a stored match for two players",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player1", Usage: "first player on the card", Required: true},
			&cli.StringFlag{Name: "player2", Usage: "second player on the card", Required: true},
			&cli.StringFlag{Name: "table", Usage: "match table (overrides config)"},
			modeFlag(scoringtypes.ModeStrokePlay),
		},
		Action: func(c *cli.Context) error {
			mode, err := parseMode(c)
			if err != nil {
				return err
			}

			table := env.cfg.Database.Table
			if t := c.String("table"); t != "" {
				table = t
			}

			db, err := scoringdb.Open(c.Context, env.cfg.Database.Driver, env.cfg.Database.ConnString())
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error connecting to the database: %v", err), 1)
			}
			defer db.Close()

			ranks := env.cfg.Course.HoleHandicaps
			holes := scoringservice.DefaultHoles(len(ranks), ranks)

			res, err := env.service(scoringdb.NewRepository(db), db).ScoreStoredMatch(c.Context, scoringdb.MatchQuery{
				Table:   table,
				Player1: scoringtypes.PlayerName(c.String("player1")),
				Player2: scoringtypes.PlayerName(c.String("player2")),
			}, holes, mode)
			if err != nil {
				if errors.Is(err, scoringdb.ErrMatchNotFound) {
					return cli.Exit(fmt.Sprintf("No match found for players %s and %s", c.String("player1"), c.String("player2")), 1)
				}
				return cli.Exit(err.Error(), 1)
			}

			env.logger.DebugContext(c.Context, "Scored stored match",
				slog.String("table", table),
				slog.Int("holes", len(holes)),
			)
			return env.writeResult(c, res)
		},
	}
}
