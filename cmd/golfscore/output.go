package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	scoringreport "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/infrastructure/report"
	"github.com/urfave/cli/v2"
)

// writeResult prints the summary and writes any requested artifacts.
func (e *runEnv) writeResult(c *cli.Context, res *scoringtypes.Result) error {
	opts := scoringreport.Options{
		Breakdown: c.Bool("breakdown"),
		Styled:    isTerminal(c.App.Writer),
	}
	if err := scoringreport.WriteSummary(c.App.Writer, res, opts); err != nil {
		return cli.Exit(fmt.Sprintf("write summary: %v", err), 1)
	}

	if path := c.String("export-xlsx"); path != "" {
		var buf bytes.Buffer
		if err := scoringreport.WriteXLSX(&buf, res); err != nil {
			return cli.Exit(fmt.Sprintf("export workbook: %v", err), 1)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return cli.Exit(fmt.Sprintf("export workbook: %v", err), 1)
		}
		e.logger.Info("Wrote workbook", slog.String("path", path))
	}

	if path := c.String("chart"); path != "" {
		png, err := scoringreport.RenderCumulativeNetChart(res, scoringreport.DefaultPalette)
		if err != nil {
			return cli.Exit(fmt.Sprintf("render chart: %v", err), 1)
		}
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return cli.Exit(fmt.Sprintf("write chart: %v", err), 1)
		}
		e.logger.Info("Wrote chart", slog.String("path", path))
	}
	return nil
}
