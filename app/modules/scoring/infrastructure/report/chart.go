package scoringreport

import (
	"bytes"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used when rendering charts.
type ChartPalette struct {
	Background drawing.Color
	TextColor  drawing.Color
	Lines      []drawing.Color
}

// DefaultPalette is a light course theme.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorWhite,
	TextColor:  drawing.ColorFromHex("2F3E46"),
	Lines: []drawing.Color{
		drawing.ColorFromHex("2A7F3E"),
		drawing.ColorFromHex("E76F51"),
		drawing.ColorFromHex("264653"),
		drawing.ColorFromHex("E9C46A"),
		drawing.ColorFromHex("8E7DBE"),
	},
}

// RenderCumulativeNetChart produces a PNG line chart of each player's running
// net total by hole. When no player has two holes a placeholder is rendered
// since the x range would be empty.
func RenderCumulativeNetChart(res *scoringtypes.Result, palette ChartPalette) ([]byte, error) {
	if longestNet(res) < 2 {
		return renderNoDataPlaceholder(palette)
	}

	series := make([]chart.Series, 0, len(res.Players))
	for i, p := range res.Players {
		if len(p.Net) == 0 {
			continue
		}
		xValues := make([]float64, len(p.Net))
		yValues := make([]float64, len(p.Net))
		running := 0
		for h, net := range p.Net {
			running += net
			xValues[h] = float64(h + 1)
			yValues[h] = float64(running)
		}

		color := palette.TextColor
		if len(palette.Lines) > 0 {
			color = palette.Lines[i%len(palette.Lines)]
		}
		series = append(series, chart.ContinuousSeries{
			Name:    p.Player.String(),
			XValues: xValues,
			YValues: yValues,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotWidth:    3,
				DotColor:    color,
			},
		})
	}

	graph := chart.Chart{
		Title:  res.Summary,
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		XAxis: chart.XAxis{
			Name:           "Hole",
			ValueFormatter: chart.IntValueFormatter,
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		YAxis: chart.YAxis{
			Name: "Cumulative Net",
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No scores to chart"
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func longestNet(res *scoringtypes.Result) int {
	if res == nil {
		return 0
	}
	longest := 0
	for _, p := range res.Players {
		longest = max(longest, len(p.Net))
	}
	return longest
}
