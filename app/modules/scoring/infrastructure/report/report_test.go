package scoringreport

import (
	"bytes"
	"image/png"
	"testing"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func matchResult() *scoringtypes.Result {
	return &scoringtypes.Result{
		Mode:    scoringtypes.ModeMatchPlay,
		Winner:  "Alice",
		Summary: "Alice wins 2 holes to 1",
		Players: []scoringtypes.PlayerRoundRecord{
			{
				Player: "Alice", CourseHandicap: 1,
				Gross: []int{4, 5, 3}, Strokes: []int{1, 0, 0}, Net: []int{3, 5, 3},
				TotalGross: 12, TotalNet: 11,
			},
			{
				Player: "Bob", CourseHandicap: 0,
				Gross: []int{4, 4, 4}, Strokes: []int{0, 0, 0}, Net: []int{4, 4, 4},
				TotalGross: 12, TotalNet: 12,
			},
		},
		HolesWon: map[scoringtypes.PlayerName]int{"Alice": 2, "Bob": 1},
	}
}

func TestWriteSummary(t *testing.T) {
	tests := []struct {
		name string
		res  *scoringtypes.Result
		opts Options
		want string
	}{
		{
			name: "winner only",
			res:  matchResult(),
			want: "Winner: Alice\nResult: Alice wins 2 holes to 1\n",
		},
		{
			name: "match play breakdown",
			res:  matchResult(),
			opts: Options{Breakdown: true},
			want: "Winner: Alice\n" +
				"Result: Alice wins 2 holes to 1\n" +
				"\nPlayer Scores:\n" +
				"  Alice:\n" +
				"    Handicap: 1\n" +
				"    Gross Scores: [4, 5, 3]\n" +
				"    Strokes Received: [1, 0, 0]\n" +
				"    Net Scores: [3, 5, 3]\n" +
				"    Total Gross: 12\n" +
				"    Total Net: 11\n" +
				"    Holes Won: 2\n" +
				"  Bob:\n" +
				"    Handicap: 0\n" +
				"    Gross Scores: [4, 4, 4]\n" +
				"    Strokes Received: [0, 0, 0]\n" +
				"    Net Scores: [4, 4, 4]\n" +
				"    Total Gross: 12\n" +
				"    Total Net: 12\n" +
				"    Holes Won: 1\n",
		},
		{
			name: "stroke play tie has no holes won",
			res: &scoringtypes.Result{
				Mode:    scoringtypes.ModeStrokePlay,
				Winner:  scoringtypes.TieLabel,
				Summary: "Match tied with both players scoring 4",
				Players: []scoringtypes.PlayerRoundRecord{
					{Player: "A", Gross: []int{4}, Strokes: []int{0}, Net: []int{4}, TotalGross: 4, TotalNet: 4},
				},
			},
			opts: Options{Breakdown: true},
			want: "Winner: Tie\n" +
				"Result: Match tied with both players scoring 4\n" +
				"\nPlayer Scores:\n" +
				"  A:\n" +
				"    Handicap: 0\n" +
				"    Gross Scores: [4]\n" +
				"    Strokes Received: [0]\n" +
				"    Net Scores: [4]\n" +
				"    Total Gross: 4\n" +
				"    Total Net: 4\n",
		},
		{
			name: "no result",
			want: "No winner could be determined.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteSummary(&buf, tt.res, tt.opts))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteSummary_StyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, matchResult(), Options{Styled: true}))
	require.Contains(t, buf.String(), "Alice")
	require.Contains(t, buf.String(), "Alice wins 2 holes to 1")
}

func TestFormatScores(t *testing.T) {
	require.Equal(t, "[]", FormatScores(nil))
	require.Equal(t, "[4, 5, 3]", FormatScores([]int{4, 5, 3}))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, matchResult()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{BreakdownSheet}, f.GetSheetList())

	rows, err := f.GetRows(BreakdownSheet)
	require.NoError(t, err)
	require.Equal(t, []string{"Player", "Handicap", "Row", "1", "2", "3", "Total"}, rows[0])
	require.Equal(t, []string{"Alice", "1", "Gross", "4", "5", "3", "12"}, rows[1])
	require.Equal(t, []string{"", "", "Strokes", "1", "0", "0", "1"}, rows[2])
	require.Equal(t, []string{"", "", "Net", "3", "5", "3", "11"}, rows[3])
	require.Equal(t, []string{"Bob", "0", "Gross", "4", "4", "4", "12"}, rows[4])

	winner, err := f.GetCellValue(BreakdownSheet, "B9")
	require.NoError(t, err)
	require.Equal(t, "Alice", winner)
	summary, err := f.GetCellValue(BreakdownSheet, "B10")
	require.NoError(t, err)
	require.Equal(t, "Alice wins 2 holes to 1", summary)
}

func TestWriteXLSX_NilResult(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteXLSX(&buf, nil))
}

func TestRenderCumulativeNetChart(t *testing.T) {
	tests := []struct {
		name       string
		res        *scoringtypes.Result
		wantWidth  int
		wantHeight int
	}{
		{name: "two players", res: matchResult(), wantWidth: 800, wantHeight: 400},
		{name: "nil result", res: nil, wantWidth: 400, wantHeight: 200},
		{
			name:       "single hole",
			res:        &scoringtypes.Result{Players: []scoringtypes.PlayerRoundRecord{{Player: "A", Net: []int{3}}}},
			wantWidth:  400,
			wantHeight: 200,
		},
		{
			name: "first player played fewer holes",
			res: &scoringtypes.Result{Players: []scoringtypes.PlayerRoundRecord{
				{Player: "A", Net: []int{3}},
				{Player: "B", Net: []int{4, 4, 5}},
			}},
			wantWidth:  800,
			wantHeight: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderCumulativeNetChart(tt.res, DefaultPalette)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			require.Equal(t, tt.wantWidth, img.Bounds().Dx())
			require.Equal(t, tt.wantHeight, img.Bounds().Dy())
		})
	}
}
