package parsers

import (
	"fmt"
	"strconv"
	"strings"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
)

// scorecardLayout describes where things live in a tabular scorecard.
type scorecardLayout struct {
	headerRow   int
	holeCols    []int
	holeNumbers []int
	handicapCol int // -1 when players have no handicap column
}

// parseScorecardRows is shared by the CSV and XLSX parsers. The expected
// sheet is:
//
//	Name,HCP,1,2,...,9,Total
//	Par,,4,3,...
//	Hcp,,5,17,...
//	Player A,10,4,5,...
//
// Par and total columns are ignored. Without an Hcp row the holes are ranked
// by hole number.
func parseScorecardRows(rows [][]string) (*scoringtypes.Event, error) {
	rows = dropBlankRows(rows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: scorecard is empty", ErrMalformedInput)
	}

	layout, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	var (
		ranks   []int
		players []scoringtypes.PlayerScores
	)
	for i := layout.headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		label := strings.TrimSpace(cell(row, 0))

		switch {
		case label == "":
			continue
		case strings.EqualFold(label, "Par"):
			continue
		case isRankLabel(label):
			if ranks != nil {
				return nil, fmt.Errorf("%w: second handicap row at line %d", ErrMalformedInput, i+1)
			}
			ranks, err = readHoleValues(row, layout.holeCols)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid handicap row at line %d: %v", ErrMalformedInput, i+1, err)
			}
		default:
			gross, err := readHoleValues(row, layout.holeCols)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid scores for player %q at line %d: %v", ErrMalformedInput, label, i+1, err)
			}
			handicap := 0
			if layout.handicapCol >= 0 {
				if v := strings.TrimSpace(cell(row, layout.handicapCol)); v != "" && v != "-" {
					handicap, err = strconv.Atoi(v)
					if err != nil {
						return nil, fmt.Errorf("%w: invalid handicap %q for player %q at line %d", ErrMalformedInput, v, label, i+1)
					}
				}
			}
			players = append(players, scoringtypes.PlayerScores{
				Player:         scoringtypes.PlayerName(label),
				CourseHandicap: handicap,
				Gross:          gross,
			})
		}
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no player score rows found", ErrMalformedInput)
	}
	if ranks == nil {
		ranks = layout.holeNumbers
	}

	holes := make([]scoringtypes.Hole, len(layout.holeNumbers))
	for i, n := range layout.holeNumbers {
		holes[i] = scoringtypes.Hole{Number: n, HandicapRank: ranks[i]}
	}

	return &scoringtypes.Event{
		Rounds: []scoringtypes.Round{{Holes: holes, Players: players}},
	}, nil
}

// findHeader locates the header row: its first cell is Name or Player and the
// numeric cells after it are hole numbers.
func findHeader(rows [][]string) (scorecardLayout, error) {
	for i, row := range rows {
		first := strings.TrimSpace(cell(row, 0))
		if !strings.EqualFold(first, "Name") && !strings.EqualFold(first, "Player") {
			continue
		}

		layout := scorecardLayout{headerRow: i, handicapCol: -1}
		for col := 1; col < len(row); col++ {
			v := strings.TrimSpace(row[col])
			if isRankLabel(v) {
				layout.handicapCol = col
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				// Total, Out, In and similar summary columns.
				continue
			}
			layout.holeCols = append(layout.holeCols, col)
			layout.holeNumbers = append(layout.holeNumbers, n)
		}
		if len(layout.holeCols) == 0 {
			return layout, fmt.Errorf("%w: header row at line %d has no hole columns", ErrMalformedInput, i+1)
		}
		return layout, nil
	}
	return scorecardLayout{}, fmt.Errorf("%w: no header row starting with Name or Player", ErrMalformedInput)
}

// readHoleValues reads one integer per hole column. Every hole must be filled.
func readHoleValues(row []string, cols []int) ([]int, error) {
	values := make([]int, 0, len(cols))
	for _, col := range cols {
		v := strings.TrimSpace(cell(row, col))
		if v == "" || v == "-" {
			return nil, fmt.Errorf("missing value in column %d", col+1)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value: %q", v)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative value: %d", n)
		}
		values = append(values, n)
	}
	return values, nil
}

func isRankLabel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hcp", "handicap", "si", "stroke index":
		return true
	}
	return false
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}
