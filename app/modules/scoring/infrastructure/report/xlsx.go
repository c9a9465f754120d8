package scoringreport

import (
	"fmt"
	"io"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/xuri/excelize/v2"
)

// BreakdownSheet is the name of the sheet WriteXLSX fills.
const BreakdownSheet = "Breakdown"

// WriteXLSX writes the per-player breakdown as a workbook. Each player gets
// a Gross, Strokes and Net row with one column per hole and a total column.
// The winner and result sentence follow after a blank row.
func WriteXLSX(w io.Writer, res *scoringtypes.Result) error {
	if res == nil {
		return fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), BreakdownSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	holes := 0
	for _, p := range res.Players {
		if len(p.Gross) > holes {
			holes = len(p.Gross)
		}
	}

	header := []interface{}{"Player", "Handicap", "Row"}
	for i := 1; i <= holes; i++ {
		header = append(header, i)
	}
	header = append(header, "Total")

	rows := [][]interface{}{header}
	for _, p := range res.Players {
		rows = append(rows,
			scoreRow(p.Player.String(), p.CourseHandicap, "Gross", p.Gross, p.TotalGross),
			scoreRow("", nil, "Strokes", p.Strokes, p.StrokesReceived()),
			scoreRow("", nil, "Net", p.Net, p.TotalNet),
		)
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Winner", res.Winner},
		[]interface{}{"Result", res.Summary},
	)

	for idx, row := range rows {
		if len(row) == 0 {
			continue
		}
		axis, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(BreakdownSheet, axis, &row); err != nil {
			return fmt.Errorf("write row %d: %w", idx+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(BreakdownSheet, "A1", last, bold); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func scoreRow(player string, handicap interface{}, label string, values []int, total int) []interface{} {
	row := make([]interface{}, 0, len(values)+4)
	row = append(row, player, handicap, label)
	for _, v := range values {
		row = append(row, v)
	}
	return append(row, total)
}
