package parsers

import (
	"bytes"
	"fmt"
	"strings"

	scoringtypes "github.com/Black-And-White-Club/golf-scorer/app/modules/scoring/domain/types"
	"github.com/xuri/excelize/v2"
)

// XLSXParser parses XLSX scorecard files
type XLSXParser struct{}

// NewXLSXParser creates a new XLSX parser
func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

// Parse reads the first sheet of the workbook and returns an Event
func (p *XLSXParser) Parse(data []byte) (*scoringtypes.Event, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		if strings.Contains(err.Error(), "zip: not a valid zip file") {
			return nil, fmt.Errorf("%w: failed to open XLSX file: %v. (Hint: If this is a CSV file, please ensure it has a .csv extension)", ErrMalformedInput, err)
		}
		return nil, fmt.Errorf("%w: failed to open XLSX file: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: XLSX file has no sheets", ErrMalformedInput)
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", ErrMalformedInput, sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMalformedInput, sheetName)
	}

	return parseScorecardRows(rows)
}
