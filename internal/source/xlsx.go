package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the samples in column opts.Column of a spreadsheet. The
// sheet is opts.Sheet, or the first sheet of the workbook. Like [ReadCSV], a
// non-numeric first row is skipped as a header and empty cells are ignored.
func ReadXLSX(path string, opts Options) ([]int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &ParseError{Source: path, Err: fmt.Errorf("workbook has no sheets")}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Source: fmt.Sprintf("%s[%s]", path, sheet), Err: err}
	}

	var out []int
	for i, row := range rows {
		if opts.Column >= len(row) {
			// GetRows trims trailing empty cells.
			continue
		}
		cell := strings.TrimSpace(row[opts.Column])
		if cell == "" {
			continue
		}
		v, err := parseSample(cell)
		if err != nil {
			if i == 0 {
				continue
			}
			name, _ := excelize.CoordinatesToCellName(opts.Column+1, i+1)
			return nil, &ParseError{
				Source: fmt.Sprintf("%s[%s]", path, sheet),
				Line:   i + 1,
				Err:    fmt.Errorf("cell %s: %w", name, err),
			}
		}
		out = append(out, v)
	}
	return out, nil
}
