package parser

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v2"
)

// XLSXParser handles spreadsheet files. Only the first sheet is read;
// questionnaire workbooks keep everything there.
type XLSXParser struct{}

func (p *XLSXParser) Source() string { return "xlsx" }

func (p *XLSXParser) Lines(r io.Reader, filename string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}

	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("parse xlsx: %w", err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	var records [][]string
	for _, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		records = append(records, cells)
	}
	return tabularLines(records), nil
}
