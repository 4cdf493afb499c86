package parser

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser handles delimited text files.
type CSVParser struct{}

func (p *CSVParser) Source() string { return "csv" }

func (p *CSVParser) Lines(r io.Reader, filename string) ([]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // questionnaire exports are rarely rectangular

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return tabularLines(records), nil
}
