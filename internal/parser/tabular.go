package parser

import "strings"

// Header names recognized as the question column, across the languages
// the service sees in practice.
var questionHeaders = []string{"question", "שאלה", "שאלות"}

// Header names recognized as the answers/options column.
var answerHeaders = []string{"answer", "options", "תשובות", "אפשרויות"}

// tabularLines flattens csv/xlsx records into an ordered line sequence.
// When the header row names a question column, that column drives the
// output and any answers column is re-emitted as bulleted lines so the
// classifier sees them as answer lines. Without a recognizable header,
// every non-empty cell is emitted in row-major order.
func tabularLines(records [][]string) []string {
	if len(records) == 0 {
		return nil
	}

	qCol, aCol := headerColumns(records[0])
	if qCol < 0 {
		var lines []string
		for _, row := range records {
			for _, cell := range row {
				if c := strings.TrimSpace(cell); c != "" {
					lines = append(lines, c)
				}
			}
		}
		return lines
	}

	var lines []string
	for _, row := range records[1:] {
		if qCol < len(row) {
			if q := strings.TrimSpace(row[qCol]); q != "" {
				lines = append(lines, q)
			}
		}
		if aCol >= 0 && aCol < len(row) {
			for _, ans := range splitAnswersCell(row[aCol]) {
				lines = append(lines, "- "+ans)
			}
		}
	}
	return lines
}

// headerColumns finds the question and answers columns by header name.
// Returns -1 for a column that has no recognizable header.
func headerColumns(header []string) (qCol, aCol int) {
	qCol, aCol = -1, -1
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		if qCol < 0 && matchesHeader(name, questionHeaders) {
			qCol = i
			continue
		}
		if aCol < 0 && matchesHeader(name, answerHeaders) {
			aCol = i
		}
	}
	return qCol, aCol
}

func matchesHeader(name string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}

// splitAnswersCell splits an answers cell on the separators spreadsheet
// authors actually use: newlines, semicolons and pipes.
func splitAnswersCell(cell string) []string {
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return r == '\n' || r == ';' || r == '|'
	})
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
