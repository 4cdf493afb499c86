package parser

import (
	"bufio"
	"io"
	"strings"
)

// TextParser handles plain text files: one line per non-blank input line.
type TextParser struct{}

func (p *TextParser) Source() string { return "txt" }

func (p *TextParser) Lines(r io.Reader, filename string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
