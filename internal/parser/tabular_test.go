package parser

import (
	"strings"
	"testing"
)

func TestCSVParser_QuestionAnswerColumns(t *testing.T) {
	input := "Question,Answers\n" +
		"How satisfied are you?,Very; Somewhat; Not at all\n" +
		"What is your name?,\n"
	p := &CSVParser{}
	lines, err := p.Lines(strings.NewReader(input), "survey.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"How satisfied are you?",
		"- Very",
		"- Somewhat",
		"- Not at all",
		"What is your name?",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestCSVParser_HebrewHeaders(t *testing.T) {
	input := "שאלה,תשובות\n" +
		"האם אתה מרוצה מהשירות?,כן; לא\n"
	p := &CSVParser{}
	lines, err := p.Lines(strings.NewReader(input), "survey.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"האם אתה מרוצה מהשירות?", "- כן", "- לא"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestCSVParser_NoRecognizableHeader(t *testing.T) {
	input := "col1,col2\nfoo,bar\n,baz\n"
	p := &CSVParser{}
	lines, err := p.Lines(strings.NewReader(input), "data.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Row-major flattening of every non-empty cell, header included.
	want := []string{"col1", "col2", "foo", "bar", "baz"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestCSVParser_RaggedRows(t *testing.T) {
	input := "Question,Answers\nOnly a question here?\n"
	p := &CSVParser{}
	lines, err := p.Lines(strings.NewReader(input), "ragged.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "Only a question here?" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestHeaderColumns(t *testing.T) {
	q, a := headerColumns([]string{"ID", "Question text", "Options", "Notes"})
	if q != 1 {
		t.Errorf("expected question column 1, got %d", q)
	}
	if a != 2 {
		t.Errorf("expected answers column 2, got %d", a)
	}

	q, a = headerColumns([]string{"foo", "bar"})
	if q != -1 || a != -1 {
		t.Errorf("expected no columns, got %d, %d", q, a)
	}
}

func TestSplitAnswersCell(t *testing.T) {
	got := splitAnswersCell("Very; Somewhat\nNot at all | Unsure;")
	want := []string{"Very", "Somewhat", "Not at all", "Unsure"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("part[%d]: expected %q, got %q", i, w, got[i])
		}
	}
}
