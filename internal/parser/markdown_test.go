package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_FlattensBlocksAndLists(t *testing.T) {
	input := `# Customer survey

1. How satisfied are you with the service?

- Very satisfied
- Not satisfied
`
	p := &MarkdownParser{}
	lines, err := p.Lines(strings.NewReader(input), "survey.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Customer survey",
		"1. How satisfied are you with the service?",
		"- Very satisfied",
		"- Not satisfied",
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

func TestHTMLParser_FlattensContent(t *testing.T) {
	input := `<html><head><title>Survey</title><style>p{}</style></head><body>
<h1>Customer survey</h1>
<p>1. How satisfied are you with the service?</p>
<ul><li>Very satisfied</li><li>Not satisfied</li></ul>
<script>ignored()</script>
</body></html>`
	p := &HTMLParser{}
	lines, err := p.Lines(strings.NewReader(input), "survey.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Customer survey",
		"1. How satisfied are you with the service?",
		"- Very satisfied",
		"- Not satisfied",
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
