package engine

import (
	"testing"

	"github.com/ltglabs/qextract/internal/rules"
)

func TestStrip_RemovesStructuralMarkers(t *testing.T) {
	e := New(rules.Default())

	cases := []struct {
		in   string
		want string
	}{
		{"1. How satisfied are you?", "How satisfied are you?"},
		{"12) What is your name?", "What is your name?"},
		{"- Very satisfied", "Very satisfied"},
		{"• Not satisfied", "Not satisfied"},
		{"a) Blue", "Blue"},
		{"B. Red", "Red"},
		{"שאלה 3: האם אתה מרוצה", "האם אתה מרוצה"},
		{"ב. כן", "כן"},
		{"Q7: How often do you visit?", "How often do you visit?"},
		{"No markers here", "No markers here"},
		{"  spaced   out  ", "spaced out"},
	}
	for _, c := range cases {
		if got := e.Strip(c.in); got != c.want {
			t.Errorf("Strip(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestStrip_Idempotent(t *testing.T) {
	e := New(rules.Default())
	inputs := []string{
		"1. How satisfied are you?",
		"- Very satisfied",
		"plain text",
		"",
	}
	for _, in := range inputs {
		once := e.Strip(in)
		twice := e.Strip(once)
		if once != twice {
			t.Errorf("Strip not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
