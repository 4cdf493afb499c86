package engine

import (
	"testing"

	"github.com/ltglabs/qextract/internal/rules"
)

func TestClassify_DecisionOrder(t *testing.T) {
	e := New(rules.Default())

	cases := []struct {
		name         string
		line         string
		questionOpen bool
		want         Class
	}{
		{"question mark suffix", "How satisfied are you with the service?", false, ClassQuestionStart},
		{"colon suffix", "Select all that apply:", false, ClassQuestionStart},
		{"numbered with question mark", "1. How satisfied are you with the service?", false, ClassQuestionStart},
		{"hebrew keyword", "שאלה 3 האם אתה מרוצה מהשירות", false, ClassQuestionStart},
		{"bullet before any question is noise", "- Very satisfied", false, ClassNoise},
		{"bullet under open question is answer", "- Very satisfied", true, ClassAnswer},
		{"lettered marker under open question", "a) Blue", true, ClassAnswer},
		{"hebrew letter marker under open question", "ב. כן", true, ClassAnswer},
		{"plain prose under open question", "This refers to the last visit only.", true, ClassContinuation},
		{"plain prose with no open question", "Some unrelated heading", false, ClassNoise},
		{"numbering alone is not a question", "1. Strongly agree", false, ClassNoise},
		{"numbering alone continues open question", "1. Strongly agree", true, ClassContinuation},
		{"too short even with marker", "א?", false, ClassNoise},
		{"empty line", "", true, ClassNoise},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := e.Classify(c.line, c.questionOpen); got != c.want {
				t.Errorf("Classify(%q, open=%v): expected %s, got %s",
					c.line, c.questionOpen, c.want, got)
			}
		})
	}
}

func TestClassify_AnswerMarkerBeatsQuestionEvidence(t *testing.T) {
	// A bulleted line ending in "?" is still an answer when a question
	// is open: structural markers dominate.
	e := New(rules.Default())
	got := e.Classify("- Other?", true)
	if got != ClassAnswer {
		t.Errorf("expected answer classification, got %s", got)
	}
}

func TestClassify_PatternNeedsInterrogativeEvidence(t *testing.T) {
	e := New(rules.Default())

	// Long numbered line without "?", ":" or a keyword: numbering alone
	// is insufficient evidence.
	if got := e.Classify("12. Completely disagree with the statement", false); got != ClassNoise {
		t.Errorf("expected noise for numbered scale line, got %s", got)
	}

	// Same numbering with an internal question mark qualifies.
	if got := e.Classify("12. Overall satisfaction? (last 30 days)", false); got != ClassQuestionStart {
		t.Errorf("expected question start with internal question mark, got %s", got)
	}
}
