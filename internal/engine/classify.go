package engine

import (
	"strings"
	"unicode/utf8"
)

// Class is the role assigned to a single normalized line.
type Class int

const (
	// ClassNoise lines are discarded; they arrive before any question
	// has opened and carry no question evidence.
	ClassNoise Class = iota
	ClassQuestionStart
	ClassAnswer
	ClassContinuation
)

func (c Class) String() string {
	switch c {
	case ClassQuestionStart:
		return "question_start"
	case ClassAnswer:
		return "answer"
	case ClassContinuation:
		return "continuation"
	default:
		return "noise"
	}
}

// Classify decides the role of one normalized line. questionOpen reports
// whether the grouping state machine currently has an open question;
// classification is line-local beyond that single bit and never revised
// afterwards.
func (e *Engine) Classify(line string, questionOpen bool) Class {
	if line == "" {
		return ClassNoise
	}

	// Structural answer markers dominate: they are unambiguous
	// operator-inserted formatting. Only meaningful under an open
	// question; a bulleted line before any question is not an answer
	// to anything.
	if questionOpen && matchAny(e.rules.AnswerPrefixPatterns, line) {
		return ClassAnswer
	}

	if e.looksLikeQuestion(line) {
		return ClassQuestionStart
	}

	if !questionOpen {
		return ClassNoise
	}
	return ClassContinuation
}

// looksLikeQuestion applies the question-start evidence checks in order.
// A start pattern (numbering, bullet, keyword marker) on its own is never
// enough: numbered answer scales would otherwise open bogus questions.
func (e *Engine) looksLikeQuestion(line string) bool {
	// Too short to trust, whatever it matches.
	if utf8.RuneCountInString(line) < 3 {
		return false
	}
	if strings.HasSuffix(line, "?") || strings.HasSuffix(line, ":") {
		return true
	}
	if e.containsKeyword(line) {
		return true
	}
	if matchAny(e.rules.QuestionStartPatterns, line) &&
		utf8.RuneCountInString(line) >= e.rules.MinQuestionLength &&
		strings.Contains(line, "?") {
		return true
	}
	return false
}

// containsKeyword reports whether any configured question keyword occurs
// in the line. Matching is case-insensitive so that English keywords work
// regardless of capitalization; Hebrew is unaffected by folding.
func (e *Engine) containsKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range e.rules.QuestionKeywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
