package engine

import (
	"regexp"
	"strings"
)

// Strip removes structural markers (numbering, bullets, letter markers)
// from the start of a line and normalizes the remainder. It must run
// after classification (the classifier needs the original markers) and
// before text is stored as question text or as an answer. Idempotent:
// stripping an already-stripped line is a no-op.
func (e *Engine) Strip(line string) string {
	s := Normalize(line)
	for {
		before := s
		s = stripLeading(e.rules.QuestionStartPatterns, s)
		s = stripLeading(e.rules.AnswerPrefixPatterns, s)
		s = strings.TrimSpace(s)
		if s == before {
			return s
		}
	}
}

func stripLeading(patterns []*regexp.Regexp, s string) string {
	for _, re := range patterns {
		loc := re.FindStringIndex(s)
		if loc != nil && loc[0] == 0 && loc[1] > 0 {
			s = s[loc[1]:]
		}
	}
	return s
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
