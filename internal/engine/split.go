package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/ltglabs/qextract/internal/rules"
)

// Split separates an overlong accumulated question text into a leading
// context preamble and the actual question. Text at or under
// MaxContextLength runes is returned unchanged as the question. Above
// that, the priority-descending split rule table is scanned and the
// first rule that produces a split point wins. When no rule produces a
// split the whole text stays the question with empty context; text is
// never dropped.
func (e *Engine) Split(accumulated string) (context, questionText string) {
	text := strings.TrimSpace(accumulated)
	if utf8.RuneCountInString(text) <= e.rules.MaxContextLength {
		return "", text
	}

	for _, rule := range e.rules.SplitRules {
		loc := rule.Pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		switch rule.Action {
		case rules.SplitBeforeMatch:
			return splitAt(text, loc[0])
		case rules.SplitAtQuestionWord:
			if idx, ok := e.firstKeywordAfter(text, e.rules.MinSplitOffset); ok {
				return splitAt(text, idx)
			}
			// Pattern matched but no keyword past the offset; the rule
			// does not fire and lower-priority rules get their turn.
		}
	}

	return "", text
}

// firstKeywordAfter returns the byte index of the earliest configured
// question keyword whose rune offset is at least minOffset.
func (e *Engine) firstKeywordAfter(text string, minOffset int) (int, bool) {
	lower := strings.ToLower(text)
	best := -1
	for _, kw := range e.rules.QuestionKeywords {
		if kw == "" {
			continue
		}
		k := strings.ToLower(kw)
		from := 0
		for {
			i := strings.Index(lower[from:], k)
			if i < 0 {
				break
			}
			idx := from + i
			if utf8.RuneCountInString(text[:idx]) >= minOffset {
				if best < 0 || idx < best {
					best = idx
				}
				break
			}
			from = idx + len(k)
		}
	}
	return best, best >= 0
}

func splitAt(text string, idx int) (string, string) {
	return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx:])
}
