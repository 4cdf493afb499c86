package engine

import (
	"strings"

	"github.com/ltglabs/qextract/internal/question"
)

// InferType decides the question type from the finalized question text
// and its collected answers. Total: always returns exactly one of the
// three type tags.
func (e *Engine) InferType(text string, answers []string) question.Type {
	if len(answers) == 0 {
		return question.TypeOpen
	}
	lower := strings.ToLower(text)
	for _, hint := range e.rules.MultiChoiceHints {
		if hint == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(hint)) {
			return question.TypeMultiChoice
		}
	}
	return question.TypeSingleChoice
}
