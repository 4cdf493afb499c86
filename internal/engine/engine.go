package engine

import (
	"strings"

	"github.com/ltglabs/qextract/internal/question"
	"github.com/ltglabs/qextract/internal/rules"
)

// Engine turns an ordered sequence of document lines into Question
// records. It holds only the immutable rule set, so one Engine is safe
// for any number of concurrent Extract calls; all per-document state
// lives inside Extract.
type Engine struct {
	rules *rules.Set
}

func New(rs *rules.Set) *Engine {
	return &Engine{rules: rs}
}

// builder accumulates one open question until it is finalized.
type builder struct {
	textParts []string            // question text fragments, pre-split
	answers   []string            // stripped answers in insertion order
	seen      map[string]struct{} // dedupe key set for answers
	trailing  []string            // prose arriving after the first answer
}

// Extract runs the grouping state machine over the line sequence and
// returns the emitted questions in document order. Input that never
// opens a question yields an empty slice, never an error.
func (e *Engine) Extract(lines []string, source string) []question.Question {
	out := []question.Question{}
	var b *builder

	flush := func() {
		if b == nil {
			return
		}
		out = append(out, e.finalize(b, source, len(out)+1))
		b = nil
	}

	for _, raw := range lines {
		line := Normalize(raw)
		if line == "" {
			continue
		}

		switch e.Classify(line, b != nil) {
		case ClassQuestionStart:
			flush()
			b = &builder{
				textParts: []string{e.Strip(line)},
				seen:      make(map[string]struct{}),
			}

		case ClassAnswer:
			ans := e.Strip(line)
			if ans == "" {
				continue
			}
			if _, dup := b.seen[ans]; dup {
				// Duplicate answers are dropped silently, not errors.
				continue
			}
			b.seen[ans] = struct{}{}
			b.answers = append(b.answers, ans)

		case ClassContinuation:
			if len(b.answers) == 0 {
				// Question wrapped across several lines: still building
				// the question text itself.
				b.textParts = append(b.textParts, line)
			} else {
				// Prose after options never mutates the fixed question
				// text; it becomes explanatory context.
				b.trailing = append(b.trailing, line)
			}

		case ClassNoise:
			// Leading noise before any question opens.
		}
	}

	// Flush-on-EOF: an open question is never dropped.
	flush()
	return out
}

// finalize closes a builder into an immutable Question: context/question
// split, trailing prose appended to context, type inference, index
// assignment.
func (e *Engine) finalize(b *builder, source string, index int) question.Question {
	full := strings.TrimSpace(strings.Join(b.textParts, " "))
	ctx, text := e.Split(full)

	if len(b.trailing) > 0 {
		t := strings.Join(b.trailing, " ")
		if ctx != "" {
			ctx += " " + t
		} else {
			ctx = t
		}
	}

	return question.Question{
		Index:   index,
		Text:    text,
		Context: ctx,
		Type:    e.InferType(text, b.answers),
		Answers: append([]string{}, b.answers...),
		Source:  source,
	}
}
