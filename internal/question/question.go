package question

// Type classifies a finalized question by how it expects to be answered.
type Type string

const (
	TypeOpen         Type = "open"
	TypeSingleChoice Type = "single_choice"
	TypeMultiChoice  Type = "multi_choice"
)

// Question is one extracted questionnaire item. Once emitted by the
// engine it is never mutated.
type Question struct {
	Index   int      `json:"index"`             // 1-based position among emitted questions
	Text    string   `json:"text"`              // final question text, markers stripped, context removed
	Context string   `json:"context,omitempty"` // optional preamble preceding the question
	Type    Type     `json:"type"`
	Answers []string `json:"answers"` // insertion order, distinct after stripping
	Source  string   `json:"source"`  // originating adapter tag: docx, csv, xlsx, ...
}
