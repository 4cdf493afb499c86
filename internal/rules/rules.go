package rules

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SplitAction tells the splitter what to do once a context split rule's
// pattern has matched the accumulated question text.
type SplitAction string

const (
	// SplitBeforeMatch: everything before the match is context, the
	// question starts at the match position.
	SplitBeforeMatch SplitAction = "split_before_match"
	// SplitAtQuestionWord: the question starts at the first configured
	// question keyword found at or after MinSplitOffset runes.
	SplitAtQuestionWord SplitAction = "split_at_question_word"
)

// SplitRule is one entry of the context split table. Rules are evaluated
// highest priority first; at most one rule produces the split.
type SplitRule struct {
	Priority int
	Pattern  *regexp.Regexp
	Action   SplitAction
}

// Set is the compiled, immutable classification rule set. It is loaded
// once at startup and shared read-only across concurrent extractions.
type Set struct {
	QuestionStartPatterns []*regexp.Regexp
	QuestionKeywords      []string
	AnswerPrefixPatterns  []*regexp.Regexp
	MultiChoiceHints      []string
	SplitRules            []SplitRule // sorted by descending priority

	MaxContextLength  int // rune length above which Split engages
	MinQuestionLength int // minimum rune length for pattern-triggered question starts
	MinSplitOffset    int // minimum rune offset for split_at_question_word
}

// document is the on-disk YAML shape of a rule set.
type document struct {
	QuestionStartPatterns []string       `yaml:"question_start_patterns"`
	QuestionKeywords      []string       `yaml:"question_keywords"`
	AnswerPrefixPatterns  []string       `yaml:"answer_prefix_patterns"`
	MultiChoiceHints      []string       `yaml:"multi_choice_hints"`
	ContextSplitRules     []splitRuleDoc `yaml:"context_split_rules"`
	MaxContextLength      int            `yaml:"max_context_length"`
	MinQuestionLength     int            `yaml:"min_question_length"`
	MinSplitOffset        int            `yaml:"min_split_offset"`
}

type splitRuleDoc struct {
	Priority int    `yaml:"priority"`
	Pattern  string `yaml:"pattern"`
	Action   string `yaml:"action"`
}

// Load reads and compiles a rule set from a YAML file. Any unreadable
// file, malformed document, bad pattern or unknown action is a fatal
// configuration error; the caller is expected to refuse to start.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return compile(doc)
}

func compile(doc document) (*Set, error) {
	s := &Set{
		QuestionKeywords:  doc.QuestionKeywords,
		MultiChoiceHints:  doc.MultiChoiceHints,
		MaxContextLength:  doc.MaxContextLength,
		MinQuestionLength: doc.MinQuestionLength,
		MinSplitOffset:    doc.MinSplitOffset,
	}
	if s.MaxContextLength <= 0 {
		s.MaxContextLength = 120
	}
	if s.MinQuestionLength <= 0 {
		s.MinQuestionLength = 8
	}
	if s.MinSplitOffset <= 0 {
		s.MinSplitOffset = 40
	}

	var err error
	if s.QuestionStartPatterns, err = compileAll("question_start_patterns", doc.QuestionStartPatterns); err != nil {
		return nil, err
	}
	if s.AnswerPrefixPatterns, err = compileAll("answer_prefix_patterns", doc.AnswerPrefixPatterns); err != nil {
		return nil, err
	}

	for i, r := range doc.ContextSplitRules {
		if strings.TrimSpace(r.Pattern) == "" {
			return nil, fmt.Errorf("context_split_rules[%d]: empty pattern", i)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("context_split_rules[%d]: %w", i, err)
		}
		action := SplitAction(r.Action)
		switch action {
		case SplitBeforeMatch, SplitAtQuestionWord:
		default:
			return nil, fmt.Errorf("context_split_rules[%d]: unknown action %q", i, r.Action)
		}
		s.SplitRules = append(s.SplitRules, SplitRule{
			Priority: r.Priority,
			Pattern:  re,
			Action:   action,
		})
	}
	// Highest priority first; evaluation is a plain first-match scan.
	sort.SliceStable(s.SplitRules, func(i, j int) bool {
		return s.SplitRules[i].Priority > s.SplitRules[j].Priority
	})

	return s, nil
}

func compileAll(field string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for i, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("%s[%d]: empty pattern", field, i)
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Default returns the built-in Hebrew/English rule set, used when no
// rules file is configured.
func Default() *Set {
	s, err := compile(document{
		QuestionStartPatterns: []string{
			`^\d{1,3}[.)]\s*`,        // "1." / "12)"
			`^שאלה\s*\d*\s*[:.]?\s*`, // "שאלה 3:"
			`^[Qq]\d{1,3}[:.)]?\s*`,  // "Q7:"
		},
		QuestionKeywords: []string{
			"האם", "מה ", "מי ", "איך", "כיצד", "מדוע", "למה", "מתי",
			"היכן", "איפה", "כמה", "באיזו מידה", "עד כמה",
			"what", "how", "why", "when", "where", "which", "who",
			"do you", "are you", "please rate",
		},
		AnswerPrefixPatterns: []string{
			`^[-*•◦▪]\s+`,      // bullets
			`^[a-dA-D][.)]\s+`, // "a." / "B)"
			`^[א-ה][.)]\s+`,    // Hebrew letter markers
			`^\d{1,2}\)\s+`,    // secondary numbering "1) "
		},
		MultiChoiceHints: []string{
			"בחר את כל", "בחרו את כל", "ניתן לבחור יותר", "סמן את כל", "סמנו את כל",
			"select all", "choose all that apply", "check all", "mark all",
		},
		ContextSplitRules: []splitRuleDoc{
			{Priority: 100, Pattern: `(האם|באיזו מידה|עד כמה)`, Action: string(SplitBeforeMatch)},
			{Priority: 90, Pattern: `[.!]\s+(?i:(what|how|why|do you|are you|please rate))`, Action: string(SplitAtQuestionWord)},
			{Priority: 50, Pattern: `\?`, Action: string(SplitAtQuestionWord)},
		},
	})
	if err != nil {
		// Built-in patterns are covered by tests; a compile failure here
		// is a programming error.
		panic(err)
	}
	return s
}
