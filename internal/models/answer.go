package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerValue holds a single scoping answer. Radio and text questions produce
// a plain string, multiselect questions produce a list; on the wire both
// shapes are accepted and reproduced as-is.
type AnswerValue struct {
	Text    string
	Choices []string
	isList  bool
}

// TextAnswer wraps a plain string answer.
func TextAnswer(s string) AnswerValue {
	return AnswerValue{Text: s}
}

// ChoicesAnswer wraps a multiselect answer.
func ChoicesAnswer(choices ...string) AnswerValue {
	return AnswerValue{Choices: choices, isList: true}
}

// IsList reports whether the answer is a multiselect list.
func (a AnswerValue) IsList() bool {
	return a.isList
}

// IsEmpty reports whether the answer carries no value.
func (a AnswerValue) IsEmpty() bool {
	if a.isList {
		return len(a.Choices) == 0
	}
	return strings.TrimSpace(a.Text) == ""
}

// Display renders the answer for summaries and exports. Empty answers render
// as an em-dash placeholder, matching the summary views.
func (a AnswerValue) Display() string {
	if a.IsEmpty() {
		return "—"
	}
	if a.isList {
		return strings.Join(a.Choices, ", ")
	}
	return a.Text
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if a.isList {
		// A nil slice would encode as null and come back as a text answer.
		if a.Choices == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Choices)
	}
	return json.Marshal(a.Text)
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AnswerValue{Text: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = AnswerValue{Choices: list, isList: true}
		return nil
	}
	return fmt.Errorf("answer must be a string or an array of strings: %w", ErrInvalidAnswer)
}
