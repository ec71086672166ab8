package models

// Priority marks how important a curated interview question is.
type Priority string

const (
	PriorityMustAsk    Priority = "Must Ask"
	PriorityNiceToHave Priority = "Nice to Have"
	PriorityOptional   Priority = "Optional"
)

// IsValid reports whether p is one of the known priority labels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityMustAsk, PriorityNiceToHave, PriorityOptional:
		return true
	}
	return false
}

// QuestionCategory is one named group of interview questions. Category order
// and question order are both user-visible and preserved everywhere.
type QuestionCategory struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}

// QuestionSet is the generated (and later user-curated) interview guide
// content: ordered categories plus per-question priorities.
type QuestionSet struct {
	Categories []QuestionCategory  `json:"categories"`
	Priorities map[string]Priority `json:"priorities,omitempty"`
}

// TotalQuestions returns the number of questions across all categories.
func (qs QuestionSet) TotalQuestions() int {
	total := 0
	for _, cat := range qs.Categories {
		total += len(cat.Questions)
	}
	return total
}

// CountByPriority returns how many questions carry the given priority.
func (qs QuestionSet) CountByPriority(p Priority) int {
	count := 0
	for _, cat := range qs.Categories {
		for _, q := range cat.Questions {
			if qs.Priorities[q] == p {
				count++
			}
		}
	}
	return count
}
