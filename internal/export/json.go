package export

import (
	"legacy-server/internal/models"
)

// QuestionsDocument is the JSON export of a curated question set. Categories
// are a list to preserve their display order.
type QuestionsDocument struct {
	ProjectID  string                     `json:"project_id"`
	Subject    string                     `json:"subject"`
	LegacyType string                     `json:"legacy_type"`
	Questions  []QuestionCategoryDocument `json:"questions"`
	Priorities map[string]models.Priority `json:"priorities"`
}

type QuestionCategoryDocument struct {
	Category  string   `json:"category"`
	Questions []string `json:"questions"`
}

// QuestionsJSON assembles the export document for a confirmed project.
func QuestionsJSON(scope *models.ProjectScope, set models.QuestionSet) QuestionsDocument {
	doc := QuestionsDocument{
		ProjectID:  scope.ProjectID,
		Subject:    scope.Subject.Name,
		LegacyType: scope.LegacyType,
		Questions:  make([]QuestionCategoryDocument, 0, len(set.Categories)),
		Priorities: set.Priorities,
	}
	for _, cat := range set.Categories {
		doc.Questions = append(doc.Questions, QuestionCategoryDocument{
			Category:  cat.Name,
			Questions: cat.Questions,
		})
	}
	if doc.Priorities == nil {
		doc.Priorities = map[string]models.Priority{}
	}
	return doc
}
