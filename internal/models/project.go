package models

import "time"

// Subject identifies whose story the legacy project captures.
type Subject struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

// ScopingDetail pairs a scoping question prompt with the answer given. The
// slice keeps the catalog's question order for summaries and exports.
type ScopingDetail struct {
	Question string      `json:"question"`
	Answer   AnswerValue `json:"answer"`
}

// ProjectScope is the aggregate produced when a wizard session is confirmed.
// It is the record persisted to Postgres and the source for every export.
type ProjectScope struct {
	ProjectID         string          `json:"projectId"`
	CreatedAt         time.Time       `json:"createdAt"`
	LegacyType        string          `json:"legacyType"`
	LegacyDescription string          `json:"legacyDescription"`
	Subject           Subject         `json:"subject"`
	ScopingDetails    []ScopingDetail `json:"scopingDetails"`
	TargetAudience    []string        `json:"targetAudience"`
	AudienceNotes     string          `json:"audienceNotes,omitempty"`
	DeliveryFormats   []string        `json:"deliveryFormats"`
	Timeline          string          `json:"timeline"`
	AdditionalNotes   string          `json:"additionalNotes,omitempty"`
}

// ProjectSummary is the short form of a persisted scope used in listings.
type ProjectSummary struct {
	ProjectID   string    `json:"projectId"`
	SubjectName string    `json:"subjectName"`
	LegacyType  string    `json:"legacyType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Themes collects every multiselect answer across the scoping details. These
// are the selections that widen the generated question bank.
func (p *ProjectScope) Themes() []string {
	var themes []string
	for _, detail := range p.ScopingDetails {
		if detail.Answer.IsList() {
			themes = append(themes, detail.Answer.Choices...)
		}
	}
	return themes
}
