package models

import (
	"time"

	"github.com/google/uuid"
)

// Wizard steps, in order.
const (
	StepLegacyType = 1
	StepScoping    = 2
	StepAudience   = 3
	StepDelivery   = 4
	StepSummary    = 5
	StepQuestions  = 6

	TotalSteps = 6
)

// Session is the full state of one wizard walkthrough. It lives in Redis for
// the duration of the session and is serialized as JSON.
type Session struct {
	ID   uuid.UUID `json:"id"`
	Step int       `json:"step"`

	LegacyType     string                 `json:"legacyType,omitempty"`
	ScopingAnswers map[string]AnswerValue `json:"scopingAnswers,omitempty"`

	Audiences           []string `json:"audiences,omitempty"`
	AudienceNotes       string   `json:"audienceNotes,omitempty"`
	SubjectName         string   `json:"subjectName,omitempty"`
	SubjectRelationship string   `json:"subjectRelationship,omitempty"`

	DeliveryFormats []string `json:"deliveryFormats,omitempty"`
	Timeline        string   `json:"timeline,omitempty"`
	AdditionalNotes string   `json:"additionalNotes,omitempty"`

	// Populated at confirm time (step 5 -> 6).
	ProjectID   string       `json:"projectId,omitempty"`
	ConfirmedAt time.Time    `json:"confirmedAt,omitzero"`
	Questions   *QuestionSet `json:"questions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Confirmed reports whether the session has passed the confirm step and owns
// a generated question set.
func (s *Session) Confirmed() bool {
	return s.ProjectID != "" && s.Questions != nil
}
