package handler

import "legacy-server/internal/models"

type selectLegacyTypeRequest struct {
	LegacyType string `json:"legacyType" binding:"required"`
}

type scopingRequest struct {
	Answers map[string]models.AnswerValue `json:"answers"`
}

type audienceRequest struct {
	Audiences           []string `json:"audiences"`
	AudienceNotes       string   `json:"audienceNotes"`
	SubjectName         string   `json:"subjectName"`
	SubjectRelationship string   `json:"subjectRelationship"`
}

type deliveryRequest struct {
	DeliveryFormats []string `json:"deliveryFormats"`
	Timeline        string   `json:"timeline"`
	AdditionalNotes string   `json:"additionalNotes"`
}

type questionsRequest struct {
	Categories []models.QuestionCategory  `json:"categories" binding:"required"`
	Priorities map[string]models.Priority `json:"priorities"`
}

type backRequest struct {
	Step int `json:"step" binding:"required"`
}

type projectListResponse struct {
	Projects []models.ProjectSummary `json:"projects"`
	Total    int64                   `json:"total"`
}
