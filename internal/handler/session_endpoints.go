package handler

import (
	"net/http"

	"legacy-server/internal/models"
	"legacy-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionIDParam parses the :id path parameter. On failure it writes the
// error response and returns false.
func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeBadRequest,
			Message: "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeBadRequest,
			Message: "Invalid request data: " + err.Error(),
		})
		return false
	}
	return true
}

func (h *WizardHandler) createSession(c *gin.Context) {
	session, err := h.svc.StartSession(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sessionsStartedTotal.Inc()
	c.JSON(http.StatusCreated, session)
}

func (h *WizardHandler) getSession(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	session, err := h.svc.GetSession(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) selectLegacyType(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req selectLegacyTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.svc.SelectLegacyType(c.Request.Context(), id, req.LegacyType)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) scopingQuestions(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	questions, err := h.svc.ScopingQuestions(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (h *WizardHandler) submitScoping(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req scopingRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.svc.SubmitScopingAnswers(c.Request.Context(), id, req.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) submitAudience(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req audienceRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.svc.SubmitAudience(c.Request.Context(), id, service.AudienceInput{
		Audiences:           req.Audiences,
		AudienceNotes:       req.AudienceNotes,
		SubjectName:         req.SubjectName,
		SubjectRelationship: req.SubjectRelationship,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) submitDelivery(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req deliveryRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.svc.SubmitDelivery(c.Request.Context(), id, service.DeliveryInput{
		DeliveryFormats: req.DeliveryFormats,
		Timeline:        req.Timeline,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) getSummary(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	scope, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scope)
}

func (h *WizardHandler) confirm(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	session, err := h.svc.Confirm(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	projectsConfirmedTotal.Inc()
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) updateQuestions(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req questionsRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.svc.UpdateQuestions(c.Request.Context(), id, models.QuestionSet{
		Categories: req.Categories,
		Priorities: req.Priorities,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *WizardHandler) goBack(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	var req backRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.svc.GoBack(c.Request.Context(), id, req.Step)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
