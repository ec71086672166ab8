package handler

import (
	"legacy-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the wizard, catalog, export, and project endpoints.
type WizardHandler struct {
	svc    service.WizardService
	logger *zap.Logger
}

func NewWizardHandler(svc service.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{
		svc:    svc,
		logger: logger.Named("WizardHandler"),
	}
}

func (h *WizardHandler) RegisterRoutes(router *gin.Engine) {
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/legacy-types", h.listLegacyTypes)
		catalogGroup.GET("/audiences", h.listAudiences)
		catalogGroup.GET("/delivery-formats", h.listDeliveryFormats)
		catalogGroup.GET("/timelines", h.listTimelines)
		catalogGroup.GET("/relationships", h.listRelationships)
	}

	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.POST("/:id/legacy-type", h.selectLegacyType)
		sessions.GET("/:id/scoping-questions", h.scopingQuestions)
		sessions.POST("/:id/scoping", h.submitScoping)
		sessions.POST("/:id/audience", h.submitAudience)
		sessions.POST("/:id/delivery", h.submitDelivery)
		sessions.GET("/:id/summary", h.getSummary)
		sessions.POST("/:id/confirm", h.confirm)
		sessions.PUT("/:id/questions", h.updateQuestions)
		sessions.POST("/:id/back", h.goBack)

		sessions.GET("/:id/export/summary.txt", h.exportSummaryText)
		sessions.GET("/:id/export/questions.json", h.exportQuestionsJSON)
		sessions.GET("/:id/export/interview-guide.pdf", h.exportInterviewGuide)
		sessions.GET("/:id/export/project-brief.pdf", h.exportProjectBrief)
	}

	projects := router.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
	}
}
