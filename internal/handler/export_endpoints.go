package handler

import (
	"fmt"
	"net/http"
	"strings"

	"legacy-server/internal/export"
	"legacy-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// exportFilename builds the download name the way the product always has:
// spaces in the subject name become underscores.
func exportFilename(prefix, subjectName, ext string) string {
	safe := strings.ReplaceAll(subjectName, " ", "_")
	return fmt.Sprintf("%s_%s.%s", prefix, safe, ext)
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

// confirmedExportData loads the scope and curated questions for exports that
// only exist after confirm.
func (h *WizardHandler) confirmedExportData(c *gin.Context, id uuid.UUID) (*models.ProjectScope, models.QuestionSet, bool) {
	session, err := h.svc.GetSession(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return nil, models.QuestionSet{}, false
	}
	if !session.Confirmed() {
		handleServiceError(c, models.ErrNotConfirmed)
		return nil, models.QuestionSet{}, false
	}
	scope, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return nil, models.QuestionSet{}, false
	}
	return scope, *session.Questions, true
}

func (h *WizardHandler) exportSummaryText(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	scope, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	exportsTotal.WithLabelValues("summary_txt").Inc()
	attachment(c, exportFilename("legacy_scope", scope.Subject.Name, "txt"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.TextSummary(scope)))
}

func (h *WizardHandler) exportQuestionsJSON(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	scope, questions, ok := h.confirmedExportData(c, id)
	if !ok {
		return
	}
	exportsTotal.WithLabelValues("questions_json").Inc()
	attachment(c, exportFilename("interview_questions", scope.Subject.Name, "json"))
	c.IndentedJSON(http.StatusOK, export.QuestionsJSON(scope, questions))
}

func (h *WizardHandler) exportInterviewGuide(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	scope, questions, ok := h.confirmedExportData(c, id)
	if !ok {
		return
	}
	data, err := export.InterviewGuidePDF(scope, questions)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	exportsTotal.WithLabelValues("interview_guide_pdf").Inc()
	attachment(c, exportFilename("interview_guide", scope.Subject.Name, "pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *WizardHandler) exportProjectBrief(c *gin.Context) {
	id, ok := sessionIDParam(c)
	if !ok {
		return
	}
	scope, err := h.svc.Summary(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	data, err := export.ProjectBriefPDF(scope)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	exportsTotal.WithLabelValues("project_brief_pdf").Inc()
	attachment(c, exportFilename("project_brief", scope.Subject.Name, "pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
