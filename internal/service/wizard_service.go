package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"legacy-server/internal/catalog"
	"legacy-server/internal/models"
	"legacy-server/internal/questionbank"
	"legacy-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AudienceInput carries the step 3 submission.
type AudienceInput struct {
	Audiences           []string
	AudienceNotes       string
	SubjectName         string
	SubjectRelationship string
}

// DeliveryInput carries the step 4 submission.
type DeliveryInput struct {
	DeliveryFormats []string
	Timeline        string
	AdditionalNotes string
}

// ProjectEventPublisher publishes project lifecycle events. Implementations
// must be safe to call from request handlers.
type ProjectEventPublisher interface {
	PublishProjectCompleted(ctx context.Context, event ProjectCompletedEvent) error
}

// ProjectCompletedEvent is emitted when a wizard session is confirmed.
type ProjectCompletedEvent struct {
	ProjectID      string    `json:"projectId"`
	SessionID      string    `json:"sessionId"`
	SubjectName    string    `json:"subjectName"`
	LegacyType     string    `json:"legacyType"`
	TotalQuestions int       `json:"totalQuestions"`
	CreatedAt      time.Time `json:"createdAt"`
}

// WizardService drives the scoping wizard: one method per step submission,
// plus summary assembly, confirm, and question curation.
type WizardService interface {
	StartSession(ctx context.Context) (*models.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	GoBack(ctx context.Context, id uuid.UUID, step int) (*models.Session, error)

	SelectLegacyType(ctx context.Context, id uuid.UUID, legacyType string) (*models.Session, error)
	ScopingQuestions(ctx context.Context, id uuid.UUID) ([]catalog.ScopingQuestion, error)
	SubmitScopingAnswers(ctx context.Context, id uuid.UUID, answers map[string]models.AnswerValue) (*models.Session, error)
	SubmitAudience(ctx context.Context, id uuid.UUID, input AudienceInput) (*models.Session, error)
	SubmitDelivery(ctx context.Context, id uuid.UUID, input DeliveryInput) (*models.Session, error)

	Summary(ctx context.Context, id uuid.UUID) (*models.ProjectScope, error)
	Confirm(ctx context.Context, id uuid.UUID) (*models.Session, error)
	UpdateQuestions(ctx context.Context, id uuid.UUID, set models.QuestionSet) (*models.Session, error)

	ListProjects(ctx context.Context, limit, offset int) ([]models.ProjectSummary, int64, error)
	GetProject(ctx context.Context, projectID string) (*models.ProjectScope, error)
}

type wizardService struct {
	sessions  repository.SessionRepository
	projects  repository.ProjectRepository
	publisher ProjectEventPublisher
	logger    *zap.Logger
}

// NewWizardService creates the wizard service. publisher may be nil, in which
// case completion events are skipped.
func NewWizardService(
	sessions repository.SessionRepository,
	projects repository.ProjectRepository,
	publisher ProjectEventPublisher,
	logger *zap.Logger,
) WizardService {
	return &wizardService{
		sessions:  sessions,
		projects:  projects,
		publisher: publisher,
		logger:    logger.Named("WizardService"),
	}
}

func (s *wizardService) StartSession(ctx context.Context) (*models.Session, error) {
	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.New(),
		Step:      models.StepLegacyType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Info("Session started", zap.String("sessionID", session.ID.String()))
	return session, nil
}

func (s *wizardService) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	return s.sessions.Get(ctx, id)
}

// GoBack rewinds the wizard to an earlier step. Collected answers are kept so
// the user can revise and resubmit; resubmitting moves forward again.
func (s *wizardService) GoBack(ctx context.Context, id uuid.UUID, step int) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if step < models.StepLegacyType || step >= session.Step {
		s.logger.Warn("Rejected invalid back navigation",
			zap.String("sessionID", id.String()),
			zap.Int("currentStep", session.Step),
			zap.Int("requestedStep", step),
		)
		return nil, models.ErrWrongStep
	}
	session.Step = step
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *wizardService) SelectLegacyType(ctx context.Context, id uuid.UUID, legacyType string) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepLegacyType {
		return nil, models.ErrWrongStep
	}
	if _, ok := catalog.LegacyTypeByName(legacyType); !ok {
		s.logger.Warn("Unknown legacy type selected", zap.String("sessionID", id.String()), zap.String("legacyType", legacyType))
		return nil, models.ErrUnknownLegacyType
	}

	if session.LegacyType != "" && session.LegacyType != legacyType {
		// Old answers belong to the previous type's questions.
		session.ScopingAnswers = nil
	}
	session.LegacyType = legacyType
	session.Step = models.StepScoping
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("Legacy type selected", zap.String("sessionID", id.String()), zap.String("legacyType", legacyType))
	return session, nil
}

func (s *wizardService) ScopingQuestions(ctx context.Context, id uuid.UUID) ([]catalog.ScopingQuestion, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.LegacyType == "" {
		return nil, models.ErrWrongStep
	}
	lt, ok := catalog.LegacyTypeByName(session.LegacyType)
	if !ok {
		// A catalog rename would strand stored sessions; treat as server fault.
		return nil, fmt.Errorf("session %s references unknown legacy type %q: %w", id, session.LegacyType, models.ErrInternalServer)
	}
	return lt.ScopingQuestions, nil
}

func (s *wizardService) SubmitScopingAnswers(ctx context.Context, id uuid.UUID, answers map[string]models.AnswerValue) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepScoping {
		return nil, models.ErrWrongStep
	}
	lt, ok := catalog.LegacyTypeByName(session.LegacyType)
	if !ok {
		return nil, fmt.Errorf("session %s references unknown legacy type %q: %w", id, session.LegacyType, models.ErrInternalServer)
	}

	for key, answer := range answers {
		question, ok := lt.ScopingQuestionByKey(key)
		if !ok {
			s.logger.Warn("Answer for unknown scoping question", zap.String("sessionID", id.String()), zap.String("key", key))
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownQuestion, key)
		}
		if err := validateAnswer(question, answer); err != nil {
			s.logger.Warn("Invalid scoping answer",
				zap.String("sessionID", id.String()),
				zap.String("key", key),
				zap.Error(err),
			)
			return nil, err
		}
	}

	session.ScopingAnswers = answers
	session.Step = models.StepAudience
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// validateAnswer checks an answer's shape and values against its question.
// Empty answers are allowed everywhere; the wizard only enforces presence for
// audience and delivery selections, matching the product's validation rules.
func validateAnswer(q catalog.ScopingQuestion, a models.AnswerValue) error {
	switch q.Kind {
	case catalog.QuestionKindRadio:
		if a.IsList() {
			return fmt.Errorf("%w: question %q expects a single choice", models.ErrInvalidAnswer, q.Key)
		}
		if a.Text != "" && !q.HasOption(a.Text) {
			return fmt.Errorf("%w: %q is not an option of question %q", models.ErrInvalidAnswer, a.Text, q.Key)
		}
	case catalog.QuestionKindMultiselect:
		if !a.IsList() {
			return fmt.Errorf("%w: question %q expects a list of choices", models.ErrInvalidAnswer, q.Key)
		}
		for _, choice := range a.Choices {
			if !q.HasOption(choice) {
				return fmt.Errorf("%w: %q is not an option of question %q", models.ErrInvalidAnswer, choice, q.Key)
			}
		}
	case catalog.QuestionKindText:
		if a.IsList() {
			return fmt.Errorf("%w: question %q expects free text", models.ErrInvalidAnswer, q.Key)
		}
	default:
		return fmt.Errorf("%w: question %q has unsupported kind %q", models.ErrInternalServer, q.Key, q.Kind)
	}
	return nil
}

func (s *wizardService) SubmitAudience(ctx context.Context, id uuid.UUID, input AudienceInput) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepAudience {
		return nil, models.ErrWrongStep
	}

	if len(input.Audiences) == 0 {
		return nil, fmt.Errorf("%w: select at least one audience", models.ErrInvalidInput)
	}
	for _, aud := range input.Audiences {
		if !catalog.IsKnownAudience(aud) {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownAudience, aud)
		}
	}
	if strings.TrimSpace(input.SubjectName) == "" {
		return nil, fmt.Errorf("%w: subject name is required", models.ErrInvalidInput)
	}
	if !isKnownRelationship(input.SubjectRelationship) {
		return nil, fmt.Errorf("%w: unknown subject relationship %q", models.ErrInvalidInput, input.SubjectRelationship)
	}

	session.Audiences = input.Audiences
	session.AudienceNotes = strings.TrimSpace(input.AudienceNotes)
	session.SubjectName = strings.TrimSpace(input.SubjectName)
	session.SubjectRelationship = input.SubjectRelationship
	session.Step = models.StepDelivery
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func isKnownRelationship(value string) bool {
	for _, rel := range catalog.SubjectRelationships() {
		if rel == value {
			return true
		}
	}
	return false
}

func (s *wizardService) SubmitDelivery(ctx context.Context, id uuid.UUID, input DeliveryInput) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDelivery {
		return nil, models.ErrWrongStep
	}

	if len(input.DeliveryFormats) == 0 {
		return nil, fmt.Errorf("%w: select at least one delivery format", models.ErrInvalidInput)
	}
	for _, format := range input.DeliveryFormats {
		if !catalog.IsKnownDeliveryFormat(format) {
			return nil, fmt.Errorf("%w: %s", models.ErrUnknownDeliveryFormat, format)
		}
	}
	if !catalog.IsKnownTimeline(input.Timeline) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownTimeline, input.Timeline)
	}

	session.DeliveryFormats = input.DeliveryFormats
	session.Timeline = input.Timeline
	session.AdditionalNotes = strings.TrimSpace(input.AdditionalNotes)
	session.Step = models.StepSummary
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *wizardService) Summary(ctx context.Context, id uuid.UUID) (*models.ProjectScope, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step < models.StepSummary {
		return nil, models.ErrWrongStep
	}
	return buildScope(session)
}

// buildScope assembles the ProjectScope aggregate from a completed session.
// Before confirm the project ID is ephemeral; confirm pins it.
func buildScope(session *models.Session) (*models.ProjectScope, error) {
	lt, ok := catalog.LegacyTypeByName(session.LegacyType)
	if !ok {
		return nil, fmt.Errorf("session %s references unknown legacy type %q: %w", session.ID, session.LegacyType, models.ErrInternalServer)
	}

	// A confirmed session keeps the timestamp the project was persisted with
	// so later summaries and exports agree with the stored record.
	now := session.ConfirmedAt
	if now.IsZero() {
		now = time.Now()
	}
	projectID := session.ProjectID
	if projectID == "" {
		projectID = now.Format("20060102_150405")
	}

	// Keyed by prompt in catalog order; unanswered questions render as "—".
	details := make([]models.ScopingDetail, 0, len(lt.ScopingQuestions))
	for _, q := range lt.ScopingQuestions {
		answer, ok := session.ScopingAnswers[q.Key]
		if !ok {
			if q.Kind == catalog.QuestionKindMultiselect {
				answer = models.ChoicesAnswer()
			} else {
				answer = models.TextAnswer("")
			}
		}
		details = append(details, models.ScopingDetail{Question: q.Prompt, Answer: answer})
	}

	return &models.ProjectScope{
		ProjectID:         projectID,
		CreatedAt:         now,
		LegacyType:        lt.Name,
		LegacyDescription: lt.Description,
		Subject: models.Subject{
			Name:         session.SubjectName,
			Relationship: session.SubjectRelationship,
		},
		ScopingDetails:  details,
		TargetAudience:  session.Audiences,
		AudienceNotes:   session.AudienceNotes,
		DeliveryFormats: session.DeliveryFormats,
		Timeline:        session.Timeline,
		AdditionalNotes: session.AdditionalNotes,
	}, nil
}

func (s *wizardService) Confirm(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSummary {
		return nil, models.ErrWrongStep
	}

	scope, err := buildScope(session)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, scope); err != nil {
		return nil, fmt.Errorf("failed to persist project scope: %w", err)
	}

	questions := questionbank.Generate(scope)
	session.ProjectID = scope.ProjectID
	session.ConfirmedAt = scope.CreatedAt
	session.Questions = &questions
	session.Step = models.StepQuestions
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Project confirmed",
		zap.String("sessionID", id.String()),
		zap.String("projectID", scope.ProjectID),
		zap.String("legacyType", scope.LegacyType),
		zap.Int("categories", len(questions.Categories)),
		zap.Int("totalQuestions", questions.TotalQuestions()),
	)

	if s.publisher != nil {
		event := ProjectCompletedEvent{
			ProjectID:      scope.ProjectID,
			SessionID:      session.ID.String(),
			SubjectName:    scope.Subject.Name,
			LegacyType:     scope.LegacyType,
			TotalQuestions: questions.TotalQuestions(),
			CreatedAt:      scope.CreatedAt,
		}
		// Best effort: the confirm already succeeded, a lost event must not
		// fail the request.
		if err := s.publisher.PublishProjectCompleted(ctx, event); err != nil {
			s.logger.Error("Failed to publish project completed event",
				zap.Error(err),
				zap.String("projectID", scope.ProjectID),
			)
		}
	}

	return session, nil
}

func (s *wizardService) UpdateQuestions(ctx context.Context, id uuid.UUID, set models.QuestionSet) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.Confirmed() {
		return nil, models.ErrNotConfirmed
	}

	normalized, err := normalizeQuestionSet(set)
	if err != nil {
		s.logger.Warn("Rejected question set update", zap.String("sessionID", id.String()), zap.Error(err))
		return nil, err
	}

	session.Questions = normalized
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("Question set updated",
		zap.String("sessionID", id.String()),
		zap.Int("categories", len(normalized.Categories)),
		zap.Int("totalQuestions", normalized.TotalQuestions()),
	)
	return session, nil
}

// normalizeQuestionSet trims and validates a curated question set. Blank
// questions and empty categories are dropped; priorities must use the known
// labels and are kept only for questions that still exist. Questions without
// an explicit priority default to "Nice to Have".
func normalizeQuestionSet(set models.QuestionSet) (*models.QuestionSet, error) {
	normalized := models.QuestionSet{Priorities: map[string]models.Priority{}}

	for _, priority := range set.Priorities {
		if !priority.IsValid() {
			return nil, fmt.Errorf("%w: unknown priority %q", models.ErrInvalidInput, priority)
		}
	}

	for _, cat := range set.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category name must not be empty", models.ErrInvalidInput)
		}
		questions := make([]string, 0, len(cat.Questions))
		for _, q := range cat.Questions {
			q = strings.TrimSpace(q)
			if q == "" {
				continue
			}
			questions = append(questions, q)
			if priority, ok := set.Priorities[q]; ok {
				normalized.Priorities[q] = priority
			} else {
				normalized.Priorities[q] = models.PriorityNiceToHave
			}
		}
		if len(questions) == 0 {
			continue
		}
		normalized.Categories = append(normalized.Categories, models.QuestionCategory{
			Name:      name,
			Questions: questions,
		})
	}

	if len(normalized.Categories) == 0 {
		return nil, fmt.Errorf("%w: question set must keep at least one category", models.ErrInvalidInput)
	}
	return &normalized, nil
}

func (s *wizardService) ListProjects(ctx context.Context, limit, offset int) ([]models.ProjectSummary, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	summaries, err := s.projects.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.projects.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (s *wizardService) GetProject(ctx context.Context, projectID string) (*models.ProjectScope, error) {
	return s.projects.GetByID(ctx, projectID)
}
