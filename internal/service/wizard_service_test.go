package service

import (
	"context"
	"errors"
	"testing"

	"legacy-server/internal/catalog"
	"legacy-server/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memSessionRepo struct {
	sessions map[uuid.UUID]models.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[uuid.UUID]models.Session{}}
}

func (r *memSessionRepo) Save(_ context.Context, session *models.Session) error {
	r.sessions[session.ID] = *session
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, id uuid.UUID) (*models.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	copied := session
	return &copied, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

type memProjectRepo struct {
	projects map[string]models.ProjectScope
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: map[string]models.ProjectScope{}}
}

func (r *memProjectRepo) Create(_ context.Context, scope *models.ProjectScope) error {
	r.projects[scope.ProjectID] = *scope
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, projectID string) (*models.ProjectScope, error) {
	scope, ok := r.projects[projectID]
	if !ok {
		return nil, models.ErrProjectNotFound
	}
	copied := scope
	return &copied, nil
}

func (r *memProjectRepo) List(_ context.Context, _, _ int) ([]models.ProjectSummary, error) {
	summaries := make([]models.ProjectSummary, 0, len(r.projects))
	for _, scope := range r.projects {
		summaries = append(summaries, models.ProjectSummary{
			ProjectID:   scope.ProjectID,
			SubjectName: scope.Subject.Name,
			LegacyType:  scope.LegacyType,
			CreatedAt:   scope.CreatedAt,
		})
	}
	return summaries, nil
}

func (r *memProjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

type capturingPublisher struct {
	events []ProjectCompletedEvent
	err    error
}

func (p *capturingPublisher) PublishProjectCompleted(_ context.Context, event ProjectCompletedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func newTestService(t *testing.T) (WizardService, *memSessionRepo, *memProjectRepo, *capturingPublisher) {
	t.Helper()
	sessions := newMemSessionRepo()
	projects := newMemProjectRepo()
	publisher := &capturingPublisher{}
	svc := NewWizardService(sessions, projects, publisher, zap.NewNop())
	return svc, sessions, projects, publisher
}

// walkToSummary drives a fresh session through steps 1-4.
func walkToSummary(t *testing.T, svc WizardService) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectLegacyType(ctx, session.ID, "Full Life Story")
	require.NoError(t, err)

	answers := map[string]models.AnswerValue{
		"themes":     models.ChoicesAnswer("Family & Relationships", "Career & Professional Life"),
		"time_depth": models.TextAnswer("As far back as I can remember"),
	}
	_, err = svc.SubmitScopingAnswers(ctx, session.ID, answers)
	require.NoError(t, err)

	_, err = svc.SubmitAudience(ctx, session.ID, AudienceInput{
		Audiences:           []string{"My Children", "My Grandchildren"},
		SubjectName:         "Margaret Hale",
		SubjectRelationship: "I'm capturing a parent's story",
	})
	require.NoError(t, err)

	_, err = svc.SubmitDelivery(ctx, session.ID, DeliveryInput{
		DeliveryFormats: []string{"Written Book / Memoir"},
		Timeline:        "Within the next month",
	})
	require.NoError(t, err)

	return session.ID
}

func TestStartSession(t *testing.T) {
	svc, sessions, _, _ := newTestService(t)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StepLegacyType, session.Step)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Contains(t, sessions.sessions, session.ID)
}

func TestGetSession_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetSession(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSelectLegacyType(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	updated, err := svc.SelectLegacyType(ctx, session.ID, "Growing Up")
	require.NoError(t, err)
	assert.Equal(t, "Growing Up", updated.LegacyType)
	assert.Equal(t, models.StepScoping, updated.Step)
}

func TestSelectLegacyType_Unknown(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectLegacyType(ctx, session.ID, "Time Capsule")
	assert.ErrorIs(t, err, models.ErrUnknownLegacyType)
}

func TestSelectLegacyType_ChangeDropsOldAnswers(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectLegacyType(ctx, session.ID, "Full Life Story")
	require.NoError(t, err)
	_, err = svc.SubmitScopingAnswers(ctx, session.ID, map[string]models.AnswerValue{
		"time_depth": models.TextAnswer("As far back as I can remember"),
	})
	require.NoError(t, err)

	_, err = svc.GoBack(ctx, session.ID, models.StepLegacyType)
	require.NoError(t, err)
	updated, err := svc.SelectLegacyType(ctx, session.ID, "Words of Wisdom")
	require.NoError(t, err)

	assert.Empty(t, updated.ScopingAnswers)
}

func TestSubmitScopingAnswers_WrongStep(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitScopingAnswers(ctx, session.ID, nil)
	assert.ErrorIs(t, err, models.ErrWrongStep)
}

func TestSubmitScopingAnswers_UnknownQuestion(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectLegacyType(ctx, session.ID, "Full Life Story")
	require.NoError(t, err)

	_, err = svc.SubmitScopingAnswers(ctx, session.ID, map[string]models.AnswerValue{
		"favorite_recipes": models.TextAnswer("All of them"),
	})
	assert.ErrorIs(t, err, models.ErrUnknownQuestion)
}

func TestSubmitScopingAnswers_InvalidOption(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectLegacyType(ctx, session.ID, "Full Life Story")
	require.NoError(t, err)

	_, err = svc.SubmitScopingAnswers(ctx, session.ID, map[string]models.AnswerValue{
		"themes": models.ChoicesAnswer("Retirement Cruises"),
	})
	assert.ErrorIs(t, err, models.ErrInvalidAnswer)
}

func TestSubmitScopingAnswers_KindMismatch(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectLegacyType(ctx, session.ID, "Full Life Story")
	require.NoError(t, err)

	_, err = svc.SubmitScopingAnswers(ctx, session.ID, map[string]models.AnswerValue{
		"time_depth": models.ChoicesAnswer("As far back as I can remember"),
	})
	assert.ErrorIs(t, err, models.ErrInvalidAnswer)
}

func TestSubmitAudience_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectLegacyType(ctx, session.ID, "Full Life Story")
	require.NoError(t, err)
	_, err = svc.SubmitScopingAnswers(ctx, session.ID, nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   AudienceInput
		wantErr error
	}{
		{
			name: "no audience selected",
			input: AudienceInput{
				SubjectName:         "Margaret Hale",
				SubjectRelationship: "I'm capturing a parent's story",
			},
			wantErr: models.ErrInvalidInput,
		},
		{
			name: "unknown audience",
			input: AudienceInput{
				Audiences:           []string{"Pen Pals"},
				SubjectName:         "Margaret Hale",
				SubjectRelationship: "I'm capturing a parent's story",
			},
			wantErr: models.ErrUnknownAudience,
		},
		{
			name: "blank subject name",
			input: AudienceInput{
				Audiences:           []string{"My Children"},
				SubjectName:         "   ",
				SubjectRelationship: "I'm capturing a parent's story",
			},
			wantErr: models.ErrInvalidInput,
		},
		{
			name: "unknown relationship",
			input: AudienceInput{
				Audiences:           []string{"My Children"},
				SubjectName:         "Margaret Hale",
				SubjectRelationship: "Landlord",
			},
			wantErr: models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitAudience(ctx, session.ID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitDelivery_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectLegacyType(ctx, session.ID, "Full Life Story")
	require.NoError(t, err)
	_, err = svc.SubmitScopingAnswers(ctx, session.ID, nil)
	require.NoError(t, err)
	_, err = svc.SubmitAudience(ctx, session.ID, AudienceInput{
		Audiences:           []string{"My Children"},
		SubjectName:         "Margaret Hale",
		SubjectRelationship: "I'm capturing a parent's story",
	})
	require.NoError(t, err)

	_, err = svc.SubmitDelivery(ctx, session.ID, DeliveryInput{
		Timeline: "Within the next month",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.SubmitDelivery(ctx, session.ID, DeliveryInput{
		DeliveryFormats: []string{"Carrier Pigeon"},
		Timeline:        "Within the next month",
	})
	assert.ErrorIs(t, err, models.ErrUnknownDeliveryFormat)

	_, err = svc.SubmitDelivery(ctx, session.ID, DeliveryInput{
		DeliveryFormats: []string{"Written Book / Memoir"},
		Timeline:        "Yesterday",
	})
	assert.ErrorIs(t, err, models.ErrUnknownTimeline)
}

func TestSummary(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := walkToSummary(t, svc)

	scope, err := svc.Summary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Full Life Story", scope.LegacyType)
	assert.NotEmpty(t, scope.LegacyDescription)
	assert.Equal(t, "Margaret Hale", scope.Subject.Name)
	assert.Equal(t, "I'm capturing a parent's story", scope.Subject.Relationship)
	assert.Equal(t, []string{"My Children", "My Grandchildren"}, scope.TargetAudience)
	assert.Equal(t, []string{"Written Book / Memoir"}, scope.DeliveryFormats)
	assert.NotEmpty(t, scope.ProjectID)

	lifeStory, ok := catalog.LegacyTypeByName("Full Life Story")
	require.True(t, ok)
	assert.Len(t, scope.ScopingDetails, len(lifeStory.ScopingQuestions))
}

func TestSummary_BeforeDelivery(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.Summary(ctx, session.ID)
	assert.ErrorIs(t, err, models.ErrWrongStep)
}

func TestConfirm(t *testing.T) {
	svc, _, projects, publisher := newTestService(t)
	id := walkToSummary(t, svc)
	ctx := context.Background()

	session, err := svc.Confirm(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, models.StepQuestions, session.Step)
	assert.NotEmpty(t, session.ProjectID)
	require.NotNil(t, session.Questions)
	assert.NotEmpty(t, session.Questions.Categories)
	assert.True(t, session.Confirmed())

	stored, err := projects.GetByID(ctx, session.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "Margaret Hale", stored.Subject.Name)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, session.ProjectID, publisher.events[0].ProjectID)
	assert.Equal(t, session.Questions.TotalQuestions(), publisher.events[0].TotalQuestions)
}

func TestConfirm_SummaryKeepsPersistedTimestamp(t *testing.T) {
	svc, _, projects, _ := newTestService(t)
	id := walkToSummary(t, svc)
	ctx := context.Background()

	session, err := svc.Confirm(ctx, id)
	require.NoError(t, err)

	stored, err := projects.GetByID(ctx, session.ProjectID)
	require.NoError(t, err)

	scope, err := svc.Summary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, stored.CreatedAt, scope.CreatedAt)
	assert.Equal(t, stored.ProjectID, scope.ProjectID)
}

func TestConfirm_WrongStep(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, session.ID)
	assert.ErrorIs(t, err, models.ErrWrongStep)
}

func TestConfirm_PublisherFailureIsNotFatal(t *testing.T) {
	svc, _, _, publisher := newTestService(t)
	publisher.err = errors.New("broker unavailable")
	id := walkToSummary(t, svc)

	session, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StepQuestions, session.Step)
}

func TestUpdateQuestions(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := walkToSummary(t, svc)
	ctx := context.Background()

	_, err := svc.Confirm(ctx, id)
	require.NoError(t, err)

	session, err := svc.UpdateQuestions(ctx, id, models.QuestionSet{
		Categories: []models.QuestionCategory{
			{Name: "Career & Work", Questions: []string{"What was your first job?", "  "}},
			{Name: "Empty", Questions: []string{"   "}},
		},
		Priorities: map[string]models.Priority{
			"What was your first job?": models.PriorityMustAsk,
		},
	})
	require.NoError(t, err)

	require.Len(t, session.Questions.Categories, 1)
	assert.Equal(t, []string{"What was your first job?"}, session.Questions.Categories[0].Questions)
	assert.Equal(t, models.PriorityMustAsk, session.Questions.Priorities["What was your first job?"])
}

func TestUpdateQuestions_DefaultsPriority(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := walkToSummary(t, svc)
	ctx := context.Background()

	_, err := svc.Confirm(ctx, id)
	require.NoError(t, err)

	session, err := svc.UpdateQuestions(ctx, id, models.QuestionSet{
		Categories: []models.QuestionCategory{
			{Name: "Career & Work", Questions: []string{"What was your first job?"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityNiceToHave, session.Questions.Priorities["What was your first job?"])
}

func TestUpdateQuestions_BeforeConfirm(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := walkToSummary(t, svc)

	_, err := svc.UpdateQuestions(context.Background(), id, models.QuestionSet{
		Categories: []models.QuestionCategory{
			{Name: "Career & Work", Questions: []string{"What was your first job?"}},
		},
	})
	assert.ErrorIs(t, err, models.ErrNotConfirmed)
}

func TestUpdateQuestions_InvalidPriority(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := walkToSummary(t, svc)
	ctx := context.Background()

	_, err := svc.Confirm(ctx, id)
	require.NoError(t, err)

	_, err = svc.UpdateQuestions(ctx, id, models.QuestionSet{
		Categories: []models.QuestionCategory{
			{Name: "Career & Work", Questions: []string{"What was your first job?"}},
		},
		Priorities: map[string]models.Priority{
			"What was your first job?": models.Priority("Critical"),
		},
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestGoBack(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	id := walkToSummary(t, svc)
	ctx := context.Background()

	session, err := svc.GoBack(ctx, id, models.StepAudience)
	require.NoError(t, err)
	assert.Equal(t, models.StepAudience, session.Step)
	// Collected values survive the rewind.
	assert.Equal(t, "Margaret Hale", session.SubjectName)
}

func TestGoBack_Invalid(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.GoBack(ctx, session.ID, models.StepSummary)
	assert.ErrorIs(t, err, models.ErrWrongStep)

	_, err = svc.GoBack(ctx, session.ID, 0)
	assert.ErrorIs(t, err, models.ErrWrongStep)
}
