package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"legacy-server/internal/migration"
	"legacy-server/internal/models"
	"legacy-server/internal/repository"

	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	rdContainer *tcredis.RedisContainer
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	sessions    repository.SessionRepository
	projects    repository.ProjectRepository
	logger      *zap.Logger
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.logger, err = zap.NewDevelopment()
	require.NoError(s.T(), err, "Failed to create logger for tests")

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	pgConnStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get postgres connection string")

	s.pgPool, err = pgxpool.New(s.ctx, pgConnStr)
	require.NoError(s.T(), err, "Failed to connect to test postgres")

	migrator := migration.NewMigrator(migration.DefaultConfig(), s.pgPool)
	require.NoError(s.T(), migrator.Up(s.ctx), "Failed to apply migrations")

	s.rdContainer, err = tcredis.Run(s.ctx,
		"docker.io/redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("* Ready to accept connections").
				WithOccurrence(1).
				WithStartupTimeout(1*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start redis container")

	redisHost, err := s.rdContainer.Host(s.ctx)
	require.NoError(s.T(), err)
	redisPort, err := s.rdContainer.MappedPort(s.ctx, "6379/tcp")
	require.NoError(s.T(), err)

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort.Port()),
	})
	_, err = s.redisClient.Ping(s.ctx).Result()
	require.NoError(s.T(), err, "Failed to connect to test redis")

	s.sessions = repository.NewRedisSessionRepository(s.redisClient, time.Hour, s.logger)
	s.projects = repository.NewPgProjectRepository(s.pgPool, s.logger)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate postgres container", zap.Error(err))
		}
	}
	if s.rdContainer != nil {
		if err := s.rdContainer.Terminate(s.ctx); err != nil {
			s.logger.Error("Failed to terminate redis container", zap.Error(err))
		}
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	require.NoError(s.T(), s.redisClient.FlushDB(s.ctx).Err(), "Failed to flush Redis DB")
	_, err := s.pgPool.Exec(s.ctx, "TRUNCATE TABLE projects")
	require.NoError(s.T(), err, "Failed to truncate projects table")
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	cli, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		t.Fatalf("Docker client init error: %v. Ensure Docker is running and accessible.", err)
	}
	if _, err := cli.Ping(context.Background()); err != nil {
		t.Fatalf("Docker daemon is not running or accessible: %v", err)
	}
	cli.Close()

	suite.Run(t, new(RepositoryIntegrationSuite))
}

func testScope(projectID string) *models.ProjectScope {
	return &models.ProjectScope{
		ProjectID:         projectID,
		CreatedAt:         time.Now().UTC().Truncate(time.Millisecond),
		LegacyType:        "Full Life Story",
		LegacyDescription: "A comprehensive journey through your entire life.",
		Subject: models.Subject{
			Name:         "Margaret Hale",
			Relationship: "I'm capturing a parent's story",
		},
		ScopingDetails: []models.ScopingDetail{
			{Question: "How far back?", Answer: models.TextAnswer("As far back as I can remember")},
			{Question: "Themes?", Answer: models.ChoicesAnswer("Family & Relationships")},
		},
		TargetAudience:  []string{"My Children"},
		DeliveryFormats: []string{"Written Book / Memoir"},
		Timeline:        "Within the next month",
	}
}

func (s *RepositoryIntegrationSuite) TestSessionSaveGetDelete() {
	t := s.T()
	ctx := context.Background()

	session := &models.Session{
		ID:         uuid.New(),
		Step:       models.StepScoping,
		LegacyType: "Full Life Story",
		ScopingAnswers: map[string]models.AnswerValue{
			"time_depth": models.TextAnswer("As far back as I can remember"),
			"themes":     models.ChoicesAnswer("Family & Relationships", "Travel & Adventures"),
		},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, s.sessions.Save(ctx, session))

	loaded, err := s.sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session.ID, loaded.ID)
	require.Equal(t, models.StepScoping, loaded.Step)
	require.Equal(t, "Full Life Story", loaded.LegacyType)
	require.True(t, loaded.ScopingAnswers["themes"].IsList())
	require.Equal(t, []string{"Family & Relationships", "Travel & Adventures"}, loaded.ScopingAnswers["themes"].Choices)
	require.False(t, loaded.UpdatedAt.IsZero())

	ttl, err := s.redisClient.TTL(ctx, "session:"+session.ID.String()).Result()
	require.NoError(t, err)
	require.True(t, ttl > 0, "session key must carry a TTL")

	require.NoError(t, s.sessions.Delete(ctx, session.ID))
	_, err = s.sessions.Get(ctx, session.ID)
	require.ErrorIs(t, err, models.ErrSessionNotFound)
}

func (s *RepositoryIntegrationSuite) TestSessionGet_Missing() {
	_, err := s.sessions.Get(context.Background(), uuid.New())
	require.ErrorIs(s.T(), err, models.ErrSessionNotFound)
}

func (s *RepositoryIntegrationSuite) TestSessionDelete_Idempotent() {
	require.NoError(s.T(), s.sessions.Delete(context.Background(), uuid.New()))
}

func (s *RepositoryIntegrationSuite) TestProjectCreateAndGet() {
	t := s.T()
	ctx := context.Background()

	scope := testScope("20260830_101500")
	require.NoError(t, s.projects.Create(ctx, scope))

	loaded, err := s.projects.GetByID(ctx, scope.ProjectID)
	require.NoError(t, err)
	require.Equal(t, scope.ProjectID, loaded.ProjectID)
	require.Equal(t, scope.Subject, loaded.Subject)
	require.Equal(t, scope.TargetAudience, loaded.TargetAudience)
	require.Len(t, loaded.ScopingDetails, 2)
	require.Equal(t, "As far back as I can remember", loaded.ScopingDetails[0].Answer.Text)
}

func (s *RepositoryIntegrationSuite) TestProjectGet_Missing() {
	_, err := s.projects.GetByID(context.Background(), "19000101_000000")
	require.ErrorIs(s.T(), err, models.ErrProjectNotFound)
}

func (s *RepositoryIntegrationSuite) TestProjectCreate_DuplicateOverwrites() {
	t := s.T()
	ctx := context.Background()

	scope := testScope("20260830_101500")
	require.NoError(t, s.projects.Create(ctx, scope))

	updated := testScope("20260830_101500")
	updated.Subject.Name = "Margaret H. Thornton"
	require.NoError(t, s.projects.Create(ctx, updated))

	loaded, err := s.projects.GetByID(ctx, scope.ProjectID)
	require.NoError(t, err)
	require.Equal(t, "Margaret H. Thornton", loaded.Subject.Name)

	count, err := s.projects.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func (s *RepositoryIntegrationSuite) TestProjectListOrderingAndPaging() {
	t := s.T()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		scope := testScope(fmt.Sprintf("20260830_10150%d", i))
		scope.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Minute)
		scope.Subject.Name = fmt.Sprintf("Subject %d", i)
		require.NoError(t, s.projects.Create(ctx, scope))
	}

	summaries, err := s.projects.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	// Newest first.
	require.Equal(t, "Subject 2", summaries[0].SubjectName)
	require.Equal(t, "Subject 0", summaries[2].SubjectName)

	page, err := s.projects.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Subject 1", page[0].SubjectName)

	count, err := s.projects.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}
