package administrator_test

import (
	"context"
	"errors"
	"testing"

	"go-inova/internal/administrator"
	administratorerrors "go-inova/internal/administrator/errors"
	adminMock "go-inova/internal/administrator/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service  administrator.Service
	repo     *adminMock.MockRepository
	startups *adminMock.MockReferenceChecker
	users    *adminMock.MockReferenceChecker
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := adminMock.NewMockRepository(ctrl)
	startups := adminMock.NewMockReferenceChecker(ctrl)
	users := adminMock.NewMockReferenceChecker(ctrl)

	return &serviceDeps{
		service:  administrator.NewService(repo, startups, users),
		repo:     repo,
		startups: startups,
		users:    users,
	}
}

func TestAdministratorService_Bind(t *testing.T) {
	ctx := context.Background()
	startupID := uuid.New()
	userID := uuid.New()
	req := administrator.BindAdministratorRequest{
		UserID: userID.String(),
		Name:   "  Ana Souza ",
		Email:  "ana@inova.dev",
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)
		deps.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		deps.repo.EXPECT().FindByStartupID(ctx, startupID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *administrator.Administrator) error {
			assert.Equal(t, "Ana Souza", a.Name)
			assert.Equal(t, startupID, a.StartupID)
			assert.Equal(t, userID, a.UserID)
			a.ID = uuid.New()
			return nil
		})

		resp, err := deps.service.Bind(ctx, startupID.String(), req)
		assert.NoError(t, err)
		assert.Equal(t, startupID.String(), resp.StartupID)
		assert.Equal(t, userID.String(), resp.UserID)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("startup already bound", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)
		deps.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		deps.repo.EXPECT().FindByStartupID(ctx, startupID).Return(&administrator.Administrator{}, nil)

		_, err := deps.service.Bind(ctx, startupID.String(), req)
		assert.ErrorIs(t, err, administratorerrors.ErrStartupAlreadyHasAdministrator)
	})

	t.Run("user already bound elsewhere", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)
		deps.users.EXPECT().Exists(ctx, userID).Return(true, nil)
		deps.repo.EXPECT().FindByStartupID(ctx, startupID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_administrators_user_id",
		})

		_, err := deps.service.Bind(ctx, startupID.String(), req)
		assert.ErrorIs(t, err, administratorerrors.ErrUserAlreadyBound)
	})

	t.Run("unknown startup", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.startups.EXPECT().Exists(ctx, startupID).Return(false, nil)

		_, err := deps.service.Bind(ctx, startupID.String(), req)
		assert.ErrorIs(t, err, administratorerrors.ErrReferenceNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)
		deps.users.EXPECT().Exists(ctx, userID).Return(false, nil)

		_, err := deps.service.Bind(ctx, startupID.String(), req)
		assert.ErrorIs(t, err, administratorerrors.ErrReferenceNotFound)
	})

	t.Run("invalid startup id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Bind(ctx, "nope", req)
		assert.ErrorIs(t, err, administratorerrors.ErrInvalidStartupID)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		deps := setupServiceTest(t)
		dbErr := errors.New("connection reset")
		deps.startups.EXPECT().Exists(ctx, startupID).Return(false, dbErr)

		_, err := deps.service.Bind(ctx, startupID.String(), req)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAdministratorService_GetByStartup(t *testing.T) {
	ctx := context.Background()
	startupID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByStartupID(ctx, startupID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByStartup(ctx, startupID.String())
		assert.ErrorIs(t, err, administratorerrors.ErrAdministratorNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByStartupID(ctx, startupID).Return(&administrator.Administrator{
			ID:        uuid.New(),
			StartupID: startupID,
			Name:      "Ana",
		}, nil)

		resp, err := deps.service.GetByStartup(ctx, startupID.String())
		assert.NoError(t, err)
		assert.Equal(t, "Ana", resp.Name)
	})
}

func TestAdministratorService_Update(t *testing.T) {
	ctx := context.Background()
	startupID := uuid.New()
	name := "Beatriz"
	education := "  MSc Computer Science "

	deps := setupServiceTest(t)
	existing := &administrator.Administrator{ID: uuid.New(), StartupID: startupID, Name: "Ana", Role: "CEO"}
	deps.repo.EXPECT().FindByStartupID(ctx, startupID).Return(existing, nil)
	deps.repo.EXPECT().Update(ctx, existing).Return(nil)

	resp, err := deps.service.Update(ctx, startupID.String(), administrator.UpdateAdministratorRequest{
		Name:      &name,
		Education: &education,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Beatriz", resp.Name)
	assert.Equal(t, "CEO", resp.Role)
	assert.Equal(t, "MSc Computer Science", resp.Education)
}
