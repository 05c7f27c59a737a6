package project_test

import (
	"context"
	"testing"

	"go-inova/internal/administrator"
	adminMock "go-inova/internal/administrator/mock"
	"go-inova/internal/member"
	memberMock "go-inova/internal/member/mock"
	"go-inova/internal/project"
	projecterrors "go-inova/internal/project/errors"
	projectMock "go-inova/internal/project/mock"
	"go-inova/internal/startup"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  project.Service
	repo     *projectMock.MockRepository
	admins   *adminMock.MockRepository
	members  *memberMock.MockRepository
	startups *projectMock.MockStartupFinder
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	deps := &serviceDeps{
		sqlMock:  sqlMock,
		repo:     projectMock.NewMockRepository(ctrl),
		admins:   adminMock.NewMockRepository(ctrl),
		members:  memberMock.NewMockRepository(ctrl),
		startups: projectMock.NewMockStartupFinder(ctrl),
	}
	deps.service = project.NewService(gdb, deps.repo, deps.admins, deps.members, deps.startups)

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.admins.EXPECT().WithTx(gomock.Any()).Return(deps.admins).AnyTimes()
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

var gallery = []string{"http://minio/inova/projects/a.jpg", "http://minio/inova/projects/b.jpg"}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	startupID := uuid.New()
	adminID := uuid.New()

	t.Run("coordinator comes from the administrator", func(t *testing.T) {
		deps := setupServiceTest(t)
		forged := uuid.NewString()

		deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)
		expectTx(t, deps.sqlMock, true)
		deps.admins.EXPECT().FindByStartupID(ctx, startupID).Return(&administrator.Administrator{ID: adminID, StartupID: startupID}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
			require.NotNil(t, p.CoordinatorID)
			assert.Equal(t, adminID, *p.CoordinatorID)
			p.ID = uuid.New()
			return nil
		})

		resp, err := deps.service.Create(ctx, startupID.String(), project.CreateProjectRequest{
			Name:          "Drone",
			Description:   "Crop monitoring",
			Photos:        gallery,
			CoordinatorID: &forged,
		})
		require.NoError(t, err)
		assert.Equal(t, adminID.String(), resp.CoordinatorID)
		assert.NotEqual(t, forged, resp.CoordinatorID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("startup without administrator persists nothing", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)
		expectTx(t, deps.sqlMock, false)
		deps.admins.EXPECT().FindByStartupID(ctx, startupID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, startupID.String(), project.CreateProjectRequest{
			Name:        "Drone",
			Description: "Crop monitoring",
			Photos:      gallery,
		})
		assert.ErrorIs(t, err, projecterrors.ErrStartupHasNoAdministrator)
		assert.Equal(t, "startup has no administrator", err.Error())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	photoCases := []struct {
		name   string
		photos []string
	}{
		{"one photo", []string{"a"}},
		{"blank slots do not count", []string{"a", " ", ""}},
		{"six photos", []string{"a", "b", "c", "d", "e", "f"}},
	}
	for _, tc := range photoCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)

			_, err := deps.service.Create(ctx, startupID.String(), project.CreateProjectRequest{
				Name:        "Drone",
				Description: "Crop monitoring",
				Photos:      tc.photos,
			})
			assert.ErrorIs(t, err, projecterrors.ErrInvalidPhotoCount)
		})
	}

	t.Run("member from another startup", func(t *testing.T) {
		deps := setupServiceTest(t)
		own, foreign := uuid.New(), uuid.New()

		deps.startups.EXPECT().Exists(ctx, startupID).Return(true, nil)
		deps.members.EXPECT().FindByIDs(ctx, startupID, []uuid.UUID{own, foreign}).
			Return([]member.Member{{ID: own, StartupID: startupID}}, nil)

		_, err := deps.service.Create(ctx, startupID.String(), project.CreateProjectRequest{
			Name:        "Drone",
			Description: "Crop monitoring",
			Photos:      gallery,
			MemberIDs:   []string{own.String(), foreign.String(), own.String()},
		})
		assert.ErrorIs(t, err, projecterrors.ErrMemberNotInStartup)
	})

	t.Run("unknown startup", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.startups.EXPECT().Exists(ctx, startupID).Return(false, nil)

		_, err := deps.service.Create(ctx, startupID.String(), project.CreateProjectRequest{Photos: gallery})
		assert.ErrorIs(t, err, projecterrors.ErrStartupNotFound)
	})
}

func TestProjectService_Update_RecomputesCoordinator(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	startupID, projectID := uuid.New(), uuid.New()
	stale, current := uuid.New(), uuid.New()
	forged := uuid.NewString()

	existing := &project.Project{ID: projectID, StartupID: startupID, CoordinatorID: &stale, Photos: gallery}
	deps.repo.EXPECT().FindByID(ctx, startupID, projectID).Return(existing, nil)
	expectTx(t, deps.sqlMock, true)
	deps.admins.EXPECT().FindByStartupID(ctx, startupID).Return(&administrator.Administrator{ID: current}, nil)
	deps.repo.EXPECT().Update(ctx, existing).Return(nil)
	deps.repo.EXPECT().ListMemberIDs(ctx, projectID).Return(nil, nil)
	deps.members.EXPECT().FindByIDs(ctx, startupID, gomock.Any()).Return(nil, nil)

	name := "Renamed"
	resp, err := deps.service.Update(ctx, startupID.String(), projectID.String(), project.UpdateProjectRequest{
		Name:          &name,
		CoordinatorID: &forged,
	})
	require.NoError(t, err)
	assert.Equal(t, current.String(), resp.CoordinatorID)
	assert.Equal(t, "Renamed", resp.Name)
}

func TestProjectService_Update_PhotoRule(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	startupID, projectID := uuid.New(), uuid.New()

	deps.repo.EXPECT().FindByID(ctx, startupID, projectID).
		Return(&project.Project{ID: projectID, StartupID: startupID, Photos: gallery}, nil)

	photos := []string{"only-one"}
	_, err := deps.service.Update(ctx, startupID.String(), projectID.String(), project.UpdateProjectRequest{Photos: &photos})
	assert.ErrorIs(t, err, projecterrors.ErrInvalidPhotoCount)
}

func TestProjectService_SetMembers(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	startupID, projectID, memberID := uuid.New(), uuid.New(), uuid.New()

	deps.repo.EXPECT().FindByID(ctx, startupID, projectID).
		Return(&project.Project{ID: projectID, StartupID: startupID, Photos: gallery}, nil)
	deps.members.EXPECT().FindByIDs(ctx, startupID, []uuid.UUID{memberID}).
		Return([]member.Member{{ID: memberID, StartupID: startupID, Name: "Caio"}}, nil)
	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().ReplaceMembers(ctx, projectID, []uuid.UUID{memberID}).Return(nil)

	resp, err := deps.service.SetMembers(ctx, startupID.String(), projectID.String(), project.SetMembersRequest{
		MemberIDs: []string{memberID.String()},
	})
	require.NoError(t, err)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "Caio", resp.Members[0].Name)
}

func TestProjectService_GetByNames(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown startup", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.startups.EXPECT().FindByName(ctx, "Ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByNames(ctx, "Ghost", "Drone")
		assert.ErrorIs(t, err, projecterrors.ErrStartupNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		deps := setupServiceTest(t)
		st := &startup.Startup{ID: uuid.New(), Name: "Inova"}
		deps.startups.EXPECT().FindByName(ctx, "Inova").Return(st, nil)
		deps.repo.EXPECT().FindByName(ctx, st.ID, "Drone").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByNames(ctx, "Inova", " Drone ")
		assert.ErrorIs(t, err, projecterrors.ErrProjectNotFound)
	})
}
