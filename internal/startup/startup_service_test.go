package startup_test

import (
	"context"
	"testing"
	"time"

	"go-inova/internal/administrator"
	adminMock "go-inova/internal/administrator/mock"
	"go-inova/internal/member"
	memberMock "go-inova/internal/member/mock"
	"go-inova/internal/startup"
	startuperrors "go-inova/internal/startup/errors"
	startupMock "go-inova/internal/startup/mock"
	storageMock "go-inova/internal/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service  startup.Service
	repo     *startupMock.MockRepository
	members  *memberMock.MockRepository
	admins   *adminMock.MockRepository
	uploader *storageMock.MockImageUploader
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		repo:     startupMock.NewMockRepository(ctrl),
		members:  memberMock.NewMockRepository(ctrl),
		admins:   adminMock.NewMockRepository(ctrl),
		uploader: storageMock.NewMockImageUploader(ctrl),
	}
	deps.service = startup.NewService(deps.repo, deps.members, deps.admins, deps.uploader)
	return deps
}

func TestStartupService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and trims filters", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().List(ctx, startup.ListFilter{
			Sector:   "Agro",
			Query:    "inova",
			Page:     1,
			PageSize: startup.DefaultPageSize,
		}).Return([]startup.Startup{{ID: uuid.New(), Name: "Inova Agro"}}, int64(1), nil)

		result, err := deps.service.List(ctx, startup.ListStartupsQuery{Sector: " Agro ", Q: "inova"})
		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, int64(1), result.Total)
		assert.Equal(t, startup.DefaultPageSize, result.Size)
	})

	t.Run("caps page size", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f startup.ListFilter) ([]startup.Startup, int64, error) {
			assert.Equal(t, startup.MaxPageSize, f.PageSize)
			assert.Equal(t, 3, f.Page)
			return nil, 0, nil
		})

		_, err := deps.service.List(ctx, startup.ListStartupsQuery{Page: 3, PageSize: 1000})
		assert.NoError(t, err)
	})
}

func TestStartupService_GetProfile(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	st := &startup.Startup{ID: id, Name: "Inova", CreatedAt: time.Now()}

	t.Run("composes optional parts", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(st, nil)
		deps.members.EXPECT().ListByStartup(ctx, id).Return([]member.Member{{ID: uuid.New(), StartupID: id, Name: "Caio"}}, nil)
		deps.repo.EXPECT().FindContact(ctx, id).Return(&startup.ContactInfo{Email: "hi@inova.dev"}, nil)
		deps.repo.EXPECT().FindSocialLinks(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		deps.admins.EXPECT().FindByStartupID(ctx, id).Return(&administrator.Administrator{ID: uuid.New(), StartupID: id, Name: "Ana"}, nil)

		profile, err := deps.service.GetProfile(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, "Inova", profile.Startup.Name)
		assert.Len(t, profile.Members, 1)
		require.NotNil(t, profile.Contact)
		assert.Equal(t, "hi@inova.dev", profile.Contact.Email)
		assert.Nil(t, profile.SocialLinks)
		require.NotNil(t, profile.Administrator)
		assert.Equal(t, "Ana", profile.Administrator.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetProfile(ctx, id.String())
		assert.ErrorIs(t, err, startuperrors.ErrStartupNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetProfile(ctx, "inova")
		assert.ErrorIs(t, err, startuperrors.ErrInvalidStartupID)
	})

	t.Run("by name", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByName(ctx, "Inova").Return(st, nil)
		deps.members.EXPECT().ListByStartup(ctx, id).Return(nil, nil)
		deps.repo.EXPECT().FindContact(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().FindSocialLinks(ctx, id).Return(nil, gorm.ErrRecordNotFound)
		deps.admins.EXPECT().FindByStartupID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		profile, err := deps.service.GetProfileByName(ctx, "Inova")
		require.NoError(t, err)
		assert.Equal(t, id.String(), profile.Startup.ID)
		assert.Nil(t, profile.Administrator)
	})
}

func TestStartupService_Create(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("stamps creator", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *startup.Startup) error {
			require.NotNil(t, s.CreatedBy)
			assert.Equal(t, actor, *s.CreatedBy)
			assert.Equal(t, "Teresina", s.City)
			s.ID = uuid.New()
			return nil
		})

		resp, err := deps.service.Create(ctx, actor, startup.CreateStartupRequest{
			Name:    "Inova",
			About:   "About",
			Sector:  "Agro",
			Address: startup.AddressRequest{City: " Teresina "},
		})
		assert.NoError(t, err)
		assert.Equal(t, "Teresina", resp.Address.City)
	})

	t.Run("future founding year", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, actor, startup.CreateStartupRequest{
			Name:        "Inova",
			About:       "About",
			Sector:      "Agro",
			FoundedYear: time.Now().Year() + 1,
		})
		assert.ErrorIs(t, err, startuperrors.ErrInvalidFoundedYear)
	})
}

func TestStartupService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	st := &startup.Startup{ID: id, LogoURL: "http://minio/inova/logos/a.jpg"}

	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindByID(ctx, id).Return(st, nil)
	deps.members.EXPECT().ListByStartup(ctx, id).Return([]member.Member{
		{ID: uuid.New(), PhotoURL: "http://minio/inova/members/b.jpg"},
		{ID: uuid.New()},
	}, nil)
	deps.repo.EXPECT().Delete(ctx, id).Return(nil)
	deps.uploader.EXPECT().RemoveByURL(ctx, "http://minio/inova/logos/a.jpg").Return(nil)
	deps.uploader.EXPECT().RemoveByURL(ctx, "http://minio/inova/members/b.jpg").Return(nil)

	assert.NoError(t, deps.service.Delete(ctx, id.String()))
}
