package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"petcare/config"
	"petcare/infras/otel/mocks"
	userMocks "petcare/internal/domains/user/mocks"
	"petcare/internal/domains/user/model"
	"petcare/internal/domains/user/model/dto"
	"petcare/internal/domains/user/service"
	cacheMocks "petcare/shared/cache/mocks"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	"petcare/shared/palette"
)

func setup(t *testing.T) (*userMocks.MockUser, *cacheMocks.MockRedisCache, service.User) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, redis, service.New(repo, &config.Config{}, redis, mocks.NewOtel())
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser, redis *cacheMocks.MockRedisCache)
		wantCode  int
		wantEmail string
	}{
		{
			name: "from repository",
			setupMock: func(repo *userMocks.MockUser, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: "user-1", Email: "client@example.com", Role: constant.RoleClient, Active: true}, nil)
			},
			wantEmail: "client@example.com",
		},
		{
			name: "from cache",
			setupMock: func(_ *userMocks.MockUser, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), "user:get:user-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.UserResponse).Email = "cached@example.com"

						return nil
					})
			},
			wantEmail: "cached@example.com",
		},
		{
			name: "not found",
			setupMock: func(repo *userMocks.MockUser, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository failure",
			setupMock: func(repo *userMocks.MockUser, redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, redis, svc := setup(t)
			tt.setupMock(repo, redis)

			res, err := svc.Get(context.Background(), "user-1")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, res.Email)
		})
	}
}

func TestUserService_GetWalkers(t *testing.T) {
	stored := palette.Colors[0]

	repo, redis, svc := setup(t)

	redis.EXPECT().Get(gomock.Any(), "user:walkers", gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.User, error) {
			assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)
			assert.Len(t, filter.Filters, 2)

			return []model.User{
				{ID: "w-1", FullName: "First", Color: &stored},
				{ID: "w-2", FullName: "Second"},
				{ID: "w-3", FullName: "Third"},
			}, nil
		})

	res, err := svc.GetWalkers(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Walkers, 3)

	assert.Equal(t, palette.Colors[0], res.Walkers[0].Color)
	assert.Equal(t, palette.Colors[1], res.Walkers[1].Color)
	assert.Equal(t, palette.Colors[2], res.Walkers[2].Color)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestUserService_GetWalkers_RepositoryFailure(t *testing.T) {
	repo, redis, svc := setup(t)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.GetWalkers(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
