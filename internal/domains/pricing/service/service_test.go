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
	"petcare/internal/domains/catalog"
	"petcare/internal/domains/pricing/engine"
	"petcare/internal/domains/pricing/model/dto"
	"petcare/internal/domains/pricing/service"
	cacheMocks "petcare/shared/cache/mocks"
	"petcare/shared/failure"
)

func TestPricingService_Quote(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func(cache *cacheMocks.MockRedisCache)
		wantTotal float64
		wantCode  int
	}{
		{
			name: "christmas week at the facility",
			req:  dto.QuoteRequest{ServiceType: "petsit_our_location", DogCount: 2, StartDate: "2025-12-24", EndDate: "2025-12-27"},
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "pricing:quote:petsit_our_location:2:2025-12-24:2025-12-27", gomock.Any()).Return(errors.New("miss"))
				cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantTotal: 285,
		},
		{
			name: "cache hit skips the engine",
			req:  dto.QuoteRequest{ServiceType: "petsit_client_home", DogCount: 1, StartDate: "2025-03-10"},
			setupMock: func(cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*engine.Quote).Total = 42

						return nil
					})
			},
			wantTotal: 42,
		},
		{
			name:      "reversed stay",
			req:       dto.QuoteRequest{ServiceType: "petsit_client_home", DogCount: 1, StartDate: "2025-03-10", EndDate: "2025-03-01"},
			setupMock: func(_ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			svc := service.New(&config.Config{}, mockCache, mocks.NewOtel())

			quote, err := svc.Quote(context.Background(), tt.req)

			if tt.wantCode != 0 {
				var fail *failure.Failure

				require.ErrorAs(t, err, &fail)
				assert.Equal(t, tt.wantCode, fail.Code)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, quote.Total, 0.001)
		})
	}
}

func TestPricingService_QuoteMatchesEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(&config.Config{}, mockCache, mocks.NewOtel())

	quote, err := svc.Quote(context.Background(), dto.QuoteRequest{
		ServiceType: "petsit_client_home",
		DogCount:    3,
		StartDate:   "2025-07-03",
		EndDate:     "2025-07-05",
	})
	require.NoError(t, err)

	assert.Equal(t, engine.Price(catalog.PetSitClientHome, 3, "2025-07-03", "2025-07-05"), quote)
}

func TestPricingService_Holidays(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.New(&config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	res, err := svc.Holidays(context.Background(), dto.HolidaysRequest{Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, 2025, res.Year)
	require.Len(t, res.Holidays, 6)
	assert.Equal(t, "2025-11-27", res.Holidays[4].Date)
	assert.Len(t, res.Dates, 18)
	assert.Contains(t, res.Dates, "2024-12-31")
}
