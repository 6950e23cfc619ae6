package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"petcare/config"
	"petcare/infras/otel/mocks"
	"petcare/internal/domains/appointment/event"
	"petcare/internal/domains/catalog"
	payrollMocks "petcare/internal/domains/payroll/mocks"
	"petcare/internal/domains/payroll/model"
	"petcare/internal/domains/payroll/model/dto"
	"petcare/internal/domains/payroll/service"
	cacheMocks "petcare/shared/cache/mocks"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
)

const walkerID = "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func completed(serviceType catalog.ServiceType, duration *int) event.Appointment {
	return event.Appointment{
		Type:            event.TypeCompleted,
		ID:              "appointment-1",
		WalkerID:        stringPtr(walkerID),
		ServiceType:     serviceType,
		ScheduledDate:   "2025-03-10",
		DurationMinutes: duration,
	}
}

func TestPayrollService_RecordCompletion(t *testing.T) {
	tests := []struct {
		name       string
		evt        event.Appointment
		setupMock  func(repo *payrollMocks.MockPayroll)
		wantAmount float64
		wantErr    bool
	}{
		{
			name: "short walk pays the flat rate",
			evt:  completed(catalog.WalkShort, intPtr(47)),
			setupMock: func(repo *payrollMocks.MockPayroll) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantAmount: 15,
		},
		{
			name: "transport pays by tracked minutes",
			evt:  completed(catalog.Transport, intPtr(90)),
			setupMock: func(repo *payrollMocks.MockPayroll) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantAmount: 30,
		},
		{
			name: "concierge falls back to the catalog duration",
			evt:  completed(catalog.Concierge, nil),
			setupMock: func(repo *payrollMocks.MockPayroll) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantAmount: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := payrollMocks.NewMockPayroll(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(mockRepo)

			var inserted model.WalkerEarning

			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, earning model.WalkerEarning) error {
					inserted = earning

					return nil
				})

			svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

			err := svc.RecordCompletion(context.Background(), tt.evt)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantAmount, inserted.Amount, 0.001)
			assert.Equal(t, tt.evt.ID, inserted.AppointmentID)
			assert.Equal(t, walkerID, inserted.WalkerID)
			assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), inserted.WorkDate)
		})
	}
}

func TestPayrollService_RecordCompletionSkips(t *testing.T) {
	tests := []struct {
		name      string
		evt       event.Appointment
		setupMock func(repo *payrollMocks.MockPayroll)
		wantErr   bool
	}{
		{
			name:      "other lifecycle events",
			evt:       event.Appointment{Type: event.TypeCreated, ID: "appointment-1"},
			setupMock: func(_ *payrollMocks.MockPayroll) {},
		},
		{
			name:      "no walker assigned",
			evt:       event.Appointment{Type: event.TypeCompleted, ID: "appointment-1", ScheduledDate: "2025-03-10"},
			setupMock: func(_ *payrollMocks.MockPayroll) {},
		},
		{
			name: "already recorded",
			evt:  completed(catalog.WalkLong, intPtr(60)),
			setupMock: func(repo *payrollMocks.MockPayroll) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "recorded concurrently",
			evt:  completed(catalog.WalkLong, intPtr(60)),
			setupMock: func(repo *payrollMocks.MockPayroll) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
		},
		{
			name: "store failure is returned for retry",
			evt:  completed(catalog.WalkLong, intPtr(60)),
			setupMock: func(repo *payrollMocks.MockPayroll) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := payrollMocks.NewMockPayroll(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

			err := svc.RecordCompletion(context.Background(), tt.evt)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPayrollService_Timesheet(t *testing.T) {
	walkerCtx := context.WithValue(context.Background(), constant.ContextKeyUserID, walkerID)
	walkerCtx = context.WithValue(walkerCtx, constant.ContextKeyUserRole, constant.RoleWalker)

	adminCtx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	adminCtx = context.WithValue(adminCtx, constant.ContextKeyUserRole, constant.RoleAdmin)

	rows := []model.WalkerEarning{
		{AppointmentID: "a1", ServiceType: catalog.WalkShort, WorkDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), DurationMinutes: intPtr(30), Amount: 15},
		{AppointmentID: "a2", ServiceType: catalog.Transport, WorkDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), DurationMinutes: intPtr(45), Amount: 15},
		{AppointmentID: "a3", ServiceType: catalog.WalkLong, WorkDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Amount: 25},
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.TimesheetRequest
		loads     bool
		wantCode  int
		wantTotal float64
	}{
		{
			name:      "walker defaults to own timesheet",
			ctx:       walkerCtx,
			req:       dto.TimesheetRequest{From: "2025-03-01", To: "2025-03-31"},
			loads:     true,
			wantTotal: 55,
		},
		{
			name:      "admin reads any walker",
			ctx:       adminCtx,
			req:       dto.TimesheetRequest{WalkerID: walkerID, From: "2025-03-01", To: "2025-03-31"},
			loads:     true,
			wantTotal: 55,
		},
		{
			name:     "walker cannot read another walker",
			ctx:      walkerCtx,
			req:      dto.TimesheetRequest{WalkerID: "someone-else", From: "2025-03-01", To: "2025-03-31"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin must name a walker",
			ctx:      adminCtx,
			req:      dto.TimesheetRequest{From: "2025-03-01", To: "2025-03-31"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "reversed range",
			ctx:      walkerCtx,
			req:      dto.TimesheetRequest{From: "2025-03-31", To: "2025-03-01"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := payrollMocks.NewMockPayroll(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			if tt.loads {
				mockCache.EXPECT().Get(gomock.Any(), "payroll:timesheet:"+walkerID+":2025-03-01:2025-03-31", gomock.Any()).Return(errors.New("miss"))
				mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.WalkerEarning, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, walkerID, args[model.FieldWalkerID])
						assert.Equal(t, "2025-03-01", args["work_date_from"])
						assert.Equal(t, "2025-03-31", args["work_date_to"])

						return rows, nil
					})
			}

			svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

			res, err := svc.Timesheet(tt.ctx, tt.req)

			if tt.wantCode != 0 {
				var fail *failure.Failure

				require.ErrorAs(t, err, &fail)
				assert.Equal(t, tt.wantCode, fail.Code)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, walkerID, res.WalkerID)
			assert.Len(t, res.Entries, 3)
			assert.Equal(t, 75, res.TotalMinutes)
			assert.InDelta(t, tt.wantTotal, res.TotalAmount, 0.001)
			assert.Equal(t, "2025-03-11", res.Entries[1].WorkDate)
		})
	}
}

func TestPayrollService_Calculate(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.EarningsRequest
		expected float64
	}{
		{name: "long walk", req: dto.EarningsRequest{ServiceType: "walk_long"}, expected: 25},
		{name: "concierge 45 minutes", req: dto.EarningsRequest{ServiceType: "concierge", DurationMinutes: intPtr(45)}, expected: 15},
		{name: "transport without duration", req: dto.EarningsRequest{ServiceType: "transport"}, expected: 0},
	}

	svc := service.New(nil, &config.Config{}, nil, mocks.NewOtel())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Calculate(context.Background(), tt.req)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, res.Amount, 0.001)
		})
	}

	t.Run("service type outside the catalog", func(t *testing.T) {
		_, err := svc.Calculate(context.Background(), dto.EarningsRequest{ServiceType: "grooming"})

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, http.StatusBadRequest, fail.Code)
	})
}
