package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrpms/internal/database/dbtest"
	"go-hrpms/internal/employee"
	employeeerrors "go-hrpms/internal/employee/errors"
	"go-hrpms/internal/events"
	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/cachekey"
	"go-hrpms/internal/shared/contextutil"

	employeeMock "go-hrpms/internal/employee/mock"
	"go-hrpms/internal/messaging/kafka"
	kafkaMock "go-hrpms/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock := dbtest.NewMock(t)
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, outboxRepo, dbRedis)

	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
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

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:         "Asha Rao",
		Email:        "asha@x.com",
		Phone:        "555-0101",
		DepartmentID: 1,
		JobTitle:     "Software Engineer",
		Salary:       decimal.RequireFromString("85000"),
		HireDate:     "2024-03-01",
		Gender:       "Female",
	}
}

func ashaRow() *employee.EmployeeRow {
	return &employee.EmployeeRow{
		EmployeeID:     10,
		Name:           "Asha Rao",
		Email:          "asha@x.com",
		DepartmentID:   1,
		DepartmentName: "engineering",
		JobTitle:       "Software Engineer",
		Salary:         decimal.RequireFromString("85000"),
		HireDate:       datatypes.Date(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		Gender:         "Female",
		IsActive:       true,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")

	t.Run("success writes the row and a created event in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.True(t, e.IsActive)
				assert.Equal(t, "Asha Rao", e.Name)
				assert.Equal(t, "2024-03-01", time.Time(e.HireDate).Format("2006-01-02"))
				e.ID = 10
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeCreated, ev.EventType)
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
				assert.Equal(t, "10", ev.AggregateID)

				var payload events.EmployeeLifecycleEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, uint(10), payload.EmployeeID)
				assert.Equal(t, "req-1", payload.RequestID)
				return nil
			})
		deps.repo.EXPECT().FindRowByID(ctx, uint(10)).Return(ashaRow(), nil)
		deps.redismock.ExpectDel(cachekey.InsightsSnapshot).SetVal(1)

		resp, err := deps.service.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, uint(10), resp.ID)
		assert.Equal(t, "Engineering", resp.DepartmentName)
		assert.Equal(t, "2024-03-01", resp.HireDate)
		assert.True(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("missing email is rejected before the transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.Email = ""

		_, err := deps.service.Create(ctx, req)

		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.Salary = decimal.NewFromInt(-1)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrNegativeSalary)
	})

	t.Run("malformed hire date", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.HireDate = "01/03/2024"

		_, err := deps.service.Create(ctx, req)

		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))
	})

	t.Run("unknown department rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, uint(1)).Return(false, nil)

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email is a conflict and rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls the insert back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, apperror.ErrInternal)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_ListAndSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("list active maps rows", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ListActive(ctx).Return([]employee.EmployeeRow{*ashaRow()}, nil)

		resp, err := deps.service.ListActive(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Engineering", resp[0].DepartmentName)
	})

	t.Run("search trims the term", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Search(ctx, "asha").Return([]employee.EmployeeRow{*ashaRow()}, nil)

		resp, err := deps.service.Search(ctx, "  asha ")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("connection failure is retryable", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ListActive(ctx).Return(nil, context.DeadlineExceeded)

		_, err := deps.service.ListActive(ctx)

		assert.ErrorIs(t, err, apperror.ErrUnavailable)
		assert.True(t, apperror.IsRetryable(err))
	})

	t.Run("get by id not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindRowByID(ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, 99)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites mutable fields only", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().
			Update(ctx, uint(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) (int64, error) {
				assert.NotContains(t, fields, "is_active")
				assert.NotContains(t, fields, "employee_id")
				assert.Equal(t, "Asha R.", fields["name"])
				return 1, nil
			})
		deps.repo.EXPECT().FindRowByID(ctx, uint(10)).Return(ashaRow(), nil)
		deps.redismock.ExpectDel(cachekey.InsightsSnapshot).SetVal(1)

		req := employee.UpdateEmployeeRequest(validCreateRequest())
		req.Name = "Asha R."
		_, err := deps.service.Update(ctx, 10, req)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DepartmentExists(ctx, uint(1)).Return(true, nil)
		deps.repo.EXPECT().Update(ctx, uint(404), gomock.Any()).Return(int64(0), nil)

		_, err := deps.service.Update(ctx, 404, employee.UpdateEmployeeRequest(validCreateRequest()))

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_SoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("archives, deactivates and queues the archived event", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(10)).Return(&employee.Employee{
			ID: 10, Name: "Asha Rao", Email: "asha@x.com", DepartmentID: 1, IsActive: true,
		}, nil)
		deps.repo.EXPECT().
			Archive(ctx, &employee.DeletedEmployee{EmployeeID: 10, Name: "Asha Rao", Email: "asha@x.com"}).
			Return(nil)
		deps.repo.EXPECT().Deactivate(ctx, uint(10)).Return(int64(1), nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeArchived, ev.EventType)
				return nil
			})
		deps.redismock.ExpectDel(cachekey.InsightsSnapshot).SetVal(1)

		err := deps.service.SoftDelete(ctx, 10)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(5)).Return(&employee.Employee{}, gorm.ErrRecordNotFound)

		err := deps.service.SoftDelete(ctx, 5)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("already inactive", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(10)).Return(&employee.Employee{ID: 10, IsActive: false}, nil)

		err := deps.service.SoftDelete(ctx, 10)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyArchived)
	})

	t.Run("archival failure leaves the employee active", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(10)).Return(&employee.Employee{ID: 10, IsActive: true}, nil)
		deps.repo.EXPECT().Archive(ctx, gomock.Any()).Return(errors.New("boom"))

		err := deps.service.SoftDelete(ctx, 10)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("deactivate failure rolls the archival back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(10)).Return(&employee.Employee{ID: 10, IsActive: true}, nil)
		deps.repo.EXPECT().Archive(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().Deactivate(ctx, uint(10)).Return(int64(0), errors.New("boom"))

		err := deps.service.SoftDelete(ctx, 10)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_ListDeleted(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	at := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().ListDeleted(ctx).Return([]employee.DeletedEmployee{
		{EmployeeID: 3, Name: "Ravi", Email: "ravi@x.com", DeletionDate: at},
	}, nil)

	resp, err := deps.service.ListDeleted(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []employee.DeletedEmployeeResponse{
		{EmployeeID: 3, Name: "Ravi", Email: "ravi@x.com", DeletionDate: at},
	}, resp)
}
