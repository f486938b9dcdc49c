package task

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go-hrpms/internal/events"
	"go-hrpms/internal/messaging/kafka"
	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/cachekey"
	"go-hrpms/internal/shared/contextutil"
	taskerrors "go-hrpms/internal/task/errors"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	ListByDueDate(ctx context.Context) ([]TaskResponse, error)
	ListForEmployee(ctx context.Context, employeeID uint) ([]TaskResponse, error)
	Assign(ctx context.Context, req AssignTaskRequest) (TaskResponse, error)
	SetStatus(ctx context.Context, taskID uint, status string) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		rdb:      rdb,
		validate: apperror.NewValidator(),
		logger:   l,
	}
}

func (s *service) ListByDueDate(ctx context.Context) ([]TaskResponse, error) {
	rows, err := s.repo.ListByDueDate(ctx)
	if err != nil {
		s.logger.Error("list tasks failed", zap.Error(err))
		return nil, apperror.FromDB(err)
	}
	return mapRowsToResponse(rows), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID uint) ([]TaskResponse, error) {
	rows, err := s.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list employee tasks failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return nil, apperror.FromDB(err)
	}
	return mapRowsToResponse(rows), nil
}

func (s *service) Assign(ctx context.Context, req AssignTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if err := s.validate.Struct(req); err != nil {
		return TaskResponse{}, apperror.MapValidationError(err)
	}
	description := strings.TrimSpace(req.TaskDescription)
	if description == "" {
		return TaskResponse{}, apperror.RequiredField("Task Description")
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidDueDate
	}

	active, err := s.repo.EmployeeIsActive(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("assign task employee lookup failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, apperror.FromDB(err)
	}
	if !active {
		return TaskResponse{}, taskerrors.ErrEmployeeNotFound
	}

	t := &Task{
		EmployeeID:      req.EmployeeID,
		TaskDescription: description,
		DueDate:         datatypes.Date(dueDate),
		Status:          StatusToDo,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("assign task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, apperror.FromDB(err)
	}

	row, err := s.repo.FindRowByID(ctx, t.ID)
	if err != nil {
		s.logger.Error("assign task reload failed", zap.String("request_id", rid), zap.Uint("task_id", t.ID), zap.Error(err))
		return TaskResponse{}, apperror.FromDB(err)
	}

	s.invalidateInsights(ctx)
	s.logger.Info("task assigned",
		zap.String("request_id", rid),
		zap.Uint("task_id", t.ID),
		zap.Uint("employee_id", t.EmployeeID),
	)

	return mapRowsToResponse([]TaskRow{*row})[0], nil
}

func (s *service) SetStatus(ctx context.Context, taskID uint, status string) error {
	rid := contextutil.GetRequestID(ctx)
	if !ValidStatus(status) {
		s.logger.Warn("set task status rejected", zap.Uint("task_id", taskID), zap.String("status", status))
		return taskerrors.ErrInvalidStatus
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return apperror.FromDB(tx.Error)
	}
	defer tx.Rollback()

	affected, err := s.repo.WithTx(tx).UpdateStatus(ctx, taskID, status)
	if err != nil {
		s.logger.Error("set task status persist failed", zap.Uint("task_id", taskID), zap.Error(err))
		return apperror.FromDB(err)
	}
	if affected == 0 {
		return taskerrors.ErrTaskNotFound
	}

	if s.outbox != nil {
		event, err := kafka.NewEvent(ctx, "task", strconv.FormatUint(uint64(taskID), 10),
			events.TaskStatusChanged, events.TaskStatusTopic,
			events.TaskStatusChangedEvent{
				EventType:  events.TaskStatusChanged,
				RequestID:  rid,
				TaskID:     taskID,
				Status:     status,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return apperror.WithCause(apperror.ErrInternal, err)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("set task status outbox persist failed", zap.Uint("task_id", taskID), zap.Error(err))
			return apperror.FromDB(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return apperror.FromDB(err)
	}

	s.invalidateInsights(ctx)
	s.logger.Info("task status updated",
		zap.String("request_id", rid),
		zap.Uint("task_id", taskID),
		zap.String("status", status),
	)
	return nil
}

func (s *service) invalidateInsights(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cachekey.InsightsSnapshot).Err(); err != nil {
		s.logger.Error("failed to invalidate insights cache", zap.Error(err))
	}
}

func mapRowsToResponse(rows []TaskRow) []TaskResponse {
	res := make([]TaskResponse, len(rows))
	for i, r := range rows {
		res[i] = TaskResponse{
			ID:              r.TaskID,
			EmployeeID:      r.EmployeeID,
			EmployeeName:    r.EmployeeName,
			TaskDescription: r.TaskDescription,
			DueDate:         time.Time(r.DueDate).Format(dateLayout),
			Status:          r.Status,
		}
	}
	return res
}
