package employee

import (
	"context"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-hrpms/internal/employee/errors"
	"go-hrpms/internal/events"
	"go-hrpms/internal/messaging/kafka"
	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/cachekey"
	"go-hrpms/internal/shared/contextutil"
	"go-hrpms/internal/shared/textcase"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	Search(ctx context.Context, term string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	SoftDelete(ctx context.Context, id uint) error
	ListDeleted(ctx context.Context) ([]DeletedEmployeeResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outboxRepo,
		rdb:      rdb,
		validate: apperror.NewValidator(),
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.Uint("department_id", req.DepartmentID),
	)

	hireDate, err := s.validateInput(req)
	if err != nil {
		s.logger.Warn("create employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return EmployeeResponse{}, apperror.FromDB(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.ensureDepartment(ctx, qtx, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		DepartmentID: req.DepartmentID,
		JobTitle:     strings.TrimSpace(req.JobTitle),
		Salary:       req.Salary,
		HireDate:     hireDate,
		Gender:       strings.TrimSpace(req.Gender),
		ProfilePhoto: strings.TrimSpace(req.ProfilePhoto),
		IsActive:     true,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.queueLifecycleEvent(ctx, tx, events.EmployeeCreated, empl.ID, empl.DepartmentID); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("request_id", rid),
			zap.Uint("employee_id", empl.ID),
			zap.Error(err),
		)
		return EmployeeResponse{}, apperror.FromDB(err)
	}

	row, err := qtx.FindRowByID(ctx, empl.ID)
	if err != nil {
		s.logger.Error("create employee reload failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, apperror.FromDB(err)
	}

	s.invalidateInsights(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)

	return mapRowToResponse(*row), nil
}

func (s *service) ListActive(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("list active employees requested")
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("list active employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapRowsToResponse(rows), nil
}

// Search treats an empty or whitespace-only term as "match everything".
func (s *service) Search(ctx context.Context, term string) ([]EmployeeResponse, error) {
	term = strings.TrimSpace(term)
	s.logger.Debug("search employees requested", zap.String("term", term))

	rows, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapRowsToResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapRowToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	hireDate, err := s.validateInput(CreateEmployeeRequest(req))
	if err != nil {
		s.logger.Warn("update employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(tx.Error))
		return EmployeeResponse{}, apperror.FromDB(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := s.ensureDepartment(ctx, qtx, req.DepartmentID); err != nil {
		return EmployeeResponse{}, err
	}

	affected, err := qtx.Update(ctx, id, map[string]any{
		"name":          strings.TrimSpace(req.Name),
		"email":         strings.TrimSpace(req.Email),
		"phone":         strings.TrimSpace(req.Phone),
		"department_id": req.DepartmentID,
		"job_title":     strings.TrimSpace(req.JobTitle),
		"salary":        req.Salary,
		"hire_date":     hireDate,
		"gender":        strings.TrimSpace(req.Gender),
		"profile_photo": strings.TrimSpace(req.ProfilePhoto),
	})
	if err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if affected == 0 {
		s.logger.Warn("update employee not found", zap.Uint("employee_id", id))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	row, err := qtx.FindRowByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee reload failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, apperror.FromDB(err)
	}

	s.invalidateInsights(ctx)
	s.logger.Info("update employee success", zap.String("request_id", rid), zap.Uint("employee_id", id))

	return mapRowToResponse(*row), nil
}

// SoftDelete archives {id, name, email} and flags the employee inactive in
// one transaction. Either both rows change or neither does.
func (s *service) SoftDelete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("soft delete employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("soft delete employee begin tx failed", zap.Error(tx.Error))
		return apperror.FromDB(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("soft delete employee lookup failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if !empl.IsActive {
		s.logger.Warn("soft delete employee already archived", zap.Uint("employee_id", id))
		return employeeerrors.ErrEmployeeAlreadyArchived
	}

	if err := qtx.Archive(ctx, &DeletedEmployee{
		EmployeeID: empl.ID,
		Name:       empl.Name,
		Email:      empl.Email,
	}); err != nil {
		s.logger.Error("soft delete employee archive failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapArchiveError(err)
	}

	affected, err := qtx.Deactivate(ctx, id)
	if err != nil {
		s.logger.Error("soft delete employee deactivate failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		// Another writer deactivated the row between lookup and update.
		return employeeerrors.ErrEmployeeAlreadyArchived
	}

	if err := s.queueLifecycleEvent(ctx, tx, events.EmployeeArchived, empl.ID, empl.DepartmentID); err != nil {
		s.logger.Error("soft delete employee outbox persist failed", zap.Uint("employee_id", id), zap.Error(err))
		return apperror.FromDB(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("soft delete employee commit failed", zap.Error(err))
		return apperror.FromDB(err)
	}

	s.invalidateInsights(ctx)
	s.logger.Info("soft delete employee success", zap.String("request_id", rid), zap.Uint("employee_id", id))
	return nil
}

func (s *service) ListDeleted(ctx context.Context) ([]DeletedEmployeeResponse, error) {
	s.logger.Debug("list deleted employees requested")
	rows, err := s.repo.ListDeleted(ctx)
	if err != nil {
		s.logger.Error("list deleted employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]DeletedEmployeeResponse, len(rows))
	for i, d := range rows {
		res[i] = DeletedEmployeeResponse{
			EmployeeID:   d.EmployeeID,
			Name:         d.Name,
			Email:        d.Email,
			DeletionDate: d.DeletionDate,
		}
	}
	return res, nil
}

func (s *service) validateInput(req CreateEmployeeRequest) (datatypes.Date, error) {
	if err := s.validate.Struct(req); err != nil {
		return datatypes.Date{}, apperror.MapValidationError(err)
	}
	if req.Salary.IsNegative() {
		return datatypes.Date{}, employeeerrors.ErrNegativeSalary
	}
	hireDate, err := time.Parse(dateLayout, req.HireDate)
	if err != nil {
		return datatypes.Date{}, employeeerrors.ErrInvalidHireDate
	}
	return datatypes.Date(hireDate), nil
}

func (s *service) ensureDepartment(ctx context.Context, qtx Repository, departmentID uint) error {
	ok, err := qtx.DepartmentExists(ctx, departmentID)
	if err != nil {
		s.logger.Error("department lookup failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return apperror.FromDB(err)
	}
	if !ok {
		s.logger.Warn("department not found", zap.Uint("department_id", departmentID))
		return employeeerrors.ErrDepartmentNotFound
	}
	return nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *gorm.DB, eventType string, employeeID, departmentID uint) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewEvent(ctx, "employee", strconv.FormatUint(uint64(employeeID), 10), eventType, events.EmployeeLifecycleTopic,
		events.EmployeeLifecycleEvent{
			EventType:    eventType,
			RequestID:    contextutil.GetRequestID(ctx),
			EmployeeID:   employeeID,
			DepartmentID: departmentID,
			OccurredAt:   time.Now().UTC(),
		})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) invalidateInsights(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cachekey.InsightsSnapshot).Err(); err != nil {
		s.logger.Error("failed to invalidate insights cache",
			zap.Error(err),
			zap.String("key", cachekey.InsightsSnapshot),
		)
	}
}

func mapRowToResponse(row EmployeeRow) EmployeeResponse {
	return EmployeeResponse{
		ID:             row.EmployeeID,
		Name:           row.Name,
		Email:          row.Email,
		Phone:          row.Phone,
		DepartmentID:   row.DepartmentID,
		DepartmentName: textcase.Title(row.DepartmentName),
		JobTitle:       row.JobTitle,
		Salary:         row.Salary,
		HireDate:       time.Time(row.HireDate).Format(dateLayout),
		Gender:         row.Gender,
		ProfilePhoto:   row.ProfilePhoto,
		IsActive:       row.IsActive,
	}
}

func mapRowsToResponse(rows []EmployeeRow) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapRowToResponse(r)
	}
	return res
}
