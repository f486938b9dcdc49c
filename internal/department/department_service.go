package department

import (
	"context"
	"encoding/json"
	"time"

	departmenterrors "go-hrpms/internal/department/errors"
	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/cachekey"
	"go-hrpms/internal/shared/textcase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const lookupTTL = 30 * time.Minute

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	// List maps each title-cased department name to its id.
	List(ctx context.Context) (map[string]uint, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	// ListHREmployees maps employee id to name for active HR staff.
	ListHREmployees(ctx context.Context) (map[uint]string, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) List(ctx context.Context) (map[string]uint, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cachekey.DepartmentsLookup).Result()
		if err == nil {
			var lookup map[string]uint
			if err := json.Unmarshal([]byte(cached), &lookup); err == nil {
				return lookup, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("department lookup cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cachekey.DepartmentsLookup, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		lookup := make(map[string]uint, len(depts))
		for _, d := range depts {
			lookup[textcase.Title(d.Name)] = d.ID
		}

		if s.rdb != nil {
			if data, err := json.Marshal(lookup); err == nil {
				if err := s.rdb.Set(ctx, cachekey.DepartmentsLookup, data, lookupTTL).Err(); err != nil {
					s.logger.Warn("department lookup cache write failed", zap.Error(err))
				}
			}
		}

		return lookup, nil
	})
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, apperror.FromDB(err)
	}

	return v.(map[string]uint), nil
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	key := textcase.Key(req.Name)
	if key == "" {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNameEmpty
	}

	dept := &Department{
		Name:    textcase.Title(req.Name),
		NameKey: key,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Warn("create department failed", zap.String("name", dept.Name), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cachekey.DepartmentsLookup).Err(); err != nil {
			s.logger.Error("failed to invalidate department lookup cache", zap.Error(err))
		}
	}

	s.logger.Info("department created", zap.Uint("department_id", dept.ID), zap.String("name", dept.Name))
	return DepartmentResponse{ID: dept.ID, Name: dept.Name}, nil
}

func (s *service) ListHREmployees(ctx context.Context) (map[uint]string, error) {
	rows, err := s.repo.FindHREmployees(ctx)
	if err != nil {
		s.logger.Error("list hr employees failed", zap.Error(err))
		return nil, apperror.FromDB(err)
	}

	res := make(map[uint]string, len(rows))
	for _, r := range rows {
		res[r.EmployeeID] = r.Name
	}
	return res, nil
}
