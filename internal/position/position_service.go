package position

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	positionerrors "go-hrpms/internal/position/errors"
	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/cachekey"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const catalogTTL = 30 * time.Minute

//go:generate mockgen -source=position_service.go -destination=mock/position_service_mock.go -package=mock
type Service interface {
	ListByDepartment(ctx context.Context, departmentID uint) ([]PositionResponse, error)
	Create(ctx context.Context, departmentID uint, req CreatePositionRequest) (PositionResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) ListByDepartment(ctx context.Context, departmentID uint) ([]PositionResponse, error) {
	cacheKey := cachekey.PositionsByDepartment(departmentID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []PositionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		positions, err := s.repo.FindByDepartment(ctx, departmentID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(positions)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, data, catalogTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list positions failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return nil, apperror.FromDB(err)
	}

	return v.([]PositionResponse), nil
}

func (s *service) Create(ctx context.Context, departmentID uint, req CreatePositionRequest) (PositionResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return PositionResponse{}, apperror.RequiredField("Title")
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PositionResponse{}, apperror.FromDB(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.DepartmentExists(ctx, departmentID)
	if err != nil {
		return PositionResponse{}, apperror.FromDB(err)
	}
	if !ok {
		return PositionResponse{}, positionerrors.ErrDepartmentNotFound
	}

	pos := &Position{
		DepartmentID:  departmentID,
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		Specification: strings.TrimSpace(req.Specification),
	}
	if err := qtx.Create(ctx, pos); err != nil {
		s.logger.Warn("create position failed", zap.Uint("department_id", departmentID), zap.Error(err))
		if apperror.IsUniqueViolation(err, "uq_position_department_title") {
			return PositionResponse{}, positionerrors.ErrPositionExists
		}
		return PositionResponse{}, apperror.FromDB(err)
	}

	if err := tx.Commit().Error; err != nil {
		return PositionResponse{}, apperror.FromDB(err)
	}

	if s.rdb != nil {
		cacheKey := cachekey.PositionsByDepartment(departmentID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate position cache", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return mapToResponse(*pos), nil
}

func mapToResponse(pos Position) PositionResponse {
	return PositionResponse{
		ID:            pos.ID,
		DepartmentID:  pos.DepartmentID,
		Title:         pos.Title,
		Description:   pos.Description,
		Specification: pos.Specification,
	}
}

func mapToListResponse(positions []Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
