package workforce

import (
	"context"
	"errors"
	"strings"

	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/textcase"
	workforceerrors "go-hrpms/internal/workforce/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=workforce_service.go -destination=mock/workforce_service_mock.go -package=mock
type Service interface {
	ListFunnels(ctx context.Context) ([]FunnelResponse, error)
	UpsertFunnel(ctx context.Context, departmentID uint, req UpsertFunnelRequest) (FunnelResponse, error)
	Plan(ctx context.Context, req PlanRequest) (PlanResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("workforce.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workforce.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListFunnels(ctx context.Context) ([]FunnelResponse, error) {
	rows, err := s.repo.ListFunnels(ctx)
	if err != nil {
		s.logger.Error("list funnels failed", zap.Error(err))
		return nil, apperror.FromDB(err)
	}

	res := make([]FunnelResponse, len(rows))
	for i, r := range rows {
		res[i] = FunnelResponse{
			DepartmentID:   r.DepartmentID,
			DepartmentName: textcase.Title(r.DepartmentName),
			Applicants:     r.Applicants,
			Interviews:     r.Interviews,
			Offers:         r.Offers,
			Hires:          r.Hires,
		}
	}
	return res, nil
}

func (s *service) UpsertFunnel(ctx context.Context, departmentID uint, req UpsertFunnelRequest) (FunnelResponse, error) {
	if req.Applicants < 0 || req.Interviews < 0 || req.Offers < 0 || req.Hires < 0 {
		return FunnelResponse{}, workforceerrors.ErrNegativeCount
	}

	ok, err := s.repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return FunnelResponse{}, apperror.FromDB(err)
	}
	if !ok {
		return FunnelResponse{}, workforceerrors.ErrDepartmentNotFound
	}

	f := &RecruitmentFunnel{
		DepartmentID: departmentID,
		Applicants:   req.Applicants,
		Interviews:   req.Interviews,
		Offers:       req.Offers,
		Hires:        req.Hires,
	}
	if err := s.repo.Upsert(ctx, f); err != nil {
		s.logger.Error("upsert funnel failed", zap.Uint("department_id", departmentID), zap.Error(err))
		return FunnelResponse{}, apperror.FromDB(err)
	}

	s.logger.Info("funnel updated", zap.Uint("department_id", departmentID), zap.Int("hires", f.Hires))

	return FunnelResponse{
		DepartmentID: f.DepartmentID,
		Applicants:   f.Applicants,
		Interviews:   f.Interviews,
		Offers:       f.Offers,
		Hires:        f.Hires,
	}, nil
}

// Plan scales the department's per-hire funnel ratios to the requested
// number of positions, truncating each figure toward zero.
func (s *service) Plan(ctx context.Context, req PlanRequest) (PlanResponse, error) {
	if req.Positions < 1 {
		return PlanResponse{}, workforceerrors.ErrInvalidPositions
	}
	title := strings.TrimSpace(req.JobTitle)
	if title == "" {
		return PlanResponse{}, apperror.RequiredField("JobTitle")
	}

	f, err := s.repo.FindFunnel(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PlanResponse{}, workforceerrors.ErrNoFunnel
		}
		return PlanResponse{}, apperror.FromDB(err)
	}
	if f.Hires <= 0 {
		return PlanResponse{}, workforceerrors.ErrNoFunnel
	}

	current, err := s.repo.CountActive(ctx, req.DepartmentID, title)
	if err != nil {
		return PlanResponse{}, apperror.FromDB(err)
	}

	return PlanResponse{
		DepartmentID:     req.DepartmentID,
		JobTitle:         title,
		CurrentEmployees: current,
		Positions:        req.Positions,
		ApplicantsNeeded: scale(req.Positions, f.Applicants, f.Hires),
		InterviewsNeeded: scale(req.Positions, f.Interviews, f.Hires),
		OffersNeeded:     scale(req.Positions, f.Offers, f.Hires),
	}, nil
}

func scale(positions, count, hires int) int {
	return int(float64(positions) * (float64(count) / float64(hires)))
}
