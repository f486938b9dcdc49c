package rating

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go-hrpms/internal/events"
	"go-hrpms/internal/messaging/kafka"
	ratingerrors "go-hrpms/internal/rating/errors"
	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/contextutil"
	"go-hrpms/internal/task"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rating_service.go -destination=mock/rating_service_mock.go -package=mock
type Service interface {
	ListAll(ctx context.Context) ([]RatingResponse, error)
	ListForEmployee(ctx context.Context, employeeID uint) ([]EmployeeRatingResponse, error)
	Give(ctx context.Context, req GiveRatingRequest) (RatingResponse, error)
	Summary(ctx context.Context, employeeID uint) (SummaryResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	tasks  task.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	tasks task.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("rating.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rating.service")
	}
	return &service{db: db, repo: repo, tasks: tasks, outbox: outbox, logger: l}
}

func (s *service) ListAll(ctx context.Context) ([]RatingResponse, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("list ratings failed", zap.Error(err))
		return nil, apperror.FromDB(err)
	}

	res := make([]RatingResponse, len(rows))
	for i, r := range rows {
		res[i] = RatingResponse{
			ID:                   r.RatingID,
			EmployeeID:           r.EmployeeID,
			EmployeeName:         r.EmployeeName,
			ReportingManagerID:   r.ReportingManagerID,
			ReportingManagerName: r.ReportingManagerName,
			Rating:               r.Rating,
			Feedback:             r.Feedback,
			RatingDate:           r.RatingDate,
		}
	}
	return res, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID uint) ([]EmployeeRatingResponse, error) {
	ratings, err := s.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list employee ratings failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return nil, apperror.FromDB(err)
	}
	return mapHistory(ratings), nil
}

func (s *service) Give(ctx context.Context, req GiveRatingRequest) (RatingResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.Rating < MinRating || req.Rating > MaxRating {
		s.logger.Warn("give rating out of range", zap.String("request_id", rid), zap.Int("rating", req.Rating))
		return RatingResponse{}, ratingerrors.ErrRatingOutOfRange
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return RatingResponse{}, apperror.FromDB(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureActive(ctx, qtx, req.EmployeeID, ratingerrors.ErrEmployeeNotFound); err != nil {
		return RatingResponse{}, err
	}
	if err := s.ensureActive(ctx, qtx, req.ReportingManagerID, ratingerrors.ErrManagerNotFound); err != nil {
		return RatingResponse{}, err
	}

	pr := &PerformanceRating{
		EmployeeID:         req.EmployeeID,
		ReportingManagerID: req.ReportingManagerID,
		Rating:             req.Rating,
		Feedback:           strings.TrimSpace(req.Feedback),
	}
	if err := qtx.Create(ctx, pr); err != nil {
		s.logger.Error("give rating persist failed", zap.String("request_id", rid), zap.Error(err))
		return RatingResponse{}, apperror.FromDB(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewEvent(ctx, "performance_rating", strconv.FormatUint(uint64(pr.ID), 10),
			events.RatingGiven, events.PerformanceRatingTopic,
			events.RatingGivenEvent{
				EventType:  events.RatingGiven,
				RequestID:  rid,
				RatingID:   pr.ID,
				EmployeeID: pr.EmployeeID,
				ManagerID:  pr.ReportingManagerID,
				Rating:     pr.Rating,
				OccurredAt: time.Now().UTC(),
			})
		if err != nil {
			return RatingResponse{}, apperror.WithCause(apperror.ErrInternal, err)
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("give rating outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return RatingResponse{}, apperror.FromDB(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return RatingResponse{}, apperror.FromDB(err)
	}

	s.logger.Info("rating given",
		zap.String("request_id", rid),
		zap.Uint("rating_id", pr.ID),
		zap.Uint("employee_id", pr.EmployeeID),
	)

	return RatingResponse{
		ID:                 pr.ID,
		EmployeeID:         pr.EmployeeID,
		ReportingManagerID: pr.ReportingManagerID,
		Rating:             pr.Rating,
		Feedback:           pr.Feedback,
		RatingDate:         pr.RatingDate,
	}, nil
}

func (s *service) Summary(ctx context.Context, employeeID uint) (SummaryResponse, error) {
	name, err := s.repo.EmployeeName(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SummaryResponse{}, ratingerrors.ErrEmployeeNotFound
		}
		return SummaryResponse{}, apperror.FromDB(err)
	}

	tasks, err := s.tasks.ListForEmployee(ctx, employeeID)
	if err != nil {
		return SummaryResponse{}, err
	}

	ratings, err := s.ListForEmployee(ctx, employeeID)
	if err != nil {
		return SummaryResponse{}, err
	}

	res := SummaryResponse{
		EmployeeID:   employeeID,
		EmployeeName: name,
		Tasks:        tasks,
		Ratings:      ratings,
	}
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			res.CompletedTasks++
		}
	}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(ratings))
		res.AverageRating = &avg
	}
	return res, nil
}

func (s *service) ensureActive(ctx context.Context, qtx Repository, employeeID uint, notFound *apperror.AppError) error {
	ok, err := qtx.EmployeeIsActive(ctx, employeeID)
	if err != nil {
		s.logger.Error("rating employee lookup failed", zap.Uint("employee_id", employeeID), zap.Error(err))
		return apperror.FromDB(err)
	}
	if !ok {
		return notFound
	}
	return nil
}

func mapHistory(ratings []PerformanceRating) []EmployeeRatingResponse {
	res := make([]EmployeeRatingResponse, len(ratings))
	for i, r := range ratings {
		res[i] = EmployeeRatingResponse{
			Rating:     r.Rating,
			Feedback:   r.Feedback,
			RatingDate: r.RatingDate,
		}
	}
	return res
}
