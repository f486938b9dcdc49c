package insight

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/cachekey"
	"go-hrpms/internal/shared/textcase"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	SnapshotTTL = 5 * time.Minute

	unspecifiedGender = "Unspecified"
	salaryPlaces      = 2
)

//go:generate mockgen -source=insight_service.go -destination=mock/insight_service_mock.go -package=mock
type Service interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	// Refresh recomputes the snapshot and overwrites the cached copy.
	Refresh(ctx context.Context) (Snapshot, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithClock(repo, rdb, time.Now, logger...)
}

// NewServiceWithClock stamps snapshots with now instead of the wall clock.
func NewServiceWithClock(repo Repository, rdb *redis.Client, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("insight.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insight.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		now:    now,
		logger: l,
	}
}

func (s *service) Snapshot(ctx context.Context) (Snapshot, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cachekey.InsightsSnapshot).Result()
		switch {
		case err == nil:
			var snap Snapshot
			if err := json.Unmarshal([]byte(cached), &snap); err == nil {
				return snap, nil
			}
			s.logger.Warn("discarding undecodable insights cache entry")
		case err != redis.Nil:
			s.logger.Warn("insights cache read failed", zap.Error(err))
		}
	}

	// The flight outlives any single caller that shares it.
	v, err, shared := s.sf.Do(cachekey.InsightsSnapshot, func() (interface{}, error) {
		flightCtx := context.WithoutCancel(ctx)
		snap, err := s.compute(flightCtx)
		if err != nil {
			return Snapshot{}, err
		}
		s.store(flightCtx, snap)
		return snap, nil
	})
	if err != nil {
		s.logger.Error("insights snapshot failed", zap.Error(err))
		return Snapshot{}, apperror.FromDB(err)
	}
	if shared {
		s.logger.Debug("insights snapshot shared with concurrent caller")
	}

	return v.(Snapshot), nil
}

func (s *service) Refresh(ctx context.Context) (Snapshot, error) {
	snap, err := s.compute(ctx)
	if err != nil {
		s.logger.Error("insights refresh failed", zap.Error(err))
		return Snapshot{}, apperror.FromDB(err)
	}
	s.store(ctx, snap)
	s.logger.Info("insights snapshot refreshed", zap.Int64("total_active", snap.TotalActive))
	return snap, nil
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, cachekey.InsightsSnapshot).Err(); err != nil {
		s.logger.Error("failed to invalidate insights cache", zap.Error(err))
		return apperror.WithCause(apperror.ErrUnavailable, err)
	}
	return nil
}

func (s *service) store(ctx context.Context, snap Snapshot) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("insights snapshot encode failed", zap.Error(err))
		return
	}
	if err := s.rdb.Set(ctx, cachekey.InsightsSnapshot, data, SnapshotTTL).Err(); err != nil {
		s.logger.Warn("insights cache write failed", zap.Error(err))
	}
}

// compute runs the four aggregate queries concurrently. They share no
// transaction.
func (s *service) compute(ctx context.Context) (Snapshot, error) {
	var (
		salary   SalaryStats
		genders  []GenderCount
		depts    []DepartmentStat
		statuses []StatusCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		salary, err = s.repo.SalaryStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		genders, err = s.repo.GenderCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		depts, err = s.repo.DepartmentStats(gctx)
		return err
	})
	g.Go(func() (err error) {
		statuses, err = s.repo.TaskStatusCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return Build(salary, genders, depts, statuses, s.now().UTC()), nil
}

// Build assembles a snapshot from raw aggregates. Department rows whose
// names title-case to the same key are merged.
func Build(salary SalaryStats, genders []GenderCount, depts []DepartmentStat, statuses []StatusCount, at time.Time) Snapshot {
	snap := Snapshot{
		MaxSalary:             salary.MaxSalary,
		MinSalary:             salary.MinSalary,
		AvgSalary:             roundNull(salary.AvgSalary),
		GenderCounts:          make(map[string]int64, len(genders)),
		GenderRatio:           make(map[string]float64, len(genders)),
		AvgSalaryByDepartment: make(map[string]decimal.Decimal, len(depts)),
		HeadcountByDepartment: make(map[string]int64, len(depts)),
		TasksByStatus:         make(map[string]int64, len(statuses)),
		GeneratedAt:           at,
	}

	for _, g := range genders {
		key := strings.TrimSpace(g.Gender)
		if key == "" {
			key = unspecifiedGender
		}
		snap.GenderCounts[key] += g.Count
		snap.TotalActive += g.Count
	}
	if snap.TotalActive > 0 {
		for gender, count := range snap.GenderCounts {
			snap.GenderRatio[gender] = float64(count) / float64(snap.TotalActive)
		}
	}

	totals := make(map[string]decimal.Decimal, len(depts))
	for _, d := range depts {
		key := textcase.Title(d.DepartmentName)
		snap.HeadcountByDepartment[key] += d.Headcount
		totals[key] = totals[key].Add(d.TotalSalary)
	}
	for key, total := range totals {
		if n := snap.HeadcountByDepartment[key]; n > 0 {
			snap.AvgSalaryByDepartment[key] = total.Div(decimal.NewFromInt(n)).Round(salaryPlaces)
		}
	}

	for _, st := range statuses {
		snap.TasksByStatus[st.Status] += st.Count
	}

	return snap
}

func roundNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(salaryPlaces))
}
