package app

import (
	"context"
	"errors"
	"testing"

	"go-hrpms/internal/insight"
	insightmock "go-hrpms/internal/insight/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestScheduleInsightsRefresh(t *testing.T) {
	t.Run("rejects a malformed schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := scheduleInsightsRefresh(context.Background(), "every five minutes", insightmock.NewMockService(ctrl), zap.NewNop())
		assert.ErrorContains(t, err, "INSIGHTS_REFRESH_SPEC")
	})

	t.Run("job refreshes and logs the headcount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := insightmock.NewMockService(ctrl)
		core, logs := observer.New(zap.InfoLevel)

		svc.EXPECT().Refresh(gomock.Any()).Return(insight.Snapshot{TotalActive: 7}, nil)

		c, err := scheduleInsightsRefresh(context.Background(), "@every 5m", svc, zap.New(core))
		require.NoError(t, err)
		require.Len(t, c.Entries(), 1)

		c.Entries()[0].Job.Run()

		entries := logs.FilterMessage("insights refreshed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(7), entries[0].ContextMap()["total_active"])
	})

	t.Run("failed refresh is logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := insightmock.NewMockService(ctrl)
		core, logs := observer.New(zap.InfoLevel)

		svc.EXPECT().Refresh(gomock.Any()).Return(insight.Snapshot{}, errors.New("db down"))

		c, err := scheduleInsightsRefresh(context.Background(), "@every 5m", svc, zap.New(core))
		require.NoError(t, err)

		c.Entries()[0].Job.Run()

		assert.Equal(t, 1, logs.FilterMessage("insights refresh failed").Len())
	})
}
