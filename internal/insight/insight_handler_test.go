package insight_test

import (
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrpms/internal/insight"
	insightMock "go-hrpms/internal/insight/mock"
	"go-hrpms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*gin.Engine, *insightMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := insightMock.NewMockService(gomock.NewController(t))
	h := insight.NewHandler(svc)

	r := gin.New()
	r.GET("/insights", h.GetSnapshot)
	return r, svc
}

func TestInsightHandler_GetSnapshot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Snapshot(gomock.Any()).Return(insight.Snapshot{
			TotalActive:   2,
			GenderRatio:   map[string]float64{"Female": 0.5, "Male": 0.5},
			TasksByStatus: map[string]int64{"Completed": 1},
			GeneratedAt:   fixedNow,
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/insights", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_active":2`)
		assert.Contains(t, w.Body.String(), `"max_salary":null`)
		assert.Contains(t, w.Body.String(), `"Female":0.5`)
	})

	t.Run("store unavailable is retryable", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Snapshot(gomock.Any()).Return(insight.Snapshot{}, apperror.WithCause(apperror.ErrUnavailable, driver.ErrBadConn))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/insights", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"SERVICE_UNAVAILABLE"`)
		assert.Contains(t, w.Body.String(), `"retryable":true`)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Snapshot(gomock.Any()).Return(insight.Snapshot{}, apperror.WithCause(apperror.ErrInternal, driver.ErrSkip))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/insights", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), driver.ErrSkip.Error())
	})
}
