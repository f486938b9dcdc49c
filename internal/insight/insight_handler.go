package insight

import (
	"net/http"

	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("insight.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insight.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("insights request failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}
