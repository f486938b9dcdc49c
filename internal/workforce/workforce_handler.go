package workforce

import (
	"net/http"
	"strconv"

	"go-hrpms/internal/shared/apperror"
	"go-hrpms/internal/shared/response"
	workforceerrors "go-hrpms/internal/workforce/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("workforce.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workforce.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("workforce request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetFunnels(c *gin.Context) {
	resp, err := h.service.ListFunnels(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpsertFunnel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("department_id"), 10, 64)
	if err != nil || id == 0 {
		h.writeServiceError(c, workforceerrors.ErrInvalidDepartmentID)
		return
	}

	var req UpsertFunnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http upsert funnel validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpsertFunnel(c.Request.Context(), uint(id), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http plan validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Plan(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
