package rating

import (
	"net/http"
	"strconv"

	ratingerrors "go-hrpms/internal/rating/errors"
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
	l := zap.L().Named("rating.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rating.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rating request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func employeeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetForEmployee(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.writeServiceError(c, ratingerrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.ListForEmployee(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Give(c *gin.Context) {
	var req GiveRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http give rating validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Give(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetSummary(c *gin.Context) {
	id, ok := employeeID(c)
	if !ok {
		h.writeServiceError(c, ratingerrors.ErrInvalidEmployeeID)
		return
	}

	resp, err := h.service.Summary(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
