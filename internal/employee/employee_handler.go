package employee

import (
	"net/http"
	"strconv"

	employeeerrors "go-hrpms/internal/employee/errors"
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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ParseID reads a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create employee")
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll lists active employees, or searches them when q is present.
func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		resp []EmployeeResponse
		err  error
	)
	if q, ok := c.GetQuery("q"); ok {
		h.logger.Debug("http search employees", zap.String("q", q))
		resp, err = h.service.Search(ctx, q)
	} else {
		h.logger.Debug("http list active employees")
		resp, err = h.service.ListActive(ctx)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	items, meta := response.Paginate(resp, page, pageSize)

	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetDeleted(c *gin.Context) {
	h.logger.Debug("http list deleted employees")

	resp, err := h.service.ListDeleted(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}
	h.logger.Debug("http get employee by id", zap.Uint("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}
	h.logger.Debug("http update employee", zap.Uint("employee_id", id))

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update employee validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID)
		return
	}
	h.logger.Debug("http soft delete employee", zap.Uint("employee_id", id))

	if err := h.service.SoftDelete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
