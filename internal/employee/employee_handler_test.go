package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrpms/internal/employee"
	employeeerrors "go-hrpms/internal/employee/errors"
	"go-hrpms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn      func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	ListActiveFn  func(ctx context.Context) ([]employee.EmployeeResponse, error)
	SearchFn      func(ctx context.Context, term string) ([]employee.EmployeeResponse, error)
	GetByIDFn     func(ctx context.Context, id uint) (employee.EmployeeResponse, error)
	UpdateFn      func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	SoftDeleteFn  func(ctx context.Context, id uint) error
	ListDeletedFn func(ctx context.Context) ([]employee.DeletedEmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.ListActiveFn(ctx)
}
func (f *fakeEmployeeService) Search(ctx context.Context, term string) ([]employee.EmployeeResponse, error) {
	return f.SearchFn(ctx, term)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) SoftDelete(ctx context.Context, id uint) error {
	return f.SoftDeleteFn(ctx, id)
}
func (f *fakeEmployeeService) ListDeleted(ctx context.Context) ([]employee.DeletedEmployeeResponse, error) {
	return f.ListDeletedFn(ctx)
}

func setupRouter(h *employee.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/employees", h.GetAll)
	r.GET("/employees/deleted", h.GetDeleted)
	r.GET("/employees/:id", h.GetByID)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

const createBody = `{"name":"Asha Rao","email":"asha@x.com","department_id":1,"salary":"85000","hire_date":"2024-03-01"}`

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Asha Rao", req.Name)
				assert.Equal(t, "85000", req.Salary.String())
				return employee.EmployeeResponse{ID: 10, Name: req.Name, IsActive: true}, nil
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(createBody))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":10`)
	})

	t.Run("missing name", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees",
			strings.NewReader(`{"email":"asha@x.com","department_id":1,"hire_date":"2024-03-01"}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(createBody))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	three := []employee.EmployeeResponse{{ID: 1}, {ID: 2}, {ID: 3}}

	t.Run("no query lists active employees", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			ListActiveFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) { return three, nil },
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 3)
		assert.Equal(t, int64(3), body.Meta.Total)
	})

	t.Run("q switches to search", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			SearchFn: func(ctx context.Context, term string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, "ASHA", term)
				return three[:1], nil
			},
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=ASHA", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("pagination", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			ListActiveFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) { return three, nil },
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil))

		var body struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
		assert.Equal(t, uint(3), body.Data[0].ID)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/7", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("deleted is not parsed as an id", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			ListDeletedFn: func(ctx context.Context) ([]employee.DeletedEmployeeResponse, error) {
				return []employee.DeletedEmployeeResponse{{EmployeeID: 4}}, nil
			},
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/deleted", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":4`)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{
		UpdateFn: func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, uint(10), id)
			return employee.EmployeeResponse{ID: id, Name: req.Name}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/employees/10", strings.NewReader(createBody))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(h).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			SoftDeleteFn: func(ctx context.Context, id uint) error { return nil },
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/10", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("second delete conflicts", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			SoftDeleteFn: func(ctx context.Context, id uint) error { return employeeerrors.ErrEmployeeAlreadyArchived },
		})

		w := httptest.NewRecorder()
		setupRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/10", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
