package task_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrpms/internal/task"
	taskerrors "go-hrpms/internal/task/errors"
	taskMock "go-hrpms/internal/task/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(t *testing.T) (*gin.Engine, *taskMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := taskMock.NewMockService(gomock.NewController(t))
	h := task.NewHandler(svc)

	r := gin.New()
	r.GET("/tasks", h.GetAll)
	r.POST("/tasks", h.Assign)
	r.PATCH("/tasks/:id/status", h.SetStatus)
	return r, svc
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTaskHandler_GetAll(t *testing.T) {
	r, svc := setupRouter(t)
	svc.EXPECT().ListByDueDate(gomock.Any()).Return([]task.TaskResponse{
		{ID: 1, EmployeeID: 10, EmployeeName: "Asha Rao", TaskDescription: "Onboarding", DueDate: "2025-01-10", Status: "To Do"},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"due_date":"2025-01-10"`)
	assert.Contains(t, w.Body.String(), `"employee_name":"Asha Rao"`)
}

func TestTaskHandler_Assign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupRouter(t)
		req := task.AssignTaskRequest{EmployeeID: 10, TaskDescription: "Onboarding", DueDate: "2025-01-10"}
		svc.EXPECT().Assign(gomock.Any(), req).Return(task.TaskResponse{ID: 3, EmployeeID: 10, TaskDescription: "Onboarding", DueDate: "2025-01-10", Status: "To Do"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/tasks", `{"employee_id":10,"task_description":"Onboarding","due_date":"2025-01-10"}`))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"task_id":3`)
	})

	t.Run("bad date fails binding", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/tasks", `{"employee_id":10,"task_description":"Onboarding","due_date":"Jan 10"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("inactive employee", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(task.TaskResponse{}, taskerrors.ErrEmployeeNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/tasks", `{"employee_id":77,"task_description":"Onboarding","due_date":"2025-01-10"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTaskHandler_SetStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().SetStatus(gomock.Any(), uint(3), "Completed").Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/tasks/3/status", `{"status":"Completed"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Completed"`)
	})

	t.Run("invalid id", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/tasks/abc/status", `{"status":"Completed"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/tasks/3/status", `{}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown task", func(t *testing.T) {
		r, svc := setupRouter(t)
		svc.EXPECT().SetStatus(gomock.Any(), uint(42), "In Progress").Return(taskerrors.ErrTaskNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPatch, "/tasks/42/status", `{"status":"In Progress"}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}
