package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"go-hrpms/internal/app"
	"go-hrpms/internal/auth"
	"go-hrpms/internal/config"
	"go-hrpms/internal/database/dbtest"
	"go-hrpms/internal/department"
	"go-hrpms/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *client) do(method, path string, body any) (int, envelope) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func setup(t *testing.T) (*gorm.DB, *client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.NewSeeded(t)
	cfg := config.Config{JWTSecret: "e2e-secret", TokenTTL: time.Hour, Env: "test"}

	authService := auth.NewService(auth.NewRepository(db), cfg.JWTSecret, cfg.TokenTTL)
	_, err := authService.CreateUser(context.Background(), auth.CreateUserRequest{
		Username: "hr.staff",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	router := gin.New()
	app.RegisterModules(router, db, nil, cfg, zap.NewNop())

	return db, &client{t: t, router: router}
}

func departmentID(t *testing.T, db *gorm.DB, key string) uint {
	t.Helper()
	var dept department.Department
	require.NoError(t, db.Where("name_key = ?", key).First(&dept).Error)
	return dept.ID
}

func TestEmployeeTaskLifecycle(t *testing.T) {
	db, c := setup(t)

	code, env := c.do(http.MethodGet, "/api/v1/employees", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Ok)

	code, env = c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "hr.staff", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	code, env = c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "hr.staff", "password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, code)
	c.token = decode[struct {
		AccessToken string `json:"access_token"`
	}](t, env.Data).AccessToken
	require.NotEmpty(t, c.token)

	code, env = c.do(http.MethodPost, "/api/v1/employees", map[string]any{
		"name":          "Asha Rao",
		"email":         "asha@x.io",
		"department_id": departmentID(t, db, "engineering"),
		"job_title":     "Software Engineer",
		"salary":        "85000",
		"hire_date":     "2024-03-01",
		"gender":        "Female",
	})
	require.Equal(t, http.StatusCreated, code)
	emp := decode[struct {
		ID             uint   `json:"employee_id"`
		DepartmentName string `json:"department_name"`
	}](t, env.Data)
	assert.Equal(t, "Engineering", emp.DepartmentName)

	code, env = c.do(http.MethodPost, "/api/v1/tasks", map[string]any{
		"employee_id":      emp.ID,
		"task_description": "Onboarding",
		"due_date":         "2025-01-10",
	})
	require.Equal(t, http.StatusCreated, code)
	assigned := decode[struct {
		ID           uint   `json:"task_id"`
		EmployeeName string `json:"employee_name"`
		Status       string `json:"status"`
	}](t, env.Data)
	assert.Equal(t, "Asha Rao", assigned.EmployeeName)
	assert.Equal(t, "To Do", assigned.Status)
	taskID := assigned.ID

	code, env = c.do(http.MethodPatch, "/api/v1/tasks/0/status", map[string]string{"status": "Completed"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = c.do(http.MethodPatch, "/api/v1/tasks/"+itoa(taskID)+"/status", map[string]string{"status": "Done"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)

	code, _ = c.do(http.MethodPatch, "/api/v1/tasks/"+itoa(taskID)+"/status", map[string]string{"status": "Completed"})
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodGet, "/api/v1/tasks", nil)
	require.Equal(t, http.StatusOK, code)
	tasks := decode[[]struct {
		EmployeeName    string `json:"employee_name"`
		TaskDescription string `json:"task_description"`
		DueDate         string `json:"due_date"`
		Status          string `json:"status"`
	}](t, env.Data)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Asha Rao", tasks[0].EmployeeName)
	assert.Equal(t, "Onboarding", tasks[0].TaskDescription)
	assert.Equal(t, "2025-01-10", tasks[0].DueDate)
	assert.Equal(t, "Completed", tasks[0].Status)

	code, env = c.do(http.MethodGet, "/api/v1/insights", nil)
	require.Equal(t, http.StatusOK, code)
	snap := decode[struct {
		TotalActive   int64            `json:"total_active"`
		TasksByStatus map[string]int64 `json:"tasks_by_status"`
	}](t, env.Data)
	assert.Equal(t, int64(1), snap.TotalActive)
	assert.Equal(t, int64(1), snap.TasksByStatus["Completed"])

	code, _ = c.do(http.MethodDelete, "/api/v1/employees/"+itoa(emp.ID), nil)
	require.Equal(t, http.StatusOK, code)

	code, env = c.do(http.MethodDelete, "/api/v1/employees/"+itoa(emp.ID), nil)
	assert.Equal(t, http.StatusConflict, code)

	code, env = c.do(http.MethodGet, "/api/v1/employees", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]json.RawMessage](t, env.Data))

	code, env = c.do(http.MethodGet, "/api/v1/employees/deleted", nil)
	require.Equal(t, http.StatusOK, code)
	deleted := decode[[]struct {
		ID    uint   `json:"employee_id"`
		Email string `json:"email"`
	}](t, env.Data)
	require.Len(t, deleted, 1)
	assert.Equal(t, emp.ID, deleted[0].ID)
	assert.Equal(t, "asha@x.io", deleted[0].Email)

	var outbox []kafka.OutboxEvent
	require.NoError(t, db.Order("created_at ASC").Find(&outbox).Error)
	types := make([]string, 0, len(outbox))
	for _, e := range outbox {
		assert.Equal(t, kafka.OutboxStatusPending, e.Status)
		types = append(types, e.EventType)
	}
	assert.ElementsMatch(t, []string{"employee_created", "task_status_changed", "employee_archived"}, types)
}

func TestWorkforcePlanOverHTTP(t *testing.T) {
	db, c := setup(t)

	_, env := c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "hr.staff", "password": "correct-horse",
	})
	c.token = decode[struct {
		AccessToken string `json:"access_token"`
	}](t, env.Data).AccessToken

	code, env := c.do(http.MethodPost, "/api/v1/workforce/plan", map[string]any{
		"department_id": departmentID(t, db, "engineering"),
		"job_title":     "Software Engineer",
		"positions":     3,
	})
	require.Equal(t, http.StatusOK, code)
	plan := decode[struct {
		Applicants int `json:"applicants_needed"`
		Interviews int `json:"interviews_needed"`
		Offers     int `json:"offers_needed"`
	}](t, env.Data)
	assert.Equal(t, 7, plan.Applicants)
	assert.Equal(t, 4, plan.Interviews)
	assert.Equal(t, 4, plan.Offers)
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
