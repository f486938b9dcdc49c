package task

const dateLayout = "2006-01-02"

type AssignTaskRequest struct {
	EmployeeID      uint   `json:"employee_id" binding:"required"`
	TaskDescription string `json:"task_description" binding:"required"`
	DueDate         string `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskResponse struct {
	ID              uint   `json:"task_id"`
	EmployeeID      uint   `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	TaskDescription string `json:"task_description"`
	DueDate         string `json:"due_date"`
	Status          string `json:"status"`
}
