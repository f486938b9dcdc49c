package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type DepartmentResponse struct {
	ID   uint   `json:"department_id"`
	Name string `json:"department_name"`
}
