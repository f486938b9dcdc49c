package position

type CreatePositionRequest struct {
	Title         string `json:"title" binding:"required,max=255"`
	Description   string `json:"description"`
	Specification string `json:"specification"`
}

type PositionResponse struct {
	ID            uint   `json:"position_id"`
	DepartmentID  uint   `json:"department_id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Specification string `json:"specification,omitempty"`
}
