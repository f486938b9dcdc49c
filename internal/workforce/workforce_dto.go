package workforce

type UpsertFunnelRequest struct {
	Applicants int `json:"applicants" binding:"min=0"`
	Interviews int `json:"interviews" binding:"min=0"`
	Offers     int `json:"offers" binding:"min=0"`
	Hires      int `json:"hires" binding:"min=0"`
}

type FunnelResponse struct {
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	Applicants     int    `json:"applicants"`
	Interviews     int    `json:"interviews"`
	Offers         int    `json:"offers"`
	Hires          int    `json:"hires"`
}

type PlanRequest struct {
	DepartmentID uint   `json:"department_id" binding:"required"`
	JobTitle     string `json:"job_title" binding:"required,max=255"`
	Positions    int    `json:"positions" binding:"required,min=1"`
}

type PlanResponse struct {
	DepartmentID     uint   `json:"department_id"`
	JobTitle         string `json:"job_title"`
	CurrentEmployees int64  `json:"current_employees"`
	Positions        int    `json:"positions"`
	ApplicantsNeeded int    `json:"applicants_needed"`
	InterviewsNeeded int    `json:"interviews_needed"`
	OffersNeeded     int    `json:"offers_needed"`
}
