package leave

type SubmitLeaveRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	EmployeeName string `json:"employee_name" binding:"required"`
	Department   string `json:"department"`
	Type         string `json:"type" binding:"required,oneof=sick casual annual personal"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	Reason       string `json:"reason"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
}

type LeaveResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Department      string `json:"department"`
	Type            string `json:"type"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalDays       int    `json:"total_days"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	AppliedOn       string `json:"applied_on"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}
