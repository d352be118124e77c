package summary

import "go-esyleave/internal/leave"

type AdminSummary struct {
	EmployeeCount  int                   `json:"employee_count"`
	PendingCount   int                   `json:"pending_count"`
	ApprovedCount  int                   `json:"approved_count"`
	RejectedCount  int                   `json:"rejected_count"`
	RecentActivity []leave.LeaveResponse `json:"recent_activity"`
}

type EmployeeSummary struct {
	AvailableLeaveDays int                   `json:"available_leave_days"`
	PendingCount       int                   `json:"pending_count"`
	UsedLeaveDays      int                   `json:"used_leave_days"`
	RecentLeaves       []leave.LeaveResponse `json:"recent_leaves"`
}
