package leave

import (
	"fmt"
	"time"
)

const (
	TypeSick     = "sick"
	TypeCasual   = "casual"
	TypeAnnual   = "annual"
	TypePersonal = "personal"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	// DateLayout is the storage and wire format for all calendar dates.
	// Day-span arithmetic runs on calendar dates, never timestamps.
	DateLayout = "2006-01-02"
)

// LeaveRequest is the persisted record. EmployeeName and Department are a
// snapshot of the requester at submission time; they go stale relative to
// later user edits and that is intended.
type LeaveRequest struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	Department      string `json:"department"`
	Type            string `json:"type"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	AppliedOn       string `json:"appliedOn"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// IsTerminal reports whether the status permits no further transition.
func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

func ValidType(t string) bool {
	switch t {
	case TypeSick, TypeCasual, TypeAnnual, TypePersonal:
		return true
	}
	return false
}

// InclusiveDays counts calendar days from startDate to endDate with both
// endpoints included, so a same-day span counts as 1.
func InclusiveDays(startDate, endDate string) (int, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 0, fmt.Errorf("parse start date %q: %w", startDate, err)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return 0, fmt.Errorf("parse end date %q: %w", endDate, err)
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}
