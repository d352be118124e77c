package user

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	StatusActive   = "active"
	StatusInactive = "inactive"

	// DefaultLeaveBalance is the starting allotment for every new employee.
	DefaultLeaveBalance = 20
)

// User is the persisted record. The json tags are the storage layout of the
// users table; the credentials table (username -> secret) is kept in
// lockstep with it but stored separately.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	Status       string `json:"status"`
	LeaveBalance int    `json:"leaveBalance"`
}
