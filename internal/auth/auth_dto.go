package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the session snapshot surfaced to the UI. It is a copy
// taken at login time; later edits to the user record do not flow into it.
type AuthResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	Status       string `json:"status"`
	LeaveBalance int    `json:"leave_balance"`
}
