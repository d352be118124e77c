package user

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Username   string `json:"username" binding:"required"`
	Department string `json:"department" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UpdateEmployeeRequest carries a partial update: nil fields are left
// untouched. Role, id and username are not updatable through this path.
type UpdateEmployeeRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Department   *string `json:"department"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive"`
	LeaveBalance *int    `json:"leave_balance"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	Status       string `json:"status"`
	LeaveBalance int    `json:"leave_balance"`
}
