package usererrors

import (
	"net/http"

	"go-esyleave/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"username is already taken",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be active or inactive",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveBalance = apperror.New(
		apperror.CodeInvalidInput,
		"leave_balance must not be negative",
		http.StatusBadRequest,
	)
)
