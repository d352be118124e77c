package seed

import (
	"context"
	"go-esyleave/internal/leave"
	"go-esyleave/internal/store"
	"go-esyleave/internal/user"

	"go.uber.org/zap"
)

func defaultUsers() []user.User {
	return []user.User{
		{
			ID:           "admin-1",
			Name:         "Administrator",
			Email:        "admin@esyleave.com",
			Username:     "admin",
			Role:         user.RoleAdmin,
			Department:   "Administration",
			Status:       user.StatusActive,
			LeaveBalance: 0,
		},
		{
			ID:           "emp-1",
			Name:         "John Smith",
			Email:        "john.smith@example.com",
			Username:     "john",
			Role:         user.RoleEmployee,
			Department:   "Engineering",
			Status:       user.StatusActive,
			LeaveBalance: 20,
		},
		{
			ID:           "emp-2",
			Name:         "Neha Sharma",
			Email:        "neha@example.com",
			Username:     "neha",
			Role:         user.RoleEmployee,
			Department:   "Marketing",
			Status:       user.StatusActive,
			LeaveBalance: 18,
		},
		{
			ID:           "emp-3",
			Name:         "Khushi Patel",
			Email:        "khushi@example.com",
			Username:     "khushi",
			Role:         user.RoleEmployee,
			Department:   "HR",
			Status:       user.StatusActive,
			LeaveBalance: 20,
		},
	}
}

func defaultLeaveRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{
			ID:           "leave-1",
			EmployeeID:   "emp-3",
			EmployeeName: "Khushi Patel",
			Department:   "HR",
			Type:         leave.TypeSick,
			StartDate:    "2025-04-16",
			EndDate:      "2025-04-19",
			Reason:       "Not feeling well",
			Status:       leave.StatusPending,
			AppliedOn:    "2025-04-15",
		},
		{
			ID:           "leave-2",
			EmployeeID:   "emp-2",
			EmployeeName: "Neha Sharma",
			Department:   "Marketing",
			Type:         leave.TypePersonal,
			StartDate:    "2025-04-16",
			EndDate:      "2025-04-21",
			Reason:       "Family function",
			Status:       leave.StatusPending,
			AppliedOn:    "2025-04-14",
		},
		{
			ID:           "leave-3",
			EmployeeID:   "emp-2",
			EmployeeName: "Neha Sharma",
			Department:   "Marketing",
			Type:         leave.TypeSick,
			StartDate:    "2025-04-10",
			EndDate:      "2025-04-12",
			Reason:       "Medical checkup",
			Status:       leave.StatusApproved,
			AppliedOn:    "2025-04-08",
		},
	}
}

func defaultCredentials() map[string]string {
	return map[string]string{
		"admin":  "1234",
		"john":   "545454",
		"neha":   "password",
		"khushi": "password",
	}
}

// Run writes the default fixtures for every table that does not exist yet.
// Each table is checked independently, so a store that already holds real
// users but lost its credentials only gets the credentials reseeded.
func Run(ctx context.Context, st *store.Store, logger ...*zap.Logger) error {
	l := zap.L().Named("seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("seed")
	}

	return st.Update(ctx, func(tx *store.Tx) error {
		var users []user.User
		found, err := tx.Read(store.TableUsers, &users)
		if err != nil {
			return err
		}
		if !found {
			if err := tx.Replace(store.TableUsers, defaultUsers()); err != nil {
				return err
			}
			l.Info("seeded table", zap.String("table", store.TableUsers))
		}

		var requests []leave.LeaveRequest
		found, err = tx.Read(store.TableLeaveRequests, &requests)
		if err != nil {
			return err
		}
		if !found {
			if err := tx.Replace(store.TableLeaveRequests, defaultLeaveRequests()); err != nil {
				return err
			}
			l.Info("seeded table", zap.String("table", store.TableLeaveRequests))
		}

		var creds map[string]string
		found, err = tx.Read(store.TableCredentials, &creds)
		if err != nil {
			return err
		}
		if !found {
			if err := tx.Replace(store.TableCredentials, defaultCredentials()); err != nil {
				return err
			}
			l.Info("seeded table", zap.String("table", store.TableCredentials))
		}

		return nil
	})
}
