package summary

import (
	"context"
	"go-esyleave/internal/leave"
	"go-esyleave/internal/store"
	"go-esyleave/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// recentLimit is how many requests the dashboards show as recent activity:
// the first N in store order, no secondary sort.
const recentLimit = 5

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	Admin(ctx context.Context) (AdminSummary, error)
	Employee(ctx context.Context, employeeID string) (EmployeeSummary, error)
}

type service struct {
	st        *store.Store
	leaveRepo leave.Repository
	userRepo  user.Repository
	group     singleflight.Group
	logger    *zap.Logger
}

func NewService(st *store.Store, leaveRepo leave.Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("summary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("summary.service")
	}
	return &service{st: st, leaveRepo: leaveRepo, userRepo: userRepo, logger: l}
}

// Admin folds both tables from one snapshot so the counts and the activity
// slice can never disagree with each other. Concurrent identical calls are
// collapsed into one fold.
func (s *service) Admin(ctx context.Context) (AdminSummary, error) {
	v, err, _ := s.group.Do("admin", func() (any, error) {
		var out AdminSummary
		err := s.st.View(ctx, func(tx *store.Tx) error {
			users, err := s.userRepo.WithTx(tx).FindAll(ctx)
			if err != nil {
				return err
			}
			requests, err := s.leaveRepo.WithTx(tx).FindAll(ctx)
			if err != nil {
				return err
			}

			for _, u := range users {
				if u.Role == user.RoleEmployee {
					out.EmployeeCount++
				}
			}
			for _, l := range requests {
				switch l.Status {
				case leave.StatusPending:
					out.PendingCount++
				case leave.StatusApproved:
					out.ApprovedCount++
				case leave.StatusRejected:
					out.RejectedCount++
				}
			}
			out.RecentActivity = mapRecent(requests)
			return nil
		})
		return out, err
	})
	if err != nil {
		return AdminSummary{}, err
	}
	return v.(AdminSummary), nil
}

func (s *service) Employee(ctx context.Context, employeeID string) (EmployeeSummary, error) {
	v, err, _ := s.group.Do("employee:"+employeeID, func() (any, error) {
		var out EmployeeSummary
		err := s.st.View(ctx, func(tx *store.Tx) error {
			u, err := s.userRepo.WithTx(tx).FindByID(ctx, employeeID)
			if err != nil {
				return err
			}
			requests, err := s.leaveRepo.WithTx(tx).FindByEmployee(ctx, employeeID)
			if err != nil {
				return err
			}

			// A missing user record is a defensive fallback, not a real
			// state; the starting allotment stands in for the balance.
			out.AvailableLeaveDays = user.DefaultLeaveBalance
			if u != nil {
				out.AvailableLeaveDays = u.LeaveBalance
			}

			for _, l := range requests {
				switch l.Status {
				case leave.StatusPending:
					out.PendingCount++
				case leave.StatusApproved:
					days, err := leave.InclusiveDays(l.StartDate, l.EndDate)
					if err != nil {
						return err
					}
					out.UsedLeaveDays += days
				}
			}
			out.RecentLeaves = mapRecent(requests)
			return nil
		})
		return out, err
	})
	if err != nil {
		return EmployeeSummary{}, err
	}
	return v.(EmployeeSummary), nil
}

func mapRecent(requests []leave.LeaveRequest) []leave.LeaveResponse {
	if len(requests) > recentLimit {
		requests = requests[:recentLimit]
	}
	resp := make([]leave.LeaveResponse, 0, len(requests))
	for _, l := range requests {
		resp = append(resp, leave.ToResponse(l))
	}
	return resp
}
