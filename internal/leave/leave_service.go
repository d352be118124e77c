package leave

import (
	"context"
	leaveerrors "go-esyleave/internal/leave/errors"
	"go-esyleave/internal/store"
	"go-esyleave/internal/user"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, id, rejectionReason string) (LeaveResponse, error)
}

type service struct {
	st       *store.Store
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(st *store.Store, repo Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{st: st, repo: repo, userRepo: userRepo, logger: l}
}

// Submit validates the request, stamps it pending with today's date and
// prepends it: newest-first is the canonical order of the requests table.
func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("submit leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("type", req.Type),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if err := validateSubmitRequest(req); err != nil {
		s.logger.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := LeaveRequest{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Department:   req.Department,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		Status:       StatusPending,
		AppliedOn:    time.Now().UTC().Format(DateLayout),
	}

	if err := s.repo.Prepend(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("leave_id", l.ID),
		zap.String("employee_id", l.EmployeeID),
	)
	return ToResponse(l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if employeeID == "" {
		return nil, leaveerrors.ErrEmployeeIDRequired
	}
	requests, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(requests), nil
}

// Approve transitions pending -> approved and deducts the inclusive day
// count from the employee's balance, floored at zero. Both table writes
// happen inside one store update so no other writer can interleave.
func (s *service) Approve(ctx context.Context, id string) (LeaveResponse, error) {
	return s.transition(ctx, id, StatusApproved, "")
}

// Reject transitions pending -> rejected and records the reason.
func (s *service) Reject(ctx context.Context, id, rejectionReason string) (LeaveResponse, error) {
	if rejectionReason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}
	return s.transition(ctx, id, StatusRejected, rejectionReason)
}

func (s *service) transition(ctx context.Context, id, targetStatus, rejectionReason string) (LeaveResponse, error) {
	s.logger.Debug("transition leave status requested",
		zap.String("leave_id", id),
		zap.String("target_status", targetStatus),
	)

	var updated LeaveRequest
	err := s.st.Update(ctx, func(tx *store.Tx) error {
		qtx := s.repo.WithTx(tx)

		l, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return leaveerrors.ErrLeaveNotFound
		}
		if IsTerminal(l.Status) {
			s.logger.Warn("transition leave status invalid",
				zap.String("leave_id", id),
				zap.String("from_status", l.Status),
				zap.String("to_status", targetStatus),
			)
			return leaveerrors.ErrInvalidStatusTransition
		}

		l.Status = targetStatus
		if targetStatus == StatusRejected {
			l.RejectionReason = rejectionReason
		}

		// Status first, balance second. Without rollback a failure in
		// between leaves an approved request with an undeducted balance,
		// never a deduction without approval.
		if _, err := qtx.Save(ctx, *l); err != nil {
			return err
		}

		if targetStatus == StatusApproved {
			if err := s.deductBalance(ctx, tx, l); err != nil {
				return err
			}
		}

		updated = *l
		return nil
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)
	return ToResponse(updated), nil
}

// deductBalance subtracts the request's inclusive day count from the
// employee's balance, floored at zero. A missing user record means the
// request is orphaned; the approval still stands.
func (s *service) deductBalance(ctx context.Context, tx *store.Tx, l *LeaveRequest) error {
	days, err := InclusiveDays(l.StartDate, l.EndDate)
	if err != nil {
		return err
	}

	uqtx := s.userRepo.WithTx(tx)
	u, err := uqtx.FindByID(ctx, l.EmployeeID)
	if err != nil {
		return err
	}
	if u == nil {
		s.logger.Warn("approve leave for unknown employee, skipping deduction",
			zap.String("leave_id", l.ID),
			zap.String("employee_id", l.EmployeeID),
		)
		return nil
	}

	u.LeaveBalance -= days
	if u.LeaveBalance < 0 {
		u.LeaveBalance = 0
	}
	_, err = uqtx.Save(ctx, *u)
	return err
}

func validateSubmitRequest(req SubmitLeaveRequest) error {
	if req.EmployeeID == "" {
		return leaveerrors.ErrEmployeeIDRequired
	}
	if !ValidType(req.Type) {
		return leaveerrors.ErrInvalidLeaveType
	}
	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return leaveerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return leaveerrors.ErrInvalidDateRange
	}
	return nil
}

// ToResponse maps a persisted record to its API shape, deriving the
// inclusive day count.
func ToResponse(l LeaveRequest) LeaveResponse {
	// dates were validated on the way in, so the count cannot fail here
	days, _ := InclusiveDays(l.StartDate, l.EndDate)
	return LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		EmployeeName:    l.EmployeeName,
		Department:      l.Department,
		Type:            l.Type,
		StartDate:       l.StartDate,
		EndDate:         l.EndDate,
		TotalDays:       days,
		Reason:          l.Reason,
		Status:          l.Status,
		AppliedOn:       l.AppliedOn,
		RejectionReason: l.RejectionReason,
	}
}

func mapToListResponse(requests []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(requests))
	for i, l := range requests {
		resp[i] = ToResponse(l)
	}
	return resp
}
