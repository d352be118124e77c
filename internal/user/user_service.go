package user

import (
	"context"
	"go-esyleave/internal/store"
	usererrors "go-esyleave/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Add(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	st     *store.Store
	repo   Repository
	creds  CredentialRepository
	logger *zap.Logger
}

func NewService(st *store.Store, repo Repository, creds CredentialRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{st: st, repo: repo, creds: creds, logger: l}
}

// List returns employee records only, in insertion order. The seeded admin
// is not part of the directory.
func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]EmployeeResponse, 0, len(users))
	for _, u := range users {
		if u.Role != RoleEmployee {
			continue
		}
		resp = append(resp, mapToResponse(u))
	}
	return resp, nil
}

// Add creates an employee record plus its credentials entry in one store
// update. Role and starting balance are forced regardless of caller input,
// and username uniqueness is enforced across all users including the admin.
func (s *service) Add(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("add employee requested",
		zap.String("username", req.Username),
		zap.String("department", req.Department),
	)

	u := User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		Role:         RoleEmployee,
		Department:   req.Department,
		Status:       StatusActive,
		LeaveBalance: DefaultLeaveBalance,
	}

	err := s.st.Update(ctx, func(tx *store.Tx) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByUsername(ctx, req.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return usererrors.ErrUsernameTaken
		}

		if err := qtx.Append(ctx, u); err != nil {
			return err
		}
		return s.creds.WithTx(tx).Set(ctx, req.Username, req.Password)
	})
	if err != nil {
		s.logger.Warn("add employee failed", zap.String("username", req.Username), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("add employee success",
		zap.String("employee_id", u.ID),
		zap.String("username", u.Username),
	)
	return mapToResponse(u), nil
}

// Update merges the supplied fields onto the matching record. Id, role and
// username never change through this path.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if req.Status != nil && *req.Status != StatusActive && *req.Status != StatusInactive {
		return EmployeeResponse{}, usererrors.ErrInvalidStatus
	}
	if req.LeaveBalance != nil && *req.LeaveBalance < 0 {
		return EmployeeResponse{}, usererrors.ErrInvalidLeaveBalance
	}

	var updated User
	err := s.st.Update(ctx, func(tx *store.Tx) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return usererrors.ErrEmployeeNotFound
		}

		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Department != nil {
			u.Department = *req.Department
		}
		if req.Status != nil {
			u.Status = *req.Status
		}
		if req.LeaveBalance != nil {
			u.LeaveBalance = *req.LeaveBalance
		}

		saved, err := qtx.Save(ctx, *u)
		if err != nil {
			return err
		}
		if !saved {
			return usererrors.ErrEmployeeNotFound
		}
		updated = *u
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(updated), nil
}

// Remove hard-deletes the record. The credentials entry and any existing
// leave requests are left behind; orphans are legal here.
func (s *service) Remove(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return usererrors.ErrEmployeeNotFound
	}

	s.logger.Info("remove employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(u User) EmployeeResponse {
	return EmployeeResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Username:     u.Username,
		Role:         u.Role,
		Department:   u.Department,
		Status:       u.Status,
		LeaveBalance: u.LeaveBalance,
	}
}
