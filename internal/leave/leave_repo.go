package leave

import (
	"context"

	"go-esyleave/internal/store"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *store.Tx) Repository
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	Prepend(ctx context.Context, l LeaveRequest) error
	Save(ctx context.Context, l LeaveRequest) (bool, error)
}

type repository struct {
	st *store.Store
	tx *store.Tx
}

func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) WithTx(tx *store.Tx) Repository {
	return &repository{st: r.st, tx: tx}
}

func (r *repository) view(ctx context.Context, fn func(tx *store.Tx) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return r.st.View(ctx, fn)
}

func (r *repository) update(ctx context.Context, fn func(tx *store.Tx) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return r.st.Update(ctx, fn)
}

func readRequests(tx *store.Tx) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	if _, err := tx.Read(store.TableLeaveRequests, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAll returns the table in store order: newest first, because Prepend
// is the only way records enter it.
func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var requests []LeaveRequest
	err := r.view(ctx, func(tx *store.Tx) error {
		var err error
		requests, err = readRequests(tx)
		return err
	})
	return requests, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var found *LeaveRequest
	err := r.view(ctx, func(tx *store.Tx) error {
		requests, err := readRequests(tx)
		if err != nil {
			return err
		}
		for i := range requests {
			if requests[i].ID == id {
				found = &requests[i]
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error) {
	var matched []LeaveRequest
	err := r.view(ctx, func(tx *store.Tx) error {
		requests, err := readRequests(tx)
		if err != nil {
			return err
		}
		for _, l := range requests {
			if l.EmployeeID == employeeID {
				matched = append(matched, l)
			}
		}
		return nil
	})
	return matched, err
}

// Prepend inserts at the front, keeping the table newest-first.
func (r *repository) Prepend(ctx context.Context, l LeaveRequest) error {
	return r.update(ctx, func(tx *store.Tx) error {
		requests, err := readRequests(tx)
		if err != nil {
			return err
		}
		return tx.Replace(store.TableLeaveRequests, append([]LeaveRequest{l}, requests...))
	})
}

// Save replaces the record with a matching id, preserving its position.
func (r *repository) Save(ctx context.Context, l LeaveRequest) (bool, error) {
	var saved bool
	err := r.update(ctx, func(tx *store.Tx) error {
		requests, err := readRequests(tx)
		if err != nil {
			return err
		}
		for i := range requests {
			if requests[i].ID == l.ID {
				requests[i] = l
				saved = true
				return tx.Replace(store.TableLeaveRequests, requests)
			}
		}
		return nil
	})
	return saved, err
}
