package auth

import (
	"context"

	"go-esyleave/internal/store"
	"go-esyleave/internal/user"
)

// SessionRepository persists the "currently logged in" user snapshot in its
// own table. A cleared session is stored as a JSON null.
//
//go:generate mockgen -source=auth_repo.go -destination=mock/session_repo_mock.go -package=mock
type SessionRepository interface {
	WithTx(tx *store.Tx) SessionRepository
	Get(ctx context.Context) (*user.User, error)
	Put(ctx context.Context, u user.User) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	st *store.Store
	tx *store.Tx
}

func NewSessionRepository(st *store.Store) SessionRepository {
	return &sessionRepository{st: st}
}

func (r *sessionRepository) WithTx(tx *store.Tx) SessionRepository {
	return &sessionRepository{st: r.st, tx: tx}
}

func (r *sessionRepository) Get(ctx context.Context) (*user.User, error) {
	var snapshot *user.User
	run := func(tx *store.Tx) error {
		_, err := tx.Read(store.TableSession, &snapshot)
		return err
	}

	var err error
	if r.tx != nil {
		err = run(r.tx)
	} else {
		err = r.st.View(ctx, run)
	}
	return snapshot, err
}

func (r *sessionRepository) Put(ctx context.Context, u user.User) error {
	run := func(tx *store.Tx) error {
		return tx.Replace(store.TableSession, &u)
	}
	if r.tx != nil {
		return run(r.tx)
	}
	return r.st.Update(ctx, run)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	run := func(tx *store.Tx) error {
		return tx.Delete(store.TableSession)
	}
	if r.tx != nil {
		return run(r.tx)
	}
	return r.st.Update(ctx, run)
}
