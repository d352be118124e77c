package user

import (
	"context"

	"go-esyleave/internal/store"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *store.Tx) Repository
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Append(ctx context.Context, u User) error
	Save(ctx context.Context, u User) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CredentialRepository mirrors the credentials side table. Entries are only
// ever added or overwritten; removing an employee leaves its entry behind.
type CredentialRepository interface {
	WithTx(tx *store.Tx) CredentialRepository
	Get(ctx context.Context, username string) (string, bool, error)
	Set(ctx context.Context, username, secret string) error
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

func readUsers(tx *store.Tx) ([]User, error) {
	var users []User
	if _, err := tx.Read(store.TableUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.view(ctx, func(tx *store.Tx) error {
		var err error
		users, err = readUsers(tx)
		return err
	})
	return users, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var found *User
	err := r.view(ctx, func(tx *store.Tx) error {
		users, err := readUsers(tx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == id {
				found = &users[i]
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var found *User
	err := r.view(ctx, func(tx *store.Tx) error {
		users, err := readUsers(tx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].Username == username {
				found = &users[i]
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *repository) Append(ctx context.Context, u User) error {
	return r.update(ctx, func(tx *store.Tx) error {
		users, err := readUsers(tx)
		if err != nil {
			return err
		}
		return tx.Replace(store.TableUsers, append(users, u))
	})
}

// Save replaces the record with a matching id and reports whether one existed.
func (r *repository) Save(ctx context.Context, u User) (bool, error) {
	var saved bool
	err := r.update(ctx, func(tx *store.Tx) error {
		users, err := readUsers(tx)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == u.ID {
				users[i] = u
				saved = true
				return tx.Replace(store.TableUsers, users)
			}
		}
		return nil
	})
	return saved, err
}

func (r *repository) Delete(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.update(ctx, func(tx *store.Tx) error {
		users, err := readUsers(tx)
		if err != nil {
			return err
		}
		kept := users[:0]
		for _, u := range users {
			if u.ID == id {
				removed = true
				continue
			}
			kept = append(kept, u)
		}
		if !removed {
			return nil
		}
		return tx.Replace(store.TableUsers, kept)
	})
	return removed, err
}

type credentialRepository struct {
	st *store.Store
	tx *store.Tx
}

func NewCredentialRepository(st *store.Store) CredentialRepository {
	return &credentialRepository{st: st}
}

func (r *credentialRepository) WithTx(tx *store.Tx) CredentialRepository {
	return &credentialRepository{st: r.st, tx: tx}
}

func readCredentials(tx *store.Tx) (map[string]string, error) {
	var creds map[string]string
	if _, err := tx.Read(store.TableCredentials, &creds); err != nil {
		return nil, err
	}
	if creds == nil {
		creds = make(map[string]string)
	}
	return creds, nil
}

func (r *credentialRepository) Get(ctx context.Context, username string) (string, bool, error) {
	var (
		secret string
		ok     bool
	)
	run := func(tx *store.Tx) error {
		creds, err := readCredentials(tx)
		if err != nil {
			return err
		}
		secret, ok = creds[username]
		return nil
	}
	var err error
	if r.tx != nil {
		err = run(r.tx)
	} else {
		err = r.st.View(ctx, run)
	}
	return secret, ok, err
}

func (r *credentialRepository) Set(ctx context.Context, username, secret string) error {
	run := func(tx *store.Tx) error {
		creds, err := readCredentials(tx)
		if err != nil {
			return err
		}
		creds[username] = secret
		return tx.Replace(store.TableCredentials, creds)
	}
	if r.tx != nil {
		return run(r.tx)
	}
	return r.st.Update(ctx, run)
}
