package user_test

import (
	"context"
	"testing"

	"go-esyleave/internal/seed"
	"go-esyleave/internal/store"
	"go-esyleave/internal/user"
	usererrors "go-esyleave/internal/user/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) (user.Service, *store.Store) {
	t.Helper()

	st := store.New(store.NewMemoryBackend())
	require.NoError(t, seed.Run(context.Background(), st))

	repo := user.NewRepository(st)
	creds := user.NewCredentialRepository(st)
	return user.NewService(st, repo, creds), st
}

func TestService_List(t *testing.T) {
	svc, _ := newSeededService(t)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	// the seeded admin is filtered out of the directory
	require.Len(t, resp, 3)
	for _, e := range resp {
		assert.Equal(t, user.RoleEmployee, e.Role)
	}
	assert.Equal(t, "emp-1", resp[0].ID)
}

func TestService_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, st := newSeededService(t)
		ctx := context.Background()

		resp, err := svc.Add(ctx, user.CreateEmployeeRequest{
			Name:       "Ravi Kumar",
			Email:      "ravi@example.com",
			Username:   "ravi",
			Department: "Finance",
			Password:   "secret",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, user.RoleEmployee, resp.Role)
		assert.Equal(t, user.StatusActive, resp.Status)
		assert.Equal(t, user.DefaultLeaveBalance, resp.LeaveBalance)

		// the credentials entry lands in the same update
		secret, ok, err := user.NewCredentialRepository(st).Get(ctx, "ravi")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "secret", secret)
	})

	t.Run("negative duplicate username", func(t *testing.T) {
		svc, _ := newSeededService(t)

		_, err := svc.Add(context.Background(), user.CreateEmployeeRequest{
			Name:       "Another John",
			Email:      "john2@example.com",
			Username:   "john",
			Department: "Engineering",
			Password:   "secret",
		})
		assert.ErrorIs(t, err, usererrors.ErrUsernameTaken)
	})

	t.Run("negative username taken by admin", func(t *testing.T) {
		svc, _ := newSeededService(t)

		_, err := svc.Add(context.Background(), user.CreateEmployeeRequest{
			Name:       "Fake Admin",
			Email:      "fake@example.com",
			Username:   "admin",
			Department: "IT",
			Password:   "secret",
		})
		assert.ErrorIs(t, err, usererrors.ErrUsernameTaken)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("success partial update", func(t *testing.T) {
		svc, _ := newSeededService(t)

		dept := "Operations"
		status := user.StatusInactive
		resp, err := svc.Update(context.Background(), "emp-1", user.UpdateEmployeeRequest{
			Department: &dept,
			Status:     &status,
		})
		require.NoError(t, err)

		assert.Equal(t, "Operations", resp.Department)
		assert.Equal(t, user.StatusInactive, resp.Status)
		// untouched fields survive
		assert.Equal(t, "John Smith", resp.Name)
		assert.Equal(t, "john", resp.Username)
		assert.Equal(t, 20, resp.LeaveBalance)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc, _ := newSeededService(t)

		name := "Nobody"
		_, err := svc.Update(context.Background(), "emp-404", user.UpdateEmployeeRequest{Name: &name})
		assert.ErrorIs(t, err, usererrors.ErrEmployeeNotFound)
	})

	t.Run("negative invalid status", func(t *testing.T) {
		svc, _ := newSeededService(t)

		status := "retired"
		_, err := svc.Update(context.Background(), "emp-1", user.UpdateEmployeeRequest{Status: &status})
		assert.ErrorIs(t, err, usererrors.ErrInvalidStatus)
	})

	t.Run("negative negative balance", func(t *testing.T) {
		svc, _ := newSeededService(t)

		balance := -1
		_, err := svc.Update(context.Background(), "emp-1", user.UpdateEmployeeRequest{LeaveBalance: &balance})
		assert.ErrorIs(t, err, usererrors.ErrInvalidLeaveBalance)
	})
}

func TestService_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, st := newSeededService(t)
		ctx := context.Background()

		require.NoError(t, svc.Remove(ctx, "emp-1"))

		resp, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, resp, 2)

		// credentials are left behind, orphans are legal
		_, ok, err := user.NewCredentialRepository(st).Get(ctx, "john")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc, _ := newSeededService(t)

		err := svc.Remove(context.Background(), "emp-404")
		assert.ErrorIs(t, err, usererrors.ErrEmployeeNotFound)
	})
}
