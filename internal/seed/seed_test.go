package seed_test

import (
	"context"
	"testing"

	"go-esyleave/internal/leave"
	"go-esyleave/internal/seed"
	"go-esyleave/internal/store"
	"go-esyleave/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTables(t *testing.T, st *store.Store) ([]user.User, []leave.LeaveRequest, map[string]string) {
	t.Helper()

	var (
		users    []user.User
		requests []leave.LeaveRequest
		creds    map[string]string
	)
	err := st.View(context.Background(), func(tx *store.Tx) error {
		if _, err := tx.Read(store.TableUsers, &users); err != nil {
			return err
		}
		if _, err := tx.Read(store.TableLeaveRequests, &requests); err != nil {
			return err
		}
		_, err := tx.Read(store.TableCredentials, &creds)
		return err
	})
	require.NoError(t, err)
	return users, requests, creds
}

func TestRun_SeedsEmptyStore(t *testing.T) {
	st := store.New(store.NewMemoryBackend())

	require.NoError(t, seed.Run(context.Background(), st))

	users, requests, creds := readTables(t, st)

	require.Len(t, users, 4)
	assert.Equal(t, "admin-1", users[0].ID)
	assert.Equal(t, user.RoleAdmin, users[0].Role)
	assert.Equal(t, 0, users[0].LeaveBalance)
	assert.Equal(t, 18, users[2].LeaveBalance) // Neha
	assert.Equal(t, 20, users[3].LeaveBalance)

	require.Len(t, requests, 3)
	assert.Equal(t, "leave-1", requests[0].ID)
	assert.Equal(t, leave.StatusPending, requests[0].Status)
	assert.Equal(t, leave.StatusApproved, requests[2].Status)

	assert.Equal(t, map[string]string{
		"admin":  "1234",
		"john":   "545454",
		"neha":   "password",
		"khushi": "password",
	}, creds)
}

func TestRun_DoesNotOverwriteExistingTables(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	ctx := context.Background()

	require.NoError(t, seed.Run(ctx, st))

	// mutate a seeded table, then reseed
	err := st.Update(ctx, func(tx *store.Tx) error {
		return tx.Replace(store.TableUsers, []user.User{{ID: "custom-1", Role: user.RoleEmployee}})
	})
	require.NoError(t, err)

	require.NoError(t, seed.Run(ctx, st))

	users, requests, _ := readTables(t, st)
	require.Len(t, users, 1)
	assert.Equal(t, "custom-1", users[0].ID)
	assert.Len(t, requests, 3)
}

func TestRun_ReseedsOnlyMissingTables(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	ctx := context.Background()

	// pre-populate users only; the other tables should still get fixtures
	err := st.Update(ctx, func(tx *store.Tx) error {
		return tx.Replace(store.TableUsers, []user.User{{ID: "custom-1", Role: user.RoleEmployee}})
	})
	require.NoError(t, err)

	require.NoError(t, seed.Run(ctx, st))

	users, requests, creds := readTables(t, st)
	require.Len(t, users, 1)
	assert.Equal(t, "custom-1", users[0].ID)
	assert.Len(t, requests, 3)
	assert.Len(t, creds, 4)
}
