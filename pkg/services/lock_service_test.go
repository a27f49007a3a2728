package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
)

func TestLockService_Acquire(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLockService(client.Client)
	ctx := context.Background()

	t.Run("acquires a free lock", func(t *testing.T) {
		lock, err := svc.Acquire(ctx, models.AcquireLockRequest{
			Name:         "repo:acme/api",
			OwnerAgentID: "a-1",
			Metadata:     map[string]any{"branch": "main"},
		})
		require.NoError(t, err)
		assert.Equal(t, "repo:acme/api", lock.Name)
		assert.Equal(t, "a-1", lock.OwnerAgentID)
		assert.Nil(t, lock.ReleasedAt)
	})

	t.Run("second acquire on same name is refused", func(t *testing.T) {
		_, err := svc.Acquire(ctx, models.AcquireLockRequest{
			Name:         "repo:acme/api",
			OwnerAgentID: "a-2",
		})
		assert.ErrorIs(t, err, ErrLockHeld)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.Acquire(ctx, models.AcquireLockRequest{OwnerAgentID: "a-1"})
		assert.True(t, IsValidationError(err))
		_, err = svc.Acquire(ctx, models.AcquireLockRequest{Name: "x"})
		assert.True(t, IsValidationError(err))
	})
}

func TestLockService_Release(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLockService(client.Client)
	ctx := context.Background()

	_, err := svc.Acquire(ctx, models.AcquireLockRequest{Name: "file:auth.go", OwnerAgentID: "a-1"})
	require.NoError(t, err)

	t.Run("wrong owner is refused", func(t *testing.T) {
		err := svc.Release(ctx, "file:auth.go", "a-2")
		require.Error(t, err)
		assert.True(t, IsPermissionError(err))
	})

	t.Run("owner releases and the name frees up", func(t *testing.T) {
		require.NoError(t, svc.Release(ctx, "file:auth.go", "a-1"))

		_, err := svc.GetActive(ctx, "file:auth.go")
		assert.ErrorIs(t, err, ErrNotFound)

		// Released name can be taken by another agent.
		lock, err := svc.Acquire(ctx, models.AcquireLockRequest{Name: "file:auth.go", OwnerAgentID: "a-2"})
		require.NoError(t, err)
		assert.Equal(t, "a-2", lock.OwnerAgentID)
	})

	t.Run("releasing an unheld name is not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.Release(ctx, "file:missing.go", "a-1"), ErrNotFound)
	})
}

func TestLockService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLockService(client.Client)
	ctx := context.Background()

	_, err := svc.Acquire(ctx, models.AcquireLockRequest{Name: "lock-a", OwnerAgentID: "a-1"})
	require.NoError(t, err)
	_, err = svc.Acquire(ctx, models.AcquireLockRequest{Name: "lock-b", OwnerAgentID: "a-1"})
	require.NoError(t, err)
	require.NoError(t, svc.Release(ctx, "lock-a", "a-1"))

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "lock-b", active[0].Name)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLockService_ReleaseAllForAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewLockService(client.Client)
	ctx := context.Background()

	for _, name := range []string{"l-1", "l-2"} {
		_, err := svc.Acquire(ctx, models.AcquireLockRequest{Name: name, OwnerAgentID: "a-1"})
		require.NoError(t, err)
	}
	_, err := svc.Acquire(ctx, models.AcquireLockRequest{Name: "l-3", OwnerAgentID: "a-2"})
	require.NoError(t, err)

	count, err := svc.ReleaseAllForAgent(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "l-3", active[0].Name)
}
