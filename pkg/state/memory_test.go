package state

import (
	"context"
	"testing"

	"github.com/cbodonnell/lanes/pkg/renderstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySnapshotManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemorySnapshotManager()

	initial, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, renderstate.LifecycleUninitialized, initial.Lifecycle)

	store := renderstate.NewStore()
	store.Initialize()
	require.NoError(t, store.UpsertMinion(0, 10, 20, 30, 1))
	snapshot := store.Snapshot()
	require.NoError(t, m.Set(ctx, &snapshot))

	// mutating the caller's copy must not leak into the manager
	snapshot.Players[0].Health = 7
	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(100), got.Players[0].Health)
	assert.Equal(t, int32(1600+60), got.Signature)

	// nor mutating a returned copy
	got.Minions[0].Health = 1
	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(30), again.Minions[0].Health)
}

func TestInMemorySnapshotManager_SetNil(t *testing.T) {
	m := NewInMemorySnapshotManager()
	assert.Error(t, m.Set(context.Background(), nil))
}
