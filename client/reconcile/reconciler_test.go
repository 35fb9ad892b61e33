package reconcile

import (
	"testing"

	"github.com/cbodonnell/lanes/pkg/kinematic"
	"github.com/cbodonnell/lanes/pkg/messages"
	"github.com/cbodonnell/lanes/pkg/queue"
	"github.com/cbodonnell/lanes/pkg/renderstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *renderstate.Store {
	t.Helper()
	store := renderstate.NewStore()
	store.Initialize()
	return store
}

func testGameState(timestamp int64) *messages.ServerGameState {
	return &messages.ServerGameState{
		Timestamp: timestamp,
		Players: []messages.PlayerStateUpdate{
			{Position: kinematic.Vector{X: 120, Y: 310}, Health: 60, Team: 0, AbilityCooldown: 200},
			{Position: kinematic.Vector{X: 900, Y: -10}, Health: 100, Team: 1, AbilityCooldown: 0},
		},
		Minions: []messages.MinionStateUpdate{
			{Position: kinematic.Vector{X: 60, Y: 300}, Health: 50, Team: 0},
			{Position: kinematic.Vector{X: 740, Y: 300}, Health: 30, Team: 1},
		},
		Towers: []messages.StructureStateUpdate{
			{Position: kinematic.Vector{X: 0, Y: 300}, Health: 180, Team: 0},
			{Position: kinematic.Vector{X: 800, Y: 300}, Health: 200, Team: 1},
		},
		Bases: []messages.StructureStateUpdate{
			{Position: kinematic.Vector{X: 0, Y: 300}, Health: 500, Team: 0},
			{Position: kinematic.Vector{X: 800, Y: 300}, Health: 450, Team: 1},
		},
	}
}

func TestReconciler_ApplyGameState(t *testing.T) {
	store := newStore(t)
	r := NewReconciler(store)

	require.NoError(t, r.ApplyGameState(testGameState(5)))
	assert.Equal(t, int64(5), r.LastTimestamp())
	assert.Equal(t, 1, r.Applied())

	snapshot := store.Snapshot()
	assert.Equal(t, []renderstate.Player{
		{Position: kinematic.Vector{X: 120, Y: 310}, Health: 60, Team: 0, AbilityCooldown: 200},
		// server positions are mirrored without clamping
		{Position: kinematic.Vector{X: 900, Y: -10}, Health: 100, Team: 1, AbilityCooldown: 0},
	}, snapshot.Players)
	assert.Equal(t, []renderstate.Minion{
		{Position: kinematic.Vector{X: 60, Y: 300}, Health: 50, Team: 0},
		{Position: kinematic.Vector{X: 740, Y: 300}, Health: 30, Team: 1},
	}, snapshot.Minions)
	assert.Equal(t, int32(180), snapshot.Towers[0].Health)
	assert.Equal(t, int32(450), snapshot.Bases[1].Health)
}

func TestReconciler_MinionsShrink(t *testing.T) {
	store := newStore(t)
	r := NewReconciler(store)
	require.NoError(t, r.ApplyGameState(testGameState(1)))
	assert.Equal(t, 2, store.MinionCount())

	next := testGameState(2)
	next.Minions = next.Minions[:0]
	require.NoError(t, r.ApplyGameState(next))
	assert.Equal(t, 0, store.MinionCount())
}

func TestReconciler_DropsOutdatedGameState(t *testing.T) {
	store := newStore(t)
	r := NewReconciler(store)
	require.NoError(t, r.ApplyGameState(testGameState(10)))

	old := testGameState(9)
	old.Players[0].Health = 1
	require.NoError(t, r.ApplyGameState(old))

	health, err := store.PlayerHealth(0)
	require.NoError(t, err)
	assert.Equal(t, int32(60), health)
	assert.Equal(t, int64(10), r.LastTimestamp())
	assert.Equal(t, 1, r.Applied())

	// a game state with the same timestamp is applied
	same := testGameState(10)
	same.Players[0].Health = 2
	require.NoError(t, r.ApplyGameState(same))
	health, err = store.PlayerHealth(0)
	require.NoError(t, err)
	assert.Equal(t, int32(2), health)

	r.Reset()
	require.NoError(t, r.ApplyGameState(testGameState(1)))
	assert.Equal(t, int64(1), r.LastTimestamp())
}

func TestReconciler_ContinuesPastBadIndices(t *testing.T) {
	store := newStore(t)
	r := NewReconciler(store)

	state := testGameState(1)
	state.Players = append(state.Players, messages.PlayerStateUpdate{Health: 5})
	state.Towers = append(state.Towers, messages.StructureStateUpdate{Health: 5})

	err := r.ApplyGameState(state)
	assert.ErrorIs(t, err, renderstate.ErrIndexOutOfRange)

	// everything that fits was still applied
	assert.Equal(t, 2, store.MinionCount())
	health, err := store.BaseHealth(1)
	require.NoError(t, err)
	assert.Equal(t, int32(450), health)
}

func TestReconciler_UninitializedStore(t *testing.T) {
	r := NewReconciler(renderstate.NewStore())
	assert.ErrorIs(t, r.ApplyGameState(testGameState(1)), renderstate.ErrNotReady)
}

func TestReconciler_UninitializedStoreDoesNotAdvanceTimestamp(t *testing.T) {
	store := renderstate.NewStore()
	r := NewReconciler(store)

	assert.ErrorIs(t, r.ApplyGameState(testGameState(50)), renderstate.ErrNotReady)
	assert.Equal(t, int64(0), r.LastTimestamp())
	assert.Equal(t, 0, r.Applied())

	store.Initialize()
	require.NoError(t, r.ApplyGameState(testGameState(10)))
	health, err := store.PlayerHealth(0)
	require.NoError(t, err)
	assert.Equal(t, int32(60), health)
	assert.Equal(t, int64(10), r.LastTimestamp())
}

func TestReconciler_ProcessServerMessages(t *testing.T) {
	store := newStore(t)
	r := NewReconciler(store)
	q := queue.NewInMemoryQueue(8)

	first, err := messages.SerializeGameState(testGameState(1))
	require.NoError(t, err)
	second := testGameState(2)
	second.Players[1].Health = 42
	secondBytes, err := messages.SerializeGameState(second)
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(&messages.Message{Type: messages.MessageTypeServerGameState, Payload: first}))
	require.NoError(t, q.Enqueue("not a message"))
	require.NoError(t, q.Enqueue(&messages.Message{Type: messages.MessageTypeServerPong}))
	require.NoError(t, q.Enqueue(&messages.Message{Type: messages.MessageTypeServerGameState, Payload: []byte{0}}))
	require.NoError(t, q.Enqueue(&messages.Message{Type: messages.MessageTypeServerGameState, Payload: secondBytes}))

	require.NoError(t, r.ProcessServerMessages(q))
	assert.Equal(t, 0, q.Size())
	assert.Equal(t, 2, r.Applied())
	health, err := store.PlayerHealth(1)
	require.NoError(t, err)
	assert.Equal(t, int32(42), health)
}
