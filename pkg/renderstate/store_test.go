package renderstate

import (
	"testing"

	"github.com/cbodonnell/lanes/pkg/game/constants"
	"github.com/cbodonnell/lanes/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadyStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Initialize()
	require.Equal(t, LifecycleReady, s.State())
	return s
}

func TestStore_Initialize(t *testing.T) {
	s := newReadyStore(t)

	assert.Equal(t, []Player{
		{Position: kinematic.Vector{X: 50, Y: 300}, Health: 100, Team: 0},
		{Position: kinematic.Vector{X: 750, Y: 300}, Health: 100, Team: 1},
	}, s.players)
	assert.Equal(t, []Structure{
		{Position: kinematic.Vector{X: 0, Y: 300}, Health: 200, Team: 0},
		{Position: kinematic.Vector{X: 800, Y: 300}, Health: 200, Team: 1},
	}, s.towers)
	assert.Equal(t, []Structure{
		{Position: kinematic.Vector{X: 0, Y: 300}, Health: 500, Team: 0},
		{Position: kinematic.Vector{X: 800, Y: 300}, Health: 500, Team: 1},
	}, s.bases)
	assert.Equal(t, 0, s.MinionCount())
}

func TestStore_InitializeEntityCounts(t *testing.T) {
	s := newReadyStore(t)
	assert.Len(t, s.players, constants.PlayerCount)
	assert.Len(t, s.towers, constants.TowerCount)
	assert.Len(t, s.bases, constants.BaseCount)

	_, err := s.PlayerX(constants.PlayerCount)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.TowerHealth(constants.TowerCount)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.BaseHealth(constants.BaseCount)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestStore_InitializeIsIdempotent(t *testing.T) {
	once := newReadyStore(t)
	twice := newReadyStore(t)
	twice.Initialize()
	assert.Equal(t, once.Snapshot(), twice.Snapshot())

	// a later call must not reset mirrored state either
	require.NoError(t, twice.SetTowerHealth(0, 12))
	require.NoError(t, twice.UpsertMinion(1, 1, 2, 3, 0))
	twice.Initialize()
	health, err := twice.TowerHealth(0)
	require.NoError(t, err)
	assert.Equal(t, int32(12), health)
	assert.Equal(t, 2, twice.MinionCount())
	assert.Len(t, twice.towers, 2)
	assert.Len(t, twice.bases, 2)
}

func TestStore_NotReady(t *testing.T) {
	s := NewStore()
	assert.Equal(t, LifecycleUninitialized, s.State())

	assert.ErrorIs(t, s.PredictLocalMovement(0, 1, 0), ErrNotReady)
	assert.ErrorIs(t, s.ReconcilePlayerPosition(0, 1, 1), ErrNotReady)
	assert.ErrorIs(t, s.SetPlayerHealth(0, 1), ErrNotReady)
	assert.ErrorIs(t, s.SetAbilityCooldown(0, 1), ErrNotReady)
	assert.ErrorIs(t, s.UpsertMinion(0, 1, 1, 1, 0), ErrNotReady)
	assert.ErrorIs(t, s.SetMinionCount(3), ErrNotReady)
	assert.ErrorIs(t, s.SetTowerHealth(0, 1), ErrNotReady)
	assert.ErrorIs(t, s.SetBaseHealth(0, 1), ErrNotReady)
	_, err := s.PlayerX(0)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = s.TowerY(1)
	assert.ErrorIs(t, err, ErrNotReady)

	assert.Equal(t, 0, s.MinionCount())
	assert.Equal(t, int32(0), s.IntegritySignature())
	assert.True(t, s.Plausible())
}

func TestStore_IndexOutOfRange(t *testing.T) {
	s := newReadyStore(t)

	tests := []struct {
		name string
		call func() error
	}{
		{name: "predict negative player", call: func() error { return s.PredictLocalMovement(-1, 1, 0) }},
		{name: "predict player 2", call: func() error { return s.PredictLocalMovement(2, 1, 0) }},
		{name: "reconcile player 2", call: func() error { return s.ReconcilePlayerPosition(2, 0, 0) }},
		{name: "player health", call: func() error { return s.SetPlayerHealth(5, 0) }},
		{name: "ability cooldown", call: func() error { return s.SetAbilityCooldown(2, 0) }},
		{name: "negative minion", call: func() error { return s.UpsertMinion(-1, 0, 0, 0, 0) }},
		{name: "negative minion count", call: func() error { return s.SetMinionCount(-3) }},
		{name: "tower health", call: func() error { return s.SetTowerHealth(2, 0) }},
		{name: "base health", call: func() error { return s.SetBaseHealth(-1, 0) }},
		{name: "minion x", call: func() error { _, err := s.MinionX(0); return err }},
		{name: "tower x", call: func() error { _, err := s.TowerX(9); return err }},
		{name: "base y", call: func() error { _, err := s.BaseY(2); return err }},
		{name: "player cooldown", call: func() error { _, err := s.AbilityCooldown(3); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrIndexOutOfRange)
		})
	}

	// failed calls leave the store untouched
	assert.Equal(t, newReadyStore(t).Snapshot(), s.Snapshot())
}

func TestStore_PredictLocalMovement(t *testing.T) {
	s := newReadyStore(t)

	require.NoError(t, s.PredictLocalMovement(0, 1, -1))
	x, err := s.PlayerX(0)
	require.NoError(t, err)
	y, err := s.PlayerY(0)
	require.NoError(t, err)
	assert.Equal(t, float32(55), x)
	assert.Equal(t, float32(295), y)

	// player 1 is not moved
	x, err = s.PlayerX(1)
	require.NoError(t, err)
	assert.Equal(t, float32(750), x)
}

func TestStore_PredictLocalMovementStaysInArena(t *testing.T) {
	s := newReadyStore(t)

	deltas := []kinematic.Vector{
		{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1},
		{X: -7.5, Y: 3}, {X: 40, Y: -40}, {X: 1, Y: 1},
	}
	for _, d := range deltas {
		for step := 0; step < 200; step++ {
			for id := 0; id < 2; id++ {
				require.NoError(t, s.PredictLocalMovement(id, d.X, d.Y))
				x, err := s.PlayerX(id)
				require.NoError(t, err)
				y, err := s.PlayerY(id)
				require.NoError(t, err)
				assert.True(t, x >= 0 && x <= 800, "x=%v out of arena", x)
				assert.True(t, y >= 0 && y <= 600, "y=%v out of arena", y)
			}
		}
	}
}

func TestStore_ReconcilePlayerPositionIsNotClamped(t *testing.T) {
	s := newReadyStore(t)

	require.NoError(t, s.PredictLocalMovement(1, 1, 1))
	require.NoError(t, s.ReconcilePlayerPosition(1, -20, 950.5))

	x, err := s.PlayerX(1)
	require.NoError(t, err)
	y, err := s.PlayerY(1)
	require.NoError(t, err)
	assert.Equal(t, float32(-20), x)
	assert.Equal(t, float32(950.5), y)
}

func TestStore_PlayerFields(t *testing.T) {
	s := newReadyStore(t)

	require.NoError(t, s.SetPlayerHealth(1, 40))
	require.NoError(t, s.SetAbilityCooldown(1, 3))

	health, err := s.PlayerHealth(1)
	require.NoError(t, err)
	assert.Equal(t, int32(40), health)
	cooldown, err := s.AbilityCooldown(1)
	require.NoError(t, err)
	assert.Equal(t, int32(3), cooldown)

	health, err = s.PlayerHealth(0)
	require.NoError(t, err)
	assert.Equal(t, int32(100), health)
	cooldown, err = s.AbilityCooldown(0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), cooldown)
	team, err := s.PlayerTeam(1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), team)
}

func TestStore_UpsertMinion(t *testing.T) {
	s := newReadyStore(t)
	require.NoError(t, s.SetMinionCount(2))

	require.NoError(t, s.UpsertMinion(5, 120, 310, 45, 1))
	assert.Equal(t, 6, s.MinionCount())
	for i := 2; i <= 4; i++ {
		assert.Equal(t, Minion{}, s.minions[i], "minion %d should be zeroed", i)
	}
	assert.Equal(t, Minion{Position: kinematic.Vector{X: 120, Y: 310}, Health: 45, Team: 1}, s.minions[5])

	x, err := s.MinionX(5)
	require.NoError(t, err)
	y, err := s.MinionY(5)
	require.NoError(t, err)
	health, err := s.MinionHealth(5)
	require.NoError(t, err)
	team, err := s.MinionTeam(5)
	require.NoError(t, err)
	assert.Equal(t, float32(120), x)
	assert.Equal(t, float32(310), y)
	assert.Equal(t, int32(45), health)
	assert.Equal(t, int32(1), team)

	// overwrite in place without growing
	require.NoError(t, s.UpsertMinion(0, 1, 2, 3, 0))
	assert.Equal(t, 6, s.MinionCount())
}

func TestStore_SetMinionCount(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		count   int
	}{
		{name: "clear", initial: 4, count: 0},
		{name: "clear empty", initial: 0, count: 0},
		{name: "truncate", initial: 6, count: 2},
		{name: "grow", initial: 1, count: 5},
		{name: "same", initial: 3, count: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newReadyStore(t)
			for i := 0; i < tt.initial; i++ {
				require.NoError(t, s.UpsertMinion(i, float32(i), 300, 50, 0))
			}
			require.NoError(t, s.SetMinionCount(tt.count))
			assert.Equal(t, tt.count, s.MinionCount())
			for i := tt.initial; i < tt.count; i++ {
				assert.Equal(t, Minion{}, s.minions[i])
			}
		})
	}
}

func TestStore_SetMinionCountThenGrowIsZeroed(t *testing.T) {
	s := newReadyStore(t)
	require.NoError(t, s.UpsertMinion(2, 10, 10, 50, 1))
	require.NoError(t, s.SetMinionCount(0))
	require.NoError(t, s.SetMinionCount(3))
	assert.Equal(t, Minion{}, s.minions[2])
}

func TestStore_Structures(t *testing.T) {
	s := newReadyStore(t)

	require.NoError(t, s.SetTowerHealth(1, 80))
	require.NoError(t, s.SetBaseHealth(0, 250))

	towerHealth, err := s.TowerHealth(1)
	require.NoError(t, err)
	assert.Equal(t, int32(80), towerHealth)
	baseHealth, err := s.BaseHealth(0)
	require.NoError(t, err)
	assert.Equal(t, int32(250), baseHealth)

	towerX, err := s.TowerX(1)
	require.NoError(t, err)
	towerY, err := s.TowerY(1)
	require.NoError(t, err)
	assert.Equal(t, float32(800), towerX)
	assert.Equal(t, float32(300), towerY)

	baseX, err := s.BaseX(0)
	require.NoError(t, err)
	baseY, err := s.BaseY(0)
	require.NoError(t, err)
	baseTeam, err := s.BaseTeam(0)
	require.NoError(t, err)
	towerTeam, err := s.TowerTeam(1)
	require.NoError(t, err)
	assert.Equal(t, float32(0), baseX)
	assert.Equal(t, float32(300), baseY)
	assert.Equal(t, int32(0), baseTeam)
	assert.Equal(t, int32(1), towerTeam)
}

func TestStore_Winner(t *testing.T) {
	s := newReadyStore(t)
	_, ok := s.Winner()
	assert.False(t, ok)

	require.NoError(t, s.SetBaseHealth(1, 0))
	team, ok := s.Winner()
	assert.True(t, ok)
	assert.Equal(t, int32(0), team)

	s = newReadyStore(t)
	require.NoError(t, s.SetBaseHealth(0, -10))
	team, ok = s.Winner()
	assert.True(t, ok)
	assert.Equal(t, int32(1), team)
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := newReadyStore(t)
	require.NoError(t, s.UpsertMinion(0, 10, 20, 30, 1))

	snapshot := s.Snapshot()
	require.NoError(t, s.SetPlayerHealth(0, 1))
	require.NoError(t, s.UpsertMinion(0, 99, 99, 99, 0))

	assert.Equal(t, int32(100), snapshot.Players[0].Health)
	assert.Equal(t, float32(10), snapshot.Minions[0].Position.X)
	assert.Equal(t, LifecycleReady, snapshot.Lifecycle)
	assert.True(t, snapshot.Plausible)
}
