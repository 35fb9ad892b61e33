package effects

import (
	"testing"

	"github.com/cbodonnell/lanes/pkg/renderstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracker() *DamageTracker {
	return NewDamageTracker(NewDamageTrackerOptions{
		TTL:          500,
		Rise:         100,
		PlayerOffset: 24,
		TowerOffset:  32,
		BaseOffset:   40,
	})
}

func newReadyStore(t *testing.T) *renderstate.Store {
	t.Helper()
	store := renderstate.NewStore()
	store.Initialize()
	return store
}

func TestDamageTracker_Update(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *renderstate.Store) error
		want   []DamageText
	}{
		{
			name:   "player loses health",
			mutate: func(s *renderstate.Store) error { return s.SetPlayerHealth(0, 80) },
			want:   []DamageText{{Text: "-20", X: 50, Y: 276, TTL: 500}},
		},
		{
			name:   "tower loses health",
			mutate: func(s *renderstate.Store) error { return s.SetTowerHealth(1, 150) },
			want:   []DamageText{{Text: "-50", X: 800, Y: 268, TTL: 500}},
		},
		{
			name:   "base loses health",
			mutate: func(s *renderstate.Store) error { return s.SetBaseHealth(0, 499) },
			want:   []DamageText{{Text: "-1", X: 0, Y: 260, TTL: 500}},
		},
		{
			name:   "health unchanged",
			mutate: func(s *renderstate.Store) error { return s.SetPlayerHealth(1, 100) },
			want:   []DamageText{},
		},
		{
			name:   "minion changes are ignored",
			mutate: func(s *renderstate.Store) error { return s.UpsertMinion(0, 10, 300, 0, 1) },
			want:   []DamageText{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newReadyStore(t)
			tracker := newTracker()
			tracker.Update(store.Snapshot(), 16)
			assert.Empty(t, tracker.Texts())

			require.NoError(t, tt.mutate(store))
			tracker.Update(store.Snapshot(), 16)
			got := tracker.Texts()
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDamageTracker_TextRisesAndExpires(t *testing.T) {
	store := newReadyStore(t)
	tracker := newTracker()
	tracker.Update(store.Snapshot(), 0)
	require.NoError(t, store.SetPlayerHealth(1, 70))
	tracker.Update(store.Snapshot(), 0)
	require.Len(t, tracker.Texts(), 1)

	tracker.Update(store.Snapshot(), 100)
	texts := tracker.Texts()
	require.Len(t, texts, 1)
	assert.Equal(t, "-30", texts[0].Text)
	assert.Equal(t, 400, texts[0].TTL)
	assert.InDelta(t, 266, texts[0].Y, 0.001)

	tracker.Update(store.Snapshot(), 400)
	assert.Empty(t, tracker.Texts())
}

func TestDamageTracker_NoTextOnFirstSnapshot(t *testing.T) {
	store := newReadyStore(t)
	require.NoError(t, store.SetPlayerHealth(0, 10))
	tracker := newTracker()
	tracker.Update(store.Snapshot(), 16)
	assert.Empty(t, tracker.Texts())
}

func TestDamageTracker_ResetsOnNewMatch(t *testing.T) {
	tracker := newTracker()
	store := newReadyStore(t)
	tracker.Update(store.Snapshot(), 16)

	// an uninitialized snapshot forgets the previous match
	tracker.Update(renderstate.NewStore().Snapshot(), 16)
	next := newReadyStore(t)
	require.NoError(t, next.SetPlayerHealth(0, 50))
	tracker.Update(next.Snapshot(), 16)
	assert.Empty(t, tracker.Texts())
}

func TestNewDamageTracker_Defaults(t *testing.T) {
	tracker := NewDamageTracker(NewDamageTrackerOptions{})
	assert.Equal(t, DefaultDamageTextTTL, tracker.ttl)
	assert.Equal(t, float32(DefaultDamageTextRise), tracker.rise)
}
