package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/lanes/pkg/renderstate"
)

type InMemorySnapshotManager struct {
	lock     sync.RWMutex
	snapshot *renderstate.Snapshot
}

var _ SnapshotManager = &InMemorySnapshotManager{}

func NewInMemorySnapshotManager() *InMemorySnapshotManager {
	return &InMemorySnapshotManager{
		snapshot: &renderstate.Snapshot{
			Lifecycle: renderstate.LifecycleUninitialized,
			Plausible: true,
		},
	}
}

func (m *InMemorySnapshotManager) Get(ctx context.Context) (*renderstate.Snapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return copySnapshot(m.snapshot), nil
}

func (m *InMemorySnapshotManager) Set(ctx context.Context, snapshot *renderstate.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = copySnapshot(snapshot)
	return nil
}

func copySnapshot(s *renderstate.Snapshot) *renderstate.Snapshot {
	return &renderstate.Snapshot{
		Lifecycle: s.Lifecycle,
		Players:   append([]renderstate.Player(nil), s.Players...),
		Minions:   append([]renderstate.Minion(nil), s.Minions...),
		Towers:    append([]renderstate.Structure(nil), s.Towers...),
		Bases:     append([]renderstate.Structure(nil), s.Bases...),
		Signature: s.Signature,
		Plausible: s.Plausible,
	}
}
