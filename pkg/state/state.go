package state

import (
	"context"

	"github.com/cbodonnell/lanes/pkg/renderstate"
)

// SnapshotManager provides shared access to the most recent render state snapshot.
// Implementations must be thread-safe.
type SnapshotManager interface {
	// Get returns a copy of the latest snapshot.
	Get(ctx context.Context) (*renderstate.Snapshot, error)
	// Set replaces the latest snapshot.
	Set(ctx context.Context, snapshot *renderstate.Snapshot) error
}
