package debug

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cbodonnell/lanes/pkg/renderstate"
	"github.com/cbodonnell/lanes/pkg/state"
	"github.com/cbodonnell/lanes/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishReadyStore(t *testing.T) (*renderstate.Store, *state.InMemorySnapshotManager) {
	t.Helper()
	store := renderstate.NewStore()
	store.Initialize()
	require.NoError(t, store.UpsertMinion(0, 100, 300, 50, 1))

	snapshots := state.NewInMemorySnapshotManager()
	snapshot := store.Snapshot()
	require.NoError(t, snapshots.Set(context.Background(), &snapshot))
	return store, snapshots
}

func TestHandleState(t *testing.T) {
	_, snapshots := publishReadyStore(t)
	server := httptest.NewServer(NewRouter(snapshots))
	defer server.Close()

	resp, err := http.Get(server.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	got := &renderstate.Snapshot{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(got))
	assert.Equal(t, renderstate.LifecycleReady, got.Lifecycle)
	assert.Len(t, got.Players, 2)
	assert.Len(t, got.Towers, 2)
	assert.Len(t, got.Bases, 2)
	require.Len(t, got.Minions, 1)
	assert.Equal(t, int32(1), got.Minions[0].Team)
}

func TestHandleIntegrity(t *testing.T) {
	store, snapshots := publishReadyStore(t)
	server := httptest.NewServer(NewRouter(snapshots))
	defer server.Close()

	resp, err := http.Get(server.URL + "/integrity")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := &integrityResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(got))
	assert.Equal(t, store.IntegritySignature(), got.Signature)
	assert.True(t, got.Plausible)
}

func TestHandleIntegrity_Uninitialized(t *testing.T) {
	server := httptest.NewServer(NewRouter(state.NewInMemorySnapshotManager()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/integrity")
	require.NoError(t, err)
	defer resp.Body.Close()

	got := &integrityResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(got))
	assert.Equal(t, int32(0), got.Signature)
	assert.True(t, got.Plausible)
}

func TestHandleVersion(t *testing.T) {
	server := httptest.NewServer(NewRouter(state.NewInMemorySnapshotManager()))
	defer server.Close()

	resp, err := http.Get(server.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	got := &versionResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(got))
	assert.Equal(t, version.Get(), got.Version)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	server := httptest.NewServer(NewRouter(state.NewInMemorySnapshotManager()))
	defer server.Close()

	resp, err := http.Post(server.URL+"/state", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
