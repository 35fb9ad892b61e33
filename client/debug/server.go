package debug

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/state"
	"github.com/cbodonnell/lanes/pkg/version"
	"github.com/gorilla/mux"
)

// Server exposes the latest render state snapshot over HTTP.
type Server struct {
	server *http.Server
}

type NewServerOptions struct {
	Addr            string
	SnapshotManager state.SnapshotManager
}

type integrityResponse struct {
	Signature int32 `json:"signature"`
	Plausible bool  `json:"plausible"`
}

type versionResponse struct {
	Version string `json:"version"`
}

func NewServer(opts NewServerOptions) *Server {
	return &Server{
		server: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts.SnapshotManager),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter returns the debug routes backed by the snapshot manager.
func NewRouter(snapshots state.SnapshotManager) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/state", HandleState(snapshots)).Methods(http.MethodGet)
	r.HandleFunc("/integrity", HandleIntegrity(snapshots)).Methods(http.MethodGet)
	r.HandleFunc("/version", HandleVersion()).Methods(http.MethodGet)
	return r
}

func HandleState(snapshots state.SnapshotManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := snapshots.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}
		writeJSON(w, snapshot)
	}
}

func HandleIntegrity(snapshots state.SnapshotManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := snapshots.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}
		writeJSON(w, &integrityResponse{
			Signature: snapshot.Signature,
			Plausible: snapshot.Plausible,
		})
	}
}

func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, &versionResponse{Version: version.Get()})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// Start serves until the server is stopped.
func (s *Server) Start() {
	log.Info("Debug server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Debug server closed")
			return
		}
		log.Error("Debug server error: %v", err)
	}
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
