// Package status exposes the progress of a running search over HTTP.
//
// Exhaustive searches run for hours to days; the status endpoint lets a
// remote shell or dashboard poll progress without touching the process. The
// [Tracker] implements the search observability hooks and the [Server]
// serves its snapshot as JSON.
package status

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Tracker accumulates search progress. It is safe for concurrent use; the
// search pool updates it from worker goroutines.
type Tracker struct {
	width      atomic.Int64
	depth      atomic.Int64
	candidates atomic.Int64
	workers    atomic.Int64
	completed  atomic.Int64
	found      atomic.Uint64
	startedAt  atomic.Int64 // unix nanos
	done       atomic.Bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnSearchStart implements observability.SearchHooks.
func (t *Tracker) OnSearchStart(width, depth, candidates, workers int) {
	t.width.Store(int64(width))
	t.depth.Store(int64(depth))
	t.candidates.Store(int64(candidates))
	t.workers.Store(int64(workers))
	t.startedAt.Store(time.Now().UnixNano())
}

// OnTaskComplete implements observability.SearchHooks.
func (t *Tracker) OnTaskComplete(index int, found uint64) {
	t.completed.Add(1)
}

// OnNetworkFound implements observability.SearchHooks.
func (t *Tracker) OnNetworkFound(index int, seq uint64) {
	t.found.Add(1)
}

// OnSearchComplete implements observability.SearchHooks.
func (t *Tracker) OnSearchComplete(total uint64) {
	t.found.Store(total)
	t.done.Store(true)
}

// Snapshot is the JSON shape served by the status endpoint.
type Snapshot struct {
	Width          int     `json:"width"`
	Depth          int     `json:"depth"`
	Candidates     int     `json:"candidates"`
	Completed      int     `json:"completed"`
	Workers        int     `json:"workers"`
	Found          uint64  `json:"found"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Done           bool    `json:"done"`
}

// Snapshot returns the current progress.
func (t *Tracker) Snapshot() Snapshot {
	var elapsed float64
	if start := t.startedAt.Load(); start > 0 {
		elapsed = time.Since(time.Unix(0, start)).Seconds()
	}
	return Snapshot{
		Width:          int(t.width.Load()),
		Depth:          int(t.depth.Load()),
		Candidates:     int(t.candidates.Load()),
		Completed:      int(t.completed.Load()),
		Workers:        int(t.workers.Load()),
		Found:          t.found.Load(),
		ElapsedSeconds: elapsed,
		Done:           t.done.Load(),
	}
}

// Server serves a tracker over HTTP.
type Server struct {
	srv *http.Server
}

// NewServer builds a server for the given tracker listening on addr.
func NewServer(addr string, tracker *Tracker) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tracker.Snapshot())
	})

	return &Server{srv: &http.Server{Addr: addr, Handler: r}}
}

// Start begins serving in a background goroutine. Listen errors other than
// graceful shutdown are reported through the returned channel.
func (s *Server) Start() <-chan error {
	errc := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()
	return errc
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
