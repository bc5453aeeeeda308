// Package catalog records completed search runs.
//
// A run record is small and append-only: dimensions, heuristic, counts, and
// timings. The catalog is how multi-day searches stay auditable — the
// network files alone do not say what was searched, with what, or for how
// long.
//
// # Backends
//
// The [Store] interface has four implementations:
//   - file: JSON lines in a local file (default for CLI use)
//   - redis: a Redis list, for shared lab deployments
//   - mongo: a MongoDB collection, when runs should be queryable
//   - null: discards everything (catalog disabled)
//
// Catalog failures never abort a search; callers report them through
// observability hooks and move on.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested run record does not exist.
var ErrNotFound = errors.New("not found")

// Run is one completed search.
type Run struct {
	ID         string        `json:"id" bson:"_id"`
	Width      int           `json:"width" bson:"width"`
	Depth      int           `json:"depth" bson:"depth"`
	Heuristic  string        `json:"heuristic" bson:"heuristic"`
	Candidates int           `json:"candidates" bson:"candidates"`
	Workers    int           `json:"workers" bson:"workers"`
	Found      uint64        `json:"found" bson:"found"`
	Elapsed    time.Duration `json:"elapsed_ns" bson:"elapsed_ns"`
	CPUTime    time.Duration `json:"cpu_ns" bson:"cpu_ns"`
	StartedAt  time.Time     `json:"started_at" bson:"started_at"`
	FinishedAt time.Time     `json:"finished_at" bson:"finished_at"`
}

// Store is the interface for catalog storage backends.
type Store interface {
	// Save appends a run record.
	Save(ctx context.Context, run Run) error

	// List returns all recorded runs, oldest first.
	List(ctx context.Context) ([]Run, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
