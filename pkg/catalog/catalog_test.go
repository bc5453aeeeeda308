package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func sampleRun(id string) Run {
	started := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return Run{
		ID:         id,
		Width:      8,
		Depth:      6,
		Heuristic:  "nearsort",
		Candidates: 74,
		Workers:    16,
		Found:      12,
		Elapsed:    90 * time.Minute,
		CPUTime:    23 * time.Hour,
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Minute),
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "catalog", "runs.jsonl"))
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Save(ctx, sampleRun(id)); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("List returned %d runs, want 3", len(runs))
	}
	if runs[0].ID != "a" || runs[2].ID != "c" {
		t.Errorf("runs out of order: %v, %v, %v", runs[0].ID, runs[1].ID, runs[2].ID)
	}
	want := sampleRun("b")
	got := runs[1]
	if got.ID != want.ID || got.Width != want.Width || got.Depth != want.Depth ||
		got.Heuristic != want.Heuristic || got.Found != want.Found ||
		got.Elapsed != want.Elapsed || got.CPUTime != want.CPUTime ||
		!got.StartedAt.Equal(want.StartedAt) || !got.FinishedAt.Equal(want.FinishedAt) {
		t.Errorf("record did not round trip: %+v", got)
	}
}

func TestFileStoreEmptyCatalog(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "runs.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	runs, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh catalog lists %d runs", len(runs))
	}
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	store := NewNullStore()
	if err := store.Save(ctx, sampleRun("x")); err != nil {
		t.Fatal(err)
	}
	runs, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("null store lists %d runs", len(runs))
	}
}
