package search

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/depthlab/sortnet/pkg/observability"
)

// Summary is the result of a completed search run.
type Summary struct {
	Width      int
	Depth      int
	Heuristic  Heuristic
	Candidates int
	Workers    int
	Found      uint64
	Elapsed    time.Duration
	CPUTime    time.Duration
}

// String renders the summary the way the run log records it.
func (s Summary) String() string {
	return fmt.Sprintf("%d found in %s using %s CPU time over %d threads",
		s.Found, s.Elapsed.Round(time.Millisecond), s.CPUTime.Round(time.Millisecond), s.Workers)
}

// Run executes a complete search: it enumerates the layer-2 candidates,
// wraps each in a task, runs the tasks across cfg.Workers goroutines, and
// folds the per-task counters into the summary.
//
// A cancelled context stops the run between tasks; tasks already running
// finish first, so partial output files are never truncated mid-write.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if logger == nil {
		logger = log.Default()
	}

	if !cfg.CountOnly && cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return Summary{}, fmt.Errorf("output directory: %w", err)
		}
	}

	logToFile(cfg, fmt.Sprintf("Searching for %d-input sorting networks of depth %d", cfg.Width, cfg.Depth))

	start := time.Now()
	cpuStart := cpuTime()

	candidates := Level2Candidates(cfg.Width)
	logger.Info("enumerated layer-2 candidates",
		"width", cfg.Width, "depth", cfg.Depth,
		"candidates", len(candidates), "heuristic", cfg.Heuristic.String())

	pool := NewPool(cfg.Workers)
	for i, m := range candidates {
		pool.Insert(NewTask(cfg, m, i))
	}

	observability.Search().OnSearchStart(cfg.Width, cfg.Depth, len(candidates), cfg.Workers)
	pool.OnTaskDone = func(t *Task) {
		observability.Search().OnTaskComplete(t.Index, t.Found())
	}

	pool.Spawn(ctx)
	pool.Wait()

	summary := Summary{
		Width:      cfg.Width,
		Depth:      cfg.Depth,
		Heuristic:  cfg.Heuristic,
		Candidates: len(candidates),
		Workers:    cfg.Workers,
		Found:      pool.Process(),
		Elapsed:    time.Since(start),
		CPUTime:    cpuTime() - cpuStart,
	}

	observability.Search().OnSearchComplete(summary.Found)
	logToFile(cfg, summary.String())

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// logToFile appends one line to the run log. Log-file failures are silent:
// the log is a convenience record, never worth aborting a multi-day search.
func logToFile(cfg Config, line string) {
	if cfg.LogFile == "" {
		return
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	fmt.Fprintln(f, line)
	f.Close()
}
