package search

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/depthlab/sortnet/pkg/network"
	"github.com/depthlab/sortnet/pkg/observability"
)

// Task is one unit of search work: the exhaustive exploration of a single
// layer-2 candidate. Tasks are independent; they share no mutable state and
// their output files are disjoint because every file name embeds the
// candidate index.
type Task struct {
	Index    int
	searcher *Searcher
}

// NewTask builds a task around a fresh searcher for the given candidate.
// Unless the run is count-only, every sorter the task finds is written to
// cfg.OutDir under its canonical file name; a network that cannot be
// written is skipped and the search continues.
func NewTask(cfg Config, level2 network.Matching, index int) *Task {
	onSort := func(net *network.Network, seq uint64) {
		observability.Search().OnNetworkFound(index, seq)
		if cfg.CountOnly {
			return
		}
		size := net.RemoveRedundant()
		name := network.Filename(cfg.Width, cfg.Depth, index, size, int(seq))
		if err := net.Save(filepath.Join(cfg.OutDir, name)); err != nil {
			return
		}
	}

	return &Task{
		Index:    index,
		searcher: NewSearcher(cfg, level2, index, onSort),
	}
}

// Run executes the task to completion.
func (t *Task) Run() {
	t.searcher.Backtrack()
}

// Found reports the number of sorting networks the task found.
func (t *Task) Found() uint64 {
	return t.searcher.Found()
}

// Pool runs tasks across a fixed set of worker goroutines. The queue is
// filled before the workers start; workers pull until it drains. There is
// no mid-flight communication between tasks, so the pool is nothing more
// than a channel and a WaitGroup.
type Pool struct {
	workers int
	tasks   []*Task
	queue   chan *Task
	wg      sync.WaitGroup

	// OnTaskDone, if set before Spawn, is called from worker goroutines
	// each time a task completes. It must be safe for concurrent use.
	OnTaskDone func(*Task)
}

// NewPool creates a pool with the given worker count.
func NewPool(workers int) *Pool {
	return &Pool{workers: workers}
}

// Insert queues a task. All tasks must be inserted before Spawn.
func (p *Pool) Insert(t *Task) {
	p.tasks = append(p.tasks, t)
}

// Spawn starts the workers. A cancelled context makes workers stop picking
// up new tasks; a task already running always runs to completion, matching
// the search's no-cancellation contract.
func (p *Pool) Spawn(ctx context.Context) {
	p.queue = make(chan *Task, len(p.tasks))
	for _, t := range p.tasks {
		p.queue <- t
	}
	close(p.queue)

	p.wg.Add(p.workers)
	for w := 0; w < p.workers; w++ {
		go func() {
			defer p.wg.Done()
			for t := range p.queue {
				if ctx.Err() != nil {
					return
				}
				t.Run()
				if p.OnTaskDone != nil {
					p.OnTaskDone(t)
				}
			}
		}()
	}
}

// Wait blocks until every worker has drained the queue.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Process folds the per-task counters into the process-wide total. Call
// after Wait.
func (p *Pool) Process() uint64 {
	var total uint64
	for _, t := range p.tasks {
		total += t.Found()
	}
	return total
}
