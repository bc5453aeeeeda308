package cli

import (
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/depthlab/sortnet/pkg/status"
)

// progressHooks logs search progress and optionally forwards every event to
// a status tracker. Worker goroutines call it concurrently.
type progressHooks struct {
	logger  *log.Logger
	tracker *status.Tracker

	mu        sync.Mutex
	total     int
	completed int
	found     uint64
}

func newProgressHooks(logger *log.Logger) *progressHooks {
	return &progressHooks{logger: logger}
}

func (p *progressHooks) OnSearchStart(width, depth, candidates, workers int) {
	p.mu.Lock()
	p.total = candidates
	p.mu.Unlock()

	if p.tracker != nil {
		p.tracker.OnSearchStart(width, depth, candidates, workers)
	}
	p.logger.Info("search started", "width", width, "depth", depth,
		"candidates", candidates, "workers", workers)
}

func (p *progressHooks) OnTaskComplete(index int, found uint64) {
	p.mu.Lock()
	p.completed++
	p.found += found
	completed, total, totalFound := p.completed, p.total, p.found
	p.mu.Unlock()

	if p.tracker != nil {
		p.tracker.OnTaskComplete(index, found)
	}
	p.logger.Info("candidate explored", "candidate", index,
		"progress", formatProgress(completed, total), "found", totalFound)
}

func (p *progressHooks) OnNetworkFound(index int, seq uint64) {
	if p.tracker != nil {
		p.tracker.OnNetworkFound(index, seq)
	}
	p.logger.Debug("sorting network found", "candidate", index, "seq", seq)
}

func (p *progressHooks) OnSearchComplete(total uint64) {
	if p.tracker != nil {
		p.tracker.OnSearchComplete(total)
	}
}

func formatProgress(completed, total int) string {
	return StyleNumber.Render(strconv.Itoa(completed)) + StyleDim.Render("/"+strconv.Itoa(total))
}
