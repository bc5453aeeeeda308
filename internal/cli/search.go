package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/depthlab/sortnet/pkg/catalog"
	"github.com/depthlab/sortnet/pkg/observability"
	"github.com/depthlab/sortnet/pkg/search"
	"github.com/depthlab/sortnet/pkg/status"
)

// searchOpts holds the command-line flags for the search command.
type searchOpts struct {
	width      int    // input channels; 0 prompts interactively
	depth      int    // comparator layers; 0 prompts interactively
	heuristic  string // heuristic name, or "auto"
	nearsort2  bool   // prefer nearsort2 when depth allows it
	countOnly  bool   // count sorters without writing files
	output     string // directory for network files
	workers    int    // worker goroutines; 0 means one per CPU
	statusAddr string // optional HTTP progress endpoint
	logFile    string // append-only run log
	noCatalog  bool   // skip the catalog record
}

// searchCommand creates the search command.
//
// Width and depth come from flags or, when omitted on a terminal, from an
// interactive picker. Depths outside the width's searchable band are
// rejected rather than silently accepted (a flag value fails validation, an
// answer at the stdin prompt is re-prompted, the picker offers only the
// band): anything below the band is provably impossible and anything above
// it is not worth exhausting.
func (c *CLI) searchCommand() *cobra.Command {
	opts := searchOpts{
		heuristic: "auto",
		output:    c.Config.Output,
		workers:   c.Config.Workers,
		logFile:   "log.txt",
	}
	if opts.output == "" {
		opts.output = "."
	}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run the exhaustive search for a width and depth",
		Long: `Search exhaustively for sorting networks with the given number of input
channels (width) and layers (depth). Every network found is written to the
output directory as w{n}d{d}x{L2}s{size}n{seq}.txt.

Searchable depths per width:
  width 3-4   depth 2-3
  width 5-6   depth 4-5
  width 7-8   depth 5-6
  width 9-10  depth 6-7
  width 11-12 depth 7-8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "n", 0, "number of input channels (3-12)")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "number of layers")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", opts.heuristic, "plain, autocomplete, nearsort, nearsort2, or auto")
	cmd.Flags().BoolVar(&opts.nearsort2, "nearsort2", false, "prefer the nearsort2 heuristic when depth >= 5")
	cmd.Flags().BoolVar(&opts.countOnly, "count-only", false, "count sorting networks without writing files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "directory for network files")
	cmd.Flags().IntVar(&opts.workers, "workers", opts.workers, "worker goroutines (0 = one per CPU)")
	cmd.Flags().StringVar(&opts.statusAddr, "status-addr", c.Config.StatusAddr, "serve live progress JSON on this address")
	cmd.Flags().StringVar(&opts.logFile, "log-file", opts.logFile, "append-only run log (empty to disable)")
	cmd.Flags().BoolVar(&opts.noCatalog, "no-catalog", false, "do not record this run in the catalog")

	return cmd
}

func (c *CLI) runSearch(cmd *cobra.Command, opts searchOpts) error {
	ctx := cmd.Context()
	logger := c.Logger

	params, err := resolveParams(opts)
	if err != nil {
		return err
	}

	cfg := search.Config{
		Width:     params.width,
		Depth:     params.depth,
		Heuristic: params.heuristic,
		OutDir:    opts.output,
		CountOnly: opts.countOnly,
		Workers:   opts.workers,
		LogFile:   opts.logFile,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	hooks := newProgressHooks(logger)
	var tracker *status.Tracker
	if opts.statusAddr != "" {
		tracker = status.NewTracker()
		hooks.tracker = tracker

		srv := status.NewServer(opts.statusAddr, tracker)
		errc := srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		go func() {
			if err, ok := <-errc; ok && err != nil {
				logger.Warn("status endpoint failed", "addr", opts.statusAddr, "err", err)
			}
		}()
		logger.Info("serving live progress", "addr", opts.statusAddr)
	}
	observability.SetSearchHooks(hooks)
	defer observability.Reset()

	started := time.Now()
	prog := newProgress(logger)

	summary, err := search.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}
	prog.done("Search finished")
	printSuccess("%d %d-input sorting networks of depth %d (%s)",
		summary.Found, summary.Width, summary.Depth, summary.Heuristic)
	fmt.Println(StyleDim.Render(summary.String()))

	if !opts.noCatalog {
		c.recordRun(cmd, summary, started)
	}
	return nil
}

// recordRun appends the completed run to the configured catalog. Failures
// are logged and otherwise ignored: the search result on disk is already
// safe.
func (c *CLI) recordRun(cmd *cobra.Command, summary search.Summary, started time.Time) {
	store, err := c.newCatalog(cmd)
	if err != nil {
		observability.Catalog().OnError(c.Config.Catalog.Backend, err)
		c.Logger.Warn("catalog unavailable", "err", err)
		return
	}
	ctx := cmd.Context()
	defer store.Close(ctx)

	run := catalog.Run{
		ID:         uuid.NewString(),
		Width:      summary.Width,
		Depth:      summary.Depth,
		Heuristic:  summary.Heuristic.String(),
		Candidates: summary.Candidates,
		Workers:    summary.Workers,
		Found:      summary.Found,
		Elapsed:    summary.Elapsed,
		CPUTime:    summary.CPUTime,
		StartedAt:  started,
		FinishedAt: started.Add(summary.Elapsed),
	}
	if err := store.Save(ctx, run); err != nil {
		observability.Catalog().OnError(c.Config.Catalog.Backend, err)
		c.Logger.Warn("could not record run", "err", err)
		return
	}
	observability.Catalog().OnRunSaved(c.Config.Catalog.Backend)
	c.Logger.Debug("run recorded", "id", run.ID)
}
