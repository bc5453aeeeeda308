package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// runsCommand creates the runs command, which lists catalog records of
// completed searches.
func (c *CLI) runsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded search runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.newCatalog(cmd)
			if err != nil {
				return err
			}
			defer store.Close(cmd.Context())

			runs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println(StyleDim.Render("no runs recorded"))
				return nil
			}

			for _, r := range runs {
				dims := fmt.Sprintf("w%d d%d", r.Width, r.Depth)
				detail := fmt.Sprintf("%d candidates, %d workers, %s",
					r.Candidates, r.Workers, r.Elapsed.Round(time.Second))
				fmt.Printf("%s  %-7s %-12s found=%s  %s\n",
					StyleDim.Render(r.StartedAt.Format(time.DateTime)),
					StyleTitle.Render(dims),
					StyleValue.Render(r.Heuristic),
					StyleNumber.Render(fmt.Sprint(r.Found)),
					StyleDim.Render(detail))
			}
			return nil
		},
	}
}
