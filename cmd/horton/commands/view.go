package commands

import (
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/agentultra/horton"
	"github.com/agentultra/horton/controller"
	"github.com/agentultra/horton/life"
	"github.com/agentultra/horton/ui"
)

func viewCmd() *cobra.Command {
	var (
		wf       worldFlags
		threads  int
		cellSize int
		tick     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Run Game of Life in a window (space pauses, n steps, r resets, q quits)",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := wf.world()
			if err != nil {
				return err
			}

			cfg := ui.DefaultConfig()
			cfg.CellSize = unit.Dp(cellSize)
			cfg.Tick = tick
			viewer := ui.NewViewer(controller.New(seed, &life.Runner{Threads: threads}), cfg)

			ctx := cmd.Context()
			go func() {
				if err := viewer.Run(ctx); err != nil {
					horton.Logger().Error("view: window failed", "err", err)
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().IntVar(&threads, "threads", 1, "worker goroutines per generation")
	cmd.Flags().IntVar(&cellSize, "cell-size", 20, "cell size in dp")
	cmd.Flags().DurationVar(&tick, "tick", 200*time.Millisecond, "time between generations")
	return cmd
}
