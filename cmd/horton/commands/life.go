package commands

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/agentultra/horton"
	"github.com/agentultra/horton/grid"
	"github.com/agentultra/horton/life"
	"github.com/agentultra/horton/render"
)

// worldFlags are shared by the life and view commands.
type worldFlags struct {
	pattern       string
	seedFile      string
	width, height int
	torus         bool
}

func (f *worldFlags) register(cmd *cobra.Command) {
	names := slices.Sorted(maps.Keys(life.Patterns))
	cmd.Flags().StringVar(&f.pattern, "pattern", "glider", "built-in seed ("+strings.Join(names, ", ")+")")
	cmd.Flags().StringVar(&f.seedFile, "seed", "", "seed file, overrides --pattern")
	cmd.Flags().IntVar(&f.width, "width", 0, "world width (default: the seed's)")
	cmd.Flags().IntVar(&f.height, "height", 0, "world height (default: the seed's)")
	cmd.Flags().BoolVar(&f.torus, "torus", false, "wrap the world's edges")
}

func (f *worldFlags) world() (*grid.Grid[int], error) {
	var opts []grid.Option[int]
	if f.torus {
		opts = append(opts, grid.WithWrap[int]())
	}

	var (
		pattern *grid.Grid[int]
		err     error
	)
	if f.seedFile != "" {
		file, ferr := os.Open(f.seedFile)
		if ferr != nil {
			return nil, ferr
		}
		defer file.Close()
		pattern, err = life.Parse(file)
	} else {
		text, ok := life.Patterns[f.pattern]
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q", f.pattern)
		}
		pattern, err = life.Parse(strings.NewReader(text))
	}
	if err != nil {
		return nil, err
	}
	return life.Embed(pattern, f.width, f.height, opts...)
}

func lifeCmd() *cobra.Command {
	var (
		wf          worldFlags
		generations int
		threads     int
		metricsAddr string
		pngPath     string
		cellSize    int
	)

	cmd := &cobra.Command{
		Use:   "life",
		Short: "Run Conway's Game of Life and print the final world",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			seed, err := wf.world()
			if err != nil {
				return err
			}

			runner := &life.Runner{Threads: threads}
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				if runner.Metrics, err = life.NewMetrics(reg); err != nil {
					return err
				}
				shutdown := serveMetrics(metricsAddr, reg)
				defer shutdown()
			}

			world, err := runner.Run(ctx, seed, generations)
			if err != nil {
				return err
			}

			if err := grid.Fprint(cmd.OutOrStdout(), world); err != nil {
				return err
			}
			if pngPath != "" {
				w, h := world.Dimensions()
				return writePNG(pngPath, world, w*cellSize, h*cellSize, render.FillCell[int])
			}
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().IntVarP(&generations, "generations", "n", 10, "number of generations")
	cmd.Flags().IntVar(&threads, "threads", 1, "worker goroutines per generation")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while running")
	cmd.Flags().StringVar(&pngPath, "png", "", "also render the final world to this PNG file")
	cmd.Flags().IntVar(&cellSize, "cell-size", 10, "PNG cell size in pixels")
	return cmd
}

// serveMetrics exposes reg on addr and returns a function that stops the
// server.
func serveMetrics(addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	log := horton.Logger()
	go func() {
		log.Info("metrics: listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics: server failed", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func writePNG[T any](path string, g render.Source[T], w, h int, draw render.DrawFunc[*gg.Context, T]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render.PNG(f, g, w, h, draw)
}
