package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentultra/horton/grid"
)

func gridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Build and inspect grids",
	}
	cmd.AddCommand(gridPprintCmd())
	return cmd
}

func gridPprintCmd() *cobra.Command {
	var (
		width, height int
		values        string
		torus         bool
	)

	cmd := &cobra.Command{
		Use:   "pprint",
		Short: "Print a grid, optionally filled from a row-major value list",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGrid(width, height, values, torus)
			if err != nil {
				return err
			}
			return grid.Fprint(cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().IntVar(&width, "width", 3, "grid width")
	cmd.Flags().IntVar(&height, "height", 3, "grid height")
	cmd.Flags().StringVar(&values, "values", "", "comma-separated integers in row-major order")
	cmd.Flags().BoolVar(&torus, "torus", false, "wrap coordinates")
	return cmd
}

func buildGrid(width, height int, values string, torus bool) (*grid.Grid[int], error) {
	var opts []grid.Option[int]
	if torus {
		opts = append(opts, grid.WithWrap[int]())
	}
	if values == "" {
		return grid.New(width, height, opts...)
	}

	fields := strings.Split(values, ",")
	cells := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		cells[i] = v
	}
	return grid.FromSlice(width, height, cells, opts...)
}
