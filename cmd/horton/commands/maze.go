package commands

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentultra/horton/grid"
	"github.com/agentultra/horton/maze"
	"github.com/agentultra/horton/render"
)

func mazeCmd() *cobra.Command {
	var (
		width, height int
		algo          string
		seed          uint64
		solve         bool
		tiles         bool
		pngPath       string
		cellSize      int
	)

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a maze and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			generate, ok := maze.Algorithms[algo]
			if !ok {
				return fmt.Errorf("unknown algorithm %q (want %s)", algo, strings.Join(maze.AlgorithmNames(), ", "))
			}
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

			m, err := generate(width, height, rng)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if tiles {
				if err := printTiles(cmd, m, solve); err != nil {
					return err
				}
			} else {
				if err := grid.Fprint(out, m); err != nil {
					return err
				}
				if solve {
					path, err := maze.Solve(m, grid.Coord{}, grid.Coord{X: width - 1, Y: height - 1})
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "path (%d steps): %v\n", len(path)-1, path)
				}
			}

			if pngPath != "" {
				return writePNG(pngPath, m, width*cellSize, height*cellSize, render.DrawMazeCell)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 10, "maze width in cells")
	cmd.Flags().IntVar(&height, "height", 10, "maze height in cells")
	cmd.Flags().StringVar(&algo, "algo", "backtrack", "generator ("+strings.Join(maze.AlgorithmNames(), ", ")+")")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&solve, "solve", false, "solve from the top-left to the bottom-right cell")
	cmd.Flags().BoolVar(&tiles, "tiles", false, "print as a wall/floor tile map")
	cmd.Flags().StringVar(&pngPath, "png", "", "also render the maze to this PNG file")
	cmd.Flags().IntVar(&cellSize, "cell-size", 20, "PNG cell size in pixels")
	return cmd
}

// printTiles prints m as tiles, marking the solution path with 'o' when
// solve is set.
func printTiles(cmd *cobra.Command, m *grid.Grid[maze.Cell], solve bool) error {
	t := maze.Tiles(m)
	var path []grid.Coord
	if solve {
		tw, th := t.Dimensions()
		var err error
		path, err = maze.SolveTiles(t, grid.Coord{X: 1, Y: 1}, grid.Coord{X: tw - 2, Y: th - 2})
		if err != nil {
			return err
		}
	}

	tw, th := t.Dimensions()
	marked, err := grid.New[string](tw, th)
	if err != nil {
		return err
	}
	for c, tile := range t.Items() {
		s := tile.String()
		if slices.Contains(path, c) {
			s = "o"
		}
		_ = marked.Put(c, s)
	}
	return grid.Fprint(cmd.OutOrStdout(), marked)
}
