package life

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/agentultra/horton/grid"
)

// ErrInvalidCell indicates a seed character that is neither alive nor dead.
var ErrInvalidCell = errors.New("life: invalid cell")

// Parse reads a seed world. Each non-empty line is a row; '1', 'O', 'o',
// '#' and '*' are alive, '0', '.' and '-' are dead, and blanks between cells
// are ignored. Lines starting with '!' are comments. The output of
// grid.Fprint on a world parses back to the same world.
func Parse(r io.Reader, opts ...grid.Option[int]) (*grid.Grid[int], error) {
	var (
		cells []int
		width int
		rows  int
	)

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "!") {
			continue
		}

		n := 0
		for _, ch := range text {
			switch ch {
			case ' ', '\t':
				continue
			case '1', 'O', 'o', '#', '*':
				cells = append(cells, Alive)
			case '0', '.', '-':
				cells = append(cells, Dead)
			default:
				return nil, fmt.Errorf("%w: %q on line %d", ErrInvalidCell, ch, line)
			}
			n++
		}

		if rows == 0 {
			width = n
		} else if n != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", grid.ErrShapeMismatch, line, n, width)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return grid.FromSlice(width, rows, cells, opts...)
}

// Patterns holds a few well-known seeds by name.
var Patterns = map[string]string{
	"blinker": `
.....
.....
.OOO.
.....
.....
`,
	"toad": `
......
......
..OOO.
.OOO..
......
......
`,
	"beacon": `
......
.OO...
.OO...
...OO.
...OO.
......
`,
	"glider": `
.O......
..O.....
OOO.....
........
........
........
........
........
`,
	"block": `
....
.OO.
.OO.
....
`,
}
