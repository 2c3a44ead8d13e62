package grid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Fprint writes g to w as rows of space-separated values, one row per y,
// top row first.
func Fprint[T any](w io.Writer, g *Grid[T]) error {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g.cells[y*g.width+x])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Pprint writes g to standard output.
func Pprint[T any](g *Grid[T]) error {
	return Fprint(os.Stdout, g)
}

func (g *Grid[T]) String() string {
	var b strings.Builder
	_ = Fprint(&b, g)
	return b.String()
}
