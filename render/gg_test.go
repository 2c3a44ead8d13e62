package render

import (
	"bytes"
	"image/png"
	"math/rand/v2"
	"testing"

	"github.com/agentultra/horton/grid"
	"github.com/agentultra/horton/maze"
)

func isDark(r, g, b uint32) bool  { return r < 0x4000 && g < 0x4000 && b < 0x4000 }
func isLight(r, g, b uint32) bool { return r > 0xc000 && g > 0xc000 && b > 0xc000 }

func TestFillCellPNG(t *testing.T) {
	g, _ := grid.New[int](2, 2)
	_ = g.Set(1, 1, 1)

	var buf bytes.Buffer
	if err := PNG(&buf, g, 40, 40, FillCell[int]); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("image size = %v, want 40x40", b)
	}
	if r, gr, b, _ := img.At(30, 30).RGBA(); !isDark(r, gr, b) {
		t.Errorf("live cell pixel = (%x, %x, %x), want dark", r, gr, b)
	}
	if r, gr, b, _ := img.At(10, 10).RGBA(); !isLight(r, gr, b) {
		t.Errorf("dead cell pixel = (%x, %x, %x), want light", r, gr, b)
	}
}

func TestDrawMazeCell(t *testing.T) {
	m, _ := maze.Backtrack(4, 4, rand.New(rand.NewPCG(1, 2)))
	dc := NewCanvas(80, 80)
	defer dc.Close()
	if err := Grid(dc, m, 0, 0, 80, 80, DrawMazeCell); err != nil {
		t.Fatal(err)
	}
	img := dc.Image()
	if r, g, b, _ := img.At(10, 0).RGBA(); !isDark(r, g, b) {
		t.Errorf("outer wall pixel = (%x, %x, %x), want dark", r, g, b)
	}
	if r, g, b, _ := img.At(10, 10).RGBA(); !isLight(r, g, b) {
		t.Errorf("cell interior pixel = (%x, %x, %x), want light", r, g, b)
	}
}
