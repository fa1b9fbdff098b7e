/*
File    : pixelscript/pixel/grid.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package pixel owns the mutable RGB pixel buffer that pixelscript
// programs read and write: the grid is created by the host before
// evaluation, handed to the evaluator as a binding, mutated in place
// during evaluation, and persisted by the host afterward. The host owns
// it exclusively for the run's duration; there is no concurrent access
// inside this package.
package pixel

import "fmt"

// Grid is a rectangular buffer of width x height RGB triples, indexed
// (x, y) with 0 <= x < Width, 0 <= y < Height.
type Grid struct {
	Width, Height int
	pix           [][3]byte // row-major: pix[y*Width+x]
}

// NewGrid allocates a black width x height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, pix: make([][3]byte, width*height)}
}

// inBounds reports whether (x, y) addresses a pixel in this grid.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At reads the pixel at (x, y). It returns an error rather than
// panicking so the evaluator can turn an out-of-range access into an
// IndexError that carries the offending AST node's position.
func (g *Grid) At(x, y int) (r, gg, b byte, err error) {
	if !g.inBounds(x, y) {
		return 0, 0, 0, fmt.Errorf("pixel (%d, %d) out of bounds for %dx%d grid", x, y, g.Width, g.Height)
	}
	p := g.pix[y*g.Width+x]
	return p[0], p[1], p[2], nil
}

// Set writes the pixel at (x, y).
func (g *Grid) Set(x, y int, r, gg, b byte) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("pixel (%d, %d) out of bounds for %dx%d grid", x, y, g.Width, g.Height)
	}
	g.pix[y*g.Width+x] = [3]byte{r, gg, b}
	return nil
}

// Snapshot captures an independent copy of the grid as it stands right
// now. Subsequent writes to g (or to the grid the snapshot came from) do
// not affect the returned Grid -- it is the reference copy used by
// makeRef/loadRef. Nothing in this package enforces
// immutability on the result; by convention only loadRef ever reads it,
// and the evaluator never exposes a write path to a snapshot.
func (g *Grid) Snapshot() *Grid {
	cp := make([][3]byte, len(g.pix))
	copy(cp, g.pix)
	return &Grid{Width: g.Width, Height: g.Height, pix: cp}
}
