/*
File    : pixelscript/objects/grid_values.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import "github.com/akashmaji946/pixelscript/pixel"

// GridHandle is the `pixels` binding: a mutable handle onto the host's
// pixel.Grid. Index reads and rgb(...)-writes both go through this handle.
type GridHandle struct {
	Grid *pixel.Grid
}

func (g *GridHandle) Type() ValueType { return GridType }
func (g *GridHandle) String() string {
	return "<pixels>"
}

// RefHandle is the value makeRef() returns: an immutable snapshot of the
// grid as it stood at capture time.
type RefHandle struct {
	Grid *pixel.Grid
}

func (r *RefHandle) Type() ValueType { return RefType }
func (r *RefHandle) String() string {
	return "<ref>"
}
