package truss

import "github.com/rlmedina/gotruss/internal/geometry"

// Node is a named joint of the truss. Positions are stored in the drawing
// frame: the input y coordinate is negated at parse time so renderers can
// consume them directly.
type Node struct {
	Name     string
	Position geometry.Vec3
}

// Equal reports whether both nodes share the same name and the exact same
// position.
func (n *Node) Equal(o *Node) bool {
	if o == nil {
		return false
	}
	return n.Name == o.Name && n.Position == o.Position
}
