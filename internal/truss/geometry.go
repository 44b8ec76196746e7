package truss

import "github.com/rlmedina/gotruss/internal/geometry"

// Stored node positions are in the drawing frame (input y negated), while
// member angles are reported in the structural y-up frame. flipY converts a
// delta between the two frames.
var flipY = geometry.New(1, -1, 1)

// ComputeLinkGeometry derives length and orientation for every link whose
// endpoints resolve. A link with a dangling endpoint name is left
// uncomputed; that is a data-quality finding for Validate, not an error
// here. The pass is a pure function of node positions and may be re-run at
// any time.
func (m *Model) ComputeLinkGeometry() {
	for _, l := range m.links {
		n1 := m.Node(l.Node1)
		n2 := m.Node(l.Node2)
		if n1 == nil || n2 == nil {
			continue
		}
		r := n2.Position.Sub(n1.Position)
		l.Length = r.Mag()
		l.AngleRad = r.Mul(flipY).AngleRad()
		l.Computed = true
	}
}
