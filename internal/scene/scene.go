// Package scene exposes the read-only drawing data handed to external
// renderers. The core computes nothing visual: a renderer receives node
// points, member segments, and derived geometry, and maps them to grids,
// shapes, and colors however it likes. Snapshots are value copies, so a
// renderer cannot alter model state through one.
package scene

import (
	"github.com/rlmedina/gotruss/internal/geometry"
	"github.com/rlmedina/gotruss/internal/truss"
)

// Point is a node as a renderer sees it: a label and drawing-frame
// coordinates (input y already negated).
type Point struct {
	Name string
	X, Y float64
}

// Segment is a member as a renderer sees it: endpoint positions in the
// drawing frame plus the derived geometry. AngleRad is measured in the
// structural y-up frame.
type Segment struct {
	Name     string
	P1, P2   geometry.Vec3
	Length   float64
	AngleRad float64
	Computed bool
}

// Snapshot is the drawable state of one model.
type Snapshot struct {
	Title   string
	Nodes   []Point
	Members []Segment
}

// Build captures the drawable state of a model. Links with an unresolvable
// endpoint are omitted; without both endpoints there is nothing to draw.
func Build(m *truss.Model) Snapshot {
	snap := Snapshot{Title: m.Title}

	for _, n := range m.Nodes() {
		snap.Nodes = append(snap.Nodes, Point{Name: n.Name, X: n.Position.X, Y: n.Position.Y})
	}

	for _, l := range m.Links() {
		n1 := m.Node(l.Node1)
		n2 := m.Node(l.Node2)
		if n1 == nil || n2 == nil {
			continue
		}
		snap.Members = append(snap.Members, Segment{
			Name:     l.Name,
			P1:       n1.Position,
			P2:       n2.Position,
			Length:   l.Length,
			AngleRad: l.AngleRad,
			Computed: l.Computed,
		})
	}

	return snap
}
