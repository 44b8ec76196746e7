package truss

// Link is a member connecting two named nodes. Length and AngleRad are
// derived by the geometry engine, never parsed; Computed marks whether the
// pair has been set.
type Link struct {
	Name  string
	Node1 string
	Node2 string

	Length   float64
	AngleRad float64
	Computed bool
}

// Equal compares endpoints and derived geometry. The link name deliberately
// does not participate: two links joining the same nodes with the same
// geometry are equal regardless of what they are called. Uncomputed links
// compare equal on endpoints alone.
func (l *Link) Equal(o *Link) bool {
	if o == nil {
		return false
	}
	if l.Node1 != o.Node1 || l.Node2 != o.Node2 {
		return false
	}
	if l.Computed != o.Computed {
		return false
	}
	if !l.Computed {
		return true
	}
	return l.Length == o.Length && l.AngleRad == o.AngleRad
}
