// Package truss defines the in-memory model of a planar pin-jointed truss
// and the derived-geometry pass over its members.
package truss

// Model is a fully parsed truss: title, material, and the ordered node and
// link collections. A model is built from scratch on every import; nothing
// is merged across imports.
type Model struct {
	Title    string
	Material Material

	nodes     []*Node
	nodeIndex map[string]*Node
	links     []*Link

	// Node names whose re-definition at a different position was
	// discarded. Surfaced by Validate, never fatal here.
	conflicts []string
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{
		nodeIndex: make(map[string]*Node),
	}
}

// AddNode inserts a node under its name and reports whether it was added.
// The first definition of a name wins; a later node with the same name is
// discarded, and if its position differs from the retained one the conflict
// is recorded for Validate.
func (m *Model) AddNode(n *Node) bool {
	if prev, ok := m.nodeIndex[n.Name]; ok {
		if prev.Position != n.Position {
			m.conflicts = append(m.conflicts, n.Name)
		}
		return false
	}
	m.nodeIndex[n.Name] = n
	m.nodes = append(m.nodes, n)
	return true
}

// AddLink appends a link. Links are never deduplicated; repeated names are
// allowed.
func (m *Model) AddLink(l *Link) {
	m.links = append(m.links, l)
}

// Node returns the node with the given name, or nil.
func (m *Model) Node(name string) *Node {
	return m.nodeIndex[name]
}

// HasNode reports whether a node with the given name exists.
func (m *Model) HasNode(name string) bool {
	return m.nodeIndex[name] != nil
}

// Nodes returns the nodes in insertion order.
func (m *Model) Nodes() []*Node {
	return m.nodes
}

// Links returns the links in insertion order.
func (m *Model) Links() []*Link {
	return m.links
}
