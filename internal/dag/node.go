package dag

// NewNode creates a node with the given name and no edges.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// NewNodeWithValue creates a node carrying an arbitrary payload.
func NewNodeWithValue(name string, value any) *Node {
	return &Node{name: name, value: value}
}

// Name returns the node's identifier.
func (n *Node) Name() string {
	return n.name
}

// Value returns the payload attached at construction, or nil.
func (n *Node) Value() any {
	return n.value
}

// Dependencies returns a copy of the nodes n depends on, in insertion order.
func (n *Node) Dependencies() []*Node {
	return append([]*Node(nil), n.dependencies...)
}

// Dependents returns a copy of the nodes that depend on n, in insertion order.
func (n *Node) Dependents() []*Node {
	return append([]*Node(nil), n.dependents...)
}

// IsRoot reports whether nothing depends on n.
func (n *Node) IsRoot() bool {
	return len(n.dependents) == 0
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.name
}

// AddDependency records that n depends on other. Both ends of the edge are
// updated together. Adding the same edge twice is a no-op, and a node may
// not depend on itself.
func (n *Node) AddDependency(other *Node) error {
	if n == nil || other == nil {
		return ErrNilNode
	}
	if other.name == n.name {
		return SelfDependencyError{Name: n.name}
	}
	for _, dep := range n.dependencies {
		if dep.name == other.name {
			return nil
		}
	}

	n.dependencies = append(n.dependencies, other)
	other.dependents = append(other.dependents, n)
	return nil
}
