package dag

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
	}
}

// Register adds n to the graph. It fails with DuplicateNodeError if the name
// is taken, in which case the graph is left untouched.
func (g *Graph) Register(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, ok := g.nodes[n.name]; ok {
		return DuplicateNodeError{Name: n.name}
	}

	g.nodes[n.name] = n
	g.order = append(g.order, n.name)
	return nil
}

// Lookup returns the node registered under name.
func (g *Graph) Lookup(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, NodeNotFoundError{Name: name}
	}
	return n, nil
}

// Has reports whether a node named name is registered.
func (g *Graph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns every registered node in registration order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, name := range g.order {
		nodes = append(nodes, g.nodes[name])
	}
	return nodes
}

// Roots returns the registered nodes that nothing depends on, in
// registration order.
func (g *Graph) Roots() []*Node {
	var roots []*Node
	for _, name := range g.order {
		if n := g.nodes[name]; n.IsRoot() {
			roots = append(roots, n)
		}
	}
	return roots
}

// Edges lists every dependency edge, grouped by source node in registration
// order and by insertion order within a node.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, name := range g.order {
		for _, dep := range g.nodes[name].dependencies {
			edges = append(edges, Edge{From: name, To: dep.name})
		}
	}
	return edges
}
