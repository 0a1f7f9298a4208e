package dag

// Node is a single named component in the dependency graph.
//
// Identity is the name: two nodes are the same component if their names are
// equal. Edges are kept twice, once on each end, so the graph can be walked
// both downwards (dependencies) and upwards (dependents).
type Node struct {
	// name is the unique identifier for the node within a Graph.
	name string
	// value is an optional payload supplied by the loader.
	value any
	// dependencies holds the nodes this node depends on, in the order the
	// edges were added.
	dependencies []*Node
	// dependents holds the nodes that depend on this node. It is only an
	// index for upward traversal.
	dependents []*Node
}

// Graph is a collection of uniquely named nodes.
type Graph struct {
	// nodes stores every registered node, keyed by name.
	nodes map[string]*Node
	// order records registration order for deterministic iteration.
	order []string
}

// Edge is a single "From depends on To" relation.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}
