package dag

// traversal holds the visitation state of a single Resolve or ResolveAll
// call. It is never reused across calls.
type traversal struct {
	// onPath marks nodes on the active stack.
	onPath map[string]bool
	// resolved marks nodes already appended to order.
	resolved map[string]bool
	order    []*Node
}

// frame is one entry of an explicit depth-first stack.
type frame struct {
	node *Node
	// next is the index of the next edge to inspect.
	next int
}

func newTraversal(sizeHint int) *traversal {
	return &traversal{
		onPath:   make(map[string]bool, sizeHint),
		resolved: make(map[string]bool, sizeHint),
		order:    make([]*Node, 0, sizeHint),
	}
}

// Resolve returns start and everything reachable from it through
// dependencies, ordered so that each node appears after all of its
// dependencies. Siblings are visited in the order their edges were added,
// which makes the result deterministic.
//
// If a cycle is reachable from start, Resolve returns a
// CircularDependencyError for the first edge found to close it and no
// partial order.
func Resolve(start *Node) ([]*Node, error) {
	if start == nil {
		return nil, ErrNilNode
	}
	t := newTraversal(0)
	if err := t.visit(start); err != nil {
		return nil, err
	}
	return t.order, nil
}

// ResolveAll resolves every registered node, including disconnected
// components. Unresolved nodes are used as starting points in registration
// order, sharing one traversal so nothing is emitted twice.
func (g *Graph) ResolveAll() ([]*Node, error) {
	t := newTraversal(len(g.order))
	for _, name := range g.order {
		if t.resolved[name] {
			continue
		}
		if err := t.visit(g.nodes[name]); err != nil {
			return nil, err
		}
	}
	return t.order, nil
}

// visit runs a post-order walk from start, appending finished nodes to
// t.order.
func (t *traversal) visit(start *Node) error {
	stack := []frame{{node: start}}
	t.onPath[start.name] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.dependencies) {
			dep := top.node.dependencies[top.next]
			top.next++

			if t.resolved[dep.name] {
				continue
			}
			if t.onPath[dep.name] {
				return CircularDependencyError{
					From: top.node.name,
					To:   dep.name,
					Path: downwardCycle(stack, dep.name),
				}
			}
			t.onPath[dep.name] = true
			stack = append(stack, frame{node: dep})
			continue
		}

		n := top.node
		stack = stack[:len(stack)-1]
		delete(t.onPath, n.name)
		t.resolved[n.name] = true
		t.order = append(t.order, n)
	}
	return nil
}

// downwardCycle returns the names from the stack entry for to down to the
// top of the stack, closed with to again.
func downwardCycle(stack []frame, to string) []string {
	for i := range stack {
		if stack[i].node.name != to {
			continue
		}
		path := make([]string, 0, len(stack)-i+1)
		for _, f := range stack[i:] {
			path = append(path, f.node.name)
		}
		return append(path, to)
	}
	return nil
}
