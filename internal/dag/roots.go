package dag

// FindRoots follows dependents upwards from n and returns every node reached
// that has no dependents of its own. Each root appears once, in the order it
// was first discovered. A node nothing depends on is its own root.
//
// The walk is guarded the same way as Resolve: if a cycle is reachable
// through dependents it fails with a CircularDependencyError whose From
// depends on To, instead of looping.
func FindRoots(n *Node) ([]*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	var roots []*Node
	onPath := map[string]bool{n.name: true}
	done := make(map[string]bool)
	stack := []frame{{node: n}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.dependents) {
			parent := top.node.dependents[top.next]
			top.next++

			if done[parent.name] {
				continue
			}
			if onPath[parent.name] {
				return nil, CircularDependencyError{
					From: parent.name,
					To:   top.node.name,
					Path: upwardCycle(stack, parent.name),
				}
			}
			onPath[parent.name] = true
			stack = append(stack, frame{node: parent})
			continue
		}

		cur := top.node
		stack = stack[:len(stack)-1]
		delete(onPath, cur.name)
		done[cur.name] = true
		if cur.IsRoot() {
			roots = append(roots, cur)
		}
	}
	return roots, nil
}

// upwardCycle turns an upward stack into the equivalent dependency-order
// cycle. Every entry depends on the one below it and from depends on the
// top entry, so the stack is read back to front, starting and ending at the
// top node.
func upwardCycle(stack []frame, from string) []string {
	for i := range stack {
		if stack[i].node.name != from {
			continue
		}
		top := stack[len(stack)-1].node.name
		path := make([]string, 0, len(stack)-i+1)
		for j := len(stack) - 1; j >= i; j-- {
			path = append(path, stack[j].node.name)
		}
		return append(path, top)
	}
	return nil
}
