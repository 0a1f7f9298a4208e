package dag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilNode is returned when a nil *Node is passed to the graph API.
var ErrNilNode = errors.New("dag: node is nil")

// DuplicateNodeError means a node with the same name is already registered.
type DuplicateNodeError struct {
	Name string
}

func (e DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q already exists in graph", e.Name)
}

// NodeNotFoundError means no node with the given name is registered.
type NodeNotFoundError struct {
	Name string
}

func (e NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %q not found in graph", e.Name)
}

// SelfDependencyError means a node was asked to depend on itself.
type SelfDependencyError struct {
	Name string
}

func (e SelfDependencyError) Error() string {
	return fmt.Sprintf("node %q cannot depend on itself", e.Name)
}

// CircularDependencyError identifies the edge that closed a cycle: From
// depends on To, and To was already waiting on From further up the chain.
// Path, when set, lists the cycle starting and ending at To.
type CircularDependencyError struct {
	From string
	To   string
	Path []string
}

func (e CircularDependencyError) Error() string {
	msg := fmt.Sprintf("circular dependency detected: %s => %s", e.From, e.To)
	if len(e.Path) > 0 {
		msg += " (" + strings.Join(e.Path, " -> ") + ")"
	}
	return msg
}
