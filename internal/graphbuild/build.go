// Package graphbuild turns a loaded config.Model into a dag.Graph.
package graphbuild

import (
	"context"
	"fmt"

	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/dag"
)

// Options controls how Build treats dependencies that no component declares.
type Options struct {
	// Strict makes an undeclared dependency an error instead of an external
	// leaf node.
	Strict bool
}

// External is the value of a node created for a dependency name that no
// component declares, such as a system library.
type External struct {
	Name string
}

// IsExternal reports whether n was created for an undeclared dependency.
func IsExternal(n *dag.Node) bool {
	_, ok := n.Value().(External)
	return ok
}

// ComponentOf returns the component a node was built from.
func ComponentOf(n *dag.Node) (*config.Component, bool) {
	c, ok := n.Value().(*config.Component)
	return c, ok
}

// Build constructs the dependency graph for model. Every component is
// registered first, in model order, then edges are wired in declaration
// order. Errors from the dag package are wrapped and can be matched with
// errors.As.
func Build(ctx context.Context, model *config.Model, opts Options) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "components", model.Len(), "strict", opts.Strict)

	graph := dag.New()

	// First pass: one node per declared component.
	for _, c := range model.Components {
		if err := graph.Register(dag.NewNodeWithValue(c.Name, c)); err != nil {
			return nil, fmt.Errorf("failed to register component from %s: %w", c.Source, err)
		}
	}
	logger.Debug("Build: Node creation complete.", "node_count", graph.Len())

	// Second pass: link dependencies.
	externals := 0
	for _, c := range model.Components {
		node, err := graph.Lookup(c.Name)
		if err != nil {
			return nil, err
		}
		for _, depName := range c.DependsOn {
			dep, created, err := resolveDependency(graph, depName, opts)
			if err != nil {
				return nil, fmt.Errorf("component %q depends on unknown component: %w", c.Name, err)
			}
			if created {
				externals++
				logger.Debug("Build: Added external dependency.", "name", depName, "required_by", c.Name)
			}
			if err := node.AddDependency(dep); err != nil {
				return nil, fmt.Errorf("failed to link %q to %q: %w", c.Name, depName, err)
			}
		}
	}
	logger.Debug("Build: Node linking complete.", "node_count", graph.Len(), "externals", externals)

	return graph, nil
}

// resolveDependency returns the node for name, creating an external node
// when it is missing and the build is not strict.
func resolveDependency(graph *dag.Graph, name string, opts Options) (*dag.Node, bool, error) {
	node, err := graph.Lookup(name)
	if err == nil {
		return node, false, nil
	}
	if opts.Strict {
		return nil, false, err
	}

	node = dag.NewNodeWithValue(name, External{Name: name})
	if err := graph.Register(node); err != nil {
		return nil, false, err
	}
	return node, true, nil
}
