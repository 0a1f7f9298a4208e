package app

import (
	"context"
	"fmt"

	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/dag"
	"github.com/kevindugan/dependencyTree/internal/export"
	"github.com/kevindugan/dependencyTree/internal/plan"
)

// Run loads the inputs, builds the graph and writes the result for the
// configured mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode, "target", a.config.Target)

	graph, err := a.buildGraph(ctx)
	if err != nil {
		return err
	}

	switch a.config.Mode {
	case ModeRoots:
		err = a.runRoots(ctx, graph)
	case ModeGraph:
		err = a.runGraph(ctx, graph)
	default:
		err = a.runOrder(ctx, graph)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runOrder(ctx context.Context, graph *dag.Graph) error {
	order, err := a.resolve(graph)
	if err != nil {
		return err
	}

	p := plan.NewOrder(a.config.Target, order)
	ctxlog.FromContext(ctx).Info("Build order resolved.", "components", len(order), "fingerprint", p.Fingerprint)
	return p.Write(a.outW, plan.Format(a.config.Format))
}

func (a *App) runRoots(ctx context.Context, graph *dag.Graph) error {
	node, err := graph.Lookup(a.config.Target)
	if err != nil {
		return fmt.Errorf("unknown target: %w", err)
	}
	roots, err := dag.FindRoots(node)
	if err != nil {
		return fmt.Errorf("failed to find roots of %q: %w", a.config.Target, err)
	}

	p := plan.NewRoots(a.config.Target, roots)
	ctxlog.FromContext(ctx).Info("Roots found.", "roots", len(roots))
	return p.Write(a.outW, plan.Format(a.config.Format))
}

func (a *App) runGraph(ctx context.Context, graph *dag.Graph) error {
	var opts []export.Option
	if a.config.Target != "" {
		// Restrict the export to the target and its dependencies.
		order, err := a.resolve(graph)
		if err != nil {
			return err
		}
		opts = append(opts, export.Only(order))
	}

	ctxlog.FromContext(ctx).Info("Exporting dependency graph.", "format", a.config.Format)
	return export.Write(a.outW, graph, export.Format(a.config.Format), opts...)
}

// resolve returns the build order for the target, or for the whole graph
// when no target is set.
func (a *App) resolve(graph *dag.Graph) ([]*dag.Node, error) {
	if a.config.Target == "" {
		order, err := graph.ResolveAll()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		return order, nil
	}

	node, err := graph.Lookup(a.config.Target)
	if err != nil {
		return nil, fmt.Errorf("unknown target: %w", err)
	}
	order, err := dag.Resolve(node)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", a.config.Target, err)
	}
	return order, nil
}
