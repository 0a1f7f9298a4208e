package app

import (
	"context"
	"fmt"

	"github.com/kevindugan/dependencyTree/internal/ctxlog"
	"github.com/kevindugan/dependencyTree/internal/dag"
	"github.com/kevindugan/dependencyTree/internal/graphbuild"
)

// buildGraph loads every input and turns the merged model into a graph.
func (a *App) buildGraph(ctx context.Context) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading inputs...", "inputs", a.config.Inputs)

	model, err := a.loader.Load(ctx, a.config.Inputs...)
	if err != nil {
		return nil, fmt.Errorf("failed to load inputs: %w", err)
	}
	logger.Info("Inputs loaded successfully.", "components_found", model.Len())

	graph, err := graphbuild.Build(ctx, model, graphbuild.Options{Strict: a.config.Strict})
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}
	logger.Debug("Dependency graph built.", "node_count", graph.Len())
	return graph, nil
}
