// Package export renders a dependency graph for visualization tools.
package export

import (
	"fmt"
	"io"

	"github.com/kevindugan/dependencyTree/internal/dag"
)

// Format selects the output language.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

type options struct {
	only map[string]bool
}

// Option configures an export.
type Option func(*options)

// Only restricts the export to the given nodes and the edges between them.
func Only(nodes []*dag.Node) Option {
	return func(o *options) {
		o.only = make(map[string]bool, len(nodes))
		for _, n := range nodes {
			o.only[n.Name()] = true
		}
	}
}

func (o *options) includes(name string) bool {
	return o.only == nil || o.only[name]
}

// Write renders g to w in the given format. Edges point from a component to
// the component it depends on.
func Write(w io.Writer, g *dag.Graph, format Format, opts ...Option) error {
	switch format {
	case FormatDOT:
		return DOT(w, g, opts...)
	case FormatMermaid:
		return Mermaid(w, g, opts...)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func collect(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
