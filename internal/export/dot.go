package export

import (
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/kevindugan/dependencyTree/internal/dag"
	"github.com/kevindugan/dependencyTree/internal/graphbuild"
)

// dotTemplate follows the layout of dominikbraun/graph/draw, with vertices
// and edges listed in the order given instead of map order.
const dotTemplate = `strict digraph {
{{range $k, $v := .Attributes}}	{{$k}}="{{$v}}";
{{end}}{{range .Vertices}}	"{{.Name}}" [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}}weight={{.Weight}} ];
{{end}}{{range .Edges}}	"{{.From}}" -> "{{.To}}" [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}", {{end}}weight={{.Weight}} ];
{{end}}}
`

var dotTmpl = template.Must(template.New("dot").Parse(dotTemplate))

type dotDescription struct {
	Attributes map[string]string
	Vertices   []dotVertex
	Edges      []dotEdge
}

type dotVertex struct {
	Name       string
	Weight     int
	Attributes map[string]string
}

type dotEdge struct {
	From, To   string
	Weight     int
	Attributes map[string]string
}

// DOT writes g in the Graphviz DOT language. External dependencies are drawn
// as dashed boxes. Vertices appear in registration order and edges in
// insertion order, so the same graph always renders to the same bytes.
func DOT(w io.Writer, g *dag.Graph, opts ...Option) error {
	o := collect(opts)
	dg := graph.New(graph.StringHash, graph.Directed())

	var names []string
	for _, n := range g.Nodes() {
		if !o.includes(n.Name()) {
			continue
		}
		var attrs []func(*graph.VertexProperties)
		if graphbuild.IsExternal(n) {
			attrs = append(attrs,
				graph.VertexAttribute("shape", "box"),
				graph.VertexAttribute("style", "dashed"),
			)
		}
		if err := dg.AddVertex(n.Name(), attrs...); err != nil {
			return fmt.Errorf("failed to add vertex %s: %w", n.Name(), err)
		}
		names = append(names, n.Name())
	}

	var edges []dag.Edge
	for _, e := range g.Edges() {
		if !o.includes(e.From) || !o.includes(e.To) {
			continue
		}
		err := dg.AddEdge(e.From, e.To)
		if errors.Is(err, graph.ErrEdgeAlreadyExists) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to add edge %s -> %s: %w", e.From, e.To, err)
		}
		edges = append(edges, e)
	}

	desc, err := describe(dg, names, edges)
	if err != nil {
		return err
	}
	return dotTmpl.Execute(w, desc)
}

// describe reads vertex and edge properties back from dg in the given order.
func describe(dg graph.Graph[string, string], names []string, edges []dag.Edge) (dotDescription, error) {
	desc := dotDescription{Attributes: map[string]string{"rankdir": "LR"}}

	for _, name := range names {
		_, props, err := dg.VertexWithProperties(name)
		if err != nil {
			return desc, fmt.Errorf("failed to read vertex %s: %w", name, err)
		}
		desc.Vertices = append(desc.Vertices, dotVertex{Name: name, Weight: props.Weight, Attributes: props.Attributes})
	}
	for _, e := range edges {
		edge, err := dg.Edge(e.From, e.To)
		if err != nil {
			return desc, fmt.Errorf("failed to read edge %s -> %s: %w", e.From, e.To, err)
		}
		desc.Edges = append(desc.Edges, dotEdge{
			From:       e.From,
			To:         e.To,
			Weight:     edge.Properties.Weight,
			Attributes: edge.Properties.Attributes,
		})
	}
	return desc, nil
}
