package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/dag"
	"github.com/kevindugan/dependencyTree/internal/graphbuild"
)

// Mermaid writes g as a Mermaid flowchart. Nodes get positional aliases so
// names containing paths or punctuation stay valid.
func Mermaid(w io.Writer, g *dag.Graph, opts ...Option) error {
	o := collect(opts)

	var b strings.Builder
	b.WriteString("graph TD\n")

	aliases := make(map[string]string, g.Len())
	for _, n := range g.Nodes() {
		if !o.includes(n.Name()) {
			continue
		}
		alias := fmt.Sprintf("n%d", len(aliases))
		aliases[n.Name()] = alias
		label := escapeMermaid(n.Name())
		if graphbuild.IsExternal(n) {
			fmt.Fprintf(&b, "    %s[/\"%s\"/]\n", alias, label)
			continue
		}
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", alias, label)
	}
	for _, e := range g.Edges() {
		from, okFrom := aliases[e.From]
		to, okTo := aliases[e.To]
		if !okFrom || !okTo {
			continue
		}
		fmt.Fprintf(&b, "    %s --> %s\n", from, to)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
