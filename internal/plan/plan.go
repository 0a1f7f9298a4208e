// Package plan captures the result of a resolution run in a form that can be
// printed or serialized.
package plan

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/kevindugan/dependencyTree/internal/dag"
	"github.com/kevindugan/dependencyTree/internal/graphbuild"
)

// Mode names the traversal a plan was produced by.
type Mode string

const (
	// ModeOrder is a dependency-respecting build order.
	ModeOrder Mode = "order"
	// ModeRoots is the set of root ancestors of a target.
	ModeRoots Mode = "roots"
)

// Entry is one component in a plan.
type Entry struct {
	Name     string `json:"name"`
	External bool   `json:"external,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Plan is the outcome of resolving a target. Order is set in ModeOrder and
// Roots in ModeRoots. An empty Target means the whole graph was resolved.
type Plan struct {
	Target      string  `json:"target,omitempty"`
	Mode        Mode    `json:"mode"`
	Order       []Entry `json:"order,omitempty"`
	Roots       []Entry `json:"roots,omitempty"`
	Fingerprint string  `json:"fingerprint"`
}

// NewOrder builds a ModeOrder plan from resolved nodes.
func NewOrder(target string, nodes []*dag.Node) *Plan {
	p := &Plan{Target: target, Mode: ModeOrder, Order: entries(nodes)}
	p.Fingerprint = p.ComputeFingerprint()
	return p
}

// NewRoots builds a ModeRoots plan from the roots found for target.
func NewRoots(target string, nodes []*dag.Node) *Plan {
	p := &Plan{Target: target, Mode: ModeRoots, Roots: entries(nodes)}
	p.Fingerprint = p.ComputeFingerprint()
	return p
}

// Entries returns the entries for the plan's mode.
func (p *Plan) Entries() []Entry {
	if p.Mode == ModeRoots {
		return p.Roots
	}
	return p.Order
}

// Names returns the component names for the plan's mode, in plan order.
func (p *Plan) Names() []string {
	entries := p.Entries()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

// ComputeFingerprint hashes the plan's mode, target and names. Two runs over
// unchanged inputs produce the same fingerprint, so it can be compared to
// detect a changed build order.
func (p *Plan) ComputeFingerprint() string {
	type hashablePlan struct {
		Target string   `json:"target"`
		Mode   Mode     `json:"mode"`
		Names  []string `json:"names"`
	}

	data, err := json.Marshal(hashablePlan{Target: p.Target, Mode: p.Mode, Names: p.Names()})
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", xxhash.Sum64(data))
}

func entries(nodes []*dag.Node) []Entry {
	out := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		e := Entry{Name: n.Name(), External: graphbuild.IsExternal(n)}
		if c, ok := graphbuild.ComponentOf(n); ok {
			e.Source = c.Source
		}
		out = append(out, e)
	}
	return out
}
