package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoots_SingleRoot(t *testing.T) {
	// Graph (x -> y means x depends on y)
	//
	//	a -> b, a -> d
	//	b -> c, b -> e
	//	c -> d, c -> e
	g := buildGraph(t, [][2]string{
		{"a", "b"}, {"a", "d"},
		{"b", "c"}, {"b", "e"},
		{"c", "d"}, {"c", "e"},
	}, "a", "b", "c", "d", "e")

	roots, err := FindRoots(mustLookup(t, g, "e"))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Same(t, mustLookup(t, g, "a"), roots[0])
}

func TestFindRoots_Cases(t *testing.T) {
	testCases := []struct {
		name     string
		nodes    []string
		edges    [][2]string
		from     string
		expected []string
	}{
		{
			name:     "node without dependents is its own root",
			nodes:    []string{"a", "b"},
			edges:    [][2]string{{"a", "b"}},
			from:     "a",
			expected: []string{"a"},
		},
		{
			name:     "multiple roots in discovery order",
			nodes:    []string{"app", "tool", "test", "core"},
			edges:    [][2]string{{"app", "core"}, {"tool", "core"}, {"test", "core"}},
			from:     "core",
			expected: []string{"app", "tool", "test"},
		},
		{
			name:  "root reached through several paths appears once",
			nodes: []string{"app", "left", "right", "base"},
			edges: [][2]string{
				{"app", "left"}, {"app", "right"},
				{"left", "base"}, {"right", "base"},
			},
			from:     "base",
			expected: []string{"app"},
		},
		{
			name:  "mixed depths",
			nodes: []string{"app", "lib", "util", "cli"},
			edges: [][2]string{
				{"app", "lib"}, {"lib", "util"}, {"cli", "util"},
			},
			from:     "util",
			expected: []string{"app", "cli"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.edges, tc.nodes...)
			roots, err := FindRoots(mustLookup(t, g, tc.from))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, names(roots))
			for _, r := range roots {
				assert.Empty(t, r.Dependents(), "root %s must have no dependents", r.Name())
			}
		})
	}
}

func TestFindRoots_Cycle(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}, "a", "b", "c")

	roots, err := FindRoots(mustLookup(t, g, "c"))
	assert.Nil(t, roots)

	var cycleErr CircularDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, "c", cycleErr.From)
	assert.Equal(t, "a", cycleErr.To)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycleErr.Path)
}

func TestFindRoots_CycleAboveRoot(t *testing.T) {
	// The x <-> y loop sits between base and the real root.
	g := buildGraph(t, [][2]string{
		{"top", "x"}, {"x", "y"}, {"y", "x"}, {"y", "base"},
	}, "top", "x", "y", "base")

	_, err := FindRoots(mustLookup(t, g, "base"))
	var cycleErr CircularDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, "y", cycleErr.From)
	assert.Equal(t, "x", cycleErr.To)
}

func TestFindRoots_Nil(t *testing.T) {
	_, err := FindRoots(nil)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestFindRoots_AllRootsAreGraphRoots(t *testing.T) {
	g := buildGraph(t, walkEdges, "a", "b", "c", "d", "e")
	graphRoots := names(g.Roots())

	for _, n := range g.Nodes() {
		roots, err := FindRoots(n)
		require.NoError(t, err)
		for _, r := range roots {
			assert.Contains(t, graphRoots, r.Name())
		}
	}
}
