package dag

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Graph (x -> y means x depends on y)
//
//	a -> b, a -> d, a -> c
//	b -> c, b -> e
//	c -> d, c -> e
var walkEdges = [][2]string{
	{"a", "b"}, {"a", "d"}, {"a", "c"},
	{"b", "c"}, {"b", "e"},
	{"c", "d"}, {"c", "e"},
}

func TestResolve_WalkTree(t *testing.T) {
	g := buildGraph(t, walkEdges, "a", "b", "c", "d", "e")

	order, err := Resolve(mustLookup(t, g, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e", "c", "b", "a"}, names(order))
}

func TestResolve_CircularDependency(t *testing.T) {
	edges := append(append([][2]string(nil), walkEdges...), [2]string{"d", "b"})
	g := buildGraph(t, edges, "a", "b", "c", "d", "e")

	order, err := Resolve(mustLookup(t, g, "a"))
	assert.Nil(t, order)

	var cycleErr CircularDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, "d", cycleErr.From)
	assert.Equal(t, "b", cycleErr.To)
	assert.Equal(t, []string{"b", "c", "d", "b"}, cycleErr.Path)
}

func TestResolve_Cases(t *testing.T) {
	testCases := []struct {
		name     string
		nodes    []string
		edges    [][2]string
		start    string
		expected []string
	}{
		{
			name:     "isolated node",
			nodes:    []string{"a"},
			start:    "a",
			expected: []string{"a"},
		},
		{
			name:     "linear chain",
			nodes:    []string{"a", "b", "c"},
			edges:    [][2]string{{"a", "b"}, {"b", "c"}},
			start:    "a",
			expected: []string{"c", "b", "a"},
		},
		{
			name:     "diamond visits shared dependency once",
			nodes:    []string{"top", "left", "right", "base"},
			edges:    [][2]string{{"top", "left"}, {"top", "right"}, {"left", "base"}, {"right", "base"}},
			start:    "top",
			expected: []string{"base", "left", "right", "top"},
		},
		{
			name:     "only reachable nodes are returned",
			nodes:    []string{"a", "b", "c", "unrelated"},
			edges:    [][2]string{{"a", "b"}, {"c", "a"}, {"unrelated", "b"}},
			start:    "a",
			expected: []string{"b", "a"},
		},
		{
			name:     "sibling order follows edge insertion",
			nodes:    []string{"app", "zlib", "curl", "ssl"},
			edges:    [][2]string{{"app", "zlib"}, {"app", "curl"}, {"app", "ssl"}},
			start:    "app",
			expected: []string{"zlib", "curl", "ssl", "app"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.edges, tc.nodes...)
			order, err := Resolve(mustLookup(t, g, tc.start))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, names(order))
		})
	}
}

func TestResolve_CycleCases(t *testing.T) {
	testCases := []struct {
		name         string
		nodes        []string
		edges        [][2]string
		start        string
		expectedFrom string
		expectedTo   string
	}{
		{
			name:         "two node cycle",
			nodes:        []string{"a", "b"},
			edges:        [][2]string{{"a", "b"}, {"b", "a"}},
			start:        "a",
			expectedFrom: "b",
			expectedTo:   "a",
		},
		{
			name:         "cycle below the start node",
			nodes:        []string{"app", "x", "y", "z"},
			edges:        [][2]string{{"app", "x"}, {"x", "y"}, {"y", "z"}, {"z", "x"}},
			start:        "app",
			expectedFrom: "z",
			expectedTo:   "x",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.edges, tc.nodes...)
			_, err := Resolve(mustLookup(t, g, tc.start))

			var cycleErr CircularDependencyError
			require.ErrorAs(t, err, &cycleErr)
			assert.Equal(t, tc.expectedFrom, cycleErr.From)
			assert.Equal(t, tc.expectedTo, cycleErr.To)
			assert.Equal(t, tc.expectedTo, cycleErr.Path[0])
			assert.Equal(t, tc.expectedTo, cycleErr.Path[len(cycleErr.Path)-1])
		})
	}
}

func TestResolve_UnreachableCycleIsIgnored(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}, {"x", "y"}, {"y", "x"}}, "a", "b", "x", "y")

	order, err := Resolve(mustLookup(t, g, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, names(order))
}

func TestResolve_Nil(t *testing.T) {
	_, err := Resolve(nil)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestResolve_StateIsNotShared(t *testing.T) {
	g := buildGraph(t, walkEdges, "a", "b", "c", "d", "e")

	first, err := Resolve(mustLookup(t, g, "c"))
	require.NoError(t, err)
	second, err := Resolve(mustLookup(t, g, "a"))
	require.NoError(t, err)
	third, err := Resolve(mustLookup(t, g, "a"))
	require.NoError(t, err)

	assert.Equal(t, []string{"d", "e", "c"}, names(first))
	assert.Equal(t, []string{"d", "e", "c", "b", "a"}, names(second))
	assert.Equal(t, names(second), names(third))
}

func TestResolve_DeepChain(t *testing.T) {
	const depth = 100000
	g := New()
	var prev *Node
	for i := 0; i < depth; i++ {
		n := NewNode(fmt.Sprintf("n%d", i))
		require.NoError(t, g.Register(n))
		if prev != nil {
			require.NoError(t, prev.AddDependency(n))
		}
		prev = n
	}

	order, err := Resolve(mustLookup(t, g, "n0"))
	require.NoError(t, err)
	require.Len(t, order, depth)
	assert.Equal(t, fmt.Sprintf("n%d", depth-1), order[0].Name())
	assert.Equal(t, "n0", order[depth-1].Name())
}

func TestResolveAll(t *testing.T) {
	t.Run("covers disconnected components", func(t *testing.T) {
		g := buildGraph(t, [][2]string{{"a", "b"}, {"x", "y"}, {"y", "b"}}, "a", "x", "y", "b", "solo")

		order, err := g.ResolveAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "y", "x", "solo"}, names(order))
	})

	t.Run("empty graph", func(t *testing.T) {
		order, err := New().ResolveAll()
		require.NoError(t, err)
		assert.Empty(t, order)
	})

	t.Run("cycle anywhere fails", func(t *testing.T) {
		g := buildGraph(t, [][2]string{{"a", "b"}, {"x", "y"}, {"y", "x"}}, "a", "b", "x", "y")

		order, err := g.ResolveAll()
		assert.Nil(t, order)
		var cycleErr CircularDependencyError
		require.ErrorAs(t, err, &cycleErr)
		assert.Equal(t, "y", cycleErr.From)
		assert.Equal(t, "x", cycleErr.To)
	})
}

func TestResolve_RandomAcyclicGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		size := 2 + rng.Intn(30)
		g := New()
		for i := 0; i < size; i++ {
			require.NoError(t, g.Register(NewNode(fmt.Sprintf("n%d", i))))
		}
		// Edges only point from lower to higher indices, so the graph is acyclic.
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				if rng.Intn(4) == 0 {
					from := mustLookup(t, g, fmt.Sprintf("n%d", i))
					require.NoError(t, from.AddDependency(mustLookup(t, g, fmt.Sprintf("n%d", j))))
				}
			}
		}

		start := mustLookup(t, g, "n0")
		order, err := Resolve(start)
		require.NoError(t, err)

		position := make(map[string]int, len(order))
		for i, n := range order {
			_, dup := position[n.Name()]
			require.False(t, dup, "node %s emitted twice", n.Name())
			position[n.Name()] = i
		}

		// Every reachable node is present and every edge points backwards.
		reachable := reachableFrom(start)
		assert.Len(t, order, len(reachable))
		for name := range reachable {
			n := mustLookup(t, g, name)
			for _, dep := range n.Dependencies() {
				assert.Less(t, position[dep.Name()], position[name],
					"round %d: %s must precede %s", round, dep.Name(), name)
			}
		}

		again, err := Resolve(start)
		require.NoError(t, err)
		assert.Equal(t, names(order), names(again))
	}
}

func reachableFrom(start *Node) map[string]bool {
	seen := map[string]bool{start.Name(): true}
	queue := []*Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, dep := range n.Dependencies() {
			if !seen[dep.Name()] {
				seen[dep.Name()] = true
				queue = append(queue, dep)
			}
		}
	}
	return seen
}
