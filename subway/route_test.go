package subway

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestShortestPathAcrossTransfer(t *testing.T) {
	g := buildTestNetwork(t)

	route, err := g.ShortestPath("P", "Z")
	require.NoError(t, err)

	require.Equal(t, []string{"P", "X", "Y", "Z"}, route.Path)
	require.InDelta(t, 8.0, route.Distance, 1e-9)

	wantLines := map[string]string{"X": "A", "Y": "B", "Z": "B"}
	if diff := cmp.Diff(wantLines, route.ArrivalLine); diff != "" {
		t.Errorf("arrival lines mismatch (-want +got):\n%s", diff)
	}

	wantSegments := []Segment{
		{Line: "A", From: "P", To: "X"},
		{Line: "B", From: "X", To: "Z"},
	}
	if diff := cmp.Diff(wantSegments, route.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"X"}, route.Transfers())
}

// The reported distance must equal the sum of edge distances along the
// reported path.
func TestShortestPathDistanceMatchesPath(t *testing.T) {
	g := buildTestNetwork(t)

	route, err := g.ShortestPath("Q", "Z")
	require.NoError(t, err)

	sum := 0.0
	for i := 1; i < len(route.Path); i++ {
		line := route.ArrivalLine[route.Path[i]]
		found := false
		for _, edge := range g.Connections(route.Path[i-1]) {
			if edge.To == route.Path[i] && edge.Line == line {
				sum += edge.Distance
				found = true
				break
			}
		}
		require.True(t, found, "no edge %s -> %s on line %s", route.Path[i-1], route.Path[i], line)
	}
	require.InDelta(t, sum, route.Distance, 1e-9)
}

// exhaustiveShortest enumerates every simple path with DFS and returns
// the cheapest total distance, or +Inf when none exists.
func exhaustiveShortest(g *Graph, start, end string) float64 {
	best := math.Inf(1)
	visited := map[string]bool{start: true}

	var walk func(at string, total float64)
	walk = func(at string, total float64) {
		if at == end {
			if total < best {
				best = total
			}
			return
		}
		for _, edge := range g.Connections(at) {
			if visited[edge.To] {
				continue
			}
			visited[edge.To] = true
			walk(edge.To, total+edge.Distance)
			visited[edge.To] = false
		}
	}
	walk(start, 0)
	return best
}

func TestShortestPathMatchesExhaustiveSearch(t *testing.T) {
	// Three lines with two interchanges and a slow direct line, so the
	// cheapest route is not the one with the fewest stations.
	b := NewBuilder()
	b.BeginLine("1")
	require.NoError(t, b.AddEdge("a", "b", 2))
	require.NoError(t, b.AddEdge("b", "c", 2))
	require.NoError(t, b.AddEdge("c", "d", 2))
	b.BeginLine("2")
	require.NoError(t, b.AddEdge("a", "e", 1))
	require.NoError(t, b.AddEdge("e", "d", 9))
	b.BeginLine("3")
	require.NoError(t, b.AddEdge("e", "c", 1))
	g := b.Build()

	stations := []string{"a", "b", "c", "d", "e"}
	for _, from := range stations {
		for _, to := range stations {
			want := exhaustiveShortest(g, from, to)
			route, err := g.ShortestPath(from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			require.InDelta(t, want, route.Distance, 1e-9, "%s -> %s", from, to)
		}
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := buildDisconnectedNetwork(t)

	route, err := g.ShortestPath("P", "Z")
	require.ErrorIs(t, err, ErrNoRoute)
	require.Nil(t, route)
}

func TestShortestPathUnknownStation(t *testing.T) {
	g := buildTestNetwork(t)

	for _, pair := range [][2]string{{"nowhere", "Z"}, {"P", "nowhere"}} {
		_, err := g.ShortestPath(pair[0], pair[1])
		var unknown *UnknownStationError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, "nowhere", unknown.Station)
	}
}

func TestShortestPathStartEqualsEnd(t *testing.T) {
	g := buildTestNetwork(t)

	route, err := g.ShortestPath("X", "X")
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, route.Path)
	require.Zero(t, route.Distance)
	require.Empty(t, route.Segments())
	require.Empty(t, route.Transfers())
}

// With equal-cost alternatives the edge ingested first must win, so the
// reported arrival line is stable across runs.
func TestShortestPathTieBreakIsIngestionOrder(t *testing.T) {
	b := NewBuilder()
	b.BeginLine("1")
	require.NoError(t, b.AddEdge("a", "b", 5))
	b.BeginLine("2")
	require.NoError(t, b.AddEdge("a", "b", 5))
	g := b.Build()

	for i := 0; i < 10; i++ {
		route, err := g.ShortestPath("a", "b")
		require.NoError(t, err)
		require.Equal(t, "1", route.ArrivalLine["b"])
	}
}
