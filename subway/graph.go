// Package subway holds the in-memory metro network and its query
// algorithms: transfer detection, radius-bounded neighbor search,
// shortest-path routing and fare calculation.
package subway

// Connection is one directed edge of the network. Station and line
// identifiers are interned integers; names live in the Graph arenas.
type Connection struct {
	To       int
	Line     int
	Distance float64
}

// Edge describes a connection by name, for callers outside the package.
type Edge struct {
	From     string
	To       string
	Line     string
	Distance float64
}

// Graph is the subway network. It is built once by a Builder and never
// mutated afterwards, so concurrent queries need no locking.
//
// Internally stations and lines are interned: names are kept in arenas
// and all relationships are slices indexed by integer id. The public
// API stays name-based.
type Graph struct {
	stationIDs map[string]int
	stations   []string
	lineIDs    map[string]int
	lines      []string

	// stationLines[s] lists the lines station s belongs to, in the
	// order ingestion first saw them.
	stationLines [][]int
	// adjacency[s] lists the outgoing connections of station s, in
	// ingestion order.
	adjacency [][]Connection
	// lineStations[l] is line l's station sequence in physical track
	// order, deduplicated.
	lineStations [][]int
}

// StationCount returns the number of distinct stations in the network.
func (g *Graph) StationCount() int {
	return len(g.stations)
}

// LineCount returns the number of lines in the network.
func (g *Graph) LineCount() int {
	return len(g.lines)
}

// HasStation reports whether the named station exists in the network.
func (g *Graph) HasStation(name string) bool {
	_, ok := g.stationIDs[name]
	return ok
}

// Lines returns the line names in ingestion order.
func (g *Graph) Lines() []string {
	out := make([]string, len(g.lines))
	copy(out, g.lines)
	return out
}

// LineStations returns the named line's station sequence in track
// order, or nil if the line is unknown.
func (g *Graph) LineStations(line string) []string {
	id, ok := g.lineIDs[line]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.lineStations[id]))
	for _, sid := range g.lineStations[id] {
		out = append(out, g.stations[sid])
	}
	return out
}

// StationLines returns the lines the named station belongs to, in
// first-seen order, or nil if the station is unknown.
func (g *Graph) StationLines(station string) []string {
	id, ok := g.stationIDs[station]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.stationLines[id]))
	for _, lid := range g.stationLines[id] {
		out = append(out, g.lines[lid])
	}
	return out
}

// Connections returns the named station's outgoing edges, or nil if
// the station is unknown.
func (g *Graph) Connections(station string) []Edge {
	id, ok := g.stationIDs[station]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(g.adjacency[id]))
	for _, c := range g.adjacency[id] {
		out = append(out, Edge{
			From:     station,
			To:       g.stations[c.To],
			Line:     g.lines[c.Line],
			Distance: c.Distance,
		})
	}
	return out
}

// connectionDistance returns the distance of the edge from one station
// to another on the given line, or 0 when no such edge exists. The
// line-order invariant guarantees the edge exists for adjacent stations
// of a line.
func (g *Graph) connectionDistance(from, to, line int) float64 {
	for _, c := range g.adjacency[from] {
		if c.To == to && c.Line == line {
			return c.Distance
		}
	}
	return 0
}
