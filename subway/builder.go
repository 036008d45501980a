package subway

// Record is one entry of the ingestion feed: either a LineBegin marker
// or an EdgeRow scoped to the most recent line.
type Record interface {
	isRecord()
}

// LineBegin marks the start of a line's station-spacing block.
type LineBegin struct {
	Line string
}

func (LineBegin) isRecord() {}

// EdgeRow is one station pair plus the track distance between them.
// Distance must be non-negative; the parser rejects anything else
// before it reaches the builder.
type EdgeRow struct {
	From     string
	To       string
	Distance float64
}

func (EdgeRow) isRecord() {}

// Builder accumulates ingestion records and produces one immutable
// Graph. A failed Apply leaves no usable graph behind; callers never
// observe a partially built network.
type Builder struct {
	g       *Graph
	current int // active line id, -1 before the first LineBegin
	built   bool
}

// NewBuilder returns an empty Builder with no active line.
func NewBuilder() *Builder {
	return &Builder{
		g: &Graph{
			stationIDs: make(map[string]int),
			lineIDs:    make(map[string]int),
		},
		current: -1,
	}
}

// Apply folds one record into the network under construction.
func (b *Builder) Apply(rec Record) error {
	switch r := rec.(type) {
	case LineBegin:
		b.BeginLine(r.Line)
		return nil
	case EdgeRow:
		return b.AddEdge(r.From, r.To, r.Distance)
	default:
		return &StructuralError{Msg: "unsupported record type"}
	}
}

// BeginLine switches the active line. The previous line's station order
// is already final because stations are appended as rows arrive; a
// repeated line name continues the existing line.
func (b *Builder) BeginLine(name string) {
	b.current = b.lineID(name)
}

// AddEdge registers both stations under the active line and appends the
// connection in both directions, keeping the graph symmetric by
// construction. Each station is also appended to the line's track order
// the first time it appears on that line.
func (b *Builder) AddEdge(from, to string, distance float64) error {
	if b.built {
		return &StructuralError{Msg: "builder already produced a graph"}
	}
	if b.current < 0 {
		return &StructuralError{Msg: "edge row with no active line"}
	}

	fromID := b.stationID(from)
	toID := b.stationID(to)

	b.addStationToLine(fromID, b.current)
	b.addStationToLine(toID, b.current)

	b.g.adjacency[fromID] = append(b.g.adjacency[fromID], Connection{To: toID, Line: b.current, Distance: distance})
	b.g.adjacency[toID] = append(b.g.adjacency[toID], Connection{To: fromID, Line: b.current, Distance: distance})

	b.appendToLineOrder(b.current, fromID)
	b.appendToLineOrder(b.current, toID)
	return nil
}

// Build finalizes construction and returns the graph. The builder is
// spent afterwards; further records are rejected.
func (b *Builder) Build() *Graph {
	b.built = true
	return b.g
}

func (b *Builder) stationID(name string) int {
	if id, ok := b.g.stationIDs[name]; ok {
		return id
	}
	id := len(b.g.stations)
	b.g.stationIDs[name] = id
	b.g.stations = append(b.g.stations, name)
	b.g.stationLines = append(b.g.stationLines, nil)
	b.g.adjacency = append(b.g.adjacency, nil)
	return id
}

func (b *Builder) lineID(name string) int {
	if id, ok := b.g.lineIDs[name]; ok {
		return id
	}
	id := len(b.g.lines)
	b.g.lineIDs[name] = id
	b.g.lines = append(b.g.lines, name)
	b.g.lineStations = append(b.g.lineStations, nil)
	return id
}

func (b *Builder) addStationToLine(station, line int) {
	for _, l := range b.g.stationLines[station] {
		if l == line {
			return
		}
	}
	b.g.stationLines[station] = append(b.g.stationLines[station], line)
}

func (b *Builder) appendToLineOrder(line, station int) {
	for _, s := range b.g.lineStations[line] {
		if s == station {
			return
		}
	}
	b.g.lineStations[line] = append(b.g.lineStations[line], station)
}
