package subway

// Segment is one uninterrupted ride on a single line.
type Segment struct {
	Line string
	From string
	To   string
}

// Segments groups consecutive path stations that share an arrival line
// into ride segments. A segment boundary falls exactly where the line
// used to reach a station differs from the line used to reach the next
// one; the boundary station is the transfer point. Routes of fewer than
// two stations have no segments.
func (r *Route) Segments() []Segment {
	if len(r.Path) < 2 {
		return nil
	}

	var segments []Segment
	currentLine := r.ArrivalLine[r.Path[1]]
	from := r.Path[0]
	for i := 2; i < len(r.Path); i++ {
		line := r.ArrivalLine[r.Path[i]]
		if line != currentLine {
			segments = append(segments, Segment{Line: currentLine, From: from, To: r.Path[i-1]})
			currentLine = line
			from = r.Path[i-1]
		}
	}
	segments = append(segments, Segment{Line: currentLine, From: from, To: r.Path[len(r.Path)-1]})
	return segments
}

// Transfers returns the stations where the route changes line, in
// travel order.
func (r *Route) Transfers() []string {
	segments := r.Segments()
	if len(segments) < 2 {
		return nil
	}
	transfers := make([]string, 0, len(segments)-1)
	for _, s := range segments[1:] {
		transfers = append(transfers, s.From)
	}
	return transfers
}
