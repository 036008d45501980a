package subway

// TransferStations returns every station that belongs to two or more
// lines, mapped to its lines in first-seen order.
func (g *Graph) TransferStations() map[string][]string {
	result := make(map[string][]string)
	for id, lines := range g.stationLines {
		if len(lines) < 2 {
			continue
		}
		names := make([]string, 0, len(lines))
		for _, lid := range lines {
			names = append(names, g.lines[lid])
		}
		result[g.stations[id]] = names
	}
	return result
}
