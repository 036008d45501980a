package subway

// NearbyStation is one hit of a neighborhood query: a station reachable
// along a single line within the distance bound.
type NearbyStation struct {
	Station  string
	Line     string
	Distance float64
}

// Nearby returns the stations reachable from the given station along
// each of its lines, in both track directions, with accumulated
// distance at most maxDistance. Each direction of each line is walked
// independently and no deduplication happens across them, so the same
// station may appear once per line it is reachable on.
//
// An unknown station yields an empty result, not an error.
func (g *Graph) Nearby(station string, maxDistance float64) []NearbyStation {
	id, ok := g.stationIDs[station]
	if !ok {
		return nil
	}

	var result []NearbyStation
	for _, line := range g.stationLines[id] {
		order := g.lineStations[line]
		index := -1
		for i, s := range order {
			if s == id {
				index = i
				break
			}
		}
		if index < 0 {
			continue
		}

		// Walk toward the head of the line.
		accumulated := 0.0
		for i := index - 1; i >= 0; i-- {
			accumulated += g.connectionDistance(order[i+1], order[i], line)
			if accumulated > maxDistance {
				break
			}
			result = append(result, NearbyStation{
				Station:  g.stations[order[i]],
				Line:     g.lines[line],
				Distance: accumulated,
			})
		}

		// Walk toward the tail.
		accumulated = 0
		for i := index + 1; i < len(order); i++ {
			accumulated += g.connectionDistance(order[i-1], order[i], line)
			if accumulated > maxDistance {
				break
			}
			result = append(result, NearbyStation{
				Station:  g.stations[order[i]],
				Line:     g.lines[line],
				Distance: accumulated,
			})
		}
	}
	return result
}
