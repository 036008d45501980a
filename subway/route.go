package subway

import (
	"container/heap"
	"math"
)

// Route is a shortest path through the network. ArrivalLine maps every
// station after the first to the line whose edge reached it; the start
// station has no arrival line.
type Route struct {
	Path        []string
	ArrivalLine map[string]string
	Distance    float64
}

// ShortestPath runs Dijkstra from start to end over the full adjacency
// multigraph, tracking the predecessor station and line of every
// relaxation so the route can report where transfers happen.
//
// Relaxation only accepts strict improvements and scans connections in
// ingestion order, so ties resolve deterministically to the edge
// ingested first. The search stops as soon as end is popped; with
// non-negative distances nothing left in the queue can improve on it.
//
// Unknown endpoints fail with *UnknownStationError. An unreachable end
// fails with ErrNoRoute. start == end succeeds with a one-station route
// of distance 0.
func (g *Graph) ShortestPath(start, end string) (*Route, error) {
	startID, ok := g.stationIDs[start]
	if !ok {
		return nil, &UnknownStationError{Station: start}
	}
	endID, ok := g.stationIDs[end]
	if !ok {
		return nil, &UnknownStationError{Station: end}
	}
	if startID == endID {
		return &Route{
			Path:        []string{start},
			ArrivalLine: map[string]string{},
		}, nil
	}

	n := len(g.stations)
	dist := make([]float64, n)
	prevStation := make([]int, n)
	prevLine := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevStation[i] = -1
		prevLine[i] = -1
	}
	dist[startID] = 0

	pq := &minQueue{}
	heap.Init(pq)
	heap.Push(pq, &queueItem{station: startID, distance: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		if item.distance > dist[item.station] {
			continue // stale entry, already relaxed cheaper
		}
		if item.station == endID {
			break
		}
		for _, c := range g.adjacency[item.station] {
			next := item.distance + c.Distance
			if next < dist[c.To] {
				dist[c.To] = next
				prevStation[c.To] = item.station
				prevLine[c.To] = c.Line
				heap.Push(pq, &queueItem{station: c.To, distance: next})
			}
		}
	}

	if math.IsInf(dist[endID], 1) {
		return nil, ErrNoRoute
	}

	var ids []int
	for cur := endID; cur != -1; cur = prevStation[cur] {
		ids = append(ids, cur)
	}

	route := &Route{
		Path:        make([]string, len(ids)),
		ArrivalLine: make(map[string]string, len(ids)-1),
		Distance:    dist[endID],
	}
	for i, id := range ids {
		route.Path[len(ids)-1-i] = g.stations[id]
		if id != startID {
			route.ArrivalLine[g.stations[id]] = g.lines[prevLine[id]]
		}
	}
	return route, nil
}

type queueItem struct {
	station  int
	distance float64
}

type minQueue []*queueItem

func (pq minQueue) Len() int            { return len(pq) }
func (pq minQueue) Less(i, j int) bool  { return pq[i].distance < pq[j].distance }
func (pq minQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }

func (pq *minQueue) Push(x interface{}) {
	item := x.(*queueItem)
	*pq = append(*pq, item)
}

func (pq *minQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
