package subway

import (
	"errors"
	"fmt"
)

// ErrNoRoute is returned by ShortestPath when the destination cannot be
// reached from the start station.
var ErrNoRoute = errors.New("no route between stations")

// ErrInvalidDistance is returned by Fare for negative or non-finite
// trip distances.
var ErrInvalidDistance = errors.New("invalid trip distance")

// StructuralError reports a record sequence that cannot form a valid
// network, such as an edge row arriving before any line was begun.
// Construction aborts and no graph is produced.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "structural error: " + e.Msg
}

// UnknownStationError reports a query that referenced a station absent
// from the network.
type UnknownStationError struct {
	Station string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown station %q", e.Station)
}
