package subway

import "math"

// Fare prices a trip of the given length in kilometers using the tiered
// distance brackets. Zero is a valid trip shape (start equals end) and
// prices at the base bracket; negative or non-finite distances return
// ErrInvalidDistance.
func Fare(distance float64) (float64, error) {
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0, ErrInvalidDistance
	}
	switch {
	case distance <= 4:
		return 2, nil
	case distance <= 12:
		return 2 + (distance-4)*0.25, nil
	case distance <= 24:
		return 4 + (distance-12)/6, nil
	case distance <= 40:
		return 6 + (distance-24)*0.125, nil
	case distance <= 50:
		return 8 + (distance-40)*0.1, nil
	default:
		return 10 + (distance-50)*0.05, nil
	}
}
