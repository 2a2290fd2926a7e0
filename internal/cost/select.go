package cost

import "trip-desk/internal/models"

// minBy returns the element with the smallest rank. Ties keep the element
// encountered first.
func minBy[T any](items []T, rank func(*T) float64) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := 0
	bestRank := rank(&items[0])
	for i := 1; i < len(items); i++ {
		if r := rank(&items[i]); r < bestRank {
			best, bestRank = i, r
		}
	}
	return items[best], true
}

// SelectAccommodation picks the highest-priority (lowest number) option.
func SelectAccommodation(opts []models.AccommodationOption) (models.AccommodationOption, bool) {
	return minBy(opts, func(o *models.AccommodationOption) float64 { return o.Priority.Rank() })
}

// SelectTransport picks the highest-priority (lowest number) option.
func SelectTransport(opts []models.TransportOption) (models.TransportOption, bool) {
	return minBy(opts, func(o *models.TransportOption) float64 { return o.Priority.Rank() })
}
