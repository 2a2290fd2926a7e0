// Package cost derives the display-only price summary of a recommendation.
//
// Among several candidate hotels or transport options only the one the
// operator ranked first counts, since the traveler has not chosen yet. The
// summary is never written back into the document.
package cost

import (
	"math"

	"trip-desk/internal/models"
)

// Summary splits the estimated trip cost into cash and points per category.
type Summary struct {
	AccommodationCash    float64 `json:"accommodationCash"`
	AccommodationPoints  float64 `json:"accommodationPoints"`
	TransportationCash   float64 `json:"transportationCash"`
	TransportationPoints float64 `json:"transportationPoints"`
	GrandTotalCash       float64 `json:"grandTotalCash"`
	GrandTotalPoints     float64 `json:"grandTotalPoints"`
}

// Summarize computes the summary for rec. Activities and restaurants are
// recommendations only and never counted. A nil rec yields all zeros.
func Summarize(rec *models.TripRecommendation) Summary {
	var s Summary
	if rec == nil {
		return s
	}

	for i := range rec.Destinations {
		dest := &rec.Destinations[i]
		opt, ok := SelectAccommodation(dest.AccommodationOptions)
		if !ok || opt.Hotel == nil {
			continue
		}
		cash, points := stayCost(dest, opt.Hotel)
		s.AccommodationCash += cash
		s.AccommodationPoints += points
	}

	for i := range rec.Logistics.TransportSegments {
		opt, ok := SelectTransport(rec.Logistics.TransportSegments[i].TransportOptions)
		if !ok || opt.Cost == nil {
			continue
		}
		s.TransportationCash += opt.Cost.CashAmount.Float64()
		s.TransportationPoints += opt.Cost.PointsAmount.Float64()
	}

	s.GrandTotalCash = s.AccommodationCash + s.TransportationCash
	s.GrandTotalPoints = s.AccommodationPoints + s.TransportationPoints
	return s
}

// stayCost prices a hotel stay. The legacy precomputed totalCost is added on
// top of the nightly computation; documents carrying both are double counted,
// matching what the dashboard has always shown.
func stayCost(dest *models.Destination, hotel *models.Hotel) (cash, points float64) {
	nights := Nights(dest, hotel)
	cash = hotel.PricePerNight.Float64() * nights
	points = hotel.PointsPerNight.Float64() * nights

	if hotel.TotalCost != nil {
		cash += hotel.TotalCost.CashAmount.Float64()
		points += hotel.TotalCost.PointsAmount.Float64()
	}
	return cash, points
}

// Nights resolves the stay length: arrival/departure dates, then legacy
// check-in/check-out dates, then hotel.totalNights, then
// destination.numberOfNights, then 1. Explicit counts may be fractional but
// never go below 1.
func Nights(dest *models.Destination, hotel *models.Hotel) float64 {
	if n, ok := dest.DatedNights(); ok {
		return float64(n)
	}
	if hotel != nil {
		if n := hotel.TotalNights.Float64(); n > 0 {
			return math.Max(n, 1)
		}
	}
	if n := dest.NumberOfNights.Float64(); n > 0 {
		return math.Max(n, 1)
	}
	return 1
}
