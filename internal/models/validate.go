package models

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError is a value the mobile client refuses to parse.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Path + ": " + e.Reason
}

// Valid reports whether t is one of the known priority tiers.
func (t PriorityTier) Valid() bool {
	switch t {
	case TierHigh, TierMedium, TierLow:
		return true
	}
	return false
}

// ValidStarRating reports whether r is unset or between 1 and 5 in half steps.
func ValidStarRating(r Number) bool {
	f := r.Float64()
	if f == 0 {
		return true
	}
	return f >= 1 && f <= 5 && math.Trunc(f*2) == f*2
}

// Validate checks the enumerated and ranged fields the mobile client parses
// strictly. Every problem found is returned, joined.
func (r *TripRecommendation) Validate() error {
	var errs []error
	invalid := func(reason, format string, args ...any) {
		errs = append(errs, &ValidationError{Path: fmt.Sprintf(format, args...), Reason: reason})
	}

	for i, d := range r.Destinations {
		for j, opt := range d.AccommodationOptions {
			if opt.Hotel != nil && !ValidStarRating(opt.Hotel.StarRating) {
				invalid("must be between 1 and 5 in steps of 0.5",
					"destinations[%d].accommodationOptions[%d].hotel.starRating", i, j)
			}
		}
		for j, a := range d.RecommendedActivities {
			if !a.Priority.Valid() {
				invalid(fmt.Sprintf("unknown priority %q", a.Priority),
					"destinations[%d].recommendedActivities[%d].priority", i, j)
			}
		}
		for j, rest := range d.RecommendedRestaurants {
			if !rest.Priority.Valid() {
				invalid(fmt.Sprintf("unknown priority %q", rest.Priority),
					"destinations[%d].recommendedRestaurants[%d].priority", i, j)
			}
		}
	}

	for i, seg := range r.Logistics.TransportSegments {
		for j, opt := range seg.TransportOptions {
			if !opt.TransportType.Valid() {
				invalid(fmt.Sprintf("unknown transport type %q", opt.TransportType),
					"logistics.transportSegments[%d].transportOptions[%d].transportType", i, j)
			}
		}
	}

	return errors.Join(errs...)
}
