package models

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a time-ordered random identifier (UUIDv7) with prefix.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	s := strings.ReplaceAll(id.String(), "-", "")
	if prefix == "" {
		return s
	}
	return prefix + "_" + s
}

// EmptyRecommendation is the document shown when a trip has none stored yet.
func EmptyRecommendation(tripID string) *TripRecommendation {
	return &TripRecommendation{
		ID:           "rec_" + tripID,
		Destinations: []Destination{},
		Logistics:    Logistics{TransportSegments: []TransportSegment{}},
	}
}

func NewRecommendation() *TripRecommendation {
	rec := EmptyRecommendation("")
	rec.ID = NewID("rec")
	return rec
}

func NewDestination() Destination {
	return Destination{
		ID:                     NewID("dest"),
		AccommodationOptions:   []AccommodationOption{},
		RecommendedActivities:  []ActivityRecommendation{},
		RecommendedRestaurants: []RestaurantRecommendation{},
	}
}

func NewAccommodationOption(priority int) AccommodationOption {
	return AccommodationOption{
		ID:       NewID("acc"),
		Priority: Priority(priority),
		Hotel:    &Hotel{},
	}
}

func NewTransportSegment() TransportSegment {
	return TransportSegment{
		ID:               NewID("seg"),
		TransportOptions: []TransportOption{},
	}
}

func NewTransportOption(priority int) TransportOption {
	return TransportOption{
		ID:            NewID("opt"),
		Priority:      Priority(priority),
		TransportType: TransportFlight,
		Cost:          &Cost{},
	}
}

func NewActivity() ActivityRecommendation {
	return ActivityRecommendation{
		ID:       NewID("act"),
		Tips:     []string{},
		Priority: TierMedium,
	}
}

func NewRestaurant() RestaurantRecommendation {
	return RestaurantRecommendation{
		ID:       NewID("rest"),
		Tips:     []string{},
		Priority: TierMedium,
	}
}

// Normalize replaces every nil collection in the tree with an empty one so
// readers never see an absent list.
func (r *TripRecommendation) Normalize() {
	if r.Destinations == nil {
		r.Destinations = []Destination{}
	}
	for i := range r.Destinations {
		r.Destinations[i].normalize()
	}
	if r.Logistics.TransportSegments == nil {
		r.Logistics.TransportSegments = []TransportSegment{}
	}
	for i := range r.Logistics.TransportSegments {
		seg := &r.Logistics.TransportSegments[i]
		if seg.TransportOptions == nil {
			seg.TransportOptions = []TransportOption{}
		}
	}
}

func (d *Destination) normalize() {
	if d.AccommodationOptions == nil {
		d.AccommodationOptions = []AccommodationOption{}
	}
	if d.RecommendedActivities == nil {
		d.RecommendedActivities = []ActivityRecommendation{}
	}
	for i := range d.RecommendedActivities {
		if d.RecommendedActivities[i].Tips == nil {
			d.RecommendedActivities[i].Tips = []string{}
		}
	}
	if d.RecommendedRestaurants == nil {
		d.RecommendedRestaurants = []RestaurantRecommendation{}
	}
	for i := range d.RecommendedRestaurants {
		if d.RecommendedRestaurants[i].Tips == nil {
			d.RecommendedRestaurants[i].Tips = []string{}
		}
	}
}
