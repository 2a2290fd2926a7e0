package service

import (
	"fmt"

	"trip-desk/internal/docpath"
	"trip-desk/internal/models"
)

// ItemKind names the record types that can be appended to a document
// collection.
type ItemKind string

const (
	KindDestination   ItemKind = "destination"
	KindAccommodation ItemKind = "accommodation"
	KindSegment       ItemKind = "segment"
	KindTransport     ItemKind = "transport"
	KindActivity      ItemKind = "activity"
	KindRestaurant    ItemKind = "restaurant"
)

// collectionKinds maps a collection's field name to the kind it holds.
var collectionKinds = map[string]ItemKind{
	"destinations":           KindDestination,
	"accommodationOptions":   KindAccommodation,
	"transportSegments":      KindSegment,
	"transportOptions":       KindTransport,
	"recommendedActivities":  KindActivity,
	"recommendedRestaurants": KindRestaurant,
}

// resolveKind picks the kind for collection. An explicit kind must agree
// with the collection when the collection is a known one.
func resolveKind(collection docpath.Path, kind ItemKind) (ItemKind, error) {
	var inferred ItemKind
	if last, ok := collection.Last(); ok && last.Kind == docpath.KeySegment {
		inferred = collectionKinds[last.Key]
	}

	switch {
	case kind == "" && inferred == "":
		return "", fmt.Errorf("%w: cannot infer kind for %s", ErrUnknownItemKind, collection)
	case kind == "":
		return inferred, nil
	case !kind.valid():
		return "", fmt.Errorf("%w: %q", ErrUnknownItemKind, kind)
	case inferred != "" && inferred != kind:
		return "", fmt.Errorf("%w: %s holds %s records, not %s", ErrUnknownItemKind, collection, inferred, kind)
	}
	return kind, nil
}

func (k ItemKind) valid() bool {
	for _, known := range collectionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// newItem builds a fresh record of kind. Ranked options get the next
// priority after the existing size of their collection.
func newItem(kind ItemKind, existing int) any {
	switch kind {
	case KindDestination:
		return models.NewDestination()
	case KindAccommodation:
		return models.NewAccommodationOption(existing + 1)
	case KindSegment:
		return models.NewTransportSegment()
	case KindTransport:
		return models.NewTransportOption(existing + 1)
	case KindActivity:
		return models.NewActivity()
	case KindRestaurant:
		return models.NewRestaurant()
	}
	return nil
}
