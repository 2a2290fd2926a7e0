package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"trip-desk/internal/docpath"
)

// Document is a recommendation exactly as stored: the JSON object the mobile
// client reads. Fields the typed model does not know about are kept, so the
// typed view is only used for validation and derived values.
type Document map[string]any

// DecodeDocument parses stored JSON. Empty input and JSON null yield nil; any
// other non-object is an error.
func DecodeDocument(data []byte) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation: %w", err)
	}
	return doc, nil
}

// DocumentFromTree converts an edited tree back into a Document. The root
// must be an object.
func DocumentFromTree(tree any) (Document, error) {
	switch v := tree.(type) {
	case Document:
		return v, nil
	case map[string]any:
		return Document(v), nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("document root must be an object, got %T", tree)
}

// NewDocument renders a typed recommendation as a Document.
func NewDocument(rec *TripRecommendation) (Document, error) {
	tree, err := ToValue(rec)
	if err != nil {
		return nil, err
	}
	return DocumentFromTree(tree)
}

// EmptyDocument is the document shown when a trip has none stored yet.
func EmptyDocument(tripID string) Document {
	return Document{
		"id":           "rec_" + tripID,
		"overview":     "",
		"destinations": []any{},
		"logistics":    map[string]any{"transportSegments": []any{}},
	}
}

// Tree returns the document as the plain map the path functions operate on.
func (d Document) Tree() any {
	if d == nil {
		return nil
	}
	return map[string]any(d)
}

// Recommendation decodes the typed, normalized view of d.
func (d Document) Recommendation() (*TripRecommendation, error) {
	return FromValue(d.Tree())
}

// FillCollections creates every collection the typed model declares that is
// absent or null in tree, as an empty list. Present values are left alone.
func FillCollections(tree any) (any, error) {
	if d, ok := tree.(Document); ok {
		tree = d.Tree()
	}
	rec, err := FromValue(tree)
	if err != nil || rec == nil {
		return tree, err
	}

	paths := []string{"destinations", "logistics.transportSegments"}
	for i, d := range rec.Destinations {
		at := fmt.Sprintf("destinations[%d].", i)
		paths = append(paths,
			at+"accommodationOptions",
			at+"recommendedActivities",
			at+"recommendedRestaurants",
		)
		for j := range d.RecommendedActivities {
			paths = append(paths, fmt.Sprintf("%srecommendedActivities[%d].tips", at, j))
		}
		for j := range d.RecommendedRestaurants {
			paths = append(paths, fmt.Sprintf("%srecommendedRestaurants[%d].tips", at, j))
		}
	}
	for i := range rec.Logistics.TransportSegments {
		paths = append(paths, fmt.Sprintf("logistics.transportSegments[%d].transportOptions", i))
	}

	for _, expr := range paths {
		p := docpath.MustParse(expr)
		if v, ok := docpath.Get(tree, p); ok && v != nil {
			continue
		}
		if tree, err = docpath.Set(tree, p, []any{}); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// CanonicalizeTree prepares an edited tree for persistence: collections are
// filled and each destination's numberOfNights follows its dates. Everything
// else is kept as written.
func CanonicalizeTree(tree any) (any, error) {
	tree, err := FillCollections(tree)
	if err != nil {
		return nil, err
	}
	rec, err := FromValue(tree)
	if err != nil || rec == nil {
		return tree, err
	}
	for i := range rec.Destinations {
		n, ok := rec.Destinations[i].DatedNights()
		if !ok {
			continue
		}
		p := docpath.MustParse(fmt.Sprintf("destinations[%d].numberOfNights", i))
		if tree, err = docpath.Set(tree, p, float64(n)); err != nil {
			return nil, err
		}
	}
	return tree, nil
}
