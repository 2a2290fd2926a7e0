package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToValue converts a typed recommendation into the generic JSON tree that
// path edits operate on.
func ToValue(rec *TripRecommendation) (any, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendation: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation tree: %w", err)
	}
	return v, nil
}

// FromValue decodes a JSON tree into a normalized typed recommendation.
// A nil tree yields nil. Numeric fields are lenient; structural mismatches,
// such as a string where a list belongs, are errors.
func FromValue(v any) (*TripRecommendation, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document tree: %w", err)
	}
	return DecodeRecommendation(data)
}

// DecodeRecommendation decodes stored JSON. Empty input and JSON null yield nil.
func DecodeRecommendation(data []byte) (*TripRecommendation, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var rec TripRecommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode recommendation: %w", err)
	}
	rec.Normalize()
	return &rec, nil
}
