package models

import "time"

type TripStatus string

const (
	TripStatusPending     TripStatus = "pending"
	TripStatusInProgress  TripStatus = "in_progress"
	TripStatusRecommended TripStatus = "recommended"
	TripStatusArchived    TripStatus = "archived"
)

// Trip is a traveler's trip request. Intake holds the intake-form answers
// (dates, budget, preferences) and, like Recommendation, is passed through
// untouched.
type Trip struct {
	ID                string         `json:"id"`
	OwnerID           string         `json:"ownerId"`
	Status            TripStatus     `json:"status"`
	Intake            map[string]any `json:"intake,omitempty"`
	Recommendation    Document       `json:"destinationRecommendation,omitempty"`
	HasRecommendation bool           `json:"hasRecommendation"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// Draft is an operator's unsaved edit of one trip's recommendation. Document
// is the JSON tree the path edits operate on.
type Draft struct {
	TripID    string     `json:"tripId"`
	Document  any        `json:"document"`
	Revision  int        `json:"revision"`
	OpenedAt  time.Time  `json:"openedAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	SavedAt   *time.Time `json:"savedAt,omitempty"`
}
