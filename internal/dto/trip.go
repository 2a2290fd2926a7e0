package dto

import (
	"time"

	"trip-desk/internal/models"
)

type TripSummaryResponse struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"ownerId"`
	Status            string    `json:"status"`
	HasRecommendation bool      `json:"hasRecommendation"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type TripListResponse struct {
	Trips  []TripSummaryResponse `json:"trips"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

type TripResponse struct {
	TripSummaryResponse
	Intake                    map[string]any  `json:"intake,omitempty"`
	DestinationRecommendation models.Document `json:"destinationRecommendation,omitempty"`
}

func NewTripSummary(t *models.Trip) TripSummaryResponse {
	return TripSummaryResponse{
		ID:                t.ID,
		OwnerID:           t.OwnerID,
		Status:            string(t.Status),
		HasRecommendation: t.HasRecommendation,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func NewTripResponse(t *models.Trip) TripResponse {
	return TripResponse{
		TripSummaryResponse:       NewTripSummary(t),
		Intake:                    t.Intake,
		DestinationRecommendation: t.Recommendation,
	}
}
