package dto

import (
	"time"

	"trip-desk/internal/cost"
	"trip-desk/internal/service"
)

type EditRequest struct {
	Path  string `json:"path" example:"destinations[0].accommodationOptions[0].hotel.pricePerNight"`
	Value any    `json:"value" swaggertype:"object"`
}

type UpdateDraftRequest struct {
	Edits []EditRequest `json:"edits"`
}

type AddItemRequest struct {
	Collection string `json:"collection" example:"destinations[0].accommodationOptions"`
	// Kind is optional when the collection name identifies it.
	Kind string `json:"kind,omitempty" example:"accommodation"`
}

type RemoveItemRequest struct {
	Collection string `json:"collection" example:"destinations[0].accommodationOptions"`
	Index      *int   `json:"index"`
}

type DraftResponse struct {
	TripID    string       `json:"tripId"`
	Revision  int          `json:"revision"`
	Document  any          `json:"document" swaggertype:"object"`
	Cost      cost.Summary `json:"cost"`
	OpenedAt  time.Time    `json:"openedAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	SavedAt   *time.Time   `json:"savedAt,omitempty"`
}

type AddItemResponse struct {
	DraftResponse
	Index int `json:"index"`
}

func NewDraftResponse(v *service.DraftView) DraftResponse {
	return DraftResponse{
		TripID:    v.Draft.TripID,
		Revision:  v.Draft.Revision,
		Document:  v.Draft.Document,
		Cost:      v.Cost,
		OpenedAt:  v.Draft.OpenedAt,
		UpdatedAt: v.Draft.UpdatedAt,
		SavedAt:   v.Draft.SavedAt,
	}
}

func (r UpdateDraftRequest) ToEdits() []service.Edit {
	edits := make([]service.Edit, len(r.Edits))
	for i, e := range r.Edits {
		edits[i] = service.Edit{Path: e.Path, Value: e.Value}
	}
	return edits
}
