package handlers

import (
	"strings"

	"trip-desk/internal/dto"
	"trip-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DraftHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewDraftHandler(recService *service.RecommendationService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{
		recService: recService,
		logger:     logger,
	}
}

// OpenDraft godoc
// @Summary Open a draft
// @Description Start editing the trip's recommendation. Replaces any unsaved draft.
// @Tags drafts
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 201 {object} dto.DraftResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/draft [post]
func (h *DraftHandler) OpenDraft(c *fiber.Ctx) error {
	view, err := h.recService.Open(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to open draft")
	}
	h.logger.Info("Draft opened by operator",
		zap.String("trip_id", view.Draft.TripID),
		zap.String("operator", operator(c)),
	)
	return c.Status(fiber.StatusCreated).JSON(dto.NewDraftResponse(view))
}

// GetDraft godoc
// @Summary Get the current draft
// @Tags drafts
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.DraftResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/draft [get]
func (h *DraftHandler) GetDraft(c *fiber.Ctx) error {
	view, err := h.recService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get draft")
	}
	return c.JSON(dto.NewDraftResponse(view))
}

// UpdateDraft godoc
// @Summary Edit the draft
// @Description Apply path edits in order. Either every edit applies or none does.
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.UpdateDraftRequest true "Edits"
// @Security Bearer
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/trips/{id}/draft [patch]
func (h *DraftHandler) UpdateDraft(c *fiber.Ctx) error {
	var req dto.UpdateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.Edits) == 0 {
		return badRequest(c, "At least one edit is required")
	}

	view, err := h.recService.Update(c.Context(), c.Params("id"), req.ToEdits())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update draft")
	}
	return c.JSON(dto.NewDraftResponse(view))
}

// AddItem godoc
// @Summary Add a record to a collection
// @Description Append a new destination, option, segment, activity or restaurant
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.AddItemRequest true "Collection and kind"
// @Security Bearer
// @Success 201 {object} dto.AddItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/draft/items [post]
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Collection) == "" {
		return badRequest(c, "Collection is required")
	}

	view, index, err := h.recService.AddItem(c.Context(), c.Params("id"), req.Collection, service.ItemKind(req.Kind))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to add item")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AddItemResponse{
		DraftResponse: dto.NewDraftResponse(view),
		Index:         index,
	})
}

// RemoveItem godoc
// @Summary Remove a record from a collection
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body dto.RemoveItemRequest true "Collection and index"
// @Security Bearer
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/draft/items [delete]
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	var req dto.RemoveItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Collection) == "" || req.Index == nil {
		return badRequest(c, "Collection and index are required")
	}

	view, err := h.recService.RemoveItem(c.Context(), c.Params("id"), req.Collection, *req.Index)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to remove item")
	}
	return c.JSON(dto.NewDraftResponse(view))
}

// GetCost godoc
// @Summary Cost summary of the draft
// @Tags drafts
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} cost.Summary
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/draft/cost [get]
func (h *DraftHandler) GetCost(c *fiber.Ctx) error {
	summary, err := h.recService.Cost(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute cost")
	}
	return c.JSON(summary)
}

// SaveDraft godoc
// @Summary Save the draft
// @Description Overwrite the trip's recommendation with the draft and notify the traveler's app
// @Tags drafts
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/trips/{id}/draft/save [post]
func (h *DraftHandler) SaveDraft(c *fiber.Ctx) error {
	view, err := h.recService.Save(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save recommendation")
	}
	h.logger.Info("Recommendation saved by operator",
		zap.String("trip_id", view.Draft.TripID),
		zap.String("operator", operator(c)),
	)
	return c.JSON(dto.NewDraftResponse(view))
}

// DiscardDraft godoc
// @Summary Discard the draft
// @Tags drafts
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id}/draft [delete]
func (h *DraftHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.recService.Discard(c.Context(), c.Params("id")); err != nil {
		return respondError(c, h.logger, err, "Failed to discard draft")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// operator names the authenticated caller, or "anonymous" when auth is off.
func operator(c *fiber.Ctx) string {
	if name, ok := c.Locals("username").(string); ok && name != "" {
		return name
	}
	return "anonymous"
}
