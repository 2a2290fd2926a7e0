package handlers

import (
	"trip-desk/internal/dto"
	"trip-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TripHandler struct {
	tripService *service.TripService
	logger      *zap.Logger
}

func NewTripHandler(tripService *service.TripService, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripService: tripService,
		logger:      logger,
	}
}

// ListTrips godoc
// @Summary List trips
// @Description List trip requests, newest first, without their documents
// @Tags trips
// @Produce json
// @Param status query string false "Filter by status: pending, in_progress, recommended, archived"
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Security Bearer
// @Success 200 {object} dto.TripListResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/trips [get]
func (h *TripHandler) ListTrips(c *fiber.Ctx) error {
	status := c.Query("status")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	trips, err := h.tripService.List(c.Context(), status, limit, offset)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list trips")
	}

	resp := dto.TripListResponse{
		Trips:  make([]dto.TripSummaryResponse, 0, len(trips)),
		Limit:  limit,
		Offset: offset,
	}
	for _, t := range trips {
		resp.Trips = append(resp.Trips, dto.NewTripSummary(t))
	}
	return c.JSON(resp)
}

// GetTrip godoc
// @Summary Get a trip
// @Description Get a trip with its intake answers and stored recommendation
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Security Bearer
// @Success 200 {object} dto.TripResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/trips/{id} [get]
func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	trip, err := h.tripService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get trip")
	}
	return c.JSON(dto.NewTripResponse(trip))
}
