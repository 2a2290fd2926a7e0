package api

import (
	"trip-desk/docs"
	"trip-desk/internal/api/handlers"
	"trip-desk/internal/metrics"
	"trip-desk/pkg/auth"
	"trip-desk/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires the operator API. A nil jwtManager disables auth and a
// nil saveLimiter disables save throttling.
func SetupRouter(
	tripHandler *handlers.TripHandler,
	draftHandler *handlers.DraftHandler,
	jwtManager *auth.JWTManager,
	saveLimiter *middleware.RateLimiter,
	appLogger *zap.Logger,
) *fiber.App {
	metrics.RegisterDefault()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			} else {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())
	app.Use(metrics.Middleware())

	// Swagger: importing docs registers the OpenAPI document in init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	trips := protected.Group("/trips")
	trips.Get("", tripHandler.ListTrips)
	trips.Get("/:id", tripHandler.GetTrip)

	draft := trips.Group("/:id/draft")
	draft.Post("", draftHandler.OpenDraft)
	draft.Get("", draftHandler.GetDraft)
	draft.Patch("", draftHandler.UpdateDraft)
	draft.Delete("", draftHandler.DiscardDraft)
	draft.Post("/items", draftHandler.AddItem)
	draft.Delete("/items", draftHandler.RemoveItem)
	draft.Get("/cost", draftHandler.GetCost)
	draft.Post("/save", saveLimiter.Handler(), draftHandler.SaveDraft)

	return app
}
