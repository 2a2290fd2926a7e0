package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"trip-desk/internal/bootstrap"
	"trip-desk/internal/models"
	"trip-desk/pkg/auth"
	"trip-desk/pkg/config"
	"trip-desk/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stores, err := bootstrap.Open(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open stores", zap.Error(err))
	}
	defer stores.Close()

	appLogger.Info("Starting database seeding...")

	for _, trip := range demoTrips() {
		if err := stores.Trips.Create(ctx, trip); err != nil {
			appLogger.Warn("Failed to create trip", zap.String("trip_id", trip.ID), zap.Error(err))
			continue
		}
		appLogger.Info("Trip created",
			zap.String("trip_id", trip.ID),
			zap.Bool("has_recommendation", trip.Recommendation != nil),
		)
	}

	if cfg.JWT.SecretKey != "" {
		token, err := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration).
			GenerateToken("op_dev", "dev", "dev@trip-desk.local")
		if err != nil {
			appLogger.Fatal("Failed to issue operator token", zap.Error(err))
		}
		fmt.Printf("Operator token (valid %s):\n%s\n", cfg.JWT.Expiration, token)
	}

	appLogger.Info("Seeding completed")
}

func demoTrips() []*models.Trip {
	now := time.Now().UTC()

	doc, err := models.DecodeDocument([]byte(sampleRecommendation))
	if err != nil {
		log.Fatalf("Sample recommendation is invalid: %v", err)
	}
	tree, err := models.CanonicalizeTree(doc.Tree())
	if err != nil {
		log.Fatalf("Sample recommendation is invalid: %v", err)
	}
	if doc, err = models.DocumentFromTree(tree); err != nil {
		log.Fatalf("Sample recommendation is invalid: %v", err)
	}

	var intake map[string]any
	if err := json.Unmarshal([]byte(sampleIntake), &intake); err != nil {
		log.Fatalf("Sample intake is invalid: %v", err)
	}

	return []*models.Trip{
		{
			ID:             "trip_demo_portugal",
			OwnerID:        "user_demo",
			Status:         models.TripStatusRecommended,
			Intake:         intake,
			Recommendation: doc,
			CreatedAt:      now.Add(-time.Hour),
			UpdatedAt:      now,
		},
		{
			ID:        "trip_demo_pending",
			OwnerID:   "user_demo",
			Status:    models.TripStatusPending,
			Intake:    map[string]any{"destination": "Japan", "travelers": 2.0},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

const sampleIntake = `{
	"travelers": 2,
	"startDate": "2025-06-15",
	"endDate": "2025-06-22",
	"budget": {"amount": 6000, "currency": "USD"},
	"preferences": ["food", "history", "walkable"]
}`

const sampleRecommendation = `{
	"id": "rec_trip_demo_portugal",
	"overview": "A week between Lisbon and Porto with a train hop in between.",
	"destinations": [
		{
			"id": "dest_lisbon",
			"cityName": "Lisbon",
			"arrivalDate": "2025-06-15",
			"departureDate": "2025-06-19",
			"accommodationOptions": [
				{"id": "acc_memmo", "priority": 1, "hotel": {
					"name": "Memmo Alfama", "starRating": 4, "pricePerNight": 240,
					"location": "Alfama", "bookingUrl": "https://example.com/memmo"
				}},
				{"id": "acc_bairro", "priority": 2, "hotel": {
					"name": "Bairro Alto Hotel", "starRating": 5, "pricePerNight": 410,
					"pointsPerNight": 0, "location": "Chiado"
				}}
			],
			"recommendedActivities": [
				{"id": "act_tram", "name": "Tram 28", "category": "sightseeing", "priority": "high",
				 "cost": {"cashAmount": 3.1, "currency": "EUR"}, "tips": ["Board at Martim Moniz"]}
			],
			"recommendedRestaurants": [
				{"id": "rest_ramiro", "name": "Cervejaria Ramiro", "cuisine": "seafood", "priority": "medium",
				 "tips": ["Expect a queue after 8pm"]}
			]
		},
		{
			"id": "dest_porto",
			"cityName": "Porto",
			"arrivalDate": "2025-06-19",
			"departureDate": "2025-06-22",
			"accommodationOptions": [
				{"id": "acc_torel", "priority": 1, "hotel": {
					"name": "Torel Palace", "starRating": 5, "pointsPerNight": 35000,
					"loyaltyProgram": "World of Hyatt"
				}}
			],
			"recommendedActivities": [],
			"recommendedRestaurants": []
		}
	],
	"logistics": {"transportSegments": [
		{
			"id": "seg_out",
			"fromLocation": "New York (JFK)",
			"toLocation": "Lisbon (LIS)",
			"date": "2025-06-15",
			"transportOptions": [
				{"id": "opt_tap", "priority": 1, "transportType": "flight",
				 "cost": {"cashAmount": 780, "currency": "USD"},
				 "details": {"airline": "TAP", "flightNumber": "TP210"}, "duration": "7h"},
				{"id": "opt_united", "priority": 2, "transportType": "flight",
				 "cost": {"pointsAmount": 60000, "pointsProgram": "MileagePlus"}}
			]
		},
		{
			"id": "seg_train",
			"fromLocation": "Lisbon",
			"toLocation": "Porto",
			"date": "2025-06-19",
			"transportOptions": [
				{"id": "opt_ap", "priority": 1, "transportType": "train",
				 "cost": {"cashAmount": 62, "currency": "EUR"}, "duration": "2h50m"}
			]
		}
	]}
}`
