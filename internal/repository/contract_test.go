package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-desk/internal/models"
)

// runTripStoreContract checks the behaviour every TripStore shares. Trips
// get a run-unique status so the store may already hold other data.
func runTripStoreContract(t *testing.T, store TripStore) {
	t.Helper()
	ctx := context.Background()
	status := models.TripStatus(models.NewID("contract"))
	base := time.Now().UTC().Truncate(time.Millisecond)

	rec := models.NewRecommendation()
	rec.Overview = "Alps by rail"
	dest := models.NewDestination()
	dest.CityName = "Zermatt"
	dest.ArrivalDate = "2025-01-10"
	dest.DepartureDate = "2025-01-13"
	opt := models.NewAccommodationOption(1)
	opt.Hotel.Name = "Chalet"
	opt.Hotel.PricePerNight = 320
	dest.AccommodationOptions = append(dest.AccommodationOptions, opt)
	rec.Destinations = append(rec.Destinations, dest)
	doc, err := models.NewDocument(rec)
	require.NoError(t, err)
	// Fields the typed model does not know must survive the store.
	doc["bookingDeadline"] = "2024-12-01"

	older := &models.Trip{
		ID: models.NewID("trip"), OwnerID: "owner_a", Status: status,
		Intake:         map[string]any{"travelers": 3.0},
		Recommendation: doc,
		CreatedAt:      base.Add(-time.Hour), UpdatedAt: base.Add(-time.Hour),
	}
	newer := &models.Trip{
		ID: models.NewID("trip"), OwnerID: "owner_b", Status: status,
		CreatedAt: base, UpdatedAt: base,
	}
	require.NoError(t, store.Create(ctx, older))
	require.NoError(t, store.Create(ctx, newer))

	t.Run("get", func(t *testing.T) {
		got, err := store.Get(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "owner_a", got.OwnerID)
		assert.Equal(t, 3.0, got.Intake["travelers"])
		assert.True(t, got.HasRecommendation)
		require.NotNil(t, got.Recommendation)
		assert.Equal(t, "2024-12-01", got.Recommendation["bookingDeadline"])

		typed, err := got.Recommendation.Recommendation()
		require.NoError(t, err)
		require.Len(t, typed.Destinations, 1)
		gotDest := typed.Destinations[0]
		assert.Equal(t, "Zermatt", gotDest.CityName)
		assert.Equal(t, models.Number(320), gotDest.AccommodationOptions[0].Hotel.PricePerNight)
		assert.NotNil(t, gotDest.RecommendedActivities)

		got, err = store.Get(ctx, newer.ID)
		require.NoError(t, err)
		assert.False(t, got.HasRecommendation)
		assert.Nil(t, got.Recommendation)

		_, err = store.Get(ctx, "trip_missing_"+models.NewID(""))
		assert.ErrorIs(t, err, ErrTripNotFound)
	})

	t.Run("list", func(t *testing.T) {
		trips, err := store.List(ctx, string(status), 10, 0)
		require.NoError(t, err)
		require.Len(t, trips, 2)
		assert.Equal(t, newer.ID, trips[0].ID)
		assert.Equal(t, older.ID, trips[1].ID)
		assert.True(t, trips[1].HasRecommendation)
		assert.Nil(t, trips[1].Recommendation)

		trips, err = store.List(ctx, string(status), 1, 1)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, older.ID, trips[0].ID)
	})

	t.Run("set recommendation overwrites", func(t *testing.T) {
		replacement := models.EmptyDocument(newer.ID)
		replacement["overview"] = "Replaced"
		require.NoError(t, store.SetRecommendation(ctx, older.ID, replacement))

		got, err := store.Get(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "Replaced", got.Recommendation["overview"])
		assert.Equal(t, []any{}, got.Recommendation["destinations"])
		assert.NotContains(t, got.Recommendation, "bookingDeadline")
		assert.Equal(t, 3.0, got.Intake["travelers"])

		err = store.SetRecommendation(ctx, "trip_missing_"+models.NewID(""), replacement)
		assert.ErrorIs(t, err, ErrTripNotFound)
	})
}

// runDraftStoreContract checks the behaviour every DraftStore shares.
func runDraftStoreContract(t *testing.T, store DraftStore) {
	t.Helper()
	ctx := context.Background()
	tripID := models.NewID("trip")

	_, err := store.Load(ctx, tripID)
	require.ErrorIs(t, err, ErrDraftNotFound)

	opened := time.Now().UTC().Truncate(time.Second)
	draft := &models.Draft{
		TripID:    tripID,
		Document:  map[string]any{"id": "rec_1", "destinations": []any{}},
		Revision:  4,
		OpenedAt:  opened,
		UpdatedAt: opened,
	}
	require.NoError(t, store.Save(ctx, draft))

	got, err := store.Load(ctx, tripID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Revision)
	assert.Equal(t, draft.Document, got.Document)
	assert.True(t, opened.Equal(got.OpenedAt))

	require.NoError(t, store.Delete(ctx, tripID))
	_, err = store.Load(ctx, tripID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryStores_Contract(t *testing.T) {
	runTripStoreContract(t, NewMemoryTripRepository())
	runDraftStoreContract(t, NewMemoryDraftStore())
}
