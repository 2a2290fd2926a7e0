package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trip-desk/internal/docpath"
	"trip-desk/internal/models"
	"trip-desk/internal/repository"
)

const lisbonDoc = `{
	"id": "rec_t1",
	"overview": "A week in Portugal",
	"destinations": [{
		"id": "d1",
		"cityName": "Lisbon",
		"arrivalDate": "2024-06-15",
		"departureDate": "2024-06-19",
		"accommodationOptions": [
			{"id": "casa", "priority": 1, "hotel": {"name": "Casa", "pricePerNight": 200}},
			{"id": "palace", "priority": 2, "hotel": {"name": "Palace", "pricePerNight": 500}}
		],
		"recommendedActivities": [],
		"recommendedRestaurants": []
	}],
	"logistics": {"transportSegments": [{
		"id": "s1",
		"fromLocation": "NYC",
		"toLocation": "Lisbon",
		"transportOptions": [
			{"id": "f1", "priority": 1, "transportType": "flight", "cost": {"cashAmount": 300}}
		]
	}]}
}`

type recordingNotifier struct {
	events []string
	err    error
}

func (n *recordingNotifier) RecommendationSaved(_ context.Context, tripID string, _ *models.TripRecommendation) error {
	n.events = append(n.events, tripID)
	return n.err
}

type fixture struct {
	trips    *repository.MemoryTripRepository
	drafts   *repository.MemoryDraftStore
	notifier *recordingNotifier
	svc      *RecommendationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	doc, err := models.DecodeDocument([]byte(lisbonDoc))
	require.NoError(t, err)

	trips := repository.NewMemoryTripRepository()
	created := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, trips.Create(ctx, &models.Trip{
		ID: "t1", OwnerID: "u1", Status: models.TripStatusInProgress,
		Recommendation: doc, CreatedAt: created, UpdatedAt: created,
	}))
	require.NoError(t, trips.Create(ctx, &models.Trip{
		ID: "t2", OwnerID: "u2", Status: models.TripStatusPending,
		CreatedAt: created.Add(time.Hour), UpdatedAt: created.Add(time.Hour),
	}))

	f := &fixture{
		trips:    trips,
		drafts:   repository.NewMemoryDraftStore(),
		notifier: &recordingNotifier{},
	}
	f.svc = NewRecommendationService(f.trips, f.drafts, f.notifier, zap.NewNop())
	return f
}

// stored returns the typed view of the trip's persisted recommendation.
func (f *fixture) stored(t *testing.T, tripID string) *models.TripRecommendation {
	t.Helper()
	trip, err := f.trips.Get(context.Background(), tripID)
	require.NoError(t, err)
	require.NotNil(t, trip.Recommendation)
	rec, err := trip.Recommendation.Recommendation()
	require.NoError(t, err)
	return rec
}

func TestOpen_StoredRecommendation(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.Open(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, "t1", view.Draft.TripID)
	assert.Equal(t, 0, view.Draft.Revision)
	assert.Equal(t, "Lisbon", view.Recommendation.Destinations[0].CityName)
	assert.Equal(t, 800.0, view.Cost.AccommodationCash)
	assert.Equal(t, 300.0, view.Cost.TransportationCash)
	assert.Equal(t, 1100.0, view.Cost.GrandTotalCash)
}

func TestOpen_NoRecommendationStartsEmpty(t *testing.T) {
	f := newFixture(t)

	view, err := f.svc.Open(context.Background(), "t2")
	require.NoError(t, err)

	assert.Equal(t, "rec_t2", view.Recommendation.ID)
	assert.Empty(t, view.Recommendation.Destinations)
	assert.Equal(t, []any{}, docpath.List(view.Draft.Document, docpath.MustParse("destinations")))
	assert.Zero(t, view.Cost.GrandTotalCash)
}

func TestOpen_UnknownTrip(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrTripNotFound)
}

func TestGet_WithoutDraft(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), "t1")
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)

	_, err = f.svc.Update(context.Background(), "t1", []Edit{{Path: "overview", Value: "x"}})
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
}

func TestUpdate_RecomputesCost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	view, err := f.svc.Update(ctx, "t1", []Edit{
		{Path: "destinations[0].accommodationOptions[0].hotel.pricePerNight", Value: 100.0},
		{Path: "overview", Value: "Updated"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, view.Draft.Revision)
	assert.Equal(t, "Updated", view.Recommendation.Overview)
	assert.Equal(t, 400.0, view.Cost.AccommodationCash)
	assert.Equal(t, 700.0, view.Cost.GrandTotalCash)

	assert.Equal(t, models.Number(200), f.stored(t, "t1").Destinations[0].AccommodationOptions[0].Hotel.PricePerNight,
		"edits stay in the draft until saved")
}

func TestUpdate_NumericStringsCoerce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	view, err := f.svc.Update(ctx, "t1", []Edit{
		{Path: "destinations[0].accommodationOptions[0].hotel.pricePerNight", Value: "150"},
		{Path: "logistics.transportSegments[0].transportOptions[0].cost.cashAmount", Value: "n/a"},
	})
	require.NoError(t, err)

	assert.Equal(t, 600.0, view.Cost.AccommodationCash)
	assert.Zero(t, view.Cost.TransportationCash)
}

func TestUpdate_BatchIsAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, "t1", []Edit{
		{Path: "destinations[0].accommodationOptions[0].hotel.pricePerNight", Value: 1.0},
		{Path: "destinations[0].cityName.local", Value: "Lisboa"},
	})
	var conflict *docpath.TypeConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "destinations[0].cityName", conflict.At.String())

	view, err := f.svc.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Draft.Revision)
	assert.Equal(t, 800.0, view.Cost.AccommodationCash)
}

func TestUpdate_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		edit  Edit
		check func(t *testing.T, err error)
	}{
		{
			name: "malformed path",
			edit: Edit{Path: "destinations[0", Value: 1.0},
			check: func(t *testing.T, err error) {
				var pe *docpath.PathError
				assert.ErrorAs(t, err, &pe)
			},
		},
		{
			name: "empty path",
			edit: Edit{Path: "", Value: map[string]any{}},
			check: func(t *testing.T, err error) {
				var pe *docpath.PathError
				assert.ErrorAs(t, err, &pe)
			},
		},
		{
			name: "list replaced by string",
			edit: Edit{Path: "destinations", Value: "oops"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			},
		},
		{
			name: "hotel replaced by list",
			edit: Edit{Path: "destinations[0].accommodationOptions[0].hotel", Value: []any{1.0}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_, err := f.svc.Open(ctx, "t1")
			require.NoError(t, err)

			_, err = f.svc.Update(ctx, "t1", []Edit{tt.edit})
			require.Error(t, err)
			tt.check(t, err)

			view, err := f.svc.Get(ctx, "t1")
			require.NoError(t, err)
			assert.Equal(t, 0, view.Draft.Revision)
		})
	}
}

func TestUpdate_SanitizesStrings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	view, err := f.svc.Update(ctx, "t1", []Edit{{Path: "destinations[0].cityName", Value: "Lis\xffbon"}})
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", view.Recommendation.Destinations[0].CityName)
}

func TestUpdate_CreatesMissingBranch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t2")
	require.NoError(t, err)

	view, err := f.svc.Update(ctx, "t2", []Edit{
		{Path: "destinations[0].cityName", Value: "Porto"},
		{Path: "destinations[0].accommodationOptions[0].priority", Value: 1.0},
		{Path: "destinations[0].accommodationOptions[0].hotel.pricePerNight", Value: 90.0},
		{Path: "destinations[0].numberOfNights", Value: 2.0},
	})
	require.NoError(t, err)

	require.Len(t, view.Recommendation.Destinations, 1)
	assert.Equal(t, "Porto", view.Recommendation.Destinations[0].CityName)
	assert.Equal(t, 180.0, view.Cost.AccommodationCash)
}

func TestAddItem_InfersKindAndPriority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	view, idx, err := f.svc.AddItem(ctx, "t1", "destinations[0].accommodationOptions", "")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	added := view.Recommendation.Destinations[0].AccommodationOptions[2]
	assert.Equal(t, models.Priority(3), added.Priority)
	assert.NotEmpty(t, added.ID)
	assert.NotNil(t, added.Hotel)
	assert.Equal(t, 800.0, view.Cost.AccommodationCash, "the first-ranked option still wins")

	view, idx, err = f.svc.AddItem(ctx, "t1", "logistics.transportSegments[0].transportOptions", KindTransport)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	opt := view.Recommendation.Logistics.TransportSegments[0].TransportOptions[1]
	assert.Equal(t, models.Priority(2), opt.Priority)
	assert.Equal(t, models.TransportFlight, opt.TransportType)
	assert.Equal(t, 2, view.Draft.Revision)
}

func TestAddItem_AllCollections(t *testing.T) {
	tests := []struct {
		collection string
		wantIndex  int
	}{
		{"destinations", 1},
		{"logistics.transportSegments", 1},
		{"destinations[0].recommendedActivities", 0},
		{"destinations[0].recommendedRestaurants", 0},
	}

	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_, err := f.svc.Open(ctx, "t1")
			require.NoError(t, err)

			view, idx, err := f.svc.AddItem(ctx, "t1", tt.collection, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, idx)

			item, ok := docpath.Get(view.Draft.Document, docpath.MustParse(tt.collection).Child(docpath.Index(idx)))
			require.True(t, ok)
			obj, ok := item.(map[string]any)
			require.True(t, ok)
			assert.NotEmpty(t, obj["id"])
			assert.Equal(t, 1100.0, view.Cost.GrandTotalCash)
		})
	}
}

func TestAddItem_UnknownKind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	_, _, err = f.svc.AddItem(ctx, "t1", "logistics", "")
	assert.ErrorIs(t, err, ErrUnknownItemKind)

	_, _, err = f.svc.AddItem(ctx, "t1", "destinations", KindTransport)
	assert.ErrorIs(t, err, ErrUnknownItemKind)

	_, _, err = f.svc.AddItem(ctx, "t1", "extras", ItemKind("boat"))
	assert.ErrorIs(t, err, ErrUnknownItemKind)
}

func TestRemoveItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	view, err := f.svc.RemoveItem(ctx, "t1", "destinations[0].accommodationOptions", 0)
	require.NoError(t, err)

	opts := view.Recommendation.Destinations[0].AccommodationOptions
	require.Len(t, opts, 1)
	assert.Equal(t, "palace", opts[0].ID)
	assert.Equal(t, 2000.0, view.Cost.AccommodationCash)

	_, err = f.svc.RemoveItem(ctx, "t1", "destinations[0].accommodationOptions", 5)
	var pe *docpath.PathError
	assert.ErrorAs(t, err, &pe)
}

func TestSave_OverwritesAndNotifies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)
	_, err = f.svc.Update(ctx, "t1", []Edit{
		{Path: "destinations[0].accommodationOptions[0].hotel.pricePerNight", Value: 100.0},
	})
	require.NoError(t, err)

	view, err := f.svc.Save(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, view.Draft.SavedAt)
	assert.Equal(t, []string{"t1"}, f.notifier.events)

	dest := f.stored(t, "t1").Destinations[0]
	assert.Equal(t, models.Number(100), dest.AccommodationOptions[0].Hotel.PricePerNight)
	assert.Equal(t, models.Number(4), dest.NumberOfNights, "night count follows the dates")

	nights, ok := docpath.Get(view.Draft.Document, docpath.MustParse("destinations[0].numberOfNights"))
	require.True(t, ok)
	assert.Equal(t, 4.0, nights)
}

func TestSave_RemovedItemsAreGone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)
	_, err = f.svc.RemoveItem(ctx, "t1", "destinations", 0)
	require.NoError(t, err)

	_, err = f.svc.Save(ctx, "t1")
	require.NoError(t, err)

	rec := f.stored(t, "t1")
	assert.Empty(t, rec.Destinations)
	assert.Len(t, rec.Logistics.TransportSegments, 1)
}

func TestSave_KeepsFieldsOutsideTheModel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	port := docpath.MustParse("logistics.transportSegments[0].transportOptions[0].details.departurePort")
	amenities := docpath.MustParse("destinations[0].accommodationOptions[0].hotel.amenities")
	view, err := f.svc.Update(ctx, "t1", []Edit{
		{Path: port.String(), Value: "Piraeus"},
		{Path: amenities.String(), Value: []any{"pool"}},
	})
	require.NoError(t, err)
	got, ok := docpath.Get(view.Draft.Document, port)
	require.True(t, ok)
	assert.Equal(t, "Piraeus", got)

	_, err = f.svc.Save(ctx, "t1")
	require.NoError(t, err)

	trip, err := f.trips.Get(ctx, "t1")
	require.NoError(t, err)
	got, ok = docpath.Get(trip.Recommendation.Tree(), port)
	require.True(t, ok, "stored document keeps the edit")
	assert.Equal(t, "Piraeus", got)
	got, ok = docpath.Get(trip.Recommendation.Tree(), amenities)
	require.True(t, ok)
	assert.Equal(t, []any{"pool"}, got)

	view, err = f.svc.Open(ctx, "t1")
	require.NoError(t, err)
	got, ok = docpath.Get(view.Draft.Document, port)
	require.True(t, ok, "reopening keeps the edit")
	assert.Equal(t, "Piraeus", got)
}

func TestOpen_KeepsStoredFieldsOutsideTheModel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.trips.SetRecommendation(ctx, "t2", models.Document{
		"id":           "rec_t2",
		"destinations": []any{map[string]any{"cityName": "Athens", "ferryNotes": "book early"}},
		"appVersion":   "3.2",
	}))

	view, err := f.svc.Open(ctx, "t2")
	require.NoError(t, err)

	notes, ok := docpath.Get(view.Draft.Document, docpath.MustParse("destinations[0].ferryNotes"))
	require.True(t, ok)
	assert.Equal(t, "book early", notes)
	version, _ := docpath.Get(view.Draft.Document, docpath.MustParse("appVersion"))
	assert.Equal(t, "3.2", version)
	assert.Equal(t, []any{}, docpath.List(view.Draft.Document, docpath.MustParse("destinations[0].accommodationOptions")))
}

func TestSave_RejectsValuesTheAppCannotParse(t *testing.T) {
	tests := []struct {
		name string
		edit Edit
	}{
		{"transport type", Edit{Path: "logistics.transportSegments[0].transportOptions[0].transportType", Value: "rocket"}},
		{"star rating", Edit{Path: "destinations[0].accommodationOptions[0].hotel.starRating", Value: 7.0}},
		{"activity tier", Edit{Path: "destinations[0].recommendedActivities[0]", Value: map[string]any{"name": "Fado", "priority": "must-do"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			_, err := f.svc.Open(ctx, "t1")
			require.NoError(t, err)
			_, err = f.svc.Update(ctx, "t1", []Edit{tt.edit})
			require.NoError(t, err, "drafts may pass through invalid states")

			_, err = f.svc.Save(ctx, "t1")
			assert.ErrorIs(t, err, ErrInvalidDocument)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.edit.Path, verr.Path[:len(tt.edit.Path)])

			assert.Empty(t, f.notifier.events)
			assert.Equal(t, models.Number(200), f.stored(t, "t1").Destinations[0].AccommodationOptions[0].Hotel.PricePerNight)
			_, err = f.svc.Get(ctx, "t1")
			assert.NoError(t, err, "draft is kept for fixing")
		})
	}
}

func TestSave_NotificationFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.notifier.err = errors.New("broker down")
	_, err := f.svc.Open(ctx, "t2")
	require.NoError(t, err)

	_, err = f.svc.Save(ctx, "t2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")

	trip, err := f.trips.Get(ctx, "t2")
	require.NoError(t, err)
	assert.True(t, trip.HasRecommendation)

	_, err = f.svc.Get(ctx, "t2")
	assert.NoError(t, err, "draft survives for a retry")
}

func TestDiscard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	require.NoError(t, f.svc.Discard(ctx, "t1"))
	_, err = f.svc.Get(ctx, "t1")
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
	assert.ErrorIs(t, f.svc.Discard(ctx, "t1"), repository.ErrDraftNotFound)
}

func TestOpen_ReplacesExistingDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)
	_, err = f.svc.Update(ctx, "t1", []Edit{{Path: "overview", Value: "scratch"}})
	require.NoError(t, err)

	view, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Draft.Revision)
	assert.Equal(t, "A week in Portugal", view.Recommendation.Overview)
}

func TestCost(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "t1")
	require.NoError(t, err)

	summary, err := f.svc.Cost(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1100.0, summary.GrandTotalCash)
}
