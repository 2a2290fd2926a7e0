package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"trip-desk/internal/cost"
	"trip-desk/internal/docpath"
	"trip-desk/internal/metrics"
	"trip-desk/internal/models"
	"trip-desk/internal/repository"

	"go.uber.org/zap"
)

var (
	// ErrInvalidDocument means an edit left a document that no longer decodes
	// as a trip recommendation. The draft is left as it was.
	ErrInvalidDocument = errors.New("invalid recommendation document")
	ErrUnknownItemKind = errors.New("unknown item kind")
)

// Edit sets the value at a path expression such as
// "destinations[0].accommodationOptions[1].hotel.pricePerNight".
type Edit struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// DraftView is a draft together with its typed decoding and cost summary.
type DraftView struct {
	Draft          *models.Draft
	Recommendation *models.TripRecommendation
	Cost           cost.Summary
}

// RecommendationService manages operators' editing sessions over trip
// recommendation documents. Each trip has at most one draft; saving
// overwrites the stored document entirely.
type RecommendationService struct {
	trips    repository.TripStore
	drafts   repository.DraftStore
	notifier repository.Notifier
	logger   *zap.Logger

	// mu serializes read-modify-write cycles on drafts.
	mu  sync.Mutex
	now func() time.Time
}

func NewRecommendationService(
	trips repository.TripStore,
	drafts repository.DraftStore,
	notifier repository.Notifier,
	logger *zap.Logger,
) *RecommendationService {
	if notifier == nil {
		notifier = repository.NopNotifier{}
	}
	return &RecommendationService{
		trips:    trips,
		drafts:   drafts,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Open starts a fresh draft from the trip's stored recommendation, or from
// an empty document when it has none. Any previous draft is replaced.
func (s *RecommendationService) Open(ctx context.Context, tripID string) (*DraftView, error) {
	trip, err := s.trips.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}

	doc := trip.Recommendation
	if doc == nil {
		doc = models.EmptyDocument(trip.ID)
	}
	tree, err := models.FillCollections(doc.Tree())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	now := s.now()
	draft := &models.Draft{
		TripID:    trip.ID,
		Document:  tree,
		OpenedAt:  now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}

	s.logger.Info("Draft opened",
		zap.String("trip_id", trip.ID),
		zap.Bool("had_recommendation", trip.Recommendation != nil),
	)
	return s.view(draft)
}

// Get returns the current draft for the trip.
func (s *RecommendationService) Get(ctx context.Context, tripID string) (*DraftView, error) {
	draft, err := s.drafts.Load(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return s.view(draft)
}

// Cost returns the cost summary of the current draft.
func (s *RecommendationService) Cost(ctx context.Context, tripID string) (cost.Summary, error) {
	view, err := s.Get(ctx, tripID)
	if err != nil {
		return cost.Summary{}, err
	}
	return view.Cost, nil
}

// Update applies edits in order. The batch is all or nothing: if any edit
// fails, or the result no longer decodes, the draft is unchanged.
func (s *RecommendationService) Update(ctx context.Context, tripID string, edits []Edit) (*DraftView, error) {
	return s.mutate(ctx, tripID, "update", func(doc any) (any, error) {
		for _, e := range edits {
			p, err := docpath.Parse(e.Path)
			if err != nil {
				return nil, err
			}
			v, err := plainValue(e.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, e.Path, err)
			}
			if doc, err = docpath.Set(doc, p, v); err != nil {
				return nil, err
			}
		}
		return doc, nil
	})
}

// AddItem appends a new record to the collection at collection and returns
// the draft and the index of the new record. An empty kind is inferred from
// the collection's name.
func (s *RecommendationService) AddItem(ctx context.Context, tripID, collection string, kind ItemKind) (*DraftView, int, error) {
	p, err := docpath.Parse(collection)
	if err != nil {
		return nil, 0, err
	}
	kind, err = resolveKind(p, kind)
	if err != nil {
		return nil, 0, err
	}

	var index int
	view, err := s.mutate(ctx, tripID, "add_item", func(doc any) (any, error) {
		item, err := plainValue(newItem(kind, len(docpath.List(doc, p))))
		if err != nil {
			return nil, err
		}
		next, idx, err := docpath.Append(doc, p, item)
		if err != nil {
			return nil, err
		}
		index = idx
		return next, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return view, index, nil
}

// RemoveItem splices the record at index out of the collection.
func (s *RecommendationService) RemoveItem(ctx context.Context, tripID, collection string, index int) (*DraftView, error) {
	p, err := docpath.Parse(collection)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, tripID, "remove_item", func(doc any) (any, error) {
		return docpath.RemoveAt(doc, p, index)
	})
}

// Save writes the draft over the trip's stored recommendation and notifies
// subscribers. The edited tree is stored as is, fields the typed model does
// not know included; only numberOfNights is recomputed. Documents the mobile
// client would reject are refused with ErrInvalidDocument. A failed save
// leaves the draft in place so the caller can retry.
func (s *RecommendationService) Save(ctx context.Context, tripID string) (view *DraftView, err error) {
	defer func() {
		metrics.RecommendationSaves.WithLabelValues(metrics.Result(err)).Inc()
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.drafts.Load(ctx, tripID)
	if err != nil {
		return nil, err
	}
	rec, err := decodeDraft(draft.Document)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	tree := draft.Document
	if rec.ID == "" {
		if tree, err = docpath.Set(tree, docpath.Path{docpath.Key("id")}, "rec_"+tripID); err != nil {
			return nil, err
		}
	}
	if tree, err = models.CanonicalizeTree(tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	doc, err := models.DocumentFromTree(tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if rec, err = decodeDraft(tree); err != nil {
		return nil, err
	}

	if err := s.trips.SetRecommendation(ctx, tripID, doc); err != nil {
		s.logger.Error("Failed to save recommendation", zap.String("trip_id", tripID), zap.Error(err))
		return nil, fmt.Errorf("failed to save recommendation: %w", err)
	}

	now := s.now()
	draft.Document = tree
	draft.UpdatedAt = now
	draft.SavedAt = &now
	if err := s.drafts.Save(ctx, draft); err != nil {
		s.logger.Warn("Failed to update draft after save", zap.String("trip_id", tripID), zap.Error(err))
	}

	if err := s.notifier.RecommendationSaved(ctx, tripID, rec); err != nil {
		s.logger.Error("Failed to publish recommendation saved event", zap.String("trip_id", tripID), zap.Error(err))
		return nil, fmt.Errorf("recommendation saved but notification failed: %w", err)
	}

	s.logger.Info("Recommendation saved",
		zap.String("trip_id", tripID),
		zap.Int("destinations", len(rec.Destinations)),
		zap.Int("revision", draft.Revision),
	)
	return &DraftView{Draft: draft, Recommendation: rec, Cost: cost.Summarize(rec)}, nil
}

// Discard drops the draft without saving.
func (s *RecommendationService) Discard(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.drafts.Load(ctx, tripID); err != nil {
		return err
	}
	if err := s.drafts.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	s.logger.Info("Draft discarded", zap.String("trip_id", tripID))
	return nil
}

// mutate runs change against the current draft document and stores the
// result only if it still decodes.
func (s *RecommendationService) mutate(ctx context.Context, tripID, op string, change func(doc any) (any, error)) (view *DraftView, err error) {
	defer func() {
		metrics.DraftEdits.WithLabelValues(metrics.Result(err)).Inc()
		if err != nil {
			s.logger.Debug("Draft edit rejected", zap.String("trip_id", tripID), zap.String("op", op), zap.Error(err))
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.drafts.Load(ctx, tripID)
	if err != nil {
		return nil, err
	}

	doc, err := change(draft.Document)
	if err != nil {
		return nil, err
	}
	rec, err := decodeDraft(doc)
	if err != nil {
		return nil, err
	}

	next := *draft
	next.Document = doc
	next.Revision++
	next.UpdatedAt = s.now()
	if err := s.drafts.Save(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return &DraftView{Draft: &next, Recommendation: rec, Cost: cost.Summarize(rec)}, nil
}

func (s *RecommendationService) view(draft *models.Draft) (*DraftView, error) {
	rec, err := decodeDraft(draft.Document)
	if err != nil {
		return nil, err
	}
	return &DraftView{Draft: draft, Recommendation: rec, Cost: cost.Summarize(rec)}, nil
}

func decodeDraft(doc any) (*models.TripRecommendation, error) {
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: document root must be an object", ErrInvalidDocument)
	}
	rec, err := models.FromValue(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return rec, nil
}
