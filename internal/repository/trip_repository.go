package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-desk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TripRepository stores trips in Postgres. Intake answers and the
// recommendation document live in JSONB columns.
type TripRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTripRepository(db *pgxpool.Pool, logger *zap.Logger) *TripRepository {
	return &TripRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	intake, err := marshalNullable(trip.Intake)
	if err != nil {
		return fmt.Errorf("failed to encode intake: %w", err)
	}
	rec, err := marshalNullable(trip.Recommendation)
	if err != nil {
		return fmt.Errorf("failed to encode recommendation: %w", err)
	}

	query := squirrel.Insert("trips").
		Columns("id", "owner_id", "status", "intake", "destination_recommendation", "created_at", "updated_at").
		Values(trip.ID, trip.OwnerID, trip.Status, intake, rec, trip.CreatedAt, trip.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TripRepository) Get(ctx context.Context, id string) (*models.Trip, error) {
	query := squirrel.Select("id", "owner_id", "status", "intake", "destination_recommendation", "created_at", "updated_at").
		From("trips").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		trip   models.Trip
		intake []byte
		rec    []byte
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&trip.ID, &trip.OwnerID, &trip.Status, &intake, &rec, &trip.CreatedAt, &trip.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	if err := decodeIntake(intake, &trip); err != nil {
		return nil, err
	}
	if trip.Recommendation, err = models.DecodeDocument(rec); err != nil {
		r.logger.Warn("Stored recommendation is unreadable", zap.String("trip_id", id), zap.Error(err))
		return nil, err
	}
	trip.HasRecommendation = trip.Recommendation != nil

	return &trip, nil
}

// List returns trips newest first without their recommendation documents.
func (r *TripRepository) List(ctx context.Context, status string, limit, offset int) ([]*models.Trip, error) {
	limit, offset = normalizeLimit(limit, offset)

	query := squirrel.Select("id", "owner_id", "status", "intake", "destination_recommendation IS NOT NULL", "created_at", "updated_at").
		From("trips").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		query = query.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []*models.Trip{}
	for rows.Next() {
		var (
			trip   models.Trip
			intake []byte
		)
		if err := rows.Scan(
			&trip.ID, &trip.OwnerID, &trip.Status, &intake, &trip.HasRecommendation, &trip.CreatedAt, &trip.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := decodeIntake(intake, &trip); err != nil {
			return nil, err
		}
		trips = append(trips, &trip)
	}

	return trips, rows.Err()
}

func (r *TripRepository) SetRecommendation(ctx context.Context, id string, doc models.Document) error {
	data, err := marshalNullable(doc)
	if err != nil {
		return fmt.Errorf("failed to encode recommendation: %w", err)
	}

	query := squirrel.Update("trips").
		Set("destination_recommendation", data).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTripNotFound
	}
	return nil
}

func decodeIntake(data []byte, trip *models.Trip) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &trip.Intake); err != nil {
		return fmt.Errorf("failed to decode intake: %w", err)
	}
	return nil
}
