// Package repo contains the storage for the trip collection.
// TripRepo has three implementations: an in-memory store that lives as long
// as the process, a Postgres store, and a Redis read-through cache that wraps
// either of them. No business logic lives here.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, pgx.Tx
// and pgxmock pools. Integration tests pass a transaction that is rolled back
// after each test; unit tests pass a pgxmock pool.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for the trip collection.
// Trips are stored whole: the day list travels with the trip, and Update
// replaces every mutable field including the days.
type TripRepo interface {
	// Create stores a new trip. The caller assigns ID; the store sets
	// CreatedAt and UpdatedAt.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID returns the trip with the given ID regardless of owner.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// ListPaged returns one page of the owner's trips ordered by start date,
	// plus the owner's total trip count.
	ListPaged(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// ListByOwner returns every trip of the owner ordered by start date.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Trip, error)

	// Update replaces the stored trip with the same ID and returns the stored
	// result. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
// The day list is stored as a jsonb document on the trip row.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx or a pgxmock pool.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, owner_id, name, destination, description, start_date, end_date,
		       status, image_url, days, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (id, owner_id, name, destination, description, start_date, end_date,
		                   status, image_url, days)
		VALUES (@id, @owner_id, @name, @destination, @description, @start_date, @end_date,
		        @status, @image_url, @days)
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns a page of the owner's trips and the owner's total count.
func (r *pgTripRepo) ListPaged(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const countQ = `SELECT count(*) FROM trips WHERE owner_id = @owner_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"owner_id": ownerID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	const q = `SELECT ` + tripColumns + `
		FROM trips
		WHERE owner_id = @owner_id
		ORDER BY start_date, created_at
		LIMIT @limit OFFSET @offset`

	trips, err := r.query(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID,
		"limit":    p.Limit,
		"offset":   p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	return trips, total, nil
}

// ListByOwner returns every trip of the owner ordered by start date.
func (r *pgTripRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + `
		FROM trips
		WHERE owner_id = @owner_id
		ORDER BY start_date, created_at`

	trips, err := r.query(ctx, q, pgx.NamedArgs{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByOwner: %w", err)
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name        = @name,
		    destination = @destination,
		    description = @description,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    status      = @status,
		    image_url   = @image_url,
		    days        = @days,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args, err := tripArgs(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Trip, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// tripArgs builds the named arguments shared by Create and Update.
// Days are marshalled here so the driver receives raw jsonb bytes.
func tripArgs(trip domain.Trip) (pgx.NamedArgs, error) {
	days := trip.Days
	if days == nil {
		days = []domain.Day{}
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}
	return pgx.NamedArgs{
		"id":          trip.ID,
		"owner_id":    trip.OwnerID,
		"name":        trip.Name,
		"destination": trip.Destination,
		"description": trip.Description,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"status":      string(trip.Status),
		"image_url":   trip.ImageURL,
		"days":        raw,
	}, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// It maps pgx.ErrNoRows to domain.ErrNotFound and decodes the days document.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t               domain.Trip
		status          string
		rawDays         []byte
		startDate, endD time.Time
	)

	err := s.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Destination, &t.Description,
		&startDate, &endD, &status, &t.ImageURL, &rawDays, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.StartDate = startDate.UTC()
	t.EndDate = endD.UTC()
	t.Status = domain.TripStatus(status)
	t.Days = []domain.Day{}
	if len(rawDays) > 0 {
		if err := json.Unmarshal(rawDays, &t.Days); err != nil {
			return domain.Trip{}, fmt.Errorf("decode days: %w", err)
		}
	}
	return t, nil
}
