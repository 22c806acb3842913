// Package storage persists saved trips for user profiles.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TripDetails is the flexible JSONB portion of a saved trip.
type TripDetails struct {
	Country   string `json:"country,omitempty"`
	NumAdults int    `json:"num_adults,omitempty"`
	NumKids   int    `json:"num_kids,omitempty"`
	KidAges   []int  `json:"kid_ages,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Trip is a saved trip record.
type Trip struct {
	ID          int         `json:"id"`
	UserID      string      `json:"user_id"`
	Destination string      `json:"destination"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Details     TripDetails `json:"details"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Querier abstracts the subset of pgxpool.Pool used by Repository, so tests
// can inject a mock.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for saved trips.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// SaveTrip inserts a trip and returns its generated ID.
func (r *Repository) SaveTrip(ctx context.Context, t *Trip) (int, error) {
	detailsJSON, err := json.Marshal(t.Details)
	if err != nil {
		return 0, fmt.Errorf("marshaling trip details for user %s: %w", t.UserID, err)
	}

	const q = `
		INSERT INTO trips (user_id, destination, start_date, end_date, details, updated_at)
		VALUES ($1, $2, NULLIF($3, '')::date, NULLIF($4, '')::date, $5, NOW())
		RETURNING id
	`

	var id int
	err = r.q.QueryRow(ctx, q, t.UserID, t.Destination, t.StartDate, t.EndDate, detailsJSON).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting trip for user %s: %w", t.UserID, err)
	}
	return id, nil
}

// GetTrip retrieves a single trip by ID. Returns nil, nil when not found.
func (r *Repository) GetTrip(ctx context.Context, id int) (*Trip, error) {
	const q = `
		SELECT id, user_id, destination,
		       COALESCE(start_date::text, ''), COALESCE(end_date::text, ''),
		       details, created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	t, err := scanTrip(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying trip %d: %w", id, err)
	}
	return t, nil
}

// ListTrips retrieves all trips saved by a user, newest first.
func (r *Repository) ListTrips(ctx context.Context, userID string) ([]*Trip, error) {
	const q = `
		SELECT id, user_id, destination,
		       COALESCE(start_date::text, ''), COALESCE(end_date::text, ''),
		       details, created_at, updated_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("querying trips for user %s: %w", userID, err)
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning trip row: %w", err)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trip rows: %w", err)
	}
	return trips, nil
}

// DeleteTrip removes a trip owned by the given user. The bool reports whether
// a row was actually deleted.
func (r *Repository) DeleteTrip(ctx context.Context, id int, userID string) (bool, error) {
	const q = `DELETE FROM trips WHERE id = $1 AND user_id = $2`

	tag, err := r.q.Exec(ctx, q, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting trip %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var t Trip
	var detailsJSON []byte

	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Destination,
		&t.StartDate,
		&t.EndDate,
		&detailsJSON,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(detailsJSON, &t.Details); err != nil {
		return nil, fmt.Errorf("unmarshaling trip details: %w", err)
	}
	return &t, nil
}
