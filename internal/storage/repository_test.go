package storage_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsaathi/tripsaathi/internal/storage"
)

// ---- mock Querier ----

type mockQuerier struct {
	queryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	queryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	execFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.queryRowFn(ctx, sql, args...)
}
func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return m.queryFn(ctx, sql, args...)
}
func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return m.execFn(ctx, sql, args...)
}

// ---- mock pgx.Row ----

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (f *fakeRow) Scan(dest ...any) error { return f.scanFn(dest...) }

// ---- mock pgx.Rows ----

type fakeRows struct {
	rows   [][]any
	idx    int
	rowErr error
}

func (f *fakeRows) Next() bool                                   { f.idx++; return f.idx <= len(f.rows) }
func (f *fakeRows) Err() error                                   { return f.rowErr }
func (f *fakeRows) Close()                                       {}
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Scan(dest ...any) error {
	return scanInto(f.rows[f.idx-1], dest...)
}

func scanInto(row []any, dest ...any) error {
	for i, d := range dest {
		if i >= len(row) {
			break
		}
		switch v := d.(type) {
		case *int:
			*v = row[i].(int)
		case *string:
			*v = row[i].(string)
		case *[]byte:
			*v = row[i].([]byte)
		case *time.Time:
			*v = row[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan destination %T", d)
		}
	}
	return nil
}

func tripRow(id int, userID string) []any {
	details, _ := json.Marshal(storage.TripDetails{Country: "India", NumAdults: 2, NumKids: 1, KidAges: []int{5}})
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	return []any{id, userID, "Goa", "2026-11-20", "2026-11-25", details, now, now}
}

// ---- SaveTrip ----

func TestSaveTrip_ReturnsID(t *testing.T) {
	q := &mockQuerier{
		queryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			assert.Contains(t, sql, "INSERT INTO trips")
			assert.Equal(t, "user-1", args[0])
			assert.Equal(t, "Goa", args[1])
			return &fakeRow{scanFn: func(dest ...any) error {
				*(dest[0].(*int)) = 42
				return nil
			}}
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	id, err := repo.SaveTrip(context.Background(), &storage.Trip{
		UserID:      "user-1",
		Destination: "Goa",
		StartDate:   "2026-11-20",
		EndDate:     "2026-11-25",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestSaveTrip_InsertError(t *testing.T) {
	q := &mockQuerier{
		queryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeRow{scanFn: func(_ ...any) error { return fmt.Errorf("db down") }}
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.SaveTrip(context.Background(), &storage.Trip{UserID: "user-1", Destination: "Goa"})
	require.Error(t, err)
}

// ---- GetTrip ----

func TestGetTrip_Found(t *testing.T) {
	q := &mockQuerier{
		queryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeRow{scanFn: func(dest ...any) error {
				return scanInto(tripRow(7, "user-1"), dest...)
			}}
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	trip, err := repo.GetTrip(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, "Goa", trip.Destination)
	assert.Equal(t, "India", trip.Details.Country)
	assert.Equal(t, []int{5}, trip.Details.KidAges)
}

func TestGetTrip_NotFound(t *testing.T) {
	q := &mockQuerier{
		queryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeRow{scanFn: func(_ ...any) error { return pgx.ErrNoRows }}
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	trip, err := repo.GetTrip(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, trip, "missing trip must be nil, nil")
}

// ---- ListTrips ----

func TestListTrips(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			assert.Contains(t, sql, "ORDER BY created_at DESC")
			assert.Equal(t, "user-1", args[0])
			return &fakeRows{rows: [][]any{tripRow(1, "user-1"), tripRow(2, "user-1")}}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	trips, err := repo.ListTrips(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, 1, trips[0].ID)
	assert.Equal(t, 2, trips[1].ID)
}

func TestListTrips_QueryError(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return nil, fmt.Errorf("db down")
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListTrips(context.Background(), "user-1")
	require.Error(t, err)
}

// ---- DeleteTrip ----

func TestDeleteTrip(t *testing.T) {
	q := &mockQuerier{
		execFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			assert.Contains(t, sql, "DELETE FROM trips")
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	deleted, err := repo.DeleteTrip(context.Background(), 7, "user-1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteTrip_NoRows(t *testing.T) {
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	deleted, err := repo.DeleteTrip(context.Background(), 7, "user-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

// ---- migrations ----

func TestRunMigrations_MissingDir(t *testing.T) {
	err := storage.RunMigrations(context.Background(), nil, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestMigrationFilesPresent(t *testing.T) {
	// The migrations directory ships with the repo and must contain at least
	// the trips table migration.
	entries, err := os.ReadDir(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)

	found := false
	for _, e := range entries {
		if e.Name() == "0001_create_trips.sql" {
			found = true
		}
	}
	assert.True(t, found)
}
