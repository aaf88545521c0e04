//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a resource open between opensAt and closesAt (minutes since midnight)
func CreateTestResource(t *testing.T, db DBLike, name string, categories []string, opensAt, closesAt int, pricePerHourCents int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO resources (name, categories, opens_at, closes_at, price_per_hour_cents)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		name, categories, opensAt, closesAt, pricePerHourCents).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts a booking directly, bypassing the past-interval check
func CreateTestBooking(t *testing.T, db DBLike, resourceID uuid.UUID, date time.Time, startMinute, endMinute int, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (id, resource_id, booking_date, start_minute, end_minute, status, price_cents, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 0, now(), now()) RETURNING id`,
		uuid.New(), resourceID, date, startMinute, endMinute, status).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the two courts every suite starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO resources (name, categories, opens_at, closes_at, price_per_hour_cents) VALUES
		    ('Central Court', ARRAY['tennis'], 360, 1320, 3000),
		    ('Bay Badminton Hall', ARRAY['badminton'], 540, 1260, 2000);
	`)
	if err != nil {
		return err
	}

	return nil
}

// ResetDB empties every table and reseeds reference data. Bookings go
// first: they reference resources.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, `TRUNCATE bookings, resources RESTART IDENTITY CASCADE`); err != nil {
		return err
	}
	return SeedReferenceData(pool)
}
