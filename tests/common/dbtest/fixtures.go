//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gym-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

// all fixture users share the same password so tests can log in through the API
func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		passwordHash = h
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestLesson(t *testing.T, db DBLike, name string, dayOfWeek int, startTime, endTime string, capacity int32) uuid.UUID {
	t.Helper()

	lessonID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO lessons (id, name, day_of_week, start_time, end_time, capacity, is_active) VALUES ($1, $2, $3, $4, $5, $6, true)",
		lessonID, name, dayOfWeek, startTime, endTime, capacity)
	require.NoError(t, err)

	return lessonID
}

// CreateTestMembership inserts an active membership valid from a month ago to
// a month from now.
func CreateTestMembership(t *testing.T, db DBLike, userID uuid.UUID, credits int32) uuid.UUID {
	t.Helper()

	membershipID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		`INSERT INTO memberships (id, user_id, package_id, status, credits_remaining, credits_total, start_date, end_date)
		 VALUES ($1, $2, $3, 'active', $4, $4, $5, $6)`,
		membershipID, userID, uuid.New(), credits,
		now.AddDate(0, -1, 0).Format(time.DateOnly), now.AddDate(0, 1, 0).Format(time.DateOnly))
	require.NoError(t, err)

	return membershipID
}

func CreateTestBooking(t *testing.T, db DBLike, userID, lessonID uuid.UUID, lessonDate time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, user_id, lesson_id, lesson_date, status, credits_used) VALUES ($1, $2, $3, $4, $5, 1)",
		bookingID, userID, lessonID, lessonDate.Format(time.DateOnly), status)
	require.NoError(t, err)

	return bookingID
}

func CreateTestQRToken(t *testing.T, db DBLike, bookingID uuid.UUID, code string, expiresAt time.Time) uuid.UUID {
	t.Helper()

	tokenID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO qr_tokens (id, booking_id, code, status, expires_at) VALUES ($1, $2, $3, 'active', $4)",
		tokenID, bookingID, code, expiresAt)
	require.NoError(t, err)

	return tokenID
}

func RemainingCredits(t *testing.T, db DBLike, userID uuid.UUID) int32 {
	t.Helper()

	var credits int32
	err := db.QueryRow(context.Background(),
		"SELECT credits_remaining FROM memberships WHERE user_id = $1 AND status = 'active' ORDER BY end_date DESC LIMIT 1",
		userID).Scan(&credits)
	require.NoError(t, err)
	return credits
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
