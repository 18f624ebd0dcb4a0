package readstore

import (
	"context"

	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

const bookingViewColumns = `
	b.id, b.lesson_id, l.name, b.lesson_date, l.start_time::text, l.end_time::text,
	b.status, b.credits_used, b.check_in_time, b.check_out_time,
	qr.code, qr.status, b.created_at`

func scanBookingView(row interface{ Scan(dest ...any) error }) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.LessonID, &v.LessonName, &v.LessonDate, &v.StartTime, &v.EndTime,
		&v.Status, &v.CreditsUsed, &v.CheckInTime, &v.CheckOutTime,
		&v.QRCode, &v.QRStatus, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN lessons l ON l.id = b.lesson_id
		LEFT JOIN qr_tokens qr ON qr.booking_id = b.id
		WHERE b.id = $1`

	v, err := scanBookingView(s.dbtx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return v, nil
}

func (s *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID, status *string, limit, offset int32) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN lessons l ON l.id = b.lesson_id
		LEFT JOIN qr_tokens qr ON qr.booking_id = b.id
		WHERE b.user_id = $1 AND ($2::text IS NULL OR b.status = $2)
		ORDER BY b.lesson_date DESC, b.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.dbtx.Query(ctx, query, userID, status, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err, infra.KindDBFailure)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err, infra.KindDBFailure)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err, infra.KindDBFailure)
	}
	return views, nil
}

func (s *BookingReadStore) CountByUser(ctx context.Context, userID uuid.UUID, status *string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM bookings
		WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)`

	var count int64
	if err := s.dbtx.QueryRow(ctx, query, userID, status).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err, infra.KindDBFailure)
	}
	return count, nil
}

func (s *BookingReadStore) StatsByUser(ctx context.Context, userID uuid.UUID) (*queries.BookingStatsView, error) {
	const query = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'confirmed'),
		       COUNT(*) FILTER (WHERE status = 'cancelled'),
		       COUNT(*) FILTER (WHERE status = 'completed'),
		       COUNT(*) FILTER (WHERE check_in_time IS NOT NULL)
		FROM bookings
		WHERE user_id = $1`

	var v queries.BookingStatsView
	err := s.dbtx.QueryRow(ctx, query, userID).Scan(
		&v.TotalBookings, &v.ConfirmedBookings, &v.CancelledBookings,
		&v.CompletedBookings, &v.AttendedLessons,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking stats", err, infra.KindDBFailure)
	}
	return &v, nil
}
