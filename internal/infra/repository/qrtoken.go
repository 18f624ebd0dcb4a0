package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/qrtoken"
	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type QRTokenRepository struct {
	dbtx db.DBTX
}

func NewQRTokenRepository(dbtx db.DBTX) shared.QRTokenRepository {
	return &QRTokenRepository{dbtx: dbtx}
}

func (r *QRTokenRepository) Create(ctx context.Context, t *qrtoken.QRToken) error {
	const query = `
		INSERT INTO qr_tokens (id, booking_id, code, status, expires_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.dbtx.Exec(ctx, query,
		t.ID(), t.BookingID(), t.Code(), t.Status().String(), t.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create qr token", err)
	}
	return nil
}

// FindByCodeForUpdate locks both the token and its booking, so a double scan
// of the same code serializes on the first transaction.
func (r *QRTokenRepository) FindByCodeForUpdate(ctx context.Context, code string) (*shared.TokenWithBooking, error) {
	const query = `
		SELECT qr.id, qr.code, qr.status, qr.expires_at, qr.used_at,
		       b.id, b.user_id, b.lesson_id, b.status, b.lesson_date, b.check_in_time,
		       l.name, l.start_time::text, l.end_time::text
		FROM qr_tokens qr
		JOIN bookings b ON b.id = qr.booking_id
		JOIN lessons l ON l.id = b.lesson_id
		WHERE qr.code = $1
		FOR UPDATE OF qr, b`

	var (
		snap          shared.TokenWithBooking
		tokenStatus   string
		bookingStatus string
	)
	err := r.dbtx.QueryRow(ctx, query, code).Scan(
		&snap.TokenID, &snap.Code, &tokenStatus, &snap.ExpiresAt, &snap.UsedAt,
		&snap.BookingID, &snap.BookingUserID, &snap.LessonID, &bookingStatus, &snap.LessonDate, &snap.CheckInTime,
		&snap.LessonName, &snap.StartTime, &snap.EndTime,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find qr token", err)
	}
	snap.TokenStatus = qrtoken.Status(tokenStatus)
	snap.BookingStatus = booking.Status(bookingStatus)
	return &snap, nil
}

func (r *QRTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	const query = `
		UPDATE qr_tokens
		SET status = 'used', used_at = $2
		WHERE id = $1 AND status = 'active'`

	tag, err := r.dbtx.Exec(ctx, query, id, usedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to mark qr token used", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("qr token is not active", nil, infra.KindConflict)
	}
	return nil
}

// ExpireActiveByBookingID retires the booking's token on cancellation.
// Used tokens are left as the check-in record.
func (r *QRTokenRepository) ExpireActiveByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	const query = `
		UPDATE qr_tokens
		SET status = 'expired'
		WHERE booking_id = $1 AND status = 'active'`

	if _, err := r.dbtx.Exec(ctx, query, bookingID); err != nil {
		return infra.WrapRepoErr("failed to expire qr token", err)
	}
	return nil
}
