package repository

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/infra"
	"gym-booking/internal/infra/db"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	dbtx db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) shared.BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, user_id, lesson_id, lesson_date, status, credits_used)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.dbtx.Exec(ctx, query,
		b.ID(), b.UserID(), b.LessonID(), b.LessonDate(), b.Status().String(), b.CreditsUsed(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, user_id, lesson_id, lesson_date, status, credits_used,
		       check_in_time, check_out_time, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var (
		bookingID    uuid.UUID
		userID       uuid.UUID
		lessonID     uuid.UUID
		lessonDate   time.Time
		status       string
		creditsUsed  int32
		checkInTime  *time.Time
		checkOutTime *time.Time
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&bookingID, &userID, &lessonID, &lessonDate, &status, &creditsUsed,
		&checkInTime, &checkOutTime, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}

	return booking.ReconstructBooking(
		bookingID, userID, lessonID, lessonDate,
		booking.Status(status), creditsUsed,
		checkInTime, checkOutTime, createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, id uuid.UUID, now time.Time) error {
	const query = `
		UPDATE bookings
		SET status = 'cancelled', updated_at = $2
		WHERE id = $1 AND status <> 'cancelled'`

	tag, err := r.dbtx.Exec(ctx, query, id, now)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking already cancelled", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) SetCheckInTime(ctx context.Context, id uuid.UUID, checkInTime time.Time) error {
	const query = `
		UPDATE bookings
		SET check_in_time = $2, updated_at = $2
		WHERE id = $1 AND check_in_time IS NULL`

	tag, err := r.dbtx.Exec(ctx, query, id, checkInTime)
	if err != nil {
		return infra.WrapRepoErr("failed to set check-in time", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking already checked in", nil, infra.KindConflict)
	}
	return nil
}
