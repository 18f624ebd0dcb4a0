package shared

import (
	"context"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/lesson"
	"gym-booking/internal/domain/membership"
	"gym-booking/internal/domain/qrtoken"
	"gym-booking/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the single storage port of the booking core. Every multi-step
// mutation (create booking, cancel booking, check-in) runs inside Within so
// all of its effects commit or roll back together.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: command-side reads outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Lessons() LessonRepository
	Bookings() BookingRepository
	Memberships() MembershipRepository
	QRTokens() QRTokenRepository
	Reads() CommandReads
	DB() db.DBTX
}

// LessonRepository reads the lesson catalog on the command side. Lessons are
// read-only facts to this core, but FindByIDForUpdate takes a row lock: the
// lock serializes concurrent bookings of the same lesson so the capacity
// count cannot race with the insert.
type LessonRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*lesson.Lesson, error)
	CountActiveBookings(ctx context.Context, lessonID uuid.UUID, lessonDate time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, now time.Time) error
	SetCheckInTime(ctx context.Context, id uuid.UUID, checkInTime time.Time) error
}

type MembershipRepository interface {
	// ActiveByUserForUpdate locks and returns the user's active membership
	// with end_date >= today, latest-expiring first.
	ActiveByUserForUpdate(ctx context.Context, userID uuid.UUID, now time.Time) (*membership.Membership, error)
	// DebitCredits decrements credits_remaining by amount as one conditional
	// UPDATE guarded by credits_remaining >= amount, returning the new
	// balance. Zero matched rows surfaces as KindConflict.
	DebitCredits(ctx context.Context, membershipID uuid.UUID, amount int32) (int32, error)
	// RefundCreditsToActive increments the balance of the user's currently
	// active membership (latest end_date), which is not necessarily the one
	// originally debited.
	RefundCreditsToActive(ctx context.Context, userID uuid.UUID, amount int32) (int32, error)
}

type QRTokenRepository interface {
	Create(ctx context.Context, t *qrtoken.QRToken) error
	// FindByCodeForUpdate locks the token and its booking and returns them
	// joined with the lesson facts the check-in response needs.
	FindByCodeForUpdate(ctx context.Context, code string) (*TokenWithBooking, error)
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	ExpireActiveByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type CommandReads interface {
	ActiveBookingExists(ctx context.Context, userID, lessonID uuid.UUID, lessonDate time.Time) (bool, error)
}
