package booking

import (
	"errors"
	"time"

	"gym-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// CancellationWindow is the cutoff before the lesson date under which a
// booking can no longer be cancelled (and no refund is issued).
const CancellationWindow = 48 * time.Hour

var (
	ErrNotOwner         = errors.New("booking belongs to another user")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrWindowClosed     = errors.New("cancellation window is closed")
	ErrNotConfirmed     = errors.New("booking is not confirmed")
	ErrWrongDay         = errors.New("check-in is only valid on the lesson day")
	ErrAlreadyCheckedIn = errors.New("booking is already checked in")
)

// Booking reserves one seat in one occurrence (lesson + calendar date) of a
// lesson. Lifecycle: confirmed -> cancelled | completed | no_show.
type Booking struct {
	id           uuid.UUID
	userID       uuid.UUID
	lessonID     uuid.UUID
	lessonDate   time.Time // midnight UTC
	status       Status
	creditsUsed  int32
	checkInTime  *time.Time
	checkOutTime *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(userID, lessonID uuid.UUID, lessonDate time.Time) *Booking {
	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		lessonID:    lessonID,
		lessonDate:  clock.DateOf(lessonDate),
		status:      StatusConfirmed,
		creditsUsed: 1,
	}
}

func ReconstructBooking(
	id, userID, lessonID uuid.UUID,
	lessonDate time.Time,
	status Status,
	creditsUsed int32,
	checkInTime, checkOutTime *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		lessonID:     lessonID,
		lessonDate:   clock.DateOf(lessonDate),
		status:       status,
		creditsUsed:  creditsUsed,
		checkInTime:  checkInTime,
		checkOutTime: checkOutTime,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) LessonID() uuid.UUID      { return b.lessonID }
func (b *Booking) LessonDate() time.Time    { return b.lessonDate }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreditsUsed() int32       { return b.creditsUsed }
func (b *Booking) CheckInTime() *time.Time  { return b.checkInTime }
func (b *Booking) CheckOutTime() *time.Time { return b.checkOutTime }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Booking) HoursUntilLesson(now time.Time) float64 {
	return b.lessonDate.Sub(now).Hours()
}

// EnsureCancellableBy checks ownership, state and the cancellation window.
// It performs no mutation; the actual cancellation happens transactionally
// together with the credit refund and token expiry.
func (b *Booking) EnsureCancellableBy(userID uuid.UUID, now time.Time) error {
	if b.userID != userID {
		return ErrNotOwner
	}
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.lessonDate.Sub(now) < CancellationWindow {
		return ErrWindowClosed
	}
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

// EnsureCheckInAllowed validates the check-in preconditions: the booking must
// be confirmed, today must be the lesson's calendar date and the seat must
// not already be checked in.
func (b *Booking) EnsureCheckInAllowed(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	if !clock.SameDate(now, b.lessonDate) {
		return ErrWrongDay
	}
	if b.checkInTime != nil {
		return ErrAlreadyCheckedIn
	}
	return nil
}

func (b *Booking) CheckIn(now time.Time) error {
	if err := b.EnsureCheckInAllowed(now); err != nil {
		return err
	}
	t := now
	b.checkInTime = &t
	b.updatedAt = now
	return nil
}
