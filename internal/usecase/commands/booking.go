package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/lesson"
	"gym-booking/internal/domain/membership"
	"gym-booking/internal/domain/qrtoken"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLessonNotFound           = errs.New("lesson not found")
	ErrWrongDayOfWeek           = errs.New("lesson is not held on that day of week")
	ErrDateNotInFuture          = errs.New("lesson date is not in the future")
	ErrLessonFull               = errs.New("lesson is full")
	ErrNoActiveMembership       = errs.New("no active membership")
	ErrInsufficientCredits      = errs.New("insufficient credits")
	ErrDuplicateBooking         = errs.New("duplicate booking")
	ErrBookingNotFound          = errs.New("booking not found")
	ErrForbidden                = errs.New("booking belongs to another user")
	ErrAlreadyCancelled         = errs.New("booking already cancelled")
	ErrCancellationWindowClosed = errs.New("cancellation window closed")
	ErrDatabaseOperationFailed  = errs.New("database operation failed")
)

type CreateBookingResult struct {
	BookingID        uuid.UUID
	LessonID         uuid.UUID
	LessonDate       time.Time
	Status           booking.Status
	CreditsUsed      int32
	QRCode           string
	RemainingCredits int32
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID, lessonID uuid.UUID, lessonDate time.Time) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// CreateBooking reserves one seat in one lesson occurrence: availability
// check, credit debit, booking insert and QR token issue are one transaction.
// The lesson row is locked before the capacity count, so two concurrent
// requests for the last seat serialize and exactly one of them wins.
func (c *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	userID, lessonID uuid.UUID,
	lessonDate time.Time,
) (*CreateBookingResult, error) {
	now := c.clock.Now()
	var result *CreateBookingResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkAvailability(ctx, tx, lessonID, lessonDate, now); err != nil {
			return err
		}

		mem, err := c.findActiveMembership(ctx, tx, userID, now)
		if err != nil {
			return err
		}
		if err := mem.CanReserve(1); err != nil {
			return ErrInsufficientCredits
		}

		// Duplicate check happens before any mutation.
		exists, err := tx.Reads().ActiveBookingExists(ctx, userID, lessonID, lessonDate)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateBooking
		}

		remaining, err := tx.Memberships().DebitCredits(ctx, mem.ID(), 1)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrInsufficientCredits
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		b := booking.NewBooking(userID, lessonID, lessonDate)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateBooking
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		token, err := qrtoken.NewQRToken(b.ID(), lessonDate)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.QRTokens().Create(ctx, token); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &CreateBookingResult{
			BookingID:        b.ID(),
			LessonID:         lessonID,
			LessonDate:       clock.DateOf(lessonDate),
			Status:           b.Status(),
			CreditsUsed:      b.CreditsUsed(),
			QRCode:           token.Code(),
			RemainingCredits: remaining,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created",
		"booking_id", result.BookingID,
		"lesson_id", lessonID,
		"lesson_date", result.LessonDate.Format(time.DateOnly),
		"remaining_credits", result.RemainingCredits)

	return result, nil
}

// CancelBooking cancels a confirmed booking at least 48h before the lesson
// date, refunds its credits to the user's currently active membership and
// expires the bound QR token, all in one transaction.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := b.EnsureCancellableBy(userID, now); err != nil {
			return mapCancellationErr(err)
		}

		if err := tx.Bookings().MarkCancelled(ctx, bookingID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.QRTokens().ExpireActiveByBookingID(ctx, bookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// The refund targets the currently active membership ordered by
		// end_date desc, which may differ from the one debited at creation.
		if _, err := tx.Memberships().RefundCreditsToActive(ctx, userID, b.CreditsUsed()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// No active membership left to refund; the cancellation
				// itself still stands.
				slog.Warn("cancelled booking had no active membership to refund",
					"booking_id", bookingID, "user_id", userID)
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// checkAvailability enforces the schedule rules and the capacity limit under
// the lesson row lock.
func (c *bookingCommandsImpl) checkAvailability(
	ctx context.Context,
	tx shared.Tx,
	lessonID uuid.UUID,
	lessonDate, now time.Time,
) error {
	les, err := tx.Lessons().FindByIDForUpdate(ctx, lessonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLessonNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := les.ValidateBookingDate(now, lessonDate); err != nil {
		return mapScheduleErr(err)
	}

	count, err := tx.Lessons().CountActiveBookings(ctx, lessonID, lessonDate)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := les.EnsureCapacity(count); err != nil {
		return ErrLessonFull
	}

	return nil
}

func (c *bookingCommandsImpl) findActiveMembership(
	ctx context.Context,
	tx shared.Tx,
	userID uuid.UUID,
	now time.Time,
) (*membership.Membership, error) {
	mem, err := tx.Memberships().ActiveByUserForUpdate(ctx, userID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoActiveMembership
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return mem, nil
}

func mapScheduleErr(err error) error {
	switch err {
	case lesson.ErrInactive:
		return ErrLessonNotFound
	case lesson.ErrWrongDayOfWeek:
		return ErrWrongDayOfWeek
	case lesson.ErrDateNotFuture:
		return ErrDateNotInFuture
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func mapCancellationErr(err error) error {
	switch err {
	case booking.ErrNotOwner:
		return ErrForbidden
	case booking.ErrAlreadyCancelled:
		return ErrAlreadyCancelled
	case booking.ErrWindowClosed:
		return ErrCancellationWindowClosed
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
