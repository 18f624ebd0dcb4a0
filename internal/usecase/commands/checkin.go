package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/qrtoken"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"
)

var (
	ErrInvalidQRCode       = errs.New("invalid qr code")
	ErrQRNotActive         = errs.New("qr code is not active")
	ErrBookingNotConfirmed = errs.New("booking is not confirmed")
	ErrWrongDay            = errs.New("qr code is only valid on the lesson day")
	ErrAlreadyCheckedIn    = errs.New("already checked in")
)

type CheckInResult struct {
	LessonName  string
	StartTime   string
	EndTime     string
	CheckInTime time.Time
}

type CheckInCommands interface {
	CheckIn(ctx context.Context, code string) (*CheckInResult, error)
}

type checkInCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCheckInCommands(uow shared.UnitOfWork, clk clock.Clock) CheckInCommands {
	return &checkInCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// CheckIn consumes a QR token: the booking gets its check-in time and the
// token flips to used in the same transaction. The token row is locked while
// validating, so a double submit of the same code succeeds exactly once.
func (c *checkInCommandsImpl) CheckIn(ctx context.Context, code string) (*CheckInResult, error) {
	now := c.clock.Now()
	var result *CheckInResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.QRTokens().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidQRCode
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if snap.TokenStatus != qrtoken.StatusActive {
			return ErrQRNotActive
		}

		b := booking.ReconstructBooking(
			snap.BookingID, snap.BookingUserID, snap.LessonID,
			snap.LessonDate, snap.BookingStatus, 1,
			snap.CheckInTime, nil, time.Time{}, time.Time{},
		)
		if err := b.EnsureCheckInAllowed(now); err != nil {
			return mapCheckInErr(err)
		}

		if err := tx.Bookings().SetCheckInTime(ctx, snap.BookingID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.QRTokens().MarkUsed(ctx, snap.TokenID, now); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		result = &CheckInResult{
			LessonName:  snap.LessonName,
			StartTime:   snap.StartTime,
			EndTime:     snap.EndTime,
			CheckInTime: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("check-in completed", "lesson", result.LessonName)
	return result, nil
}

func mapCheckInErr(err error) error {
	switch err {
	case booking.ErrNotConfirmed:
		return ErrBookingNotConfirmed
	case booking.ErrWrongDay:
		return ErrWrongDay
	case booking.ErrAlreadyCheckedIn:
		return ErrAlreadyCheckedIn
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
