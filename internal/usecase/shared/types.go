package shared

import (
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/qrtoken"

	"github.com/google/uuid"
)

// TokenWithBooking is the command-side snapshot behind check-in: the QR token
// joined with its booking and the lesson facts shown to the scanner.
type TokenWithBooking struct {
	TokenID       uuid.UUID
	Code          string
	TokenStatus   qrtoken.Status
	ExpiresAt     time.Time
	UsedAt        *time.Time
	BookingID     uuid.UUID
	BookingUserID uuid.UUID
	LessonID      uuid.UUID
	BookingStatus booking.Status
	LessonDate    time.Time
	CheckInTime   *time.Time
	LessonName    string
	StartTime     string
	EndTime       string
}
