package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	LessonID     uuid.UUID  `json:"lesson_id"`
	LessonName   string     `json:"lesson_name"`
	LessonDate   time.Time  `json:"lesson_date"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	Status       string     `json:"status"`
	CreditsUsed  int32      `json:"credits_used"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	QRCode       *string    `json:"qr_code,omitempty"`
	QRStatus     *string    `json:"qr_status,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type BookingStatsView struct {
	TotalBookings     int64 `json:"total_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	AttendedLessons   int64 `json:"attended_lessons"`
}

type LessonAvailabilityView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DayOfWeek      int       `json:"day_of_week"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Capacity       int32     `json:"capacity"`
	BookedCount    int64     `json:"booked_count"`
	AvailableSpots int32     `json:"available_spots"`
}

type MembershipView struct {
	ID               uuid.UUID `json:"id"`
	PackageID        uuid.UUID `json:"package_id"`
	Status           string    `json:"status"`
	CreditsRemaining int32     `json:"credits_remaining"`
	CreditsTotal     int32     `json:"credits_total"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
}

type AuthorizedUserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
}
