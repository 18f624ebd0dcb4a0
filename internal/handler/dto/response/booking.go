package response

import (
	"time"

	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	ID               uuid.UUID `json:"id"`
	LessonID         uuid.UUID `json:"lessonId"`
	LessonDate       string    `json:"lessonDate"`
	Status           string    `json:"status"`
	CreditsUsed      int32     `json:"creditsUsed"`
	QRCode           string    `json:"qrCode"`
	RemainingCredits int32     `json:"remainingCredits"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:               r.BookingID,
		LessonID:         r.LessonID,
		LessonDate:       r.LessonDate.Format(time.DateOnly),
		Status:           r.Status.String(),
		CreditsUsed:      r.CreditsUsed,
		QRCode:           r.QRCode,
		RemainingCredits: r.RemainingCredits,
	}
}

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	LessonID     uuid.UUID  `json:"lessonId"`
	LessonName   string     `json:"lessonName"`
	LessonDate   string     `json:"lessonDate"`
	StartTime    string     `json:"startTime"`
	EndTime      string     `json:"endTime"`
	Status       string     `json:"status"`
	CreditsUsed  int32      `json:"creditsUsed"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	QRCode       *string    `json:"qrCode,omitempty"`
	QRStatus     *string    `json:"qrStatus,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		LessonID:     v.LessonID,
		LessonName:   v.LessonName,
		LessonDate:   v.LessonDate.Format(time.DateOnly),
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Status:       v.Status,
		CreditsUsed:  v.CreditsUsed,
		CheckInTime:  v.CheckInTime,
		CheckOutTime: v.CheckOutTime,
		QRCode:       v.QRCode,
		QRStatus:     v.QRStatus,
		CreatedAt:    v.CreatedAt,
	}
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	Limit    int                `json:"limit"`
}

type BookingStatsResponse struct {
	TotalBookings     int64 `json:"totalBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
	CompletedBookings int64 `json:"completedBookings"`
	AttendedLessons   int64 `json:"attendedLessons"`
}

func FromBookingStatsView(v *queries.BookingStatsView) *BookingStatsResponse {
	return &BookingStatsResponse{
		TotalBookings:     v.TotalBookings,
		ConfirmedBookings: v.ConfirmedBookings,
		CancelledBookings: v.CancelledBookings,
		CompletedBookings: v.CompletedBookings,
		AttendedLessons:   v.AttendedLessons,
	}
}
