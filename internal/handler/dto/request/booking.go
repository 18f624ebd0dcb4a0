package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidLessonDate = errors.New("lesson date must be YYYY-MM-DD")

type CreateBookingRequest struct {
	LessonID   uuid.UUID `json:"lesson_id" binding:"required"`
	LessonDate string    `json:"lesson_date" binding:"required"`
}

// ParseLessonDate parses the calendar date as midnight UTC.
func (r CreateBookingRequest) ParseLessonDate() (time.Time, error) {
	d, err := time.ParseInLocation(time.DateOnly, r.LessonDate, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidLessonDate
	}
	return d, nil
}

type ListBookingsRequest struct {
	Status *string `form:"status" binding:"omitempty,oneof=confirmed cancelled completed no_show"`
	Page   int     `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}
