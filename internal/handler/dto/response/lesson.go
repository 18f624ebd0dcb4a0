package response

import (
	"gym-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type LessonAvailabilityResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	DayOfWeek      int       `json:"dayOfWeek"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Capacity       int32     `json:"capacity"`
	BookedCount    int64     `json:"bookedCount"`
	AvailableSpots int32     `json:"availableSpots"`
}

func FromLessonAvailabilityView(v *queries.LessonAvailabilityView) *LessonAvailabilityResponse {
	return &LessonAvailabilityResponse{
		ID:             v.ID,
		Name:           v.Name,
		DayOfWeek:      v.DayOfWeek,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		Capacity:       v.Capacity,
		BookedCount:    v.BookedCount,
		AvailableSpots: v.AvailableSpots,
	}
}
