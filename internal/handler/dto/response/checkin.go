package response

import (
	"time"

	"gym-booking/internal/usecase/commands"
)

type CheckInResponse struct {
	LessonName  string    `json:"lessonName"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	CheckInTime time.Time `json:"checkInTime"`
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	return &CheckInResponse{
		LessonName:  r.LessonName,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		CheckInTime: r.CheckInTime,
	}
}
