package lesson

import (
	"errors"
	"time"

	"gym-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInactive       = errors.New("lesson is not active")
	ErrWrongDayOfWeek = errors.New("lesson is not held on that day")
	ErrDateNotFuture  = errors.New("lesson date must be in the future")
	ErrFull           = errors.New("lesson is full")
	ErrInvalidCap     = errors.New("lesson capacity must be positive")
)

// Lesson is a recurring class definition: fixed weekday, time window and
// capacity. The booking core never mutates it; catalog management lives
// elsewhere.
type Lesson struct {
	id        uuid.UUID
	name      string
	dayOfWeek int // 0-6, Sunday=0
	startTime string
	endTime   string
	capacity  int32
	isActive  bool
}

func ReconstructLesson(id uuid.UUID, name string, dayOfWeek int, startTime, endTime string, capacity int32, isActive bool) (*Lesson, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCap
	}
	return &Lesson{
		id:        id,
		name:      name,
		dayOfWeek: dayOfWeek,
		startTime: startTime,
		endTime:   endTime,
		capacity:  capacity,
		isActive:  isActive,
	}, nil
}

func (l *Lesson) ID() uuid.UUID     { return l.id }
func (l *Lesson) Name() string      { return l.name }
func (l *Lesson) DayOfWeek() int    { return l.dayOfWeek }
func (l *Lesson) StartTime() string { return l.startTime }
func (l *Lesson) EndTime() string   { return l.endTime }
func (l *Lesson) Capacity() int32   { return l.capacity }
func (l *Lesson) IsActive() bool    { return l.isActive }

// ValidateBookingDate enforces the schedule rules for a prospective booking:
// the lesson must be active, the date must fall on the lesson's weekday and
// must be strictly after today's calendar date.
func (l *Lesson) ValidateBookingDate(now, lessonDate time.Time) error {
	if !l.isActive {
		return ErrInactive
	}
	date := clock.DateOf(lessonDate)
	if int(date.Weekday()) != l.dayOfWeek {
		return ErrWrongDayOfWeek
	}
	if !date.After(clock.DateOf(now)) {
		return ErrDateNotFuture
	}
	return nil
}

// EnsureCapacity fails when the non-cancelled booking count has reached the
// fixed capacity. The caller must hold a lock on the lesson row so the count
// cannot move under it.
func (l *Lesson) EnsureCapacity(currentBookingCount int64) error {
	if currentBookingCount >= int64(l.capacity) {
		return ErrFull
	}
	return nil
}

func (l *Lesson) AvailableSpots(currentBookingCount int64) int32 {
	spots := int64(l.capacity) - currentBookingCount
	if spots < 0 {
		return 0
	}
	return int32(spots)
}
