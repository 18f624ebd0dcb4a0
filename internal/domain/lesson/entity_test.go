//go:build unit

package lesson_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/lesson"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-03-02
var (
	now        = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	nextMonday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
)

func newLesson(t *testing.T, dayOfWeek int, capacity int32, isActive bool) *lesson.Lesson {
	t.Helper()
	l, err := lesson.ReconstructLesson(uuid.New(), "Yoga", dayOfWeek, "09:00", "10:00", capacity, isActive)
	require.NoError(t, err)
	return l
}

func TestReconstructLesson(t *testing.T) {
	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := lesson.ReconstructLesson(uuid.New(), "Yoga", 1, "09:00", "10:00", 0, true)
		assert.ErrorIs(t, err, lesson.ErrInvalidCap)

		_, err = lesson.ReconstructLesson(uuid.New(), "Yoga", 1, "09:00", "10:00", -3, true)
		assert.ErrorIs(t, err, lesson.ErrInvalidCap)
	})
}

func TestValidateBookingDate(t *testing.T) {
	tests := []struct {
		name       string
		lesson     *lesson.Lesson
		lessonDate time.Time
		errIs      error
	}{
		{
			name:       "future date on the lesson weekday",
			lesson:     newLesson(t, 1, 10, true),
			lessonDate: nextMonday,
		},
		{
			name:       "inactive lesson",
			lesson:     newLesson(t, 1, 10, false),
			lessonDate: nextMonday,
			errIs:      lesson.ErrInactive,
		},
		{
			name:       "wrong weekday",
			lesson:     newLesson(t, 3, 10, true),
			lessonDate: nextMonday,
			errIs:      lesson.ErrWrongDayOfWeek,
		},
		{
			name:       "same day is not bookable",
			lesson:     newLesson(t, 1, 10, true),
			lessonDate: now,
			errIs:      lesson.ErrDateNotFuture,
		},
		{
			name:       "past date",
			lesson:     newLesson(t, 1, 10, true),
			lessonDate: now.AddDate(0, 0, -7),
			errIs:      lesson.ErrDateNotFuture,
		},
		{
			name:       "time-of-day on the booking date is ignored",
			lesson:     newLesson(t, 1, 10, true),
			lessonDate: nextMonday.Add(15 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lesson.ValidateBookingDate(now, tt.lessonDate)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEnsureCapacity(t *testing.T) {
	l := newLesson(t, 1, 2, true)

	assert.NoError(t, l.EnsureCapacity(0))
	assert.NoError(t, l.EnsureCapacity(1))
	assert.ErrorIs(t, l.EnsureCapacity(2), lesson.ErrFull)
	assert.ErrorIs(t, l.EnsureCapacity(3), lesson.ErrFull)
}

func TestAvailableSpots(t *testing.T) {
	l := newLesson(t, 1, 5, true)

	assert.Equal(t, int32(5), l.AvailableSpots(0))
	assert.Equal(t, int32(2), l.AvailableSpots(3))
	assert.Equal(t, int32(0), l.AvailableSpots(5))
	// Overbooked counts never go negative
	assert.Equal(t, int32(0), l.AvailableSpots(7))
}
