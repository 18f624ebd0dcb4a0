//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lessonDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()

	b := booking.NewBooking(userID, lessonID, lessonDate.Add(9*time.Hour))

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, userID, b.UserID())
	assert.Equal(t, lessonID, b.LessonID())
	// Lesson date is normalized to midnight UTC
	assert.Equal(t, lessonDate, b.LessonDate())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, int32(1), b.CreditsUsed())
	assert.Nil(t, b.CheckInTime())
}

func TestEnsureCancellableBy(t *testing.T) {
	owner := uuid.New()

	newConfirmed := func() *booking.Booking {
		return booking.NewBooking(owner, uuid.New(), lessonDate)
	}

	t.Run("well before the window", func(t *testing.T) {
		now := lessonDate.Add(-72 * time.Hour)
		assert.NoError(t, newConfirmed().EnsureCancellableBy(owner, now))
	})

	t.Run("exactly 48 hours before is still allowed", func(t *testing.T) {
		now := lessonDate.Add(-booking.CancellationWindow)
		assert.NoError(t, newConfirmed().EnsureCancellableBy(owner, now))
	})

	t.Run("inside the window", func(t *testing.T) {
		now := lessonDate.Add(-booking.CancellationWindow + time.Minute)
		err := newConfirmed().EnsureCancellableBy(owner, now)
		assert.ErrorIs(t, err, booking.ErrWindowClosed)
	})

	t.Run("another user", func(t *testing.T) {
		now := lessonDate.Add(-72 * time.Hour)
		err := newConfirmed().EnsureCancellableBy(uuid.New(), now)
		assert.ErrorIs(t, err, booking.ErrNotOwner)
	})

	t.Run("already cancelled", func(t *testing.T) {
		now := lessonDate.Add(-72 * time.Hour)
		b := newConfirmed()
		require.NoError(t, b.Cancel(now))
		err := b.EnsureCancellableBy(owner, now)
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
	})

	t.Run("ownership is checked before state", func(t *testing.T) {
		now := lessonDate.Add(-time.Hour)
		b := newConfirmed()
		require.NoError(t, b.Cancel(now))
		err := b.EnsureCancellableBy(uuid.New(), now)
		assert.ErrorIs(t, err, booking.ErrNotOwner)
	})
}

func TestCancel(t *testing.T) {
	now := lessonDate.Add(-72 * time.Hour)
	b := booking.NewBooking(uuid.New(), uuid.New(), lessonDate)

	require.NoError(t, b.Cancel(now))
	assert.Equal(t, booking.StatusCancelled, b.Status())

	assert.ErrorIs(t, b.Cancel(now), booking.ErrAlreadyCancelled)
}

func TestEnsureCheckInAllowed(t *testing.T) {
	onLessonDay := lessonDate.Add(9 * time.Hour)

	t.Run("confirmed booking on the lesson day", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), lessonDate)
		assert.NoError(t, b.EnsureCheckInAllowed(onLessonDay))
	})

	t.Run("wrong calendar day", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), lessonDate)
		err := b.EnsureCheckInAllowed(onLessonDay.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, booking.ErrWrongDay)

		err = b.EnsureCheckInAllowed(onLessonDay.AddDate(0, 0, 1))
		assert.ErrorIs(t, err, booking.ErrWrongDay)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), lessonDate)
		require.NoError(t, b.Cancel(onLessonDay))
		err := b.EnsureCheckInAllowed(onLessonDay)
		assert.ErrorIs(t, err, booking.ErrNotConfirmed)
	})

	t.Run("already checked in", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), lessonDate)
		require.NoError(t, b.CheckIn(onLessonDay))
		err := b.EnsureCheckInAllowed(onLessonDay.Add(time.Minute))
		assert.ErrorIs(t, err, booking.ErrAlreadyCheckedIn)
	})
}

func TestCheckIn(t *testing.T) {
	onLessonDay := lessonDate.Add(9 * time.Hour)
	b := booking.NewBooking(uuid.New(), uuid.New(), lessonDate)

	require.NoError(t, b.CheckIn(onLessonDay))
	require.NotNil(t, b.CheckInTime())
	assert.Equal(t, onLessonDay, *b.CheckInTime())
	assert.Equal(t, onLessonDay, b.UpdatedAt())
}

func TestHoursUntilLesson(t *testing.T) {
	b := booking.NewBooking(uuid.New(), uuid.New(), lessonDate)

	assert.InDelta(t, 48.0, b.HoursUntilLesson(lessonDate.Add(-48*time.Hour)), 0.001)
	assert.InDelta(t, -9.0, b.HoursUntilLesson(lessonDate.Add(9*time.Hour)), 0.001)
}
