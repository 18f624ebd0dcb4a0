//go:build unit

package qrtoken_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/qrtoken"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lessonDate = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func TestNewQRToken(t *testing.T) {
	bookingID := uuid.New()

	token, err := qrtoken.NewQRToken(bookingID, lessonDate.Add(18*time.Hour))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, token.ID())
	assert.Equal(t, bookingID, token.BookingID())
	assert.Len(t, token.Code(), qrtoken.CodeLength)
	assert.Equal(t, qrtoken.StatusActive, token.Status())
	// Valid through the end of the lesson day
	assert.Equal(t, lessonDate.Add(24*time.Hour), token.ExpiresAt())
	assert.Nil(t, token.UsedAt())
}

func TestConsume(t *testing.T) {
	now := lessonDate.Add(9 * time.Hour)

	t.Run("active token", func(t *testing.T) {
		token, err := qrtoken.NewQRToken(uuid.New(), lessonDate)
		require.NoError(t, err)

		require.NoError(t, token.Consume(now))
		assert.Equal(t, qrtoken.StatusUsed, token.Status())
		require.NotNil(t, token.UsedAt())
		assert.Equal(t, now, *token.UsedAt())
	})

	t.Run("double consume", func(t *testing.T) {
		token, err := qrtoken.NewQRToken(uuid.New(), lessonDate)
		require.NoError(t, err)

		require.NoError(t, token.Consume(now))
		assert.ErrorIs(t, token.Consume(now.Add(time.Second)), qrtoken.ErrAlreadyConsumed)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := qrtoken.NewQRToken(uuid.New(), lessonDate)
		require.NoError(t, err)

		token.Expire()
		assert.ErrorIs(t, token.Consume(now), qrtoken.ErrNotActive)
	})
}

func TestExpire(t *testing.T) {
	t.Run("active token expires", func(t *testing.T) {
		token, err := qrtoken.NewQRToken(uuid.New(), lessonDate)
		require.NoError(t, err)

		token.Expire()
		assert.Equal(t, qrtoken.StatusExpired, token.Status())
	})

	t.Run("used token stays used", func(t *testing.T) {
		token, err := qrtoken.NewQRToken(uuid.New(), lessonDate)
		require.NoError(t, err)
		require.NoError(t, token.Consume(lessonDate.Add(time.Hour)))

		token.Expire()
		assert.Equal(t, qrtoken.StatusUsed, token.Status())
	})
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		code, err := qrtoken.GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, qrtoken.CodeLength)

		for _, r := range code {
			isUpper := r >= 'A' && r <= 'Z'
			isDigit := r >= '0' && r <= '9'
			assert.True(t, isUpper || isDigit, "unexpected character %q", r)
		}

		_, dup := seen[code]
		assert.False(t, dup, "duplicate code generated")
		seen[code] = struct{}{}
	}
}
