//go:build unit

package membership_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/membership"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newMembership(status membership.Status, credits int32, endDate time.Time) *membership.Membership {
	return membership.ReconstructMembership(
		uuid.New(), uuid.New(), uuid.New(),
		status, credits, 20,
		endDate.AddDate(0, -1, 0), endDate,
	)
}

func TestIsActiveOn(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  membership.Status
		endDate time.Time
		want    bool
	}{
		{"active and not expired", membership.StatusActive, now.AddDate(0, 1, 0), true},
		{"active ending today still counts", membership.StatusActive, now, true},
		{"active but end date passed", membership.StatusActive, now.AddDate(0, 0, -1), false},
		{"pending", membership.StatusPending, now.AddDate(0, 1, 0), false},
		{"suspended", membership.StatusSuspended, now.AddDate(0, 1, 0), false},
		{"cancelled", membership.StatusCancelled, now.AddDate(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMembership(tt.status, 10, tt.endDate)
			assert.Equal(t, tt.want, m.IsActiveOn(now))
		})
	}
}

func TestCanReserve(t *testing.T) {
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("sufficient balance", func(t *testing.T) {
		m := newMembership(membership.StatusActive, 3, end)
		assert.NoError(t, m.CanReserve(1))
		assert.NoError(t, m.CanReserve(3))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		m := newMembership(membership.StatusActive, 0, end)
		assert.ErrorIs(t, m.CanReserve(1), membership.ErrInsufficientCredits)

		m = newMembership(membership.StatusActive, 2, end)
		assert.ErrorIs(t, m.CanReserve(3), membership.ErrInsufficientCredits)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		m := newMembership(membership.StatusActive, 5, end)
		assert.ErrorIs(t, m.CanReserve(0), membership.ErrInvalidAmount)
		assert.ErrorIs(t, m.CanReserve(-1), membership.ErrInvalidAmount)
	})
}
