package membership

import (
	"errors"
	"time"

	"gym-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNotActive           = errors.New("membership is not active")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("credit amount must be positive")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusExpired, StatusCancelled, StatusSuspended:
		return true
	default:
		return false
	}
}

// Membership is a time-bounded credit allowance. Credits are whole units;
// the balance never goes below zero.
type Membership struct {
	id               uuid.UUID
	userID           uuid.UUID
	packageID        uuid.UUID
	status           Status
	creditsRemaining int32
	creditsTotal     int32
	startDate        time.Time
	endDate          time.Time
}

func ReconstructMembership(
	id, userID, packageID uuid.UUID,
	status Status,
	creditsRemaining, creditsTotal int32,
	startDate, endDate time.Time,
) *Membership {
	return &Membership{
		id:               id,
		userID:           userID,
		packageID:        packageID,
		status:           status,
		creditsRemaining: creditsRemaining,
		creditsTotal:     creditsTotal,
		startDate:        startDate,
		endDate:          endDate,
	}
}

func (m *Membership) ID() uuid.UUID           { return m.id }
func (m *Membership) UserID() uuid.UUID       { return m.userID }
func (m *Membership) PackageID() uuid.UUID    { return m.packageID }
func (m *Membership) Status() Status          { return m.status }
func (m *Membership) CreditsRemaining() int32 { return m.creditsRemaining }
func (m *Membership) CreditsTotal() int32     { return m.creditsTotal }
func (m *Membership) StartDate() time.Time    { return m.startDate }
func (m *Membership) EndDate() time.Time      { return m.endDate }

func (m *Membership) IsActiveOn(now time.Time) bool {
	return m.status == StatusActive && !clock.DateOf(m.endDate).Before(clock.DateOf(now))
}

// CanReserve reports whether the balance covers amount credits. It does not
// mutate the balance; the actual debit is a single conditional UPDATE at the
// storage layer so concurrent reservations cannot overdraw.
func (m *Membership) CanReserve(amount int32) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if m.creditsRemaining < amount {
		return ErrInsufficientCredits
	}
	return nil
}
