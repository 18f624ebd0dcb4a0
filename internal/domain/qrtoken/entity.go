package qrtoken

import (
	"errors"
	"time"

	"gym-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNotActive       = errors.New("token is not active")
	ErrAlreadyConsumed = errors.New("token was already consumed")
)

type Status string

const (
	StatusActive  Status = "active"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// QRToken is a single-use check-in credential, 1:1 with a booking and created
// in the same transaction. Lifecycle: active -> used (check-in) or
// active -> expired (booking cancelled).
type QRToken struct {
	id        uuid.UUID
	bookingID uuid.UUID
	code      string
	status    Status
	expiresAt time.Time
	usedAt    *time.Time
}

// NewQRToken issues an active token for a booking. The token stays valid
// through the end of the lesson day: expiry is midnight of lessonDate + 24h.
func NewQRToken(bookingID uuid.UUID, lessonDate time.Time) (*QRToken, error) {
	code, err := GenerateCode()
	if err != nil {
		return nil, err
	}
	return &QRToken{
		id:        uuid.New(),
		bookingID: bookingID,
		code:      code,
		status:    StatusActive,
		expiresAt: clock.DateOf(lessonDate).Add(24 * time.Hour),
	}, nil
}

func ReconstructQRToken(id, bookingID uuid.UUID, code string, status Status, expiresAt time.Time, usedAt *time.Time) *QRToken {
	return &QRToken{
		id:        id,
		bookingID: bookingID,
		code:      code,
		status:    status,
		expiresAt: expiresAt,
		usedAt:    usedAt,
	}
}

func (t *QRToken) ID() uuid.UUID        { return t.id }
func (t *QRToken) BookingID() uuid.UUID { return t.bookingID }
func (t *QRToken) Code() string         { return t.code }
func (t *QRToken) Status() Status       { return t.status }
func (t *QRToken) ExpiresAt() time.Time { return t.expiresAt }
func (t *QRToken) UsedAt() *time.Time   { return t.usedAt }

// Consume transitions active -> used. A token can be consumed at most once.
func (t *QRToken) Consume(now time.Time) error {
	if t.status == StatusUsed {
		return ErrAlreadyConsumed
	}
	if t.status != StatusActive {
		return ErrNotActive
	}
	t.status = StatusUsed
	u := now
	t.usedAt = &u
	return nil
}

// Expire transitions the token out of circulation when its booking is
// cancelled. Already-used tokens stay used.
func (t *QRToken) Expire() {
	if t.status == StatusActive {
		t.status = StatusExpired
	}
}
