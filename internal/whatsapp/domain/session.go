// Package domain provides the entities of the WhatsApp monitoring surface.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the connection status of a WhatsApp session.
type SessionStatus string

const (
	// SessionStatusConnected means the session is live.
	SessionStatusConnected SessionStatus = "connected"

	// SessionStatusDisconnected means the session dropped.
	SessionStatusDisconnected SessionStatus = "disconnected"

	// SessionStatusPairing means the session awaits QR pairing.
	SessionStatusPairing SessionStatus = "pairing"
)

// IsValid checks if the status is a known value.
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusConnected, SessionStatusDisconnected, SessionStatusPairing:
		return true
	}
	return false
}

// Session is a WhatsApp connection operated for a company.
type Session struct {
	// ID is the unique identifier for this session.
	ID uuid.UUID

	// CompanyID is the owning company.
	CompanyID uuid.UUID

	// PhoneNumber is the connected WhatsApp number.
	PhoneNumber string

	// Status is the current connection status.
	Status SessionStatus

	// LastSeenAt is the last heartbeat from the session.
	LastSeenAt time.Time

	// CreatedAt is when the session was provisioned.
	CreatedAt time.Time
}
