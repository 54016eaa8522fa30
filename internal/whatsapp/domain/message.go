package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageDirection tells inbound from outbound messages.
type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

// Message is a single WhatsApp message visible on the monitoring surface.
type Message struct {
	// ID is the unique identifier for this message.
	ID uuid.UUID

	// CompanyID is the owning company.
	CompanyID uuid.UUID

	// SessionID is the session the message belongs to.
	SessionID uuid.UUID

	// Direction tells inbound from outbound.
	Direction MessageDirection

	// PeerNumber is the remote party's number.
	PeerNumber string

	// Body is the message text.
	Body string

	// SentAt is when the message was sent or received.
	SentAt time.Time
}

// Profile is the WhatsApp business profile of a company.
type Profile struct {
	// ID is the unique identifier for this profile.
	ID uuid.UUID

	// CompanyID is the owning company.
	CompanyID uuid.UUID

	// DisplayName is the profile's public name.
	DisplayName string

	// About is the profile's status line.
	About string

	// UpdatedAt is when the profile was last changed.
	UpdatedAt time.Time
}

// ErrorLog is a recorded delivery or connection error.
type ErrorLog struct {
	// ID is the unique identifier for this log entry.
	ID uuid.UUID

	// CompanyID is the owning company.
	CompanyID uuid.UUID

	// SessionID is the affected session, if any.
	SessionID uuid.UUID

	// Code is the machine-readable error code.
	Code string

	// Detail is the human-readable description.
	Detail string

	// OccurredAt is when the error happened.
	OccurredAt time.Time
}
