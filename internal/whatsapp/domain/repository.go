package domain

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for session reads and wipe.
type SessionRepository interface {
	// ListByCompany retrieves a company's sessions.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*Session, error)

	// DeleteByCompany removes all of a company's sessions.
	DeleteByCompany(ctx context.Context, companyID uuid.UUID) error
}

// MessageRepository defines the interface for message reads and wipe.
type MessageRepository interface {
	// ListBySession retrieves a session's messages, newest first.
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*Message, error)

	// DeleteByCompany removes all of a company's messages.
	DeleteByCompany(ctx context.Context, companyID uuid.UUID) error
}

// ProfileRepository defines the interface for profile reads and wipe.
type ProfileRepository interface {
	// GetByCompany retrieves a company's profile, or nil when none exists.
	GetByCompany(ctx context.Context, companyID uuid.UUID) (*Profile, error)

	// DeleteByCompany removes a company's profile.
	DeleteByCompany(ctx context.Context, companyID uuid.UUID) error
}

// ErrorLogRepository defines the interface for error log reads and wipe.
type ErrorLogRepository interface {
	// ListByCompany retrieves a company's error logs, newest first.
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]*ErrorLog, error)

	// DeleteByCompany removes all of a company's error logs.
	DeleteByCompany(ctx context.Context, companyID uuid.UUID) error
}
