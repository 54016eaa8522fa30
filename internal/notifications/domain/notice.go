// Package domain provides the entities of the notification surface.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoticeSeverity ranks a notice's urgency.
type NoticeSeverity string

const (
	SeverityInfo     NoticeSeverity = "info"
	SeverityWarning  NoticeSeverity = "warning"
	SeverityCritical NoticeSeverity = "critical"
)

// Notice is an operator announcement shown to companies.
type Notice struct {
	// ID is the unique identifier for this notice.
	ID uuid.UUID

	// Title is the headline.
	Title string

	// Body is the announcement text.
	Body string

	// Severity ranks the notice's urgency.
	Severity NoticeSeverity

	// PublishedAt is when the notice went live.
	PublishedAt time.Time

	// ReadAt is when the current user read the notice; zero when unread.
	ReadAt time.Time
}

// Read reports whether the notice has been read.
func (n *Notice) Read() bool {
	return !n.ReadAt.IsZero()
}

// MaintenanceWindow is a scheduled platform downtime announcement.
type MaintenanceWindow struct {
	// ID is the unique identifier for this window.
	ID uuid.UUID

	// Reason describes the downtime.
	Reason string

	// StartsAt is when the downtime begins.
	StartsAt time.Time

	// EndsAt is when the downtime ends.
	EndsAt time.Time
}

// Active reports whether the window covers the given instant.
func (w *MaintenanceWindow) Active(at time.Time) bool {
	return !at.Before(w.StartsAt) && at.Before(w.EndsAt)
}
