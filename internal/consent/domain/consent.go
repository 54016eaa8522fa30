// Package domain provides the consent gate entities and state machine.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotGranted is returned when no consent record exists for the user
// and document version.
var ErrNotGranted = errors.New("consent not granted")

// ConsentRecord is a user's recorded acceptance of a disclosure version.
type ConsentRecord struct {
	// UserID is the consenting user.
	UserID uuid.UUID

	// CompanyID is the company the user was acting for when accepting.
	CompanyID uuid.UUID

	// ServiceTag names the service the disclosure covers.
	ServiceTag string

	// DocVersion is the accepted disclosure version.
	DocVersion string

	// GrantedAt is when consent was recorded on the platform.
	GrantedAt time.Time
}

// GateState is the consent gate's current state.
type GateState string

const (
	// GateUnknown means consent has not been checked yet.
	GateUnknown GateState = "unknown"

	// GateChecking means a consent lookup is in flight.
	GateChecking GateState = "checking"

	// GateGranted means consent is confirmed. This state is terminal.
	GateGranted GateState = "granted"

	// GateNotGranted means the user must accept the disclosure.
	GateNotGranted GateState = "not_granted"
)

// Gate is the consent state machine guarding a service surface. Granted
// is sticky: once reached, no transition leaves it.
type Gate struct {
	state GateState
}

// NewGate creates a gate in the unknown state.
func NewGate() *Gate {
	return &Gate{state: GateUnknown}
}

// State returns the current gate state.
func (g *Gate) State() GateState {
	return g.state
}

// BeginCheck moves the gate into checking. Granted gates stay granted.
func (g *Gate) BeginCheck() {
	if g.state == GateGranted {
		return
	}
	g.state = GateChecking
}

// Resolve records the outcome of a consent lookup.
func (g *Gate) Resolve(granted bool) {
	if g.state == GateGranted {
		return
	}
	if granted {
		g.state = GateGranted
	} else {
		g.state = GateNotGranted
	}
}

// ReadProgress tracks how far a user has scrolled through a disclosure.
type ReadProgress struct {
	// Offset is the scroll offset in pixels.
	Offset float64

	// Viewport is the visible height in pixels.
	Viewport float64

	// ContentHeight is the full document height in pixels.
	ContentHeight float64
}

// Complete reports whether the document was read to the end, within
// tolerance pixels of the bottom.
func (p ReadProgress) Complete(tolerance float64) bool {
	if p.ContentHeight <= 0 {
		return false
	}
	if p.ContentHeight <= p.Viewport {
		return true
	}
	return p.Offset+p.Viewport >= p.ContentHeight-tolerance
}
