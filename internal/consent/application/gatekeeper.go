// Package application provides the consent gatekeeper.
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/porticohq/portico/internal/consent/domain"
	"github.com/porticohq/portico/internal/shared/infrastructure/eventbus"
)

// ReadTolerance is how close to the bottom of a disclosure, in pixels,
// counts as having read it to the end.
const ReadTolerance = 24.0

// ErrDisclosureNotRead is returned when accept is attempted before the
// disclosure was scrolled to the end.
var ErrDisclosureNotRead = errors.New("disclosure must be read to the end before accepting")

// Gatekeeper guards consent-gated service surfaces. It keeps one gate
// per user and service and only reaches the granted state off a
// confirmed platform record, never off an optimistic local write.
type Gatekeeper struct {
	records   domain.ConsentRepository
	progress  domain.ProgressStore
	publisher eventbus.Publisher
	logger    *slog.Logger

	mu    sync.Mutex
	gates map[string]*domain.Gate
}

// NewGatekeeper creates a new consent gatekeeper.
func NewGatekeeper(records domain.ConsentRepository, progress domain.ProgressStore, publisher eventbus.Publisher, logger *slog.Logger) *Gatekeeper {
	return &Gatekeeper{
		records:   records,
		progress:  progress,
		publisher: publisher,
		logger:    logger,
		gates:     make(map[string]*domain.Gate),
	}
}

func (g *Gatekeeper) gate(userID uuid.UUID, serviceTag, docVersion string) *domain.Gate {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := userID.String() + "/" + serviceTag + "/" + docVersion
	gate, ok := g.gates[key]
	if !ok {
		gate = domain.NewGate()
		g.gates[key] = gate
	}
	return gate
}

// Check looks up the user's consent and returns the resulting gate
// state. A lookup failure leaves the gate in not granted; unavailable
// never unlocks a gated surface.
func (g *Gatekeeper) Check(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string) (domain.GateState, error) {
	gate := g.gate(userID, serviceTag, docVersion)
	if gate.State() == domain.GateGranted {
		return domain.GateGranted, nil
	}

	gate.BeginCheck()

	_, err := g.records.Get(ctx, userID, serviceTag, docVersion)
	if err != nil {
		gate.Resolve(false)
		if errors.Is(err, domain.ErrNotGranted) {
			return gate.State(), nil
		}
		return gate.State(), fmt.Errorf("failed to check consent: %w", err)
	}

	gate.Resolve(true)
	return gate.State(), nil
}

// SaveProgress records how far the user has read the disclosure.
func (g *Gatekeeper) SaveProgress(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string, progress domain.ReadProgress) error {
	if err := g.progress.Save(ctx, userID, serviceTag, docVersion, progress); err != nil {
		return fmt.Errorf("failed to save read progress: %w", err)
	}
	return nil
}

// Accept records the user's consent. It requires the disclosure to have
// been read to the end and only moves the gate to granted after the
// platform write succeeded.
func (g *Gatekeeper) Accept(ctx context.Context, userID, companyID uuid.UUID, serviceTag, docVersion string) error {
	progress, err := g.progress.Get(ctx, userID, serviceTag, docVersion)
	if err != nil {
		return fmt.Errorf("failed to load read progress: %w", err)
	}
	if !progress.Complete(ReadTolerance) {
		return ErrDisclosureNotRead
	}

	record := &domain.ConsentRecord{
		UserID:     userID,
		CompanyID:  companyID,
		ServiceTag: serviceTag,
		DocVersion: docVersion,
		GrantedAt:  time.Now().UTC(),
	}

	gate := g.gate(userID, serviceTag, docVersion)
	if err := g.records.Save(ctx, record); err != nil {
		gate.Resolve(false)
		return fmt.Errorf("failed to record consent: %w", err)
	}

	gate.Resolve(true)
	g.publishGranted(ctx, record)
	return nil
}

func (g *Gatekeeper) publishGranted(ctx context.Context, record *domain.ConsentRecord) {
	payload, err := json.Marshal(map[string]any{
		"user_id":     record.UserID,
		"company_id":  record.CompanyID,
		"service_tag": record.ServiceTag,
		"doc_version": record.DocVersion,
		"granted_at":  record.GrantedAt.Format(time.RFC3339),
	})
	if err != nil {
		g.logger.Error("failed to encode consent granted event", "error", err)
		return
	}
	if err := g.publisher.Publish(ctx, eventbus.RoutingKeyConsentGranted, payload); err != nil {
		g.logger.Error("failed to publish consent granted event", "error", err, "user_id", record.UserID)
	}
}
