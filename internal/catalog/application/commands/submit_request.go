// Package commands provides command handlers for the service catalog.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/porticohq/portico/internal/catalog/domain"
	"github.com/porticohq/portico/internal/shared/infrastructure/eventbus"
)

// ErrRequestAlreadyPending is returned when the company already has a
// pending request for the type.
var ErrRequestAlreadyPending = errors.New("a request for this service is already pending review")

// SubmitRequestCommand asks to have a service type provisioned at a
// package tier.
type SubmitRequestCommand struct {
	CompanyID   uuid.UUID
	TypeID      uuid.UUID
	Tier        string
	RequestedBy uuid.UUID
}

// SubmitRequestHandler submits service requests. A new request leaves
// earlier rejected requests untouched; the rejection history stays
// visible to operators.
type SubmitRequestHandler struct {
	requests  domain.ServiceRequestRepository
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewSubmitRequestHandler creates a new submit request handler.
func NewSubmitRequestHandler(requests domain.ServiceRequestRepository, publisher eventbus.Publisher, logger *slog.Logger) *SubmitRequestHandler {
	return &SubmitRequestHandler{requests: requests, publisher: publisher, logger: logger}
}

// Handle executes the submit request command.
func (h *SubmitRequestHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) (*domain.ServiceRequest, error) {
	if cmd.CompanyID == uuid.Nil || cmd.TypeID == uuid.Nil || cmd.RequestedBy == uuid.Nil {
		return nil, fmt.Errorf("company, type and requesting user IDs are required")
	}

	existing, err := h.requests.ListByCompany(ctx, cmd.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing requests: %w", err)
	}
	for _, req := range existing {
		if req.TypeID == cmd.TypeID && req.Status == domain.RequestStatusPending {
			return nil, ErrRequestAlreadyPending
		}
	}

	request := domain.NewServiceRequest(cmd.CompanyID, cmd.TypeID, cmd.RequestedBy, cmd.Tier)
	if err := h.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}

	h.publishSubmitted(ctx, request)

	return request, nil
}

// publishSubmitted emits the submission event. The request is already
// persisted, so a publish failure is logged rather than surfaced.
func (h *SubmitRequestHandler) publishSubmitted(ctx context.Context, request *domain.ServiceRequest) {
	payload, err := json.Marshal(map[string]any{
		"request_id":   request.ID,
		"company_id":   request.CompanyID,
		"type_id":      request.TypeID,
		"package_tier": request.Tier,
		"requested_by": request.RequestedBy,
		"submitted_at": request.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Error("failed to encode request submitted event", "error", err)
		return
	}
	if err := h.publisher.Publish(ctx, eventbus.RoutingKeyRequestSubmitted, payload); err != nil {
		h.logger.Error("failed to publish request submitted event", "error", err, "request_id", request.ID)
	}
}
