package domain

import (
	"sort"

	"github.com/google/uuid"
)

// StateKind is the resolved display state of a service type for a company.
type StateKind string

const (
	// StateActive means at least one instance is running.
	StateActive StateKind = "active"

	// StateMaintenance means the type or a booked instance is down.
	StateMaintenance StateKind = "maintenance"

	// StatePending means a request awaits review.
	StatePending StateKind = "pending"

	// StateRejected means the latest request was declined.
	StateRejected StateKind = "rejected"

	// StateRequestable means the type can be requested.
	StateRequestable StateKind = "requestable"
)

// DisplayState is the per-type view model the dashboard renders.
type DisplayState struct {
	// Type is the classified service type.
	Type *ServiceType

	// Kind is the resolved display state.
	Kind StateKind

	// InstanceCount is the number of booked instances, set for active
	// and maintenance states.
	InstanceCount int

	// Tier is the tier of the first booked instance, if any.
	Tier string

	// RequestID identifies the request behind pending and rejected states.
	RequestID uuid.UUID

	// ReviewNotes carries the operator's comment for rejected states.
	ReviewNotes string
}

// Classify resolves the display state for a single service type from the
// company's instances and requests. Instances and requests not belonging
// to the type are ignored. Precedence: instances win over requests, a
// maintenance condition on the type or an instance overrides active
// framing for booked services, pending wins over rejected, and with
// neither the type is requestable. Without an instance the requests
// alone drive the state.
func Classify(t *ServiceType, instances []*ServiceInstance, requests []*ServiceRequest) DisplayState {
	var owned []*ServiceInstance
	for _, inst := range instances {
		if inst.TypeID == t.ID {
			owned = append(owned, inst)
		}
	}

	if len(owned) > 0 {
		state := DisplayState{
			Type:          t,
			Kind:          StateActive,
			InstanceCount: len(owned),
			Tier:          owned[0].Tier,
		}
		if t.Status == TypeStatusMaintenance {
			state.Kind = StateMaintenance
			return state
		}
		for _, inst := range owned {
			if inst.Status == InstanceStatusMaintenance {
				state.Kind = StateMaintenance
				break
			}
		}
		return state
	}

	if req := newestRequest(t.ID, requests, RequestStatusPending); req != nil {
		return DisplayState{Type: t, Kind: StatePending, RequestID: req.ID}
	}

	if req := newestRequest(t.ID, requests, RequestStatusRejected); req != nil {
		return DisplayState{
			Type:        t,
			Kind:        StateRejected,
			RequestID:   req.ID,
			ReviewNotes: req.ReviewNotes,
		}
	}

	return DisplayState{Type: t, Kind: StateRequestable}
}

// newestRequest returns the most recently created request for the type
// with the given status, or nil.
func newestRequest(typeID uuid.UUID, requests []*ServiceRequest, status RequestStatus) *ServiceRequest {
	var newest *ServiceRequest
	for _, req := range requests {
		if req.TypeID != typeID || req.Status != status {
			continue
		}
		if newest == nil || req.CreatedAt.After(newest.CreatedAt) {
			newest = req
		}
	}
	return newest
}

// ClassifyCatalog classifies every offered type for the given locale.
// Inactive types are excluded entirely. Results are ordered by display
// name so the dashboard is stable across refreshes.
func ClassifyCatalog(types []*ServiceType, instances []*ServiceInstance, requests []*ServiceRequest, locale string) []DisplayState {
	states := make([]DisplayState, 0, len(types))
	for _, t := range types {
		if t.Status == TypeStatusInactive {
			continue
		}
		states = append(states, Classify(t, instances, requests))
	}

	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Type.Name(locale) < states[j].Type.Name(locale)
	})

	return states
}
