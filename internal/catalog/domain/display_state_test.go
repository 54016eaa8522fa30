package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeType(slug string, names map[string]string) *ServiceType {
	return &ServiceType{
		ID:       uuid.New(),
		Slug:     slug,
		Names:    names,
		Category: CategoryGeneral,
		Status:   TypeStatusActive,
	}
}

func TestClassify_InstanceWinsOverRequests(t *testing.T) {
	st := activeType("whatsapp", map[string]string{"en": "WhatsApp"})

	instances := []*ServiceInstance{
		{ID: uuid.New(), TypeID: st.ID, Status: InstanceStatusActive, Tier: "pro"},
		{ID: uuid.New(), TypeID: st.ID, Status: InstanceStatusActive, Tier: "basic"},
	}
	requests := []*ServiceRequest{
		{ID: uuid.New(), TypeID: st.ID, Status: RequestStatusPending, CreatedAt: time.Now()},
	}

	state := Classify(st, instances, requests)

	assert.Equal(t, StateActive, state.Kind)
	assert.Equal(t, 2, state.InstanceCount)
	assert.Equal(t, "pro", state.Tier)
}

func TestClassify_MaintenanceInstanceOverridesActive(t *testing.T) {
	st := activeType("website", map[string]string{"en": "Website"})

	instances := []*ServiceInstance{
		{ID: uuid.New(), TypeID: st.ID, Status: InstanceStatusActive, Tier: "pro"},
		{ID: uuid.New(), TypeID: st.ID, Status: InstanceStatusMaintenance, Tier: "pro"},
	}

	state := Classify(st, instances, nil)

	assert.Equal(t, StateMaintenance, state.Kind)
	// Instance count survives the override so the badge stays meaningful.
	assert.Equal(t, 2, state.InstanceCount)
}

func TestClassify_TypeMaintenanceOverridesActiveInstances(t *testing.T) {
	st := activeType("website", map[string]string{"en": "Website"})
	st.Status = TypeStatusMaintenance

	state := Classify(st, []*ServiceInstance{
		{ID: uuid.New(), TypeID: st.ID, Status: InstanceStatusActive},
	}, nil)

	assert.Equal(t, StateMaintenance, state.Kind)
	assert.Equal(t, 1, state.InstanceCount)
}

func TestClassify_TypeMaintenanceWithoutInstanceFollowsRequests(t *testing.T) {
	st := activeType("website", map[string]string{"en": "Website"})
	st.Status = TypeStatusMaintenance

	// Maintenance framing only applies to booked services. Without an
	// instance, the request history drives the state as usual.
	pending := Classify(st, nil, []*ServiceRequest{
		{ID: uuid.New(), TypeID: st.ID, Status: RequestStatusPending, CreatedAt: time.Now()},
	})
	assert.Equal(t, StatePending, pending.Kind)

	rejected := Classify(st, nil, []*ServiceRequest{
		{ID: uuid.New(), TypeID: st.ID, Status: RequestStatusRejected, ReviewNotes: "missing info", CreatedAt: time.Now()},
	})
	assert.Equal(t, StateRejected, rejected.Kind)

	bare := Classify(st, nil, nil)
	assert.Equal(t, StateRequestable, bare.Kind)
}

func TestClassify_PendingRequest(t *testing.T) {
	st := activeType("seo", map[string]string{"en": "SEO"})
	reqID := uuid.New()

	state := Classify(st, nil, []*ServiceRequest{
		{ID: reqID, TypeID: st.ID, Status: RequestStatusPending, CreatedAt: time.Now()},
	})

	assert.Equal(t, StatePending, state.Kind)
	assert.Equal(t, reqID, state.RequestID)
}

func TestClassify_PendingWinsOverOlderRejection(t *testing.T) {
	st := activeType("seo", map[string]string{"en": "SEO"})
	now := time.Now()

	state := Classify(st, nil, []*ServiceRequest{
		{ID: uuid.New(), TypeID: st.ID, Status: RequestStatusRejected, ReviewNotes: "budget", CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), TypeID: st.ID, Status: RequestStatusPending, CreatedAt: now},
	})

	assert.Equal(t, StatePending, state.Kind)
}

func TestClassify_RejectedCarriesReviewNotes(t *testing.T) {
	st := activeType("seo", map[string]string{"en": "SEO"})
	now := time.Now()

	state := Classify(st, nil, []*ServiceRequest{
		{ID: uuid.New(), TypeID: st.ID, Status: RequestStatusRejected, ReviewNotes: "old reason", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), TypeID: st.ID, Status: RequestStatusRejected, ReviewNotes: "needs a paid tier", CreatedAt: now},
	})

	assert.Equal(t, StateRejected, state.Kind)
	assert.Equal(t, "needs a paid tier", state.ReviewNotes)
}

func TestClassify_NoHistoryIsRequestable(t *testing.T) {
	st := activeType("newsletter", map[string]string{"en": "Newsletter"})

	state := Classify(st, nil, nil)

	assert.Equal(t, StateRequestable, state.Kind)
}

func TestClassify_IgnoresOtherTypesData(t *testing.T) {
	st := activeType("seo", map[string]string{"en": "SEO"})
	other := uuid.New()

	state := Classify(st, []*ServiceInstance{
		{ID: uuid.New(), TypeID: other, Status: InstanceStatusActive},
	}, []*ServiceRequest{
		{ID: uuid.New(), TypeID: other, Status: RequestStatusPending, CreatedAt: time.Now()},
	})

	assert.Equal(t, StateRequestable, state.Kind)
}

func TestClassifyCatalog_FiltersInactiveAndSortsByName(t *testing.T) {
	website := activeType("website", map[string]string{"en": "Website"})
	whatsapp := activeType("whatsapp", map[string]string{"en": "WhatsApp"})
	retired := activeType("fax", map[string]string{"en": "Fax"})
	retired.Status = TypeStatusInactive

	states := ClassifyCatalog([]*ServiceType{website, whatsapp, retired}, nil, nil, "en")

	require.Len(t, states, 2)
	assert.Equal(t, "WhatsApp", states[0].Type.Name("en"))
	assert.Equal(t, "Website", states[1].Type.Name("en"))
}

func TestServiceType_NameFallsBackToEnglishThenSlug(t *testing.T) {
	st := activeType("seo", map[string]string{"en": "Search Optimization"})

	assert.Equal(t, "Search Optimization", st.Name("de"))

	bare := activeType("seo", nil)
	assert.Equal(t, "seo", bare.Name("de"))
}

func TestDetailFor(t *testing.T) {
	assert.Equal(t, "/services/whatsapp", DetailFor("whatsapp").Route())
	assert.Equal(t, "/services/website", DetailFor("website").Route())
	assert.Equal(t, "/services/mobile-app", DetailFor("mobile-app").Route())

	generic := DetailFor("newsletter")
	assert.IsType(t, GenericDetail{}, generic)
	assert.Equal(t, "/services/newsletter", generic.Route())
}

func TestNewServiceRequest_StartsPending(t *testing.T) {
	req := NewServiceRequest(uuid.New(), uuid.New(), uuid.New(), "basic")

	assert.Equal(t, RequestStatusPending, req.Status)
	assert.Equal(t, "basic", req.Tier)
	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.WithinDuration(t, time.Now().UTC(), req.CreatedAt, time.Minute)
}
