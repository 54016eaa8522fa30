package navigation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticohq/portico/internal/catalog/domain"
	identity "github.com/porticohq/portico/internal/identity/domain"
)

func classified(slug, name string, kind domain.StateKind, count int) domain.DisplayState {
	return domain.DisplayState{
		Type: &domain.ServiceType{
			ID:     uuid.New(),
			Slug:   slug,
			Names:  map[string]string{"en": name},
			Status: domain.TypeStatusActive,
		},
		Kind:          kind,
		InstanceCount: count,
	}
}

func keys(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

func TestAssemble_BookedServicesGetEntries(t *testing.T) {
	states := []domain.DisplayState{
		classified("whatsapp", "WhatsApp", domain.StateActive, 2),
		classified("website", "Website", domain.StateMaintenance, 1),
		classified("seo", "SEO", domain.StatePending, 0),
		classified("newsletter", "Newsletter", domain.StateRequestable, 0),
	}

	entries := Assemble(states, identity.RoleMember, "en")

	assert.Equal(t, []string{"home", "svc:website", "svc:whatsapp", "support"}, keys(entries))
	assert.Equal(t, 2, entries[2].Badge)
}

func TestAssemble_AdminSeesInvoices(t *testing.T) {
	entries := Assemble(nil, identity.RoleAdmin, "en")

	assert.Equal(t, []string{"home", "services", "invoices", "support"}, keys(entries))
}

func TestAssemble_NoBookedServicesFallsBackToCatchAll(t *testing.T) {
	states := []domain.DisplayState{
		classified("seo", "SEO", domain.StateRequestable, 0),
	}

	entries := Assemble(states, identity.RoleMember, "en")

	// The navigation is never reduced to home only.
	assert.Equal(t, []string{"home", "services", "support"}, keys(entries))
}

func TestMatch_ExactWinsOverPrefix(t *testing.T) {
	entries := []Entry{
		{Key: "home", Route: "/"},
		{Key: "services", Route: "/services"},
		{Key: "svc:whatsapp", Route: "/services/whatsapp"},
	}

	match := Match("/services/whatsapp", entries)
	require.NotNil(t, match)
	assert.Equal(t, "svc:whatsapp", match.Key)
}

func TestMatch_LongestPrefixWins(t *testing.T) {
	entries := []Entry{
		{Key: "home", Route: "/"},
		{Key: "services", Route: "/services"},
		{Key: "svc:whatsapp", Route: "/services/whatsapp"},
	}

	match := Match("/services/whatsapp/messages/42", entries)
	require.NotNil(t, match)
	assert.Equal(t, "svc:whatsapp", match.Key)
}

func TestMatch_UnknownPathFallsBackToHome(t *testing.T) {
	entries := []Entry{
		{Key: "home", Route: "/"},
		{Key: "support", Route: "/support"},
	}

	match := Match("/does/not/exist", entries)
	require.NotNil(t, match)
	assert.Equal(t, "home", match.Key)
}
