// Package navigation assembles the dashboard navigation from the
// classified service catalog and the user's role.
package navigation

import (
	"sort"
	"strings"

	identity "github.com/porticohq/portico/internal/identity/domain"

	"github.com/porticohq/portico/internal/catalog/domain"
)

// Entry is a single navigation destination.
type Entry struct {
	// Key is the stable machine identifier, e.g. "home" or "svc:whatsapp".
	Key string

	// Title is the localized label.
	Title string

	// Route is the navigation route the entry opens.
	Route string

	// Badge is an optional count shown next to the title; zero hides it.
	Badge int
}

// Assemble builds the navigation for the classified catalog. Home and
// support are always present, invoices appears for admins, and every
// booked service type gets its own entry. When the company has no booked
// services (or the catalog failed entirely) a catch-all services entry
// keeps the dashboard navigable.
func Assemble(states []domain.DisplayState, role identity.Role, locale string) []Entry {
	entries := []Entry{
		{Key: "home", Title: "Home", Route: "/"},
	}

	var services []Entry
	for _, state := range states {
		if state.Kind != domain.StateActive && state.Kind != domain.StateMaintenance {
			continue
		}
		services = append(services, Entry{
			Key:   "svc:" + state.Type.Slug,
			Title: state.Type.Name(locale),
			Route: domain.DetailFor(state.Type.Slug).Route(),
			Badge: state.InstanceCount,
		})
	}
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Title < services[j].Title
	})

	if len(services) == 0 {
		entries = append(entries, Entry{Key: "services", Title: "Services", Route: "/services"})
	} else {
		entries = append(entries, services...)
	}

	if role.CanViewInvoices() {
		entries = append(entries, Entry{Key: "invoices", Title: "Invoices", Route: "/invoices"})
	}

	entries = append(entries, Entry{Key: "support", Title: "Support", Route: "/support"})
	return entries
}

// Match resolves the entry for a route path. Exact matches win;
// otherwise the entry with the longest matching route prefix is
// returned. The home entry's "/" route prefixes every path, so any
// path resolves as long as home is present.
func Match(path string, entries []Entry) *Entry {
	var (
		best    *Entry
		bestLen = -1
	)
	for i := range entries {
		entry := &entries[i]
		if entry.Route == path {
			return entry
		}
		prefixed := entry.Route == "/" || strings.HasPrefix(path, entry.Route+"/")
		if prefixed && len(entry.Route) > bestLen {
			best = entry
			bestLen = len(entry.Route)
		}
	}
	return best
}
