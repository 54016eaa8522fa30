package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	catalogCommands "github.com/porticohq/portico/internal/catalog/application/commands"
	catalogQueries "github.com/porticohq/portico/internal/catalog/application/queries"
	consentApp "github.com/porticohq/portico/internal/consent/application"
	identityQueries "github.com/porticohq/portico/internal/identity/application/queries"
	"github.com/porticohq/portico/internal/identity/application/session"
	identityDomain "github.com/porticohq/portico/internal/identity/domain"
	notificationCommands "github.com/porticohq/portico/internal/notifications/application/commands"
	notificationQueries "github.com/porticohq/portico/internal/notifications/application/queries"
	whatsappApp "github.com/porticohq/portico/internal/whatsapp/application"
)

// App holds the CLI application dependencies.
type App struct {
	// Identity
	ResolveCompanyHandler *identityQueries.ResolveCompanyHandler
	UserRepo              identityDomain.UserRepository
	Session               *session.Service

	// Catalog
	CatalogSnapshotHandler *catalogQueries.CatalogSnapshotHandler
	SubmitRequestHandler   *catalogCommands.SubmitRequestHandler

	// Consent
	Gatekeeper *consentApp.Gatekeeper

	// WhatsApp
	Monitor *whatsappApp.Monitor
	Wiper   *whatsappApp.Wiper

	// Notifications
	ListNoticesHandler     *notificationQueries.ListNoticesHandler
	ListMaintenanceHandler *notificationQueries.ListMaintenanceHandler
	MarkNoticeReadHandler  *notificationCommands.MarkNoticeReadHandler

	// Current user (configured per environment)
	CurrentUserID uuid.UUID
	Locale        string
	ConsentVer    string

	// SnapshotTimeout bounds catalog and monitor reads.
	SnapshotTimeout time.Duration

	mu       sync.Mutex
	resolved *identityQueries.ResolveCompanyResult
}

// SnapshotContext derives a context bounded by the snapshot timeout.
func (a *App) SnapshotContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.SnapshotTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.SnapshotTimeout)
}

// Company resolves and caches the current user's company assignment.
func (a *App) Company(ctx context.Context) (*identityQueries.ResolveCompanyResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.resolved != nil {
		return a.resolved, nil
	}

	result, err := a.ResolveCompanyHandler.Handle(ctx, identityQueries.ResolveCompanyQuery{UserID: a.CurrentUserID})
	if err != nil {
		return nil, err
	}
	a.resolved = result
	return result, nil
}

// RequireCompany resolves the company and fails when the user has none.
func (a *App) RequireCompany(ctx context.Context) (*identityQueries.ResolveCompanyResult, error) {
	result, err := a.Company(ctx)
	if err != nil {
		return nil, err
	}
	if !result.HasCompany {
		return nil, fmt.Errorf("your account has no company yet; ask your operator to complete onboarding")
	}
	return result, nil
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
