// Package app wires the application's dependencies.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	catalogCommands "github.com/porticohq/portico/internal/catalog/application/commands"
	catalogQueries "github.com/porticohq/portico/internal/catalog/application/queries"
	catalogDomain "github.com/porticohq/portico/internal/catalog/domain"
	catalogPersistence "github.com/porticohq/portico/internal/catalog/infrastructure/persistence"
	consentApp "github.com/porticohq/portico/internal/consent/application"
	consentPersistence "github.com/porticohq/portico/internal/consent/infrastructure/persistence"
	identityQueries "github.com/porticohq/portico/internal/identity/application/queries"
	"github.com/porticohq/portico/internal/identity/application/session"
	identityDomain "github.com/porticohq/portico/internal/identity/domain"
	identityPersistence "github.com/porticohq/portico/internal/identity/infrastructure/persistence"
	notificationCommands "github.com/porticohq/portico/internal/notifications/application/commands"
	notificationQueries "github.com/porticohq/portico/internal/notifications/application/queries"
	notificationPersistence "github.com/porticohq/portico/internal/notifications/infrastructure/persistence"
	sharedApplication "github.com/porticohq/portico/internal/shared/application"
	"github.com/porticohq/portico/internal/shared/infrastructure/database"
	"github.com/porticohq/portico/internal/shared/infrastructure/eventbus"
	"github.com/porticohq/portico/internal/shared/infrastructure/localstore"
	"github.com/porticohq/portico/internal/shared/infrastructure/realtime"
	whatsappApp "github.com/porticohq/portico/internal/whatsapp/application"
	whatsappDomain "github.com/porticohq/portico/internal/whatsapp/domain"
	whatsappPersistence "github.com/porticohq/portico/internal/whatsapp/infrastructure/persistence"
	"github.com/porticohq/portico/pkg/config"
	"github.com/porticohq/portico/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics observability.Metrics

	// Infrastructure
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	LocalStore  *localstore.Store

	// Publishers and feeds
	EventPublisher eventbus.Publisher
	ChangeFeed     realtime.Feed

	// Backend session
	Session *session.Service

	// Repositories
	MembershipRepo identityDomain.MembershipRepository
	UserRepo       identityDomain.UserRepository
	TypeRepo       catalogDomain.ServiceTypeRepository
	InstanceRepo   catalogDomain.ServiceInstanceRepository
	RequestRepo    catalogDomain.ServiceRequestRepository
	SessionRepo    whatsappDomain.SessionRepository
	MessageRepo    whatsappDomain.MessageRepository
	ProfileRepo    whatsappDomain.ProfileRepository
	ErrorLogRepo   whatsappDomain.ErrorLogRepository

	// Identity
	ResolveCompanyHandler *identityQueries.ResolveCompanyHandler

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
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	return newContainer(ctx, cfg, logger, observability.NoopMetrics{})
}

// NewContainerWithMetrics creates a container that records metrics, used
// by the headless worker.
func NewContainerWithMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics observability.Metrics) (*Container, error) {
	return newContainer(ctx, cfg, logger, metrics)
}

func newContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics observability.Metrics) (*Container, error) {
	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
	}

	pool, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to platform database: %w", err)
	}
	c.DB = pool

	store, err := localstore.Open(ctx, cfg.LocalStorePath)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	c.LocalStore = store

	if err := c.initRedis(ctx); err != nil {
		c.Close()
		return nil, err
	}
	c.initPublisher()
	if err := c.initSession(); err != nil {
		c.Close()
		return nil, err
	}
	c.initRepositories()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRedis(ctx context.Context) error {
	if c.Config.RedisURL == "" {
		c.Logger.Info("no redis configured, change feed disabled")
		c.ChangeFeed = realtime.NoopFeed{}
		return nil
	}

	opts, err := redis.ParseURL(c.Config.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		c.Logger.Warn("redis unreachable, change feed disabled", "error", err)
		_ = client.Close()
		c.ChangeFeed = realtime.NoopFeed{}
		return nil
	}

	c.RedisClient = client
	c.ChangeFeed = realtime.NewRedisFeed(client, c.Logger)
	return nil
}

func (c *Container) initPublisher() {
	if c.Config.RabbitMQURL == "" {
		c.EventPublisher = eventbus.NewNoopPublisher(c.Logger)
		return
	}

	publisher, err := eventbus.NewRabbitMQPublisher(c.Config.RabbitMQURL, c.Logger)
	if err != nil {
		c.Logger.Warn("event publishing disabled", "error", err)
		c.EventPublisher = eventbus.NewNoopPublisher(c.Logger)
		return
	}
	c.EventPublisher = publisher
}

func (c *Container) initSession() error {
	if c.Config.AuthTokenURL == "" {
		return nil
	}

	svc, err := session.NewService(session.Config{
		TokenURL:     c.Config.AuthTokenURL,
		ClientID:     c.Config.AuthClientID,
		ClientSecret: c.Config.AuthClientSecret,
	})
	if err != nil {
		return fmt.Errorf("failed to configure backend session: %w", err)
	}
	c.Session = svc
	return nil
}

func (c *Container) initRepositories() {
	c.MembershipRepo = identityPersistence.NewPostgresMembershipRepository(c.DB)
	c.UserRepo = identityPersistence.NewPostgresUserRepository(c.DB)
	c.TypeRepo = catalogPersistence.NewPostgresServiceTypeRepository(c.DB)
	c.InstanceRepo = catalogPersistence.NewPostgresServiceInstanceRepository(c.DB)
	c.RequestRepo = catalogPersistence.NewPostgresServiceRequestRepository(c.DB)
	c.SessionRepo = whatsappPersistence.NewPostgresSessionRepository(c.DB)
	c.MessageRepo = whatsappPersistence.NewPostgresMessageRepository(c.DB)
	c.ProfileRepo = whatsappPersistence.NewPostgresProfileRepository(c.DB)
	c.ErrorLogRepo = whatsappPersistence.NewPostgresErrorLogRepository(c.DB)
}

func (c *Container) initHandlers() {
	c.ResolveCompanyHandler = identityQueries.NewResolveCompanyHandler(c.MembershipRepo)

	c.CatalogSnapshotHandler = catalogQueries.NewCatalogSnapshotHandler(
		c.TypeRepo,
		c.InstanceRepo,
		c.RequestRepo,
		sharedApplication.NewFence(),
		c.Logger,
	)
	c.SubmitRequestHandler = catalogCommands.NewSubmitRequestHandler(c.RequestRepo, c.EventPublisher, c.Logger)

	c.Gatekeeper = consentApp.NewGatekeeper(
		consentPersistence.NewPostgresConsentRepository(c.DB),
		consentPersistence.NewLocalProgressStore(c.LocalStore),
		c.EventPublisher,
		c.Logger,
	)

	c.Monitor = whatsappApp.NewMonitor(c.SessionRepo, c.MessageRepo, c.ChangeFeed, c.Logger, c.Metrics)
	c.Wiper = whatsappApp.NewWiper(
		c.SessionRepo,
		c.MessageRepo,
		c.ProfileRepo,
		c.ErrorLogRepo,
		whatsappPersistence.NewLocalWipeJournal(c.LocalStore),
		c.EventPublisher,
		c.Logger,
	)

	noticeRepo := notificationPersistence.NewPostgresNoticeRepository(c.DB)
	c.ListNoticesHandler = notificationQueries.NewListNoticesHandler(noticeRepo)
	c.ListMaintenanceHandler = notificationQueries.NewListMaintenanceHandler(
		notificationPersistence.NewPostgresMaintenanceWindowRepository(c.DB),
	)
	c.MarkNoticeReadHandler = notificationCommands.NewMarkNoticeReadHandler(noticeRepo, c.EventPublisher, c.Logger)
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("error closing redis client", "error", err)
		}
	}
	if c.LocalStore != nil {
		if err := c.LocalStore.Close(); err != nil {
			c.Logger.Warn("error closing local store", "error", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
