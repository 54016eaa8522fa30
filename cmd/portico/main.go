package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/porticohq/portico/adapter/cli"
	cliAccount "github.com/porticohq/portico/adapter/cli/account"
	cliConsent "github.com/porticohq/portico/adapter/cli/consent"
	cliConsole "github.com/porticohq/portico/adapter/cli/console"
	cliNotices "github.com/porticohq/portico/adapter/cli/notices"
	cliServices "github.com/porticohq/portico/adapter/cli/services"
	"github.com/porticohq/portico/internal/app"
	"github.com/porticohq/portico/pkg/config"
	"github.com/porticohq/portico/pkg/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		logCfg.Format = observability.LogFormatJSON
	}
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			// In development, allow the CLI to run without the platform
			// for help and version output.
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		userID, err := uuid.Parse(cfg.UserID)
		if err != nil {
			logger.Error("invalid PORTICO_USER_ID", "error", err)
			os.Exit(1)
		}

		cli.SetApp(&cli.App{
			ResolveCompanyHandler:  container.ResolveCompanyHandler,
			UserRepo:               container.UserRepo,
			Session:                container.Session,
			CatalogSnapshotHandler: container.CatalogSnapshotHandler,
			SubmitRequestHandler:   container.SubmitRequestHandler,
			Gatekeeper:             container.Gatekeeper,
			Monitor:                container.Monitor,
			Wiper:                  container.Wiper,
			ListNoticesHandler:     container.ListNoticesHandler,
			ListMaintenanceHandler: container.ListMaintenanceHandler,
			MarkNoticeReadHandler:  container.MarkNoticeReadHandler,
			CurrentUserID:          userID,
			Locale:                 cfg.Locale,
			ConsentVer:             cfg.ConsentVersion,
			SnapshotTimeout:        cfg.SnapshotTimeout,
		})
	}

	cli.AddCommand(cliServices.Cmd)
	cli.AddCommand(cliConsent.Cmd)
	cli.AddCommand(cliConsole.Cmd)
	cli.AddCommand(cliAccount.Cmd)
	cli.AddCommand(cliNotices.Cmd)

	cli.Execute()
}
