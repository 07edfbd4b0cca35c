package main

import (
	"context"
	"log/slog"
	"os"

	"patrol/config"
	"patrol/internal/delivery"
	"patrol/internal/delivery/api"
	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/router/handler"
	"patrol/internal/domain/constants"
	"patrol/internal/domain/repository"
	"patrol/internal/infra/auth"
	logs "patrol/internal/infra/log"
	"patrol/internal/infra/persistence/memory"
	"patrol/internal/infra/persistence/postgres"
	"patrol/internal/infra/pubsub"
	"patrol/internal/infra/qrcode"
	"patrol/internal/infra/storage"
	"patrol/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewGuardRepository,
			postgres.NewCheckpointRepository,
			postgres.NewScanRepository,
			postgres.NewAdminRepository,
			postgres.NewTransactionManager,
			newNotificationStateRepository,
		),
	)
}

// newNotificationStateRepository picks the notification state store named in the config.
func newNotificationStateRepository(cfg *config.Config, db *gorm.DB, logger *slog.Logger) repository.NotificationStateRepository {
	if cfg.Notification != nil && cfg.Notification.StateStore == constants.StateStorePostgres {
		logger.Info("Notification state stored in PostgreSQL")

		return postgres.NewNotificationStateRepository(db)
	}
	logger.Info("Notification state kept in memory")

	return memory.NewNotificationStateRepository()
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			storage.NewArtifactStore,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScanService,
			impl.NewDashboardService,
			impl.NewNotificationService,
			impl.NewGuardService,
			impl.NewCheckpointService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewScanHandler,
			handler.NewDashboardHandler,
			handler.NewNotificationHandler,
			handler.NewCheckpointHandler,
			handler.NewGuardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
