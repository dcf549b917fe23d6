package main

import (
	"context"
	"log/slog"
	"os"

	"hokhau/config"
	"hokhau/internal/delivery"
	"hokhau/internal/delivery/http"
	"hokhau/internal/delivery/http/middleware"
	"hokhau/internal/delivery/http/router/handler"
	"hokhau/internal/infra/auth"
	"hokhau/internal/infra/hhcode"
	logs "hokhau/internal/infra/log"
	"hokhau/internal/infra/metrics"
	"hokhau/internal/infra/persistence/postgres"
	"hokhau/internal/infra/storage"
	"hokhau/internal/usecase/impl"

	"go.uber.org/fx"
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
		newMetrics,
	)
}

func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRequestRepository,
			postgres.NewHouseholdRepository,
			postgres.NewResidentRepository,
			postgres.NewTempResidenceRepository,
			postgres.NewLifeEventRepository,
			postgres.NewAuditRepository,
			postgres.NewAccountRepository,
			postgres.NewFeedbackRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			hhcode.NewGenerator,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRequestService,
			impl.NewHouseholdService,
			impl.NewResidentService,
			impl.NewAuthService,
			impl.NewFeedbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRequestHandler,
			handler.NewHouseholdHandler,
			handler.NewResidentHandler,
			handler.NewFeedbackHandler,
			handler.NewAttachmentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
