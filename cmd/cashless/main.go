package main

import (
	"context"
	"log/slog"
	"os"

	"cashless/config"
	"cashless/internal/delivery"
	"cashless/internal/delivery/api"
	apimiddleware "cashless/internal/delivery/api/middleware"
	"cashless/internal/delivery/api/router/handler"
	"cashless/internal/delivery/sweeper"
	"cashless/internal/infra/auth"
	"cashless/internal/infra/crypto"
	"cashless/internal/infra/kvstore"
	logs "cashless/internal/infra/log"
	"cashless/internal/infra/persistence/postgres"
	"cashless/internal/infra/pubsub"
	"cashless/internal/infra/qrcode"
	"cashless/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		kvstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewTokenRepository,
			postgres.NewLedgerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSecrets,
			auth.NewPasswordHasher,
			auth.NewJWTService,
			crypto.NewCardCiphers,
			crypto.NewByteCodecFromConfig,
			qrcode.NewQRCodeServiceFromConfig,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewNfcService,
			impl.NewPasswordService,
			impl.NewIdentificationService,
			impl.NewTransactionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewNfcHandler,
			handler.NewIdentifyHandler,
			handler.NewTransactionHandler,
			handler.NewAccountHandler,
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
			fx.Annotate(
				sweeper.New,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
