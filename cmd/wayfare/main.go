package main

import (
	"context"
	"log/slog"
	"os"

	"wayfare/config"
	"wayfare/internal/delivery"
	"wayfare/internal/delivery/http"
	"wayfare/internal/delivery/http/middleware"
	"wayfare/internal/delivery/http/router/handler"
	"wayfare/internal/infra/auth"
	logs "wayfare/internal/infra/log"
	"wayfare/internal/infra/payment"
	"wayfare/internal/infra/persistence/postgres"
	"wayfare/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewItineraryRepository,
			postgres.NewOrderRepository,
			postgres.NewPurchaseRepository,
			postgres.NewReviewRepository,
			postgres.NewPhotoRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			payment.NewRazorpayGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewCheckoutService,
			impl.NewItineraryService,
			impl.NewReviewService,
			impl.NewPhotoService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewCheckoutHandler,
			handler.NewItineraryHandler,
			handler.NewReviewHandler,
			handler.NewPhotoHandler,
			handler.NewAnalyticsHandler,
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
