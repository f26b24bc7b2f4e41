package main

import (
	"context"
	"log/slog"
	"os"

	"skyelectro/config"
	"skyelectro/internal/delivery"
	"skyelectro/internal/delivery/http"
	custommiddleware "skyelectro/internal/delivery/http/middleware"
	"skyelectro/internal/delivery/http/router/handler"
	deliverymiddleware "skyelectro/internal/delivery/middleware"
	"skyelectro/internal/domain/service"
	"skyelectro/internal/infra/auth"
	logs "skyelectro/internal/infra/log"
	"skyelectro/internal/infra/persistence/postgres"
	"skyelectro/internal/infra/pubsub"
	"skyelectro/internal/infra/qrcode"
	"skyelectro/internal/infra/storage"
	"skyelectro/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			storage.NewArchiveStorage,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewCartRepository,
			postgres.NewWishlistRepository,
			postgres.NewOrderRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewReviewService,
			impl.NewBulkImportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			custommiddleware.NewAuthMiddleware,
			custommiddleware.NewErrorMiddleware,
			custommiddleware.NewLoggerMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewReviewHandler,
			handler.NewBulkHandler,
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
