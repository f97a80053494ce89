package main

import (
	"context"
	"log/slog"
	"os"

	"perpus/config"
	"perpus/internal/delivery"
	"perpus/internal/delivery/http"
	"perpus/internal/delivery/http/middleware"
	"perpus/internal/delivery/http/router/handler"
	"perpus/internal/domain/service"
	"perpus/internal/infra/auth"
	logs "perpus/internal/infra/log"
	"perpus/internal/infra/persistence/postgres"
	"perpus/internal/infra/qrcode"
	"perpus/internal/usecase/impl"

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
			postgres.NewMemberRepository,
			postgres.NewBookRepository,
			postgres.NewLoanRepository,
			postgres.NewFineRepository,
			postgres.NewStaffRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newCardService,
		),
	)
}

// newCardService creates a member card service with dependency injection
func newCardService(cfg *config.Config) service.CardService {
	if cfg.MemberCard == nil {
		// Use default values if not configured
		return qrcode.NewCardService(256, "M")
	}

	return qrcode.NewCardService(cfg.MemberCard.Size, cfg.MemberCard.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewMemberService,
			impl.NewBookService,
			impl.NewLoanService,
			impl.NewFineService,
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
			handler.NewMemberHandler,
			handler.NewBookHandler,
			handler.NewLoanHandler,
			handler.NewFineHandler,
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
