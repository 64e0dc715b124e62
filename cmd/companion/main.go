package main

import (
	"context"
	"log/slog"
	"os"

	"companion/config"
	"companion/internal/delivery"
	"companion/internal/delivery/http"
	"companion/internal/delivery/http/middleware"
	"companion/internal/delivery/http/router/handler"
	"companion/internal/delivery/worker"
	"companion/internal/domain/service"
	"companion/internal/infra/auth"
	"companion/internal/infra/calendar"
	"companion/internal/infra/localstate"
	logs "companion/internal/infra/log"
	"companion/internal/infra/mail"
	"companion/internal/infra/notification"
	"companion/internal/infra/persistence/postgres"
	"companion/internal/infra/qrcode"
	"companion/internal/infra/venuemap"
	"companion/internal/usecase"
	"companion/internal/usecase/impl"

	"github.com/benbjohnson/clock"
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
		localstate.New,
		newClock,
	)
}

// newClock provides the wall clock; tests substitute a mock.
func newClock() clock.Clock {
	return clock.New()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEventRepository,
			postgres.NewFavoriteRepository,
			postgres.NewUserRepository,
			postgres.NewMagicLinkRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSessionBus,
			mail.NewSMTPMailer,
			calendar.NewICSService,
			qrcode.NewQRCodeService,
			venuemap.New,
			notification.NewFirebaseNotifier,
			newToastHub,
			notification.NewToaster,
		),
	)
}

// newToastHub creates the toast hub with the configured TTL.
func newToastHub(cfg *config.Config, clk clock.Clock, logger *slog.Logger) *notification.ToastHub {
	return notification.NewToastHub(cfg.Reminder.ToastTTL, clk, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewFavoritesService,
			impl.NewScheduleService,
			newReminderService,
			impl.NewExportService,
			impl.NewProfileService,
			impl.NewSessionReactor,
		),
	)
}

// newReminderService creates the reminder scheduler with the configured lead time.
func newReminderService(
	schedule usecase.ScheduleUsecase,
	favorites usecase.FavoritesUsecase,
	notifier service.Notifier,
	toaster service.Toaster,
	localState service.LocalStateStore,
	clk clock.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	return impl.NewReminderService(schedule, favorites, notifier, toaster, localState, clk, cfg.Reminder.Lead, logger)
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
			handler.NewScheduleHandler,
			handler.NewFavoriteHandler,
			handler.NewReminderHandler,
			handler.NewExportHandler,
			handler.NewProfileHandler,
			handler.NewToastHandler,
			handler.NewVenueHandler,
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
			fx.Annotate(
				worker.NewServer,
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
