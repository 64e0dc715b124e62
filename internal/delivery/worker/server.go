// Package worker runs the background jobs behind the companion API: the
// periodic schedule refresh and the session reactor that reconciles
// favorites across sign-in and sign-out.
package worker

import (
	"context"
	"log/slog"

	"companion/config"
	"companion/internal/delivery"
	"companion/internal/domain/lifecycle"
	"companion/internal/usecase"
	"companion/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	cron     *cron.Cron
	schedule usecase.ScheduleUsecase
	reminder usecase.ReminderUsecase
	reactor  *impl.SessionReactor
}

// ServerParams holds dependencies for the background worker
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Schedule usecase.ScheduleUsecase
	Reminder usecase.ReminderUsecase
	Reactor  *impl.SessionReactor
}

// NewServer creates the background worker delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		cron:     cron.New(),
		schedule: params.Schedule,
		reminder: params.Reminder,
		reactor:  params.Reactor,
	}

	if spec := params.Cfg.Schedule.RefreshSpec; spec != "" {
		if _, err := srv.cron.AddFunc(spec, srv.refresh); err != nil {
			return nil, errors.Wrapf(err, "invalid schedule refresh spec %q", spec)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve loads the initial schedule day, starts the refresh cron and the
// session reactor, then blocks until shutdown.
func (s *workerServer) Serve(ctx context.Context) error {
	if _, err := s.schedule.LoadDay(ctx, ""); err != nil {
		// A gateway outage at boot is survivable; the cron refresh and any
		// user-driven day load will fill the cache later.
		s.logger.Warn("Initial schedule load failed", slog.Any("error", err))
	}

	s.reactor.Start(ctx)
	s.cron.Start()
	s.logger.Info("Background worker started",
		slog.String("refreshSpec", s.cfg.Schedule.RefreshSpec),
	)

	<-ctx.Done()

	return nil
}

// refresh reloads the currently cached day. The schedule cache notifies its
// watchers, so a changed schedule re-derives reminder timers automatically.
func (s *workerServer) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := s.schedule.LoadDay(ctx, ""); err != nil {
		s.logger.Warn("Scheduled refresh failed", slog.Any("error", err))
	}
}

func (s *workerServer) stop(_ context.Context) error {
	s.logger.Info("Shutting down background worker")

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()

	s.reactor.Stop()
	s.reminder.Stop()

	return nil
}
