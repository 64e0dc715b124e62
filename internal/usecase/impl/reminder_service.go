package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/service"
	"companion/internal/usecase"
	"companion/internal/util"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// armedTimer pairs a pending timer with the derivation pass that created it.
type armedTimer struct {
	timer      *clock.Timer
	fireAt     time.Time
	generation uint64
}

// reminderService implements the ReminderUsecase interface.
//
// The timer collection is ephemeral and fully owned by this service. It is
// never patched incrementally: every input change (schedule reload, favorite
// toggle, opt-in flip) cancels all derived timers and re-derives the set from
// a fresh snapshot. A generation counter guards against a timer callback that
// was already in flight when its pass was superseded.
type reminderService struct {
	schedule   usecase.ScheduleUsecase
	favorites  usecase.FavoritesUsecase
	notifier   service.Notifier
	toaster    service.Toaster
	localState service.LocalStateStore
	clock      clock.Clock
	lead       time.Duration
	logger     *slog.Logger

	mu         sync.Mutex
	generation uint64
	timers     map[uuid.UUID]*armedTimer // derived from favorites x schedule
	extras     map[uuid.UUID]*armedTimer // armed one-off via ScheduleEventReminder
	optIn      bool
	stopped    bool
}

// NewReminderService is the constructor for reminderService. It registers
// itself as a watcher on the schedule cache and the favorite set, so timers
// re-derive without the caller having to remember to ask.
func NewReminderService(
	schedule usecase.ScheduleUsecase,
	favorites usecase.FavoritesUsecase,
	notifier service.Notifier,
	toaster service.Toaster,
	localState service.LocalStateStore,
	clk clock.Clock,
	lead time.Duration,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	srv := &reminderService{
		schedule:   schedule,
		favorites:  favorites,
		notifier:   notifier,
		toaster:    toaster,
		localState: localState,
		clock:      clk,
		lead:       lead,
		logger:     logger,
		timers:     make(map[uuid.UUID]*armedTimer),
		extras:     make(map[uuid.UUID]*armedTimer),
		optIn:      true,
	}

	var persisted bool
	if srv.localState.Load(service.StateKeyNotify, &persisted) {
		srv.optIn = persisted
	}

	schedule.Watch(srv.Recompute)
	favorites.Watch(srv.Recompute)

	return srv
}

// Recompute cancels every derived timer and re-arms the whole set from a
// consistent snapshot of (schedule, favorites, opt-in, now).
func (srv *reminderService) Recompute() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.stopped {
		return
	}

	srv.generation++
	gen := srv.generation

	for id, armed := range srv.timers {
		armed.timer.Stop()
		delete(srv.timers, id)
	}

	if !srv.optIn {
		return
	}

	favorite := make(map[uuid.UUID]struct{})
	for _, id := range srv.favorites.Favorites() {
		favorite[id] = struct{}{}
	}

	now := srv.clock.Now()
	armedCount := 0
	for _, event := range srv.schedule.Current() {
		if _, ok := favorite[event.ID]; !ok {
			continue
		}

		fireAt := event.StartAt.Add(-srv.lead)
		if !fireAt.After(now) {
			continue
		}

		evt := *event
		srv.timers[event.ID] = &armedTimer{
			timer:      srv.clock.AfterFunc(fireAt.Sub(now), func() { srv.fire(gen, &evt) }),
			fireAt:     fireAt,
			generation: gen,
		}
		armedCount++

		// A derived timer supersedes a one-off for the same event, so one
		// event never fires two reminders at the same instant.
		if extra, ok := srv.extras[event.ID]; ok {
			extra.timer.Stop()
			delete(srv.extras, event.ID)
		}
	}

	srv.logger.Debug("Reminder timers re-derived",
		slog.Uint64("generation", gen),
		slog.Int("armed", armedCount),
	)
}

// fire delivers one derived reminder. A callback whose generation no longer
// matches lost the race with a newer derivation pass and must do nothing.
func (srv *reminderService) fire(gen uint64, event *entity.Event) {
	srv.mu.Lock()
	if srv.stopped || gen != srv.generation {
		srv.mu.Unlock()

		return
	}
	delete(srv.timers, event.ID)
	srv.mu.Unlock()

	srv.deliver(event)
}

// fireExtra delivers a one-off reminder armed via ScheduleEventReminder.
func (srv *reminderService) fireExtra(event *entity.Event) {
	srv.mu.Lock()
	if srv.stopped {
		srv.mu.Unlock()

		return
	}
	delete(srv.extras, event.ID)
	srv.mu.Unlock()

	srv.deliver(event)
}

func (srv *reminderService) deliver(event *entity.Event) {
	ctx := context.Background()

	srv.toaster.Push("提醒", fmt.Sprintf("「%s」將於 %s 後開始", event.Title, util.FormatDuration(srv.lead)))

	if srv.notifier.Permission(ctx) != entity.PermissionGranted {
		return
	}

	body := util.FormatTimeRange(event.StartAt, event.EndAt)
	if event.Venue != "" {
		body += " @ " + event.Venue
	}

	if err := srv.notifier.Notify(ctx, "即將開始:"+event.Title, body, map[string]string{
		"event_id": event.ID.String(),
	}); err != nil {
		srv.logger.Error("Failed to deliver reminder notification",
			slog.Any("error", err),
			slog.Any("event_id", event.ID),
		)
	}
}

// ScheduleEventReminder arms a single reminder on explicit user request,
// walking the permission ladder first. An event already covered by a derived
// favorite timer is not armed a second time; the request reports success and
// the existing timer delivers the one reminder.
func (srv *reminderService) ScheduleEventReminder(ctx context.Context, eventID uuid.UUID) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	event, err := srv.schedule.FindEvent(ctx, eventID)
	if err != nil {
		return err
	}

	switch srv.notifier.Permission(ctx) {
	case entity.PermissionUnsupported:
		srv.toaster.Push("不支援", "此環境不支援通知")

		return domainerrors.ErrNotificationsUnsupported
	case entity.PermissionDenied:
		srv.toaster.Push("通知遭封鎖", "請於系統設定允許通知後再試")

		return domainerrors.ErrNotificationsBlocked
	case entity.PermissionDefault:
		granted, err := srv.notifier.RequestPermission(ctx)
		if err != nil {
			return err
		}
		if granted != entity.PermissionGranted {
			srv.toaster.Push("通知遭封鎖", "未取得通知權限")

			return domainerrors.ErrNotificationsBlocked
		}
	case entity.PermissionGranted:
	}

	fireAt := event.StartAt.Add(-srv.lead)
	now := srv.clock.Now()
	if !fireAt.After(now) {
		srv.toaster.Push("來不及了", "活動即將開始,已無法提前提醒")

		return domainerrors.ErrReminderTooLate
	}

	srv.mu.Lock()
	if srv.stopped {
		srv.mu.Unlock()

		return domainerrors.ErrInternalError
	}
	if _, ok := srv.timers[eventID]; ok {
		srv.mu.Unlock()

		srv.toaster.Push("已設定提醒", fmt.Sprintf("將於開始前 %s 提醒您", util.FormatDuration(srv.lead)))
		logger.Debug("Reminder already armed by favorite derivation", slog.Any("event_id", eventID))

		return nil
	}
	if prev, ok := srv.extras[eventID]; ok {
		prev.timer.Stop()
	}
	evt := *event
	srv.extras[eventID] = &armedTimer{
		timer:  srv.clock.AfterFunc(fireAt.Sub(now), func() { srv.fireExtra(&evt) }),
		fireAt: fireAt,
	}
	srv.mu.Unlock()

	srv.toaster.Push("已設定提醒", fmt.Sprintf("將於開始前 %s 提醒您", util.FormatDuration(srv.lead)))
	logger.Debug("One-off reminder armed", slog.Any("event_id", eventID), slog.Time("fire_at", fireAt))

	return nil
}

// SetOptIn flips the persisted opt-in flag and re-derives the timer set.
func (srv *reminderService) SetOptIn(ctx context.Context, enabled bool) (entity.NotificationPermission, error) {
	perm := srv.notifier.Permission(ctx)

	if !enabled {
		srv.setOptIn(false)
		srv.toaster.Push("已關閉提醒", "將不再發送活動提醒")

		return perm, nil
	}

	switch perm {
	case entity.PermissionUnsupported:
		srv.setOptIn(false)
		srv.toaster.Push("不支援", "此環境不支援通知")

		return perm, domainerrors.ErrNotificationsUnsupported
	case entity.PermissionDefault:
		granted, err := srv.notifier.RequestPermission(ctx)
		if err != nil {
			srv.setOptIn(false)

			return perm, err
		}
		perm = granted
	case entity.PermissionGranted, entity.PermissionDenied:
	}

	if perm != entity.PermissionGranted {
		srv.setOptIn(false)
		srv.toaster.Push("通知遭封鎖", "請於系統設定允許通知後再試")

		return perm, domainerrors.ErrNotificationsBlocked
	}

	srv.setOptIn(true)
	srv.toaster.Push("已開啟提醒", "收藏的活動將於開始前提醒您")

	return perm, nil
}

func (srv *reminderService) setOptIn(enabled bool) {
	srv.mu.Lock()
	srv.optIn = enabled
	srv.mu.Unlock()

	srv.localState.Store(service.StateKeyNotify, enabled)
	srv.Recompute()
}

// OptIn reports the current opt-in flag.
func (srv *reminderService) OptIn() bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.optIn
}

// Armed returns a snapshot of every pending reminder, derived and one-off.
func (srv *reminderService) Armed() []entity.Reminder {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	reminders := make([]entity.Reminder, 0, len(srv.timers)+len(srv.extras))
	for id, armed := range srv.timers {
		reminders = append(reminders, entity.Reminder{
			EventID:    id,
			FireAt:     armed.fireAt,
			Generation: armed.generation,
			State:      entity.ReminderArmed,
		})
	}
	// The two maps are disjoint: Recompute and ScheduleEventReminder never
	// leave an id armed in both.
	for id, armed := range srv.extras {
		reminders = append(reminders, entity.Reminder{
			EventID: id,
			FireAt:  armed.fireAt,
			State:   entity.ReminderArmed,
		})
	}

	return reminders
}

// Stop cancels every pending timer and refuses further arming.
func (srv *reminderService) Stop() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.stopped {
		return
	}
	srv.stopped = true
	srv.generation++

	for id, armed := range srv.timers {
		armed.timer.Stop()
		delete(srv.timers, id)
	}
	for id, armed := range srv.extras {
		armed.timer.Stop()
		delete(srv.extras, id)
	}
}
