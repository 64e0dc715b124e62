package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/service"
	mockSvc "companion/internal/mocks/service"
	"companion/internal/usecase"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubSchedule is a hand-rolled schedule cache for reminder tests; mock
// expectations are a poor fit for the watcher callback plumbing.
type stubSchedule struct {
	mu       sync.Mutex
	events   []*entity.Event
	watchers []func()
}

func (s *stubSchedule) LoadDay(_ context.Context, _ string) ([]*entity.Event, error) {
	return s.Current(), nil
}

func (s *stubSchedule) Search(_ context.Context, _ usecase.ScheduleQuery) ([]*entity.Event, error) {
	return s.Current(), nil
}

func (s *stubSchedule) FindEvent(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}

	return nil, domainerrors.ErrEventNotFound
}

func (s *stubSchedule) Current() []*entity.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*entity.Event, len(s.events))
	copy(snapshot, s.events)

	return snapshot
}

func (s *stubSchedule) Tracks() []entity.Track     { return nil }
func (s *stubSchedule) Speakers() []entity.Speaker { return nil }

func (s *stubSchedule) Watch(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.watchers = append(s.watchers, fn)
}

func (s *stubSchedule) setEvents(events ...*entity.Event) {
	s.mu.Lock()
	s.events = events
	watchers := make([]func(), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}

// stubFavorites is a hand-rolled favorite set for reminder tests.
type stubFavorites struct {
	mu       sync.Mutex
	set      map[uuid.UUID]struct{}
	watchers []func()
}

func newStubFavorites() *stubFavorites {
	return &stubFavorites{set: make(map[uuid.UUID]struct{})}
}

func (f *stubFavorites) LoadFavorites(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return f.Favorites(), nil
}

func (f *stubFavorites) ToggleFavorite(_ context.Context, _, eventID uuid.UUID) (bool, error) {
	f.mu.Lock()
	_, ok := f.set[eventID]
	if ok {
		delete(f.set, eventID)
	} else {
		f.set[eventID] = struct{}{}
	}
	f.mu.Unlock()

	f.notify()

	return !ok, nil
}

func (f *stubFavorites) Favorites() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(f.set))
	for id := range f.set {
		ids = append(ids, id)
	}

	return ids
}

func (f *stubFavorites) IsFavorite(eventID uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.set[eventID]

	return ok
}

func (f *stubFavorites) Clear() {
	f.mu.Lock()
	f.set = make(map[uuid.UUID]struct{})
	f.mu.Unlock()

	f.notify()
}

func (f *stubFavorites) Watch(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.watchers = append(f.watchers, fn)
}

func (f *stubFavorites) add(ids ...uuid.UUID) {
	f.mu.Lock()
	for _, id := range ids {
		f.set[id] = struct{}{}
	}
	f.mu.Unlock()

	f.notify()
}

func (f *stubFavorites) notify() {
	f.mu.Lock()
	watchers := make([]func(), len(f.watchers))
	copy(watchers, f.watchers)
	f.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}

// reminderFixtures holds all test dependencies for reminder service tests.
type reminderFixtures struct {
	service    usecase.ReminderUsecase
	schedule   *stubSchedule
	favorites  *stubFavorites
	notifier   *mockSvc.MockNotifier
	toaster    *mockSvc.MockToaster
	localState *mockSvc.MockLocalStateStore
	clock      *clock.Mock
}

const testReminderLead = 5 * time.Minute

func createTestReminderService(t *testing.T) reminderFixtures {
	schedule := &stubSchedule{}
	favorites := newStubFavorites()
	notifier := mockSvc.NewMockNotifier(t)
	toaster := mockSvc.NewMockToaster(t)
	localState := mockSvc.NewMockLocalStateStore(t)

	localState.EXPECT().Load(service.StateKeyNotify, mock.Anything).Return(false).Once()
	localState.EXPECT().Store(service.StateKeyNotify, mock.Anything).Maybe()
	toaster.EXPECT().Push(mock.Anything, mock.Anything).Maybe()

	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2026, 4, 18, 8, 0, 0, 0, time.UTC))

	svc := NewReminderService(
		schedule,
		favorites,
		notifier,
		toaster,
		localState,
		mockClock,
		testReminderLead,
		newDiscardLogger(),
	)
	t.Cleanup(svc.Stop)

	return reminderFixtures{
		service:    svc,
		schedule:   schedule,
		favorites:  favorites,
		notifier:   notifier,
		toaster:    toaster,
		localState: localState,
		clock:      mockClock,
	}
}

func TestReminderService_Recompute_ArmsTimersForFavoritedEvents(t *testing.T) {
	fx := createTestReminderService(t)

	favorited := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	other := newTestEvent("Parallel talk", fx.clock.Now().Add(time.Hour), 45*time.Minute)

	fx.schedule.setEvents(favorited, other)
	fx.favorites.add(favorited.ID)

	armed := fx.service.Armed()
	require.Len(t, armed, 1)
	assert.Equal(t, favorited.ID, armed[0].EventID)
	assert.Equal(t, favorited.StartAt.Add(-testReminderLead), armed[0].FireAt)
	assert.Equal(t, entity.ReminderArmed, armed[0].State)
}

func TestReminderService_Recompute_SkipsEventsWithinLead(t *testing.T) {
	fx := createTestReminderService(t)

	imminent := newTestEvent("Starting soon", fx.clock.Now().Add(2*time.Minute), 30*time.Minute)

	fx.schedule.setEvents(imminent)
	fx.favorites.add(imminent.ID)

	assert.Empty(t, fx.service.Armed())
}

func TestReminderService_FireDeliversNotification(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Once()
	fx.notifier.EXPECT().
		Notify(mock.Anything, "即將開始:"+event.Title, mock.Anything, map[string]string{
			"event_id": event.ID.String(),
		}).
		Return(nil).
		Once()

	fx.clock.Add(55 * time.Minute)

	assert.Empty(t, fx.service.Armed())
}

func TestReminderService_FireSkipsPushWithoutPermission(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	// Toast still goes out; the push notification does not.
	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionDefault).Once()

	fx.clock.Add(55 * time.Minute)

	assert.Empty(t, fx.service.Armed())
}

func TestReminderService_UnfavoritingCancelsTimer(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	require.Len(t, fx.service.Armed(), 1)

	_, err := fx.favorites.ToggleFavorite(context.Background(), uuid.New(), event.ID)
	require.NoError(t, err)

	assert.Empty(t, fx.service.Armed())

	// Advancing past the original fire time must deliver nothing: the
	// notifier mock has no expectations left, so any call would fail.
	fx.clock.Add(2 * time.Hour)
}

func TestReminderService_ScheduleChangeRearmsAtNewTime(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	moved := *event
	moved.StartAt = event.StartAt.Add(30 * time.Minute)
	moved.EndAt = event.EndAt.Add(30 * time.Minute)
	fx.schedule.setEvents(&moved)

	armed := fx.service.Armed()
	require.Len(t, armed, 1)
	assert.Equal(t, moved.StartAt.Add(-testReminderLead), armed[0].FireAt)
}

func TestReminderService_SignOutClearsTimers(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	require.Len(t, fx.service.Armed(), 1)

	fx.favorites.Clear()

	assert.Empty(t, fx.service.Armed())
}

func TestReminderService_SetOptIn_DisableCancelsTimers(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Once()

	perm, err := fx.service.SetOptIn(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, perm)
	assert.False(t, fx.service.OptIn())
	assert.Empty(t, fx.service.Armed())

	fx.clock.Add(2 * time.Hour)
}

func TestReminderService_SetOptIn_EnableRearmsTimers(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Twice()

	_, err := fx.service.SetOptIn(context.Background(), false)
	require.NoError(t, err)
	require.Empty(t, fx.service.Armed())

	perm, err := fx.service.SetOptIn(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, entity.PermissionGranted, perm)
	assert.True(t, fx.service.OptIn())
	assert.Len(t, fx.service.Armed(), 1)
}

func TestReminderService_SetOptIn_DeniedPermissionBlocks(t *testing.T) {
	fx := createTestReminderService(t)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionDefault).Once()
	fx.notifier.EXPECT().RequestPermission(mock.Anything).Return(entity.PermissionDenied, nil).Once()

	perm, err := fx.service.SetOptIn(context.Background(), true)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationsBlocked)
	assert.Equal(t, entity.PermissionDenied, perm)
	assert.False(t, fx.service.OptIn())
}

func TestReminderService_SetOptIn_UnsupportedPlatform(t *testing.T) {
	fx := createTestReminderService(t)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionUnsupported).Once()

	_, err := fx.service.SetOptIn(context.Background(), true)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationsUnsupported)
	assert.False(t, fx.service.OptIn())
}

func TestReminderService_ScheduleEventReminder_ArmsOneOff(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Closing panel", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Once()

	err := fx.service.ScheduleEventReminder(context.Background(), event.ID)

	require.NoError(t, err)
	armed := fx.service.Armed()
	require.Len(t, armed, 1)
	assert.Equal(t, event.ID, armed[0].EventID)
	assert.Equal(t, event.StartAt.Add(-testReminderLead), armed[0].FireAt)
}

func TestReminderService_ScheduleEventReminder_SurvivesRecompute(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Closing panel", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Once()

	require.NoError(t, fx.service.ScheduleEventReminder(context.Background(), event.ID))

	// A favorites change re-derives the timer set; the explicitly requested
	// one-off is not part of that derivation and must survive it.
	fx.favorites.add(uuid.New())

	armed := fx.service.Armed()
	require.Len(t, armed, 1)
	assert.Equal(t, event.ID, armed[0].EventID)
}

func TestReminderService_ScheduleEventReminder_FavoritedEventFiresOnce(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Closing panel", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	require.Len(t, fx.service.Armed(), 1)

	// An explicit request for an event the favorite derivation already covers
	// succeeds without arming a second timer.
	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Twice()
	fx.notifier.EXPECT().
		Notify(mock.Anything, "即將開始:"+event.Title, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	require.NoError(t, fx.service.ScheduleEventReminder(context.Background(), event.ID))
	require.Len(t, fx.service.Armed(), 1)

	fx.clock.Add(55 * time.Minute)

	assert.Empty(t, fx.service.Armed())
}

func TestReminderService_FavoritingOneOffArmedEventFiresOnce(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Closing panel", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Twice()
	fx.notifier.EXPECT().
		Notify(mock.Anything, "即將開始:"+event.Title, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	require.NoError(t, fx.service.ScheduleEventReminder(context.Background(), event.ID))

	// Favoriting the event re-derives a timer for it; the derived timer
	// supersedes the one-off instead of doubling it.
	fx.favorites.add(event.ID)
	require.Len(t, fx.service.Armed(), 1)

	fx.clock.Add(55 * time.Minute)

	assert.Empty(t, fx.service.Armed())
}

func TestReminderService_ScheduleEventReminder_TooLate(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Starting soon", fx.clock.Now().Add(3*time.Minute), 30*time.Minute)
	fx.schedule.setEvents(event)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionGranted).Once()

	err := fx.service.ScheduleEventReminder(context.Background(), event.ID)

	assert.ErrorIs(t, err, domainerrors.ErrReminderTooLate)
	assert.Empty(t, fx.service.Armed())
}

func TestReminderService_ScheduleEventReminder_Unsupported(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Closing panel", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionUnsupported).Once()

	err := fx.service.ScheduleEventReminder(context.Background(), event.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationsUnsupported)
}

func TestReminderService_ScheduleEventReminder_RequestsUndecidedPermission(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Closing panel", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)

	fx.notifier.EXPECT().Permission(mock.Anything).Return(entity.PermissionDefault).Once()
	fx.notifier.EXPECT().RequestPermission(mock.Anything).Return(entity.PermissionDenied, nil).Once()

	err := fx.service.ScheduleEventReminder(context.Background(), event.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationsBlocked)
}

func TestReminderService_ScheduleEventReminder_UnknownEvent(t *testing.T) {
	fx := createTestReminderService(t)

	err := fx.service.ScheduleEventReminder(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestReminderService_Stop_CancelsEverything(t *testing.T) {
	fx := createTestReminderService(t)

	event := newTestEvent("Opening keynote", fx.clock.Now().Add(time.Hour), 45*time.Minute)
	fx.schedule.setEvents(event)
	fx.favorites.add(event.ID)

	require.Len(t, fx.service.Armed(), 1)

	fx.service.Stop()

	assert.Empty(t, fx.service.Armed())
	fx.clock.Add(2 * time.Hour)
}

func TestReminderService_RestoresPersistedOptOut(t *testing.T) {
	schedule := &stubSchedule{}
	favorites := newStubFavorites()
	notifier := mockSvc.NewMockNotifier(t)
	toaster := mockSvc.NewMockToaster(t)
	localState := mockSvc.NewMockLocalStateStore(t)

	localState.EXPECT().
		Load(service.StateKeyNotify, mock.Anything).
		Run(func(key string, dest interface{}) {
			*dest.(*bool) = false
		}).
		Return(true).
		Once()

	mockClock := clock.NewMock()
	svc := NewReminderService(
		schedule, favorites, notifier, toaster, localState,
		mockClock, testReminderLead, newDiscardLogger(),
	)
	t.Cleanup(svc.Stop)

	assert.False(t, svc.OptIn())
}
