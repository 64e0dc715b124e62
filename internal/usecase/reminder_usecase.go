package usecase

import (
	"context"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

// ReminderUsecase is the reminder scheduler. It owns an ephemeral timer
// collection derived from (schedule, favorites, opt-in) and re-derives it
// from scratch whenever any of those inputs change.
type ReminderUsecase interface {
	// Recompute cancels every previously armed timer and re-derives the full
	// timer set from a consistent snapshot of the current inputs.
	Recompute()

	// ScheduleEventReminder arms a one-off reminder for a single event,
	// requesting notification permission first when it is still undecided.
	// Fails with NotificationsUnsupported, NotificationsBlocked or
	// ReminderTooLate per the platform/permission/timing rules.
	ScheduleEventReminder(ctx context.Context, eventID uuid.UUID) error

	// SetOptIn flips the persisted opt-in flag and re-derives timers.
	// Enabling requests permission when it is still undecided; the flag ends
	// up false when the request is denied.
	SetOptIn(ctx context.Context, enabled bool) (entity.NotificationPermission, error)

	// OptIn reports the current opt-in flag.
	OptIn() bool

	// Armed returns a snapshot of the currently armed reminders.
	Armed() []entity.Reminder

	// Stop cancels every armed timer. Called on scheduler teardown.
	Stop()
}
