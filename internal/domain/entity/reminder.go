package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReminderState is the lifecycle state of a scheduled reminder timer.
type ReminderState string

const (
	// ReminderArmed means a wake-up is scheduled and has not fired yet.
	ReminderArmed ReminderState = "armed"
	// ReminderFired means the wake-up ran and produced its side effects.
	ReminderFired ReminderState = "fired"
	// ReminderCancelled means the timer was discarded before firing.
	ReminderCancelled ReminderState = "cancelled"
)

// Reminder describes one armed wake-up entry. Reminders are ephemeral and
// never persisted; they are fully re-derived from (schedule, favorites,
// opt-in) whenever any of those inputs change.
type Reminder struct {
	EventID    uuid.UUID     `json:"event_id"`   // Event this reminder belongs to.
	FireAt     time.Time     `json:"fire_at"`    // Event start minus the lead time.
	Generation uint64        `json:"generation"` // Recomputation pass that armed this timer.
	State      ReminderState `json:"state"`
}
