package notification

import (
	"log/slog"
	"sync"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// ToastHub implements the domain Toaster. Toasts live in memory only and
// expire on their own after the configured TTL; pushing never blocks and
// never fails.
type ToastHub struct {
	ttl    time.Duration
	clock  clock.Clock
	logger *slog.Logger

	mu     sync.Mutex
	toasts []timedToast
}

type timedToast struct {
	toast     entity.Toast
	expiresAt time.Time
}

// NewToastHub is the constructor for ToastHub.
func NewToastHub(ttl time.Duration, clk clock.Clock, logger *slog.Logger) *ToastHub {
	return &ToastHub{
		ttl:    ttl,
		clock:  clk,
		logger: logger,
	}
}

// NewToaster exposes the hub as the domain Toaster interface.
func NewToaster(hub *ToastHub) service.Toaster {
	return hub
}

// Push publishes a toast with the given title and text.
func (h *ToastHub) Push(title, text string) {
	toast := entity.Toast{
		ID:    uuid.NewString(),
		Title: title,
		Text:  text,
	}

	h.mu.Lock()
	h.pruneLocked()
	h.toasts = append(h.toasts, timedToast{
		toast:     toast,
		expiresAt: h.clock.Now().Add(h.ttl),
	})
	h.mu.Unlock()

	h.logger.Debug("Toast pushed", slog.String("title", title))
}

// Active returns the toasts that have not expired yet, oldest first.
func (h *ToastHub) Active() []entity.Toast {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.pruneLocked()

	active := make([]entity.Toast, 0, len(h.toasts))
	for _, t := range h.toasts {
		active = append(active, t.toast)
	}

	return active
}

// pruneLocked drops expired toasts. Callers must hold h.mu.
func (h *ToastHub) pruneLocked() {
	now := h.clock.Now()
	kept := h.toasts[:0]
	for _, t := range h.toasts {
		if t.expiresAt.After(now) {
			kept = append(kept, t)
		}
	}
	h.toasts = kept
}
