// Package service defines interfaces for domain services implemented by the infra layer.
package service

import (
	"context"

	"companion/internal/domain/entity"
)

// Notifier models the platform notification capability: a permission query,
// an asynchronous permission request, and delivery of a title/body
// notification once permission is granted.
//
// The permission request is user-driven and may take arbitrarily long to
// resolve; callers must pass a context and must not assume prompt resolution.
type Notifier interface {
	// Permission reports the current permission state without prompting.
	Permission(ctx context.Context) entity.NotificationPermission

	// RequestPermission asks the user for notification permission and
	// returns the resulting state. Calling it while already granted or
	// denied returns the existing state unchanged.
	RequestPermission(ctx context.Context) (entity.NotificationPermission, error)

	// Notify displays a notification. It is a no-op error when permission
	// has not been granted.
	Notify(ctx context.Context, title, body string, data map[string]string) error
}
