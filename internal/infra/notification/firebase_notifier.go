// Package notification implements reminder delivery: push notifications
// through Firebase Cloud Messaging and short-lived in-app toasts.
package notification

import (
	"context"
	"log/slog"
	"sync"

	"companion/config"
	"companion/internal/domain/entity"
	"companion/internal/domain/service"
	"companion/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const permissionStateKey = "companion.permission"

// firebaseNotifier implements the domain Notifier on top of FCM topic
// messaging. The permission ladder mirrors the platform notification model:
// unsupported when no credentials are configured, otherwise a persisted
// default/granted/denied state that only RequestPermission advances.
type firebaseNotifier struct {
	cfg        *config.FirebaseConfig
	localState service.LocalStateStore
	logger     *slog.Logger

	mu     sync.Mutex
	client *messaging.Client
	state  entity.NotificationPermission
}

// NewFirebaseNotifier creates the FCM-backed notifier. The messaging client
// is initialized lazily on the first permission grant so a missing Firebase
// project only surfaces when notifications are actually requested.
func NewFirebaseNotifier(
	cfg *config.Config,
	localState service.LocalStateStore,
	logger *slog.Logger,
) service.Notifier {
	n := &firebaseNotifier{
		cfg:        cfg.Firebase,
		localState: localState,
		logger:     logger,
		state:      entity.PermissionDefault,
	}

	// No Firebase project means the platform simply has no notification
	// capability; every permission request answers unsupported.
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" || cfg.Firebase.ProjectID == "" {
		n.state = entity.PermissionUnsupported

		return n
	}

	var persisted string
	if localState.Load(permissionStateKey, &persisted) {
		switch entity.NotificationPermission(persisted) {
		case entity.PermissionGranted, entity.PermissionDenied:
			n.state = entity.NotificationPermission(persisted)
		}
	}

	return n
}

// Permission reports the current permission state without prompting.
func (n *firebaseNotifier) Permission(_ context.Context) entity.NotificationPermission {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.state
}

// RequestPermission advances the permission state. Already granted or denied
// states are returned unchanged; only the undecided state triggers the
// client initialization that stands in for the platform prompt.
func (n *firebaseNotifier) RequestPermission(ctx context.Context) (entity.NotificationPermission, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state != entity.PermissionDefault {
		return n.state, nil
	}

	if err := n.initClientLocked(ctx); err != nil {
		n.logger.Warn("Notification permission denied, messaging client unavailable", slog.Any("error", err))
		n.setStateLocked(entity.PermissionDenied)

		return n.state, nil
	}

	n.setStateLocked(entity.PermissionGranted)

	return n.state, nil
}

// Notify publishes a notification to the companion topic. It is a silent
// no-op unless permission has been granted.
func (n *firebaseNotifier) Notify(ctx context.Context, title, body string, data map[string]string) error {
	n.mu.Lock()
	if n.state != entity.PermissionGranted {
		n.mu.Unlock()

		return nil
	}
	if err := n.initClientLocked(ctx); err != nil {
		n.mu.Unlock()

		return errors.Wrap(err, "failed to initialize messaging client")
	}
	client := n.client
	n.mu.Unlock()

	message := &messaging.Message{
		Topic: n.cfg.Topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

func (n *firebaseNotifier) initClientLocked(ctx context.Context) error {
	if n.client != nil {
		return nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(n.cfg.CredentialsPath))
	if err != nil {
		return errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get messaging client")
	}

	n.client = client

	return nil
}

func (n *firebaseNotifier) setStateLocked(state entity.NotificationPermission) {
	n.state = state
	n.localState.Store(permissionStateKey, string(state))
}
