package service

// Toaster publishes short-lived in-app notifications.
// Pushing never blocks and never fails; toasts expire on their own.
type Toaster interface {
	// Push publishes a toast with the given title and text.
	Push(title, text string)
}
