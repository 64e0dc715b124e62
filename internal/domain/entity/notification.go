package entity

// NotificationPermission mirrors the platform notification capability states.
type NotificationPermission string

const (
	// PermissionUnsupported means the platform has no notification capability at all.
	PermissionUnsupported NotificationPermission = "unsupported"
	// PermissionDefault means the user has not decided yet; a request may be issued.
	PermissionDefault NotificationPermission = "default"
	// PermissionGranted means notifications may be displayed.
	PermissionGranted NotificationPermission = "granted"
	// PermissionDenied means the user has blocked notifications.
	PermissionDenied NotificationPermission = "denied"
)

// Toast is a short-lived in-app notification.
type Toast struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}
