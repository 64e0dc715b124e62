package errors

import (
	"net/http"

	"companion/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"請先登入後再收藏活動或設定提醒",
		"",
	)

	ErrMagicLinkInvalid = NewBaseError(
		http.StatusUnauthorized,
		"MAGIC_LINK_INVALID",
		"登入連結無效或已過期,請重新申請",
		"",
	)

	ErrMailDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"寄送登入信件失敗,請稍後再試",
		"",
	)

	// Notification-related errors
	ErrNotificationsUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"NOTIFICATIONS_UNSUPPORTED",
		"此裝置不支援通知功能",
		"",
	)

	ErrNotificationsBlocked = NewBaseError(
		http.StatusForbidden,
		"NOTIFICATIONS_BLOCKED",
		"通知權限已被拒絕,請至系統設定重新開啟",
		"",
	)

	ErrReminderTooLate = NewBaseError(
		http.StatusConflict,
		"REMINDER_TOO_LATE",
		"活動即將開始,已超過可設定提醒的時間",
		"",
	)

	// Event-related errors
	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"找不到該活動",
		"",
	)

	ErrInvalidEvent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT",
		"活動資料不完整,無法匯出",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"建立使用者失敗",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// GatewayExecuteError represents a remote gateway failure, implementing the
// AppError interface. Gateway failures are surfaced to the user and are
// never retried automatically.
type GatewayExecuteError struct {
	err     error
	details string
}

// NewGatewayExecuteError creates a gateway-related error
func NewGatewayExecuteError(err error, details string) AppError {
	return &GatewayExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *GatewayExecuteError) Error() string {
	return errors.Wrap(e.err, "gateway execution failed").Error()
}

// Unwrap exposes the underlying transport or backend error.
func (e *GatewayExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *GatewayExecuteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *GatewayExecuteError) ErrorCode() string {
	return "GATEWAY_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *GatewayExecuteError) Message() string {
	return "資料服務暫時無法使用,請檢查網路連線後再試"
}

// Details returns detailed error information
func (e *GatewayExecuteError) Details() string {
	return e.details
}
