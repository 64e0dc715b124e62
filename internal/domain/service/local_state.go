package service

// LocalStateStore is key/value persistence for the handful of values that
// survive restarts: display profile, favorites cache, notification opt-in.
//
// Reads that fail to parse fall back to the caller's default; writes are
// fire-and-forget and a failed write (full disk, locked file) is logged and
// swallowed rather than propagated. Accepted risk: a lost write means stale
// local state on next start, never a crash.
type LocalStateStore interface {
	// Load unmarshals the stored value for key into dest. It returns false
	// when the key is absent or the stored content does not parse, in which
	// case dest is left untouched and the caller keeps its default.
	Load(key string, dest any) bool

	// Store marshals value under key. Failures are logged, not returned.
	Store(key string, value any)
}

// Keys for the three locally persisted slots.
const (
	StateKeyProfile   = "companion.profile"
	StateKeyFavorites = "companion.favorites"
	StateKeyNotify    = "companion.notify"
)
