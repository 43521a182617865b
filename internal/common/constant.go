package common

const (
	// RequestIDHeaderName carries the per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// SessionStorageKey is the tab-scoped storage key holding the session.
	SessionStorageKey = "peersphere_session"

	// LegacyUserStorageKey is the long-lived key an older client used to
	// cache the current user. It is only ever cleared.
	LegacyUserStorageKey = "currentUser"
)
