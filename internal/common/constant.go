package common

const (
	// SessionTokenKey and SessionUserNameKey are the fixed metadata keys the
	// session store persists under.
	SessionTokenKey    = "userToken"
	SessionUserNameKey = "userName"

	// RequestIDHeaderName is attached to every outbound API request.
	RequestIDHeaderName = "X-Request-ID"
)
