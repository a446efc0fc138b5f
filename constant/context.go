package constant

type contextKey string

const (
	IdentityKey  contextKey = "identity"
	RequestIDKey contextKey = "request_id"
)

const RequestIDHeader = "X-Request-ID"
