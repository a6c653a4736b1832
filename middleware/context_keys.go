package middleware

// contextKey defines a type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the gin context key for the authenticated user's ID.
	// It is the only channel through which a handler learns the caller's
	// identity; nothing downstream reads auth headers or tokens again.
	UserIDKey contextKey = "userID"
)
