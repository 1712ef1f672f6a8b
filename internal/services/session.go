package services

import "context"

type contextKey string

const sessionIDKey contextKey = "session_id"

// WithSessionID tags ctx with the id of the current console run
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionID returns the console run id carried by ctx, or ""
func SessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}
