package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ClientIDKey     contextKey = "client_id"
	ClientIssuedKey contextKey = "client_issued"
	LocaleKey       contextKey = "locale"
)

// GetClientIDFromContext returns the client id set by the ClientID middleware.
func GetClientIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val, ok := ctx.Value(ClientIDKey).(uuid.UUID)
	if !ok || val == uuid.Nil {
		return uuid.Nil, false
	}
	return val, true
}

// SetClientIDContext stores the client id; issued marks ids minted by the server
// for callers that did not identify themselves.
func SetClientIDContext(ctx context.Context, clientID uuid.UUID, issued bool) context.Context {
	ctx = context.WithValue(ctx, ClientIDKey, clientID)
	return context.WithValue(ctx, ClientIssuedKey, issued)
}

// IsIdentifiedClient reports whether the request carried its own client id.
func IsIdentifiedClient(ctx context.Context) bool {
	if _, ok := GetClientIDFromContext(ctx); !ok {
		return false
	}
	issued, _ := ctx.Value(ClientIssuedKey).(bool)
	return !issued
}

func GetLocaleFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(LocaleKey).(string)
	return locale, ok && locale != ""
}

func SetLocaleContext(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, LocaleKey, locale)
}
