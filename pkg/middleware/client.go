package middleware

import (
	"net/http"

	"cinema-catalog/pkg/utils"

	"go.uber.org/zap"
)

const ClientIDHeader = "X-Client-ID"

// ClientID reads the caller's client id. Callers without a valid one get a fresh
// id, echoed back in the response header and marked as issued in the context.
func ClientID(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			issued := false
			raw := r.Header.Get(ClientIDHeader)

			clientID, err := utils.ParseClientID(raw)
			if err != nil {
				if raw != "" {
					logger.Warn("Invalid client id, issuing a new one",
						zap.String("client_id", raw),
						zap.String("path", r.URL.Path))
				}
				clientID = utils.GenerateClientID()
				issued = true
			}

			w.Header().Set(ClientIDHeader, clientID.String())
			ctx := utils.SetClientIDContext(r.Context(), clientID, issued)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireClient rejects requests that did not identify themselves.
func RequireClient(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !utils.IsIdentifiedClient(r.Context()) {
				logger.Warn("Anonymous client rejected",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method))
				utils.ResponseUnauthorized(w, "X-Client-ID header required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
