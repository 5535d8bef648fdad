package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type clientContextKey struct{}

var ClientContextKey = clientContextKey{}

const (
	ClientIDHeader = "X-Client-ID"
	ClientCookie   = "tk_client"

	clientCookieMaxAge = 365 * 24 * 60 * 60
)

// ClientIdentity resolves the browser profile a request belongs to. It is not
// authentication: the id only selects which cart and pending order are read.
// Unknown or malformed ids are replaced by a fresh one, which is echoed back
// in both the header and the cookie.
type ClientIdentity struct {
	secureCookie bool
}

func NewClientIdentity(secureCookie bool) *ClientIdentity {
	return &ClientIdentity{secureCookie: secureCookie}
}

func (m *ClientIdentity) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		clientID, ok := clientIDFromRequest(r)
		if !ok {
			clientID = uuid.NewString()
			logger.Debug("Issued new client id")
		}

		w.Header().Set(ClientIDHeader, clientID)
		http.SetCookie(w, &http.Cookie{
			Name:     ClientCookie,
			Value:    clientID,
			Path:     "/",
			MaxAge:   clientCookieMaxAge,
			HttpOnly: true,
			Secure:   m.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := context.WithValue(r.Context(), ClientContextKey, clientID)
		ctx = WithLogger(ctx, logger.With(slog.String("client_id", clientID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIDFromRequest(r *http.Request) (string, bool) {

	if id, ok := normalizeClientID(r.Header.Get(ClientIDHeader)); ok {
		return id, true
	}

	if cookie, err := r.Cookie(ClientCookie); err == nil {
		if id, ok := normalizeClientID(cookie.Value); ok {
			return id, true
		}
	}

	return "", false
}

func normalizeClientID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}

	return id.String(), true
}

func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ClientContextKey).(string)
	return id, ok && id != ""
}
