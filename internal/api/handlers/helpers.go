package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/errors"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/utils/response"
)

// requireClient returns the caller's client id and a logger scoped to it.
// It writes the error response itself when the identity middleware did not run.
func requireClient(w http.ResponseWriter, r *http.Request) (string, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	clientID, ok := middleware.ClientIDFromContext(r.Context())
	if !ok {
		logger.Warn("Request without client identity")
		response.Error(w, errors.BadRequestError("Client identity is required"))
		return "", logger, false
	}

	return clientID, logger, true
}
