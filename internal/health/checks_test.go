package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/turbokart-storefront/internal/config"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/health"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage"
	"github.com/aaravmahajanofficial/turbokart-storefront/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downStorage struct {
	storage.Storage
}

func (downStorage) Ping(context.Context) error {
	return errors.New("connection refused")
}

func providerServer(t *testing.T, status int) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server.URL
}

func TestNewHealthHandler(t *testing.T) {

	tests := []struct {
		name           string
		store          storage.Storage
		providerStatus int
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "Success - All Checks Pass",
			store:          memory.New(),
			providerStatus: http.StatusNotFound,
			expectedStatus: http.StatusOK,
			expectedState:  "OK",
		},
		{
			name:           "Success - Provider Outage Degrades",
			store:          memory.New(),
			providerStatus: http.StatusServiceUnavailable,
			expectedStatus: http.StatusOK,
			expectedState:  "Partially Available",
		},
		{
			name:           "Failure - Storage Unreachable",
			store:          downStorage{},
			providerStatus: http.StatusOK,
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "Unavailable",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			cfg := &config.Config{
				Storage:  config.Storage{Driver: config.StorageDriverMemory},
				Coinbase: config.Coinbase{BaseURL: providerServer(t, tc.providerStatus)},
			}

			h, err := health.NewHealthHandler(cfg, &health.Endpoints{Storage: tc.store})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rr := httptest.NewRecorder()

			// Act
			h.Handler().ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)

			var body struct {
				Status    string `json:"status"`
				Component struct {
					Name string `json:"name"`
				} `json:"component"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedState, body.Status)
			assert.Equal(t, "turbokart-storefront", body.Component.Name)
		})
	}
}
