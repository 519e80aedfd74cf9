package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"cloux/internal/delivery/http/helpers"
	"cloux/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSecretVerifier implements domain.SecretVerifier for tests.
type fakeSecretVerifier struct {
	secret string
	got    string
}

func (f *fakeSecretVerifier) Verify(credential string) error {
	f.got = credential
	if f.secret == "" || credential != f.secret {
		return domain.ErrUnauthorized
	}
	return nil
}

func TestRequireAdmin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name       string
		authHeader string
		secret     string
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "matching secret calls next",
			authHeader: "Bearer s3cret",
			secret:     "s3cret",
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "missing authorization header",
			secret:     "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no Bearer prefix",
			authHeader: "Basic s3cret",
			secret:     "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token after Bearer",
			authHeader: "Bearer ",
			secret:     "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			authHeader: "Bearer guess",
			secret:     "s3cret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no secret configured",
			authHeader: "Bearer anything",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			}
			handler := RequireAdmin(&fakeSecretVerifier{secret: tt.secret}, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/admin/signups", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.wantStatus == http.StatusUnauthorized {
				var body helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, helpers.MsgUnauthorized, body.Error)
			}
		})
	}
}
